package domain

// Order — заказ: ключ, момент создания (unix-секунды) и позиции.
// Ключ назначается хранилищем и живёт с заказом весь его цикл,
// даже если обновление физически пересоздаёт строку.
type Order struct {
	OrderKey  int64      `json:"order_key"`
	Timestamp int64      `json:"timestamp"`
	Items     []LineItem `json:"items"`
}

// LineItem — одна позиция заказа: пункт меню и количество.
type LineItem struct {
	MenuItemID int64 `json:"menu_item"`
	Quantity   int64 `json:"count"`
}

// OrderRef — краткая ссылка на заказ для выборок по диапазону времени.
type OrderRef struct {
	OrderKey  int64 `json:"order_key"`
	Timestamp int64 `json:"timestamp"`
}

// OrderComponent — строка order_components как она хранится в БД.
type OrderComponent struct {
	OrderKey   int64 `json:"order_key"`
	MenuItemID int64 `json:"menu_item"`
	Quantity   int64 `json:"count"`
}
