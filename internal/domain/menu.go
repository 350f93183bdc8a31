package domain

// MenuItem — пункт меню. Скрытые позиции (IsVisible=false) не удаляются,
// чтобы старые заказы продолжали резолвиться по id.
type MenuItem struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	CategoryID int64   `json:"category"`
	IsVisible  bool    `json:"is_visible"`
	RegionID   int64   `json:"region"`
}

// MenuComponent — связь пункта меню с ингредиентом и его расходом.
type MenuComponent struct {
	MenuItemID   int64 `json:"menu_item"`
	IngredientID int64 `json:"ingredient_item"`
	Amount       int64 `json:"amount"`
}

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Region struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// MenuCategory — категория с позициями для выдачи меню целиком.
type MenuCategory struct {
	Name  string     `json:"name"`
	Items []MenuItem `json:"items"`
}
