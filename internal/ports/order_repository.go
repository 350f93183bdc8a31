package ports

import (
	"context"

	"github.com/Gunvolt24/pos_backend/internal/domain"
)

// OrderRepository — единственный писатель таблиц orders/order_components.
// Place и Replace выполняются одной транзакцией: частичная запись
// невозможна ни при какой ошибке.
type OrderRepository interface {
	// Place — создать заказ с позициями; ключ назначает хранилище.
	Place(ctx context.Context, items []domain.LineItem, ts int64) (int64, error)

	// Replace — атомарно заменить заказ и все его позиции.
	// Пустой список items допустим (очистка заказа).
	Replace(ctx context.Context, orderKey int64, items []domain.LineItem, ts int64) error

	// GetByKey — заказ с позициями; (nil, nil), если ключ не занят.
	GetByKey(ctx context.Context, orderKey int64) (*domain.Order, error)

	// ListByRange — заказы с timestamp в [from, to] (границы включительно).
	ListByRange(ctx context.Context, from, to int64) ([]domain.OrderRef, error)

	// ComponentsForOrder — строки order_components одного заказа.
	ComponentsForOrder(ctx context.Context, orderKey int64) ([]domain.OrderComponent, error)

	// ComponentsForOrders — позиции набора заказов; ключи уходят в БД
	// порциями, чтобы не упереться в потолок аргументов запроса.
	ComponentsForOrders(ctx context.Context, orderKeys []int64) ([]domain.OrderComponent, error)
}
