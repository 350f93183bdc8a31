//go:build integration

package testutil

import (
	"time"

	"github.com/Gunvolt24/pos_backend/internal/domain"
)

// NowUnix — текущий момент в unix-секундах (формат хранения заказов).
func NowUnix() int64 { return time.Now().Unix() }

// MakeLineItems — n позиций с предсказуемыми id и количеством.
// id идут с 1, количество — i+1, чтобы строки отличались друг от друга.
func MakeLineItems(n int) []domain.LineItem {
	items := make([]domain.LineItem, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, domain.LineItem{
			MenuItemID: int64(i + 1),
			Quantity:   int64(i + 1),
		})
	}
	return items
}

// OrderOption — настройка заказа-заготовки.
type OrderOption func(*domain.Order)

// WithItems — заменить позиции заказа.
func WithItems(items []domain.LineItem) OrderOption {
	return func(o *domain.Order) { o.Items = items }
}

// WithTimestamp — задать явный момент создания.
func WithTimestamp(ts int64) OrderOption {
	return func(o *domain.Order) { o.Timestamp = ts }
}

// MakeOrder — заказ-заготовка: текущий момент и две позиции по умолчанию.
func MakeOrder(opts ...OrderOption) domain.Order {
	order := domain.Order{
		Timestamp: NowUnix(),
		Items:     MakeLineItems(2),
	}
	for _, opt := range opts {
		opt(&order)
	}
	return order
}
