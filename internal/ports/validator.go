package ports

import (
	"context"

	"github.com/Gunvolt24/pos_backend/internal/domain"
)

// OrderValidator — доменная валидация заказа перед записью.
type OrderValidator interface {
	Validate(ctx context.Context, order *domain.Order) error
}
