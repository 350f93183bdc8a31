package validate

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/Gunvolt24/pos_backend/internal/domain"
	"github.com/Gunvolt24/pos_backend/internal/ports"
)

// Проверка, что OrderValidator удовлетворяет интерфейсу OrderValidator.
var _ ports.OrderValidator = (*OrderValidator)(nil)

// ErrInvalidOrder — базовая (sentinel error) ошибка валидации.
var ErrInvalidOrder = errors.New("order validation failed")

// OrderValidator — структура для валидации заказа.
type OrderValidator struct{}

// NewOrderValidator — конструктор OrderValidator.
// Возвращает ErrInvalidOrder (с обёрнутой причиной) при любой проблеме.
func NewOrderValidator() *OrderValidator { return &OrderValidator{} }

// Validate — проверяет корректность полей заказа.
func (v *OrderValidator) Validate(_ context.Context, order *domain.Order) error {
	if order == nil {
		return fmt.Errorf("%w: заказ не может быть nil", ErrInvalidOrder)
	}
	if order.OrderKey < 0 {
		return fmt.Errorf("%w: order_key не может быть отрицательным", ErrInvalidOrder)
	}
	if order.Timestamp < 0 {
		return fmt.Errorf("%w: timestamp не может быть отрицательным", ErrInvalidOrder)
	}
	return v.validateItems(order.Items)
}

// Валидация позиций заказа
func (v *OrderValidator) validateItems(items []domain.LineItem) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: items не должен быть пустым", ErrInvalidOrder)
	}

	for i := range items {
		item := &items[i]
		idx := strconv.Itoa(i)

		if item.MenuItemID <= 0 {
			return fmt.Errorf("%w: items[%s].menu_item должен быть положительным", ErrInvalidOrder, idx)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: items[%s].count должен быть положительным", ErrInvalidOrder, idx)
		}
	}
	return nil
}
