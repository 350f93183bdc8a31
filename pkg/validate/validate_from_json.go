package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/pos_backend/internal/domain"
	"github.com/Gunvolt24/pos_backend/internal/ports"
)

// fileOrder — запись экспортного файла. Позиции принимаются в обоих
// форматах: объект {"menu_item","count"} (экспорт API) и пара
// [id, count] (сообщение киоска).
type fileOrder struct {
	OrderKey  int64          `json:"order_key"`
	Timestamp int64          `json:"timestamp"`
	Items     []fileLineItem `json:"items"`
}

type fileLineItem domain.LineItem

func (li *fileLineItem) UnmarshalJSON(raw []byte) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var pair [2]int64
		if err := json.Unmarshal(trimmed, &pair); err != nil {
			return err
		}
		li.MenuItemID, li.Quantity = pair[0], pair[1]
		return nil
	}

	var obj struct {
		MenuItemID int64 `json:"menu_item"`
		Quantity   int64 `json:"count"`
	}
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&obj); err != nil {
		return err
	}
	li.MenuItemID, li.Quantity = obj.MenuItemID, obj.Quantity
	return nil
}

func (f fileOrder) order() *domain.Order {
	order := &domain.Order{OrderKey: f.OrderKey, Timestamp: f.Timestamp}
	for _, item := range f.Items {
		order.Items = append(order.Items, domain.LineItem(item))
	}
	return order
}

// ValidateOrderFromJSON — валидация заказа из JSON.
// Возвращает заказ в каноническом виде независимо от входного формата позиций.
func ValidateOrderFromJSON(ctx context.Context, validator ports.OrderValidator, raw []byte) (*domain.Order, error) {
	var rec fileOrder
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&rec); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	// гарантируем отсутствие полей вне структуры
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("invalid json: trailing data")
	}

	order := rec.order()
	if err := validator.Validate(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}
