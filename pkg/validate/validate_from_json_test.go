package validate

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

// minimalValidOrderJSON — компактный JSON заказа для тестов.
func minimalValidOrderJSON(orderKey int64, menuItem, count int64) string {
	return fmt.Sprintf(
		`{"order_key":%d,"timestamp":1700000000,"items":[{"menu_item":%d,"count":%d}]}`,
		orderKey, menuItem, count,
	)
}

func TestValidateOrderFromJSON_OK(t *testing.T) {
	ctx := context.Background()
	validator := NewOrderValidator()

	order, err := ValidateOrderFromJSON(ctx, validator, []byte(minimalValidOrderJSON(10, 3, 2)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.OrderKey != 10 || len(order.Items) != 1 || order.Items[0].MenuItemID != 3 {
		t.Fatalf("unexpected order: %+v", order)
	}
}

func TestValidateOrderFromJSON_KioskPairItems(t *testing.T) {
	ctx := context.Background()
	validator := NewOrderValidator()

	// формат киоск-сообщения: позиции — пары [id, count]
	raw := `{"items":[[10,1],[20,3]]}`
	order, err := ValidateOrderFromJSON(ctx, validator, []byte(raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(order.Items) != 2 || order.Items[0].MenuItemID != 10 || order.Items[1].Quantity != 3 {
		t.Fatalf("unexpected order: %+v", order)
	}
}

func TestValidateOrderFromJSON_MixedItemShapes(t *testing.T) {
	ctx := context.Background()
	validator := NewOrderValidator()

	raw := `{"order_key":5,"timestamp":1700000000,"items":[[10,1],{"menu_item":20,"count":2}]}`
	order, err := ValidateOrderFromJSON(ctx, validator, []byte(raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(order.Items) != 2 || order.Items[0].MenuItemID != 10 || order.Items[1].MenuItemID != 20 {
		t.Fatalf("unexpected order: %+v", order)
	}
}

func TestValidateOrderFromJSON_UnknownField(t *testing.T) {
	ctx := context.Background()
	validator := NewOrderValidator()

	raw := `{"order_key":1,"timestamp":1,"items":[{"menu_item":1,"count":1}],"extra":"nope"}`
	if _, err := ValidateOrderFromJSON(ctx, validator, []byte(raw)); err == nil {
		t.Fatalf("expected error for unknown field")
	}
}

func TestValidateOrderFromJSON_TrailingData(t *testing.T) {
	ctx := context.Background()
	validator := NewOrderValidator()

	raw := minimalValidOrderJSON(1, 1, 1) + `{"order_key":2}`
	_, err := ValidateOrderFromJSON(ctx, validator, []byte(raw))
	if err == nil || !strings.Contains(err.Error(), "trailing data") {
		t.Fatalf("expected trailing data error, got: %v", err)
	}
}

func TestValidateOrderFromJSON_InvalidSemantics(t *testing.T) {
	ctx := context.Background()
	validator := NewOrderValidator()

	raw := `{"order_key":1,"timestamp":1,"items":[]}`
	if _, err := ValidateOrderFromJSON(ctx, validator, []byte(raw)); err == nil {
		t.Fatalf("expected validation error for empty items")
	}
}

func TestValidateOrderFromJSON_BrokenJSON(t *testing.T) {
	ctx := context.Background()
	validator := NewOrderValidator()

	if _, err := ValidateOrderFromJSON(ctx, validator, []byte(`{not json`)); err == nil {
		t.Fatalf("expected error for broken json")
	}
}
