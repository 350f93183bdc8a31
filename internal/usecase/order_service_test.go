package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Gunvolt24/pos_backend/internal/domain"
	"github.com/Gunvolt24/pos_backend/internal/ports/mocks"
	"github.com/Gunvolt24/pos_backend/internal/usecase"
	"github.com/Gunvolt24/pos_backend/pkg/validate"
	"github.com/golang/mock/gomock"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

type orderDeps struct {
	repo      *mocks.MockOrderRepository
	menu      *mocks.MockMenuRepository
	cache     *mocks.MockCatalogCache
	validator *mocks.MockOrderValidator
}

func newOrderDeps(ctrl *gomock.Controller) orderDeps {
	return orderDeps{
		repo:      mocks.NewMockOrderRepository(ctrl),
		menu:      mocks.NewMockMenuRepository(ctrl),
		cache:     mocks.NewMockCatalogCache(ctrl),
		validator: mocks.NewMockOrderValidator(ctrl),
	}
}

func (d orderDeps) service(opts ...usecase.OrderServiceOption) *usecase.OrderService {
	return usecase.NewOrderService(d.repo, d.menu, d.cache, noopLogger{}, d.validator, opts...)
}

func TestPlaceOrder_MockedClock_FirstKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newOrderDeps(ctrl)

	items := []domain.LineItem{{MenuItemID: 10, Quantity: 1}, {MenuItemID: 20, Quantity: 3}}

	d.validator.EXPECT().Validate(gomock.Any(), gomock.AssignableToTypeOf(&domain.Order{})).Return(nil)
	d.repo.EXPECT().Place(gomock.Any(), items, int64(1000)).Return(int64(1), nil)

	svc := d.service(usecase.WithClock(func() time.Time { return time.Unix(1000, 0) }))

	key, err := svc.PlaceOrder(context.Background(), items)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != 1 {
		t.Fatalf("expected first key 1 on empty table, got %d", key)
	}
}

func TestPlaceOrder_TimestampIsUnixSeconds(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newOrderDeps(ctrl)

	at := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	d.validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(nil)
	// заказ штампуется секундами unix-времени, не миллисекундами
	d.repo.EXPECT().Place(gomock.Any(), gomock.Any(), at.Unix()).Return(int64(1), nil)

	svc := d.service(usecase.WithClock(func() time.Time { return at }))
	if _, err := svc.PlaceOrder(context.Background(), []domain.LineItem{{MenuItemID: 1, Quantity: 1}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPlaceOrder_ValidationFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newOrderDeps(ctrl)

	d.validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(validate.ErrInvalidOrder)
	d.repo.EXPECT().Place(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := d.service().PlaceOrder(context.Background(), []domain.LineItem{{MenuItemID: -1, Quantity: 1}})
	if err == nil || !errors.Is(err, validate.ErrInvalidOrder) {
		t.Fatalf("want wrapped ErrInvalidOrder, got %v", err)
	}
}

func TestPlaceOrder_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newOrderDeps(ctrl)

	boom := errors.New("db down")
	d.validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(nil)
	d.repo.EXPECT().Place(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), boom)

	_, err := d.service().PlaceOrder(context.Background(), []domain.LineItem{{MenuItemID: 1, Quantity: 1}})
	if err == nil || !errors.Is(err, boom) {
		t.Fatalf("want wrapped repo error, got %v", err)
	}
}

func TestReplaceOrder_EmptyItems_SkipsValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newOrderDeps(ctrl)

	// пустой items — «очистить заказ», валидатор не зовём
	d.validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Times(0)
	d.repo.EXPECT().Replace(gomock.Any(), int64(7), gomock.Len(0), gomock.Any()).Return(nil)

	if err := d.service().ReplaceOrder(context.Background(), 7, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestReplaceOrder_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newOrderDeps(ctrl)

	items := []domain.LineItem{{MenuItemID: 10, Quantity: 2}}

	d.validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(nil)
	d.repo.EXPECT().Replace(gomock.Any(), int64(1), items, int64(2000)).Return(nil)

	svc := d.service(usecase.WithClock(func() time.Time { return time.Unix(2000, 0) }))
	if err := svc.ReplaceOrder(context.Background(), 1, items); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGetOrder_NotFound_IsNilNil(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newOrderDeps(ctrl)

	d.repo.EXPECT().GetByKey(gomock.Any(), int64(404)).Return(nil, nil)

	got, err := d.service().GetOrder(context.Background(), 404)
	if err != nil {
		t.Fatalf("not-found must not be an error, got: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil order for unused key, got: %+v", got)
	}
}

func TestOrdersInfo_ResolvesAndSkips(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newOrderDeps(ctrl)

	catalog := []domain.MenuItem{
		{ID: 10, Name: "Espresso"},
		{ID: 20, Name: "Latte"},
	}
	components := []domain.OrderComponent{
		{OrderKey: 1, MenuItemID: 10, Quantity: 1},
		{OrderKey: 1, MenuItemID: 99, Quantity: 2}, // удалённый пункт меню
		{OrderKey: 2, MenuItemID: 20, Quantity: 3},
	}

	d.cache.EXPECT().Items(gomock.Any()).Return(catalog, true)
	d.repo.EXPECT().ComponentsForOrders(gomock.Any(), []int64{1, 2}).Return(components, nil)

	info, skipped, err := d.service().OrdersInfo(context.Background(), []int64{1, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if skipped != 1 {
		t.Fatalf("expected 1 skipped component, got %d", skipped)
	}
	if len(info[1]) != 1 || info[1][0] != "Espresso" {
		t.Fatalf("unexpected info for order 1: %+v", info[1])
	}
	if len(info[2]) != 1 || info[2][0] != "Latte" {
		t.Fatalf("unexpected info for order 2: %+v", info[2])
	}
}

func TestOrdersInfo_CacheMiss_ReloadsCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newOrderDeps(ctrl)

	catalog := []domain.MenuItem{{ID: 10, Name: "Espresso"}}

	gomock.InOrder(
		d.cache.EXPECT().Items(gomock.Any()).Return(nil, false),
		d.menu.EXPECT().ListItems(gomock.Any()).Return(catalog, nil),
		d.cache.EXPECT().Set(gomock.Any(), catalog),
		d.repo.EXPECT().ComponentsForOrders(gomock.Any(), []int64{1}).
			Return([]domain.OrderComponent{{OrderKey: 1, MenuItemID: 10, Quantity: 1}}, nil),
	)

	info, skipped, err := d.service().OrdersInfo(context.Background(), []int64{1})
	if err != nil || skipped != 0 {
		t.Fatalf("unexpected result: err=%v skipped=%d", err, skipped)
	}
	if len(info[1]) != 1 {
		t.Fatalf("unexpected info: %+v", info)
	}
}

func TestOrdersInfo_DedupesKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newOrderDeps(ctrl)

	d.cache.EXPECT().Items(gomock.Any()).Return([]domain.MenuItem{{ID: 10, Name: "Espresso"}}, true)
	// дубликаты ключей схлопываются до одного обращения
	d.repo.EXPECT().ComponentsForOrders(gomock.Any(), []int64{1, 2}).Return([]domain.OrderComponent{}, nil)

	if _, _, err := d.service().OrdersInfo(context.Background(), []int64{1, 2, 1, 2, 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPlaceFromMessage_InvalidJson(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newOrderDeps(ctrl)

	err := d.service().PlaceFromMessage(context.Background(), []byte("{"))
	if err == nil || !strings.Contains(err.Error(), "invalid json") {
		t.Fatalf("expected invalid json error, got err=%v", err)
	}
}

func TestPlaceFromMessage_UnknownField(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newOrderDeps(ctrl)

	raw := []byte(`{"items":[[10,1]],"extra":true}`)
	if err := d.service().PlaceFromMessage(context.Background(), raw); err == nil {
		t.Fatalf("expected error for unknown field")
	}
}

func TestPlaceFromMessage_TrailingData(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newOrderDeps(ctrl)

	raw := []byte(`{"items":[[10,1]]}{"items":[]}`)
	err := d.service().PlaceFromMessage(context.Background(), raw)
	if err == nil || !strings.Contains(err.Error(), "trailing data") {
		t.Fatalf("expected trailing data error, got err=%v", err)
	}
}

func TestPlaceFromMessage_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newOrderDeps(ctrl)

	want := []domain.LineItem{{MenuItemID: 10, Quantity: 1}, {MenuItemID: 20, Quantity: 3}}

	d.validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(nil)
	d.repo.EXPECT().Place(gomock.Any(), want, gomock.Any()).Return(int64(5), nil)

	raw := []byte(`{"items":[[10,1],[20,3]]}`)
	if err := d.service().PlaceFromMessage(context.Background(), raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
