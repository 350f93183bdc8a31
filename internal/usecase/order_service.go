package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/Gunvolt24/pos_backend/internal/domain"
	"github.com/Gunvolt24/pos_backend/internal/ports"
	"github.com/Gunvolt24/pos_backend/pkg/metrics"
)

// ErrBadMessage — сообщение киоска невозможно разобрать; повторная
// обработка бессмысленна (poison message).
var ErrBadMessage = errors.New("malformed kiosk message")

// OrderService — прикладная логика работы с заказами (без знаний о транспорте).
type OrderService struct {
	repo      ports.OrderRepository // прямой доступ к хранилищу
	menu      ports.MenuRepository  // каталог для резолва имён позиций
	cache     ports.CatalogCache    // снимок каталога в памяти
	log       ports.Logger          // прямой доступ к логгеру
	validator ports.OrderValidator  // прямой доступ к валидатору

	now func() time.Time // источник времени; подменяется в тестах
}

// OrderServiceOption — опция конструктора.
type OrderServiceOption func(*OrderService)

// WithClock — подменить источник времени (используется в тестах).
func WithClock(now func() time.Time) OrderServiceOption {
	return func(s *OrderService) { s.now = now }
}

// NewOrderService — DI-конструктор.
func NewOrderService(
	repo ports.OrderRepository,
	menu ports.MenuRepository,
	cache ports.CatalogCache,
	log ports.Logger,
	validator ports.OrderValidator,
	opts ...OrderServiceOption,
) *OrderService {
	s := &OrderService{
		repo:      repo,
		menu:      menu,
		cache:     cache,
		log:       log,
		validator: validator,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// nowUnix — текущее время в unix-секундах.
func (s *OrderService) nowUnix() int64 { return s.now().Unix() }

// PlaceOrder — создать заказ: доменная валидация, затем одна транзакция в БД.
// Возвращает назначенный хранилищем ключ.
func (s *OrderService) PlaceOrder(ctx context.Context, items []domain.LineItem) (int64, error) {
	ts := s.nowUnix()

	if err := s.validator.Validate(ctx, &domain.Order{Timestamp: ts, Items: items}); err != nil {
		s.log.Warnf(ctx, "validation failed op=place err=%v", err)
		return 0, fmt.Errorf("validation failed: %w", err)
	}

	orderKey, err := s.repo.Place(ctx, items, ts)
	if err != nil {
		s.log.Errorf(ctx, "repo.Place failed items=%d err=%v", len(items), err)
		return 0, fmt.Errorf("failed to place order: %w", err)
	}

	metrics.OrdersPlaced.Inc()
	s.log.Infof(ctx, "order placed key=%d items=%d", orderKey, len(items))
	return orderKey, nil
}

// ReplaceOrder — атомарно заменить заказ и его позиции.
// Пустой items допустим («очистить заказ»), поэтому полную валидацию
// гоняем только по непустому списку.
func (s *OrderService) ReplaceOrder(ctx context.Context, orderKey int64, items []domain.LineItem) error {
	ts := s.nowUnix()

	if len(items) > 0 {
		if err := s.validator.Validate(ctx, &domain.Order{OrderKey: orderKey, Timestamp: ts, Items: items}); err != nil {
			s.log.Warnf(ctx, "validation failed op=replace key=%d err=%v", orderKey, err)
			return fmt.Errorf("validation failed: %w", err)
		}
	}

	if err := s.repo.Replace(ctx, orderKey, items, ts); err != nil {
		s.log.Errorf(ctx, "repo.Replace failed key=%d err=%v", orderKey, err)
		return fmt.Errorf("failed to replace order: %w", err)
	}

	metrics.OrdersReplaced.Inc()
	s.log.Infof(ctx, "order replaced key=%d items=%d", orderKey, len(items))
	return nil
}

// GetOrder — заказ по ключу; (nil, nil), если ключ не занят.
func (s *OrderService) GetOrder(ctx context.Context, orderKey int64) (*domain.Order, error) {
	order, err := s.repo.GetByKey(ctx, orderKey)
	if err != nil {
		s.log.Errorf(ctx, "repo.GetByKey failed key=%d err=%v", orderKey, err)
		return nil, err
	}
	return order, nil
}

// OrdersInRange — проксирование в репозиторий (границы уже валидированы на верхнем уровне).
func (s *OrderService) OrdersInRange(ctx context.Context, from, to int64) ([]domain.OrderRef, error) {
	return s.repo.ListByRange(ctx, from, to)
}

// OrderComponents — строки order_menu_components одного заказа.
func (s *OrderService) OrderComponents(ctx context.Context, orderKey int64) ([]domain.OrderComponent, error) {
	return s.repo.ComponentsForOrder(ctx, orderKey)
}

// OrdersInfo — имена позиций по набору ключей заказов.
// Id пунктов меню резолвятся через hash-map каталога (один lookup на позицию).
// Неизвестные id (пункт меню удалили после оформления заказа) пропускаются
// с предупреждением; количество пропусков возвращается вызывающему.
func (s *OrderService) OrdersInfo(ctx context.Context, orderKeys []int64) (map[int64][]string, int, error) {
	catalog, err := s.catalogByID(ctx)
	if err != nil {
		return nil, 0, err
	}

	// Дубликаты ключей убираем заранее: повторы на границе чанков
	// иначе раздули бы ответ повторными строками.
	components, err := s.repo.ComponentsForOrders(ctx, dedupeKeys(orderKeys))
	if err != nil {
		s.log.Errorf(ctx, "repo.ComponentsForOrders failed keys=%d err=%v", len(orderKeys), err)
		return nil, 0, err
	}

	info := make(map[int64][]string, len(orderKeys))
	skipped := 0
	for _, c := range components {
		item, ok := catalog[c.MenuItemID]
		if !ok {
			s.log.Warnf(ctx, "unknown menu item id=%d in order=%d, skipping", c.MenuItemID, c.OrderKey)
			metrics.OrdersInfoSkipped.Inc()
			skipped++
			continue
		}
		info[c.OrderKey] = append(info[c.OrderKey], item.Name)
	}
	return info, skipped, nil
}

// PlaceFromMessage — оформить заказ, пришедший от киоска самообслуживания (raw JSON).
// Шаги:
//  1. строгий парсинг JSON (DisallowUnknownFields) —> отлавливаем незадокументированные поля;
//  2. доменная валидация (вернёт validate.ErrInvalidOrder при проблемах);
//  3. транзакционная запись в БД.
func (s *OrderService) PlaceFromMessage(ctx context.Context, raw []byte) error {
	var msg kioskOrderMessage
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&msg); err != nil {
		s.log.Warnf(ctx, "invalid json err=%v", err)
		return fmt.Errorf("%w: invalid json: %v", ErrBadMessage, err)
	}

	// Убеждаемся, что после объекта нет лишних данных.
	if err := dec.Decode(new(struct{})); err != io.EOF {
		s.log.Warnf(ctx, "invalid json: trailing data")
		return fmt.Errorf("%w: invalid json: trailing data", ErrBadMessage)
	}

	items := msg.lineItems()
	if _, err := s.PlaceOrder(ctx, items); err != nil {
		return err
	}
	return nil
}

// catalogByID — каталог меню как map id->позиция: из кэша, при промахе — из БД
// с обновлением кэша.
func (s *OrderService) catalogByID(ctx context.Context) (map[int64]domain.MenuItem, error) {
	items, found := s.cache.Items(ctx)
	if !found {
		s.log.Infof(ctx, "catalog cache miss, reloading from db")
		var err error
		items, err = s.menu.ListItems(ctx)
		if err != nil {
			s.log.Errorf(ctx, "menu.ListItems failed err=%v", err)
			return nil, fmt.Errorf("failed to load menu catalog: %w", err)
		}
		s.cache.Set(ctx, items)
	}

	catalog := make(map[int64]domain.MenuItem, len(items))
	for _, item := range items {
		catalog[item.ID] = item
	}
	return catalog, nil
}

// dedupeKeys — уникальные ключи с сохранением порядка первого вхождения.
func dedupeKeys(keys []int64) []int64 {
	seen := make(map[int64]struct{}, len(keys))
	out := make([]int64, 0, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

// kioskOrderMessage — формат сообщения киоска: пары [menu_item_id, count].
type kioskOrderMessage struct {
	Items [][2]int64 `json:"items"`
}

func (m kioskOrderMessage) lineItems() []domain.LineItem {
	items := make([]domain.LineItem, 0, len(m.Items))
	for _, pair := range m.Items {
		items = append(items, domain.LineItem{MenuItemID: pair[0], Quantity: pair[1]})
	}
	return items
}
