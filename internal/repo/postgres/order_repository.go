package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/pos_backend/internal/domain"
	"github.com/Gunvolt24/pos_backend/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что OrderRepository удовлетворяет интерфейсу OrderRepository.
var _ ports.OrderRepository = (*OrderRepository)(nil)

// componentsChunkSize — максимум ключей на один запрос при чтении состава
// заказов (ограничение на количество аргументов параметризованного запроса).
const componentsChunkSize = 20_000

// OrderRepository — реализация репозитория заказов на Postgres (pgxpool).
type OrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository - конструктор OrderRepository.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository { return &OrderRepository{pool: pool} }

// Place — транзакционно создаёт заказ и его позиции, возвращает назначенный ключ.
// Ключ выдаёт выделенная последовательность прямо внутри INSERT ... RETURNING:
// никакого чтения текущего максимума перед вставкой, гонки конкурентных
// вызовов разрешает сама последовательность.
func (r *OrderRepository) Place(ctx context.Context, items []domain.LineItem, ts int64) (int64, error) {
	if len(items) == 0 {
		return 0, errors.New("order must contain at least one line item")
	}

	transaction, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() {
		// При уже завершённой транзакции Rollback вернёт ErrTxClosed — игнорируем.
		if rbErr := transaction.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			_ = rbErr
		}
	}()

	var orderKey int64
	if err = transaction.QueryRow(ctx, `
		INSERT INTO orders (order_key, "timestamp")
		VALUES (nextval('order_key_seq'), $1)
		RETURNING order_key
	`, ts).Scan(&orderKey); err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}

	if err = copyComponents(ctx, transaction, orderKey, items); err != nil {
		return 0, err
	}

	if err := transaction.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return orderKey, nil
}

// Replace — транзакционно замещает заказ: удалить позиции, удалить строку заказа,
// вставить свежую строку с тем же ключом и новым timestamp, вставить новые позиции.
// Заказ может и не существовать — тогда это фактически создание с явным ключом.
// Пустой items допустим и означает «очистить заказ».
func (r *OrderRepository) Replace(ctx context.Context, orderKey int64, items []domain.LineItem, ts int64) error {
	transaction, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if rbErr := transaction.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			_ = rbErr
		}
	}()

	if _, err = transaction.Exec(ctx, `
		DELETE FROM order_menu_components WHERE order_key = $1
	`, orderKey); err != nil {
		return fmt.Errorf("delete components: %w", err)
	}

	if _, err = transaction.Exec(ctx, `
		DELETE FROM orders WHERE order_key = $1
	`, orderKey); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}

	if _, err = transaction.Exec(ctx, `
		INSERT INTO orders (order_key, "timestamp") VALUES ($1, $2)
	`, orderKey, ts); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	// Сдвигаем последовательность, чтобы явный ключ не столкнулся
	// с будущими nextval. Назад последовательность не двигаем.
	if _, err = transaction.Exec(ctx, `
		SELECT setval('order_key_seq', GREATEST(
			(SELECT last_value FROM order_key_seq),
			(SELECT COALESCE(MAX(order_key), 1) FROM orders)
		), true)
	`); err != nil {
		return fmt.Errorf("advance key sequence: %w", err)
	}

	if len(items) > 0 {
		if err = copyComponents(ctx, transaction, orderKey, items); err != nil {
			return err
		}
	}

	if err := transaction.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// GetByKey — получить заказ по ключу вместе с позициями.
// Если не нашли, возвращает (nil, nil): неиспользованный ключ — штатный исход,
// а не ошибка.
func (r *OrderRepository) GetByKey(ctx context.Context, orderKey int64) (*domain.Order, error) {
	order := domain.Order{OrderKey: orderKey}

	err := r.pool.QueryRow(ctx, `
		SELECT "timestamp" FROM orders WHERE order_key = $1
	`, orderKey).Scan(&order.Timestamp)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select order: %w", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT menu_item, count FROM order_menu_components WHERE order_key = $1
	`, orderKey)
	if err != nil {
		return nil, fmt.Errorf("select components: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.LineItem
		if err := rows.Scan(&item.MenuItemID, &item.Quantity); err != nil {
			return nil, fmt.Errorf("scan component: %w", err)
		}
		order.Items = append(order.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("components rows: %w", err)
	}

	return &order, nil
}

// ListByRange — заказы в диапазоне времени, границы включительно.
// Порядок строк не гарантируем.
func (r *OrderRepository) ListByRange(ctx context.Context, from, to int64) ([]domain.OrderRef, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT order_key, "timestamp"
		FROM orders
		WHERE "timestamp" BETWEEN $1 AND $2
	`, from, to)
	if err != nil {
		return nil, fmt.Errorf("select orders by range: %w", err)
	}
	defer rows.Close()

	refs := make([]domain.OrderRef, 0)
	for rows.Next() {
		var ref domain.OrderRef
		if err := rows.Scan(&ref.OrderKey, &ref.Timestamp); err != nil {
			return nil, fmt.Errorf("scan order ref: %w", err)
		}
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("orders rows: %w", err)
	}
	return refs, nil
}

// ComponentsForOrder — позиции одного заказа как строки order_menu_components.
func (r *OrderRepository) ComponentsForOrder(ctx context.Context, orderKey int64) ([]domain.OrderComponent, error) {
	return r.queryComponents(ctx, []int64{orderKey})
}

// ComponentsForOrders — позиции набора заказов; ключи режутся на чанки,
// чтобы не упереться в потолок аргументов параметризованного запроса.
func (r *OrderRepository) ComponentsForOrders(ctx context.Context, orderKeys []int64) ([]domain.OrderComponent, error) {
	if len(orderKeys) == 0 {
		return []domain.OrderComponent{}, nil
	}

	result := make([]domain.OrderComponent, 0, len(orderKeys))
	for start := 0; start < len(orderKeys); start += componentsChunkSize {
		end := start + componentsChunkSize
		if end > len(orderKeys) {
			end = len(orderKeys)
		}
		chunk, err := r.queryComponents(ctx, orderKeys[start:end])
		if err != nil {
			return nil, err
		}
		result = append(result, chunk...)
	}
	return result, nil
}

func (r *OrderRepository) queryComponents(ctx context.Context, orderKeys []int64) ([]domain.OrderComponent, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT order_key, menu_item, count
		FROM order_menu_components
		WHERE order_key = ANY($1::bigint[])
	`, orderKeys)
	if err != nil {
		return nil, fmt.Errorf("select components: %w", err)
	}
	defer rows.Close()

	components := make([]domain.OrderComponent, 0, len(orderKeys))
	for rows.Next() {
		var c domain.OrderComponent
		if err := rows.Scan(&c.OrderKey, &c.MenuItemID, &c.Quantity); err != nil {
			return nil, fmt.Errorf("scan component: %w", err)
		}
		components = append(components, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("components rows: %w", err)
	}
	return components, nil
}

// copyComponents — вставка позиций через COPY (CopyFromRows); быстрее, чем INSERT в цикле.
func copyComponents(ctx context.Context, tx pgx.Tx, orderKey int64, items []domain.LineItem) error {
	rows := make([][]any, 0, len(items))
	for _, item := range items {
		rows = append(rows, []any{orderKey, item.MenuItemID, item.Quantity})
	}

	_, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"order_menu_components"},
		[]string{"order_key", "menu_item", "count"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("copy components: %w", err)
	}
	return nil
}
