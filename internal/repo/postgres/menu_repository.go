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

// Проверка, что MenuRepository удовлетворяет интерфейсу MenuRepository.
var _ ports.MenuRepository = (*MenuRepository)(nil)

// MenuRepository — меню, категории и регионы на Postgres.
type MenuRepository struct {
	pool *pgxpool.Pool
}

// NewMenuRepository - конструктор MenuRepository.
func NewMenuRepository(pool *pgxpool.Pool) *MenuRepository { return &MenuRepository{pool: pool} }

// ListItems — все пункты меню, включая скрытые.
func (r *MenuRepository) ListItems(ctx context.Context) ([]domain.MenuItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, price, category, is_visible, region
		FROM menu_items
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("select menu items: %w", err)
	}
	defer rows.Close()

	items := make([]domain.MenuItem, 0)
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.CategoryID, &item.IsVisible, &item.RegionID); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("menu items rows: %w", err)
	}
	return items, nil
}

// ListComponents — состав всех пунктов меню.
func (r *MenuRepository) ListComponents(ctx context.Context) ([]domain.MenuComponent, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT menu_item, ingredient_item, amount
		FROM menu_components
		ORDER BY menu_item
	`)
	if err != nil {
		return nil, fmt.Errorf("select menu components: %w", err)
	}
	defer rows.Close()

	components := make([]domain.MenuComponent, 0)
	for rows.Next() {
		var c domain.MenuComponent
		if err := rows.Scan(&c.MenuItemID, &c.IngredientID, &c.Amount); err != nil {
			return nil, fmt.Errorf("scan menu component: %w", err)
		}
		components = append(components, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("menu components rows: %w", err)
	}
	return components, nil
}

func (r *MenuRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select categories: %w", err)
	}
	defer rows.Close()

	categories := make([]domain.Category, 0)
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("categories rows: %w", err)
	}
	return categories, nil
}

func (r *MenuRepository) ListRegions(ctx context.Context) ([]domain.Region, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM regions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select regions: %w", err)
	}
	defer rows.Close()

	regions := make([]domain.Region, 0)
	for rows.Next() {
		var reg domain.Region
		if err := rows.Scan(&reg.ID, &reg.Name); err != nil {
			return nil, fmt.Errorf("scan region: %w", err)
		}
		regions = append(regions, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("regions rows: %w", err)
	}
	return regions, nil
}

// CategoryIDByName — id категории по имени; false, если категории нет.
func (r *MenuRepository) CategoryIDByName(ctx context.Context, name string) (int64, bool, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `SELECT id FROM categories WHERE name = $1`, name).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("select category id: %w", err)
	}
	return id, true, nil
}

// AddItem — транзакционно добавляет пункт меню и его компоненты.
func (r *MenuRepository) AddItem(ctx context.Context, item domain.MenuItem, components []domain.MenuComponent) (int64, error) {
	transaction, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() {
		if rbErr := transaction.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			_ = rbErr
		}
	}()

	var id int64
	if err = transaction.QueryRow(ctx, `
		INSERT INTO menu_items (name, price, category, is_visible, region)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, item.Name, item.Price, item.CategoryID, item.IsVisible, item.RegionID).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert menu item: %w", err)
	}

	if len(components) > 0 {
		rows := make([][]any, 0, len(components))
		for _, c := range components {
			rows = append(rows, []any{id, c.IngredientID, c.Amount})
		}
		if _, err = transaction.CopyFrom(
			ctx,
			pgx.Identifier{"menu_components"},
			[]string{"menu_item", "ingredient_item", "amount"},
			pgx.CopyFromRows(rows),
		); err != nil {
			return 0, fmt.Errorf("copy menu components: %w", err)
		}
	}

	if err := transaction.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return id, nil
}

func (r *MenuRepository) UpdatePrice(ctx context.Context, id int64, price float64) error {
	if _, err := r.pool.Exec(ctx, `
		UPDATE menu_items SET price = $2 WHERE id = $1
	`, id, price); err != nil {
		return fmt.Errorf("update menu item price: %w", err)
	}
	return nil
}

func (r *MenuRepository) UpdateName(ctx context.Context, id int64, name string) error {
	if _, err := r.pool.Exec(ctx, `
		UPDATE menu_items SET name = $2 WHERE id = $1
	`, id, name); err != nil {
		return fmt.Errorf("update menu item name: %w", err)
	}
	return nil
}

// SetVisibilityByName — скрыть/вернуть позицию по имени; false, если имя не найдено.
func (r *MenuRepository) SetVisibilityByName(ctx context.Context, name string, visible bool) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE menu_items SET is_visible = $2 WHERE name = $1
	`, name, visible)
	if err != nil {
		return false, fmt.Errorf("update menu item visibility: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteItem — транзакционно удаляет пункт меню и его компоненты.
// Возвращает false, если позиции с таким id нет.
func (r *MenuRepository) DeleteItem(ctx context.Context, id int64) (bool, error) {
	transaction, err := r.pool.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer func() {
		if rbErr := transaction.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			_ = rbErr
		}
	}()

	if _, err = transaction.Exec(ctx, `
		DELETE FROM menu_components WHERE menu_item = $1
	`, id); err != nil {
		return false, fmt.Errorf("delete menu components: %w", err)
	}

	tag, err := transaction.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete menu item: %w", err)
	}

	if err := transaction.Commit(ctx); err != nil {
		return false, fmt.Errorf("commit: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
