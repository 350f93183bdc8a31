package ports

import (
	"context"

	"github.com/Gunvolt24/pos_backend/internal/domain"
)

// MenuRepository — доступ к меню, категориям и регионам.
type MenuRepository interface {
	ListItems(ctx context.Context) ([]domain.MenuItem, error)
	ListComponents(ctx context.Context) ([]domain.MenuComponent, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListRegions(ctx context.Context) ([]domain.Region, error)

	// CategoryIDByName — id категории; false, если категории нет.
	CategoryIDByName(ctx context.Context, name string) (int64, bool, error)

	// AddItem — пункт меню и его компоненты одной транзакцией.
	AddItem(ctx context.Context, item domain.MenuItem, components []domain.MenuComponent) (int64, error)

	UpdatePrice(ctx context.Context, id int64, price float64) error
	UpdateName(ctx context.Context, id int64, name string) error

	// SetVisibilityByName — скрыть/вернуть позицию; false, если имя не найдено.
	SetVisibilityByName(ctx context.Context, name string, visible bool) (bool, error)

	// DeleteItem — false, если позиции с таким id нет.
	DeleteItem(ctx context.Context, id int64) (bool, error)
}
