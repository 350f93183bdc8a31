package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/Gunvolt24/pos_backend/internal/domain"
	"github.com/Gunvolt24/pos_backend/internal/ports"
)

// MenuService — прикладная логика меню, категорий и регионов.
type MenuService struct {
	repo  ports.MenuRepository
	cache ports.CatalogCache
	log   ports.Logger
}

// NewMenuService — DI-конструктор.
func NewMenuService(repo ports.MenuRepository, cache ports.CatalogCache, log ports.Logger) *MenuService {
	return &MenuService{repo: repo, cache: cache, log: log}
}

// MenuItems — все пункты меню (включая скрытые): из кэша, при промахе — из БД.
func (s *MenuService) MenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	if items, found := s.cache.Items(ctx); found {
		return items, nil
	}
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		s.log.Errorf(ctx, "menu.ListItems failed err=%v", err)
		return nil, err
	}
	s.cache.Set(ctx, items)
	return items, nil
}

func (s *MenuService) MenuComponents(ctx context.Context) ([]domain.MenuComponent, error) {
	return s.repo.ListComponents(ctx)
}

func (s *MenuService) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *MenuService) Regions(ctx context.Context) ([]domain.Region, error) {
	return s.repo.ListRegions(ctx)
}

// PopulateMenuList — витрина: видимые позиции, сгруппированные по категориям,
// внутри категории — по возрастанию цены. Категории без видимых позиций
// не попадают в выдачу.
func (s *MenuService) PopulateMenuList(ctx context.Context) ([]domain.MenuCategory, error) {
	items, err := s.MenuItems(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		s.log.Errorf(ctx, "menu.ListCategories failed err=%v", err)
		return nil, err
	}

	byCategory := make(map[int64][]domain.MenuItem, len(categories))
	for _, item := range items {
		if !item.IsVisible {
			continue
		}
		byCategory[item.CategoryID] = append(byCategory[item.CategoryID], item)
	}

	list := make([]domain.MenuCategory, 0, len(categories))
	for _, category := range categories {
		group := byCategory[category.ID]
		if len(group) == 0 {
			continue
		}
		sort.Slice(group, func(i, j int) bool { return group[i].Price < group[j].Price })
		list = append(list, domain.MenuCategory{Name: category.Name, Items: group})
	}
	return list, nil
}

// PopulateMenuItems — видимые позиции одной категории (по имени категории),
// по возрастанию цены. false, если категории нет.
func (s *MenuService) PopulateMenuItems(ctx context.Context, categoryName string) ([]domain.MenuItem, bool, error) {
	categoryID, found, err := s.repo.CategoryIDByName(ctx, categoryName)
	if err != nil {
		s.log.Errorf(ctx, "menu.CategoryIDByName failed name=%s err=%v", categoryName, err)
		return nil, false, err
	}
	if !found {
		return nil, false, nil
	}

	items, err := s.MenuItems(ctx)
	if err != nil {
		return nil, false, err
	}

	result := make([]domain.MenuItem, 0)
	for _, item := range items {
		if item.IsVisible && item.CategoryID == categoryID {
			result = append(result, item)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Price < result[j].Price })
	return result, true, nil
}

// AddMenuItemToCategory — как AddMenuItem, но категория задаётся именем.
// false, если категории с таким именем нет.
func (s *MenuService) AddMenuItemToCategory(
	ctx context.Context, item domain.MenuItem, categoryName string, components []domain.MenuComponent,
) (int64, bool, error) {
	categoryID, found, err := s.repo.CategoryIDByName(ctx, categoryName)
	if err != nil {
		s.log.Errorf(ctx, "menu.CategoryIDByName failed name=%s err=%v", categoryName, err)
		return 0, false, err
	}
	if !found {
		return 0, false, nil
	}
	item.CategoryID = categoryID
	id, err := s.AddMenuItem(ctx, item, components)
	if err != nil {
		return 0, true, err
	}
	return id, true, nil
}

// AddMenuItem — пункт меню и его компоненты одной транзакцией; кэш обновляется.
func (s *MenuService) AddMenuItem(ctx context.Context, item domain.MenuItem, components []domain.MenuComponent) (int64, error) {
	id, err := s.repo.AddItem(ctx, item, components)
	if err != nil {
		s.log.Errorf(ctx, "menu.AddItem failed name=%s err=%v", item.Name, err)
		return 0, fmt.Errorf("failed to add menu item: %w", err)
	}
	s.refreshCatalog(ctx)
	s.log.Infof(ctx, "menu item added id=%d name=%s components=%d", id, item.Name, len(components))
	return id, nil
}

func (s *MenuService) ChangePrice(ctx context.Context, id int64, price float64) error {
	if err := s.repo.UpdatePrice(ctx, id, price); err != nil {
		s.log.Errorf(ctx, "menu.UpdatePrice failed id=%d err=%v", id, err)
		return err
	}
	s.refreshCatalog(ctx)
	return nil
}

func (s *MenuService) ChangeName(ctx context.Context, id int64, name string) error {
	if err := s.repo.UpdateName(ctx, id, name); err != nil {
		s.log.Errorf(ctx, "menu.UpdateName failed id=%d err=%v", id, err)
		return err
	}
	s.refreshCatalog(ctx)
	return nil
}

// SetVisibility — скрыть/вернуть позицию по имени; false, если имя не найдено.
func (s *MenuService) SetVisibility(ctx context.Context, name string, visible bool) (bool, error) {
	found, err := s.repo.SetVisibilityByName(ctx, name, visible)
	if err != nil {
		s.log.Errorf(ctx, "menu.SetVisibilityByName failed name=%s err=%v", name, err)
		return false, err
	}
	if found {
		s.refreshCatalog(ctx)
	}
	return found, nil
}

// DeleteMenuItem — false, если позиции с таким id нет.
// Старые заказы при этом продолжают жить: их компоненты резолвятся
// с пропуском удалённых id (см. OrdersInfo).
func (s *MenuService) DeleteMenuItem(ctx context.Context, id int64) (bool, error) {
	found, err := s.repo.DeleteItem(ctx, id)
	if err != nil {
		s.log.Errorf(ctx, "menu.DeleteItem failed id=%d err=%v", id, err)
		return false, err
	}
	if found {
		s.refreshCatalog(ctx)
	}
	return found, nil
}

// refreshCatalog — перечитать каталог после мутации; ошибка не фатальна,
// кэш просто протухнет по TTL.
func (s *MenuService) refreshCatalog(ctx context.Context) {
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		s.log.Warnf(ctx, "catalog refresh failed err=%v", err)
		return
	}
	s.cache.Set(ctx, items)
}
