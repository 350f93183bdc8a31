package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/pos_backend/internal/domain"
	"github.com/Gunvolt24/pos_backend/internal/ports"
	"github.com/Gunvolt24/pos_backend/pkg/metrics"
)

// Проверка, что CatalogCacheTTL удовлетворяет интерфейсу CatalogCache.
var _ ports.CatalogCache = (*CatalogCacheTTL)(nil)

// CatalogCacheTTL — снапшот каталога меню с TTL.
// Каталог маленький и горячий, поэтому кэшируем весь список разом,
// а не отдельные позиции.
type CatalogCacheTTL struct {
	ttl time.Duration

	items     []domain.MenuItem
	loaded    bool
	expiresAt time.Time

	mu sync.Mutex
}

// NewCatalogCacheTTL — конструктор; ttl <= 0 означает «не протухает».
func NewCatalogCacheTTL(ttl time.Duration) *CatalogCacheTTL {
	return &CatalogCacheTTL{ttl: ttl}
}

// Items — снапшот каталога; false при пустом или протухшем кэше.
func (c *CatalogCacheTTL) Items(_ context.Context) ([]domain.MenuItem, bool) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.loaded {
		metrics.CatalogCacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}
	if c.ttl > 0 && now.After(c.expiresAt) {
		metrics.CatalogCacheOps.WithLabelValues("expired").Inc()
		c.items = nil
		c.loaded = false
		metrics.CatalogCacheSize.Set(0)
		return nil, false
	}

	metrics.CatalogCacheOps.WithLabelValues("hit").Inc()
	return cloneItems(c.items), true
}

// Set — замещает снапшот целиком.
func (c *CatalogCacheTTL) Set(_ context.Context, items []domain.MenuItem) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = cloneItems(items)
	c.loaded = true
	if c.ttl > 0 {
		c.expiresAt = now.Add(c.ttl)
	}

	metrics.CatalogCacheOps.WithLabelValues("reload").Inc()
	metrics.CatalogCacheSize.Set(float64(len(c.items)))
}

// cloneItems — копия среза, чтобы вызывающие не делили память с кэшем.
func cloneItems(items []domain.MenuItem) []domain.MenuItem {
	if items == nil {
		return nil
	}
	out := make([]domain.MenuItem, len(items))
	copy(out, items)
	return out
}
