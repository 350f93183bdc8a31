package ports

import (
	"context"

	"github.com/Gunvolt24/pos_backend/internal/domain"
)

// CatalogCache — снимок каталога меню в памяти.
// Требования к реализации: потокобезопасность; возврат копий; протухший
// снимок равносилен промаху (вызывающий перечитывает каталог из БД).
type CatalogCache interface {
	// Items — снимок каталога; false при промахе или истечении TTL.
	Items(ctx context.Context) ([]domain.MenuItem, bool)

	// Set — заменить снимок целиком.
	Set(ctx context.Context, items []domain.MenuItem)
}
