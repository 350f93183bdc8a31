package ports

import (
	"context"

	"github.com/Gunvolt24/pos_backend/internal/domain"
)

// AccountRepository — учётные записи сотрудников.
type AccountRepository interface {
	// GetByEmail — (nil, nil), если аккаунта нет.
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)

	Add(ctx context.Context, account domain.Account) error

	// Remove — false, если аккаунта с таким email нет.
	Remove(ctx context.Context, email string) (bool, error)

	// SetPermission — false, если аккаунта с таким email нет.
	SetPermission(ctx context.Context, email string, permission int) (bool, error)

	List(ctx context.Context) ([]domain.Account, error)
}
