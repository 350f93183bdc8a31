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

// Проверка, что AccountRepository удовлетворяет интерфейсу AccountRepository.
var _ ports.AccountRepository = (*AccountRepository)(nil)

// AccountRepository — учётные записи сотрудников на Postgres.
type AccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository - конструктор AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

// GetByEmail — (nil, nil), если аккаунта нет: неизвестный email — штатный исход.
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var account domain.Account
	err := r.pool.QueryRow(ctx, `
		SELECT email, permission FROM accounts WHERE email = $1
	`, email).Scan(&account.Email, &account.Permission)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select account: %w", err)
	}
	return &account, nil
}

func (r *AccountRepository) Add(ctx context.Context, account domain.Account) error {
	if _, err := r.pool.Exec(ctx, `
		INSERT INTO accounts (email, permission) VALUES ($1, $2)
	`, account.Email, account.Permission); err != nil {
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// Remove — false, если аккаунта с таким email нет.
func (r *AccountRepository) Remove(ctx context.Context, email string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM accounts WHERE email = $1`, email)
	if err != nil {
		return false, fmt.Errorf("delete account: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// SetPermission — false, если аккаунта с таким email нет.
func (r *AccountRepository) SetPermission(ctx context.Context, email string, permission int) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE accounts SET permission = $2 WHERE email = $1
	`, email, permission)
	if err != nil {
		return false, fmt.Errorf("update account permission: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *AccountRepository) List(ctx context.Context) ([]domain.Account, error) {
	rows, err := r.pool.Query(ctx, `SELECT email, permission FROM accounts ORDER BY email`)
	if err != nil {
		return nil, fmt.Errorf("select accounts: %w", err)
	}
	defer rows.Close()

	accounts := make([]domain.Account, 0)
	for rows.Next() {
		var a domain.Account
		if err := rows.Scan(&a.Email, &a.Permission); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("accounts rows: %w", err)
	}
	return accounts, nil
}
