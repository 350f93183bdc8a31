package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/mail"

	"github.com/Gunvolt24/pos_backend/internal/domain"
	"github.com/Gunvolt24/pos_backend/internal/ports"
)

// ErrInvalidAccount — sentinel-ошибка валидации учётной записи.
// Fail-closed: некорректный ввод отклоняем до любого обращения к БД.
var ErrInvalidAccount = errors.New("account validation failed")

// AccountService — учётные записи сотрудников.
type AccountService struct {
	repo ports.AccountRepository
	log  ports.Logger
}

// NewAccountService — DI-конструктор.
func NewAccountService(repo ports.AccountRepository, log ports.Logger) *AccountService {
	return &AccountService{repo: repo, log: log}
}

// Account — (nil, nil), если аккаунта нет.
func (s *AccountService) Account(ctx context.Context, email string) (*domain.Account, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	account, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		s.log.Errorf(ctx, "accounts.GetByEmail failed email=%s err=%v", email, err)
		return nil, err
	}
	return account, nil
}

func (s *AccountService) AddAccount(ctx context.Context, account domain.Account) error {
	if err := validateEmail(account.Email); err != nil {
		return err
	}
	if err := validatePermission(account.Permission); err != nil {
		return err
	}
	if err := s.repo.Add(ctx, account); err != nil {
		s.log.Errorf(ctx, "accounts.Add failed email=%s err=%v", account.Email, err)
		return fmt.Errorf("failed to add account: %w", err)
	}
	s.log.Infof(ctx, "account added email=%s permission=%d", account.Email, account.Permission)
	return nil
}

// RemoveAccount — false, если аккаунта с таким email нет.
func (s *AccountService) RemoveAccount(ctx context.Context, email string) (bool, error) {
	if err := validateEmail(email); err != nil {
		return false, err
	}
	found, err := s.repo.Remove(ctx, email)
	if err != nil {
		s.log.Errorf(ctx, "accounts.Remove failed email=%s err=%v", email, err)
		return false, err
	}
	return found, nil
}

// SetPermission — false, если аккаунта с таким email нет.
func (s *AccountService) SetPermission(ctx context.Context, email string, permission int) (bool, error) {
	if err := validateEmail(email); err != nil {
		return false, err
	}
	if err := validatePermission(permission); err != nil {
		return false, err
	}
	found, err := s.repo.SetPermission(ctx, email, permission)
	if err != nil {
		s.log.Errorf(ctx, "accounts.SetPermission failed email=%s err=%v", email, err)
		return false, err
	}
	return found, nil
}

func (s *AccountService) Accounts(ctx context.Context) ([]domain.Account, error) {
	return s.repo.List(ctx)
}

func validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("%w: email обязателен", ErrInvalidAccount)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: email некорректен", ErrInvalidAccount)
	}
	return nil
}

func validatePermission(permission int) error {
	if permission < domain.PermissionCashier || permission > domain.PermissionAdmin {
		return fmt.Errorf("%w: permission вне диапазона [%d, %d]",
			ErrInvalidAccount, domain.PermissionCashier, domain.PermissionAdmin)
	}
	return nil
}
