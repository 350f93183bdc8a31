package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Gunvolt24/pos_backend/internal/domain"
	"github.com/Gunvolt24/pos_backend/internal/ports/mocks"
	"github.com/Gunvolt24/pos_backend/internal/usecase"
	"github.com/golang/mock/gomock"
)

func TestAddAccount_FailClosed_NoMutationOnBadInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAccountRepository(ctrl)

	// некорректный ввод никогда не доходит до БД
	repo.EXPECT().Add(gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewAccountService(repo, noopLogger{})

	cases := []struct {
		name    string
		account domain.Account
	}{
		{"empty_email", domain.Account{Email: "", Permission: 1}},
		{"malformed_email", domain.Account{Email: "not-an-email", Permission: 1}},
		{"permission_too_low", domain.Account{Email: "a@b.com", Permission: 0}},
		{"permission_too_high", domain.Account{Email: "a@b.com", Permission: 4}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.AddAccount(context.Background(), tc.account)
			if err == nil || !errors.Is(err, usecase.ErrInvalidAccount) {
				t.Fatalf("want wrapped ErrInvalidAccount, got %v", err)
			}
		})
	}
}

func TestAddAccount_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAccountRepository(ctrl)

	account := domain.Account{Email: "cashier@pos.local", Permission: domain.PermissionCashier}
	repo.EXPECT().Add(gomock.Any(), account).Return(nil)

	svc := usecase.NewAccountService(repo, noopLogger{})
	if err := svc.AddAccount(context.Background(), account); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAccount_NotFound_IsNilNil(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAccountRepository(ctrl)

	repo.EXPECT().GetByEmail(gomock.Any(), "ghost@pos.local").Return(nil, nil)

	svc := usecase.NewAccountService(repo, noopLogger{})
	account, err := svc.Account(context.Background(), "ghost@pos.local")
	if err != nil || account != nil {
		t.Fatalf("expected (nil, nil), got account=%+v err=%v", account, err)
	}
}

func TestSetPermission_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAccountRepository(ctrl)

	repo.EXPECT().SetPermission(gomock.Any(), "ghost@pos.local", domain.PermissionManager).Return(false, nil)

	svc := usecase.NewAccountService(repo, noopLogger{})
	found, err := svc.SetPermission(context.Background(), "ghost@pos.local", domain.PermissionManager)
	if err != nil || found {
		t.Fatalf("expected found=false, got found=%v err=%v", found, err)
	}
}

func TestRemoveAccount_BadEmail_FailClosed(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAccountRepository(ctrl)

	repo.EXPECT().Remove(gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewAccountService(repo, noopLogger{})
	if _, err := svc.RemoveAccount(context.Background(), "broken"); !errors.Is(err, usecase.ErrInvalidAccount) {
		t.Fatalf("want ErrInvalidAccount, got %v", err)
	}
}
