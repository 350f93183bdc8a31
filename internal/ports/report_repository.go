package ports

import (
	"context"

	"github.com/Gunvolt24/pos_backend/internal/domain"
)

// ReportRepository — агрегирующие отчётные выборки (только чтение).
type ReportRepository interface {
	// SalesByRange — продажи по пунктам меню за [from, to], по убыванию количества.
	SalesByRange(ctx context.Context, from, to int64) ([]domain.SalesReportRow, error)

	// Restock — ингредиенты с суммарным остатком ниже threshold.
	Restock(ctx context.Context, threshold int64) ([]domain.RestockRow, error)
}
