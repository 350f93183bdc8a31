package usecase

import (
	"context"

	"github.com/Gunvolt24/pos_backend/internal/domain"
	"github.com/Gunvolt24/pos_backend/internal/ports"
)

// restockThreshold — порог пополнения: ингредиенты с суммарным остатком
// ниже этого значения попадают в отчёт.
const restockThreshold = int64(50)

// ReportService — отчётные выборки (только чтение).
type ReportService struct {
	repo ports.ReportRepository
	log  ports.Logger
}

// NewReportService — DI-конструктор.
func NewReportService(repo ports.ReportRepository, log ports.Logger) *ReportService {
	return &ReportService{repo: repo, log: log}
}

// SalesReport — продажи по пунктам меню за [from, to].
func (s *ReportService) SalesReport(ctx context.Context, from, to int64) ([]domain.SalesReportRow, error) {
	report, err := s.repo.SalesByRange(ctx, from, to)
	if err != nil {
		s.log.Errorf(ctx, "reports.SalesByRange failed from=%d to=%d err=%v", from, to, err)
		return nil, err
	}
	return report, nil
}

// RestockReport — ингредиенты с остатком ниже порога.
func (s *ReportService) RestockReport(ctx context.Context) ([]domain.RestockRow, error) {
	report, err := s.repo.Restock(ctx, restockThreshold)
	if err != nil {
		s.log.Errorf(ctx, "reports.Restock failed err=%v", err)
		return nil, err
	}
	return report, nil
}
