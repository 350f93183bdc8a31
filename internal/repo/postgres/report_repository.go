package postgres

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/pos_backend/internal/domain"
	"github.com/Gunvolt24/pos_backend/internal/ports"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что ReportRepository удовлетворяет интерфейсу ReportRepository.
var _ ports.ReportRepository = (*ReportRepository)(nil)

// ReportRepository — отчётные выборки на Postgres (только чтение).
type ReportRepository struct {
	pool *pgxpool.Pool
}

// NewReportRepository - конструктор ReportRepository.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{pool: pool}
}

// SalesByRange — продажи по пунктам меню за [from, to], по убыванию количества.
func (r *ReportRepository) SalesByRange(ctx context.Context, from, to int64) ([]domain.SalesReportRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT mi.name, SUM(omc.count) AS total_sales
		FROM order_menu_components omc
		JOIN orders o ON o.order_key = omc.order_key
		JOIN menu_items mi ON mi.id = omc.menu_item
		WHERE o."timestamp" BETWEEN $1 AND $2
		GROUP BY mi.name
		ORDER BY total_sales DESC
	`, from, to)
	if err != nil {
		return nil, fmt.Errorf("select sales report: %w", err)
	}
	defer rows.Close()

	report := make([]domain.SalesReportRow, 0)
	for rows.Next() {
		var row domain.SalesReportRow
		if err := rows.Scan(&row.Name, &row.TotalSales); err != nil {
			return nil, fmt.Errorf("scan sales row: %w", err)
		}
		report = append(report, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sales rows: %w", err)
	}
	return report, nil
}

// Restock — ингредиенты, суммарный остаток которых по всем партиям ниже threshold.
// Ингредиенты без партий тоже попадают в выборку (остаток 0).
func (r *ReportRepository) Restock(ctx context.Context, threshold int64) ([]domain.RestockRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT i.id, i.name, COALESCE(SUM(b.amount), 0) AS total_amount
		FROM ingredients i
		LEFT JOIN batches b ON b.ingredient_id = i.id
		GROUP BY i.id, i.name
		HAVING COALESCE(SUM(b.amount), 0) < $1
		ORDER BY total_amount ASC
	`, threshold)
	if err != nil {
		return nil, fmt.Errorf("select restock report: %w", err)
	}
	defer rows.Close()

	report := make([]domain.RestockRow, 0)
	for rows.Next() {
		var row domain.RestockRow
		if err := rows.Scan(&row.IngredientID, &row.Name, &row.TotalAmount); err != nil {
			return nil, fmt.Errorf("scan restock row: %w", err)
		}
		report = append(report, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("restock rows: %w", err)
	}
	return report, nil
}
