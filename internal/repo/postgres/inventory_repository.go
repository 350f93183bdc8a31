package postgres

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/pos_backend/internal/domain"
	"github.com/Gunvolt24/pos_backend/internal/ports"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что InventoryRepository удовлетворяет интерфейсу InventoryRepository.
var _ ports.InventoryRepository = (*InventoryRepository)(nil)

// InventoryRepository — ингредиенты и партии склада на Postgres.
type InventoryRepository struct {
	pool *pgxpool.Pool
}

// NewInventoryRepository - конструктор InventoryRepository.
func NewInventoryRepository(pool *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{pool: pool}
}

func (r *InventoryRepository) ListIngredients(ctx context.Context) ([]domain.Ingredient, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, price, sinker, topping
		FROM ingredients
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("select ingredients: %w", err)
	}
	defer rows.Close()

	ingredients := make([]domain.Ingredient, 0)
	for rows.Next() {
		var ing domain.Ingredient
		if err := rows.Scan(&ing.ID, &ing.Name, &ing.Price, &ing.Sinker, &ing.Topping); err != nil {
			return nil, fmt.Errorf("scan ingredient: %w", err)
		}
		ingredients = append(ingredients, ing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ingredients rows: %w", err)
	}
	return ingredients, nil
}

func (r *InventoryRepository) AddIngredient(ctx context.Context, name string, price float64) (int64, error) {
	var id int64
	if err := r.pool.QueryRow(ctx, `
		INSERT INTO ingredients (name, price, sinker, topping)
		VALUES ($1, $2, false, false)
		RETURNING id
	`, name, price).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert ingredient: %w", err)
	}
	return id, nil
}

func (r *InventoryRepository) DeleteIngredient(ctx context.Context, id int64) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM ingredients WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete ingredient: %w", err)
	}
	return nil
}

func (r *InventoryRepository) ToggleSinker(ctx context.Context, id int64) error {
	if _, err := r.pool.Exec(ctx, `
		UPDATE ingredients SET sinker = NOT sinker WHERE id = $1
	`, id); err != nil {
		return fmt.Errorf("toggle sinker: %w", err)
	}
	return nil
}

func (r *InventoryRepository) ToggleTopping(ctx context.Context, id int64) error {
	if _, err := r.pool.Exec(ctx, `
		UPDATE ingredients SET topping = NOT topping WHERE id = $1
	`, id); err != nil {
		return fmt.Errorf("toggle topping: %w", err)
	}
	return nil
}

func (r *InventoryRepository) ListBatches(ctx context.Context) ([]domain.Batch, error) {
	return r.queryBatches(ctx, `
		SELECT batch_key, in_date, expiration_date, amount, ingredient_id
		FROM batches
		ORDER BY batch_key
	`)
}

func (r *InventoryRepository) BatchesByIngredient(ctx context.Context, ingredientID int64) ([]domain.Batch, error) {
	return r.queryBatches(ctx, `
		SELECT batch_key, in_date, expiration_date, amount, ingredient_id
		FROM batches
		WHERE ingredient_id = $1
		ORDER BY batch_key
	`, ingredientID)
}

func (r *InventoryRepository) queryBatches(ctx context.Context, query string, args ...any) ([]domain.Batch, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select batches: %w", err)
	}
	defer rows.Close()

	batches := make([]domain.Batch, 0)
	for rows.Next() {
		var b domain.Batch
		if err := rows.Scan(&b.BatchKey, &b.InDate, &b.ExpirationDate, &b.Amount, &b.IngredientID); err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		batches = append(batches, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("batches rows: %w", err)
	}
	return batches, nil
}

func (r *InventoryRepository) AddBatch(ctx context.Context, batch domain.Batch) (int64, error) {
	var key int64
	if err := r.pool.QueryRow(ctx, `
		INSERT INTO batches (in_date, expiration_date, amount, ingredient_id)
		VALUES ($1, $2, $3, $4)
		RETURNING batch_key
	`, batch.InDate, batch.ExpirationDate, batch.Amount, batch.IngredientID).Scan(&key); err != nil {
		return 0, fmt.Errorf("insert batch: %w", err)
	}
	return key, nil
}

// RemoveBatch — false, если партии с таким ключом нет.
func (r *InventoryRepository) RemoveBatch(ctx context.Context, batchKey int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM batches WHERE batch_key = $1`, batchKey)
	if err != nil {
		return false, fmt.Errorf("delete batch: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// AddAmount — прибавляет delta к остатку партии (delta может быть отрицательной).
func (r *InventoryRepository) AddAmount(ctx context.Context, batchKey, delta int64) error {
	if _, err := r.pool.Exec(ctx, `
		UPDATE batches SET amount = amount + $2 WHERE batch_key = $1
	`, batchKey, delta); err != nil {
		return fmt.Errorf("add batch amount: %w", err)
	}
	return nil
}

func (r *InventoryRepository) SetAmount(ctx context.Context, batchKey, amount int64) error {
	if _, err := r.pool.Exec(ctx, `
		UPDATE batches SET amount = $2 WHERE batch_key = $1
	`, batchKey, amount); err != nil {
		return fmt.Errorf("set batch amount: %w", err)
	}
	return nil
}

// TotalAmount — суммарный остаток ингредиента по всем партиям (0, если партий нет).
func (r *InventoryRepository) TotalAmount(ctx context.Context, ingredientID int64) (int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0) FROM batches WHERE ingredient_id = $1
	`, ingredientID).Scan(&total); err != nil {
		return 0, fmt.Errorf("sum batch amounts: %w", err)
	}
	return total, nil
}
