package ports

import (
	"context"

	"github.com/Gunvolt24/pos_backend/internal/domain"
)

// InventoryRepository — ингредиенты и партии склада.
type InventoryRepository interface {
	ListIngredients(ctx context.Context) ([]domain.Ingredient, error)
	AddIngredient(ctx context.Context, name string, price float64) (int64, error)
	DeleteIngredient(ctx context.Context, id int64) error
	ToggleSinker(ctx context.Context, id int64) error
	ToggleTopping(ctx context.Context, id int64) error

	ListBatches(ctx context.Context) ([]domain.Batch, error)
	BatchesByIngredient(ctx context.Context, ingredientID int64) ([]domain.Batch, error)
	AddBatch(ctx context.Context, batch domain.Batch) (int64, error)

	// RemoveBatch — false, если партии с таким ключом нет.
	RemoveBatch(ctx context.Context, batchKey int64) (bool, error)

	// AddAmount — delta может быть отрицательной (списание).
	AddAmount(ctx context.Context, batchKey, delta int64) error
	SetAmount(ctx context.Context, batchKey, amount int64) error

	// TotalAmount — суммарный остаток ингредиента по всем партиям (0, если партий нет).
	TotalAmount(ctx context.Context, ingredientID int64) (int64, error)
}
