package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/pos_backend/internal/domain"
	"github.com/Gunvolt24/pos_backend/internal/ports"
)

// batchShelfLifeMillis — срок годности партии: 7 суток в миллисекундах.
const batchShelfLifeMillis = int64(7 * 24 * 60 * 60 * 1000)

// ErrInvalidInput — sentinel-ошибка валидации входных данных склада.
var ErrInvalidInput = errors.New("invalid input")

// InventoryService — прикладная логика склада: ингредиенты и партии.
type InventoryService struct {
	repo ports.InventoryRepository
	log  ports.Logger
}

// NewInventoryService — DI-конструктор.
func NewInventoryService(repo ports.InventoryRepository, log ports.Logger) *InventoryService {
	return &InventoryService{repo: repo, log: log}
}

func (s *InventoryService) Ingredients(ctx context.Context) ([]domain.Ingredient, error) {
	return s.repo.ListIngredients(ctx)
}

// IngredientsWithData — ингредиенты вместе с суммарными остатками.
// Подход N+1: сначала список, затем сумма по каждому ингредиенту.
func (s *InventoryService) IngredientsWithData(ctx context.Context) ([]domain.IngredientStock, error) {
	ingredients, err := s.repo.ListIngredients(ctx)
	if err != nil {
		s.log.Errorf(ctx, "inventory.ListIngredients failed err=%v", err)
		return nil, err
	}

	stock := make([]domain.IngredientStock, 0, len(ingredients))
	for _, ing := range ingredients {
		total, err := s.repo.TotalAmount(ctx, ing.ID)
		if err != nil {
			s.log.Errorf(ctx, "inventory.TotalAmount failed id=%d err=%v", ing.ID, err)
			return nil, err
		}
		stock = append(stock, domain.IngredientStock{Ingredient: ing, TotalAmount: total})
	}
	return stock, nil
}

func (s *InventoryService) AddIngredient(ctx context.Context, name string, price float64) (int64, error) {
	if name == "" {
		return 0, fmt.Errorf("%w: ingredient name is required", ErrInvalidInput)
	}
	id, err := s.repo.AddIngredient(ctx, name, price)
	if err != nil {
		s.log.Errorf(ctx, "inventory.AddIngredient failed name=%s err=%v", name, err)
		return 0, fmt.Errorf("failed to add ingredient: %w", err)
	}
	s.log.Infof(ctx, "ingredient added id=%d name=%s", id, name)
	return id, nil
}

func (s *InventoryService) DeleteIngredient(ctx context.Context, id int64) error {
	return s.repo.DeleteIngredient(ctx, id)
}

func (s *InventoryService) ToggleSinker(ctx context.Context, id int64) error {
	return s.repo.ToggleSinker(ctx, id)
}

func (s *InventoryService) ToggleTopping(ctx context.Context, id int64) error {
	return s.repo.ToggleTopping(ctx, id)
}

func (s *InventoryService) Batches(ctx context.Context) ([]domain.Batch, error) {
	return s.repo.ListBatches(ctx)
}

func (s *InventoryService) BatchesByIngredient(ctx context.Context, ingredientID int64) ([]domain.Batch, error) {
	return s.repo.BatchesByIngredient(ctx, ingredientID)
}

// AddBatch — новая партия; срок годности считаем от даты поступления.
func (s *InventoryService) AddBatch(ctx context.Context, inDate, amount, ingredientID int64) (int64, error) {
	if inDate <= 0 || amount <= 0 || ingredientID <= 0 {
		return 0, fmt.Errorf("%w: in_date, amount and ingredient_id must be positive", ErrInvalidInput)
	}

	batch := domain.Batch{
		InDate:         inDate,
		ExpirationDate: inDate + batchShelfLifeMillis,
		Amount:         amount,
		IngredientID:   ingredientID,
	}
	key, err := s.repo.AddBatch(ctx, batch)
	if err != nil {
		s.log.Errorf(ctx, "inventory.AddBatch failed ingredient=%d err=%v", ingredientID, err)
		return 0, fmt.Errorf("failed to add batch: %w", err)
	}
	s.log.Infof(ctx, "batch added key=%d ingredient=%d amount=%d", key, ingredientID, amount)
	return key, nil
}

// RemoveBatch — false, если партии с таким ключом нет.
func (s *InventoryService) RemoveBatch(ctx context.Context, batchKey int64) (bool, error) {
	return s.repo.RemoveBatch(ctx, batchKey)
}

// AddAmount — delta может быть отрицательной (списание).
func (s *InventoryService) AddAmount(ctx context.Context, batchKey, delta int64) error {
	return s.repo.AddAmount(ctx, batchKey, delta)
}

func (s *InventoryService) SetAmount(ctx context.Context, batchKey, amount int64) error {
	if amount < 0 {
		return fmt.Errorf("%w: amount must be non-negative", ErrInvalidInput)
	}
	return s.repo.SetAmount(ctx, batchKey, amount)
}

func (s *InventoryService) TotalAmount(ctx context.Context, ingredientID int64) (int64, error) {
	return s.repo.TotalAmount(ctx, ingredientID)
}
