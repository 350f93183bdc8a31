package domain

// Ingredient — ингредиент склада; sinker/topping — признаки для сборки напитка.
type Ingredient struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	Sinker  bool    `json:"sinker"`
	Topping bool    `json:"topping"`
}

// IngredientStock — ингредиент вместе с суммарным остатком по всем партиям.
type IngredientStock struct {
	Ingredient
	TotalAmount int64 `json:"total_amount"`
}

// Batch — партия ингредиента: дата поступления, срок годности, остаток.
// Даты — unix-миллисекунды, как их присылает фронтенд.
type Batch struct {
	BatchKey       int64 `json:"batch_key"`
	InDate         int64 `json:"in_date"`
	ExpirationDate int64 `json:"expiration_date"`
	Amount         int64 `json:"amount"`
	IngredientID   int64 `json:"ingredient_id"`
}
