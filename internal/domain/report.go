package domain

// SalesReportRow — количество продаж пункта меню за период.
type SalesReportRow struct {
	Name       string `json:"name"`
	TotalSales int64  `json:"total_sales"`
}

// RestockRow — ингредиент, суммарный остаток которого ниже порога.
type RestockRow struct {
	IngredientID int64  `json:"ingredient_id"`
	Name         string `json:"name"`
	TotalAmount  int64  `json:"total_amount"`
}
