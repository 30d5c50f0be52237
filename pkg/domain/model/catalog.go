package model

// ProductCategory groups purchasable items for budgeting purposes. Budgets are
// allocated per category, never per item.
type ProductCategory struct {
	ID          string
	Name        string
	Description string
}

// ProductItem is a purchasable item belonging to exactly one category.
type ProductItem struct {
	ID          string
	CategoryID  string
	Name        string
	UnitCost    float64
	Description string
}
