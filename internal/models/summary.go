package models

// Summary holds aggregate statistics over the whole item collection.
type Summary struct {
	// TotalItems is the number of item records.
	TotalItems int64 `json:"totalItems"`

	// TotalQuantity is the sum of Quantity across all items.
	TotalQuantity int64 `json:"totalQuantity"`

	// TotalValue is the sum of Quantity*Price across all items.
	TotalValue float64 `json:"totalValue"`
}
