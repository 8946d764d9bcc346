package models

// Item represents a single inventory record.
//
// The ID is assigned by the store on insert and is monotonically increasing,
// so sorting by descending ID yields newest-first ordering.
type Item struct {
	// ID is the store-assigned identifier. Zero until the item is persisted.
	ID int64 `json:"id"`

	// Name is the display name of the item.
	Name string `json:"name"`

	// Image is a URI pointing at the item's picture.
	Image string `json:"image"`

	// Price is the unit price. Must be non-negative.
	Price float64 `json:"price"`

	// Quantity is the number of units in stock. Must be non-negative.
	Quantity int64 `json:"quantity"`

	// Supplier names where the item is sourced from.
	Supplier string `json:"supplier"`

	// Description is free-form text about the item.
	Description string `json:"description"`

	// OwnerEmail identifies the account that created the item. It is
	// stamped server-side from the verified token claim and never taken
	// from the request body.
	OwnerEmail string `json:"owner_email"`

	// CreatedAt is the Unix timestamp when the item was created.
	CreatedAt int64 `json:"created_at"`
}
