// Package calculator holds pure aggregate computations over inventory data.
package calculator

import "github.com/ventoryhq/ventory/internal/models"

// Summarize computes aggregate statistics over the full item set:
// record count, total units in stock, and total stock value
// (sum of quantity × unit price).
//
// Each quantity×price product is accumulated in float64 without intermediate
// rounding. An empty or nil slice yields the zero Summary.
func Summarize(items []models.Item) models.Summary {
	var summary models.Summary
	for _, item := range items {
		summary.TotalItems++
		summary.TotalQuantity += item.Quantity
		summary.TotalValue += float64(item.Quantity) * item.Price
	}
	return summary
}
