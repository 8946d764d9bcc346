package calculator

import (
	"math"
	"testing"

	"github.com/ventoryhq/ventory/internal/models"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name         string
		items        []models.Item
		wantItems    int64
		wantQuantity int64
		wantValue    float64
	}{
		{
			name:  "empty store yields zeros",
			items: nil,
		},
		{
			name: "two items",
			items: []models.Item{
				{Quantity: 2, Price: 5},
				{Quantity: 3, Price: 10},
			},
			wantItems:    2,
			wantQuantity: 5,
			wantValue:    40,
		},
		{
			name: "zero-quantity item counts toward totalItems only",
			items: []models.Item{
				{Quantity: 0, Price: 99.99},
				{Quantity: 4, Price: 2.50},
			},
			wantItems:    2,
			wantQuantity: 4,
			wantValue:    10,
		},
		{
			name: "fractional prices are not rounded per item",
			items: []models.Item{
				{Quantity: 3, Price: 0.10},
				{Quantity: 3, Price: 0.20},
			},
			wantItems:    2,
			wantQuantity: 6,
			wantValue:    0.90,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.items)
			if got.TotalItems != tt.wantItems {
				t.Errorf("TotalItems = %d, want %d", got.TotalItems, tt.wantItems)
			}
			if got.TotalQuantity != tt.wantQuantity {
				t.Errorf("TotalQuantity = %d, want %d", got.TotalQuantity, tt.wantQuantity)
			}
			if math.Abs(got.TotalValue-tt.wantValue) > 1e-9 {
				t.Errorf("TotalValue = %v, want %v", got.TotalValue, tt.wantValue)
			}
		})
	}
}
