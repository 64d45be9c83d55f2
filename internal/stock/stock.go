// server/internal/stock/stock.go
package stock

import (
	"github.com/shopspring/decimal"
)

// Status is the three-way reorder-urgency classification of an item.
type Status string

const (
	StatusInStock    Status = "in_stock"
	StatusLowStock   Status = "low_stock"
	StatusOutOfStock Status = "out_of_stock"
)

// Value computes the monetary value of a stock position, price times
// quantity, in decimal arithmetic. Callers must reject negative inputs
// before calling; Value does not clamp.
func Value(price decimal.Decimal, quantity int64) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(quantity))
}

// Classify derives the stock status of a quantity against the low-stock
// threshold. The threshold boundary belongs to in_stock and the zero
// boundary belongs to out_of_stock.
func Classify(quantity, threshold int64) Status {
	switch {
	case quantity <= 0:
		return StatusOutOfStock
	case quantity >= threshold:
		return StatusInStock
	default:
		return StatusLowStock
	}
}
