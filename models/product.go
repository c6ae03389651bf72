package models

import "github.com/shopspring/decimal"

// Product is an immutable catalog entry a visitor can add to the cart.
type Product struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Image string          `json:"image"`
}
