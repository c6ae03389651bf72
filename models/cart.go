package models

import "github.com/shopspring/decimal"

// CartItem is one product line in the visitor's cart. Name, price and image
// are copied from the product at add-time; the cart holds at most one item
// per product id and aggregates repeat adds into Quantity.
type CartItem struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image"`
	Quantity int             `json:"quantity"`
}

// Subtotal is price × quantity for this line.
func (i CartItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
