package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Service is an immutable catalog entry a visitor can book an appointment
// for. Loaded once at startup, never persisted.
type Service struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Label renders the "Name ($Price)" form shown in the booking selector.
func (s Service) Label() string {
	return fmt.Sprintf("%s ($%s)", s.Name, s.Price)
}
