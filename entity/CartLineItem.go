package entity

import (
	"github.com/shopspring/decimal"
)

// CartLineItem is one distinct menu item in the cart, keyed by name.
// It lives only in memory for the lifetime of the page session.
type CartLineItem struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

func (i CartLineItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
