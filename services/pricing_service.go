package services

import (
	"github.com/shopspring/decimal"

	"github.com/CameronCarlyon/LittleLemon/entity"
)

var (
	serviceFeeRate    = decimal.RequireFromString("0.20")
	salesTaxRate      = decimal.RequireFromString("0.1025")
	restaurantTaxRate = decimal.RequireFromString("0.005")
	homeDeliveryFee   = decimal.RequireFromString("4.99")
)

// TipPresets are the percentage options offered on the checkout form.
var TipPresets = []decimal.Decimal{
	decimal.RequireFromString("0.15"),
	decimal.RequireFromString("0.20"),
	decimal.RequireFromString("0.25"),
	decimal.Zero,
}

// PricingSnapshot is fully derived from the cart, the delivery method and
// the tip choice. It is always recomputed whole, never patched in place.
// Amounts are exact; rounding happens only at display time via pkg/money.
type PricingSnapshot struct {
	Subtotal      decimal.Decimal `json:"subtotal"`
	ServiceFee    decimal.Decimal `json:"serviceFee"`
	DeliveryFee   decimal.Decimal `json:"deliveryFee"`
	SalesTax      decimal.Decimal `json:"salesTax"`
	RestaurantTax decimal.Decimal `json:"restaurantTax"`
	Tip           decimal.Decimal `json:"tip"`
	Total         decimal.Decimal `json:"total"`
}

type Pricer struct{}

func NewPricer() *Pricer {
	return &Pricer{}
}

// Quote derives the full price breakdown. An empty cart quotes zero across
// the board, including the delivery fee.
func (p *Pricer) Quote(items []entity.CartLineItem, method entity.DeliveryMethod, tip entity.TipChoice) PricingSnapshot {
	if len(items) == 0 {
		return PricingSnapshot{}
	}

	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.LineTotal())
	}

	deliveryFee := decimal.Zero
	if method == entity.HomeDelivery {
		deliveryFee = homeDeliveryFee
	}

	s := PricingSnapshot{
		Subtotal:      subtotal,
		ServiceFee:    subtotal.Mul(serviceFeeRate),
		DeliveryFee:   deliveryFee,
		SalesTax:      subtotal.Mul(salesTaxRate),
		RestaurantTax: subtotal.Mul(restaurantTaxRate),
		Tip:           tip.Resolve(subtotal),
	}
	s.Total = s.Subtotal.
		Add(s.ServiceFee).
		Add(s.DeliveryFee).
		Add(s.SalesTax).
		Add(s.RestaurantTax).
		Add(s.Tip)
	return s
}
