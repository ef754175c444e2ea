package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

type tipKind int

const (
	tipNone tipKind = iota
	tipPercent
	tipCustom
)

// TipChoice is either a percentage of the subtotal, a fixed custom amount,
// or no tip. At most one variant is active; picking one replaces the other.
type TipChoice struct {
	kind    tipKind
	percent decimal.Decimal
	amount  decimal.Decimal
}

func TipNone() TipChoice {
	return TipChoice{kind: tipNone}
}

func TipPercent(p decimal.Decimal) TipChoice {
	return TipChoice{kind: tipPercent, percent: p}
}

// TipCustom parses a user-typed amount leniently: anything non-numeric or
// negative coerces to zero rather than erroring.
func TipCustom(raw string) TipChoice {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || amount.IsNegative() {
		amount = decimal.Zero
	}
	return TipChoice{kind: tipCustom, amount: amount}
}

func (t TipChoice) IsPercent() bool { return t.kind == tipPercent }
func (t TipChoice) IsCustom() bool  { return t.kind == tipCustom }

func (t TipChoice) Percent() decimal.Decimal { return t.percent }

// Resolve turns the choice into a tip amount for the given subtotal.
// Percentage tips rescale with the subtotal; custom amounts do not.
func (t TipChoice) Resolve(subtotal decimal.Decimal) decimal.Decimal {
	switch t.kind {
	case tipPercent:
		return subtotal.Mul(t.percent)
	case tipCustom:
		return t.amount
	}
	return decimal.Zero
}
