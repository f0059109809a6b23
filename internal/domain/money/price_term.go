package money

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Spok95/stone-inventory/internal/errs"
)

// PriceTerm is an amount per square foot bound to a currency.
type PriceTerm struct {
	amount   decimal.Decimal
	currency Currency
}

func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, errs.Invalid("Sqft price is empty")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, errs.Invalid("Sqft price is not a number: %s", s)
	}
	return d, nil
}

// Scale is the number of written digits after the decimal point.
func Scale(d decimal.Decimal) int {
	if exp := d.Exponent(); exp < 0 {
		return int(-exp)
	}
	return 0
}

func checkScale(amount decimal.Decimal, cur Currency) error {
	if Scale(amount) > cur.Digits {
		return errs.Invalid("Scale of amount exceeds currency's default fraction digits.")
	}
	return nil
}

func NewPriceTerm(amount decimal.Decimal, cur Currency) (PriceTerm, error) {
	if err := checkScale(amount, cur); err != nil {
		return PriceTerm{}, err
	}
	return PriceTerm{amount: amount, currency: cur}, nil
}

// Update replaces amount and currency together; on failure the term is unchanged.
func (p *PriceTerm) Update(amount decimal.Decimal, cur Currency) error {
	if err := checkScale(amount, cur); err != nil {
		return err
	}
	p.amount = amount
	p.currency = cur
	return nil
}

func (p PriceTerm) Amount() decimal.Decimal { return p.amount }

func (p PriceTerm) Currency() Currency { return p.currency }

// AmountText keeps the written scale ("20.00" stays "20.00").
func (p PriceTerm) AmountText() string {
	return p.amount.StringFixed(int32(Scale(p.amount)))
}

func (p PriceTerm) Equal(o PriceTerm) bool {
	return p.amount.Equal(o.amount) && p.currency.Code == o.currency.Code
}

// For prices an area, rounded to the currency's digits.
func (p PriceTerm) For(areaSqFt float64) decimal.Decimal {
	return p.amount.Mul(decimal.NewFromFloat(areaSqFt)).Round(int32(p.currency.Digits))
}

func (p PriceTerm) String() string {
	return p.AmountText() + " " + p.currency.Code
}
