package money

import (
	"strings"

	"golang.org/x/text/currency"

	"github.com/Spok95/stone-inventory/internal/errs"
)

// USD is the only currency the showroom prices in today.
const USD = "USD"

// Currency is an ISO 4217 code with its number of fractional digits.
type Currency struct {
	Code   string
	Digits int
}

func ParseCurrency(code string) (Currency, error) {
	u, err := currency.ParseISO(strings.TrimSpace(code))
	if err != nil {
		return Currency{}, errs.Invalid("unknown currency: %s", code)
	}
	scale, _ := currency.Standard.Rounding(u)
	return Currency{Code: u.String(), Digits: scale}, nil
}

// MustCurrency is for package-level defaults only.
func MustCurrency(code string) Currency {
	c, err := ParseCurrency(code)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Currency) String() string { return c.Code }
