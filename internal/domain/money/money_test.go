package money_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Spok95/stone-inventory/internal/domain/money"
	"github.com/Spok95/stone-inventory/internal/errs"
)

func amount(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := money.ParseAmount(s)
	require.NoError(t, err)
	return d
}

func TestParseCurrency(t *testing.T) {
	t.Parallel()

	usd, err := money.ParseCurrency("USD")
	require.NoError(t, err)
	assert.Equal(t, money.Currency{Code: "USD", Digits: 2}, usd)

	jpy, err := money.ParseCurrency("JPY")
	require.NoError(t, err)
	assert.Equal(t, 0, jpy.Digits)

	_, err = money.ParseCurrency("XYZW")
	assert.True(t, errors.Is(err, errs.ErrInvalidInput))
}

func TestScaleAgainstCurrencyDigits(t *testing.T) {
	t.Parallel()

	usd := money.MustCurrency(money.USD)

	_, err := money.NewPriceTerm(amount(t, "10.999"), usd)
	assert.True(t, errors.Is(err, errs.ErrInvalidInput))

	p, err := money.NewPriceTerm(amount(t, "10.99"), usd)
	require.NoError(t, err)
	assert.Equal(t, "10.99 USD", p.String())

	_, err = money.NewPriceTerm(amount(t, "10.990"), usd)
	assert.Error(t, err, "trailing zeros count toward scale")

	_, err = money.NewPriceTerm(amount(t, "45"), usd)
	assert.NoError(t, err)
}

func TestScaleIsCurrencyGeneric(t *testing.T) {
	t.Parallel()

	jpy := money.MustCurrency("JPY")
	_, err := money.NewPriceTerm(amount(t, "1500.5"), jpy)
	assert.Error(t, err)
	_, err = money.NewPriceTerm(amount(t, "1500"), jpy)
	assert.NoError(t, err)
}

func TestUpdateKeepsTermOnFailure(t *testing.T) {
	t.Parallel()

	usd := money.MustCurrency(money.USD)
	p, err := money.NewPriceTerm(amount(t, "20.00"), usd)
	require.NoError(t, err)

	err = p.Update(amount(t, "21.001"), usd)
	assert.True(t, errors.Is(err, errs.ErrInvalidInput))
	assert.Equal(t, "20.00", p.AmountText())

	require.NoError(t, p.Update(amount(t, "21.5"), usd))
	assert.Equal(t, "21.5", p.AmountText())
}

func TestEqualIgnoresEverythingButAmountAndCurrency(t *testing.T) {
	t.Parallel()

	usd := money.MustCurrency(money.USD)
	a, _ := money.NewPriceTerm(amount(t, "12.50"), usd)
	b, _ := money.NewPriceTerm(amount(t, "12.5"), usd)
	c, _ := money.NewPriceTerm(amount(t, "12.50"), money.MustCurrency("EUR"))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestParseAmount(t *testing.T) {
	t.Parallel()

	_, err := money.ParseAmount("  ")
	assert.True(t, errors.Is(err, errs.ErrInvalidInput))
	_, err = money.ParseAmount("ten")
	assert.True(t, errors.Is(err, errs.ErrInvalidInput))
	assert.Equal(t, 3, money.Scale(amount(t, "1.234")))
	assert.Equal(t, 0, money.Scale(amount(t, "1200")))
}

func TestForArea(t *testing.T) {
	t.Parallel()

	p, err := money.NewPriceTerm(amount(t, "12.99"), money.MustCurrency(money.USD))
	require.NoError(t, err)
	assert.Equal(t, "714.45", p.For(55).StringFixed(2))
}
