package model_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/invoice-pdf/internal/model"
)

func TestCurrency_TotalMapping(t *testing.T) {
	for _, c := range model.Currencies() {
		assert.True(t, c.Valid())
		assert.NotEmpty(t, c.Symbol(), "currency %s must have a symbol", c)
		assert.Len(t, c.Code(), 3)
	}
}

func TestCurrency_Symbols(t *testing.T) {
	assert.Equal(t, "£", model.CurrencyGBP.Symbol())
	assert.Equal(t, "$", model.CurrencyUSD.Symbol())
	assert.Equal(t, "CA$", model.CurrencyCAD.Symbol())
	assert.Equal(t, "€", model.CurrencyEUR.Symbol())
}

func TestCurrency_Invalid(t *testing.T) {
	assert.False(t, model.Currency("JPY").Valid())
	assert.False(t, model.Currency("").Valid())
	assert.False(t, model.Currency("gbp").Valid())
}

func TestAddressLines(t *testing.T) {
	assert.Equal(t, []string{"Line1", "Line2"}, model.AddressLines("Line1\nLine2"))
	assert.Equal(t, []string{"Line1", "Line2"}, model.AddressLines("Line1\r\nLine2"))
	assert.Equal(t, []string{"Single"}, model.AddressLines("Single"))
	assert.Empty(t, model.AddressLines(""))
}

func TestBusiness_HasPaymentDetails(t *testing.T) {
	assert.False(t, model.Business{Name: "Acme"}.HasPaymentDetails())
	assert.True(t, model.Business{AccountName: "Acme Ltd"}.HasPaymentDetails())
	assert.True(t, model.Business{AccountNumber: "12345678"}.HasPaymentDetails())
	assert.True(t, model.Business{SortCode: "BARCGB22"}.HasPaymentDetails())
}

func TestValidationError(t *testing.T) {
	err := model.NewValidationError("subtotal", "-5", "nonnegative", "must not be negative")

	require.Contains(t, err.Error(), "subtotal")
	require.Contains(t, err.Error(), "-5")
	require.Contains(t, err.Error(), "nonnegative")
}

func TestValidationErrors_Aggregate(t *testing.T) {
	errs := model.ValidationErrors{
		model.NewValidationError("date", nil, "required", "issue date is required"),
		model.NewValidationError("currency", "JPY", "enum", "currency must be one of GBP, USD, CAD, EUR"),
	}

	msg := errs.Error()
	assert.Contains(t, msg, "2 validation errors")
	assert.Contains(t, msg, "date")
	assert.Contains(t, msg, "currency")
	assert.Equal(t, []string{"date", "currency"}, errs.Fields())
}

func TestAssetError_Unwrap(t *testing.T) {
	cause := assert.AnError
	err := model.NewAssetError("https://example.com/logo.png", "failed to fetch logo", cause)

	require.Contains(t, err.Error(), "logo.png")
	require.ErrorIs(t, err, cause)
}

func TestWriteError_Unwrap(t *testing.T) {
	cause := assert.AnError
	err := model.NewWriteError("/tmp/out.pdf", "cannot create output file", cause)

	require.Contains(t, err.Error(), "/tmp/out.pdf")
	require.ErrorIs(t, err, cause)

	var werr *model.WriteError
	require.True(t, errors.As(err, &werr))
}

func TestInvoice_VATRatePresence(t *testing.T) {
	inv := model.Invoice{}
	assert.Nil(t, inv.VATRate)

	rate := decimal.NewFromFloat(0.2)
	inv.VATRate = &rate
	require.NotNil(t, inv.VATRate)
	assert.True(t, inv.VATRate.Equal(decimal.NewFromFloat(0.2)))
}
