package model

// Currency is one of the fixed set of supported invoice currencies.
type Currency string

const (
	CurrencyGBP Currency = "GBP"
	CurrencyUSD Currency = "USD"
	CurrencyCAD Currency = "CAD"
	CurrencyEUR Currency = "EUR"
)

// DefaultCurrency is applied when the input carries no currency.
const DefaultCurrency = CurrencyGBP

// Currencies lists every supported currency in declaration order.
func Currencies() []Currency {
	return []Currency{CurrencyGBP, CurrencyUSD, CurrencyCAD, CurrencyEUR}
}

var currencySymbols = map[Currency]string{
	CurrencyGBP: "£",
	CurrencyUSD: "$",
	CurrencyCAD: "CA$",
	CurrencyEUR: "€",
}

// Valid reports whether c is a member of the supported set.
func (c Currency) Valid() bool {
	_, ok := currencySymbols[c]
	return ok
}

// Symbol returns the display glyph for the currency. The mapping is total
// over the supported set; an unknown currency never reaches the renderer.
func (c Currency) Symbol() string {
	return currencySymbols[c]
}

// Code returns the three-letter currency code.
func (c Currency) Code() string {
	return string(c)
}
