package renderer

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rezonia/invoice-pdf/internal/money"
)

// dateLayout renders calendar dates as "05 Mar 2024" (en-GB convention).
const dateLayout = "02 Jan 2006"

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// amount joins a currency symbol or code with a two-decimal value,
// e.g. "£ 10.00" or "GBP 24.00".
func amount(unit string, d decimal.Decimal) string {
	return unit + " " + money.Format(d)
}
