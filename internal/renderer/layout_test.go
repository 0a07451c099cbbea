package renderer_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/invoice-pdf/internal/model"
	"github.com/rezonia/invoice-pdf/internal/renderer"
)

func testInvoice() *model.Invoice {
	rate := decimal.NewFromFloat(0.2)
	return &model.Invoice{
		Number:    "INV-0042",
		IssueDate: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		DueDate:   time.Date(2024, 4, 4, 0, 0, 0, 0, time.UTC),
		Business: model.Business{
			Name:    "Acme",
			Email:   "billing@acme.test",
			Address: "1 Factory Road\nSheffield",
		},
		Customer: model.Customer{
			Name:    "Bob",
			Address: "2 High Street\nLeeds",
		},
		Items: []model.Item{
			{
				Description: "Widget",
				Quantity:    decimal.NewFromInt(2),
				UnitPrice:   decimal.NewFromInt(10),
				Total:       decimal.NewFromInt(20),
			},
		},
		Subtotal:  decimal.NewFromInt(20),
		VATRate:   &rate,
		VATAmount: decimal.NewFromInt(4),
		Total:     decimal.NewFromInt(24),
		Currency:  model.CurrencyGBP,
	}
}

func TestCompose_Header(t *testing.T) {
	l := renderer.Compose(testInvoice())

	assert.Equal(t, "INVOICE", l.Header.Title)
	assert.Equal(t, "#INV-0042", l.Header.Number)
	assert.Empty(t, l.Header.LogoRef)
}

func TestCompose_Dates(t *testing.T) {
	l := renderer.Compose(testInvoice())

	assert.Equal(t, "05 Mar 2024", l.Meta.Issued)
	assert.Equal(t, "04 Apr 2024", l.Meta.Due)
}

func TestCompose_PartyBlocks(t *testing.T) {
	l := renderer.Compose(testInvoice())

	assert.Equal(t, "Billed to", l.Meta.BilledTo.Label)
	assert.Equal(t, "Bob", l.Meta.BilledTo.Name)
	assert.Equal(t, []string{"2 High Street", "Leeds"}, l.Meta.BilledTo.Lines)

	assert.Equal(t, "From", l.Meta.From.Label)
	assert.Equal(t, "Acme", l.Meta.From.Name)
	assert.Equal(t, []string{"1 Factory Road", "Sheffield", "billing@acme.test"}, l.Meta.From.Lines)
}

func TestCompose_EmptyAddressYieldsNoLines(t *testing.T) {
	inv := testInvoice()
	inv.Customer.Address = ""
	inv.Customer.Email = ""

	l := renderer.Compose(inv)
	assert.Empty(t, l.Meta.BilledTo.Lines)
}

func TestCompose_ItemsTable(t *testing.T) {
	l := renderer.Compose(testInvoice())

	assert.Equal(t, []string{"Description", "Qty", "Rate", "Total"}, l.Items.Columns)
	require.Len(t, l.Items.Rows, 1)
	assert.Equal(t, []string{"Widget", "2", "£ 10.00", "£ 20.00"}, l.Items.Rows[0])
}

func TestCompose_ItemOrderPreserved(t *testing.T) {
	inv := testInvoice()
	inv.Items = append(inv.Items, model.Item{
		Description: "Gadget",
		Quantity:    decimal.NewFromFloat(1.5),
		UnitPrice:   decimal.NewFromInt(8),
		Total:       decimal.NewFromInt(12),
	})

	l := renderer.Compose(inv)
	require.Len(t, l.Items.Rows, 2)
	assert.Equal(t, "Widget", l.Items.Rows[0][0])
	assert.Equal(t, "Gadget", l.Items.Rows[1][0])
	assert.Equal(t, "1.5", l.Items.Rows[1][1], "quantity renders as-is")
}

func TestCompose_Totals(t *testing.T) {
	l := renderer.Compose(testInvoice())

	require.Len(t, l.Totals, 4)
	assert.Equal(t, renderer.TotalRow{Label: "Subtotal", Value: "£ 20.00"}, l.Totals[0])
	assert.Equal(t, renderer.TotalRow{Label: "Tax (20%)", Value: "£ 4.00"}, l.Totals[1])
	assert.Equal(t, renderer.TotalRow{Label: "Total", Value: "£ 24.00"}, l.Totals[2])
	assert.Equal(t, renderer.TotalRow{Label: "Amount due", Value: "GBP 24.00", Final: true}, l.Totals[3])
}

func TestCompose_NoVATRate_NoTaxRow(t *testing.T) {
	inv := testInvoice()
	inv.VATRate = nil

	l := renderer.Compose(inv)
	require.Len(t, l.Totals, 3)
	assert.Equal(t, "Subtotal", l.Totals[0].Label)
	assert.Equal(t, "Total", l.Totals[1].Label)
	assert.Equal(t, "Amount due", l.Totals[2].Label)
}

func TestCompose_ZeroVATRate_TaxRowShown(t *testing.T) {
	inv := testInvoice()
	zero := decimal.Zero
	inv.VATRate = &zero
	inv.VATAmount = decimal.Zero

	l := renderer.Compose(inv)
	require.Len(t, l.Totals, 4)
	assert.Equal(t, "Tax (0%)", l.Totals[1].Label)
	assert.Equal(t, "£ 0.00", l.Totals[1].Value)
}

func TestCompose_CurrencyCodeInAmountDue(t *testing.T) {
	for _, tc := range []struct {
		currency model.Currency
		symbol   string
	}{
		{model.CurrencyGBP, "£"},
		{model.CurrencyUSD, "$"},
		{model.CurrencyCAD, "CA$"},
		{model.CurrencyEUR, "€"},
	} {
		inv := testInvoice()
		inv.Currency = tc.currency

		l := renderer.Compose(inv)
		assert.Equal(t, tc.symbol+" 20.00", l.Totals[0].Value)
		assert.Equal(t, string(tc.currency)+" 24.00", l.Totals[len(l.Totals)-1].Value)
	}
}

func TestCompose_Footer_PaymentDetails(t *testing.T) {
	inv := testInvoice()
	inv.Business.AccountName = "Acme Ltd"
	inv.Business.SortCode = "BARCGB22"

	l := renderer.Compose(inv)
	require.NotNil(t, l.Footer.Payment)
	assert.Equal(t, "Payment Details", l.Footer.Payment.Title)
	require.Len(t, l.Footer.Payment.Rows, 2)
	assert.Equal(t, renderer.PaymentRow{Label: "Account Name:", Value: "Acme Ltd"}, l.Footer.Payment.Rows[0])
	assert.Equal(t, renderer.PaymentRow{Label: "Swift/BIC:", Value: "BARCGB22"}, l.Footer.Payment.Rows[1])
}

func TestCompose_Footer_NoPaymentDetails(t *testing.T) {
	l := renderer.Compose(testInvoice())
	assert.Nil(t, l.Footer.Payment)
}

func TestCompose_Footer_TermsBlock(t *testing.T) {
	inv := testInvoice()
	l := renderer.Compose(inv)
	assert.False(t, l.Footer.HasTerms())

	inv.Customer.VATNumber = "GB123456789"
	l = renderer.Compose(inv)
	assert.True(t, l.Footer.HasTerms())
	assert.Equal(t, "GB123456789", l.Footer.VATNumber)

	inv.Customer.VATNumber = ""
	inv.Terms = "Payment due within 30 days"
	l = renderer.Compose(inv)
	assert.True(t, l.Footer.HasTerms())
	assert.Equal(t, "Payment due within 30 days", l.Footer.Terms)
}

func TestCompose_LogoRefCarried(t *testing.T) {
	inv := testInvoice()
	inv.Business.Logo = "https://example.com/logo.png"

	l := renderer.Compose(inv)
	assert.Equal(t, "https://example.com/logo.png", l.Header.LogoRef)
}
