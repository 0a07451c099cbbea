// Package renderer turns a validated invoice into a single-page A4 PDF.
//
// Rendering is split in two stages. Compose maps the invoice onto a tree
// of layout regions (header, parties, items table, totals, footer) as
// plain data: every formatting and conditional-inclusion rule lives
// there, and the result is directly assertable in tests. The draw step
// then walks that tree onto the page.
package renderer

import (
	"github.com/rezonia/invoice-pdf/internal/model"
	"github.com/rezonia/invoice-pdf/internal/money"
)

// Layout is the ordered region tree for one invoice document.
type Layout struct {
	Header Header
	Meta   Meta
	Items  Table
	Totals []TotalRow
	Footer Footer
}

// Header is the top region: title, invoice number and optional logo.
type Header struct {
	Title   string
	Number  string
	LogoRef string // empty when no logo was supplied
}

// Meta holds the dates column and the two party blocks.
type Meta struct {
	IssuedLabel string
	Issued      string
	DueLabel    string
	Due         string
	BilledTo    PartyBlock
	From        PartyBlock
}

// PartyBlock is one side-by-side party section: a label, the party name,
// then the address lines and optional email as separate lines.
type PartyBlock struct {
	Label string
	Name  string
	Lines []string
}

// Table is the items region: a fixed four-column header plus one row per
// item in input order.
type Table struct {
	Columns []string
	Rows    [][]string
}

// TotalRow is one line of the totals region. Final marks the closing
// "Amount due" row, which uses the currency code instead of the symbol.
type TotalRow struct {
	Label string
	Value string
	Final bool
}

// Footer carries the optional closing blocks. Payment is nil when the
// business has no bank details at all.
type Footer struct {
	Notes     string
	VATNumber string
	Terms     string
	Payment   *PaymentDetails
}

// PaymentDetails lists the bank detail rows; each label/value pair is
// emitted only when the corresponding field is present.
type PaymentDetails struct {
	Title string
	Rows  []PaymentRow
}

// PaymentRow is one label/value line of the payment details block.
type PaymentRow struct {
	Label string
	Value string
}

// HasTerms reports whether the combined VAT/terms block should render.
func (f Footer) HasTerms() bool {
	return f.VATNumber != "" || f.Terms != ""
}

// Compose builds the layout region tree for an invoice. It is a pure
// function of the invoice and never fails: all data has already passed
// validation.
func Compose(inv *model.Invoice) *Layout {
	symbol := inv.Currency.Symbol()
	code := inv.Currency.Code()

	l := &Layout{
		Header: Header{
			Title:   "INVOICE",
			Number:  "#" + inv.Number,
			LogoRef: inv.Business.Logo,
		},
		Meta: Meta{
			IssuedLabel: "Issued",
			Issued:      formatDate(inv.IssueDate),
			DueLabel:    "Due",
			Due:         formatDate(inv.DueDate),
			BilledTo:    partyBlock("Billed to", inv.Customer.Name, inv.Customer.Address, inv.Customer.Email),
			From:        partyBlock("From", inv.Business.Name, inv.Business.Address, inv.Business.Email),
		},
	}

	l.Items = Table{
		Columns: []string{"Description", "Qty", "Rate", "Total"},
		Rows:    make([][]string, len(inv.Items)),
	}
	for i, item := range inv.Items {
		l.Items.Rows[i] = []string{
			item.Description,
			item.Quantity.String(),
			amount(symbol, item.UnitPrice),
			amount(symbol, item.Total),
		}
	}

	l.Totals = append(l.Totals, TotalRow{Label: "Subtotal", Value: amount(symbol, inv.Subtotal)})
	if inv.VATRate != nil {
		l.Totals = append(l.Totals, TotalRow{
			Label: "Tax (" + money.Percent(*inv.VATRate) + "%)",
			Value: amount(symbol, inv.VATAmount),
		})
	}
	l.Totals = append(l.Totals,
		TotalRow{Label: "Total", Value: amount(symbol, inv.Total)},
		TotalRow{Label: "Amount due", Value: amount(code, inv.Total), Final: true},
	)

	l.Footer = Footer{
		Notes:     inv.Notes,
		VATNumber: inv.Customer.VATNumber,
		Terms:     inv.Terms,
	}
	if inv.Business.HasPaymentDetails() {
		pd := &PaymentDetails{Title: "Payment Details"}
		if inv.Business.AccountName != "" {
			pd.Rows = append(pd.Rows, PaymentRow{Label: "Account Name:", Value: inv.Business.AccountName})
		}
		if inv.Business.AccountNumber != "" {
			pd.Rows = append(pd.Rows, PaymentRow{Label: "Account Number:", Value: inv.Business.AccountNumber})
		}
		if inv.Business.SortCode != "" {
			pd.Rows = append(pd.Rows, PaymentRow{Label: "Swift/BIC:", Value: inv.Business.SortCode})
		}
		l.Footer.Payment = pd
	}

	return l
}

func partyBlock(label, name, address, email string) PartyBlock {
	b := PartyBlock{Label: label, Name: name}
	b.Lines = append(b.Lines, model.AddressLines(address)...)
	if email != "" {
		b.Lines = append(b.Lines, email)
	}
	return b
}
