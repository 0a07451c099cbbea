// Package validator is the sole gate between raw caller input and the
// renderer. It decodes loose JSON, applies defaults, coerces dates and
// numbers, and checks every constraint, reporting all violations at once.
//
// Normalization and constraint checking are deliberately separate passes:
// Normalize handles defaults and type coercion, Check handles presence,
// non-negativity and enumeration rules. Parse composes the two.
package validator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rezonia/invoice-pdf/internal/model"
	"github.com/rezonia/invoice-pdf/internal/money"
)

// Input is the untyped invoice shape accepted at the external boundary.
// Every field is optional here; Parse decides what is actually required.
type Input struct {
	InvoiceNumber *string         `json:"invoiceNumber"`
	Date          json.RawMessage `json:"date"`
	DueDate       json.RawMessage `json:"dueDate"`
	Business      *BusinessInput  `json:"business"`
	Customer      *CustomerInput  `json:"customer"`
	Items         []ItemInput     `json:"items"`
	Subtotal      json.RawMessage `json:"subtotal"`
	VATRate       json.RawMessage `json:"vatRate"`
	VATAmount     json.RawMessage `json:"vatAmount"`
	Total         json.RawMessage `json:"total"`
	Currency      *string         `json:"currency"`
	Notes         *string         `json:"notes"`
	Terms         *string         `json:"terms"`

	hasItems bool
}

// BusinessInput mirrors model.Business prior to validation.
type BusinessInput struct {
	Name          *string `json:"name"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
	AccountName   *string `json:"accountName"`
	AccountNumber *string `json:"accountNumber"`
	SortCode      *string `json:"sortCode"`
	Logo          *string `json:"logo"`
}

// CustomerInput mirrors model.Customer prior to validation.
type CustomerInput struct {
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Address   *string `json:"address"`
	VATNumber *string `json:"vatNumber"`
}

// ItemInput mirrors model.Item prior to validation.
type ItemInput struct {
	Description *string         `json:"description"`
	Quantity    json.RawMessage `json:"quantity"`
	UnitPrice   json.RawMessage `json:"unitPrice"`
	Total       json.RawMessage `json:"total"`
}

// UnmarshalJSON records whether the items key was present at all, so a
// missing items array can be told apart from an explicitly empty one.
func (in *Input) UnmarshalJSON(data []byte) error {
	type alias Input
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	var probe struct {
		Items json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	*in = Input(a)
	in.hasItems = probe.Items != nil && !bytes.Equal(probe.Items, []byte("null"))
	return nil
}

// Parse produces a fully-populated invoice from raw JSON, or the complete
// list of constraint violations. It never returns a partial invoice.
func Parse(data []byte) (*model.Invoice, error) {
	var in Input
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, model.ValidationErrors{typeError(err)}
	}
	return ParseInput(&in)
}

// ParseInput validates an already-decoded Input.
func ParseInput(in *Input) (*model.Invoice, error) {
	inv, errs := Normalize(in)
	errs = append(errs, Check(inv, in)...)
	if len(errs) > 0 {
		return nil, errs
	}
	return inv, nil
}

// Normalize applies defaults and coerces dates and numbers. It reports
// coercion failures but performs no presence or range checks.
func Normalize(in *Input) (*model.Invoice, model.ValidationErrors) {
	var errs model.ValidationErrors

	inv := &model.Invoice{
		Number:   model.DefaultInvoiceNumber,
		Currency: model.DefaultCurrency,
	}
	if in.InvoiceNumber != nil && *in.InvoiceNumber != "" {
		inv.Number = *in.InvoiceNumber
	}
	if in.Currency != nil && *in.Currency != "" {
		inv.Currency = model.Currency(*in.Currency)
	}

	inv.IssueDate = parseDate("date", in.Date, &errs)
	inv.DueDate = parseDate("dueDate", in.DueDate, &errs)

	inv.Subtotal = parseAmount("subtotal", in.Subtotal, money.Zero, &errs)
	inv.VATAmount = parseAmount("vatAmount", in.VATAmount, money.Zero, &errs)
	inv.Total = parseAmount("total", in.Total, money.Zero, &errs)
	if present(in.VATRate) {
		rate := parseAmount("vatRate", in.VATRate, money.Zero, &errs)
		inv.VATRate = &rate
	}

	if in.Business != nil {
		inv.Business = model.Business{
			Name:          str(in.Business.Name),
			Email:         str(in.Business.Email),
			Phone:         str(in.Business.Phone),
			Address:       str(in.Business.Address),
			AccountName:   str(in.Business.AccountName),
			AccountNumber: str(in.Business.AccountNumber),
			SortCode:      str(in.Business.SortCode),
			Logo:          str(in.Business.Logo),
		}
	}
	if in.Customer != nil {
		inv.Customer = model.Customer{
			Name:      str(in.Customer.Name),
			Email:     str(in.Customer.Email),
			Address:   str(in.Customer.Address),
			VATNumber: str(in.Customer.VATNumber),
		}
	}

	if in.hasItems {
		inv.Items = make([]model.Item, len(in.Items))
		for i, it := range in.Items {
			item := model.Item{
				Description: str(it.Description),
				Quantity:    decimal.NewFromInt(1),
			}
			if present(it.Quantity) {
				item.Quantity = parseAmount(itemField(i, "quantity"), it.Quantity, item.Quantity, &errs)
			}
			item.UnitPrice = parseAmount(itemField(i, "unitPrice"), it.UnitPrice, money.Zero, &errs)
			item.Total = parseAmount(itemField(i, "total"), it.Total, money.Zero, &errs)
			inv.Items[i] = item
		}
	}

	inv.Notes = str(in.Notes)
	inv.Terms = str(in.Terms)
	return inv, errs
}

// Check runs presence, non-negativity and enumeration rules over a
// normalized invoice. The raw input is consulted only to distinguish an
// absent items array from an empty one.
func Check(inv *model.Invoice, in *Input) model.ValidationErrors {
	var errs model.ValidationErrors

	if !present(in.Date) {
		errs = append(errs, model.NewValidationError("date", nil, "required", "issue date is required"))
	}
	if !present(in.DueDate) {
		errs = append(errs, model.NewValidationError("dueDate", nil, "required", "due date is required"))
	}
	if in.Business == nil || inv.Business.Name == "" {
		errs = append(errs, model.NewValidationError("business.name", nil, "required", "business name is required"))
	}
	if in.Customer == nil || inv.Customer.Name == "" {
		errs = append(errs, model.NewValidationError("customer.name", nil, "required", "customer name is required"))
	}
	if !in.hasItems {
		errs = append(errs, model.NewValidationError("items", nil, "required", "items array is required (may be empty)"))
	}

	if !inv.Currency.Valid() {
		errs = append(errs, model.NewValidationError("currency", string(inv.Currency), "enum",
			"currency must be one of GBP, USD, CAD, EUR"))
	}

	errs = append(errs, nonNegative("subtotal", inv.Subtotal)...)
	errs = append(errs, nonNegative("vatAmount", inv.VATAmount)...)
	errs = append(errs, nonNegative("total", inv.Total)...)
	if inv.VATRate != nil {
		errs = append(errs, nonNegative("vatRate", *inv.VATRate)...)
	}
	for i, item := range inv.Items {
		errs = append(errs, nonNegative(itemField(i, "quantity"), item.Quantity)...)
		errs = append(errs, nonNegative(itemField(i, "unitPrice"), item.UnitPrice)...)
		errs = append(errs, nonNegative(itemField(i, "total"), item.Total)...)
	}

	return errs
}

const dateLayout = "2006-01-02"

func parseDate(field string, raw json.RawMessage, errs *model.ValidationErrors) time.Time {
	if !present(raw) {
		return time.Time{}
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		*errs = append(*errs, model.NewValidationError(field, string(raw), "type", "date must be a string"))
		return time.Time{}
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC().Truncate(24 * time.Hour)
	}
	*errs = append(*errs, model.NewValidationError(field, s, "format", "date must be in YYYY-MM-DD format"))
	return time.Time{}
}

func parseAmount(field string, raw json.RawMessage, def decimal.Decimal, errs *model.ValidationErrors) decimal.Decimal {
	if !present(raw) {
		return def
	}
	if len(raw) > 0 && (raw[0] == '"' || raw[0] == '{' || raw[0] == '[' || raw[0] == 't' || raw[0] == 'f') {
		*errs = append(*errs, model.NewValidationError(field, string(raw), "type", "must be a number"))
		return def
	}
	d, err := money.FromString(string(raw))
	if err != nil {
		*errs = append(*errs, model.NewValidationError(field, string(raw), "type", "must be a number"))
		return def
	}
	return d
}

func nonNegative(field string, d decimal.Decimal) model.ValidationErrors {
	if money.IsNonNegative(d) {
		return nil
	}
	return model.ValidationErrors{
		model.NewValidationError(field, d.String(), "nonnegative", "must not be negative"),
	}
}

func present(raw json.RawMessage) bool {
	return raw != nil && !bytes.Equal(raw, []byte("null"))
}

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func itemField(i int, name string) string {
	return fmt.Sprintf("items[%d].%s", i, name)
}

func typeError(err error) *model.ValidationError {
	if ute, ok := err.(*json.UnmarshalTypeError); ok && ute.Field != "" {
		return model.NewValidationError(ute.Field, ute.Value, "type",
			fmt.Sprintf("cannot be a %s", ute.Value))
	}
	return model.NewValidationError("$", nil, "json", err.Error())
}
