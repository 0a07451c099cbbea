// Package invoicepdf provides the public API for generating invoice PDF
// documents from raw JSON input.
//
// The flow is validate then render: raw input passes through the
// validator to produce an immutable invoice record, and the renderer
// lays the record out on a single A4 page.
//
// Example usage:
//
//	inv, err := invoicepdf.Parse(rawJSON)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	warnings, err := invoicepdf.GenerateFile(ctx, inv, "invoice.pdf")
package invoicepdf

import (
	"bytes"
	"context"
	"encoding/json"
	"io"

	"github.com/rezonia/invoice-pdf/internal/model"
	"github.com/rezonia/invoice-pdf/internal/output"
	"github.com/rezonia/invoice-pdf/internal/renderer"
	"github.com/rezonia/invoice-pdf/internal/schema"
	"github.com/rezonia/invoice-pdf/internal/validator"
)

// Re-export core types for public API
type (
	Invoice  = model.Invoice
	Business = model.Business
	Customer = model.Customer
	Item     = model.Item
	Currency = model.Currency
)

// Re-export currency constants
const (
	CurrencyGBP = model.CurrencyGBP
	CurrencyUSD = model.CurrencyUSD
	CurrencyCAD = model.CurrencyCAD
	CurrencyEUR = model.CurrencyEUR
)

// Re-export error types
type (
	ValidationError  = model.ValidationError
	ValidationErrors = model.ValidationErrors
	AssetError       = model.AssetError
	WriteError       = model.WriteError
)

// Request is the full tool-shaped input: the invoice record plus an
// optional explicit output path.
type Request struct {
	Invoice    json.RawMessage `json:"invoice"`
	OutputPath string          `json:"outputPath,omitempty"`
}

// Parse validates raw invoice JSON into an immutable invoice record.
func Parse(data []byte) (*Invoice, error) {
	return validator.Parse(data)
}

// Schema returns the static declaration of the accepted input shape.
func Schema() *schema.Property {
	return schema.Definition()
}

// Generate renders a validated invoice to w.
func Generate(ctx context.Context, inv *Invoice, w io.Writer) ([]string, error) {
	return renderer.New().Render(ctx, inv, w)
}

// GenerateFile renders a validated invoice and writes it to path.
func GenerateFile(ctx context.Context, inv *Invoice, path string) ([]string, error) {
	var buf bytes.Buffer
	warnings, err := renderer.New().Render(ctx, inv, &buf)
	if err != nil {
		return warnings, err
	}
	return warnings, output.Write(path, buf.Bytes())
}

// GenerateJSON handles a complete tool request: validate the embedded
// invoice, resolve the destination (defaulting next to the user's Desktop
// when no path is given) and write the document. It returns the final
// path and any non-fatal warnings.
func GenerateJSON(ctx context.Context, raw []byte) (string, []string, error) {
	var req Request
	if err := json.Unmarshal(raw, &req); err != nil {
		return "", nil, model.ValidationErrors{
			model.NewValidationError("$", nil, "json", err.Error()),
		}
	}
	if req.Invoice == nil {
		// Bare invoice objects are accepted as a convenience.
		req.Invoice = raw
	}

	inv, err := validator.Parse(req.Invoice)
	if err != nil {
		return "", nil, err
	}

	path, err := output.ResolvePath(req.OutputPath, inv.Number)
	if err != nil {
		return "", nil, err
	}
	warnings, err := GenerateFile(ctx, inv, path)
	return path, warnings, err
}
