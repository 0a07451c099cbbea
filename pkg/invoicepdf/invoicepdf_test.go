package invoicepdf_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/invoice-pdf/pkg/invoicepdf"
)

const validInvoice = `{
	"invoiceNumber": "INV-0042",
	"date": "2024-03-05",
	"dueDate": "2024-04-04",
	"business": {"name": "Acme"},
	"customer": {"name": "Bob"},
	"items": [{"description": "Widget", "quantity": 2, "unitPrice": 10, "total": 20}],
	"subtotal": 20,
	"vatRate": 0.2,
	"vatAmount": 4,
	"total": 24,
	"currency": "GBP"
}`

func TestParseAndGenerate(t *testing.T) {
	inv, err := invoicepdf.Parse([]byte(validInvoice))
	require.NoError(t, err)
	assert.Equal(t, "INV-0042", inv.Number)
	assert.Equal(t, invoicepdf.CurrencyGBP, inv.Currency)

	var buf bytes.Buffer
	warnings, err := invoicepdf.Generate(context.Background(), inv, &buf)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestParse_InvalidAggregates(t *testing.T) {
	_, err := invoicepdf.Parse([]byte(`{"subtotal": -1, "currency": "XXX"}`))
	require.Error(t, err)

	var verrs invoicepdf.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Contains(t, verrs.Fields(), "subtotal")
	assert.Contains(t, verrs.Fields(), "currency")
}

func TestGenerateFile(t *testing.T) {
	inv, err := invoicepdf.Parse([]byte(validInvoice))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "invoice.pdf")
	warnings, err := invoicepdf.GenerateFile(context.Background(), inv, path)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestGenerateJSON_WrappedRequest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invoice.pdf")
	raw, err := json.Marshal(invoicepdf.Request{
		Invoice:    json.RawMessage(validInvoice),
		OutputPath: path,
	})
	require.NoError(t, err)

	got, warnings, err := invoicepdf.GenerateJSON(context.Background(), raw)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, path, got)

	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestGenerateJSON_ValidationFailure(t *testing.T) {
	_, _, err := invoicepdf.GenerateJSON(context.Background(), []byte(`{"invoice": {}}`))
	require.Error(t, err)

	var verrs invoicepdf.ValidationErrors
	require.True(t, errors.As(err, &verrs))
}

func TestSchema(t *testing.T) {
	def := invoicepdf.Schema()
	require.NotNil(t, def)
	assert.Contains(t, def.Properties, "invoice")
}
