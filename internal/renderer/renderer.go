package renderer

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/rezonia/invoice-pdf/internal/model"
)

// Page geometry in millimetres (A4 portrait).
const (
	marginLeft  = 15.0
	marginTop   = 18.0
	marginRight = 15.0
	logoWidth   = 32.0
)

// documentDate is embedded as the PDF creation/modification date. It is
// fixed so that identical invoices produce identical output bytes.
var documentDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Renderer produces invoice PDFs. Renderers are stateless and safe for
// concurrent use; each Render call is independent.
type Renderer struct {
	fetcher *LogoFetcher
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithHTTPClient sets the client used to fetch remote logos.
func WithHTTPClient(client *http.Client) Option {
	return func(r *Renderer) {
		r.fetcher = NewLogoFetcher(client)
	}
}

// New creates a renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range opts {
		opt(r)
	}
	if r.fetcher == nil {
		r.fetcher = NewLogoFetcher(nil)
	}
	return r
}

// Render writes the invoice document to w. A logo that cannot be fetched
// or decoded is skipped and reported as a warning; every other failure is
// fatal. The returned warnings are human-readable.
func (r *Renderer) Render(ctx context.Context, inv *model.Invoice, w io.Writer) ([]string, error) {
	layout := Compose(inv)

	var warnings []string
	var logo *Logo
	if layout.Header.LogoRef != "" {
		var err error
		logo, err = r.fetcher.Fetch(ctx, layout.Header.LogoRef)
		if err != nil {
			// AssetError is recoverable: omit the image and continue.
			warnings = append(warnings, err.Error())
			logo = nil
		}
	}

	pdf := newDocument(inv)
	draw(pdf, layout, logo)
	if err := pdf.Output(w); err != nil {
		return warnings, err
	}
	return warnings, nil
}

func newDocument(inv *model.Invoice) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice "+inv.Number, true)
	pdf.SetAuthor(inv.Business.Name, true)
	pdf.SetCreationDate(documentDate)
	pdf.SetModificationDate(documentDate)
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	// Single fixed page; the items table is not paginated.
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	return pdf
}

func draw(pdf *fpdf.Fpdf, l *Layout, logo *Logo) {
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pageW, _ := pdf.GetPageSize()
	contentW := pageW - marginLeft - marginRight

	drawHeader(pdf, tr, l.Header, logo, pageW, contentW)
	drawMeta(pdf, tr, l.Meta, contentW)
	drawItems(pdf, tr, l.Items, contentW)
	drawTotals(pdf, tr, l.Totals, pageW)
	drawFooter(pdf, tr, l.Footer, contentW)
}

func drawHeader(pdf *fpdf.Fpdf, tr func(string) string, h Header, logo *Logo, pageW, contentW float64) {
	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(30, 30, 30)
	pdf.CellFormat(contentW-logoWidth, 10, tr(h.Title), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(130, 130, 130)
	pdf.CellFormat(contentW-logoWidth, 6, tr(h.Number), "", 1, "L", false, 0, "")

	if logo != nil {
		opts := fpdf.ImageOptions{ImageType: logo.Type, ReadDpi: true}
		pdf.RegisterImageOptionsReader("business-logo", opts, bytes.NewReader(logo.Data))
		pdf.ImageOptions("business-logo", pageW-marginRight-logoWidth, marginTop, logoWidth, 0, false, opts, 0, "")
	}
	pdf.Ln(10)
}

func drawMeta(pdf *fpdf.Fpdf, tr func(string) string, m Meta, contentW float64) {
	top := pdf.GetY()
	datesW := 45.0
	partyW := (contentW - datesW) / 2

	// Dates column
	pdf.SetXY(marginLeft, top)
	drawSectionLabel(pdf, tr, m.IssuedLabel, datesW)
	drawBodyLine(pdf, tr, m.Issued, datesW, marginLeft)
	pdf.SetX(marginLeft)
	pdf.Ln(3)
	drawSectionLabel(pdf, tr, m.DueLabel, datesW)
	drawBodyLine(pdf, tr, m.Due, datesW, marginLeft)
	maxY := pdf.GetY()

	// Party columns
	if y := drawParty(pdf, tr, m.BilledTo, marginLeft+datesW, top, partyW); y > maxY {
		maxY = y
	}
	if y := drawParty(pdf, tr, m.From, marginLeft+datesW+partyW, top, partyW); y > maxY {
		maxY = y
	}

	pdf.SetXY(marginLeft, maxY+12)
}

func drawParty(pdf *fpdf.Fpdf, tr func(string) string, b PartyBlock, x, y, w float64) float64 {
	pdf.SetXY(x, y)
	drawSectionLabel(pdf, tr, b.Label, w)

	pdf.SetX(x)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(30, 30, 30)
	pdf.CellFormat(w, 5, tr(b.Name), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(80, 80, 80)
	for _, line := range b.Lines {
		pdf.SetX(x)
		pdf.CellFormat(w, 4.5, tr(line), "", 1, "L", false, 0, "")
	}
	return pdf.GetY()
}

func drawSectionLabel(pdf *fpdf.Fpdf, tr func(string) string, label string, w float64) {
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(130, 130, 130)
	pdf.CellFormat(w, 5, tr(label), "", 1, "L", false, 0, "")
}

func drawBodyLine(pdf *fpdf.Fpdf, tr func(string) string, text string, w, x float64) {
	pdf.SetX(x)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(30, 30, 30)
	pdf.CellFormat(w, 5, tr(text), "", 1, "L", false, 0, "")
}

func drawItems(pdf *fpdf.Fpdf, tr func(string) string, t Table, contentW float64) {
	widths := []float64{contentW - 24 - 32 - 32, 24, 32, 32}
	aligns := []string{"L", "C", "R", "R"}

	pdf.SetX(marginLeft)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(80, 80, 80)
	pdf.SetFillColor(245, 245, 245)
	for i, col := range t.Columns {
		ln := 0
		if i == len(t.Columns)-1 {
			ln = 1
		}
		pdf.CellFormat(widths[i], 7, tr(col), "", ln, aligns[i], true, 0, "")
	}

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(30, 30, 30)
	pdf.SetDrawColor(230, 230, 230)
	for _, row := range t.Rows {
		pdf.SetX(marginLeft)
		for i, cell := range row {
			ln := 0
			if i == len(row)-1 {
				ln = 1
			}
			pdf.CellFormat(widths[i], 7, tr(cell), "B", ln, aligns[i], false, 0, "")
		}
	}
	pdf.Ln(6)
}

func drawTotals(pdf *fpdf.Fpdf, tr func(string) string, rows []TotalRow, pageW float64) {
	blockW := 80.0
	x := pageW - marginRight - blockW

	for _, row := range rows {
		pdf.SetX(x)
		if row.Final {
			pdf.SetDrawColor(30, 30, 30)
			pdf.Line(x, pdf.GetY(), x+blockW, pdf.GetY())
			pdf.SetFont("Helvetica", "B", 10)
		} else {
			pdf.SetFont("Helvetica", "", 9)
		}
		pdf.SetTextColor(30, 30, 30)
		pdf.CellFormat(blockW/2, 6, tr(row.Label), "", 0, "L", false, 0, "")
		pdf.CellFormat(blockW/2, 6, tr(row.Value), "", 1, "R", false, 0, "")
	}
	pdf.Ln(10)
}

func drawFooter(pdf *fpdf.Fpdf, tr func(string) string, f Footer, contentW float64) {
	if f.Notes != "" {
		pdf.SetX(marginLeft)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(80, 80, 80)
		pdf.CellFormat(contentW, 5, tr(f.Notes), "", 1, "L", false, 0, "")
		pdf.Ln(3)
	}

	if f.HasTerms() {
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(130, 130, 130)
		if f.VATNumber != "" {
			pdf.SetX(marginLeft)
			pdf.CellFormat(contentW, 4.5, tr("VAT "+f.VATNumber), "", 1, "L", false, 0, "")
		}
		if f.Terms != "" {
			pdf.SetX(marginLeft)
			pdf.CellFormat(contentW, 4.5, tr(f.Terms), "", 1, "L", false, 0, "")
		}
		pdf.Ln(3)
	}

	if f.Payment != nil {
		pdf.SetX(marginLeft)
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetTextColor(30, 30, 30)
		pdf.CellFormat(contentW, 5, tr(f.Payment.Title), "", 1, "L", false, 0, "")

		for _, row := range f.Payment.Rows {
			pdf.SetX(marginLeft)
			pdf.SetFont("Helvetica", "", 8)
			pdf.SetTextColor(130, 130, 130)
			pdf.CellFormat(32, 4.5, tr(row.Label), "", 0, "L", false, 0, "")
			pdf.SetTextColor(30, 30, 30)
			pdf.CellFormat(contentW-32, 4.5, tr(row.Value), "", 1, "L", false, 0, "")
		}
	}
}
