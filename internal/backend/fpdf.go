package backend

import (
	"bytes"
	"context"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/alnah/go-corridorpdf/internal/layout"
	"github.com/alnah/go-corridorpdf/internal/metrics"
	"github.com/alnah/go-corridorpdf/internal/style"
)

// FPDF renders documents with the pure Go fpdf library using the core PDF
// fonts. It keeps no state between calls and is safe for concurrent use.
type FPDF struct{}

// NewFPDF creates an FPDF backend.
func NewFPDF() *FPDF {
	return &FPDF{}
}

// Render writes doc as PDF.
func (b *FPDF) Render(ctx context.Context, doc *layout.Document, meta Metadata) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: doc.Width, Ht: doc.Height},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	pdf.SetCatalogSort(true)
	writeMetadata(pdf, meta)

	for _, page := range doc.Pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		pdf.AddPage()
		for _, op := range page.Ops {
			drawOp(pdf, op)
		}
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	return buf.Bytes(), nil
}

// Close is a no-op.
func (b *FPDF) Close() error { return nil }

func writeMetadata(pdf *fpdf.Fpdf, meta Metadata) {
	pdf.SetTitle(meta.Title, true)
	pdf.SetSubject(meta.Subject, true)
	pdf.SetAuthor(meta.Author, true)
	pdf.SetCreator(meta.Creator, true)
	pdf.SetKeywords(meta.Keywords, true)
	if !meta.Created.IsZero() {
		pdf.SetCreationDate(meta.Created)
		pdf.SetModificationDate(meta.Created)
	}
}

func drawOp(pdf *fpdf.Fpdf, op layout.Op) {
	switch o := op.(type) {
	case layout.TextOp:
		drawText(pdf, o.X, o.Y, o.Text, o.Font, o.Color)
	case layout.RectOp:
		drawRect(pdf, o)
	case layout.LineOp:
		pdf.SetDrawColor(rgb(o.Color))
		pdf.SetLineWidth(o.Width)
		pdf.Line(o.X1, o.Y1, o.X2, o.Y2)
	case layout.TableOp:
		drawTable(pdf, o)
	}
}

func drawText(pdf *fpdf.Fpdf, x, y float64, text string, f style.Font, c style.Color) {
	if text == "" {
		return
	}
	pdf.SetFont(style.CoreFamily(f.Family), metrics.FontStyle(f), f.Size)
	pdf.SetTextColor(rgb(c))
	pdf.Text(x, y, metrics.ToWinAnsi(text))
}

func drawRect(pdf *fpdf.Fpdf, o layout.RectOp) {
	mode := paintMode(o.Filled, o.Stroked)
	if mode == "" {
		return
	}
	if o.Filled {
		pdf.SetFillColor(rgb(o.Fill))
	}
	if o.Stroked {
		pdf.SetDrawColor(rgb(o.Stroke))
		pdf.SetLineWidth(o.LineWidth)
	}
	pdf.Rect(o.X, o.Y, o.W, o.H, mode)
}

func drawTable(pdf *fpdf.Fpdf, t layout.TableOp) {
	pdf.SetLineWidth(tableLineWidth)
	pdf.SetDrawColor(rgb(t.Border))
	for _, cell := range t.Cells() {
		pdf.SetFillColor(rgb(cell.Fill))
		pdf.Rect(cell.X, cell.Y, cell.W, cell.H, "FD")
		for i, line := range cell.Lines {
			top := cell.Y + t.Padding + float64(i)*t.LineHeight
			drawText(pdf, cell.X+t.Padding, layout.Baseline(top, cell.Font, t.LineHeight), line, cell.Font, cell.Color)
		}
	}
}

const tableLineWidth = 0.5

func paintMode(fill, stroke bool) string {
	switch {
	case fill && stroke:
		return "FD"
	case fill:
		return "F"
	case stroke:
		return "D"
	}
	return ""
}

func rgb(c style.Color) (int, int, int) {
	return int(c.R), int(c.G), int(c.B)
}

var _ Backend = (*FPDF)(nil)
