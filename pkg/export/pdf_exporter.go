package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

const (
	pdfPageWidth  = 277.0
	pdfHeaderRowH = 8.0
	pdfBodyRowH   = 7.0
	pdfBottom     = 15.0
)

// PDFExporter renders datasets as a landscape A4 table.
type PDFExporter struct {
	now func() time.Time
}

// NewPDFExporter constructs a PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{now: time.Now}
}

// Render lays out the table, repeating the header row on every page.
func (e *PDFExporter) Render(data Dataset, title string) ([]byte, error) {
	if err := data.validate(); err != nil {
		return nil, err
	}
	generated := e.now().UTC().Format("2006-01-02 15:04 MST")

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 12, 10)
	pdf.SetAutoPageBreak(true, pdfBottom)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, 8, fmt.Sprintf("Generated %s - page %d", generated, pdf.PageNo()), "", 0, "R", false, 0, "")
	})

	colWidth := pdfPageWidth / float64(len(data.Headers))
	header := func() {
		pdf.SetFont("Arial", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		for _, h := range data.Headers {
			pdf.CellFormat(colWidth, pdfHeaderRowH, h, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 8)
	}

	pdf.AddPage()
	if title != "" {
		pdf.SetFont("Arial", "B", 13)
		pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
		pdf.Ln(2)
	}
	header()

	_, pageHeight := pdf.GetPageSize()
	for _, row := range data.Rows {
		if pdf.GetY()+pdfBodyRowH > pageHeight-pdfBottom {
			pdf.AddPage()
			header()
		}
		for _, value := range data.record(row) {
			pdf.CellFormat(colWidth, pdfBodyRowH, value, "1", 0, "", false, 0, "")
		}
		pdf.Ln(-1)
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
