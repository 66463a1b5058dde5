package infra

// pdf.go — sales report generation using go-pdf/fpdf.
// Produces an A4 landscape table of all recorded sales with a grand total,
// streamed straight to the response writer (no document store).

import (
	"fmt"
	"io"
	"time"

	"dealerstock/internal/dto"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// WriteSalesReportPDF renders all sales as a tabular PDF report.
func WriteSalesReportPDF(w io.Writer, sales []dto.SaleResponse, total decimal.Decimal) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 24

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "Sales Report", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, time.Now().Format("02 Jan 2006 15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// ── Table header ─────────────────────────────────────────────────────────
	cols := []struct {
		label string
		width float64
	}{
		{"Sale #", 18},
		{"Date", 38},
		{"Stock #", 28},
		{"Vehicle", 78},
		{"Buyer", 58},
		{"Payment", 30},
		{"Price", 30},
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for _, col := range cols {
		pdf.CellFormat(col.width, 7, col.label, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	// ── Rows ─────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 9)
	for _, s := range sales {
		saleDate := s.SaleDate
		if t, err := time.Parse(time.RFC3339, s.SaleDate); err == nil {
			saleDate = t.Format("02/01/2006")
		}
		vehicle := fmt.Sprintf("%s %s %d", s.Brand, s.Model, s.Year)

		pdf.CellFormat(cols[0].width, 6, fmt.Sprintf("%d", s.ID), "1", 0, "R", false, 0, "")
		pdf.CellFormat(cols[1].width, 6, saleDate, "1", 0, "L", false, 0, "")
		pdf.CellFormat(cols[2].width, 6, s.StockNumber, "1", 0, "L", false, 0, "")
		pdf.CellFormat(cols[3].width, 6, vehicle, "1", 0, "L", false, 0, "")
		pdf.CellFormat(cols[4].width, 6, s.BuyerName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(cols[5].width, 6, s.PaymentMethod, "1", 0, "L", false, 0, "")
		pdf.CellFormat(cols[6].width, 6, s.SalePrice.StringFixed(2), "1", 1, "R", false, 0, "")
	}

	// ── Total ────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	labelW := contentW - cols[6].width
	pdf.CellFormat(labelW, 8, fmt.Sprintf("Total revenue (%d sales)", len(sales)), "1", 0, "R", false, 0, "")
	pdf.CellFormat(cols[6].width, 8, total.StringFixed(2), "1", 1, "R", false, 0, "")

	return pdf.Output(w)
}
