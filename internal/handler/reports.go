package handler

import (
	"dealerstock/internal/apierror"
	"dealerstock/internal/infra"
	"dealerstock/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type ReportsHandler struct{ sales service.SaleService }

func NewReportsHandler(sales service.SaleService) *ReportsHandler {
	return &ReportsHandler{sales: sales}
}

// SalesPDF streams a PDF report of all recorded sales. Admin only.
func (h *ReportsHandler) SalesPDF(c *gin.Context) {
	sales, err := h.sales.ListSales(c.Request.Context())
	if err != nil {
		apierror.Respond(c, err)
		return
	}

	total := decimal.Zero
	for _, s := range sales {
		total = total.Add(s.SalePrice)
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `attachment; filename="sales_report.pdf"`)
	if err := infra.WriteSalesReportPDF(c.Writer, sales, total); err != nil {
		// Headers are already out; log and drop the connection.
		log.Error().Err(err).Msg("sales report pdf generation failed")
		c.Abort()
	}
}
