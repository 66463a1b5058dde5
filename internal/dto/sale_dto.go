package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RecordSaleRequest struct {
	VehicleID     uint            `json:"vehicle_id"     validate:"required"`
	BuyerName     string          `json:"buyer_name"     validate:"required,min=1,max=120"`
	SalePrice     decimal.Decimal `json:"sale_price"     validate:"required,gte=0"`
	PaymentMethod string          `json:"payment_method" validate:"omitempty,max=40"`
}

// UpdateSaleRequest mutates sale fields only; the referenced vehicle's
// status is never touched here.
type UpdateSaleRequest struct {
	BuyerName     *string          `json:"buyer_name"     validate:"omitempty,min=1,max=120"`
	SalePrice     *decimal.Decimal `json:"sale_price"     validate:"omitempty,gte=0"`
	PaymentMethod *string          `json:"payment_method" validate:"omitempty,max=40"`
	SaleDate      *time.Time       `json:"sale_date"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// SaleResponse is a sale row joined with identity fields of its vehicle.
type SaleResponse struct {
	ID            uint            `json:"id"`
	VehicleID     uint            `json:"vehicle_id"`
	BuyerName     string          `json:"buyer_name"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	PaymentMethod string          `json:"payment_method"`
	SaleDate      string          `json:"sale_date"`
	Brand         string          `json:"brand"`
	Model         string          `json:"model"`
	Year          int             `json:"year"`
	StockNumber   string          `json:"stock_number"`
}
