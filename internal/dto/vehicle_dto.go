package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateVehicleRequest struct {
	StockNumber   string          `json:"stock_number"   validate:"required,min=1,max=40"`
	Brand         string          `json:"brand"          validate:"required,min=1,max=60"`
	Model         string          `json:"model"          validate:"required,min=1,max=60"`
	Year          int             `json:"year"           validate:"required,gte=1900,lte=2100"`
	Variant       string          `json:"variant"`
	Color         string          `json:"color"`
	Transmission  string          `json:"transmission"`
	FuelType      string          `json:"fuel_type"`
	Mileage       int             `json:"mileage"        validate:"gte=0"`
	PurchasePrice decimal.Decimal `json:"purchase_price" validate:"gte=0"`
	SellingPrice  decimal.Decimal `json:"selling_price"  validate:"gte=0"`
	Notes         string          `json:"notes"`
}

// UpdateVehicleRequest carries optional fields; nil means "leave unchanged".
// Status is deliberately absent — only the sale workflow transitions it.
type UpdateVehicleRequest struct {
	StockNumber   *string          `json:"stock_number"   validate:"omitempty,min=1,max=40"`
	Brand         *string          `json:"brand"          validate:"omitempty,min=1,max=60"`
	Model         *string          `json:"model"          validate:"omitempty,min=1,max=60"`
	Year          *int             `json:"year"           validate:"omitempty,gte=1900,lte=2100"`
	Variant       *string          `json:"variant"`
	Color         *string          `json:"color"`
	Transmission  *string          `json:"transmission"`
	FuelType      *string          `json:"fuel_type"`
	Mileage       *int             `json:"mileage"        validate:"omitempty,gte=0"`
	PurchasePrice *decimal.Decimal `json:"purchase_price" validate:"omitempty,gte=0"`
	SellingPrice  *decimal.Decimal `json:"selling_price"  validate:"omitempty,gte=0"`
	Notes         *string          `json:"notes"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

// VehicleFilter holds optional list predicates. Zero values mean
// "no constraint". Unknown sort keys fall back to created_at DESC.
type VehicleFilter struct {
	Brand  string `form:"brand"`
	Model  string `form:"model"`
	Year   int    `form:"year"`
	Status string `form:"status"`
	SortBy string `form:"sortBy"`
	Order  string `form:"order"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type VehicleResponse struct {
	ID            uint            `json:"id"`
	StockNumber   string          `json:"stock_number"`
	Brand         string          `json:"brand"`
	Model         string          `json:"model"`
	Year          int             `json:"year"`
	Variant       string          `json:"variant"`
	Color         string          `json:"color"`
	Transmission  string          `json:"transmission"`
	FuelType      string          `json:"fuel_type"`
	Mileage       int             `json:"mileage"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	Status        string          `json:"status"`
	Notes         string          `json:"notes"`
	CreatedAt     string          `json:"created_at"`
}
