package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Vehicle status values. Sold while exactly one active sale references the
// vehicle, Available otherwise — the sale workflow owns all transitions.
const (
	StatusAvailable = "Available"
	StatusSold      = "Sold"
)

// Vehicle is a unit on the lot. StockNumber is the dealership-assigned
// identifier, distinct from the database id.
type Vehicle struct {
	ID            uint            `gorm:"primaryKey"`
	StockNumber   string          `gorm:"uniqueIndex;not null"`
	Brand         string          `gorm:"index;not null"`
	Model         string          `gorm:"index;not null"`
	Year          int             `gorm:"not null"`
	Variant       string
	Color         string
	Transmission  string
	FuelType      string
	Mileage       int             `gorm:"not null;default:0"`
	PurchasePrice decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	SellingPrice  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Status        string          `gorm:"type:varchar(20);not null;default:'Available';index"`
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
