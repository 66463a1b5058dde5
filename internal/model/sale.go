package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale records a completed sale of one vehicle. The vehicle is referenced,
// not owned: deleting a sale reverts the vehicle to Available but never
// deletes it.
type Sale struct {
	ID            uint            `gorm:"primaryKey"`
	VehicleID     uint            `gorm:"index;not null"`
	BuyerName     string          `gorm:"not null"`
	SalePrice     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	PaymentMethod string          `gorm:"type:varchar(40);not null;default:'Cash'"`
	SaleDate      time.Time       `gorm:"index;not null"`
	CreatedAt     time.Time

	Vehicle *Vehicle `gorm:"foreignKey:VehicleID"`
}
