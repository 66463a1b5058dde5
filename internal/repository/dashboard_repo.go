package repository

import (
	"context"

	"dealerstock/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DashboardStats is the raw aggregate snapshot computed per request.
// No caching: the numbers must reflect current table state.
type DashboardStats struct {
	TotalCars      int64
	AvailableCars  int64
	SoldCars       int64
	InventoryValue decimal.Decimal
	TotalSales     decimal.Decimal
	RecentSales    []model.Sale
}

type DashboardRepository interface {
	Stats(ctx context.Context) (*DashboardStats, error)
}

type dashboardRepo struct{ db *gorm.DB }

func NewDashboardRepository(db *gorm.DB) DashboardRepository { return &dashboardRepo{db: db} }

func (r *dashboardRepo) Stats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{
		InventoryValue: decimal.Zero,
		TotalSales:     decimal.Zero,
	}
	db := r.db.WithContext(ctx)

	if err := db.Model(&model.Vehicle{}).Count(&stats.TotalCars).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.Vehicle{}).
		Where("status = ?", model.StatusAvailable).
		Count(&stats.AvailableCars).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.Vehicle{}).
		Where("status = ?", model.StatusSold).
		Count(&stats.SoldCars).Error; err != nil {
		return nil, err
	}

	// COALESCE keeps the sums at 0 on empty sets instead of NULL.
	if err := db.Raw(
		"SELECT COALESCE(SUM(selling_price), 0) FROM vehicles WHERE status = ?",
		model.StatusAvailable,
	).Scan(&stats.InventoryValue).Error; err != nil {
		return nil, err
	}
	if err := db.Raw(
		"SELECT COALESCE(SUM(sale_price), 0) FROM sales",
	).Scan(&stats.TotalSales).Error; err != nil {
		return nil, err
	}

	if err := db.Preload("Vehicle").
		Order("sale_date DESC").
		Limit(5).
		Find(&stats.RecentSales).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
