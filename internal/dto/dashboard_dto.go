package dto

import "github.com/shopspring/decimal"

// DashboardStatsResponse mirrors the frontend dashboard contract.
// Sums are zero, never null, when no rows match.
type DashboardStatsResponse struct {
	TotalCars      int64           `json:"totalCars"`
	AvailableCars  int64           `json:"availableCars"`
	SoldCars       int64           `json:"soldCars"`
	InventoryValue decimal.Decimal `json:"inventoryValue"`
	TotalSales     decimal.Decimal `json:"totalSales"`
	RecentSales    []SaleResponse  `json:"recentSales"`
}
