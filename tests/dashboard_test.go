package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"dealerstock/internal/model"
	"dealerstock/internal/repository"
	"dealerstock/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDashboardRepo struct {
	stats *repository.DashboardStats
	err   error
}

func (r *stubDashboardRepo) Stats(_ context.Context) (*repository.DashboardStats, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.stats, nil
}

var _ repository.DashboardRepository = (*stubDashboardRepo)(nil)

func TestDashboardStats_EmptyState(t *testing.T) {
	repo := &stubDashboardRepo{stats: &repository.DashboardStats{
		InventoryValue: decimal.Zero,
		TotalSales:     decimal.Zero,
	}}
	svc := service.NewDashboardService(repo)

	resp, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Zero(t, resp.TotalCars)
	assert.Zero(t, resp.AvailableCars)
	assert.Zero(t, resp.SoldCars)
	assert.True(t, resp.InventoryValue.IsZero())
	assert.True(t, resp.TotalSales.IsZero())
	// Empty list, not null, so the frontend can iterate unconditionally.
	require.NotNil(t, resp.RecentSales)
	assert.Len(t, resp.RecentSales, 0)
}

func TestDashboardStats_MapsRecentSalesWithVehicle(t *testing.T) {
	saleDate := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	repo := &stubDashboardRepo{stats: &repository.DashboardStats{
		TotalCars:      3,
		AvailableCars:  2,
		SoldCars:       1,
		InventoryValue: decimal.RequireFromString("45000.00"),
		TotalSales:     decimal.RequireFromString("18500.00"),
		RecentSales: []model.Sale{
			{
				ID:            7,
				VehicleID:     4,
				BuyerName:     "Dana Reyes",
				SalePrice:     decimal.RequireFromString("18500.00"),
				PaymentMethod: "Financing",
				SaleDate:      saleDate,
				Vehicle: &model.Vehicle{
					ID:          4,
					StockNumber: "STK-0004",
					Brand:       "Toyota",
					Model:       "Corolla",
					Year:        2022,
					Status:      model.StatusSold,
				},
			},
		},
	}}
	svc := service.NewDashboardService(repo)

	resp, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), resp.TotalCars)
	assert.Equal(t, int64(2), resp.AvailableCars)
	assert.Equal(t, int64(1), resp.SoldCars)
	assert.True(t, resp.InventoryValue.Equal(decimal.RequireFromString("45000.00")))
	assert.True(t, resp.TotalSales.Equal(decimal.RequireFromString("18500.00")))

	require.Len(t, resp.RecentSales, 1)
	got := resp.RecentSales[0]
	assert.Equal(t, uint(7), got.ID)
	assert.Equal(t, "Dana Reyes", got.BuyerName)
	assert.Equal(t, "Toyota", got.Brand)
	assert.Equal(t, "Corolla", got.Model)
	assert.Equal(t, 2022, got.Year)
	assert.Equal(t, "STK-0004", got.StockNumber)
}

func TestDashboardStats_StorageError(t *testing.T) {
	repo := &stubDashboardRepo{err: errors.New("connection refused")}
	svc := service.NewDashboardService(repo)

	resp, err := svc.Stats(context.Background())
	assertAPIError(t, err, 500)
	assert.Nil(t, resp)
}
