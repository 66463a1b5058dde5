package service

import (
	"context"

	"dealerstock/internal/apierror"
	"dealerstock/internal/dto"
	"dealerstock/internal/repository"

	"github.com/rs/zerolog/log"
)

type DashboardService interface {
	Stats(ctx context.Context) (*dto.DashboardStatsResponse, error)
}

type dashboardService struct {
	repo repository.DashboardRepository
}

func NewDashboardService(repo repository.DashboardRepository) DashboardService {
	return &dashboardService{repo: repo}
}

func (s *dashboardService) Stats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		log.Error().Err(err).Msg("dashboard stats failed")
		return nil, apierror.Storage("Failed to fetch dashboard stats")
	}

	recent := make([]dto.SaleResponse, 0, len(stats.RecentSales))
	for i := range stats.RecentSales {
		recent = append(recent, *saleToResponse(&stats.RecentSales[i], stats.RecentSales[i].Vehicle))
	}

	return &dto.DashboardStatsResponse{
		TotalCars:      stats.TotalCars,
		AvailableCars:  stats.AvailableCars,
		SoldCars:       stats.SoldCars,
		InventoryValue: stats.InventoryValue,
		TotalSales:     stats.TotalSales,
		RecentSales:    recent,
	}, nil
}
