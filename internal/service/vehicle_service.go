package service

import (
	"context"
	"time"

	"dealerstock/internal/apierror"
	"dealerstock/internal/dto"
	"dealerstock/internal/model"
	"dealerstock/internal/repository"

	"github.com/rs/zerolog/log"
)

type VehicleService interface {
	Create(ctx context.Context, req dto.CreateVehicleRequest) (*dto.VehicleResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.VehicleResponse, error)
	List(ctx context.Context, filter dto.VehicleFilter) ([]dto.VehicleResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateVehicleRequest) (*dto.VehicleResponse, error)
	Delete(ctx context.Context, id uint) error
}

type vehicleService struct {
	repo repository.VehicleRepository
}

func NewVehicleService(repo repository.VehicleRepository) VehicleService {
	return &vehicleService{repo: repo}
}

func (s *vehicleService) Create(ctx context.Context, req dto.CreateVehicleRequest) (*dto.VehicleResponse, error) {
	if _, err := s.repo.FindByStockNumber(ctx, req.StockNumber); err == nil {
		return nil, apierror.Conflict("Stock number already in use")
	}

	v := &model.Vehicle{
		StockNumber:   req.StockNumber,
		Brand:         req.Brand,
		Model:         req.Model,
		Year:          req.Year,
		Variant:       req.Variant,
		Color:         req.Color,
		Transmission:  req.Transmission,
		FuelType:      req.FuelType,
		Mileage:       req.Mileage,
		PurchasePrice: req.PurchasePrice,
		SellingPrice:  req.SellingPrice,
		Status:        model.StatusAvailable,
		Notes:         req.Notes,
	}
	if err := s.repo.Create(ctx, v); err != nil {
		log.Error().Err(err).Str("stock_number", req.StockNumber).Msg("create vehicle failed")
		return nil, apierror.Storage("Failed to add vehicle")
	}
	return vehicleToResponse(v), nil
}

func (s *vehicleService) GetByID(ctx context.Context, id uint) (*dto.VehicleResponse, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Vehicle not found")
	}
	return vehicleToResponse(v), nil
}

func (s *vehicleService) List(ctx context.Context, filter dto.VehicleFilter) ([]dto.VehicleResponse, error) {
	vehicles, err := s.repo.List(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("list vehicles failed")
		return nil, apierror.Storage("Failed to fetch vehicles")
	}
	resp := make([]dto.VehicleResponse, 0, len(vehicles))
	for i := range vehicles {
		resp = append(resp, *vehicleToResponse(&vehicles[i]))
	}
	return resp, nil
}

func (s *vehicleService) Update(ctx context.Context, id uint, req dto.UpdateVehicleRequest) (*dto.VehicleResponse, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Vehicle not found")
	}

	if req.StockNumber != nil && *req.StockNumber != v.StockNumber {
		if _, err := s.repo.FindByStockNumber(ctx, *req.StockNumber); err == nil {
			return nil, apierror.Conflict("Stock number already in use")
		}
		v.StockNumber = *req.StockNumber
	}
	if req.Brand != nil {
		v.Brand = *req.Brand
	}
	if req.Model != nil {
		v.Model = *req.Model
	}
	if req.Year != nil {
		v.Year = *req.Year
	}
	if req.Variant != nil {
		v.Variant = *req.Variant
	}
	if req.Color != nil {
		v.Color = *req.Color
	}
	if req.Transmission != nil {
		v.Transmission = *req.Transmission
	}
	if req.FuelType != nil {
		v.FuelType = *req.FuelType
	}
	if req.Mileage != nil {
		v.Mileage = *req.Mileage
	}
	if req.PurchasePrice != nil {
		v.PurchasePrice = *req.PurchasePrice
	}
	if req.SellingPrice != nil {
		v.SellingPrice = *req.SellingPrice
	}
	if req.Notes != nil {
		v.Notes = *req.Notes
	}

	if err := s.repo.Update(ctx, v); err != nil {
		log.Error().Err(err).Uint("vehicle_id", id).Msg("update vehicle failed")
		return nil, apierror.Storage("Failed to update vehicle")
	}
	return vehicleToResponse(v), nil
}

// Delete removes a vehicle. A Sold vehicle cannot be deleted: its sale must
// be deleted first (which reverts the status), so no sale is ever left
// referencing a missing vehicle.
func (s *vehicleService) Delete(ctx context.Context, id uint) error {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return apierror.NotFound("Vehicle not found")
	}
	if v.Status == model.StatusSold {
		return apierror.Conflict("Vehicle has a recorded sale; delete the sale first")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Uint("vehicle_id", id).Msg("delete vehicle failed")
		return apierror.Storage("Failed to delete vehicle")
	}
	return nil
}

func vehicleToResponse(v *model.Vehicle) *dto.VehicleResponse {
	return &dto.VehicleResponse{
		ID:            v.ID,
		StockNumber:   v.StockNumber,
		Brand:         v.Brand,
		Model:         v.Model,
		Year:          v.Year,
		Variant:       v.Variant,
		Color:         v.Color,
		Transmission:  v.Transmission,
		FuelType:      v.FuelType,
		Mileage:       v.Mileage,
		PurchasePrice: v.PurchasePrice,
		SellingPrice:  v.SellingPrice,
		Status:        v.Status,
		Notes:         v.Notes,
		CreatedAt:     v.CreatedAt.Format(time.RFC3339),
	}
}
