package service

import (
	"context"
	"errors"
	"time"

	"dealerstock/internal/apierror"
	"dealerstock/internal/dto"
	"dealerstock/internal/model"
	"dealerstock/internal/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type SaleService interface {
	RecordSale(ctx context.Context, req dto.RecordSaleRequest) (*dto.SaleResponse, error)
	ListSales(ctx context.Context) ([]dto.SaleResponse, error)
	UpdateSale(ctx context.Context, id uint, req dto.UpdateSaleRequest) (*dto.SaleResponse, error)
	DeleteSale(ctx context.Context, id uint) error
}

type saleService struct {
	repo     repository.SaleRepository
	vehicles repository.VehicleRepository
}

func NewSaleService(repo repository.SaleRepository, vehicles repository.VehicleRepository) SaleService {
	return &saleService{repo: repo, vehicles: vehicles}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// domainErr unwraps a typed domain error raised inside a transaction;
// anything else is an opaque storage failure after rollback.
func domainErr(err error, fallback *apierror.Error) error {
	var apiErr *apierror.Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return fallback
}

// ── RecordSale ───────────────────────────────────────────────────────────────
// Both writes commit together or not at all:
//   1. insert the sale row
//   2. flip the vehicle Available→Sold via a conditional update
// Step 2 affecting zero rows means another request sold the vehicle first;
// the transaction rolls back, taking the inserted sale with it.

func (s *saleService) RecordSale(ctx context.Context, req dto.RecordSaleRequest) (*dto.SaleResponse, error) {
	vehicle, err := s.vehicles.FindByID(ctx, req.VehicleID)
	if err != nil {
		return nil, apierror.NotFound("Vehicle not found")
	}
	if vehicle.Status != model.StatusAvailable {
		return nil, apierror.Conflict("Vehicle is already sold")
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "Cash"
	}

	sale := model.Sale{
		VehicleID:     req.VehicleID,
		BuyerName:     req.BuyerName,
		SalePrice:     req.SalePrice,
		PaymentMethod: paymentMethod,
		SaleDate:      time.Now(),
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.Create(ctx, tx, &sale); err != nil {
			return err
		}
		n, err := s.vehicles.MarkSoldTx(tx, req.VehicleID)
		if err != nil {
			return err
		}
		if n == 0 {
			// Lost the race: a concurrent sale got there first.
			return apierror.Conflict("Vehicle is already sold")
		}
		return nil
	})
	if txErr != nil {
		log.Error().Err(txErr).Uint("vehicle_id", req.VehicleID).Msg("record sale transaction failed")
		return nil, domainErr(txErr, apierror.Storage("Failed to record sale"))
	}

	return saleToResponse(&sale, vehicle), nil
}

func (s *saleService) ListSales(ctx context.Context) ([]dto.SaleResponse, error) {
	sales, err := s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("list sales failed")
		return nil, apierror.Storage("Failed to fetch sales")
	}
	resp := make([]dto.SaleResponse, 0, len(sales))
	for i := range sales {
		resp = append(resp, *saleToResponse(&sales[i], sales[i].Vehicle))
	}
	return resp, nil
}

// UpdateSale mutates sale fields only. Single-row update, no transaction
// needed, and the vehicle's status is deliberately untouched.
func (s *saleService) UpdateSale(ctx context.Context, id uint, req dto.UpdateSaleRequest) (*dto.SaleResponse, error) {
	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NotFound("Sale not found")
	}

	if req.BuyerName != nil {
		sale.BuyerName = *req.BuyerName
	}
	if req.SalePrice != nil {
		sale.SalePrice = *req.SalePrice
	}
	if req.PaymentMethod != nil {
		sale.PaymentMethod = *req.PaymentMethod
	}
	if req.SaleDate != nil {
		sale.SaleDate = *req.SaleDate
	}

	if err := s.repo.Update(ctx, sale); err != nil {
		log.Error().Err(err).Uint("sale_id", id).Msg("update sale failed")
		return nil, apierror.Storage("Failed to update sale")
	}
	return saleToResponse(sale, sale.Vehicle), nil
}

// ── DeleteSale ───────────────────────────────────────────────────────────────
// Exact inverse of RecordSale: remove the sale row and reopen the vehicle,
// atomically. The status revert is unconditional — with at most one active
// sale per vehicle there is nothing else to consult.

func (s *saleService) DeleteSale(ctx context.Context, id uint) error {
	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return apierror.NotFound("Sale not found")
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.DeleteTx(tx, id); err != nil {
			return err
		}
		return s.vehicles.SetStatusTx(tx, sale.VehicleID, model.StatusAvailable)
	})
	if txErr != nil {
		log.Error().Err(txErr).Uint("sale_id", id).Msg("delete sale transaction failed")
		return domainErr(txErr, apierror.Storage("Failed to delete sale"))
	}
	return nil
}

func saleToResponse(s *model.Sale, v *model.Vehicle) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:            s.ID,
		VehicleID:     s.VehicleID,
		BuyerName:     s.BuyerName,
		SalePrice:     s.SalePrice,
		PaymentMethod: s.PaymentMethod,
		SaleDate:      s.SaleDate.Format(time.RFC3339),
	}
	if v != nil {
		resp.Brand = v.Brand
		resp.Model = v.Model
		resp.Year = v.Year
		resp.StockNumber = v.StockNumber
	}
	return resp
}
