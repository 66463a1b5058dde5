package tests

import (
	"context"
	"errors"
	"sort"
	"time"

	"dealerstock/internal/dto"
	"dealerstock/internal/model"
	"dealerstock/internal/repository"

	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

var errNotFound = errors.New("record not found")

// stubVehicleRepo is an in-memory VehicleRepository for testing.
type stubVehicleRepo struct {
	vehicles   map[uint]*model.Vehicle
	nextID     uint
	lastFilter dto.VehicleFilter

	// forceMarkSoldMiss makes MarkSoldTx report zero affected rows even when
	// the vehicle reads Available, simulating a concurrent sale that won.
	forceMarkSoldMiss bool
}

func newStubVehicleRepo() *stubVehicleRepo {
	return &stubVehicleRepo{vehicles: make(map[uint]*model.Vehicle)}
}

func (r *stubVehicleRepo) Create(_ context.Context, v *model.Vehicle) error {
	r.nextID++
	v.ID = r.nextID
	v.CreatedAt = time.Now()
	r.vehicles[v.ID] = v
	return nil
}

func (r *stubVehicleRepo) FindByID(_ context.Context, id uint) (*model.Vehicle, error) {
	v, ok := r.vehicles[id]
	if !ok {
		return nil, errNotFound
	}
	return v, nil
}

func (r *stubVehicleRepo) FindByStockNumber(_ context.Context, stockNumber string) (*model.Vehicle, error) {
	for _, v := range r.vehicles {
		if v.StockNumber == stockNumber {
			return v, nil
		}
	}
	return nil, errNotFound
}

func (r *stubVehicleRepo) List(_ context.Context, filter dto.VehicleFilter) ([]model.Vehicle, error) {
	r.lastFilter = filter
	out := make([]model.Vehicle, 0, len(r.vehicles))
	for _, v := range r.vehicles {
		out = append(out, *v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubVehicleRepo) Update(_ context.Context, v *model.Vehicle) error {
	if _, ok := r.vehicles[v.ID]; !ok {
		return errNotFound
	}
	r.vehicles[v.ID] = v
	return nil
}

func (r *stubVehicleRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.vehicles[id]; !ok {
		return errNotFound
	}
	delete(r.vehicles, id)
	return nil
}

func (r *stubVehicleRepo) MarkSoldTx(_ *gorm.DB, id uint) (int64, error) {
	if r.forceMarkSoldMiss {
		return 0, nil
	}
	v, ok := r.vehicles[id]
	if !ok || v.Status != model.StatusAvailable {
		return 0, nil
	}
	v.Status = model.StatusSold
	return 1, nil
}

func (r *stubVehicleRepo) SetStatusTx(_ *gorm.DB, id uint, status string) error {
	v, ok := r.vehicles[id]
	if !ok {
		return errNotFound
	}
	v.Status = status
	return nil
}

func (r *stubVehicleRepo) DB() *gorm.DB { return nil }

var _ repository.VehicleRepository = (*stubVehicleRepo)(nil)

// stubSaleRepo is an in-memory SaleRepository; it joins vehicles from a
// linked stubVehicleRepo the way Preload("Vehicle") would.
type stubSaleRepo struct {
	sales    map[uint]*model.Sale
	nextID   uint
	vehicles *stubVehicleRepo
}

func newStubSaleRepo(vehicles *stubVehicleRepo) *stubSaleRepo {
	return &stubSaleRepo{sales: make(map[uint]*model.Sale), vehicles: vehicles}
}

func (r *stubSaleRepo) Create(_ context.Context, _ *gorm.DB, s *model.Sale) error {
	r.nextID++
	s.ID = r.nextID
	s.CreatedAt = time.Now()
	r.sales[s.ID] = s
	return nil
}

func (r *stubSaleRepo) FindByID(_ context.Context, id uint) (*model.Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, errNotFound
	}
	s.Vehicle = r.vehicles.vehicles[s.VehicleID]
	return s, nil
}

func (r *stubSaleRepo) List(_ context.Context) ([]model.Sale, error) {
	out := make([]model.Sale, 0, len(r.sales))
	for _, s := range r.sales {
		cp := *s
		cp.Vehicle = r.vehicles.vehicles[s.VehicleID]
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SaleDate.After(out[j].SaleDate) })
	return out, nil
}

func (r *stubSaleRepo) Update(_ context.Context, s *model.Sale) error {
	if _, ok := r.sales[s.ID]; !ok {
		return errNotFound
	}
	r.sales[s.ID] = s
	return nil
}

func (r *stubSaleRepo) DeleteTx(_ *gorm.DB, id uint) error {
	if _, ok := r.sales[id]; !ok {
		return errNotFound
	}
	delete(r.sales, id)
	return nil
}

func (r *stubSaleRepo) DB() *gorm.DB { return nil }

var _ repository.SaleRepository = (*stubSaleRepo)(nil)

// stubUserRepo is an in-memory UserRepository.
type stubUserRepo struct {
	users  map[uint]*model.User
	nextID uint
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uint]*model.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	r.nextID++
	u.ID = r.nextID
	u.CreatedAt = time.Now()
	r.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uint) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errNotFound
	}
	return u, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, errNotFound
}

var _ repository.UserRepository = (*stubUserRepo)(nil)

// ── Seed helpers ─────────────────────────────────────────────────────────────

func seedVehicle(repo *stubVehicleRepo, stockNumber, brand, mdl string, year int) *model.Vehicle {
	v := &model.Vehicle{
		StockNumber: stockNumber,
		Brand:       brand,
		Model:       mdl,
		Year:        year,
		Status:      model.StatusAvailable,
	}
	_ = repo.Create(context.Background(), v)
	return v
}
