package repository

import (
	"context"

	"dealerstock/internal/dto"
	"dealerstock/internal/model"

	"gorm.io/gorm"
)

// VehicleRepository defines the data access contract for vehicles.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type VehicleRepository interface {
	Create(ctx context.Context, v *model.Vehicle) error
	FindByID(ctx context.Context, id uint) (*model.Vehicle, error)
	FindByStockNumber(ctx context.Context, stockNumber string) (*model.Vehicle, error)
	List(ctx context.Context, filter dto.VehicleFilter) ([]model.Vehicle, error)
	Update(ctx context.Context, v *model.Vehicle) error
	Delete(ctx context.Context, id uint) error

	// Used inside transactions — callers must pass the tx instance.
	// MarkSoldTx only transitions Available→Sold and reports how many rows
	// changed, so a concurrent sale of the same vehicle loses cleanly.
	MarkSoldTx(tx *gorm.DB, id uint) (int64, error)
	SetStatusTx(tx *gorm.DB, id uint, status string) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type vehicleRepo struct{ db *gorm.DB }

func NewVehicleRepository(db *gorm.DB) VehicleRepository { return &vehicleRepo{db: db} }

func (r *vehicleRepo) Create(ctx context.Context, v *model.Vehicle) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *vehicleRepo) FindByID(ctx context.Context, id uint) (*model.Vehicle, error) {
	var v model.Vehicle
	err := r.db.WithContext(ctx).First(&v, id).Error
	return &v, err
}

func (r *vehicleRepo) FindByStockNumber(ctx context.Context, stockNumber string) (*model.Vehicle, error) {
	var v model.Vehicle
	err := r.db.WithContext(ctx).Where("stock_number = ?", stockNumber).First(&v).Error
	return &v, err
}

// sortColumns whitelists user-supplied sort keys. Anything outside the map
// falls back to the default order; column names are never taken from input.
var sortColumns = map[string]string{
	"price": "selling_price",
	"date":  "created_at",
}

// orderClause resolves the ORDER BY for a filter. Unknown sort keys fall
// back to created_at DESC.
func orderClause(sortBy, order string) string {
	col, ok := sortColumns[sortBy]
	if !ok {
		return "created_at DESC"
	}
	dir := "ASC"
	if order == "desc" {
		dir = "DESC"
	}
	return col + " " + dir
}

func (r *vehicleRepo) List(ctx context.Context, filter dto.VehicleFilter) ([]model.Vehicle, error) {
	var vehicles []model.Vehicle

	// All filter values are bound parameters; AND semantics throughout.
	q := r.db.WithContext(ctx).Model(&model.Vehicle{})
	if filter.Brand != "" {
		q = q.Where("brand ILIKE ?", "%"+filter.Brand+"%")
	}
	if filter.Model != "" {
		q = q.Where("model ILIKE ?", "%"+filter.Model+"%")
	}
	if filter.Year != 0 {
		q = q.Where("year = ?", filter.Year)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	err := q.Order(orderClause(filter.SortBy, filter.Order)).Find(&vehicles).Error
	return vehicles, err
}

func (r *vehicleRepo) Update(ctx context.Context, v *model.Vehicle) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *vehicleRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Vehicle{}, id).Error
}

func (r *vehicleRepo) MarkSoldTx(tx *gorm.DB, id uint) (int64, error) {
	res := tx.Model(&model.Vehicle{}).
		Where("id = ? AND status = ?", id, model.StatusAvailable).
		Update("status", model.StatusSold)
	return res.RowsAffected, res.Error
}

func (r *vehicleRepo) SetStatusTx(tx *gorm.DB, id uint, status string) error {
	return tx.Model(&model.Vehicle{}).Where("id = ?", id).Update("status", status).Error
}

func (r *vehicleRepo) DB() *gorm.DB { return r.db }
