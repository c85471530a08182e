package payroll

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, record *PayrollRecord) error
	FindAll(ctx context.Context) ([]PayrollRecord, error)
	FindByID(ctx context.Context, id string) (*PayrollRecord, error)
	FindByEmployee(ctx context.Context, employeeID string) ([]PayrollRecord, error)
	FindByMonth(ctx context.Context, month string) ([]PayrollRecord, error)
	HasPeriod(ctx context.Context, employeeID string, month string) (bool, error)
	FindEmployee(ctx context.Context, employeeID string) (*PayrollEmployee, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) Create(ctx context.Context, record *PayrollRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *repository) FindAll(ctx context.Context) ([]PayrollRecord, error) {
	var records []PayrollRecord
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&records).Error
	return records, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*PayrollRecord, error) {
	var record PayrollRecord
	err := r.db.WithContext(ctx).
		First(&record, "id = ?", id).Error
	return &record, err
}

// FindByEmployee mempertahankan urutan insert (created_at ASC),
// bukan diurut ulang per periode.
func (r *repository) FindByEmployee(ctx context.Context, employeeID string) ([]PayrollRecord, error) {
	var records []PayrollRecord
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("created_at ASC").
		Find(&records).Error
	return records, err
}

func (r *repository) FindByMonth(ctx context.Context, month string) ([]PayrollRecord, error) {
	var records []PayrollRecord
	err := r.db.WithContext(ctx).
		Where("month = ?", month).
		Order("created_at ASC").
		Find(&records).Error
	return records, err
}

func (r *repository) HasPeriod(ctx context.Context, employeeID string, month string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&PayrollRecord{}).
		Where("employee_id = ?", employeeID).
		Where("month = ?", month).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindEmployee(ctx context.Context, employeeID string) (*PayrollEmployee, error) {
	var empl PayrollEmployee
	err := r.db.WithContext(ctx).
		First(&empl, "id = ?", employeeID).Error
	return &empl, err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Delete(&PayrollRecord{}, "id = ?", id).Error
}
