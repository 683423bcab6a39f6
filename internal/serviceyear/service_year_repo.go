package serviceyear

import (
	"context"
	"database/sql"

	"go-hrms/internal/shared/dbtx"
	"go-hrms/internal/shared/employeeref"

	"gorm.io/gorm"
)

//go:generate mockgen -source=service_year_repo.go -destination=mock/service_year_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, sy *ServiceYear) error
	FindAll(ctx context.Context, employeeID string) ([]ServiceYear, error)
	FindByID(ctx context.Context, id string) (*ServiceYear, error)
	Update(ctx context.Context, sy *ServiceYear) error
	Delete(ctx context.Context, id string) error
	EmployeeExists(ctx context.Context, employeeID string) (bool, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return dbtx.Conn(ctx, r.db, r.tx)
}

func (r *repository) Create(ctx context.Context, sy *ServiceYear) error {
	return r.conn(ctx).Omit("Employee").Create(sy).Error
}

func (r *repository) FindAll(ctx context.Context, employeeID string) ([]ServiceYear, error) {
	db := r.conn(ctx).Preload("Employee")
	if employeeID != "" {
		db = db.Where("employee_id = ?", employeeID)
	}

	var rows []ServiceYear
	err := db.Order("start_date DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*ServiceYear, error) {
	var sy ServiceYear
	if err := r.conn(ctx).Preload("Employee").First(&sy, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &sy, nil
}

func (r *repository) Update(ctx context.Context, sy *ServiceYear) error {
	return r.conn(ctx).Omit("Employee").Save(sy).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.conn(ctx).Delete(&ServiceYear{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) EmployeeExists(ctx context.Context, employeeID string) (bool, error) {
	return employeeref.Exists(r.conn(ctx), employeeID)
}
