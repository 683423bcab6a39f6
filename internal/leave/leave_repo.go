package leave

import (
	"context"
	"database/sql"
	"time"

	"go-hrms/internal/shared/dbtx"
	"go-hrms/internal/shared/employeeref"

	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *Leave) error
	FindAll(ctx context.Context, status string) ([]Leave, error)
	FindByID(ctx context.Context, id string) (*Leave, error)
	Update(ctx context.Context, l *Leave) error
	Delete(ctx context.Context, id string) error
	EmployeeExists(ctx context.Context, employeeID string) (bool, error)
	HasOverlappingPeriod(ctx context.Context, employeeID string, startDate, endDate time.Time, excludeID *string) (bool, error)
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

func (r *repository) Create(ctx context.Context, l *Leave) error {
	return r.conn(ctx).Omit("Employee").Create(l).Error
}

func (r *repository) FindAll(ctx context.Context, status string) ([]Leave, error) {
	db := r.conn(ctx).Preload("Employee")
	if status != "" {
		db = db.Where("status = ?", status)
	}

	var leaves []Leave
	err := db.Order("start_date DESC").Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Leave, error) {
	var l Leave
	err := r.conn(ctx).
		Preload("Employee").
		First(&l, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) Update(ctx context.Context, l *Leave) error {
	return r.conn(ctx).Omit("Employee").Save(l).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.conn(ctx).Delete(&Leave{}, "id = ?", id)
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

func (r *repository) HasOverlappingPeriod(ctx context.Context, employeeID string, startDate, endDate time.Time, excludeID *string) (bool, error) {
	db := r.conn(ctx).
		Model(&Leave{}).
		Where("employee_id = ?", employeeID).
		Where("status NOT IN ?", []string{StatusCanceled, StatusRejected}).
		Where("NOT (end_date < ? OR start_date > ?)", startDate, endDate)

	if excludeID != nil && *excludeID != "" {
		db = db.Where("id <> ?", *excludeID)
	}

	var count int64
	err := db.Count(&count).Error
	return count > 0, err
}
