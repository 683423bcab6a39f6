package absence

import (
	"context"
	"database/sql"
	"time"

	"go-hrms/internal/shared/dbtx"
	"go-hrms/internal/shared/employeeref"

	"gorm.io/gorm"
)

type ListFilter struct {
	From       *time.Time
	To         *time.Time
	EmployeeID string
}

//go:generate mockgen -source=absence_repo.go -destination=mock/absence_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Absence) error
	FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Absence, error)
	FindAll(ctx context.Context, filter ListFilter) ([]Absence, error)
	FindByID(ctx context.Context, id string) (*Absence, error)
	Update(ctx context.Context, a *Absence) error
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

func (r *repository) Create(ctx context.Context, a *Absence) error {
	return r.conn(ctx).Omit("Employee").Create(a).Error
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Absence, error) {
	var a Absence
	err := r.conn(ctx).
		Where("employee_id = ?", employeeID).
		Where("absence_date = ?", date.Format(time.DateOnly)).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]Absence, error) {
	db := r.conn(ctx).Preload("Employee")
	if filter.From != nil && filter.To != nil {
		db = db.Where("absence_date >= ? AND absence_date < ?", *filter.From, *filter.To)
	}
	if filter.EmployeeID != "" {
		db = db.Where("employee_id = ?", filter.EmployeeID)
	}

	var rows []Absence
	err := db.Order("absence_date DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Absence, error) {
	var a Absence
	if err := r.conn(ctx).Preload("Employee").First(&a, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) Update(ctx context.Context, a *Absence) error {
	return r.conn(ctx).Omit("Employee").Save(a).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.conn(ctx).Delete(&Absence{}, "id = ?", id)
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
