package course

import (
	"context"
	"database/sql"

	"go-hrms/internal/shared/dbtx"
	"go-hrms/internal/shared/employeeref"

	"gorm.io/gorm"
)

//go:generate mockgen -source=course_repo.go -destination=mock/course_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, c *Course) error
	FindAll(ctx context.Context, employeeID string) ([]Course, error)
	FindByID(ctx context.Context, id string) (*Course, error)
	Update(ctx context.Context, c *Course) error
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

func (r *repository) Create(ctx context.Context, c *Course) error {
	return r.conn(ctx).Omit("Employee").Create(c).Error
}

func (r *repository) FindAll(ctx context.Context, employeeID string) ([]Course, error) {
	db := r.conn(ctx).Preload("Employee")
	if employeeID != "" {
		db = db.Where("employee_id = ?", employeeID)
	}

	var courses []Course
	err := db.Order("start_date DESC").Find(&courses).Error
	return courses, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Course, error) {
	var c Course
	if err := r.conn(ctx).Preload("Employee").First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) Update(ctx context.Context, c *Course) error {
	return r.conn(ctx).Omit("Employee").Save(c).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.conn(ctx).Delete(&Course{}, "id = ?", id)
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
