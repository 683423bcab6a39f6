package promotion

import (
	"context"
	"database/sql"

	"go-hrms/internal/shared/dbtx"
	"go-hrms/internal/shared/employeeref"

	"gorm.io/gorm"
)

//go:generate mockgen -source=promotion_repo.go -destination=mock/promotion_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *Promotion) error
	FindAll(ctx context.Context, status string) ([]Promotion, error)
	FindByID(ctx context.Context, id string) (*Promotion, error)
	Update(ctx context.Context, p *Promotion) error
	Delete(ctx context.Context, id string) error
	EmployeeExists(ctx context.Context, employeeID string) (bool, error)
	UpdateEmployeeCategory(ctx context.Context, employeeID, category string) error
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

func (r *repository) Create(ctx context.Context, p *Promotion) error {
	return r.conn(ctx).Omit("Employee").Create(p).Error
}

func (r *repository) FindAll(ctx context.Context, status string) ([]Promotion, error) {
	db := r.conn(ctx).Preload("Employee")
	if status != "" {
		db = db.Where("status = ?", status)
	}

	var promotions []Promotion
	err := db.Order("promotion_date DESC").Find(&promotions).Error
	return promotions, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Promotion, error) {
	var p Promotion
	if err := r.conn(ctx).Preload("Employee").First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Update(ctx context.Context, p *Promotion) error {
	return r.conn(ctx).Omit("Employee").Save(p).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.conn(ctx).Delete(&Promotion{}, "id = ?", id)
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

func (r *repository) UpdateEmployeeCategory(ctx context.Context, employeeID, category string) error {
	res := r.conn(ctx).
		Table("employees").
		Where("id = ? AND deleted_at IS NULL", employeeID).
		Update("salary_category", category)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
