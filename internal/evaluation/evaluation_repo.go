package evaluation

import (
	"context"
	"database/sql"

	"go-hrms/internal/shared/dbtx"
	"go-hrms/internal/shared/employeeref"

	"gorm.io/gorm"
)

//go:generate mockgen -source=evaluation_repo.go -destination=mock/evaluation_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Evaluation) error
	FindAll(ctx context.Context, period string) ([]Evaluation, error)
	FindByID(ctx context.Context, id string) (*Evaluation, error)
	Update(ctx context.Context, e *Evaluation) error
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

func (r *repository) Create(ctx context.Context, e *Evaluation) error {
	return r.conn(ctx).Omit("Employee").Create(e).Error
}

func (r *repository) FindAll(ctx context.Context, period string) ([]Evaluation, error) {
	db := r.conn(ctx).Preload("Employee")
	if period != "" {
		db = db.Where("period = ?", period)
	}

	var evaluations []Evaluation
	err := db.Order("period DESC, score DESC").Find(&evaluations).Error
	return evaluations, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Evaluation, error) {
	var e Evaluation
	if err := r.conn(ctx).Preload("Employee").First(&e, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) Update(ctx context.Context, e *Evaluation) error {
	return r.conn(ctx).Omit("Employee").Save(e).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.conn(ctx).Delete(&Evaluation{}, "id = ?", id)
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
