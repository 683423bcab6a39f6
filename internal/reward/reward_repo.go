package reward

import (
	"context"
	"database/sql"

	"go-hrms/internal/shared/dbtx"
	"go-hrms/internal/shared/employeeref"

	"gorm.io/gorm"
)

//go:generate mockgen -source=reward_repo.go -destination=mock/reward_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, rw *Reward) error
	FindAll(ctx context.Context, status string) ([]Reward, error)
	FindByID(ctx context.Context, id string) (*Reward, error)
	Update(ctx context.Context, rw *Reward) error
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

func (r *repository) Create(ctx context.Context, rw *Reward) error {
	return r.conn(ctx).Omit("Employee").Create(rw).Error
}

func (r *repository) FindAll(ctx context.Context, status string) ([]Reward, error) {
	db := r.conn(ctx).Preload("Employee")
	if status != "" {
		db = db.Where("status = ?", status)
	}

	var rewards []Reward
	err := db.Order("reward_date DESC").Find(&rewards).Error
	return rewards, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Reward, error) {
	var rw Reward
	if err := r.conn(ctx).Preload("Employee").First(&rw, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rw, nil
}

func (r *repository) Update(ctx context.Context, rw *Reward) error {
	return r.conn(ctx).Omit("Employee").Save(rw).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.conn(ctx).Delete(&Reward{}, "id = ?", id)
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
