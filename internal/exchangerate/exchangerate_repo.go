package exchangerate

import (
	"context"
	"database/sql"
	"time"

	"go-hrms/internal/shared/dbtx"

	"gorm.io/gorm"
)

//go:generate mockgen -source=exchangerate_repo.go -destination=mock/exchangerate_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, rate *ExchangeRate) error
	FindActive(ctx context.Context) (*ExchangeRate, error)
	FindByID(ctx context.Context, id string) (*ExchangeRate, error)
	FindAll(ctx context.Context) ([]ExchangeRate, error)
	DeactivateAll(ctx context.Context) error
	SetActive(ctx context.Context, id string, active bool) error
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

func (r *repository) Create(ctx context.Context, rate *ExchangeRate) error {
	return r.conn(ctx).Create(rate).Error
}

func (r *repository) FindActive(ctx context.Context) (*ExchangeRate, error) {
	var rate ExchangeRate
	err := r.conn(ctx).
		Where("is_active = ?", true).
		First(&rate).Error
	if err != nil {
		return nil, err
	}
	return &rate, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*ExchangeRate, error) {
	var rate ExchangeRate
	if err := r.conn(ctx).Where("id = ?", id).First(&rate).Error; err != nil {
		return nil, err
	}
	return &rate, nil
}

func (r *repository) FindAll(ctx context.Context) ([]ExchangeRate, error) {
	var rates []ExchangeRate
	err := r.conn(ctx).
		Order("created_at DESC").
		Find(&rates).Error
	return rates, err
}

func (r *repository) DeactivateAll(ctx context.Context) error {
	return r.conn(ctx).
		Model(&ExchangeRate{}).
		Where("is_active = ?", true).
		Updates(map[string]any{"is_active": false, "updated_at": time.Now().UTC()}).Error
}

func (r *repository) SetActive(ctx context.Context, id string, active bool) error {
	res := r.conn(ctx).
		Model(&ExchangeRate{}).
		Where("id = ?", id).
		Updates(map[string]any{"is_active": active, "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
