package rbac

import (
	"context"

	"gorm.io/gorm"
)

// PolicyRow is one persisted casbin "p" line.
type PolicyRow struct {
	Role     string `gorm:"type:varchar(50);primaryKey"`
	Resource string `gorm:"type:varchar(50);primaryKey"`
	Action   string `gorm:"type:varchar(20);primaryKey"`
}

func (PolicyRow) TableName() string {
	return "rbac_policies"
}

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	ListPolicies(ctx context.Context) ([]PolicyRow, error)
	SeedPolicies(ctx context.Context, rows []PolicyRow) error
	ReplaceRolePolicies(ctx context.Context, role string, rows []PolicyRow) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListPolicies(ctx context.Context) ([]PolicyRow, error) {
	var rows []PolicyRow
	err := r.db.WithContext(ctx).Order("role, resource, action").Find(&rows).Error
	return rows, err
}

func (r *repository) SeedPolicies(ctx context.Context, rows []PolicyRow) error {
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *repository) ReplaceRolePolicies(ctx context.Context, role string, rows []PolicyRow) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("role = ?", role).Delete(&PolicyRow{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}
