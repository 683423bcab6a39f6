package payroll

import (
	"context"
	"database/sql"
	"time"

	"go-hrms/internal/exchangerate"
	"go-hrms/internal/shared/dbtx"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PayrollQueryFilter struct {
	PeriodStart *time.Time
	PeriodEnd   *time.Time
	Status      *string
	EmployeeID  *string
}

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, payroll *Payroll) error
	FindAll(ctx context.Context, filter PayrollQueryFilter) ([]Payroll, error)
	FindByID(ctx context.Context, id string) (*Payroll, error)
	ReplaceComponents(ctx context.Context, payrollID string, components []PayrollComponent) error
	Update(ctx context.Context, payroll *Payroll) error
	Delete(ctx context.Context, id string) error
	EmployeeExists(ctx context.Context, employeeID string) (bool, error)
	HasOverlappingPeriod(ctx context.Context, employeeID string, periodStart time.Time, periodEnd time.Time, excludePayrollID *string) (bool, error)
	// LockActiveRate returns the active exchange rate, or nil when none is
	// active, holding a share lock until the transaction ends.
	LockActiveRate(ctx context.Context) (*exchangerate.ExchangeRate, error)
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

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return dbtx.Conn(ctx, r.db, r.tx)
}

func (r *repository) Create(ctx context.Context, payroll *Payroll) error {
	return r.conn(ctx).Omit(clause.Associations).Create(payroll).Error
}

func (r *repository) FindAll(ctx context.Context, filter PayrollQueryFilter) ([]Payroll, error) {
	db := r.conn(ctx).Preload("Employee")

	if filter.PeriodStart != nil && filter.PeriodEnd != nil {
		db = db.Where("period_start >= ? AND period_start <= ?", *filter.PeriodStart, *filter.PeriodEnd)
	}
	if filter.Status != nil {
		db = db.Where("status = ?", *filter.Status)
	}
	if filter.EmployeeID != nil {
		db = db.Where("employee_id = ?", *filter.EmployeeID)
	}

	var payrolls []Payroll
	err := db.Order("period_start DESC, created_at DESC").Find(&payrolls).Error
	return payrolls, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Payroll, error) {
	var payroll Payroll
	err := r.conn(ctx).
		Preload("Employee").
		Preload("Components", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		First(&payroll, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &payroll, nil
}

func (r *repository) ReplaceComponents(ctx context.Context, payrollID string, components []PayrollComponent) error {
	db := r.conn(ctx)
	if err := db.Where("payroll_id = ?", payrollID).Delete(&PayrollComponent{}).Error; err != nil {
		return err
	}
	if len(components) == 0 {
		return nil
	}
	return db.Create(&components).Error
}

func (r *repository) Update(ctx context.Context, payroll *Payroll) error {
	return r.conn(ctx).Omit(clause.Associations).Save(payroll).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.conn(ctx).Delete(&Payroll{}, "id = ?", id).Error
}

func (r *repository) EmployeeExists(ctx context.Context, employeeID string) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Table("employees").
		Where("id = ?", employeeID).
		Where("deleted_at IS NULL").
		Count(&count).Error
	return count > 0, err
}

func (r *repository) LockActiveRate(ctx context.Context) (*exchangerate.ExchangeRate, error) {
	var rates []exchangerate.ExchangeRate
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "SHARE"}).
		Where("is_active = ?", true).
		Limit(1).
		Find(&rates).Error
	if err != nil || len(rates) == 0 {
		return nil, err
	}
	return &rates[0], nil
}

func (r *repository) HasOverlappingPeriod(
	ctx context.Context,
	employeeID string,
	periodStart time.Time,
	periodEnd time.Time,
	excludePayrollID *string,
) (bool, error) {
	db := r.conn(ctx).
		Model(&Payroll{}).
		Where("employee_id = ?", employeeID).
		Where("NOT (period_end < ? OR period_start > ?)", periodStart, periodEnd)

	if excludePayrollID != nil && *excludePayrollID != "" {
		db = db.Where("id <> ?", *excludePayrollID)
	}

	var count int64
	err := db.Count(&count).Error
	return count > 0, err
}
