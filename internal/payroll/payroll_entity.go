package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Payroll struct {
	ID         uuid.UUID        `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID        `gorm:"type:uuid;not null;index:idx_payroll_employee_period"`
	Employee   *PayrollEmployee `gorm:"foreignKey:EmployeeID;references:ID"`

	PeriodStart time.Time `gorm:"type:date;not null;index:idx_payroll_employee_period"`
	PeriodEnd   time.Time `gorm:"type:date;not null"`

	// USD amounts.
	Category               string          `gorm:"type:varchar(50);not null"`
	ExperienceYears        decimal.Decimal `gorm:"type:numeric(5,2);not null;default:0"`
	MinSalary              decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	AdminLevel             decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	QualificationAllowance decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	ExperienceAllowance    decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	AdditionalAmount       decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	OvertimeHours          decimal.Decimal `gorm:"type:numeric(8,2);not null;default:0"`
	OvertimeRate           decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	Advances               decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	Loans                  decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	OtherDeductions        decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	GrossSalary            decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	TotalDeduction         decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	NetSalary              decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`

	// Rate in force when the payroll was computed. Display in TRY always uses
	// this value, never the rate active today.
	ExchangeRate              decimal.Decimal `gorm:"type:numeric(18,6);not null"`
	ExchangeRateID            *uuid.UUID      `gorm:"type:uuid"`
	ExchangeRateEffectiveFrom *time.Time      `gorm:"type:date"`
	ExchangeRateFallback      bool            `gorm:"not null;default:false"`

	Status     string     `gorm:"type:varchar(20);not null;default:'DRAFT';index"`
	CreatedBy  uuid.UUID  `gorm:"type:uuid;not null"`
	ApprovedBy *uuid.UUID `gorm:"type:uuid"`

	CreatedAt          time.Time
	UpdatedAt          time.Time
	ApprovedAt         *time.Time
	PaidAt             *time.Time `gorm:"index"`
	PayslipURL         *string
	PayslipGeneratedAt *time.Time
	DeletedAt          gorm.DeletedAt `gorm:"index"`

	Components []PayrollComponent `gorm:"foreignKey:PayrollID"`
}

const (
	ComponentEarning   = "EARNING"
	ComponentDeduction = "DEDUCTION"
)

type PayrollComponent struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PayrollID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ComponentType string          `gorm:"type:varchar(20);not null"`
	Code          string          `gorm:"type:varchar(40);not null"`
	Name          string          `gorm:"type:varchar(120);not null"`
	Amount        decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	SortOrder     int             `gorm:"not null;default:0"`
	CreatedAt     time.Time
}

type PayrollEmployee struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeNumber string    `gorm:"column:employee_number"`
	FullName       string    `gorm:"column:full_name"`
}

func (PayrollEmployee) TableName() string {
	return "employees"
}
