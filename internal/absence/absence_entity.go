package absence

import (
	"time"

	"go-hrms/internal/shared/employeeref"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TypeExcused   = "غياب بعذر"
	TypeUnexcused = "غياب بدون عذر"
	TypeLate      = "تأخير"
)

const (
	StatusRecorded  = "مسجل"
	StatusJustified = "مبرر"
	StatusDeducted  = "مخصوم"
)

var (
	Types    = []string{TypeExcused, TypeUnexcused, TypeLate}
	Statuses = []string{StatusRecorded, StatusJustified, StatusDeducted}
)

// maxHours bounds a single day's record.
var maxHours = decimal.NewFromInt(24)

type Absence struct {
	ID          uuid.UUID             `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID  uuid.UUID             `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_absence_employee_date"`
	Employee    *employeeref.Employee `gorm:"foreignKey:EmployeeID;references:ID"`
	AbsenceDate time.Time             `gorm:"column:absence_date;type:date;not null;uniqueIndex:uq_absence_employee_date"`
	AbsenceType string                `gorm:"column:absence_type;type:varchar(30);not null"`
	Hours       decimal.Decimal       `gorm:"column:hours;type:numeric(5,2);not null;default:0"`
	Status      string                `gorm:"column:status;type:varchar(20);not null;default:'مسجل'"`
	Notes       string                `gorm:"column:notes;type:text"`
	CreatedAt   time.Time             `gorm:"column:created_at"`
	UpdatedAt   time.Time             `gorm:"column:updated_at"`
	DeletedAt   gorm.DeletedAt        `gorm:"column:deleted_at;index"`
}

func (Absence) TableName() string {
	return "absences"
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
