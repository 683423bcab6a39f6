package reward

import (
	"time"

	"go-hrms/internal/shared/employeeref"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TypeFinancial   = "مكافأة مالية"
	TypeCertificate = "شهادة تقدير"
	TypeExceptional = "علاوة استثنائية"
)

const (
	StatusUnderReview = "قيد المراجعة"
	StatusApproved    = "معتمد"
	StatusPaid        = "مصروف"
	StatusRejected    = "مرفوض"
)

var (
	Types    = []string{TypeFinancial, TypeCertificate, TypeExceptional}
	Statuses = []string{StatusUnderReview, StatusApproved, StatusPaid, StatusRejected}
)

type Reward struct {
	ID         uuid.UUID             `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID             `gorm:"type:uuid;not null;index"`
	Employee   *employeeref.Employee `gorm:"foreignKey:EmployeeID;references:ID"`

	RewardType string          `gorm:"type:varchar(30);not null"`
	Amount     decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	RewardDate time.Time       `gorm:"type:date;not null"`
	Status     string          `gorm:"type:varchar(20);not null;index"`
	Reason     string          `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
