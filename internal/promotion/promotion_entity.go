package promotion

import (
	"time"

	"go-hrms/internal/shared/employeeref"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusUnderReview = "قيد المراجعة"
	StatusApproved    = "معتمد"
	StatusRejected    = "مرفوض"
)

type Promotion struct {
	ID         uuid.UUID             `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID             `gorm:"type:uuid;not null;index"`
	Employee   *employeeref.Employee `gorm:"foreignKey:EmployeeID;references:ID"`

	FromCategory  string    `gorm:"type:varchar(50);not null"`
	ToCategory    string    `gorm:"type:varchar(50);not null"`
	PromotionDate time.Time `gorm:"type:date;not null"`
	Status        string    `gorm:"type:varchar(20);not null;index"`
	Reason        string    `gorm:"type:text"`

	DecidedBy *uuid.UUID `gorm:"type:uuid"`
	DecidedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
