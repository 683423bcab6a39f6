package course

import (
	"time"

	"go-hrms/internal/shared/employeeref"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPlanned    = "مخطط"
	StatusInProgress = "جاري"
	StatusCompleted  = "مكتمل"
	StatusCanceled   = "ملغى"
)

var Statuses = []string{StatusPlanned, StatusInProgress, StatusCompleted, StatusCanceled}

type Course struct {
	ID         uuid.UUID             `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID             `gorm:"type:uuid;not null;index"`
	Employee   *employeeref.Employee `gorm:"foreignKey:EmployeeID;references:ID"`

	Title     string    `gorm:"type:varchar(200);not null"`
	Provider  string    `gorm:"type:varchar(200)"`
	StartDate time.Time `gorm:"type:date;not null"`
	EndDate   time.Time `gorm:"type:date;not null"`
	Status    string    `gorm:"type:varchar(20);not null"`
	Notes     string    `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func isValidStatus(v string) bool {
	for _, s := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}
