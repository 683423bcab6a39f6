package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusActive    = "نشط"
	StatusSuspended = "موقوف"
	StatusResigned  = "مستقيل"
	StatusRetired   = "متقاعد"
)

var Statuses = []string{StatusActive, StatusSuspended, StatusResigned, StatusRetired}

type Employee struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeNumber string    `gorm:"type:varchar(20);not null;uniqueIndex:uq_employee_number"`
	FullName       string    `gorm:"type:varchar(150);not null"`
	NationalID     string    `gorm:"type:varchar(30)"`
	Email          string    `gorm:"type:varchar(150);not null;uniqueIndex:uq_employee_email"`
	Phone          string    `gorm:"type:varchar(30)"`
	Department     string    `gorm:"type:varchar(100)"`
	JobTitle       string    `gorm:"type:varchar(100)"`
	SalaryCategory string    `gorm:"type:varchar(50)"`
	HireDate       time.Time `gorm:"type:date;not null"`
	Status         string    `gorm:"type:varchar(20);not null;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func isValidStatus(status string) bool {
	for _, s := range Statuses {
		if s == status {
			return true
		}
	}
	return false
}
