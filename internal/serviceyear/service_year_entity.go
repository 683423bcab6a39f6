package serviceyear

import (
	"time"

	"go-hrms/internal/shared/employeeref"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusActive = "فعال"
	StatusEnded  = "منتهي"
)

type ServiceYear struct {
	ID         uuid.UUID             `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID             `gorm:"type:uuid;not null;uniqueIndex:uq_service_year_employee_start"`
	Employee   *employeeref.Employee `gorm:"foreignKey:EmployeeID;references:ID"`

	StartDate time.Time  `gorm:"type:date;not null;uniqueIndex:uq_service_year_employee_start"`
	EndDate   *time.Time `gorm:"type:date"`
	Status    string     `gorm:"type:varchar(20);not null"`
	Notes     string     `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (ServiceYear) TableName() string {
	return "service_years"
}

// WholeYears counts completed anniversaries between start and end.
func WholeYears(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	years := end.Year() - start.Year()
	if end.Month() < start.Month() || (end.Month() == start.Month() && end.Day() < start.Day()) {
		years--
	}
	return years
}
