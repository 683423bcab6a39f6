// Package employeeref is the read-only view of the employees table that
// record modules join against.
package employeeref

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Employee struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeNumber string    `gorm:"column:employee_number"`
	FullName       string    `gorm:"column:full_name"`
}

func (Employee) TableName() string {
	return "employees"
}

// Exists reports whether a non-deleted employee with id exists.
func Exists(db *gorm.DB, id string) (bool, error) {
	var count int64
	err := db.
		Table("employees").
		Where("id = ?", id).
		Where("deleted_at IS NULL").
		Count(&count).Error
	return count > 0, err
}

// Name returns "<number> - <full name>" or "" when e was not loaded.
func Name(e *Employee) string {
	if e == nil {
		return ""
	}
	if e.EmployeeNumber == "" {
		return e.FullName
	}
	return e.EmployeeNumber + " - " + e.FullName
}
