package leave

import (
	"time"

	"go-hrms/internal/shared/employeeref"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TypeAnnual    = "سنوية"
	TypeSick      = "مرضية"
	TypeUnpaid    = "بدون راتب"
	TypeEmergency = "طارئة"
)

var LeaveTypes = []string{TypeAnnual, TypeSick, TypeUnpaid, TypeEmergency}

const (
	StatusPending  = "قيد الانتظار"
	StatusApproved = "موافق عليها"
	StatusRejected = "مرفوضة"
	StatusCanceled = "ملغاة"
)

type Leave struct {
	ID         uuid.UUID             `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID             `gorm:"type:uuid;not null;index:idx_leaves_employee_dates"`
	Employee   *employeeref.Employee `gorm:"foreignKey:EmployeeID;references:ID"`

	LeaveType string    `gorm:"type:varchar(30);not null"`
	StartDate time.Time `gorm:"type:date;not null;index:idx_leaves_employee_dates"`
	EndDate   time.Time `gorm:"type:date;not null;index:idx_leaves_employee_dates"`
	TotalDays int       `gorm:"type:int;not null;default:1"`
	Reason    string    `gorm:"type:text"`

	Status          string     `gorm:"type:varchar(20);not null;index"`
	CreatedBy       uuid.UUID  `gorm:"type:uuid;not null"`
	ApprovedBy      *uuid.UUID `gorm:"type:uuid"`
	RejectionReason *string    `gorm:"type:text"`

	CreatedAt  time.Time
	UpdatedAt  time.Time
	ApprovedAt *time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index:idx_leaves_deleted_at"`
}

func isValidLeaveType(v string) bool {
	for _, t := range LeaveTypes {
		if t == v {
			return true
		}
	}
	return false
}
