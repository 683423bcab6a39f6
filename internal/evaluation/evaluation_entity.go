package evaluation

import (
	"time"

	"go-hrms/internal/shared/employeeref"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	RatingExcellent = "ممتاز"
	RatingVeryGood  = "جيد جداً"
	RatingGood      = "جيد"
	RatingPass      = "مقبول"
	RatingWeak      = "ضعيف"
)

type Evaluation struct {
	ID         uuid.UUID             `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID             `gorm:"type:uuid;not null;uniqueIndex:uq_evaluation_employee_period"`
	Employee   *employeeref.Employee `gorm:"foreignKey:EmployeeID;references:ID"`

	Period    string          `gorm:"type:char(4);not null;uniqueIndex:uq_evaluation_employee_period"`
	Score     decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	Rating    string          `gorm:"type:varchar(20);not null"`
	Evaluator string          `gorm:"type:varchar(150)"`
	Notes     string          `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

var (
	scoreExcellent = decimal.NewFromInt(90)
	scoreVeryGood  = decimal.NewFromInt(80)
	scoreGood      = decimal.NewFromInt(70)
	scorePass      = decimal.NewFromInt(60)
	scoreMax       = decimal.NewFromInt(100)
)

// RatingFor maps a 0..100 score to its rating band.
func RatingFor(score decimal.Decimal) string {
	switch {
	case score.GreaterThanOrEqual(scoreExcellent):
		return RatingExcellent
	case score.GreaterThanOrEqual(scoreVeryGood):
		return RatingVeryGood
	case score.GreaterThanOrEqual(scoreGood):
		return RatingGood
	case score.GreaterThanOrEqual(scorePass):
		return RatingPass
	default:
		return RatingWeak
	}
}
