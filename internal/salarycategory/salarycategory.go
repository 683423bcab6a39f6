package salarycategory

import (
	salarycategoryerrors "go-hrms/internal/salarycategory/errors"

	"github.com/shopspring/decimal"
)

// Category is one salary grade. All amounts are USD per month.
type Category struct {
	Name                   string          `json:"name"`
	MinSalary              decimal.Decimal `json:"min_salary"`
	AdminLevel             decimal.Decimal `json:"admin_level"`
	QualificationAllowance decimal.Decimal `json:"qualification_allowance"`
	ExperienceAllowance    decimal.Decimal `json:"experience_allowance"`
}

const FirstGrade = "الدرجة الأولى"

func grade(name string, minSalary, adminLevel, qualification, experience int64) Category {
	return Category{
		Name:                   name,
		MinSalary:              decimal.NewFromInt(minSalary),
		AdminLevel:             decimal.NewFromInt(adminLevel),
		QualificationAllowance: decimal.NewFromInt(qualification),
		ExperienceAllowance:    decimal.NewFromInt(experience),
	}
}

var categories = []Category{
	grade(FirstGrade, 4110, 1370, 548, 82),
	grade("الدرجة الثانية", 3700, 1150, 480, 74),
	grade("الدرجة الثالثة", 3330, 960, 420, 66),
	grade("الدرجة الرابعة", 3000, 800, 365, 59),
	grade("الدرجة الخامسة", 2700, 660, 320, 53),
}

var byName = func() map[string]Category {
	m := make(map[string]Category, len(categories))
	for _, c := range categories {
		m[c.Name] = c
	}
	return m
}()

// All returns the grades from highest to lowest.
func All() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

func Find(name string) (Category, error) {
	c, ok := byName[name]
	if !ok {
		return Category{}, salarycategoryerrors.ErrCategoryNotFound
	}
	return c, nil
}

func Exists(name string) bool {
	_, ok := byName[name]
	return ok
}
