package employeeref_test

import (
	"regexp"
	"testing"

	"go-hrms/internal/shared/employeeref"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestName(t *testing.T) {
	assert.Equal(t, "", employeeref.Name(nil))
	assert.Equal(t, "سارة", employeeref.Name(&employeeref.Employee{FullName: "سارة"}))
	assert.Equal(t, "EMP-000001 - سارة", employeeref.Name(&employeeref.Employee{EmployeeNumber: "EMP-000001", FullName: "سارة"}))
}

func TestExists(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "employees"`)).
		WithArgs("e-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	ok, err := employeeref.Exists(db, "e-1")

	assert.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}
