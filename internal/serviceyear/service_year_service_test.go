package serviceyear

import (
	"context"
	"database/sql"
	"testing"
	"time"

	serviceyearerrors "go-hrms/internal/serviceyear/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeServiceYearRepository struct {
	createFn         func(ctx context.Context, sy *ServiceYear) error
	findAllFn        func(ctx context.Context, employeeID string) ([]ServiceYear, error)
	findByIDFn       func(ctx context.Context, id string) (*ServiceYear, error)
	updateFn         func(ctx context.Context, sy *ServiceYear) error
	deleteFn         func(ctx context.Context, id string) error
	employeeExistsFn func(ctx context.Context, employeeID string) (bool, error)
}

func (f *fakeServiceYearRepository) WithTx(tx *sql.Tx) Repository { return f }

func (f *fakeServiceYearRepository) Create(ctx context.Context, sy *ServiceYear) error {
	if f.createFn != nil {
		return f.createFn(ctx, sy)
	}
	return nil
}

func (f *fakeServiceYearRepository) FindAll(ctx context.Context, employeeID string) ([]ServiceYear, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, employeeID)
	}
	return nil, nil
}

func (f *fakeServiceYearRepository) FindByID(ctx context.Context, id string) (*ServiceYear, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeServiceYearRepository) Update(ctx context.Context, sy *ServiceYear) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, sy)
	}
	return nil
}

func (f *fakeServiceYearRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeServiceYearRepository) EmployeeExists(ctx context.Context, employeeID string) (bool, error) {
	if f.employeeExistsFn != nil {
		return f.employeeExistsFn(ctx, employeeID)
	}
	return true, nil
}

type serviceDeps struct {
	sqlMock sqlmock.Sqlmock
	service *service
	repo    *fakeServiceYearRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := &fakeServiceYearRepository{}
	svc := NewService(db, repo).(*service)
	svc.now = func() time.Time { return time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC) }

	return &serviceDeps{sqlMock: sqlMock, service: svc, repo: repo}
}

func TestWholeYears(t *testing.T) {
	start := time.Date(2020, 3, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, WholeYears(start, time.Date(2021, 3, 14, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 1, WholeYears(start, time.Date(2021, 3, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 5, WholeYears(start, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0, WholeYears(start, time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New().String()

	t.Run("active period counts years to today", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		resp, err := deps.service.Create(ctx, ServiceYearRequest{EmployeeID: employeeID, StartDate: "2019-11-01"})

		assert.NoError(t, err)
		assert.Equal(t, StatusActive, resp.Status)
		assert.Equal(t, 6, resp.Years)
		assert.Nil(t, resp.EndDate)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("end date implies ended", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()
		end := "2024-06-30"

		resp, err := deps.service.Create(ctx, ServiceYearRequest{EmployeeID: employeeID, StartDate: "2015-07-01", EndDate: &end})

		assert.NoError(t, err)
		assert.Equal(t, StatusEnded, resp.Status)
		assert.Equal(t, 8, resp.Years)
	})

	t.Run("ended without end date", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Create(ctx, ServiceYearRequest{EmployeeID: employeeID, StartDate: "2015-07-01", Status: StatusEnded})

		assert.ErrorIs(t, err, serviceyearerrors.ErrEndDateRequired)
	})

	t.Run("end before start", func(t *testing.T) {
		deps := setupServiceTest(t)
		end := "2010-01-01"

		_, err := deps.service.Create(ctx, ServiceYearRequest{EmployeeID: employeeID, StartDate: "2015-07-01", EndDate: &end})

		assert.ErrorIs(t, err, serviceyearerrors.ErrInvalidDateRange)
	})
}

func TestService_CreateFromHire_Duplicate(t *testing.T) {
	deps := setupServiceTest(t)
	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectRollback()
	deps.repo.createFn = func(ctx context.Context, sy *ServiceYear) error {
		assert.Equal(t, "2026-01-05", sy.StartDate.Format(time.DateOnly))
		return &pgconn.PgError{Code: "23505", ConstraintName: "uq_service_year_employee_start"}
	}

	_, err := deps.service.CreateFromHire(context.Background(), uuid.New().String(), "2026-01-05")

	assert.ErrorIs(t, err, serviceyearerrors.ErrServiceYearExists)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestService_CreateFromHire_UnknownEmployee(t *testing.T) {
	deps := setupServiceTest(t)
	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectRollback()
	deps.repo.employeeExistsFn = func(ctx context.Context, employeeID string) (bool, error) {
		return false, nil
	}

	_, err := deps.service.CreateFromHire(context.Background(), uuid.New().String(), "2026-01-05")

	assert.ErrorIs(t, err, serviceyearerrors.ErrEmployeeNotFound)
}

func TestService_Delete_NotFound(t *testing.T) {
	deps := setupServiceTest(t)
	deps.repo.deleteFn = func(ctx context.Context, id string) error {
		return gorm.ErrRecordNotFound
	}

	err := deps.service.Delete(context.Background(), uuid.New().String())

	assert.ErrorIs(t, err, serviceyearerrors.ErrServiceYearNotFound)
}
