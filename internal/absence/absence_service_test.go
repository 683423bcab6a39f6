package absence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	absenceerrors "go-hrms/internal/absence/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	withTxFn                func(tx *sql.Tx) Repository
	createFn                func(ctx context.Context, a *Absence) error
	findByEmployeeAndDateFn func(ctx context.Context, employeeID string, date time.Time) (*Absence, error)
	findAllFn               func(ctx context.Context, filter ListFilter) ([]Absence, error)
	findByIDFn              func(ctx context.Context, id string) (*Absence, error)
	updateFn                func(ctx context.Context, a *Absence) error
	deleteFn                func(ctx context.Context, id string) error
	employeeExistsFn        func(ctx context.Context, employeeID string) (bool, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository                 { return f.withTxFn(tx) }
func (f *fakeRepo) Create(ctx context.Context, a *Absence) error { return f.createFn(ctx, a) }
func (f *fakeRepo) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Absence, error) {
	return f.findByEmployeeAndDateFn(ctx, employeeID, date)
}
func (f *fakeRepo) FindAll(ctx context.Context, filter ListFilter) ([]Absence, error) {
	return f.findAllFn(ctx, filter)
}
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Absence, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) Update(ctx context.Context, a *Absence) error { return f.updateFn(ctx, a) }
func (f *fakeRepo) Delete(ctx context.Context, id string) error  { return f.deleteFn(ctx, id) }
func (f *fakeRepo) EmployeeExists(ctx context.Context, employeeID string) (bool, error) {
	return f.employeeExistsFn(ctx, employeeID)
}

func newFakeRepo() *fakeRepo {
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.createFn = func(ctx context.Context, a *Absence) error { return nil }
	repo.updateFn = func(ctx context.Context, a *Absence) error { return nil }
	repo.deleteFn = func(ctx context.Context, id string) error { return nil }
	repo.employeeExistsFn = func(ctx context.Context, employeeID string) (bool, error) { return true, nil }
	repo.findAllFn = func(ctx context.Context, filter ListFilter) ([]Absence, error) { return nil, nil }
	repo.findByIDFn = func(ctx context.Context, id string) (*Absence, error) { return nil, gorm.ErrRecordNotFound }
	repo.findByEmployeeAndDateFn = func(ctx context.Context, employeeID string, date time.Time) (*Absence, error) {
		return nil, gorm.ErrRecordNotFound
	}
	return repo
}

func TestService_Create_ThenDuplicateDay(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	employeeID := uuid.New().String()
	ctx := context.Background()

	var saved *Absence
	repo := newFakeRepo()
	repo.createFn = func(ctx context.Context, a *Absence) error { saved = a; return nil }
	repo.findByEmployeeAndDateFn = func(ctx context.Context, eid string, date time.Time) (*Absence, error) {
		if saved == nil {
			return nil, gorm.ErrRecordNotFound
		}
		return saved, nil
	}

	svc := NewService(db, repo)
	req := AbsenceRequest{
		EmployeeID:  employeeID,
		AbsenceDate: "2026-05-04",
		AbsenceType: TypeUnexcused,
	}

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Create(ctx, req)
	assert.NoError(t, err)
	assert.Equal(t, StatusRecorded, resp.Status)
	assert.Equal(t, "2026-05-04", resp.AbsenceDate)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, absenceerrors.ErrAbsenceExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_Validation(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, newFakeRepo())
	employeeID := uuid.New().String()

	cases := []struct {
		name string
		req  AbsenceRequest
		want error
	}{
		{
			name: "late without hours",
			req:  AbsenceRequest{EmployeeID: employeeID, AbsenceDate: "2026-05-04", AbsenceType: TypeLate},
			want: absenceerrors.ErrInvalidHours,
		},
		{
			name: "hours beyond a day",
			req:  AbsenceRequest{EmployeeID: employeeID, AbsenceDate: "2026-05-04", AbsenceType: TypeExcused, Hours: decimal.NewFromInt(25)},
			want: absenceerrors.ErrInvalidHours,
		},
		{
			name: "unknown type",
			req:  AbsenceRequest{EmployeeID: employeeID, AbsenceDate: "2026-05-04", AbsenceType: "ABSENT"},
			want: absenceerrors.ErrInvalidAbsenceType,
		},
		{
			name: "bad date",
			req:  AbsenceRequest{EmployeeID: employeeID, AbsenceDate: "04/05/2026", AbsenceType: TypeExcused},
			want: absenceerrors.ErrInvalidDateFormat,
		},
		{
			name: "unknown status",
			req:  AbsenceRequest{EmployeeID: employeeID, AbsenceDate: "2026-05-04", AbsenceType: TypeExcused, Status: "x"},
			want: absenceerrors.ErrInvalidStatus,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestService_GetAll_MonthFilter(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	repo := newFakeRepo()
	repo.findAllFn = func(ctx context.Context, filter ListFilter) ([]Absence, error) {
		assert.Equal(t, "2026-05-01", filter.From.Format(time.DateOnly))
		assert.Equal(t, "2026-06-01", filter.To.Format(time.DateOnly))
		return []Absence{{ID: uuid.New(), AbsenceType: TypeLate, Hours: decimal.RequireFromString("1.5")}}, nil
	}
	svc := NewService(db, repo)

	resp, err := svc.GetAll(context.Background(), AbsenceFilter{Month: "2026-05"})
	assert.NoError(t, err)
	assert.Len(t, resp, 1)

	_, err = svc.GetAll(context.Background(), AbsenceFilter{Month: "May"})
	assert.ErrorIs(t, err, absenceerrors.ErrInvalidMonth)
}

func TestService_Update_MovingOntoTakenDay(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	id := uuid.New()
	employeeID := uuid.New()
	repo := newFakeRepo()
	repo.findByIDFn = func(ctx context.Context, got string) (*Absence, error) {
		return &Absence{ID: id, EmployeeID: employeeID, AbsenceDate: time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)}, nil
	}
	repo.findByEmployeeAndDateFn = func(ctx context.Context, eid string, date time.Time) (*Absence, error) {
		return &Absence{ID: uuid.New()}, nil
	}
	svc := NewService(db, repo)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Update(context.Background(), id.String(), AbsenceRequest{
		EmployeeID:  employeeID.String(),
		AbsenceDate: "2026-05-05",
		AbsenceType: TypeExcused,
	})

	assert.ErrorIs(t, err, absenceerrors.ErrAbsenceExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
