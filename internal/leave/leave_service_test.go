package leave_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go-hrms/internal/leave"
	leaveerrors "go-hrms/internal/leave/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeLeaveRepository struct {
	createFn               func(ctx context.Context, l *leave.Leave) error
	findAllFn              func(ctx context.Context, status string) ([]leave.Leave, error)
	findByIDFn             func(ctx context.Context, id string) (*leave.Leave, error)
	updateFn               func(ctx context.Context, l *leave.Leave) error
	deleteFn               func(ctx context.Context, id string) error
	employeeExistsFn       func(ctx context.Context, employeeID string) (bool, error)
	hasOverlappingPeriodFn func(ctx context.Context, employeeID string, startDate, endDate time.Time, excludeID *string) (bool, error)
}

func (f *fakeLeaveRepository) WithTx(tx *sql.Tx) leave.Repository {
	return f
}

func (f *fakeLeaveRepository) Create(ctx context.Context, l *leave.Leave) error {
	if f.createFn != nil {
		return f.createFn(ctx, l)
	}
	return nil
}

func (f *fakeLeaveRepository) FindAll(ctx context.Context, status string) ([]leave.Leave, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, status)
	}
	return nil, nil
}

func (f *fakeLeaveRepository) FindByID(ctx context.Context, id string) (*leave.Leave, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLeaveRepository) Update(ctx context.Context, l *leave.Leave) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, l)
	}
	return nil
}

func (f *fakeLeaveRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeLeaveRepository) EmployeeExists(ctx context.Context, employeeID string) (bool, error) {
	if f.employeeExistsFn != nil {
		return f.employeeExistsFn(ctx, employeeID)
	}
	return true, nil
}

func (f *fakeLeaveRepository) HasOverlappingPeriod(ctx context.Context, employeeID string, startDate, endDate time.Time, excludeID *string) (bool, error) {
	if f.hasOverlappingPeriodFn != nil {
		return f.hasOverlappingPeriodFn(ctx, employeeID, startDate, endDate, excludeID)
	}
	return false, nil
}

type leaveServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service leave.Service
	repo    *fakeLeaveRepository
}

func setupLeaveServiceTest(t *testing.T) *leaveServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := &fakeLeaveRepository{}
	svc := leave.NewService(db, repo)

	return &leaveServiceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func pendingLeave(id string) *leave.Leave {
	return &leave.Leave{
		ID:         uuid.MustParse(id),
		EmployeeID: uuid.New(),
		LeaveType:  leave.TypeAnnual,
		StartDate:  time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
		TotalDays:  3,
		Status:     leave.StatusPending,
		CreatedBy:  uuid.New(),
	}
}

func TestLeaveService_Create(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New().String()
	employeeID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		expectTx(t, deps.sqlMock, true)
		req := leave.CreateLeaveRequest{
			EmployeeID: employeeID,
			LeaveType:  leave.TypeAnnual,
			StartDate:  "2026-03-01",
			EndDate:    "2026-03-03",
			Reason:     "مناسبة عائلية",
		}

		deps.repo.hasOverlappingPeriodFn = func(ctx context.Context, eid string, startDate, endDate time.Time, excludeID *string) (bool, error) {
			assert.Equal(t, employeeID, eid)
			assert.Nil(t, excludeID)
			return false, nil
		}
		deps.repo.createFn = func(ctx context.Context, l *leave.Leave) error {
			assert.Equal(t, uuid.MustParse(actorID), l.CreatedBy)
			assert.Equal(t, 3, l.TotalDays)
			assert.Equal(t, leave.StatusPending, l.Status)
			return nil
		}

		resp, err := deps.service.Create(ctx, actorID, req)

		assert.NoError(t, err)
		assert.Equal(t, 3, resp.TotalDays)
		assert.Equal(t, leave.StatusPending, resp.Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("overlap", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.repo.hasOverlappingPeriodFn = func(ctx context.Context, eid string, startDate, endDate time.Time, excludeID *string) (bool, error) {
			return true, nil
		}

		_, err := deps.service.Create(ctx, actorID, leave.CreateLeaveRequest{
			EmployeeID: employeeID, LeaveType: leave.TypeSick, StartDate: "2026-03-01", EndDate: "2026-03-02",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveOverlap)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown employee", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.repo.employeeExistsFn = func(ctx context.Context, eid string) (bool, error) {
			return false, nil
		}

		_, err := deps.service.Create(ctx, actorID, leave.CreateLeaveRequest{
			EmployeeID: employeeID, LeaveType: leave.TypeSick, StartDate: "2026-03-01", EndDate: "2026-03-02",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrEmployeeNotFound)
	})

	t.Run("invalid type", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)

		_, err := deps.service.Create(ctx, actorID, leave.CreateLeaveRequest{
			EmployeeID: employeeID, LeaveType: "ANNUAL", StartDate: "2026-03-01", EndDate: "2026-03-02",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidLeaveType)
	})

	t.Run("end before start", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)

		_, err := deps.service.Create(ctx, actorID, leave.CreateLeaveRequest{
			EmployeeID: employeeID, LeaveType: leave.TypeAnnual, StartDate: "2026-03-05", EndDate: "2026-03-02",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateRange)
	})
}

func TestLeaveService_Update(t *testing.T) {
	ctx := context.Background()
	leaveID := uuid.New().String()

	t.Run("pending recomputes days", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		expectTx(t, deps.sqlMock, true)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*leave.Leave, error) {
			return pendingLeave(id), nil
		}
		deps.repo.hasOverlappingPeriodFn = func(ctx context.Context, eid string, startDate, endDate time.Time, excludeID *string) (bool, error) {
			assert.Equal(t, leaveID, *excludeID)
			return false, nil
		}

		resp, err := deps.service.Update(ctx, leaveID, leave.UpdateLeaveRequest{
			LeaveType: leave.TypeEmergency, StartDate: "2026-03-01", EndDate: "2026-03-07",
		})

		assert.NoError(t, err)
		assert.Equal(t, 7, resp.TotalDays)
		assert.Equal(t, leave.TypeEmergency, resp.LeaveType)
	})

	t.Run("decided leave is locked", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*leave.Leave, error) {
			l := pendingLeave(id)
			l.Status = leave.StatusApproved
			return l, nil
		}

		_, err := deps.service.Update(ctx, leaveID, leave.UpdateLeaveRequest{
			LeaveType: leave.TypeAnnual, StartDate: "2026-03-01", EndDate: "2026-03-02",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrOnlyPendingEditable)
	})
}

func TestLeaveService_Transitions(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New().String()
	leaveID := uuid.New().String()

	t.Run("approve pending", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		expectTx(t, deps.sqlMock, true)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*leave.Leave, error) {
			return pendingLeave(id), nil
		}

		resp, err := deps.service.Approve(ctx, actorID, leaveID)

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, resp.Status)
		assert.Equal(t, actorID, *resp.ApprovedBy)
		assert.NotNil(t, resp.ApprovedAt)
	})

	t.Run("reject requires reason", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)

		_, err := deps.service.Reject(ctx, actorID, leaveID, "")

		assert.ErrorIs(t, err, leaveerrors.ErrRejectionReasonRequired)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("reject stores reason", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		expectTx(t, deps.sqlMock, true)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*leave.Leave, error) {
			return pendingLeave(id), nil
		}

		resp, err := deps.service.Reject(ctx, actorID, leaveID, "ضغط العمل")

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusRejected, resp.Status)
		assert.Equal(t, "ضغط العمل", *resp.RejectionReason)
	})

	t.Run("cancel after approval rejected", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*leave.Leave, error) {
			l := pendingLeave(id)
			l.Status = leave.StatusApproved
			return l, nil
		}

		_, err := deps.service.Cancel(ctx, actorID, leaveID)

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatusTransition)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.Approve(ctx, actorID, leaveID)

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
	})
}

func TestLeaveService_Delete(t *testing.T) {
	deps := setupLeaveServiceTest(t)
	deps.repo.deleteFn = func(ctx context.Context, id string) error {
		return gorm.ErrRecordNotFound
	}

	err := deps.service.Delete(context.Background(), uuid.New().String())

	assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
}
