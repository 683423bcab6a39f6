package promotion_test

import (
	"context"
	"database/sql"
	"testing"

	"go-hrms/internal/promotion"
	promotionerrors "go-hrms/internal/promotion/errors"
	"go-hrms/internal/salarycategory"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

const secondGrade = "الدرجة الثانية"

type fakePromotionRepository struct {
	createFn                 func(ctx context.Context, p *promotion.Promotion) error
	findByIDFn               func(ctx context.Context, id string) (*promotion.Promotion, error)
	updateFn                 func(ctx context.Context, p *promotion.Promotion) error
	updateEmployeeCategoryFn func(ctx context.Context, employeeID, category string) error
	employeeExists           bool
}

func (f *fakePromotionRepository) WithTx(tx *sql.Tx) promotion.Repository { return f }

func (f *fakePromotionRepository) Create(ctx context.Context, p *promotion.Promotion) error {
	if f.createFn != nil {
		return f.createFn(ctx, p)
	}
	return nil
}

func (f *fakePromotionRepository) FindAll(ctx context.Context, status string) ([]promotion.Promotion, error) {
	return nil, nil
}

func (f *fakePromotionRepository) FindByID(ctx context.Context, id string) (*promotion.Promotion, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePromotionRepository) Update(ctx context.Context, p *promotion.Promotion) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, p)
	}
	return nil
}

func (f *fakePromotionRepository) Delete(ctx context.Context, id string) error {
	return gorm.ErrRecordNotFound
}

func (f *fakePromotionRepository) EmployeeExists(ctx context.Context, employeeID string) (bool, error) {
	return f.employeeExists, nil
}

func (f *fakePromotionRepository) UpdateEmployeeCategory(ctx context.Context, employeeID, category string) error {
	if f.updateEmployeeCategoryFn != nil {
		return f.updateEmployeeCategoryFn(ctx, employeeID, category)
	}
	return nil
}

func setupPromotionServiceTest(t *testing.T) (promotion.Service, *fakePromotionRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := &fakePromotionRepository{employeeExists: true}
	return promotion.NewService(db, repo), repo, sqlMock
}

func promotionRequest(employeeID string) promotion.PromotionRequest {
	return promotion.PromotionRequest{
		EmployeeID:    employeeID,
		FromCategory:  secondGrade,
		ToCategory:    salarycategory.FirstGrade,
		PromotionDate: "2026-01-01",
		Reason:        "أداء متميز",
	}
}

func TestPromotionService_Create(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New().String()

	t.Run("starts under review", func(t *testing.T) {
		svc, _, sqlMock := setupPromotionServiceTest(t)
		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		resp, err := svc.Create(ctx, promotionRequest(employeeID))

		assert.NoError(t, err)
		assert.Equal(t, promotion.StatusUnderReview, resp.Status)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("same category", func(t *testing.T) {
		svc, _, _ := setupPromotionServiceTest(t)
		req := promotionRequest(employeeID)
		req.ToCategory = req.FromCategory

		_, err := svc.Create(ctx, req)

		assert.ErrorIs(t, err, promotionerrors.ErrSameCategory)
	})

	t.Run("unknown category", func(t *testing.T) {
		svc, _, _ := setupPromotionServiceTest(t)
		req := promotionRequest(employeeID)
		req.ToCategory = "الدرجة العاشرة"

		_, err := svc.Create(ctx, req)

		assert.ErrorIs(t, err, promotionerrors.ErrInvalidCategory)
	})
}

func TestPromotionService_Approve(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New().String()
	id := uuid.New()
	employeeID := uuid.New()

	underReview := func(ctx context.Context, got string) (*promotion.Promotion, error) {
		return &promotion.Promotion{
			ID:           id,
			EmployeeID:   employeeID,
			FromCategory: secondGrade,
			ToCategory:   salarycategory.FirstGrade,
			Status:       promotion.StatusUnderReview,
		}, nil
	}

	t.Run("moves employee to new grade", func(t *testing.T) {
		svc, repo, sqlMock := setupPromotionServiceTest(t)
		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()
		repo.findByIDFn = underReview

		var updatedCategory string
		repo.updateEmployeeCategoryFn = func(ctx context.Context, eid, category string) error {
			assert.Equal(t, employeeID.String(), eid)
			updatedCategory = category
			return nil
		}

		resp, err := svc.Approve(ctx, actorID, id.String())

		assert.NoError(t, err)
		assert.Equal(t, promotion.StatusApproved, resp.Status)
		assert.Equal(t, salarycategory.FirstGrade, updatedCategory)
		assert.Equal(t, actorID, *resp.DecidedBy)
	})

	t.Run("reject leaves grade untouched", func(t *testing.T) {
		svc, repo, sqlMock := setupPromotionServiceTest(t)
		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()
		repo.findByIDFn = underReview
		repo.updateEmployeeCategoryFn = func(ctx context.Context, eid, category string) error {
			t.Fatal("category must not change on rejection")
			return nil
		}

		resp, err := svc.Reject(ctx, actorID, id.String())

		assert.NoError(t, err)
		assert.Equal(t, promotion.StatusRejected, resp.Status)
	})

	t.Run("already decided", func(t *testing.T) {
		svc, repo, sqlMock := setupPromotionServiceTest(t)
		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()
		repo.findByIDFn = func(ctx context.Context, got string) (*promotion.Promotion, error) {
			return &promotion.Promotion{ID: id, Status: promotion.StatusApproved}, nil
		}

		_, err := svc.Approve(ctx, actorID, id.String())

		assert.ErrorIs(t, err, promotionerrors.ErrOnlyPendingEditable)
	})
}

func TestPromotionService_Delete_NotFound(t *testing.T) {
	svc, _, _ := setupPromotionServiceTest(t)

	err := svc.Delete(context.Background(), uuid.New().String())

	assert.ErrorIs(t, err, promotionerrors.ErrPromotionNotFound)
}
