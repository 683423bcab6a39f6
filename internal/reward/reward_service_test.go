package reward_test

import (
	"context"
	"testing"

	"go-hrms/internal/reward"
	rewarderrors "go-hrms/internal/reward/errors"
	"go-hrms/internal/reward/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func setupRewardServiceTest(t *testing.T) (reward.Service, *mock.MockRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := mock.NewMockRepository(gomock.NewController(t))
	return reward.NewService(db, repo), repo, sqlMock
}

func TestRewardService_Create(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New().String()

	t.Run("financial reward", func(t *testing.T) {
		svc, repo, sqlMock := setupRewardServiceTest(t)
		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().EmployeeExists(ctx, employeeID).Return(true, nil)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		resp, err := svc.Create(ctx, reward.RewardRequest{
			EmployeeID: employeeID,
			RewardType: reward.TypeFinancial,
			Amount:     decimal.RequireFromString("250.456"),
			RewardDate: "2026-04-01",
		})

		assert.NoError(t, err)
		assert.Equal(t, "250.46", resp.Amount.StringFixed(2))
		assert.Equal(t, reward.StatusUnderReview, resp.Status)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("financial reward without amount", func(t *testing.T) {
		svc, _, _ := setupRewardServiceTest(t)

		_, err := svc.Create(ctx, reward.RewardRequest{
			EmployeeID: employeeID,
			RewardType: reward.TypeFinancial,
			RewardDate: "2026-04-01",
		})

		assert.ErrorIs(t, err, rewarderrors.ErrAmountRequired)
	})

	t.Run("certificate may be zero", func(t *testing.T) {
		svc, repo, sqlMock := setupRewardServiceTest(t)
		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().EmployeeExists(ctx, employeeID).Return(true, nil)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		resp, err := svc.Create(ctx, reward.RewardRequest{
			EmployeeID: employeeID,
			RewardType: reward.TypeCertificate,
			RewardDate: "2026-04-01",
			Status:     reward.StatusApproved,
		})

		assert.NoError(t, err)
		assert.True(t, resp.Amount.IsZero())
		assert.Equal(t, reward.StatusApproved, resp.Status)
	})

	t.Run("negative amount", func(t *testing.T) {
		svc, _, _ := setupRewardServiceTest(t)

		_, err := svc.Create(ctx, reward.RewardRequest{
			EmployeeID: employeeID,
			RewardType: reward.TypeExceptional,
			Amount:     decimal.NewFromInt(-5),
			RewardDate: "2026-04-01",
		})

		assert.ErrorIs(t, err, rewarderrors.ErrNegativeAmount)
	})

	t.Run("unknown status", func(t *testing.T) {
		svc, _, _ := setupRewardServiceTest(t)

		_, err := svc.Create(ctx, reward.RewardRequest{
			EmployeeID: employeeID,
			RewardType: reward.TypeCertificate,
			RewardDate: "2026-04-01",
			Status:     "PAID",
		})

		assert.ErrorIs(t, err, rewarderrors.ErrInvalidStatus)
	})
}

func TestRewardService_GetByID_NotFound(t *testing.T) {
	svc, repo, _ := setupRewardServiceTest(t)
	id := uuid.New().String()
	repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetByID(context.Background(), id)

	assert.ErrorIs(t, err, rewarderrors.ErrRewardNotFound)
}
