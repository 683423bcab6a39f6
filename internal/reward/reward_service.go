package reward

import (
	"context"
	"database/sql"
	"time"

	rewarderrors "go-hrms/internal/reward/errors"
	"go-hrms/internal/shared/dberr"
	"go-hrms/internal/shared/employeeref"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=reward_service.go -destination=mock/reward_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req RewardRequest) (RewardResponse, error)
	GetAll(ctx context.Context, status string) ([]RewardResponse, error)
	GetByID(ctx context.Context, id string) (RewardResponse, error)
	Update(ctx context.Context, id string, req RewardRequest) (RewardResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("reward.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("reward.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

type rewardFields struct {
	employeeID uuid.UUID
	date       time.Time
	status     string
	amount     decimal.Decimal
}

func validateRequest(req RewardRequest) (rewardFields, error) {
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return rewardFields{}, rewarderrors.ErrInvalidEmployeeID
	}
	if !contains(Types, req.RewardType) {
		return rewardFields{}, rewarderrors.ErrInvalidRewardType
	}
	if req.Amount.IsNegative() {
		return rewardFields{}, rewarderrors.ErrNegativeAmount
	}
	// A financial reward must carry money; the other kinds may be zero.
	if req.RewardType == TypeFinancial && !req.Amount.IsPositive() {
		return rewardFields{}, rewarderrors.ErrAmountRequired
	}
	date, err := time.Parse(time.DateOnly, req.RewardDate)
	if err != nil {
		return rewardFields{}, rewarderrors.ErrInvalidDateFormat
	}

	status := req.Status
	if status == "" {
		status = StatusUnderReview
	}
	if !contains(Statuses, status) {
		return rewardFields{}, rewarderrors.ErrInvalidStatus
	}

	return rewardFields{
		employeeID: employeeUUID,
		date:       date,
		status:     status,
		amount:     req.Amount.Round(2),
	}, nil
}

func (s *service) Create(ctx context.Context, req RewardRequest) (RewardResponse, error) {
	s.logger.Debug("create reward requested",
		zap.String("employee_id", req.EmployeeID),
		zap.String("reward_type", req.RewardType),
		zap.String("amount", req.Amount.String()),
	)

	f, err := validateRequest(req)
	if err != nil {
		s.logger.Warn("create reward validation failed", zap.Error(err))
		return RewardResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create reward begin tx failed", zap.Error(err))
		return RewardResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.EmployeeExists(ctx, req.EmployeeID)
	if err != nil {
		return RewardResponse{}, err
	}
	if !exists {
		return RewardResponse{}, rewarderrors.ErrEmployeeNotFound
	}

	rw := &Reward{
		ID:         uuid.New(),
		EmployeeID: f.employeeID,
		RewardType: req.RewardType,
		Amount:     f.amount,
		RewardDate: f.date,
		Status:     f.status,
		Reason:     req.Reason,
	}
	if err := qtx.Create(ctx, rw); err != nil {
		s.logger.Error("create reward persist failed", zap.Error(err))
		return RewardResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return RewardResponse{}, err
	}
	s.logger.Info("create reward success", zap.String("reward_id", rw.ID.String()))

	return mapToResponse(*rw), nil
}

func (s *service) GetAll(ctx context.Context, status string) ([]RewardResponse, error) {
	rows, err := s.repo.FindAll(ctx, status)
	if err != nil {
		return nil, err
	}
	resp := make([]RewardResponse, len(rows))
	for i, rw := range rows {
		resp[i] = mapToResponse(rw)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (RewardResponse, error) {
	rw, err := s.findReward(ctx, s.repo, id)
	if err != nil {
		return RewardResponse{}, err
	}
	return mapToResponse(*rw), nil
}

func (s *service) Update(ctx context.Context, id string, req RewardRequest) (RewardResponse, error) {
	f, err := validateRequest(req)
	if err != nil {
		return RewardResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RewardResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rw, err := s.findReward(ctx, qtx, id)
	if err != nil {
		return RewardResponse{}, err
	}
	if rw.EmployeeID != f.employeeID {
		exists, err := qtx.EmployeeExists(ctx, req.EmployeeID)
		if err != nil {
			return RewardResponse{}, err
		}
		if !exists {
			return RewardResponse{}, rewarderrors.ErrEmployeeNotFound
		}
	}

	rw.EmployeeID = f.employeeID
	rw.Employee = nil
	rw.RewardType = req.RewardType
	rw.Amount = f.amount
	rw.RewardDate = f.date
	rw.Status = f.status
	rw.Reason = req.Reason

	if err := qtx.Update(ctx, rw); err != nil {
		s.logger.Error("update reward persist failed", zap.String("reward_id", id), zap.Error(err))
		return RewardResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return RewardResponse{}, err
	}
	s.logger.Info("update reward success", zap.String("reward_id", id))

	return mapToResponse(*rw), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return rewarderrors.ErrInvalidRewardID
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if dberr.IsNotFound(err) {
			return rewarderrors.ErrRewardNotFound
		}
		return err
	}
	return nil
}

func (s *service) findReward(ctx context.Context, repo Repository, id string) (*Reward, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, rewarderrors.ErrInvalidRewardID
	}
	rw, err := repo.FindByID(ctx, id)
	if err != nil {
		if dberr.IsNotFound(err) {
			return nil, rewarderrors.ErrRewardNotFound
		}
		return nil, err
	}
	return rw, nil
}

func mapToResponse(rw Reward) RewardResponse {
	return RewardResponse{
		ID:           rw.ID.String(),
		EmployeeID:   rw.EmployeeID.String(),
		EmployeeName: employeeref.Name(rw.Employee),
		RewardType:   rw.RewardType,
		Amount:       rw.Amount,
		RewardDate:   rw.RewardDate.Format(time.DateOnly),
		Status:       rw.Status,
		Reason:       rw.Reason,
	}
}
