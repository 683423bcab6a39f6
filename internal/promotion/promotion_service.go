package promotion

import (
	"context"
	"database/sql"
	"time"

	promotionerrors "go-hrms/internal/promotion/errors"
	"go-hrms/internal/salarycategory"
	"go-hrms/internal/shared/dberr"
	"go-hrms/internal/shared/employeeref"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=promotion_service.go -destination=mock/promotion_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req PromotionRequest) (PromotionResponse, error)
	GetAll(ctx context.Context, status string) ([]PromotionResponse, error)
	GetByID(ctx context.Context, id string) (PromotionResponse, error)
	Update(ctx context.Context, id string, req PromotionRequest) (PromotionResponse, error)
	Approve(ctx context.Context, actorID, id string) (PromotionResponse, error)
	Reject(ctx context.Context, actorID, id string) (PromotionResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("promotion.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("promotion.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func validateRequest(req PromotionRequest) (uuid.UUID, time.Time, error) {
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return uuid.Nil, time.Time{}, promotionerrors.ErrInvalidEmployeeID
	}
	if !salarycategory.Exists(req.FromCategory) || !salarycategory.Exists(req.ToCategory) {
		return uuid.Nil, time.Time{}, promotionerrors.ErrInvalidCategory
	}
	if req.FromCategory == req.ToCategory {
		return uuid.Nil, time.Time{}, promotionerrors.ErrSameCategory
	}
	date, err := time.Parse(time.DateOnly, req.PromotionDate)
	if err != nil {
		return uuid.Nil, time.Time{}, promotionerrors.ErrInvalidDateFormat
	}
	return employeeUUID, date, nil
}

func (s *service) Create(ctx context.Context, req PromotionRequest) (PromotionResponse, error) {
	s.logger.Debug("create promotion requested",
		zap.String("employee_id", req.EmployeeID),
		zap.String("from_category", req.FromCategory),
		zap.String("to_category", req.ToCategory),
	)

	employeeUUID, date, err := validateRequest(req)
	if err != nil {
		s.logger.Warn("create promotion validation failed", zap.Error(err))
		return PromotionResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create promotion begin tx failed", zap.Error(err))
		return PromotionResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.EmployeeExists(ctx, req.EmployeeID)
	if err != nil {
		return PromotionResponse{}, err
	}
	if !exists {
		return PromotionResponse{}, promotionerrors.ErrEmployeeNotFound
	}

	p := &Promotion{
		ID:            uuid.New(),
		EmployeeID:    employeeUUID,
		FromCategory:  req.FromCategory,
		ToCategory:    req.ToCategory,
		PromotionDate: date,
		Status:        StatusUnderReview,
		Reason:        req.Reason,
	}
	if err := qtx.Create(ctx, p); err != nil {
		s.logger.Error("create promotion persist failed", zap.Error(err))
		return PromotionResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return PromotionResponse{}, err
	}
	s.logger.Info("create promotion success", zap.String("promotion_id", p.ID.String()))

	return mapToResponse(*p), nil
}

func (s *service) GetAll(ctx context.Context, status string) ([]PromotionResponse, error) {
	rows, err := s.repo.FindAll(ctx, status)
	if err != nil {
		return nil, err
	}
	resp := make([]PromotionResponse, len(rows))
	for i, p := range rows {
		resp[i] = mapToResponse(p)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (PromotionResponse, error) {
	p, err := s.findPromotion(ctx, s.repo, id)
	if err != nil {
		return PromotionResponse{}, err
	}
	return mapToResponse(*p), nil
}

func (s *service) Update(ctx context.Context, id string, req PromotionRequest) (PromotionResponse, error) {
	employeeUUID, date, err := validateRequest(req)
	if err != nil {
		return PromotionResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PromotionResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	p, err := s.findPromotion(ctx, qtx, id)
	if err != nil {
		return PromotionResponse{}, err
	}
	if p.Status != StatusUnderReview {
		return PromotionResponse{}, promotionerrors.ErrOnlyPendingEditable
	}
	if p.EmployeeID != employeeUUID {
		exists, err := qtx.EmployeeExists(ctx, req.EmployeeID)
		if err != nil {
			return PromotionResponse{}, err
		}
		if !exists {
			return PromotionResponse{}, promotionerrors.ErrEmployeeNotFound
		}
	}

	p.EmployeeID = employeeUUID
	p.Employee = nil
	p.FromCategory = req.FromCategory
	p.ToCategory = req.ToCategory
	p.PromotionDate = date
	p.Reason = req.Reason

	if err := qtx.Update(ctx, p); err != nil {
		s.logger.Error("update promotion persist failed", zap.String("promotion_id", id), zap.Error(err))
		return PromotionResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return PromotionResponse{}, err
	}
	return mapToResponse(*p), nil
}

// Approve moves the employee to the target grade in the same transaction.
func (s *service) Approve(ctx context.Context, actorID, id string) (PromotionResponse, error) {
	return s.decide(ctx, actorID, id, StatusApproved)
}

func (s *service) Reject(ctx context.Context, actorID, id string) (PromotionResponse, error) {
	return s.decide(ctx, actorID, id, StatusRejected)
}

func (s *service) decide(ctx context.Context, actorID, id, status string) (PromotionResponse, error) {
	s.logger.Debug("decide promotion requested",
		zap.String("promotion_id", id),
		zap.String("actor_id", actorID),
		zap.String("status", status),
	)

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return PromotionResponse{}, promotionerrors.ErrInvalidActorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PromotionResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	p, err := s.findPromotion(ctx, qtx, id)
	if err != nil {
		return PromotionResponse{}, err
	}
	if p.Status != StatusUnderReview {
		s.logger.Warn("decide promotion invalid state",
			zap.String("promotion_id", id),
			zap.String("from_status", p.Status),
		)
		return PromotionResponse{}, promotionerrors.ErrOnlyPendingEditable
	}

	now := time.Now().UTC()
	p.Status = status
	p.DecidedBy = &actorUUID
	p.DecidedAt = &now

	if status == StatusApproved {
		if err := qtx.UpdateEmployeeCategory(ctx, p.EmployeeID.String(), p.ToCategory); err != nil {
			if dberr.IsNotFound(err) {
				return PromotionResponse{}, promotionerrors.ErrEmployeeNotFound
			}
			s.logger.Error("approve promotion category update failed", zap.Error(err))
			return PromotionResponse{}, err
		}
	}
	if err := qtx.Update(ctx, p); err != nil {
		s.logger.Error("decide promotion persist failed", zap.String("promotion_id", id), zap.Error(err))
		return PromotionResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return PromotionResponse{}, err
	}
	s.logger.Info("decide promotion success",
		zap.String("promotion_id", id),
		zap.String("status", status),
	)

	return mapToResponse(*p), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return promotionerrors.ErrInvalidPromotionID
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if dberr.IsNotFound(err) {
			return promotionerrors.ErrPromotionNotFound
		}
		return err
	}
	return nil
}

func (s *service) findPromotion(ctx context.Context, repo Repository, id string) (*Promotion, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, promotionerrors.ErrInvalidPromotionID
	}
	p, err := repo.FindByID(ctx, id)
	if err != nil {
		if dberr.IsNotFound(err) {
			return nil, promotionerrors.ErrPromotionNotFound
		}
		return nil, err
	}
	return p, nil
}

func mapToResponse(p Promotion) PromotionResponse {
	resp := PromotionResponse{
		ID:            p.ID.String(),
		EmployeeID:    p.EmployeeID.String(),
		EmployeeName:  employeeref.Name(p.Employee),
		FromCategory:  p.FromCategory,
		ToCategory:    p.ToCategory,
		PromotionDate: p.PromotionDate.Format(time.DateOnly),
		Status:        p.Status,
		Reason:        p.Reason,
	}
	if p.DecidedBy != nil {
		v := p.DecidedBy.String()
		resp.DecidedBy = &v
	}
	if p.DecidedAt != nil {
		v := p.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &v
	}
	return resp
}
