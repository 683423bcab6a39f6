package evaluation

import (
	"context"
	"database/sql"
	"strconv"

	evaluationerrors "go-hrms/internal/evaluation/errors"
	"go-hrms/internal/shared/dberr"
	"go-hrms/internal/shared/employeeref"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=evaluation_service.go -destination=mock/evaluation_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req EvaluationRequest) (EvaluationResponse, error)
	GetAll(ctx context.Context, period string) ([]EvaluationResponse, error)
	GetByID(ctx context.Context, id string) (EvaluationResponse, error)
	Update(ctx context.Context, id string, req EvaluationRequest) (EvaluationResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("evaluation.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("evaluation.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func validatePeriod(period string) error {
	if len(period) != 4 {
		return evaluationerrors.ErrInvalidPeriod
	}
	if _, err := strconv.Atoi(period); err != nil {
		return evaluationerrors.ErrInvalidPeriod
	}
	return nil
}

func validateRequest(req EvaluationRequest) (uuid.UUID, error) {
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return uuid.Nil, evaluationerrors.ErrInvalidEmployeeID
	}
	if err := validatePeriod(req.Period); err != nil {
		return uuid.Nil, err
	}
	if req.Score.IsNegative() || req.Score.GreaterThan(scoreMax) {
		return uuid.Nil, evaluationerrors.ErrInvalidScore
	}
	return employeeUUID, nil
}

func mapRepositoryError(err error) error {
	switch {
	case dberr.IsNotFound(err):
		return evaluationerrors.ErrEvaluationNotFound
	case dberr.IsUniqueViolation(err, "uq_evaluation_employee_period"):
		return evaluationerrors.ErrEvaluationExists
	}
	return err
}

func (s *service) Create(ctx context.Context, req EvaluationRequest) (EvaluationResponse, error) {
	s.logger.Debug("create evaluation requested",
		zap.String("employee_id", req.EmployeeID),
		zap.String("period", req.Period),
	)

	employeeUUID, err := validateRequest(req)
	if err != nil {
		s.logger.Warn("create evaluation validation failed", zap.Error(err))
		return EvaluationResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create evaluation begin tx failed", zap.Error(err))
		return EvaluationResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.EmployeeExists(ctx, req.EmployeeID)
	if err != nil {
		return EvaluationResponse{}, err
	}
	if !exists {
		return EvaluationResponse{}, evaluationerrors.ErrEmployeeNotFound
	}

	e := &Evaluation{
		ID:         uuid.New(),
		EmployeeID: employeeUUID,
		Period:     req.Period,
		Score:      req.Score.Round(2),
		Rating:     RatingFor(req.Score),
		Evaluator:  req.Evaluator,
		Notes:      req.Notes,
	}
	if err := qtx.Create(ctx, e); err != nil {
		s.logger.Error("create evaluation persist failed", zap.Error(err))
		return EvaluationResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return EvaluationResponse{}, err
	}
	s.logger.Info("create evaluation success",
		zap.String("evaluation_id", e.ID.String()),
		zap.String("rating", e.Rating),
	)

	return mapToResponse(*e), nil
}

func (s *service) GetAll(ctx context.Context, period string) ([]EvaluationResponse, error) {
	if period != "" {
		if err := validatePeriod(period); err != nil {
			return nil, err
		}
	}
	rows, err := s.repo.FindAll(ctx, period)
	if err != nil {
		return nil, err
	}
	resp := make([]EvaluationResponse, len(rows))
	for i, e := range rows {
		resp[i] = mapToResponse(e)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (EvaluationResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EvaluationResponse{}, evaluationerrors.ErrInvalidEvaluationID
	}
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EvaluationResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*e), nil
}

// Update rewrites the evaluation and re-derives its rating from the new score.
func (s *service) Update(ctx context.Context, id string, req EvaluationRequest) (EvaluationResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EvaluationResponse{}, evaluationerrors.ErrInvalidEvaluationID
	}
	employeeUUID, err := validateRequest(req)
	if err != nil {
		return EvaluationResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EvaluationResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	e, err := qtx.FindByID(ctx, id)
	if err != nil {
		return EvaluationResponse{}, mapRepositoryError(err)
	}
	if e.EmployeeID != employeeUUID {
		exists, err := qtx.EmployeeExists(ctx, req.EmployeeID)
		if err != nil {
			return EvaluationResponse{}, err
		}
		if !exists {
			return EvaluationResponse{}, evaluationerrors.ErrEmployeeNotFound
		}
	}

	e.EmployeeID = employeeUUID
	e.Employee = nil
	e.Period = req.Period
	e.Score = req.Score.Round(2)
	e.Rating = RatingFor(req.Score)
	e.Evaluator = req.Evaluator
	e.Notes = req.Notes

	if err := qtx.Update(ctx, e); err != nil {
		s.logger.Error("update evaluation persist failed", zap.String("evaluation_id", id), zap.Error(err))
		return EvaluationResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return EvaluationResponse{}, err
	}
	s.logger.Info("update evaluation success", zap.String("evaluation_id", id))

	return mapToResponse(*e), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return evaluationerrors.ErrInvalidEvaluationID
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}
	return nil
}

func mapToResponse(e Evaluation) EvaluationResponse {
	return EvaluationResponse{
		ID:           e.ID.String(),
		EmployeeID:   e.EmployeeID.String(),
		EmployeeName: employeeref.Name(e.Employee),
		Period:       e.Period,
		Score:        e.Score,
		Rating:       e.Rating,
		Evaluator:    e.Evaluator,
		Notes:        e.Notes,
	}
}
