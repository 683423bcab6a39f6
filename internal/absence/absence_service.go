package absence

import (
	"context"
	"database/sql"
	"time"

	absenceerrors "go-hrms/internal/absence/errors"
	"go-hrms/internal/shared/dberr"
	"go-hrms/internal/shared/employeeref"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=absence_service.go -destination=mock/absence_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req AbsenceRequest) (AbsenceResponse, error)
	GetAll(ctx context.Context, filter AbsenceFilter) ([]AbsenceResponse, error)
	GetByID(ctx context.Context, id string) (AbsenceResponse, error)
	Update(ctx context.Context, id string, req AbsenceRequest) (AbsenceResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("absence.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("absence.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func validateRequest(req AbsenceRequest) (uuid.UUID, time.Time, string, error) {
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return uuid.Nil, time.Time{}, "", absenceerrors.ErrInvalidEmployeeID
	}
	date, err := time.Parse(time.DateOnly, req.AbsenceDate)
	if err != nil {
		return uuid.Nil, time.Time{}, "", absenceerrors.ErrInvalidDateFormat
	}
	if !contains(Types, req.AbsenceType) {
		return uuid.Nil, time.Time{}, "", absenceerrors.ErrInvalidAbsenceType
	}
	if req.Hours.IsNegative() || req.Hours.GreaterThan(maxHours) {
		return uuid.Nil, time.Time{}, "", absenceerrors.ErrInvalidHours
	}
	// Lateness needs a positive hour count.
	if req.AbsenceType == TypeLate && req.Hours.IsZero() {
		return uuid.Nil, time.Time{}, "", absenceerrors.ErrInvalidHours
	}

	status := req.Status
	if status == "" {
		status = StatusRecorded
	}
	if !contains(Statuses, status) {
		return uuid.Nil, time.Time{}, "", absenceerrors.ErrInvalidStatus
	}
	return employeeUUID, date, status, nil
}

func (s *service) Create(ctx context.Context, req AbsenceRequest) (AbsenceResponse, error) {
	s.logger.Debug("create absence requested",
		zap.String("employee_id", req.EmployeeID),
		zap.String("absence_date", req.AbsenceDate),
		zap.String("absence_type", req.AbsenceType),
	)

	employeeUUID, date, status, err := validateRequest(req)
	if err != nil {
		s.logger.Warn("create absence validation failed", zap.Error(err))
		return AbsenceResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create absence begin tx failed", zap.Error(err))
		return AbsenceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.EmployeeExists(ctx, req.EmployeeID)
	if err != nil {
		return AbsenceResponse{}, err
	}
	if !exists {
		return AbsenceResponse{}, absenceerrors.ErrEmployeeNotFound
	}

	existing, err := qtx.FindByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil && !dberr.IsNotFound(err) {
		return AbsenceResponse{}, err
	}
	if existing != nil {
		s.logger.Warn("create absence duplicate day",
			zap.String("employee_id", req.EmployeeID),
			zap.String("absence_date", req.AbsenceDate),
		)
		return AbsenceResponse{}, absenceerrors.ErrAbsenceExists
	}

	a := &Absence{
		ID:          uuid.New(),
		EmployeeID:  employeeUUID,
		AbsenceDate: date,
		AbsenceType: req.AbsenceType,
		Hours:       req.Hours.Round(2),
		Status:      status,
		Notes:       req.Notes,
	}
	if err := qtx.Create(ctx, a); err != nil {
		if dberr.IsUniqueViolation(err, "uq_absence_employee_date") {
			return AbsenceResponse{}, absenceerrors.ErrAbsenceExists
		}
		s.logger.Error("create absence persist failed", zap.Error(err))
		return AbsenceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AbsenceResponse{}, err
	}
	s.logger.Info("create absence success", zap.String("absence_id", a.ID.String()))

	return mapToResponse(*a), nil
}

func (s *service) GetAll(ctx context.Context, filter AbsenceFilter) ([]AbsenceResponse, error) {
	var lf ListFilter
	if filter.Month != "" {
		from, err := time.Parse("2006-01", filter.Month)
		if err != nil {
			return nil, absenceerrors.ErrInvalidMonth
		}
		to := from.AddDate(0, 1, 0)
		lf.From, lf.To = &from, &to
	}
	if filter.EmployeeID != "" {
		if _, err := uuid.Parse(filter.EmployeeID); err != nil {
			return nil, absenceerrors.ErrInvalidEmployeeID
		}
		lf.EmployeeID = filter.EmployeeID
	}

	rows, err := s.repo.FindAll(ctx, lf)
	if err != nil {
		return nil, err
	}
	resp := make([]AbsenceResponse, len(rows))
	for i, a := range rows {
		resp[i] = mapToResponse(a)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (AbsenceResponse, error) {
	a, err := s.findAbsence(ctx, s.repo, id)
	if err != nil {
		return AbsenceResponse{}, err
	}
	return mapToResponse(*a), nil
}

func (s *service) Update(ctx context.Context, id string, req AbsenceRequest) (AbsenceResponse, error) {
	employeeUUID, date, status, err := validateRequest(req)
	if err != nil {
		return AbsenceResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AbsenceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	a, err := s.findAbsence(ctx, qtx, id)
	if err != nil {
		return AbsenceResponse{}, err
	}

	if a.EmployeeID != employeeUUID || !a.AbsenceDate.Equal(date) {
		exists, err := qtx.EmployeeExists(ctx, req.EmployeeID)
		if err != nil {
			return AbsenceResponse{}, err
		}
		if !exists {
			return AbsenceResponse{}, absenceerrors.ErrEmployeeNotFound
		}
		other, err := qtx.FindByEmployeeAndDate(ctx, req.EmployeeID, date)
		if err != nil && !dberr.IsNotFound(err) {
			return AbsenceResponse{}, err
		}
		if other != nil && other.ID != a.ID {
			return AbsenceResponse{}, absenceerrors.ErrAbsenceExists
		}
	}

	a.EmployeeID = employeeUUID
	a.Employee = nil
	a.AbsenceDate = date
	a.AbsenceType = req.AbsenceType
	a.Hours = req.Hours.Round(2)
	a.Status = status
	a.Notes = req.Notes

	if err := qtx.Update(ctx, a); err != nil {
		if dberr.IsUniqueViolation(err, "uq_absence_employee_date") {
			return AbsenceResponse{}, absenceerrors.ErrAbsenceExists
		}
		s.logger.Error("update absence persist failed", zap.String("absence_id", id), zap.Error(err))
		return AbsenceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AbsenceResponse{}, err
	}
	s.logger.Info("update absence success", zap.String("absence_id", id))

	return mapToResponse(*a), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return absenceerrors.ErrInvalidAbsenceID
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if dberr.IsNotFound(err) {
			return absenceerrors.ErrAbsenceNotFound
		}
		return err
	}
	return nil
}

func (s *service) findAbsence(ctx context.Context, repo Repository, id string) (*Absence, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, absenceerrors.ErrInvalidAbsenceID
	}
	a, err := repo.FindByID(ctx, id)
	if err != nil {
		if dberr.IsNotFound(err) {
			return nil, absenceerrors.ErrAbsenceNotFound
		}
		return nil, err
	}
	return a, nil
}

func mapToResponse(a Absence) AbsenceResponse {
	return AbsenceResponse{
		ID:           a.ID.String(),
		EmployeeID:   a.EmployeeID.String(),
		EmployeeName: employeeref.Name(a.Employee),
		AbsenceDate:  a.AbsenceDate.Format(time.DateOnly),
		AbsenceType:  a.AbsenceType,
		Hours:        a.Hours,
		Status:       a.Status,
		Notes:        a.Notes,
	}
}
