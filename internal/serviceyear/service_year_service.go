package serviceyear

import (
	"context"
	"database/sql"
	"time"

	serviceyearerrors "go-hrms/internal/serviceyear/errors"
	"go-hrms/internal/shared/employeeref"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service_year_service.go -destination=mock/service_year_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req ServiceYearRequest) (ServiceYearResponse, error)
	CreateFromHire(ctx context.Context, employeeID, hireDate string) (ServiceYearResponse, error)
	GetAll(ctx context.Context, employeeID string) ([]ServiceYearResponse, error)
	GetByID(ctx context.Context, id string) (ServiceYearResponse, error)
	Update(ctx context.Context, id string, req ServiceYearRequest) (ServiceYearResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("serviceyear.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("serviceyear.service")
	}
	return &service{db: db, repo: repo, logger: l, now: time.Now}
}

type serviceYearFields struct {
	employeeID uuid.UUID
	start      time.Time
	end        *time.Time
	status     string
}

func validateRequest(req ServiceYearRequest) (serviceYearFields, error) {
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return serviceYearFields{}, serviceyearerrors.ErrInvalidEmployeeID
	}
	start, err := time.Parse(time.DateOnly, req.StartDate)
	if err != nil {
		return serviceYearFields{}, serviceyearerrors.ErrInvalidDateFormat
	}

	var end *time.Time
	if req.EndDate != nil && *req.EndDate != "" {
		t, err := time.Parse(time.DateOnly, *req.EndDate)
		if err != nil {
			return serviceYearFields{}, serviceyearerrors.ErrInvalidDateFormat
		}
		if !t.After(start) {
			return serviceYearFields{}, serviceyearerrors.ErrInvalidDateRange
		}
		end = &t
	}

	status := req.Status
	if status == "" {
		status = StatusActive
		if end != nil {
			status = StatusEnded
		}
	}
	switch status {
	case StatusActive:
	case StatusEnded:
		if end == nil {
			return serviceYearFields{}, serviceyearerrors.ErrEndDateRequired
		}
	default:
		return serviceYearFields{}, serviceyearerrors.ErrInvalidStatus
	}

	return serviceYearFields{employeeID: employeeUUID, start: start, end: end, status: status}, nil
}

func (s *service) Create(ctx context.Context, req ServiceYearRequest) (ServiceYearResponse, error) {
	s.logger.Debug("create service year requested",
		zap.String("employee_id", req.EmployeeID),
		zap.String("start_date", req.StartDate),
	)

	f, err := validateRequest(req)
	if err != nil {
		s.logger.Warn("create service year validation failed", zap.Error(err))
		return ServiceYearResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create service year begin tx failed", zap.Error(err))
		return ServiceYearResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.EmployeeExists(ctx, req.EmployeeID)
	if err != nil {
		return ServiceYearResponse{}, err
	}
	if !exists {
		return ServiceYearResponse{}, serviceyearerrors.ErrEmployeeNotFound
	}

	sy := &ServiceYear{
		ID:         uuid.New(),
		EmployeeID: f.employeeID,
		StartDate:  f.start,
		EndDate:    f.end,
		Status:     f.status,
		Notes:      req.Notes,
	}
	if err := qtx.Create(ctx, sy); err != nil {
		return ServiceYearResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return ServiceYearResponse{}, err
	}
	s.logger.Info("create service year success",
		zap.String("service_year_id", sy.ID.String()),
		zap.String("employee_id", req.EmployeeID),
	)

	return s.mapToResponse(*sy), nil
}

// CreateFromHire opens the first service period of a newly hired employee.
func (s *service) CreateFromHire(ctx context.Context, employeeID, hireDate string) (ServiceYearResponse, error) {
	return s.Create(ctx, ServiceYearRequest{
		EmployeeID: employeeID,
		StartDate:  hireDate,
		Status:     StatusActive,
		Notes:      "أُنشئ تلقائياً عند تعيين الموظف",
	})
}

func (s *service) GetAll(ctx context.Context, employeeID string) ([]ServiceYearResponse, error) {
	if employeeID != "" {
		if _, err := uuid.Parse(employeeID); err != nil {
			return nil, serviceyearerrors.ErrInvalidEmployeeID
		}
	}
	rows, err := s.repo.FindAll(ctx, employeeID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	resp := make([]ServiceYearResponse, len(rows))
	for i, sy := range rows {
		resp[i] = s.mapToResponse(sy)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (ServiceYearResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ServiceYearResponse{}, serviceyearerrors.ErrInvalidServiceYearID
	}
	sy, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ServiceYearResponse{}, mapRepositoryError(err)
	}
	return s.mapToResponse(*sy), nil
}

func (s *service) Update(ctx context.Context, id string, req ServiceYearRequest) (ServiceYearResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ServiceYearResponse{}, serviceyearerrors.ErrInvalidServiceYearID
	}
	f, err := validateRequest(req)
	if err != nil {
		return ServiceYearResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ServiceYearResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	sy, err := qtx.FindByID(ctx, id)
	if err != nil {
		return ServiceYearResponse{}, mapRepositoryError(err)
	}
	if sy.EmployeeID != f.employeeID {
		exists, err := qtx.EmployeeExists(ctx, req.EmployeeID)
		if err != nil {
			return ServiceYearResponse{}, err
		}
		if !exists {
			return ServiceYearResponse{}, serviceyearerrors.ErrEmployeeNotFound
		}
	}

	sy.EmployeeID = f.employeeID
	sy.Employee = nil
	sy.StartDate = f.start
	sy.EndDate = f.end
	sy.Status = f.status
	sy.Notes = req.Notes

	if err := qtx.Update(ctx, sy); err != nil {
		s.logger.Error("update service year persist failed", zap.String("service_year_id", id), zap.Error(err))
		return ServiceYearResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return ServiceYearResponse{}, err
	}

	return s.mapToResponse(*sy), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return serviceyearerrors.ErrInvalidServiceYearID
	}
	return mapRepositoryError(s.repo.Delete(ctx, id))
}

func (s *service) mapToResponse(sy ServiceYear) ServiceYearResponse {
	until := s.now().UTC()
	resp := ServiceYearResponse{
		ID:           sy.ID.String(),
		EmployeeID:   sy.EmployeeID.String(),
		EmployeeName: employeeref.Name(sy.Employee),
		StartDate:    sy.StartDate.Format(time.DateOnly),
		Status:       sy.Status,
		Notes:        sy.Notes,
	}
	if sy.EndDate != nil {
		v := sy.EndDate.Format(time.DateOnly)
		resp.EndDate = &v
		until = *sy.EndDate
	}
	resp.Years = WholeYears(sy.StartDate, until)
	return resp
}
