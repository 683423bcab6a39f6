package course

import (
	"context"
	"database/sql"
	"time"

	courseerrors "go-hrms/internal/course/errors"
	"go-hrms/internal/shared/dberr"
	"go-hrms/internal/shared/employeeref"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=course_service.go -destination=mock/course_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CourseRequest) (CourseResponse, error)
	GetAll(ctx context.Context, employeeID string) ([]CourseResponse, error)
	GetByID(ctx context.Context, id string) (CourseResponse, error)
	Update(ctx context.Context, id string, req CourseRequest) (CourseResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("course.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("course.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

type courseFields struct {
	employeeID uuid.UUID
	start      time.Time
	end        time.Time
	status     string
}

func validateRequest(req CourseRequest) (courseFields, error) {
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return courseFields{}, courseerrors.ErrInvalidEmployeeID
	}
	start, err := time.Parse(time.DateOnly, req.StartDate)
	if err != nil {
		return courseFields{}, courseerrors.ErrInvalidDateFormat
	}
	end, err := time.Parse(time.DateOnly, req.EndDate)
	if err != nil {
		return courseFields{}, courseerrors.ErrInvalidDateFormat
	}
	if start.After(end) {
		return courseFields{}, courseerrors.ErrInvalidDateRange
	}

	status := req.Status
	if status == "" {
		status = StatusPlanned
	}
	if !isValidStatus(status) {
		return courseFields{}, courseerrors.ErrInvalidStatus
	}
	return courseFields{employeeID: employeeUUID, start: start, end: end, status: status}, nil
}

func (s *service) Create(ctx context.Context, req CourseRequest) (CourseResponse, error) {
	s.logger.Debug("create course requested",
		zap.String("employee_id", req.EmployeeID),
		zap.String("title", req.Title),
	)

	f, err := validateRequest(req)
	if err != nil {
		s.logger.Warn("create course validation failed", zap.Error(err))
		return CourseResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create course begin tx failed", zap.Error(err))
		return CourseResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.EmployeeExists(ctx, req.EmployeeID)
	if err != nil {
		return CourseResponse{}, err
	}
	if !exists {
		return CourseResponse{}, courseerrors.ErrEmployeeNotFound
	}

	c := &Course{
		ID:         uuid.New(),
		EmployeeID: f.employeeID,
		Title:      req.Title,
		Provider:   req.Provider,
		StartDate:  f.start,
		EndDate:    f.end,
		Status:     f.status,
		Notes:      req.Notes,
	}
	if err := qtx.Create(ctx, c); err != nil {
		s.logger.Error("create course persist failed", zap.Error(err))
		return CourseResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("create course commit failed", zap.Error(err))
		return CourseResponse{}, err
	}
	s.logger.Info("create course success", zap.String("course_id", c.ID.String()))

	return mapToResponse(*c), nil
}

func (s *service) GetAll(ctx context.Context, employeeID string) ([]CourseResponse, error) {
	if employeeID != "" {
		if _, err := uuid.Parse(employeeID); err != nil {
			return nil, courseerrors.ErrInvalidEmployeeID
		}
	}
	courses, err := s.repo.FindAll(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	resp := make([]CourseResponse, len(courses))
	for i, c := range courses {
		resp[i] = mapToResponse(c)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (CourseResponse, error) {
	c, err := s.findCourse(ctx, s.repo, id)
	if err != nil {
		return CourseResponse{}, err
	}
	return mapToResponse(*c), nil
}

func (s *service) Update(ctx context.Context, id string, req CourseRequest) (CourseResponse, error) {
	s.logger.Debug("update course requested", zap.String("course_id", id))

	f, err := validateRequest(req)
	if err != nil {
		return CourseResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return CourseResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	c, err := s.findCourse(ctx, qtx, id)
	if err != nil {
		return CourseResponse{}, err
	}
	if c.EmployeeID != f.employeeID {
		exists, err := qtx.EmployeeExists(ctx, req.EmployeeID)
		if err != nil {
			return CourseResponse{}, err
		}
		if !exists {
			return CourseResponse{}, courseerrors.ErrEmployeeNotFound
		}
	}

	c.EmployeeID = f.employeeID
	c.Employee = nil
	c.Title = req.Title
	c.Provider = req.Provider
	c.StartDate = f.start
	c.EndDate = f.end
	c.Status = f.status
	c.Notes = req.Notes

	if err := qtx.Update(ctx, c); err != nil {
		s.logger.Error("update course persist failed", zap.String("course_id", id), zap.Error(err))
		return CourseResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return CourseResponse{}, err
	}
	s.logger.Info("update course success", zap.String("course_id", id))

	return mapToResponse(*c), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return courseerrors.ErrInvalidCourseID
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if dberr.IsNotFound(err) {
			return courseerrors.ErrCourseNotFound
		}
		return err
	}
	s.logger.Info("delete course success", zap.String("course_id", id))
	return nil
}

func (s *service) findCourse(ctx context.Context, repo Repository, id string) (*Course, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, courseerrors.ErrInvalidCourseID
	}
	c, err := repo.FindByID(ctx, id)
	if err != nil {
		if dberr.IsNotFound(err) {
			return nil, courseerrors.ErrCourseNotFound
		}
		return nil, err
	}
	return c, nil
}

func mapToResponse(c Course) CourseResponse {
	return CourseResponse{
		ID:           c.ID.String(),
		EmployeeID:   c.EmployeeID.String(),
		EmployeeName: employeeref.Name(c.Employee),
		Title:        c.Title,
		Provider:     c.Provider,
		StartDate:    c.StartDate.Format(time.DateOnly),
		EndDate:      c.EndDate.Format(time.DateOnly),
		Status:       c.Status,
		Notes:        c.Notes,
	}
}
