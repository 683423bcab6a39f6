package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	employeeerrors "go-hrms/internal/employee/errors"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/salarycategory"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const EmployeeOptionsKey = "employees:options"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context) ([]EmployeeOptionResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db        *sql.DB
	repo      Repository
	counter   counter.Repository
	publisher EventPublisher
	rdb       *redis.Client
	sf        *singleflight.Group
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	counter counter.Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		counter:   counter,
		publisher: NewOutboxEventPublisher(outboxRepo),
		rdb:       rdb,
		sf:        &singleflight.Group{},
		logger:    l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	if req.Status == "" {
		req.Status = StatusActive
	}
	hireDate, err := validateFields(req.HireDate, req.Status, req.SalaryCategory)
	if err != nil {
		s.logger.Warn("create employee validation failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	if req.EmployeeNumber == "" {
		nextVal, err := s.counter.GetNextValue(ctx, counter.TypeEmployeeNumber)
		if err != nil {
			s.logger.Error("create employee generate number failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		req.EmployeeNumber = fmt.Sprintf("EMP-%06d", nextVal)
	}

	empl := &Employee{
		ID:             uuid.New(),
		EmployeeNumber: req.EmployeeNumber,
		FullName:       req.FullName,
		NationalID:     req.NationalID,
		Email:          req.Email,
		Phone:          req.Phone,
		Department:     req.Department,
		JobTitle:       req.JobTitle,
		SalaryCategory: req.SalaryCategory,
		HireDate:       hireDate,
		Status:         req.Status,
	}

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := s.publisher.PublishEmployeeCreated(ctx, tx, newEmployeeCreatedEvent(rid, empl)); err != nil {
		s.logger.Error("create employee outbox persist failed",
			zap.String("employee_id", empl.ID.String()),
			zap.Error(err),
		)
		return EmployeeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptions(ctx)

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
		zap.String("employee_number", empl.EmployeeNumber),
	)

	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested")
	employees, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(employees), nil
}

// GetOptions lists active employees for the pickers on the record forms.
func (s *service) GetOptions(ctx context.Context) ([]EmployeeOptionResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, EmployeeOptionsKey).Result(); err == nil {
			var resp []EmployeeOptionResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(EmployeeOptionsKey, func() (interface{}, error) {
		employees, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := make([]EmployeeOptionResponse, len(employees))
		for i, e := range employees {
			resp[i] = EmployeeOptionResponse{
				ID:             e.ID.String(),
				EmployeeNumber: e.EmployeeNumber,
				FullName:       e.FullName,
			}
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, EmployeeOptionsKey, jsonData, time.Hour)
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]EmployeeOptionResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.String("employee_id", id))
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("get employee by id failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested", zap.String("employee_id", id))
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	hireDate, err := validateFields(req.HireDate, req.Status, req.SalaryCategory)
	if err != nil {
		s.logger.Warn("update employee validation failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("update employee fetch existing failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	empl.EmployeeNumber = req.EmployeeNumber
	empl.FullName = req.FullName
	empl.NationalID = req.NationalID
	empl.Email = req.Email
	empl.Phone = req.Phone
	empl.Department = req.Department
	empl.JobTitle = req.JobTitle
	empl.SalaryCategory = req.SalaryCategory
	empl.HireDate = hireDate
	empl.Status = req.Status

	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptions(ctx)
	s.logger.Info("update employee success", zap.String("employee_id", id))

	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete employee requested", zap.String("employee_id", id))
	if _, err := uuid.Parse(id); err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Warn("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	s.invalidateOptions(ctx)
	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func (s *service) invalidateOptions(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, EmployeeOptionsKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", EmployeeOptionsKey),
		)
	}
}

func validateFields(hireDateRaw, status, category string) (time.Time, error) {
	hireDate, err := time.Parse(time.DateOnly, hireDateRaw)
	if err != nil {
		return time.Time{}, employeeerrors.ErrInvalidHireDate
	}
	if !isValidStatus(status) {
		return time.Time{}, employeeerrors.ErrInvalidStatus
	}
	if category != "" && !salarycategory.Exists(category) {
		return time.Time{}, employeeerrors.ErrInvalidSalaryCategory
	}
	return hireDate, nil
}

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             empl.ID.String(),
		EmployeeNumber: empl.EmployeeNumber,
		FullName:       empl.FullName,
		NationalID:     empl.NationalID,
		Email:          empl.Email,
		Phone:          empl.Phone,
		Department:     empl.Department,
		JobTitle:       empl.JobTitle,
		SalaryCategory: empl.SalaryCategory,
		HireDate:       empl.HireDate.Format(time.DateOnly),
		Status:         empl.Status,
	}
}

func mapToListResponse(employees []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		res[i] = mapToResponse(e)
	}
	return res
}
