package leave

import (
	"context"
	"database/sql"
	"time"

	leaveerrors "go-hrms/internal/leave/errors"
	"go-hrms/internal/shared/dberr"
	"go-hrms/internal/shared/employeeref"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actorID string, req CreateLeaveRequest) (LeaveResponse, error)
	GetAll(ctx context.Context, status string) ([]LeaveResponse, error)
	GetByID(ctx context.Context, id string) (LeaveResponse, error)
	Update(ctx context.Context, id string, req UpdateLeaveRequest) (LeaveResponse, error)
	Approve(ctx context.Context, actorID, id string) (LeaveResponse, error)
	Reject(ctx context.Context, actorID, id, rejectionReason string) (LeaveResponse, error)
	Cancel(ctx context.Context, actorID, id string) (LeaveResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, actorID string, req CreateLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("create leave requested",
		zap.String("actor_id", actorID),
		zap.String("employee_id", req.EmployeeID),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	employeeUUID, createdByUUID, startDate, endDate, err := validateCreateRequest(actorID, req)
	if err != nil {
		s.logger.Warn("create leave validation failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.EmployeeExists(ctx, req.EmployeeID)
	if err != nil {
		s.logger.Error("create leave employee check failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if !exists {
		return LeaveResponse{}, leaveerrors.ErrEmployeeNotFound
	}

	overlap, err := qtx.HasOverlappingPeriod(ctx, req.EmployeeID, startDate, endDate, nil)
	if err != nil {
		s.logger.Error("create leave overlap check failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if overlap {
		s.logger.Warn("create leave overlap detected",
			zap.String("employee_id", req.EmployeeID),
			zap.String("start_date", req.StartDate),
			zap.String("end_date", req.EndDate),
		)
		return LeaveResponse{}, leaveerrors.ErrLeaveOverlap
	}

	l := &Leave{
		ID:         uuid.New(),
		EmployeeID: employeeUUID,
		LeaveType:  req.LeaveType,
		StartDate:  startDate,
		EndDate:    endDate,
		TotalDays:  totalDays(startDate, endDate),
		Reason:     req.Reason,
		Status:     StatusPending,
		CreatedBy:  createdByUUID,
	}

	if err := qtx.Create(ctx, l); err != nil {
		s.logger.Error("create leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	s.logger.Info("create leave success",
		zap.String("leave_id", l.ID.String()),
		zap.String("employee_id", req.EmployeeID),
		zap.Int("total_days", l.TotalDays),
	)

	return mapToResponse(*l), nil
}

func (s *service) GetAll(ctx context.Context, status string) ([]LeaveResponse, error) {
	leaves, err := s.repo.FindAll(ctx, status)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

func (s *service) GetByID(ctx context.Context, id string) (LeaveResponse, error) {
	l, err := s.findLeave(ctx, s.repo, id)
	if err != nil {
		return LeaveResponse{}, err
	}
	return mapToResponse(*l), nil
}

// Update edits the request details while it is still pending.
func (s *service) Update(ctx context.Context, id string, req UpdateLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("update leave requested", zap.String("leave_id", id))

	if !isValidLeaveType(req.LeaveType) {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveType
	}
	startDate, endDate, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return LeaveResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := s.findLeave(ctx, qtx, id)
	if err != nil {
		return LeaveResponse{}, err
	}
	if l.Status != StatusPending {
		return LeaveResponse{}, leaveerrors.ErrOnlyPendingEditable
	}

	overlap, err := qtx.HasOverlappingPeriod(ctx, l.EmployeeID.String(), startDate, endDate, &id)
	if err != nil {
		return LeaveResponse{}, err
	}
	if overlap {
		return LeaveResponse{}, leaveerrors.ErrLeaveOverlap
	}

	l.LeaveType = req.LeaveType
	l.StartDate = startDate
	l.EndDate = endDate
	l.TotalDays = totalDays(startDate, endDate)
	l.Reason = req.Reason

	if err := qtx.Update(ctx, l); err != nil {
		s.logger.Error("update leave persist failed",
			zap.String("leave_id", id),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update leave commit failed",
			zap.String("leave_id", id),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}
	s.logger.Info("update leave success", zap.String("leave_id", id))

	return mapToResponse(*l), nil
}

func isAllowedStatusTransition(currentStatus, targetStatus string) bool {
	if currentStatus != StatusPending {
		return false
	}
	switch targetStatus {
	case StatusApproved, StatusRejected, StatusCanceled:
		return true
	default:
		return false
	}
}

func (s *service) Approve(ctx context.Context, actorID, id string) (LeaveResponse, error) {
	return s.transitionLeaveStatus(ctx, actorID, id, StatusApproved, nil)
}

func (s *service) Reject(ctx context.Context, actorID, id, rejectionReason string) (LeaveResponse, error) {
	return s.transitionLeaveStatus(ctx, actorID, id, StatusRejected, &rejectionReason)
}

func (s *service) Cancel(ctx context.Context, actorID, id string) (LeaveResponse, error) {
	return s.transitionLeaveStatus(ctx, actorID, id, StatusCanceled, nil)
}

func (s *service) transitionLeaveStatus(ctx context.Context, actorID, id, targetStatus string, rejectionReason *string) (LeaveResponse, error) {
	s.logger.Debug("transition leave status requested",
		zap.String("leave_id", id),
		zap.String("actor_id", actorID),
		zap.String("target_status", targetStatus),
	)

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidActorID
	}
	if targetStatus == StatusRejected && (rejectionReason == nil || *rejectionReason == "") {
		return LeaveResponse{}, leaveerrors.ErrRejectionReasonRequired
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("transition leave status begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := s.findLeave(ctx, qtx, id)
	if err != nil {
		return LeaveResponse{}, err
	}
	if !isAllowedStatusTransition(l.Status, targetStatus) {
		s.logger.Warn("transition leave status invalid",
			zap.String("leave_id", id),
			zap.String("from_status", l.Status),
			zap.String("to_status", targetStatus),
		)
		return LeaveResponse{}, leaveerrors.ErrInvalidStatusTransition
	}

	l.Status = targetStatus
	switch targetStatus {
	case StatusApproved:
		l.ApprovedBy = &actorUUID
		now := time.Now().UTC()
		l.ApprovedAt = &now
		l.RejectionReason = nil
	case StatusRejected:
		l.RejectionReason = rejectionReason
	}

	if err := qtx.Update(ctx, l); err != nil {
		s.logger.Error("transition leave status persist failed",
			zap.String("leave_id", id),
			zap.String("target_status", targetStatus),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("transition leave status commit failed",
			zap.String("leave_id", id),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}
	s.logger.Info("transition leave status success",
		zap.String("leave_id", id),
		zap.String("status", targetStatus),
	)
	return mapToResponse(*l), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return leaveerrors.ErrInvalidLeaveID
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if dberr.IsNotFound(err) {
			return leaveerrors.ErrLeaveNotFound
		}
		return err
	}
	return nil
}

func (s *service) findLeave(ctx context.Context, repo Repository, id string) (*Leave, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, leaveerrors.ErrInvalidLeaveID
	}
	l, err := repo.FindByID(ctx, id)
	if err != nil {
		if dberr.IsNotFound(err) {
			return nil, leaveerrors.ErrLeaveNotFound
		}
		return nil, err
	}
	return l, nil
}

func validateCreateRequest(actorID string, req CreateLeaveRequest) (uuid.UUID, uuid.UUID, time.Time, time.Time, error) {
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return uuid.Nil, uuid.Nil, time.Time{}, time.Time{}, leaveerrors.ErrInvalidEmployeeID
	}
	createdByUUID, err := uuid.Parse(actorID)
	if err != nil {
		return uuid.Nil, uuid.Nil, time.Time{}, time.Time{}, leaveerrors.ErrInvalidActorID
	}
	if !isValidLeaveType(req.LeaveType) {
		return uuid.Nil, uuid.Nil, time.Time{}, time.Time{}, leaveerrors.ErrInvalidLeaveType
	}
	startDate, endDate, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return uuid.Nil, uuid.Nil, time.Time{}, time.Time{}, err
	}
	return employeeUUID, createdByUUID, startDate, endDate, nil
}

func parseRange(startRaw, endRaw string) (time.Time, time.Time, error) {
	startDate, err := parseDate(startRaw)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	endDate, err := parseDate(endRaw)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if startDate.After(endDate) {
		return time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateRange
	}
	return startDate, endDate, nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, v)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

// totalDays counts both ends of the range.
func totalDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

func mapToResponse(l Leave) LeaveResponse {
	resp := LeaveResponse{
		ID:              l.ID.String(),
		EmployeeID:      l.EmployeeID.String(),
		EmployeeName:    employeeref.Name(l.Employee),
		LeaveType:       l.LeaveType,
		StartDate:       l.StartDate.Format(time.DateOnly),
		EndDate:         l.EndDate.Format(time.DateOnly),
		TotalDays:       l.TotalDays,
		Reason:          l.Reason,
		Status:          l.Status,
		CreatedBy:       l.CreatedBy.String(),
		RejectionReason: l.RejectionReason,
	}
	if l.ApprovedBy != nil {
		v := l.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	if l.ApprovedAt != nil {
		v := l.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &v
	}
	return resp
}

func mapToListResponse(leaves []Leave) []LeaveResponse {
	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = mapToResponse(l)
	}
	return resp
}
