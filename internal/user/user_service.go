package user

import (
	"context"
	"slices"
	"strings"
	"time"

	"go-hrms/internal/rbac"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/shared/dberr"
	usererrors "go-hrms/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]UserResponse, error)
	GetByID(ctx context.Context, id string) (UserResponse, error)
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	UpdateRole(ctx context.Context, id, role string) (UserResponse, error)
	ToggleStatus(ctx context.Context, actorID, id string, isActive bool) error
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
	ResetPassword(ctx context.Context, id, newPassword string) error
	EnsureAdmin(ctx context.Context, email, password string) (bool, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{repo: repo, logger: l}
}

func normalizeRole(role string) (string, error) {
	role = strings.ToLower(strings.TrimSpace(role))
	if !slices.Contains(rbac.Roles, role) {
		return "", usererrors.ErrInvalidRole
	}
	return role, nil
}

func (s *service) find(ctx context.Context, id string) (*User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, usererrors.ErrInvalidUserID
	}
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if dberr.IsNotFound(err) {
			return nil, usererrors.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *service) GetAll(ctx context.Context) ([]UserResponse, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("failed to list users", zap.Error(err))
		return nil, err
	}

	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = mapToResponse(u)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (UserResponse, error) {
	u, err := s.find(ctx, id)
	if err != nil {
		return UserResponse{}, err
	}
	return mapToResponse(*u), nil
}

func (s *service) Create(ctx context.Context, req CreateUserRequest) (UserResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)
	l.Debug("creating user", zap.String("email", req.Email), zap.String("role", req.Role))

	role, err := normalizeRole(req.Role)
	if err != nil {
		l.Warn("create user rejected", zap.String("role", req.Role))
		return UserResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		l.Error("failed to hash password", zap.Error(err))
		return UserResponse{}, err
	}

	u := &User{
		ID:       uuid.New(),
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: string(hashed),
		Role:     role,
		IsActive: true,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		if dberr.IsUniqueViolation(err, "uq_users_email") {
			return UserResponse{}, usererrors.ErrUserAlreadyExists
		}
		l.Error("failed to create user", zap.Error(err))
		return UserResponse{}, err
	}

	l.Info("user created", zap.String("user_id", u.ID.String()), zap.String("role", role))
	return mapToResponse(*u), nil
}

func (s *service) UpdateRole(ctx context.Context, id, role string) (UserResponse, error) {
	normalized, err := normalizeRole(role)
	if err != nil {
		return UserResponse{}, err
	}

	u, err := s.find(ctx, id)
	if err != nil {
		return UserResponse{}, err
	}

	u.Role = normalized
	if err := s.repo.Update(ctx, u); err != nil {
		s.logger.Error("failed to update user role", zap.String("user_id", id), zap.Error(err))
		return UserResponse{}, err
	}

	s.logger.Info("user role updated", zap.String("user_id", id), zap.String("role", normalized))
	return mapToResponse(*u), nil
}

func (s *service) ToggleStatus(ctx context.Context, actorID, id string, isActive bool) error {
	if actorID == id && !isActive {
		return usererrors.ErrSelfDeactivation
	}

	u, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	u.IsActive = isActive
	if err := s.repo.Update(ctx, u); err != nil {
		s.logger.Error("failed to update user status", zap.String("user_id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *service) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	u, err := s.find(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(currentPassword)); err != nil {
		return usererrors.ErrWrongPassword
	}

	return s.setPassword(ctx, u, newPassword)
}

func (s *service) ResetPassword(ctx context.Context, id, newPassword string) error {
	u, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	return s.setPassword(ctx, u, newPassword)
}

func (s *service) setPassword(ctx context.Context, u *User, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("failed to hash new password", zap.Error(err))
		return err
	}

	u.Password = string(hashed)
	return s.repo.Update(ctx, u)
}

// EnsureAdmin creates the first admin account when the users table is empty.
// It reports whether an account was created.
func (s *service) EnsureAdmin(ctx context.Context, email, password string) (bool, error) {
	if email == "" || password == "" {
		return false, nil
	}

	n, err := s.repo.Count(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}

	_, err = s.Create(ctx, CreateUserRequest{
		Name:     "مدير النظام",
		Email:    email,
		Password: password,
		Role:     rbac.RoleAdmin,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func mapToResponse(u User) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt.Format(time.DateTime),
	}
}
