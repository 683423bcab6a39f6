package auth

import (
	"context"
	"time"

	autherrors "go-hrms/internal/auth/errors"
	"go-hrms/internal/shared/dberr"
	"go-hrms/internal/user"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// TokenTTL covers one working day; there is no refresh token.
const TokenTTL = 8 * time.Hour

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, email, password string) (LoginResponse, error)
	GetMe(ctx context.Context, userID string) (AuthResponse, error)
}

type service struct {
	users  user.Repository
	secret []byte
	now    func() time.Time
	logger *zap.Logger
}

func NewService(users user.Repository, secret []byte, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{users: users, secret: secret, now: time.Now, logger: l}
}

func (s *service) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if !dberr.IsNotFound(err) {
			s.logger.Error("failed to load user for login", zap.Error(err))
			return LoginResponse{}, err
		}
		s.logger.Warn("login rejected: unknown email")
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		s.logger.Warn("login rejected: wrong password", zap.String("user_id", u.ID.String()))
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	if !u.IsActive {
		return LoginResponse{}, autherrors.ErrUserInactive
	}

	expiresAt := s.now().Add(TokenTTL)
	token, err := s.generateToken(u.ID.String(), u.Role, expiresAt)
	if err != nil {
		s.logger.Error("failed to sign access token", zap.Error(err))
		return LoginResponse{}, err
	}

	s.logger.Info("user logged in", zap.String("user_id", u.ID.String()), zap.String("role", u.Role))
	return LoginResponse{
		User:        toAuthResponse(u),
		AccessToken: token,
		ExpiresAt:   expiresAt.UTC().Format(time.RFC3339),
	}, nil
}

func (s *service) GetMe(ctx context.Context, userID string) (AuthResponse, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if dberr.IsNotFound(err) {
			return AuthResponse{}, autherrors.ErrUserNotFound
		}
		return AuthResponse{}, err
	}
	if !u.IsActive {
		return AuthResponse{}, autherrors.ErrUserInactive
	}
	return toAuthResponse(u), nil
}

func (s *service) generateToken(userID, role string, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"iat":     s.now().Unix(),
		"exp":     expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func toAuthResponse(u *user.User) AuthResponse {
	return AuthResponse{
		ID:    u.ID.String(),
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}
