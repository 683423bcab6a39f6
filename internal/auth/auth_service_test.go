package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	autherrors "go-hrms/internal/auth/errors"
	"go-hrms/internal/user"
	mock_user "go-hrms/internal/user/mock"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var testSecret = []byte("test-secret")

func newTestService(t *testing.T) (*mock_user.MockRepository, *service) {
	ctrl := gomock.NewController(t)
	repo := mock_user.NewMockRepository(ctrl)
	svc := NewService(repo, testSecret).(*service)
	svc.now = func() time.Time { return time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC) }
	return repo, svc
}

func activeUser(t *testing.T, password string) *user.User {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &user.User{ID: uuid.New(), Name: "محاسب", Email: "acc@example.com", Password: string(h), Role: "accountant", IsActive: true}
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success issues an eight hour token", func(t *testing.T) {
		repo, svc := newTestService(t)
		u := activeUser(t, "correct-horse")
		repo.EXPECT().FindByEmail(gomock.Any(), "acc@example.com").Return(u, nil)

		resp, err := svc.Login(ctx, "acc@example.com", "correct-horse")
		require.NoError(t, err)
		assert.Equal(t, "accountant", resp.User.Role)
		assert.Equal(t, "2026-10-18T16:00:00Z", resp.ExpiresAt)

		parsed, err := jwt.Parse(resp.AccessToken, func(*jwt.Token) (interface{}, error) { return testSecret, nil },
			jwt.WithTimeFunc(svc.now))
		require.NoError(t, err)
		claims := parsed.Claims.(jwt.MapClaims)
		assert.Equal(t, u.ID.String(), claims["user_id"])
		assert.Equal(t, "accountant", claims["role"])
	})

	t.Run("unknown email", func(t *testing.T) {
		repo, svc := newTestService(t)
		repo.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Login(ctx, "ghost@example.com", "x")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo, svc := newTestService(t)
		repo.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(activeUser(t, "correct-horse"), nil)

		_, err := svc.Login(ctx, "acc@example.com", "battery-staple")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("inactive user", func(t *testing.T) {
		repo, svc := newTestService(t)
		u := activeUser(t, "correct-horse")
		u.IsActive = false
		repo.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(u, nil)

		_, err := svc.Login(ctx, "acc@example.com", "correct-horse")
		assert.ErrorIs(t, err, autherrors.ErrUserInactive)
	})

	t.Run("repository failure is not masked", func(t *testing.T) {
		repo, svc := newTestService(t)
		repo.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		_, err := svc.Login(ctx, "acc@example.com", "x")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})
}

func TestService_GetMe(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo, svc := newTestService(t)
		u := activeUser(t, "pw")
		repo.EXPECT().FindByID(gomock.Any(), u.ID.String()).Return(u, nil)

		resp, err := svc.GetMe(ctx, u.ID.String())
		require.NoError(t, err)
		assert.Equal(t, u.Email, resp.Email)
	})

	t.Run("not found", func(t *testing.T) {
		repo, svc := newTestService(t)
		repo.EXPECT().FindByID(gomock.Any(), "missing").Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.GetMe(ctx, "missing")
		assert.ErrorIs(t, err, autherrors.ErrUserNotFound)
	})
}
