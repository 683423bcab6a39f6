package user_test

import (
	"context"
	"errors"
	"testing"

	"go-hrms/internal/user"
	usererrors "go-hrms/internal/user/errors"
	mock_user "go-hrms/internal/user/mock"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setup(t *testing.T) (*mock_user.MockRepository, user.Service) {
	ctrl := gomock.NewController(t)
	mockRepo := mock_user.NewMockRepository(ctrl)
	return mockRepo, user.NewService(mockRepo)
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestUserService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success hashes password and normalizes", func(t *testing.T) {
		repo, svc := setup(t)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *user.User) error {
			assert.Equal(t, "hr@example.com", u.Email)
			assert.Equal(t, "hr", u.Role)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret-pass")))
			return nil
		})

		resp, err := svc.Create(ctx, user.CreateUserRequest{
			Name: "سارة", Email: " HR@example.com ", Password: "secret-pass", Role: "HR",
		})

		require.NoError(t, err)
		assert.Equal(t, "hr", resp.Role)
		assert.True(t, resp.IsActive)
	})

	t.Run("invalid role", func(t *testing.T) {
		_, svc := setup(t)

		_, err := svc.Create(ctx, user.CreateUserRequest{Name: "x", Email: "x@example.com", Password: "12345678", Role: "owner"})
		assert.ErrorIs(t, err, usererrors.ErrInvalidRole)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo, svc := setup(t)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_users_email"})

		_, err := svc.Create(ctx, user.CreateUserRequest{Name: "x", Email: "x@example.com", Password: "12345678", Role: "viewer"})
		assert.ErrorIs(t, err, usererrors.ErrUserAlreadyExists)
	})
}

func TestUserService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid id", func(t *testing.T) {
		_, svc := setup(t)
		_, err := svc.GetByID(ctx, "nope")
		assert.ErrorIs(t, err, usererrors.ErrInvalidUserID)
	})

	t.Run("not found", func(t *testing.T) {
		repo, svc := setup(t)
		id := uuid.New().String()
		repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.GetByID(ctx, id)
		assert.ErrorIs(t, err, usererrors.ErrUserNotFound)
	})
}

func TestUserService_GetAll(t *testing.T) {
	repo, svc := setup(t)
	repo.EXPECT().FindAll(gomock.Any()).Return([]user.User{
		{ID: uuid.New(), Email: "a@example.com", Role: "viewer"},
		{ID: uuid.New(), Email: "b@example.com", Role: "admin"},
	}, nil)

	resp, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "admin", resp[1].Role)
}

func TestUserService_ToggleStatus(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("cannot deactivate self", func(t *testing.T) {
		_, svc := setup(t)
		err := svc.ToggleStatus(ctx, id.String(), id.String(), false)
		assert.ErrorIs(t, err, usererrors.ErrSelfDeactivation)
	})

	t.Run("deactivates another user", func(t *testing.T) {
		repo, svc := setup(t)
		repo.EXPECT().FindByID(gomock.Any(), id.String()).Return(&user.User{ID: id, IsActive: true}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *user.User) error {
			assert.False(t, u.IsActive)
			return nil
		})

		assert.NoError(t, svc.ToggleStatus(ctx, uuid.New().String(), id.String(), false))
	})
}

func TestUserService_ChangePassword(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("wrong current password", func(t *testing.T) {
		repo, svc := setup(t)
		repo.EXPECT().FindByID(gomock.Any(), id.String()).Return(&user.User{ID: id, Password: hashed(t, "old-password")}, nil)

		err := svc.ChangePassword(ctx, id.String(), "guess", "new-password")
		assert.ErrorIs(t, err, usererrors.ErrWrongPassword)
	})

	t.Run("success", func(t *testing.T) {
		repo, svc := setup(t)
		repo.EXPECT().FindByID(gomock.Any(), id.String()).Return(&user.User{ID: id, Password: hashed(t, "old-password")}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *user.User) error {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("new-password")))
			return nil
		})

		assert.NoError(t, svc.ChangePassword(ctx, id.String(), "old-password", "new-password"))
	})
}

func TestUserService_EnsureAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("creates admin on empty table", func(t *testing.T) {
		repo, svc := setup(t)
		repo.EXPECT().Count(gomock.Any()).Return(int64(0), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *user.User) error {
			assert.Equal(t, "admin", u.Role)
			return nil
		})

		created, err := svc.EnsureAdmin(ctx, "admin@example.com", "admin-password")
		require.NoError(t, err)
		assert.True(t, created)
	})

	t.Run("skips when users exist", func(t *testing.T) {
		repo, svc := setup(t)
		repo.EXPECT().Count(gomock.Any()).Return(int64(3), nil)

		created, err := svc.EnsureAdmin(ctx, "admin@example.com", "admin-password")
		require.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("skips without credentials", func(t *testing.T) {
		_, svc := setup(t)
		created, err := svc.EnsureAdmin(ctx, "", "")
		assert.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("count error", func(t *testing.T) {
		repo, svc := setup(t)
		repo.EXPECT().Count(gomock.Any()).Return(int64(0), errors.New("db down"))

		_, err := svc.EnsureAdmin(ctx, "admin@example.com", "admin-password")
		assert.Error(t, err)
	})
}
