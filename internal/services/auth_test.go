package services

import (
	"testing"
	"time"

	"kurumaya-backend/internal/models"
	"kurumaya-backend/internal/repository"
	"kurumaya-backend/internal/store"
	"kurumaya-backend/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) (*AuthService, *jwt.Util) {
	t.Helper()

	st := store.New()
	jwtUtil := jwt.NewUtil("test-secret", time.Hour)
	return NewAuthService(repository.NewUserRepository(st), jwtUtil), jwtUtil
}

func TestRegisterAndLogin(t *testing.T) {
	service, jwtUtil := newAuthService(t)

	registered, err := service.Register(&RegisterRequest{
		Name:     "Ana Souza",
		Email:    "ana@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, registered.Token)
	assert.Equal(t, models.RoleClient, registered.User.Role)

	claims, err := jwtUtil.ValidateToken(registered.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)

	logged, err := service.Login(&LoginRequest{Email: "ana@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, logged.User.ID)
	assert.NotEmpty(t, logged.Token)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	service, _ := newAuthService(t)

	_, err := service.Register(&RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = service.Register(&RegisterRequest{Name: "Other", Email: "ana@example.com", Password: "secret456"})
	assert.ErrorIs(t, err, models.ErrEmailTaken)
}

func TestLoginWrongPassword(t *testing.T) {
	service, _ := newAuthService(t)

	_, err := service.Register(&RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = service.Login(&LoginRequest{Email: "ana@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = service.Login(&LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetProfile(t *testing.T) {
	service, _ := newAuthService(t)

	registered, err := service.Register(&RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "secret123"})
	require.NoError(t, err)

	profile, err := service.GetProfile(registered.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", profile.Name)
	assert.Equal(t, "ana@example.com", profile.Email)

	_, err = service.GetProfile("missing")
	assert.ErrorIs(t, err, models.ErrUserNotFound)
}
