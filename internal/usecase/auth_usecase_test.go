package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	memrepo "barterhub/internal/adapter/repository"
	"barterhub/internal/domain/entity"
	"barterhub/internal/infrastructure/auth"
	"barterhub/pkg/errors"
)

func newAuthEnv(t *testing.T) (*AuthUseCase, *auth.JWTManager) {
	t.Helper()
	store := memrepo.NewStore()
	jwtManager := auth.NewJWTManager("test-secret", 3600)
	return NewAuthUseCase(memrepo.NewMemoryUserRepository(store), jwtManager), jwtManager
}

func TestRegisterAndLogin(t *testing.T) {
	uc, jwtManager := newAuthEnv(t)
	ctx := context.Background()

	result, err := uc.Register(ctx, RegisterInput{
		Username: "alice", Email: "alice@example.com", Password: "hunter22",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, result.User.Role)
	assert.True(t, result.User.Active)
	assert.NotEqual(t, "hunter22", result.User.PasswordHash)

	userID, role, err := jwtManager.Verify(result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, userID)
	assert.Equal(t, entity.RoleUser, role)

	// Login works with the username and with the email.
	byName, err := uc.Login(ctx, LoginInput{Identifier: "alice", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, byName.User.ID)

	byEmail, err := uc.Login(ctx, LoginInput{Identifier: "alice@example.com", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, byEmail.User.ID)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	uc, _ := newAuthEnv(t)
	ctx := context.Background()

	_, err := uc.Register(ctx, RegisterInput{
		Username: "alice", Email: "alice@example.com", Password: "hunter22",
	})
	require.NoError(t, err)

	_, err = uc.Login(ctx, LoginInput{Identifier: "alice", Password: "wrong"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))

	_, err = uc.Login(ctx, LoginInput{Identifier: "nobody", Password: "hunter22"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}

func TestLoginRejectsDeactivatedAccount(t *testing.T) {
	uc, _ := newAuthEnv(t)
	ctx := context.Background()

	result, err := uc.Register(ctx, RegisterInput{
		Username: "alice", Email: "alice@example.com", Password: "hunter22",
	})
	require.NoError(t, err)

	result.User.Active = false
	require.NoError(t, uc.userRepo.Update(ctx, result.User))

	_, err = uc.Login(ctx, LoginInput{Identifier: "alice", Password: "hunter22"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	uc, _ := newAuthEnv(t)
	ctx := context.Background()

	_, err := uc.Register(ctx, RegisterInput{
		Username: "alice", Email: "alice@example.com", Password: "hunter22",
	})
	require.NoError(t, err)

	_, err = uc.Register(ctx, RegisterInput{
		Username: "alice", Email: "other@example.com", Password: "hunter22",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "VALIDATION_ERROR"))
}
