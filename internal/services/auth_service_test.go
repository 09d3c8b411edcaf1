package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/dto"
	"storefront/internal/repositories"
	"storefront/internal/results"
	"storefront/internal/services"
)

func newAuthService() (*services.AuthService, *repositories.MockUserRepository) {
	users := repositories.NewMockUserRepository()
	return services.NewAuthService(users, "test-secret"), users
}

func TestAuthServiceRegister(t *testing.T) {
	service, users := newAuthService()
	ctx := context.Background()

	result, err := service.Register(ctx, dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, results.Created, result.Kind)
	assert.Equal(t, services.MsgUserRegistered, result.Data)

	// The stored password is a bcrypt hash, never the plaintext.
	stored, err := users.GetByUsername("alice")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret123", stored.Password)
}

func TestAuthServiceRegisterDuplicates(t *testing.T) {
	service, _ := newAuthService()
	ctx := context.Background()

	_, err := service.Register(ctx, dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	result, err := service.Register(ctx, dto.RegisterRequest{
		Username: "alice",
		Email:    "other@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, results.Duplicated, result.Kind)
	assert.Equal(t, services.MsgUsernameTaken, result.Message)

	result, err = service.Register(ctx, dto.RegisterRequest{
		Username: "bob",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, results.Duplicated, result.Kind)
	assert.Equal(t, services.MsgEmailTaken, result.Message)
}

func TestAuthServiceLoginAndValidate(t *testing.T) {
	service, users := newAuthService()
	ctx := context.Background()

	_, err := service.Register(ctx, dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	result, err := service.Login(ctx, dto.LoginRequest{Username: "alice", Password: "secret123"})
	require.NoError(t, err)
	require.Equal(t, results.Success, result.Kind)
	require.NotEmpty(t, result.Data.Token)

	stored, err := users.GetByUsername("alice")
	require.NoError(t, err)

	userID, err := service.ValidateToken(result.Data.Token)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, userID)
}

func TestAuthServiceLoginInvalidCredentials(t *testing.T) {
	service, _ := newAuthService()
	ctx := context.Background()

	_, err := service.Register(ctx, dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	// Unknown username and wrong password yield the same answer.
	for _, req := range []dto.LoginRequest{
		{Username: "mallory", Password: "secret123"},
		{Username: "alice", Password: "wrong"},
	} {
		result, err := service.Login(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, results.Failure, result.Kind)
		assert.Equal(t, services.MsgInvalidCredentials, result.Message)
	}
}

func TestAuthServiceValidateTokenRejectsBadTokens(t *testing.T) {
	service, _ := newAuthService()
	other := services.NewAuthService(repositories.NewMockUserRepository(), "other-secret")
	ctx := context.Background()

	_, err := other.Register(ctx, dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	foreign, err := other.Login(ctx, dto.LoginRequest{Username: "alice", Password: "secret123"})
	require.NoError(t, err)

	_, err = service.ValidateToken("not-a-token")
	assert.Error(t, err)

	// Signed with a different secret.
	_, err = service.ValidateToken(foreign.Data.Token)
	assert.Error(t, err)
}
