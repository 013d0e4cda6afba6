//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"grandehotel-core/internal/domain/user"
	"grandehotel-core/internal/pkg/clock"
	"grandehotel-core/internal/pkg/config"
	"grandehotel-core/internal/pkg/jwt"
	"grandehotel-core/internal/pkg/password"
	"grandehotel-core/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserRepo struct {
	account     *user.User
	findErr     error
	lastLoginAt time.Time
}

func (r *stubUserRepo) FindByEmail(_ context.Context, _ user.Email) (*user.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.account, nil
}

func (r *stubUserRepo) UpdateLastLogin(_ context.Context, _ uuid.UUID, at time.Time) error {
	r.lastLoginAt = at
	return nil
}

func newStubUserRepo(t *testing.T, active bool) *stubUserRepo {
	t.Helper()
	hash, err := password.HashPassword("correct-horse")
	require.NoError(t, err)
	email, err := user.NewEmail("alice@example.com")
	require.NoError(t, err)
	created := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	return &stubUserRepo{
		account: user.ReconstructUser(uuid.New(), email, hash, "Alice Example", user.RoleStaff, nil, active, created, created),
	}
}

func TestLogin(t *testing.T) {
	cfg := config.NewTestConfig()
	jwtService := jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration)
	clk := clock.NewMockClock(time.Date(2025, 11, 1, 9, 0, 0, 0, time.UTC))

	t.Run("issues a token for valid credentials", func(t *testing.T) {
		repo := newStubUserRepo(t, true)
		auth := commands.NewAuthCommands(repo, jwtService, clk)

		result, err := auth.Login(context.Background(), "alice@example.com", "correct-horse")
		require.NoError(t, err)

		assert.Equal(t, repo.account.ID(), result.UserID)
		assert.Equal(t, "Alice Example", result.DisplayName)
		assert.Equal(t, user.RoleStaff, result.Role)
		assert.Equal(t, time.Hour, result.ExpiresIn)
		assert.Equal(t, clk.Now(), repo.lastLoginAt)

		claims, err := jwtService.ValidateToken(result.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, repo.account.ID(), claims.UserID)
		assert.Equal(t, "staff", claims.Role)
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		repo := newStubUserRepo(t, true)
		auth := commands.NewAuthCommands(repo, jwtService, clk)

		_, err := auth.Login(context.Background(), "alice@example.com", "wrong-password")
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("rejects malformed credentials before hitting the store", func(t *testing.T) {
		repo := newStubUserRepo(t, true)
		auth := commands.NewAuthCommands(repo, jwtService, clk)

		_, err := auth.Login(context.Background(), "not-an-email", "correct-horse")
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)

		_, err = auth.Login(context.Background(), "alice@example.com", "short")
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("rejects an inactive account", func(t *testing.T) {
		repo := newStubUserRepo(t, false)
		auth := commands.NewAuthCommands(repo, jwtService, clk)

		_, err := auth.Login(context.Background(), "alice@example.com", "correct-horse")
		assert.ErrorIs(t, err, commands.ErrUserInactive)
	})
}
