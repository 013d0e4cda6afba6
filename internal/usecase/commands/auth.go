package commands

import (
	"context"
	"log/slog"
	"time"

	"grandehotel-core/internal/domain/user"
	"grandehotel-core/internal/pkg/clock"
	"grandehotel-core/internal/pkg/errs"
	"grandehotel-core/internal/pkg/jwt"
	"grandehotel-core/internal/pkg/password"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound       = errs.New("user not found")
	ErrInvalidCredentials = errs.New("invalid email or password")
	ErrUserInactive       = errs.New("user account is inactive")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type LoginResult struct {
	UserID      uuid.UUID
	DisplayName string
	Role        user.Role
	AccessToken string
	ExpiresIn   time.Duration
}

type AuthCommands interface {
	Login(ctx context.Context, email, pass string) (*LoginResult, error)
}

type authCommandsImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(userRepo UserRepository, jwtService *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		clock:      clk,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, pass string) (*LoginResult, error) {
	credentials, err := user.NewCredentials(email, pass)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	account, err := a.userRepo.FindByEmail(ctx, credentials.Email())
	if err != nil {
		return nil, errs.Mark(err, ErrUserNotFound)
	}
	if !account.IsActive() {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(account.PasswordHash(), credentials.Password().Value()); err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	token, err := a.jwtService.GenerateToken(account.ID(), account.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	if err := a.userRepo.UpdateLastLogin(ctx, account.ID(), a.clock.Now()); err != nil {
		// Not worth failing the login over.
		slog.Warn("failed to update last login", "user_id", account.ID(), "error", err.Error())
	}

	return &LoginResult{
		UserID:      account.ID(),
		DisplayName: account.DisplayName(),
		Role:        account.Role(),
		AccessToken: token,
		ExpiresIn:   a.jwtService.TokenDuration(),
	}, nil
}
