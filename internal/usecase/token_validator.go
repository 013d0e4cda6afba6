package usecase

import (
	"grandehotel-core/internal/domain/user"
	"grandehotel-core/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator is the narrow token interface the auth middleware needs; it
// keeps the handler layer off the jwt package directly.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type tokenValidator struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidator{jwtService: jwtService}
}

func (v *tokenValidator) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := v.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}
	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", err
	}
	return claims.UserID, role, nil
}
