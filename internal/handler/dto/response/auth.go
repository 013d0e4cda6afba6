package response

import (
	"grandehotel-core/internal/usecase/commands"

	"github.com/google/uuid"
)

type LoginResponse struct {
	UserID      uuid.UUID `json:"user_id"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	AccessToken string    `json:"access_token"`
	ExpiresIn   int64     `json:"expires_in"`
}

func FromLoginResult(result *commands.LoginResult) LoginResponse {
	return LoginResponse{
		UserID:      result.UserID,
		DisplayName: result.DisplayName,
		Role:        result.Role.String(),
		AccessToken: result.AccessToken,
		ExpiresIn:   int64(result.ExpiresIn.Seconds()),
	}
}
