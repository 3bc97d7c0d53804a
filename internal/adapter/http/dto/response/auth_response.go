package response

import (
	"time"

	"oficina_pro/internal/usecase"
)

type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type AuthResponse struct {
	Token     string       `json:"token"`
	TokenType string       `json:"token_type"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

func FromAuthSession(s usecase.AuthSession) AuthResponse {
	return AuthResponse{
		Token:     s.Token,
		TokenType: "Bearer",
		ExpiresAt: s.ExpiresAt,
		User: UserResponse{
			ID:        s.User.ID,
			Email:     s.User.Email,
			CreatedAt: s.User.CreatedAt,
		},
	}
}
