package interfaces

import (
	"time"

	"oficina_pro/internal/domain/entities"
)

// ITokenIssuer signs access tokens for authenticated users.
type ITokenIssuer interface {
	Issue(user entities.User) (token string, expiresAt time.Time, err error)
}
