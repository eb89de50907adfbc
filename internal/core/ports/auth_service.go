package ports

import (
	"context"

	"github.com/myflix/movie-api/internal/core/domain"
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// VerifyIdentity resolves the token subject to its current account.
	VerifyIdentity(ctx context.Context, userID string) (*domain.User, error)
}
