package ports

import (
	"context"

	"github.com/myflix/movie-api/internal/core/domain"
)

// UserRepository defines persistence for the users collection. Lookups that
// miss return domain.ErrUserNotFound.
type UserRepository interface {
	FindAll(ctx context.Context) ([]domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// FindByID looks a user up by its hex object id. Malformed ids miss.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// Update replaces the account fields of the user currently named username
	// and returns the updated document. A nil Birthday leaves it untouched.
	Update(ctx context.Context, username string, user *domain.User) (*domain.User, error)
	// PushFavourite appends movieID; duplicates are kept.
	PushFavourite(ctx context.Context, username, movieID string) (*domain.User, error)
	// PullFavourite removes every occurrence of movieID.
	PullFavourite(ctx context.Context, username, movieID string) (*domain.User, error)
	Delete(ctx context.Context, username string) error
}

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns nil when password matches hash.
	Compare(hash, password string) error
}
