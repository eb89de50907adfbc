package ports

import (
	"context"
	"time"

	"github.com/myflix/movie-api/internal/core/domain"
)

// UserInput carries the account fields submitted on register and update.
// Password is plain text; the service hashes it.
type UserInput struct {
	Username string
	Password string
	Email    string
	Birthday *time.Time
}

// UserService defines the account and favourites use cases.
type UserService interface {
	Register(ctx context.Context, input UserInput) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, username string) (*domain.User, error)
	UpdateUser(ctx context.Context, username string, input UserInput) (*domain.User, error)
	AddFavourite(ctx context.Context, username, movieID string) (*domain.User, error)
	RemoveFavourite(ctx context.Context, username, movieID string) (*domain.User, error)
	DeleteUser(ctx context.Context, username string) error
}
