package ports

import (
	"context"

	"github.com/myflix/movie-api/internal/core/domain"
)

// MovieService defines the read-only catalogue use cases.
type MovieService interface {
	ListMovies(ctx context.Context) ([]domain.Movie, error)
	GetMovie(ctx context.Context, title string) (*domain.Movie, error)
	GetGenre(ctx context.Context, name string) (*domain.Genre, error)
	GetDirector(ctx context.Context, name string) (*domain.Director, error)
}
