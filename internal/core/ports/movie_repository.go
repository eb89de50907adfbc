package ports

import (
	"context"

	"github.com/myflix/movie-api/internal/core/domain"
)

// MovieRepository defines read access to the movies collection plus the
// bulk operations used by the seeder.
type MovieRepository interface {
	FindAll(ctx context.Context) ([]domain.Movie, error)
	FindByTitle(ctx context.Context, title string) (*domain.Movie, error)
	// FindByGenreName returns any movie whose Genre.Name matches exactly.
	FindByGenreName(ctx context.Context, name string) (*domain.Movie, error)
	// FindByDirectorName returns any movie whose Director.Name matches exactly.
	FindByDirectorName(ctx context.Context, name string) (*domain.Movie, error)
	InsertMany(ctx context.Context, movies []domain.Movie) (int, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// MovieCache is a best-effort read cache in front of MovieRepository.
type MovieCache interface {
	// Get decodes the cached value for key into dst and reports whether it was found.
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	// Flush drops every cached movie entry.
	Flush(ctx context.Context) error
}
