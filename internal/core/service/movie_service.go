package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/myflix/movie-api/internal/api/metrics"
	"github.com/myflix/movie-api/internal/core/domain"
	"github.com/myflix/movie-api/internal/core/ports"
)

// Cache key prefixes. Every key starts with "movies:" so Flush can drop them together.
const (
	cacheKeyAll      = "movies:all"
	cacheKeyTitle    = "movies:title:"
	cacheKeyGenre    = "movies:genre:"
	cacheKeyDirector = "movies:director:"
)

// MovieService implements the read-only catalogue use cases.
type MovieService struct {
	repo   ports.MovieRepository
	cache  ports.MovieCache
	logger zerolog.Logger
}

// NewMovieService returns a MovieService. A nil cache disables caching.
func NewMovieService(repo ports.MovieRepository, cache ports.MovieCache, logger zerolog.Logger) *MovieService {
	if cache == nil {
		cache = NopCache{}
	}
	return &MovieService{repo: repo, cache: cache, logger: logger}
}

// ListMovies returns the whole catalogue, never nil.
func (s *MovieService) ListMovies(ctx context.Context) ([]domain.Movie, error) {
	var movies []domain.Movie
	if s.fromCache(ctx, cacheKeyAll, &movies) {
		return movies, nil
	}

	movies, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	if movies == nil {
		movies = []domain.Movie{}
	}
	s.toCache(ctx, cacheKeyAll, movies)
	return movies, nil
}

// GetMovie returns the movie with the given title.
func (s *MovieService) GetMovie(ctx context.Context, title string) (*domain.Movie, error) {
	key := cacheKeyTitle + title
	var cached domain.Movie
	if s.fromCache(ctx, key, &cached) {
		return &cached, nil
	}

	movie, err := s.repo.FindByTitle(ctx, title)
	if err != nil {
		return nil, wrapLookup("get movie", title, err)
	}
	s.toCache(ctx, key, movie)
	return movie, nil
}

// GetGenre returns the genre embedded in any movie of that genre.
func (s *MovieService) GetGenre(ctx context.Context, name string) (*domain.Genre, error) {
	key := cacheKeyGenre + name
	var cached domain.Genre
	if s.fromCache(ctx, key, &cached) {
		return &cached, nil
	}

	movie, err := s.repo.FindByGenreName(ctx, name)
	if err != nil {
		return nil, wrapLookup("get genre", name, err)
	}
	s.toCache(ctx, key, movie.Genre)
	return &movie.Genre, nil
}

// GetDirector returns the director embedded in any movie they directed.
func (s *MovieService) GetDirector(ctx context.Context, name string) (*domain.Director, error) {
	key := cacheKeyDirector + name
	var cached domain.Director
	if s.fromCache(ctx, key, &cached) {
		return &cached, nil
	}

	movie, err := s.repo.FindByDirectorName(ctx, name)
	if err != nil {
		return nil, wrapLookup("get director", name, err)
	}
	s.toCache(ctx, key, movie.Director)
	return &movie.Director, nil
}

// fromCache never fails the request: cache errors count as a miss.
func (s *MovieService) fromCache(ctx context.Context, key string, dst any) bool {
	ok, err := s.cache.Get(ctx, key, dst)
	switch {
	case err != nil:
		metrics.MovieCacheRequestsTotal.WithLabelValues("error").Inc()
		s.logger.Warn().Err(err).Str("key", key).Msg("movie cache read failed")
		return false
	case ok:
		metrics.MovieCacheRequestsTotal.WithLabelValues("hit").Inc()
		return true
	default:
		metrics.MovieCacheRequestsTotal.WithLabelValues("miss").Inc()
		return false
	}
}

func (s *MovieService) toCache(ctx context.Context, key string, value any) {
	if err := s.cache.Set(ctx, key, value); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("movie cache write failed")
	}
}

// wrapLookup prefixes not-found errors with the looked-up name so the message
// reads "<name> was not found". A malformed movie id passes through as is;
// other errors get the operation as context.
func wrapLookup(op, name string, err error) error {
	if errors.Is(err, domain.ErrInvalidMovieID) {
		return domain.ErrInvalidMovieID
	}
	if isNotFound(err) {
		return fmt.Errorf("%s %w", name, err)
	}
	return fmt.Errorf("%s %q: %w", op, name, err)
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrMovieNotFound) ||
		errors.Is(err, domain.ErrGenreNotFound) ||
		errors.Is(err, domain.ErrDirectorNotFound) ||
		errors.Is(err, domain.ErrUserNotFound)
}

// NopCache is the MovieCache used when Redis is not configured.
type NopCache struct{}

func (NopCache) Get(context.Context, string, any) (bool, error) { return false, nil }
func (NopCache) Set(context.Context, string, any) error         { return nil }
func (NopCache) Flush(context.Context) error                    { return nil }
