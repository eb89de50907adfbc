package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/myflix/movie-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubMovieRepo struct {
	movies  []domain.Movie
	findErr error
	calls   int
}

func (r *stubMovieRepo) FindAll(_ context.Context) ([]domain.Movie, error) {
	r.calls++
	if r.findErr != nil {
		return nil, r.findErr
	}
	return append([]domain.Movie(nil), r.movies...), nil
}

func (r *stubMovieRepo) find(match func(m domain.Movie) bool) (*domain.Movie, error) {
	r.calls++
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, m := range r.movies {
		if match(m) {
			clone := m
			return &clone, nil
		}
	}
	return nil, domain.ErrMovieNotFound
}

func (r *stubMovieRepo) FindByTitle(_ context.Context, title string) (*domain.Movie, error) {
	return r.find(func(m domain.Movie) bool { return m.Title == title })
}

func (r *stubMovieRepo) FindByGenreName(_ context.Context, name string) (*domain.Movie, error) {
	m, err := r.find(func(m domain.Movie) bool { return m.Genre.Name == name })
	if errors.Is(err, domain.ErrMovieNotFound) {
		return nil, domain.ErrGenreNotFound
	}
	return m, err
}

func (r *stubMovieRepo) FindByDirectorName(_ context.Context, name string) (*domain.Movie, error) {
	m, err := r.find(func(m domain.Movie) bool { return m.Director.Name == name })
	if errors.Is(err, domain.ErrMovieNotFound) {
		return nil, domain.ErrDirectorNotFound
	}
	return m, err
}

func (r *stubMovieRepo) InsertMany(_ context.Context, movies []domain.Movie) (int, error) {
	r.movies = append(r.movies, movies...)
	return len(movies), nil
}

func (r *stubMovieRepo) DeleteAll(_ context.Context) (int64, error) {
	n := int64(len(r.movies))
	r.movies = nil
	return n, nil
}

// mapCache stores JSON like the Redis cache does, so round-trips are realistic.
type mapCache struct {
	entries map[string][]byte
	getErr  error
	setErr  error
}

func newMapCache() *mapCache {
	return &mapCache{entries: make(map[string][]byte)}
}

func (c *mapCache) Get(_ context.Context, key string, dst any) (bool, error) {
	if c.getErr != nil {
		return false, c.getErr
	}
	raw, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dst)
}

func (c *mapCache) Set(_ context.Context, key string, value any) error {
	if c.setErr != nil {
		return c.setErr
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = raw
	return nil
}

func (c *mapCache) Flush(_ context.Context) error {
	c.entries = make(map[string][]byte)
	return nil
}

func catalogue() *stubMovieRepo {
	return &stubMovieRepo{movies: []domain.Movie{
		{
			ID:          "64b000000000000000000001",
			Title:       "Alien",
			Description: "In space no one can hear you scream.",
			Genre:       domain.Genre{Name: "Horror", Description: "Scary."},
			Director:    domain.Director{Name: "Ridley Scott", Bio: "English director."},
			Actors:      []string{"Sigourney Weaver"},
		},
		{
			ID:          "64b000000000000000000002",
			Title:       "Heat",
			Description: "A group of professional bank robbers.",
			Genre:       domain.Genre{Name: "Crime"},
			Director:    domain.Director{Name: "Michael Mann"},
		},
	}}
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestMovieService_ListMovies(t *testing.T) {
	svc := NewMovieService(catalogue(), nil, zerolog.Nop())

	movies, err := svc.ListMovies(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(movies) != 2 {
		t.Fatalf("expected 2 movies, got %d", len(movies))
	}
}

func TestMovieService_ListMovies_EmptyIsNotNil(t *testing.T) {
	svc := NewMovieService(&stubMovieRepo{}, nil, zerolog.Nop())

	movies, err := svc.ListMovies(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if movies == nil {
		t.Fatalf("expected empty slice, got nil")
	}
}

func TestMovieService_GetMovie(t *testing.T) {
	svc := NewMovieService(catalogue(), nil, zerolog.Nop())

	movie, err := svc.GetMovie(context.Background(), "Alien")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if movie.Title != "Alien" {
		t.Fatalf("expected Alien, got %s", movie.Title)
	}
}

func TestMovieService_GetMovie_NotFound(t *testing.T) {
	svc := NewMovieService(catalogue(), nil, zerolog.Nop())

	_, err := svc.GetMovie(context.Background(), "Jaws")
	if !errors.Is(err, domain.ErrMovieNotFound) {
		t.Fatalf("expected ErrMovieNotFound, got %v", err)
	}
	if err.Error() != "Jaws was not found" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestMovieService_GetMovie_RepoError(t *testing.T) {
	repo := catalogue()
	repo.findErr = errors.New("server selection timeout")
	svc := NewMovieService(repo, nil, zerolog.Nop())

	_, err := svc.GetMovie(context.Background(), "Alien")
	if !errors.Is(err, repo.findErr) {
		t.Fatalf("expected wrapped repo error, got %v", err)
	}
	if errors.Is(err, domain.ErrMovieNotFound) {
		t.Fatalf("repo failure must not look like not-found")
	}
}

func TestMovieService_GetGenreAndDirector(t *testing.T) {
	svc := NewMovieService(catalogue(), nil, zerolog.Nop())

	genre, err := svc.GetGenre(context.Background(), "Horror")
	if err != nil || genre.Description != "Scary." {
		t.Fatalf("unexpected genre result: %+v, %v", genre, err)
	}

	director, err := svc.GetDirector(context.Background(), "Ridley Scott")
	if err != nil || director.Bio != "English director." {
		t.Fatalf("unexpected director result: %+v, %v", director, err)
	}

	if _, err := svc.GetGenre(context.Background(), "Western"); !errors.Is(err, domain.ErrGenreNotFound) {
		t.Fatalf("expected ErrGenreNotFound, got %v", err)
	}
	if _, err := svc.GetDirector(context.Background(), "Nobody"); !errors.Is(err, domain.ErrDirectorNotFound) {
		t.Fatalf("expected ErrDirectorNotFound, got %v", err)
	}
}

func TestMovieService_SecondReadServedFromCache(t *testing.T) {
	repo := catalogue()
	cache := newMapCache()
	svc := NewMovieService(repo, cache, zerolog.Nop())

	first, err := svc.GetMovie(context.Background(), "Alien")
	if err != nil {
		t.Fatalf("first read: %v", err)
	}
	second, err := svc.GetMovie(context.Background(), "Alien")
	if err != nil {
		t.Fatalf("second read: %v", err)
	}
	if repo.calls != 1 {
		t.Fatalf("expected a single repository call, got %d", repo.calls)
	}
	if second.Title != first.Title || second.ID != first.ID {
		t.Fatalf("cached movie differs: %+v vs %+v", second, first)
	}

	if _, err := svc.ListMovies(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	if _, err := svc.ListMovies(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	if repo.calls != 2 {
		t.Fatalf("expected list to hit the repository once, got %d total calls", repo.calls)
	}
}

func TestMovieService_NotFoundIsNotCached(t *testing.T) {
	repo := catalogue()
	cache := newMapCache()
	svc := NewMovieService(repo, cache, zerolog.Nop())

	_, _ = svc.GetMovie(context.Background(), "Jaws")
	if len(cache.entries) != 0 {
		t.Fatalf("expected no cache entries, got %v", cache.entries)
	}
}

func TestMovieService_CacheFailuresFallThrough(t *testing.T) {
	repo := catalogue()
	cache := newMapCache()
	cache.getErr = errors.New("redis down")
	cache.setErr = errors.New("redis down")
	svc := NewMovieService(repo, cache, zerolog.Nop())

	movie, err := svc.GetMovie(context.Background(), "Heat")
	if err != nil {
		t.Fatalf("cache failure must not fail the request: %v", err)
	}
	if movie.Title != "Heat" {
		t.Fatalf("unexpected movie: %+v", movie)
	}
}
