package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/myflix/movie-api/internal/core/domain"
	"github.com/myflix/movie-api/internal/core/ports"
)

// seedMovie is the on-disk shape. Dates may be plain days or RFC 3339. An _id
// (as written by mongoexport) is accepted and ignored; ids are regenerated.
type seedMovie struct {
	ID          json.RawMessage `json:"_id"`
	Title       string
	Description string
	Genre       domain.Genre
	Director    struct {
		Name  string
		Bio   string
		Birth string
		Death string
	}
	Actors    []string
	ImagePath string
	Featured  bool
}

type seedResult struct {
	Deleted  int64
	Inserted int
}

func decodeMovies(r io.Reader) ([]domain.Movie, error) {
	var raw []seedMovie
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode movies: %w", err)
	}

	movies := make([]domain.Movie, 0, len(raw))
	for i, s := range raw {
		birth, err := domain.ParseDate(s.Director.Birth)
		if err != nil {
			return nil, fmt.Errorf("movie[%d] %q: Director.Birth: %w", i, s.Title, err)
		}
		death, err := domain.ParseDate(s.Director.Death)
		if err != nil {
			return nil, fmt.Errorf("movie[%d] %q: Director.Death: %w", i, s.Title, err)
		}

		m := domain.Movie{
			Title:       s.Title,
			Description: s.Description,
			Genre:       s.Genre,
			Director: domain.Director{
				Name:  s.Director.Name,
				Bio:   s.Director.Bio,
				Birth: birth,
				Death: death,
			},
			Actors:    s.Actors,
			ImagePath: s.ImagePath,
			Featured:  s.Featured,
		}
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("movie[%d]: %w", i, err)
		}
		movies = append(movies, m)
	}
	return movies, nil
}

// seed optionally empties the collection, then inserts movies in one batch.
func seed(ctx context.Context, repo ports.MovieRepository, movies []domain.Movie, drop bool) (seedResult, error) {
	var res seedResult
	if drop {
		n, err := repo.DeleteAll(ctx)
		if err != nil {
			return res, err
		}
		res.Deleted = n
	}

	n, err := repo.InsertMany(ctx, movies)
	if err != nil {
		return res, err
	}
	res.Inserted = n
	return res, nil
}
