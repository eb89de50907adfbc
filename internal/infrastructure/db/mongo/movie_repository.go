package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/myflix/movie-api/internal/core/domain"
)

const collectionMovies = "movies"

type MovieRepository struct {
	col *mongo.Collection
}

func NewMovieRepository(db *mongo.Database) *MovieRepository {
	return &MovieRepository{col: db.Collection(collectionMovies)}
}

// FindAll returns every movie document.
func (r *MovieRepository) FindAll(ctx context.Context) ([]domain.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find movies: %w", err)
	}

	var docs []movieDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode movies: %w", err)
	}

	movies := make([]domain.Movie, len(docs))
	for i, d := range docs {
		movies[i] = d.toDomain()
	}
	return movies, nil
}

func (r *MovieRepository) FindByTitle(ctx context.Context, title string) (*domain.Movie, error) {
	return r.findOne(ctx, bson.M{"Title": title}, domain.ErrMovieNotFound)
}

func (r *MovieRepository) FindByGenreName(ctx context.Context, name string) (*domain.Movie, error) {
	return r.findOne(ctx, bson.M{"Genre.Name": name}, domain.ErrGenreNotFound)
}

func (r *MovieRepository) FindByDirectorName(ctx context.Context, name string) (*domain.Movie, error) {
	return r.findOne(ctx, bson.M{"Director.Name": name}, domain.ErrDirectorNotFound)
}

func (r *MovieRepository) findOne(ctx context.Context, filter bson.M, notFound error) (*domain.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc movieDocument
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, notFound
		}
		return nil, fmt.Errorf("find movie: %w", err)
	}
	m := doc.toDomain()
	return &m, nil
}

// InsertMany validates and inserts movies in a single batch.
func (r *MovieRepository) InsertMany(ctx context.Context, movies []domain.Movie) (int, error) {
	if len(movies) == 0 {
		return 0, nil
	}

	docs := make([]interface{}, 0, len(movies))
	for i, m := range movies {
		if err := m.Validate(); err != nil {
			return 0, fmt.Errorf("movie[%d]: %w", i, err)
		}
		doc, err := toMovieDocument(m)
		if err != nil {
			return 0, fmt.Errorf("movie[%d]: %w", i, err)
		}
		docs = append(docs, doc)
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	res, err := r.col.InsertMany(ctx, docs)
	if err != nil {
		return 0, fmt.Errorf("insert movies: %w", err)
	}
	return len(res.InsertedIDs), nil
}

// DeleteAll empties the collection and reports how many documents were removed.
func (r *MovieRepository) DeleteAll(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	res, err := r.col.DeleteMany(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("delete movies: %w", err)
	}
	return res.DeletedCount, nil
}

// EnsureIndexes creates the lookup indexes on the movies collection.
func (r *MovieRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "Title", Value: 1}}},
		{Keys: bson.D{{Key: "Genre.Name", Value: 1}}},
		{Keys: bson.D{{Key: "Director.Name", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
