package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/myflix/movie-api/internal/core/domain"
)

const collectionUsers = "users"

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(collectionUsers)}
}

func (r *UserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}

	var docs []userDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}

	users := make([]domain.User, len(docs))
	for i, d := range docs {
		users[i] = *d.toDomain()
	}
	return users, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDocument
	if err := r.col.FindOne(ctx, bson.M{"Username": username}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return doc.toDomain(), nil
}

// Create inserts the user. Username uniqueness is checked by the service,
// not by an index.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc, err := toUserDocument(user)
	if err != nil {
		return nil, err
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.ID = id
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) Update(ctx context.Context, username string, user *domain.User) (*domain.User, error) {
	set := bson.M{
		"Username": user.Username,
		"Password": user.PasswordHash,
		"Email":    user.Email,
	}
	if user.Birthday != nil {
		set["Birthday"] = user.Birthday.UTC()
	}
	return r.findOneAndUpdate(ctx, username, bson.M{"$set": set})
}

func (r *UserRepository) PushFavourite(ctx context.Context, username, movieID string) (*domain.User, error) {
	id, err := primitive.ObjectIDFromHex(movieID)
	if err != nil {
		return nil, domain.ErrInvalidMovieID
	}
	return r.findOneAndUpdate(ctx, username, bson.M{"$push": bson.M{"FavouriteMovies": id}})
}

func (r *UserRepository) PullFavourite(ctx context.Context, username, movieID string) (*domain.User, error) {
	id, err := primitive.ObjectIDFromHex(movieID)
	if err != nil {
		return nil, domain.ErrInvalidMovieID
	}
	return r.findOneAndUpdate(ctx, username, bson.M{"$pull": bson.M{"FavouriteMovies": id}})
}

func (r *UserRepository) findOneAndUpdate(ctx context.Context, username string, update bson.M) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc userDocument
	err := r.col.FindOneAndUpdate(ctx, bson.M{"Username": username}, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return doc.toDomain(), nil
}

// Delete removes the account of username.
func (r *UserRepository) Delete(ctx context.Context, username string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	err := r.col.FindOneAndDelete(ctx, bson.M{"Username": username}).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// EnsureIndexes creates a non-unique index on Username.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: bson.D{{Key: "Username", Value: 1}}})
	return err
}
