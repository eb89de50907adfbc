package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/myflix/movie-api/internal/core/domain"
	"github.com/myflix/movie-api/internal/core/ports"
)

// UserService implements account management and favourites.
type UserService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	logger zerolog.Logger
}

// NewUserService returns a UserService backed by repo.
func NewUserService(repo ports.UserRepository, hasher ports.PasswordHasher, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, hasher: hasher, logger: logger}
}

// Register creates an account after checking the username is free.
func (s *UserService) Register(ctx context.Context, input ports.UserInput) (*domain.User, error) {
	if err := s.ensureUsernameFree(ctx, input.Username); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	user, err := domain.NewUser(input.Username, hash, input.Email, input.Birthday)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		s.logger.Error().Err(err).Str("username", input.Username).Msg("failed to create user")
		return nil, fmt.Errorf("register: %w", err)
	}

	s.logger.Info().Str("username", created.Username).Str("user_id", created.ID).Msg("user registered")
	return created, nil
}

// ListUsers returns every account, never nil.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

// GetUser returns the account named username.
func (s *UserService) GetUser(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, wrapLookup("get user", username, err)
	}
	return user, nil
}

// UpdateUser replaces the account fields of username. Renaming onto a
// username held by another account is rejected.
func (s *UserService) UpdateUser(ctx context.Context, username string, input ports.UserInput) (*domain.User, error) {
	if input.Username != username {
		if err := s.ensureUsernameFree(ctx, input.Username); err != nil {
			return nil, err
		}
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("update user: hash password: %w", err)
	}

	changes, err := domain.NewUser(input.Username, hash, input.Email, input.Birthday)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, username, changes)
	if err != nil {
		return nil, wrapLookup("update user", username, err)
	}

	s.logger.Info().Str("username", username).Str("new_username", updated.Username).Msg("user updated")
	return updated, nil
}

// AddFavourite appends movieID to the user's favourites.
func (s *UserService) AddFavourite(ctx context.Context, username, movieID string) (*domain.User, error) {
	user, err := s.repo.PushFavourite(ctx, username, movieID)
	if err != nil {
		return nil, wrapLookup("add favourite", username, err)
	}
	s.logger.Debug().Str("username", username).Str("movie_id", movieID).Msg("favourite added")
	return user, nil
}

// RemoveFavourite drops every occurrence of movieID from the favourites.
func (s *UserService) RemoveFavourite(ctx context.Context, username, movieID string) (*domain.User, error) {
	user, err := s.repo.PullFavourite(ctx, username, movieID)
	if err != nil {
		return nil, wrapLookup("remove favourite", username, err)
	}
	s.logger.Debug().Str("username", username).Str("movie_id", movieID).Msg("favourite removed")
	return user, nil
}

// DeleteUser deregisters the account named username.
func (s *UserService) DeleteUser(ctx context.Context, username string) error {
	if err := s.repo.Delete(ctx, username); err != nil {
		return wrapLookup("delete user", username, err)
	}
	s.logger.Info().Str("username", username).Msg("user deleted")
	return nil
}

func (s *UserService) ensureUsernameFree(ctx context.Context, username string) error {
	_, err := s.repo.FindByUsername(ctx, username)
	switch {
	case err == nil:
		return fmt.Errorf("%s %w", username, domain.ErrUserExists)
	case errors.Is(err, domain.ErrUserNotFound):
		return nil
	default:
		return fmt.Errorf("check username %q: %w", username, err)
	}
}
