package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/myflix/movie-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories shared by the service tests
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users     map[string]*domain.User
	nextID    int
	createErr error
	findErr   error
	calls     int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.FavouriteMovies = append([]string{}, u.FavouriteMovies...)
	return &clone
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]domain.User, error) {
	r.calls++
	if r.findErr != nil {
		return nil, r.findErr
	}
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.calls++
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.calls++
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.calls++
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.nextID++
	stored := cloneUser(user)
	stored.ID = fmt.Sprintf("%024x", r.nextID)
	r.users[stored.Username] = stored
	return cloneUser(stored), nil
}

func (r *stubUserRepo) Update(_ context.Context, username string, user *domain.User) (*domain.User, error) {
	r.calls++
	current, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	delete(r.users, username)
	current.Username = user.Username
	current.PasswordHash = user.PasswordHash
	current.Email = user.Email
	if user.Birthday != nil {
		current.Birthday = user.Birthday
	}
	r.users[current.Username] = current
	return cloneUser(current), nil
}

func (r *stubUserRepo) PushFavourite(_ context.Context, username, movieID string) (*domain.User, error) {
	r.calls++
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.FavouriteMovies = append(u.FavouriteMovies, movieID)
	return cloneUser(u), nil
}

func (r *stubUserRepo) PullFavourite(_ context.Context, username, movieID string) (*domain.User, error) {
	r.calls++
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	kept := make([]string, 0, len(u.FavouriteMovies))
	for _, id := range u.FavouriteMovies {
		if id != movieID {
			kept = append(kept, id)
		}
	}
	u.FavouriteMovies = kept
	return cloneUser(u), nil
}

func (r *stubUserRepo) Delete(_ context.Context, username string) error {
	r.calls++
	if _, ok := r.users[username]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, username)
	return nil
}

// stubHasher "hashes" by prefixing, which keeps tests fast and deterministic.
type stubHasher struct {
	hashErr error
}

func (h stubHasher) Hash(password string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}
	return "hashed:" + password, nil
}

func (stubHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}
