package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/myflix/movie-api/internal/core/domain"
	"github.com/myflix/movie-api/internal/core/ports"
)

func TestUserHandler_Create_Success(t *testing.T) {
	var got ports.UserInput
	stub := &stubUserService{
		registerFn: func(ctx context.Context, input ports.UserInput) (*domain.User, error) {
			got = input
			return &domain.User{ID: "u1", Username: input.Username, Email: input.Email, Birthday: input.Birthday, FavouriteMovies: []string{}}, nil
		},
	}
	h := NewUserHandler(stub)

	body := `{"Username":"moviefan","Password":"secret","Email":"fan@example.com","Birthday":"1990-05-17"}`
	c, rec := newContext(http.MethodPost, "/users", body, nil)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if got.Birthday == nil || !got.Birthday.Equal(time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected parsed birthday, got %v", got.Birthday)
	}

	var user map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if user["Username"] != "moviefan" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	if _, ok := user["Password"]; ok {
		t.Fatalf("password must not be rendered")
	}
}

func TestUserHandler_Create_ShortUsername(t *testing.T) {
	stub := &stubUserService{
		registerFn: func(ctx context.Context, input ports.UserInput) (*domain.User, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}
	h := NewUserHandler(stub)

	c, _ := newContext(http.MethodPost, "/users", `{"Username":"abcd","Password":"secret","Email":"fan@example.com"}`, nil)
	err := h.Create(c)

	var ve *ValidationErrors
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
	if len(ve.Errors) != 1 || ve.Errors[0].Msg != "Username is required" {
		t.Fatalf("unexpected violations: %+v", ve.Errors)
	}
}

func TestUserHandler_Create_Duplicate(t *testing.T) {
	stub := &stubUserService{
		registerFn: func(ctx context.Context, input ports.UserInput) (*domain.User, error) {
			return nil, fmt.Errorf("%s %w", input.Username, domain.ErrUserExists)
		},
	}
	h := NewUserHandler(stub)

	c, _ := newContext(http.MethodPost, "/users", `{"Username":"moviefan","Password":"secret","Email":"fan@example.com"}`, nil)
	if err := h.Create(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserHandler_Update(t *testing.T) {
	var gotUsername string
	stub := &stubUserService{
		updateFn: func(ctx context.Context, username string, input ports.UserInput) (*domain.User, error) {
			gotUsername = username
			return &domain.User{Username: input.Username, Email: input.Email, FavouriteMovies: []string{}}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newContext(http.MethodPut, "/users/moviefan", `{"Username":"renamed1","Password":"secret","Email":"new@example.com"}`,
		map[string]string{"Username": "moviefan"})
	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotUsername != "moviefan" {
		t.Fatalf("expected path username, got %q", gotUsername)
	}
}

func TestUserHandler_Update_InvalidEmail(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	c, _ := newContext(http.MethodPut, "/users/moviefan", `{"Username":"moviefan","Password":"secret","Email":"nope"}`,
		map[string]string{"Username": "moviefan"})
	err := h.Update(c)

	var ve *ValidationErrors
	if !errors.As(err, &ve) || len(ve.Errors) != 1 || ve.Errors[0].Param != "Email" {
		t.Fatalf("expected one Email violation, got %v", err)
	}
}

func TestUserHandler_Favourites(t *testing.T) {
	favs := []string{}
	stub := &stubUserService{
		addFn: func(ctx context.Context, username, movieID string) (*domain.User, error) {
			favs = append(favs, movieID)
			return &domain.User{Username: username, FavouriteMovies: favs}, nil
		},
		removeFn: func(ctx context.Context, username, movieID string) (*domain.User, error) {
			kept := favs[:0]
			for _, f := range favs {
				if f != movieID {
					kept = append(kept, f)
				}
			}
			favs = kept
			return &domain.User{Username: username, FavouriteMovies: favs}, nil
		},
	}
	h := NewUserHandler(stub)
	params := map[string]string{"Username": "moviefan", "MovieID": "5c3bd189515a081b363cb7e4"}

	c, rec := newContext(http.MethodPost, "/users/moviefan/Movies/x", "", params)
	if err := h.AddFavourite(c); err != nil {
		t.Fatalf("add error: %v", err)
	}
	var user domain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil || len(user.FavouriteMovies) != 1 {
		t.Fatalf("expected one favourite, got %+v (%v)", user.FavouriteMovies, err)
	}

	c, rec = newContext(http.MethodDelete, "/users/moviefan/Movies/x", "", params)
	if err := h.RemoveFavourite(c); err != nil {
		t.Fatalf("remove error: %v", err)
	}
	user = domain.User{}
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil || len(user.FavouriteMovies) != 0 {
		t.Fatalf("expected no favourites, got %+v (%v)", user.FavouriteMovies, err)
	}
}

func TestUserHandler_Delete(t *testing.T) {
	stub := &stubUserService{
		deleteFn: func(ctx context.Context, username string) error {
			if username != "moviefan" {
				return fmt.Errorf("%s %w", username, domain.ErrUserNotFound)
			}
			return nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newContext(http.MethodDelete, "/users/moviefan", "", map[string]string{"Username": "moviefan"})
	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK || rec.Body.String() != "moviefan was deleted" {
		t.Fatalf("unexpected response: %d %q", rec.Code, rec.Body.String())
	}

	c, _ = newContext(http.MethodDelete, "/users/ghost", "", map[string]string{"Username": "ghost"})
	err := h.Delete(c)
	if !errors.Is(err, domain.ErrUserNotFound) || err.Error() != "ghost was not found" {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestUserHandler_GetAndList(t *testing.T) {
	stub := &stubUserService{
		getFn: func(ctx context.Context, username string) (*domain.User, error) {
			return &domain.User{Username: username, FavouriteMovies: []string{}}, nil
		},
		listFn: func(ctx context.Context) ([]domain.User, error) {
			return []domain.User{}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newContext(http.MethodGet, "/users/moviefan", "", map[string]string{"Username": "moviefan"})
	if err := h.Get(c); err != nil {
		t.Fatalf("get error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	c, rec = newContext(http.MethodGet, "/users", "", nil)
	if err := h.List(c); err != nil {
		t.Fatalf("list error: %v", err)
	}
	if got := rec.Body.String(); got != "[]\n" {
		t.Fatalf("expected empty array, got %q", got)
	}
}
