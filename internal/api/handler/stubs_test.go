package handler

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/myflix/movie-api/internal/core/domain"
	"github.com/myflix/movie-api/internal/core/ports"
)

type stubAuthService struct {
	loginFn  func(ctx context.Context, username, password string) (string, *domain.User, error)
	verifyFn func(ctx context.Context, userID string) (*domain.User, error)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) VerifyIdentity(ctx context.Context, userID string) (*domain.User, error) {
	return s.verifyFn(ctx, userID)
}

type stubMovieService struct {
	listFn     func(ctx context.Context) ([]domain.Movie, error)
	getFn      func(ctx context.Context, title string) (*domain.Movie, error)
	genreFn    func(ctx context.Context, name string) (*domain.Genre, error)
	directorFn func(ctx context.Context, name string) (*domain.Director, error)
}

func (s *stubMovieService) ListMovies(ctx context.Context) ([]domain.Movie, error) {
	return s.listFn(ctx)
}

func (s *stubMovieService) GetMovie(ctx context.Context, title string) (*domain.Movie, error) {
	return s.getFn(ctx, title)
}

func (s *stubMovieService) GetGenre(ctx context.Context, name string) (*domain.Genre, error) {
	return s.genreFn(ctx, name)
}

func (s *stubMovieService) GetDirector(ctx context.Context, name string) (*domain.Director, error) {
	return s.directorFn(ctx, name)
}

type stubUserService struct {
	registerFn func(ctx context.Context, input ports.UserInput) (*domain.User, error)
	listFn     func(ctx context.Context) ([]domain.User, error)
	getFn      func(ctx context.Context, username string) (*domain.User, error)
	updateFn   func(ctx context.Context, username string, input ports.UserInput) (*domain.User, error)
	addFn      func(ctx context.Context, username, movieID string) (*domain.User, error)
	removeFn   func(ctx context.Context, username, movieID string) (*domain.User, error)
	deleteFn   func(ctx context.Context, username string) error
}

func (s *stubUserService) Register(ctx context.Context, input ports.UserInput) (*domain.User, error) {
	return s.registerFn(ctx, input)
}

func (s *stubUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.listFn(ctx)
}

func (s *stubUserService) GetUser(ctx context.Context, username string) (*domain.User, error) {
	return s.getFn(ctx, username)
}

func (s *stubUserService) UpdateUser(ctx context.Context, username string, input ports.UserInput) (*domain.User, error) {
	return s.updateFn(ctx, username, input)
}

func (s *stubUserService) AddFavourite(ctx context.Context, username, movieID string) (*domain.User, error) {
	return s.addFn(ctx, username, movieID)
}

func (s *stubUserService) RemoveFavourite(ctx context.Context, username, movieID string) (*domain.User, error) {
	return s.removeFn(ctx, username, movieID)
}

func (s *stubUserService) DeleteUser(ctx context.Context, username string) error {
	return s.deleteFn(ctx, username)
}

// newContext builds an echo context with the validator installed and the
// given path parameters set.
func newContext(method, target, body string, params map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	names := make([]string, 0, len(params))
	values := make([]string, 0, len(params))
	for k, v := range params {
		names = append(names, k)
		values = append(values, v)
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	return c, rec
}
