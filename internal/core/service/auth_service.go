package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/myflix/movie-api/internal/core/domain"
	"github.com/myflix/movie-api/internal/core/ports"
)

const defaultTokenTTL = 7 * 24 * time.Hour

// AuthService implements login and token identity checks.
type AuthService struct {
	repo      ports.UserRepository
	hasher    ports.PasswordHasher
	jwtSecret string
	tokenTTL  time.Duration
	now       func() time.Time
}

// NewAuthService returns an AuthService. A non-positive tokenTTL means seven days.
func NewAuthService(repo ports.UserRepository, hasher ports.PasswordHasher, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &AuthService{repo: repo, hasher: hasher, jwtSecret: jwtSecret, tokenTTL: tokenTTL, now: time.Now}
}

// Login exchanges a username/password pair for a signed token. Unknown
// usernames and wrong passwords both yield domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("login: %w", err)
	}

	if s.hasher.Compare(user.PasswordHash, password) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("login: sign token: %w", err)
	}

	return token, user, nil
}

// VerifyIdentity looks up the account behind a token's subject. The id is
// stable across renames, so the returned user carries the current username.
func (s *AuthService) VerifyIdentity(ctx context.Context, userID string) (*domain.User, error) {
	if userID == "" {
		return nil, domain.ErrInvalidCredentials
	}
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("verify identity: %w", err)
	}
	return user, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"jti":      uuid.NewString(),
		"iat":      now.Unix(),
		"exp":      now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
