package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/myflix/movie-api/internal/core/domain"
)

// IdentityVerifier resolves a token subject to the account it belongs to.
type IdentityVerifier interface {
	VerifyIdentity(ctx context.Context, userID string) (*domain.User, error)
}

// Auth validates the bearer JWT, resolves its subject to an account and
// injects the account's current username and id into the context.
func Auth(jwtSecret string, verifier IdentityVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				return []byte(jwtSecret), nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			userID, _ := claims["sub"].(string)
			if userID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			user, err := verifier.VerifyIdentity(c.Request().Context(), userID)
			if err != nil {
				if errors.Is(err, domain.ErrInvalidCredentials) {
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
				}
				return err
			}

			// The username claim goes stale after a rename; the account is authoritative.
			c.Set("username", user.Username)
			c.Set("user_id", user.ID)

			return next(c)
		}
	}
}
