package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/myflix/movie-api/internal/api/metrics"
	"github.com/myflix/movie-api/internal/core/domain"
	"github.com/myflix/movie-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates a user and returns a JWT token. Credentials are read
// from the body and, when absent there, from the query string.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body      body      loginRequest  false  "Login credentials"
// @Param        Username  query     string        false  "Username"
// @Param        Password  query     string        false  "Password"
// @Success      200       {object}  loginResponse
// @Failure      400       {object}  map[string]string
// @Failure      401       {object}  map[string]string
// @Failure      429       {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Username == "" {
		req.Username = c.QueryParam("Username")
	}
	if req.Password == "" {
		req.Password = c.QueryParam("Password")
	}
	if req.Username == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Username and Password are required")
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		} else {
			metrics.LoginsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{User: user, Token: token})
}
