package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/myflix/movie-api/internal/api/metrics"
	"github.com/myflix/movie-api/internal/core/ports"
)

type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// bindUser binds and validates a user write. Nothing is written when it fails.
func bindUser(c echo.Context) (ports.UserInput, error) {
	var req userRequest
	if err := c.Bind(&req); err != nil {
		return ports.UserInput{}, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return ports.UserInput{}, err
	}
	return req.toInput()
}

// Create handles POST /users.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      userRequest  true  "Account details"
// @Success      201   {object}  domain.User
// @Failure      400   {string}  string
// @Failure      422   {object}  ValidationErrors
// @Failure      500   {string}  string
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	input, err := bindUser(c)
	if err != nil {
		return err
	}

	user, err := h.service.Register(c.Request().Context(), input)
	if err != nil {
		return err
	}

	metrics.UsersRegisteredTotal.Inc()
	return c.JSON(http.StatusCreated, user)
}

// List handles GET /users.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      401  {object}  map[string]string
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Get handles GET /users/:Username.
//
// @Summary      Get a user by username
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        Username  path      string  true  "Username"
// @Success      200       {object}  domain.User
// @Failure      400       {string}  string
// @Failure      401       {object}  map[string]string
// @Router       /users/{Username} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.GetUser(c.Request().Context(), pathParam(c, "Username"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Update handles PUT /users/:Username.
//
// @Summary      Update a user's account
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Username  path      string       true  "Current username"
// @Param        body      body      userRequest  true  "New account details"
// @Success      200       {object}  domain.User
// @Failure      400       {string}  string
// @Failure      401       {object}  map[string]string
// @Failure      422       {object}  ValidationErrors
// @Router       /users/{Username} [put]
func (h *UserHandler) Update(c echo.Context) error {
	input, err := bindUser(c)
	if err != nil {
		return err
	}

	user, err := h.service.UpdateUser(c.Request().Context(), pathParam(c, "Username"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// AddFavourite handles POST /users/:Username/Movies/:MovieID.
//
// @Summary      Add a movie to a user's favourites
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        Username  path      string  true  "Username"
// @Param        MovieID   path      string  true  "Movie id"
// @Success      200       {object}  domain.User
// @Failure      400       {string}  string
// @Failure      401       {object}  map[string]string
// @Router       /users/{Username}/Movies/{MovieID} [post]
func (h *UserHandler) AddFavourite(c echo.Context) error {
	user, err := h.service.AddFavourite(c.Request().Context(), pathParam(c, "Username"), c.Param("MovieID"))
	if err != nil {
		return err
	}
	metrics.FavouritesChangesTotal.WithLabelValues("add").Inc()
	return c.JSON(http.StatusOK, user)
}

// RemoveFavourite handles DELETE /users/:Username/Movies/:MovieID.
//
// @Summary      Remove a movie from a user's favourites
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        Username  path      string  true  "Username"
// @Param        MovieID   path      string  true  "Movie id"
// @Success      200       {object}  domain.User
// @Failure      400       {string}  string
// @Failure      401       {object}  map[string]string
// @Router       /users/{Username}/Movies/{MovieID} [delete]
func (h *UserHandler) RemoveFavourite(c echo.Context) error {
	user, err := h.service.RemoveFavourite(c.Request().Context(), pathParam(c, "Username"), c.Param("MovieID"))
	if err != nil {
		return err
	}
	metrics.FavouritesChangesTotal.WithLabelValues("remove").Inc()
	return c.JSON(http.StatusOK, user)
}

// Delete handles DELETE /users/:Username.
//
// @Summary      Deregister a user
// @Tags         users
// @Produce      plain
// @Security     BearerAuth
// @Param        Username  path      string  true  "Username"
// @Success      200       {string}  string
// @Failure      400       {string}  string
// @Failure      401       {object}  map[string]string
// @Router       /users/{Username} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	username := pathParam(c, "Username")
	if err := h.service.DeleteUser(c.Request().Context(), username); err != nil {
		return err
	}
	metrics.UsersDeletedTotal.Inc()
	return c.String(http.StatusOK, username+" was deleted")
}
