package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/myflix/movie-api/internal/core/ports"
)

// MovieHandler serves the read-only movie catalogue.
type MovieHandler struct {
	service ports.MovieService
}

func NewMovieHandler(service ports.MovieService) *MovieHandler {
	return &MovieHandler{service: service}
}

// List handles GET /movies.
//
// @Summary      List all movies
// @Tags         movies
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Movie
// @Failure      401  {object}  map[string]string
// @Failure      500  {string}  string
// @Router       /movies [get]
func (h *MovieHandler) List(c echo.Context) error {
	movies, err := h.service.ListMovies(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, movies)
}

// Get handles GET /movies/:Title.
//
// @Summary      Get a movie by title
// @Tags         movies
// @Produce      json
// @Security     BearerAuth
// @Param        Title  path      string  true  "Exact movie title"
// @Success      200    {object}  domain.Movie
// @Failure      400    {string}  string
// @Failure      401    {object}  map[string]string
// @Router       /movies/{Title} [get]
func (h *MovieHandler) Get(c echo.Context) error {
	movie, err := h.service.GetMovie(c.Request().Context(), pathParam(c, "Title"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, movie)
}

// Genre handles GET /movies/genres/:Genre.
//
// @Summary      Get a genre by name
// @Tags         movies
// @Produce      json
// @Security     BearerAuth
// @Param        Genre  path      string  true  "Genre name"
// @Success      200    {object}  domain.Genre
// @Failure      400    {string}  string
// @Failure      401    {object}  map[string]string
// @Router       /movies/genres/{Genre} [get]
func (h *MovieHandler) Genre(c echo.Context) error {
	genre, err := h.service.GetGenre(c.Request().Context(), pathParam(c, "Genre"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, genre)
}

// Director handles GET /movies/directors/:Director.
//
// @Summary      Get a director by name
// @Tags         movies
// @Produce      json
// @Security     BearerAuth
// @Param        Director  path      string  true  "Director name"
// @Success      200       {object}  domain.Director
// @Failure      400       {string}  string
// @Failure      401       {object}  map[string]string
// @Router       /movies/directors/{Director} [get]
func (h *MovieHandler) Director(c echo.Context) error {
	director, err := h.service.GetDirector(c.Request().Context(), pathParam(c, "Director"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, director)
}
