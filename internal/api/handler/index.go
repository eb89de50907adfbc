package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Index handles GET /.
//
// @Summary      Welcome text
// @Tags         meta
// @Produce      plain
// @Success      200  {string}  string
// @Router       / [get]
func Index(c echo.Context) error {
	return c.String(http.StatusOK, "This is my movies page!")
}
