package handler

import (
	"net/url"

	"github.com/labstack/echo/v4"
)

// pathParam returns the decoded value of a path parameter. Echo routes on
// URL.RawPath when it is set and leaves parameters escaped; otherwise they
// are already decoded and must not be unescaped again.
func pathParam(c echo.Context, name string) string {
	raw := c.Param(name)
	if c.Request().URL.RawPath == "" {
		return raw
	}
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}
