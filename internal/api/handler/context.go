package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gramsetu/complaints-api/internal/core/ports"
)

// ctxActor extracts the identity injected by the Auth middleware and
// performs a fast-fail check before any service call: both id and role must
// be present. A token that parses but carries no usable identity is
// operationally worthless — reject with 401.
func ctxActor(c echo.Context) (ports.Actor, error) {
	id, _ := c.Get("user_id").(string)
	role, _ := c.Get("role").(string)
	if id == "" || role == "" {
		return ports.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return ports.Actor{ID: id, Role: role}, nil
}
