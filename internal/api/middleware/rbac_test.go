package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/gramsetu/complaints-api/internal/core/domain"
)

func officerOnly() echo.MiddlewareFunc {
	return RBAC(domain.RoleDistrictOfficer, domain.RoleStateOfficer, domain.RoleNationalAdmin)
}

func TestRBAC_Allows(t *testing.T) {
	for _, role := range []string{domain.RoleDistrictOfficer, domain.RoleStateOfficer, domain.RoleNationalAdmin} {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/analytics/complaints", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set("role", role)

		called := false
		handler := officerOnly()(func(c echo.Context) error {
			called = true
			return c.NoContent(http.StatusOK)
		})

		if err := handler(c); err != nil {
			t.Fatalf("role %q: handler error: %v", role, err)
		}
		if !called {
			t.Fatalf("role %q: next handler not called", role)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("role %q: expected 200, got %d", role, rec.Code)
		}
	}
}

func TestRBAC_Forbids(t *testing.T) {
	for _, role := range []string{domain.RoleCitizen, domain.RoleFieldWorker, "superuser", ""} {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/analytics/complaints", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if role != "" {
			c.Set("role", role)
		}

		handler := officerOnly()(func(c echo.Context) error {
			t.Fatalf("role %q: should not reach next handler", role)
			return nil
		})

		_ = handler(c)
		if rec.Code != http.StatusForbidden {
			t.Fatalf("role %q: expected 403, got %d", role, rec.Code)
		}
	}
}
