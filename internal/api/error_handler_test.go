package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/gramsetu/complaints-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, errorResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return rec.Code, body
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"complaint not found", domain.ErrComplaintNotFound, http.StatusNotFound, "complaint not found"},
		{"wrapped not found", fmt.Errorf("lookup: %w", domain.ErrComplaintNotFound), http.StatusNotFound, "complaint not found"},
		{"validation", fmt.Errorf("%w: title is required", domain.ErrValidation), http.StatusBadRequest, "invalid input: title is required"},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"user not found", domain.ErrUserNotFound, http.StatusUnauthorized, "invalid credentials"},
		{"user exists", domain.ErrUserExists, http.StatusConflict, "user already exists"},
		{"echo error", echo.NewHTTPError(http.StatusUnauthorized, "invalid token"), http.StatusUnauthorized, "invalid token"},
		{"unknown error", errors.New("mongo: connection reset"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, body := renderError(t, tc.err)
			if code != tc.wantCode {
				t.Errorf("code: expected %d, got %d", tc.wantCode, code)
			}
			if body.Error != tc.wantMsg {
				t.Errorf("message: expected %q, got %q", tc.wantMsg, body.Error)
			}
		})
	}
}

// The 404 for a record owned by someone else must be byte-identical to the
// 404 for a record that does not exist.
func TestHTTPErrorHandler_NotFoundIsUniform(t *testing.T) {
	codeA, bodyA := renderError(t, domain.ErrComplaintNotFound)
	codeB, bodyB := renderError(t, fmt.Errorf("scoped lookup: %w", domain.ErrComplaintNotFound))

	if codeA != codeB || bodyA != bodyB {
		t.Errorf("responses differ: (%d, %+v) vs (%d, %+v)", codeA, bodyA, codeB, bodyB)
	}
}

// Unknown internal errors must never leak their cause to the client.
func TestHTTPErrorHandler_NoInternalLeak(t *testing.T) {
	_, body := renderError(t, errors.New("dial tcp 10.0.0.5:27017: i/o timeout"))
	if body.Error != "internal server error" {
		t.Errorf("internal detail leaked: %q", body.Error)
	}
}
