package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gramsetu/complaints-api/internal/core/ports"
)

// ReputationHandler serves the caller's own reputation record.
type ReputationHandler struct {
	service ports.ReputationService
}

func NewReputationHandler(service ports.ReputationService) *ReputationHandler {
	return &ReputationHandler{service: service}
}

// Get handles GET /users/reputation. Callers that have never filed a
// complaint receive the default record.
//
// @Summary      Get the caller's reputation score
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  reputationResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /users/reputation [get]
func (h *ReputationHandler) Get(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	rec, err := h.service.GetForOwner(c.Request().Context(), actor.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toReputationResponse(rec))
}
