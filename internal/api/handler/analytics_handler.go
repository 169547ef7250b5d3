package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gramsetu/complaints-api/internal/core/ports"
)

// AnalyticsHandler serves aggregate complaint counts to officer roles. Route
// access is restricted by the RBAC middleware, not here.
type AnalyticsHandler struct {
	service ports.ComplaintService
}

func NewAnalyticsHandler(service ports.ComplaintService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// Summary handles GET /analytics/complaints.
//
// @Summary      Aggregate complaint counts by status and category
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  complaintSummaryResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /analytics/complaints [get]
func (h *AnalyticsHandler) Summary(c echo.Context) error {
	summary, err := h.service.Summary(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSummaryResponse(summary))
}
