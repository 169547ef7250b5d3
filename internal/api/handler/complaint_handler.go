package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/gramsetu/complaints-api/internal/core/ports"
)

// ComplaintHandler handles HTTP requests for complaint operations.
type ComplaintHandler struct {
	service ports.ComplaintService
}

func NewComplaintHandler(service ports.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{service: service}
}

// Create handles POST /complaints.
//
// @Summary      File a new complaint
// @Tags         complaints
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createComplaintRequest  true  "Complaint details"
// @Success      201   {object}  complaintResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /complaints [post]
func (h *ComplaintHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createComplaintRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), actor, toCreateInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toComplaintResponse(created))
}

// List handles GET /complaints.
//
// @Summary      List complaints visible to the caller
// @Tags         complaints
// @Produce      json
// @Security     BearerAuth
// @Param        status    query     string  false  "Filter by status"
// @Param        category  query     string  false  "Filter by category"
// @Param        limit     query     int     false  "Max rows (default 50, cap 200)"
// @Success      200       {array}   complaintResponse
// @Failure      401       {object}  errorResponse
// @Failure      500       {object}  errorResponse
// @Router       /complaints [get]
func (h *ComplaintHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	complaints, err := h.service.List(c.Request().Context(), actor, ports.ListComplaintsInput{
		Status:   c.QueryParam("status"),
		Category: c.QueryParam("category"),
		Limit:    parseLimit(c.QueryParam("limit")),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toComplaintListResponse(complaints))
}

// Get handles GET /complaints/:id.
//
// @Summary      Get a single complaint
// @Tags         complaints
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Complaint id"
// @Success      200  {object}  complaintResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /complaints/{id} [get]
func (h *ComplaintHandler) Get(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	complaint, err := h.service.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toComplaintResponse(complaint))
}

// Update handles PUT /complaints/:id.
//
// @Summary      Replace the mutable fields of a complaint
// @Tags         complaints
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                  true  "Complaint id"
// @Param        body  body      updateComplaintRequest  true  "Replacement fields"
// @Success      200   {object}  complaintResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /complaints/{id} [put]
func (h *ComplaintHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req updateComplaintRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), toUpdateInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toComplaintResponse(updated))
}

// Delete handles DELETE /complaints/:id.
//
// @Summary      Delete a complaint
// @Tags         complaints
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Complaint id"
// @Success      200  {object}  deleteComplaintResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /complaints/{id} [delete]
func (h *ComplaintHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deleteComplaintResponse{Message: "complaint deleted"})
}

// parseLimit turns the raw query value into an int the service can clamp.
// Garbage or non-positive values fall back to 0, which the service treats as
// "use the default" — a bad limit never fails the request.
func parseLimit(raw string) int {
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
