package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type createComplaintRequest struct {
	Title       string   `json:"title"        validate:"required"`
	Description string   `json:"description"  validate:"required"`
	Category    string   `json:"category"     validate:"required"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	EvidenceURL string   `json:"evidence_url" validate:"omitempty,url"`
}

// updateComplaintRequest is a full replacement of the mutable fields.
// Owner, id and created_at are not part of the schema: a caller cannot even
// express a change to them.
type updateComplaintRequest struct {
	Title       string   `json:"title"        validate:"required"`
	Description string   `json:"description"  validate:"required"`
	Category    string   `json:"category"     validate:"required"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Status      string   `json:"status"       validate:"required,oneof=pending in-progress resolved"`
	EvidenceURL string   `json:"evidence_url" validate:"omitempty,url"`
}

// --- Response types ---

// Response-only types owned by the transport layer, intentionally separate
// from the domain types so the JSON contract is not coupled to internal
// changes. Coordinates are flattened to latitude/longitude to match the
// public API shape.

type complaintResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	Status      string    `json:"status"`
	EvidenceURL string    `json:"evidence_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type deleteComplaintResponse struct {
	Message string `json:"message"`
}

type reputationResponse struct {
	UserID         string `json:"user_id"`
	Score          int    `json:"score"`
	ComplaintCount int    `json:"complaint_count"`
	ResolvedCount  int    `json:"resolved_count"`
}

type complaintSummaryResponse struct {
	Total      int64            `json:"total"`
	ByStatus   map[string]int64 `json:"by_status"`
	ByCategory map[string]int64 `json:"by_category"`
}
