package ports

import (
	"context"

	"github.com/gramsetu/complaints-api/internal/core/domain"
)

// Actor is the authenticated principal a request runs on behalf of, as
// resolved by the auth middleware.
type Actor struct {
	ID   string
	Role string
}

// CreateComplaintInput carries all data needed to file a new complaint.
// Latitude and longitude are optional but must be supplied together.
type CreateComplaintInput struct {
	Title       string
	Description string
	Category    string
	Latitude    *float64
	Longitude   *float64
	EvidenceURL string
}

// UpdateComplaintInput is a full replacement of the mutable fields.
type UpdateComplaintInput struct {
	Title       string
	Description string
	Category    string
	Latitude    *float64
	Longitude   *float64
	Status      string
	EvidenceURL string
}

// ListComplaintsInput carries the caller-supplied list parameters.
// Limit <= 0 means "use the default".
type ListComplaintsInput struct {
	Status   string
	Category string
	Limit    int
}

// ComplaintSummary aggregates complaint counts for the analytics endpoint.
type ComplaintSummary struct {
	Total      int64
	ByStatus   map[string]int64
	ByCategory map[string]int64
}

// ComplaintService defines the use-case operations on complaints. Every
// operation requires a resolved Actor; scoping is derived from the actor's
// role, never from caller-supplied parameters.
type ComplaintService interface {
	Create(ctx context.Context, actor Actor, in CreateComplaintInput) (*domain.Complaint, error)
	List(ctx context.Context, actor Actor, in ListComplaintsInput) ([]*domain.Complaint, error)
	Get(ctx context.Context, actor Actor, id string) (*domain.Complaint, error)
	Update(ctx context.Context, actor Actor, id string, in UpdateComplaintInput) (*domain.Complaint, error)
	Delete(ctx context.Context, actor Actor, id string) error
	Summary(ctx context.Context) (*ComplaintSummary, error)
}
