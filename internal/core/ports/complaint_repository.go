package ports

import (
	"context"
	"time"

	"github.com/gramsetu/complaints-api/internal/core/domain"
)

// ListComplaintsFilter carries all query parameters for listing complaints.
// The scope decision is made once by the service layer; the repository only
// applies it.
type ListComplaintsFilter struct {
	Scope    domain.Scope // ScopeOwnedOnly = constrain by ActorID
	ActorID  string       // owner filter value when scoped
	Status   string       // optional: equality filter on status
	Category string       // optional: equality filter on category
	Limit    int64        // max rows, already validated by the service
}

// ComplaintPatch is the set of mutable fields applied by Update. Owner,
// identifier and created_at are deliberately absent — they never change.
type ComplaintPatch struct {
	Title       string
	Description string
	Category    string
	Location    *domain.Geolocation
	Status      domain.ComplaintStatus
	EvidenceURL string
	UpdatedAt   time.Time
}

// ComplaintRepository defines persistence operations for complaints.
//
// Every single-record operation takes the resolved scope plus the acting
// user's id. When scope is ScopeOwnedOnly the lookup filter additionally
// requires ownership, so a record that exists but belongs to someone else
// is indistinguishable from a record that does not exist: both surface as
// domain.ErrComplaintNotFound.
type ComplaintRepository interface {
	Insert(ctx context.Context, c *domain.Complaint) error
	// List returns complaints matching filter, newest first. An empty result
	// is not an error.
	List(ctx context.Context, filter ListComplaintsFilter) ([]*domain.Complaint, error)
	FindByID(ctx context.Context, scope domain.Scope, actorID, id string) (*domain.Complaint, error)
	// Update applies patch and the ownership check in a single conditional
	// write, so there is no window between check and mutation.
	Update(ctx context.Context, scope domain.Scope, actorID, id string, patch ComplaintPatch) (*domain.Complaint, error)
	Delete(ctx context.Context, scope domain.Scope, actorID, id string) error

	// Aggregations backing the analytics endpoint.
	CountByStatus(ctx context.Context) (map[string]int64, error)
	CountByCategory(ctx context.Context) (map[string]int64, error)
}
