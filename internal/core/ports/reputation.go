package ports

import (
	"context"

	"github.com/gramsetu/complaints-api/internal/core/domain"
)

// ReputationRepository persists per-citizen reputation records.
type ReputationRepository interface {
	// Ensure guarantees a record exists for ownerID and returns it. The
	// upsert must be atomic: concurrent calls for the same owner produce
	// exactly one record and no duplicate-key failure.
	Ensure(ctx context.Context, ownerID string) (*domain.ReputationRecord, error)
	// FindByOwner returns the record, or (nil, nil) when none exists yet.
	FindByOwner(ctx context.Context, ownerID string) (*domain.ReputationRecord, error)
}

// ReputationCache is a read-through cache in front of the repository.
// A miss is (nil, nil), never an error.
type ReputationCache interface {
	Get(ctx context.Context, ownerID string) (*domain.ReputationRecord, error)
	Set(ctx context.Context, ownerID string, rec *domain.ReputationRecord) error
	Invalidate(ctx context.Context, ownerID string) error
}

// ReputationService exposes reputation reads and the creation-time side
// effect. EnsureRecord is best-effort by contract: callers may log and
// discard its error, and must never fail their own operation because of it.
type ReputationService interface {
	GetForOwner(ctx context.Context, ownerID string) (*domain.ReputationRecord, error)
	EnsureRecord(ctx context.Context, ownerID string) error
}
