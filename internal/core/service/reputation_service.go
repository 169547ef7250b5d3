package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/gramsetu/complaints-api/internal/api/metrics"
	"github.com/gramsetu/complaints-api/internal/core/domain"
	"github.com/gramsetu/complaints-api/internal/core/ports"
)

type reputationService struct {
	repo  ports.ReputationRepository
	cache ports.ReputationCache
	log   zerolog.Logger
}

// NewReputationService returns a ReputationService backed by the given
// repository, with reads served through cache.
func NewReputationService(repo ports.ReputationRepository, cache ports.ReputationCache, log zerolog.Logger) ports.ReputationService {
	return &reputationService{repo: repo, cache: cache, log: log}
}

// GetForOwner returns the owner's reputation record. Owners that have never
// filed a complaint get the default record; it is not persisted on read.
func (s *reputationService) GetForOwner(ctx context.Context, ownerID string) (*domain.ReputationRecord, error) {
	if cached, err := s.cache.Get(ctx, ownerID); err != nil {
		s.log.Warn().Err(err).Str("user_id", ownerID).Msg("reputation cache read failed")
	} else if cached != nil {
		return cached, nil
	}

	rec, err := s.repo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		rec = domain.DefaultReputation(ownerID)
	}

	if err := s.cache.Set(ctx, ownerID, rec); err != nil {
		s.log.Warn().Err(err).Str("user_id", ownerID).Msg("reputation cache write failed")
	}
	return rec, nil
}

// EnsureRecord guarantees a reputation record exists for ownerID. Counters
// are not touched here; whether filing a complaint bumps complaint_count is
// still an unresolved product decision.
func (s *reputationService) EnsureRecord(ctx context.Context, ownerID string) error {
	if _, err := s.repo.Ensure(ctx, ownerID); err != nil {
		metrics.ReputationUpsertsTotal.WithLabelValues("error").Inc()
		return err
	}
	metrics.ReputationUpsertsTotal.WithLabelValues("ok").Inc()

	// The stored record may now differ from what readers cached.
	if err := s.cache.Invalidate(ctx, ownerID); err != nil {
		s.log.Warn().Err(err).Str("user_id", ownerID).Msg("reputation cache invalidation failed")
	}
	return nil
}
