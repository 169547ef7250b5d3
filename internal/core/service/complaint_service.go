package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/gramsetu/complaints-api/internal/api/metrics"
	"github.com/gramsetu/complaints-api/internal/core/domain"
	"github.com/gramsetu/complaints-api/internal/core/ports"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

type ComplaintService struct {
	repo       ports.ComplaintRepository
	reputation ports.ReputationService
	logger     zerolog.Logger
}

func NewComplaintService(repo ports.ComplaintRepository, reputation ports.ReputationService, logger zerolog.Logger) *ComplaintService {
	return &ComplaintService{repo: repo, reputation: reputation, logger: logger}
}

// Create files a new complaint on behalf of actor. Status is always forced
// to pending and both timestamps are set to the same instant, whatever the
// caller sent.
func (s *ComplaintService) Create(ctx context.Context, actor ports.Actor, in ports.CreateComplaintInput) (*domain.Complaint, error) {
	if err := validateCreate(in); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	complaint := &domain.Complaint{
		OwnerID:     actor.ID,
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Category:    strings.TrimSpace(in.Category),
		Location:    locationFrom(in.Latitude, in.Longitude),
		Status:      domain.StatusPending,
		EvidenceURL: in.EvidenceURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Insert(ctx, complaint); err != nil {
		s.logger.Error().Err(err).Str("user_id", actor.ID).Msg("failed to create complaint")
		return nil, err
	}

	metrics.ComplaintsCreatedTotal.WithLabelValues(complaint.Category).Inc()
	s.logger.Info().
		Str("complaint_id", complaint.ID).
		Str("user_id", actor.ID).
		Str("category", complaint.Category).
		Msg("complaint created")

	// Best-effort side effect: the creation already succeeded, a reputation
	// failure must not undo it.
	if actor.Role == domain.RoleCitizen {
		if err := s.reputation.EnsureRecord(ctx, actor.ID); err != nil {
			s.logger.Warn().Err(err).Str("user_id", actor.ID).Msg("reputation upsert failed")
		}
	}

	return complaint, nil
}

// List returns complaints visible to actor, newest first.
func (s *ComplaintService) List(ctx context.Context, actor ports.Actor, in ports.ListComplaintsInput) ([]*domain.Complaint, error) {
	limit := in.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	complaints, err := s.repo.List(ctx, ports.ListComplaintsFilter{
		Scope:    domain.DecideScope(actor.Role),
		ActorID:  actor.ID,
		Status:   in.Status,
		Category: in.Category,
		Limit:    int64(limit),
	})
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", actor.ID).Msg("failed to list complaints")
		return nil, err
	}
	return complaints, nil
}

func (s *ComplaintService) Get(ctx context.Context, actor ports.Actor, id string) (*domain.Complaint, error) {
	return s.repo.FindByID(ctx, domain.DecideScope(actor.Role), actor.ID, id)
}

// Update replaces the mutable fields of a complaint. The ownership check and
// the write happen in one conditional update inside the repository.
func (s *ComplaintService) Update(ctx context.Context, actor ports.Actor, id string, in ports.UpdateComplaintInput) (*domain.Complaint, error) {
	if err := validateUpdate(in); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, domain.DecideScope(actor.Role), actor.ID, id, ports.ComplaintPatch{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Category:    strings.TrimSpace(in.Category),
		Location:    locationFrom(in.Latitude, in.Longitude),
		Status:      domain.ComplaintStatus(in.Status),
		EvidenceURL: in.EvidenceURL,
		UpdatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("complaint_id", id).Str("user_id", actor.ID).Msg("complaint updated")
	return updated, nil
}

func (s *ComplaintService) Delete(ctx context.Context, actor ports.Actor, id string) error {
	if err := s.repo.Delete(ctx, domain.DecideScope(actor.Role), actor.ID, id); err != nil {
		return err
	}
	metrics.ComplaintsDeletedTotal.Inc()
	s.logger.Info().Str("complaint_id", id).Str("user_id", actor.ID).Msg("complaint deleted")
	return nil
}

// Summary aggregates counts for the analytics endpoint.
func (s *ComplaintService) Summary(ctx context.Context) (*ports.ComplaintSummary, error) {
	byStatus, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	byCategory, err := s.repo.CountByCategory(ctx)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, n := range byStatus {
		total += n
	}
	return &ports.ComplaintSummary{
		Total:      total,
		ByStatus:   byStatus,
		ByCategory: byCategory,
	}, nil
}

func validateCreate(in ports.CreateComplaintInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if strings.TrimSpace(in.Description) == "" {
		return fmt.Errorf("%w: description is required", domain.ErrValidation)
	}
	if strings.TrimSpace(in.Category) == "" {
		return fmt.Errorf("%w: category is required", domain.ErrValidation)
	}
	if (in.Latitude == nil) != (in.Longitude == nil) {
		return fmt.Errorf("%w: latitude and longitude must be supplied together", domain.ErrValidation)
	}
	return nil
}

func validateUpdate(in ports.UpdateComplaintInput) error {
	if err := validateCreate(ports.CreateComplaintInput{
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
	}); err != nil {
		return err
	}
	if !domain.ComplaintStatus(in.Status).IsValid() {
		return fmt.Errorf("%w: status must be pending, in-progress or resolved", domain.ErrValidation)
	}
	return nil
}

func locationFrom(lat, lng *float64) *domain.Geolocation {
	if lat == nil || lng == nil {
		return nil
	}
	return &domain.Geolocation{Latitude: *lat, Longitude: *lng}
}
