package handler

import (
	"github.com/gramsetu/complaints-api/internal/core/domain"
	"github.com/gramsetu/complaints-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createComplaintRequest) ports.CreateComplaintInput {
	return ports.CreateComplaintInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		EvidenceURL: req.EvidenceURL,
	}
}

func toUpdateInput(req updateComplaintRequest) ports.UpdateComplaintInput {
	return ports.UpdateComplaintInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Status:      req.Status,
		EvidenceURL: req.EvidenceURL,
	}
}

// --- Domain → HTTP response ---

func toComplaintResponse(c *domain.Complaint) complaintResponse {
	resp := complaintResponse{
		ID:          c.ID,
		UserID:      c.OwnerID,
		Title:       c.Title,
		Description: c.Description,
		Category:    c.Category,
		Status:      string(c.Status),
		EvidenceURL: c.EvidenceURL,
		CreatedAt:   c.CreatedAt.UTC(),
		UpdatedAt:   c.UpdatedAt.UTC(),
	}
	if c.Location != nil {
		lat, lng := c.Location.Latitude, c.Location.Longitude
		resp.Latitude = &lat
		resp.Longitude = &lng
	}
	return resp
}

func toComplaintListResponse(complaints []*domain.Complaint) []complaintResponse {
	out := make([]complaintResponse, len(complaints))
	for i, c := range complaints {
		out[i] = toComplaintResponse(c)
	}
	return out
}

func toReputationResponse(r *domain.ReputationRecord) reputationResponse {
	return reputationResponse{
		UserID:         r.OwnerID,
		Score:          r.Score,
		ComplaintCount: r.ComplaintCount,
		ResolvedCount:  r.ResolvedCount,
	}
}

func toSummaryResponse(s *ports.ComplaintSummary) complaintSummaryResponse {
	return complaintSummaryResponse{
		Total:      s.Total,
		ByStatus:   s.ByStatus,
		ByCategory: s.ByCategory,
	}
}
