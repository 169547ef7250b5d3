package domain

import (
	"errors"
	"time"
)

// ComplaintStatus represents the lifecycle state of a complaint.
type ComplaintStatus string

const (
	StatusPending    ComplaintStatus = "pending"
	StatusInProgress ComplaintStatus = "in-progress"
	StatusResolved   ComplaintStatus = "resolved"
)

// NOTE: no transition rules are enforced between statuses. Any actor with
// write access may set any status; transition policy is still unresolved
// on the product side.

var ErrComplaintNotFound = errors.New("complaint not found")
var ErrValidation = errors.New("invalid input")

// IsValid reports whether s is one of the known statuses.
func (s ComplaintStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

// Geolocation represents an optional lat/lng pair attached to a complaint.
// Latitude and longitude always travel together.
type Geolocation struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

// Complaint is the core aggregate root: one citizen-filed grievance.
// OwnerID, ID and CreatedAt are immutable after creation.
type Complaint struct {
	ID          string          `json:"id" bson:"_id,omitempty"`
	OwnerID     string          `json:"user_id" bson:"user_id"`
	Title       string          `json:"title" bson:"title"`
	Description string          `json:"description" bson:"description"`
	Category    string          `json:"category" bson:"category"`
	Location    *Geolocation    `json:"location,omitempty" bson:"location,omitempty"`
	Status      ComplaintStatus `json:"status" bson:"status"`
	EvidenceURL string          `json:"evidence_url,omitempty" bson:"evidence_url,omitempty"`
	CreatedAt   time.Time       `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" bson:"updated_at"`
}
