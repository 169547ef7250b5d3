package domain

// Reputation defaults applied when a record is first created.
const (
	DefaultReputationScore = 100
)

// ReputationRecord tracks a citizen's standing. One record per owner,
// created lazily the first time that citizen files a complaint. Counters
// are never decremented.
type ReputationRecord struct {
	OwnerID        string `json:"user_id" bson:"user_id"`
	Score          int    `json:"score" bson:"score"`
	ComplaintCount int    `json:"complaint_count" bson:"complaint_count"`
	ResolvedCount  int    `json:"resolved_count" bson:"resolved_count"`
}

// DefaultReputation returns the record a brand-new citizen starts with.
func DefaultReputation(ownerID string) *ReputationRecord {
	return &ReputationRecord{
		OwnerID:        ownerID,
		Score:          DefaultReputationScore,
		ComplaintCount: 0,
		ResolvedCount:  0,
	}
}
