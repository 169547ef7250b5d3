package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gramsetu/complaints-api/internal/core/domain"
)

const collectionReputation = "citizen_reputation_scores"

type ReputationRepository struct {
	col *mongo.Collection
}

func NewReputationRepository(db *mongo.Database) *ReputationRepository {
	return &ReputationRepository{col: db.Collection(collectionReputation)}
}

// Ensure upserts the owner's reputation record. $setOnInsert makes the
// operation a no-op when the record already exists, and the unique index on
// user_id makes concurrent upserts for the same owner converge on a single
// document.
func (r *ReputationRepository) Ensure(ctx context.Context, ownerID string) (*domain.ReputationRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{
		"$setOnInsert": bson.M{
			"user_id":         ownerID,
			"score":           domain.DefaultReputationScore,
			"complaint_count": 0,
			"resolved_count":  0,
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var rec domain.ReputationRecord
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"user_id": ownerID}, update, opts).Decode(&rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// FindByOwner returns the owner's record, or (nil, nil) when none exists.
func (r *ReputationRepository) FindByOwner(ctx context.Context, ownerID string) (*domain.ReputationRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var rec domain.ReputationRecord
	err := r.col.FindOne(ctx, bson.M{"user_id": ownerID}).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// EnsureIndexes creates the unique key the upsert relies on.
func (r *ReputationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
