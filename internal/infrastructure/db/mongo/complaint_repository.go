package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gramsetu/complaints-api/internal/core/domain"
	"github.com/gramsetu/complaints-api/internal/core/ports"
)

const collectionComplaints = "complaints"

type ComplaintRepository struct {
	col *mongo.Collection
}

func NewComplaintRepository(db *mongo.Database) *ComplaintRepository {
	return &ComplaintRepository{col: db.Collection(collectionComplaints)}
}

// scopedFilter builds the lookup filter for single-record operations. Under
// ScopeOwnedOnly the filter requires ownership, so "exists but not yours"
// and "does not exist" produce the same empty result.
func scopedFilter(scope domain.Scope, actorID, id string) bson.M {
	filter := bson.M{"_id": id}
	if scope == domain.ScopeOwnedOnly {
		filter["user_id"] = actorID
	}
	return filter
}

// Insert persists a new complaint, assigning its identifier.
func (r *ComplaintRepository) Insert(ctx context.Context, c *domain.Complaint) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	_, err := r.col.InsertOne(ctx, c)
	return err
}

// List returns complaints matching filter, newest first, capped at
// filter.Limit. An empty result decodes to an empty slice, never an error.
func (r *ComplaintRepository) List(ctx context.Context, f ports.ListComplaintsFilter) ([]*domain.Complaint, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if f.Scope == domain.ScopeOwnedOnly {
		filter["user_id"] = f.ActorID
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.Category != "" {
		filter["category"] = f.Category
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(f.Limit)

	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	complaints := make([]*domain.Complaint, 0)
	if err := cursor.All(ctx, &complaints); err != nil {
		return nil, err
	}
	return complaints, nil
}

func (r *ComplaintRepository) FindByID(ctx context.Context, scope domain.Scope, actorID, id string) (*domain.Complaint, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.Complaint
	err := r.col.FindOne(ctx, scopedFilter(scope, actorID, id)).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrComplaintNotFound
		}
		return nil, err
	}
	return &c, nil
}

// Update overwrites the mutable fields in a single conditional write: the
// scope condition lives in the update filter itself, so there is no window
// between the ownership check and the mutation.
func (r *ComplaintRepository) Update(ctx context.Context, scope domain.Scope, actorID, id string, patch ports.ComplaintPatch) (*domain.Complaint, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{
		"title":        patch.Title,
		"description":  patch.Description,
		"category":     patch.Category,
		"status":       string(patch.Status),
		"evidence_url": patch.EvidenceURL,
		"updated_at":   patch.UpdatedAt,
	}
	update := bson.M{"$set": set}
	if patch.Location != nil {
		set["location"] = patch.Location
	} else {
		update["$unset"] = bson.M{"location": ""}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var c domain.Complaint
	err := r.col.FindOneAndUpdate(ctx, scopedFilter(scope, actorID, id), update, opts).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrComplaintNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *ComplaintRepository) Delete(ctx context.Context, scope domain.Scope, actorID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, scopedFilter(scope, actorID, id))
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrComplaintNotFound
	}
	return nil
}

// CountByStatus groups all complaints by status.
func (r *ComplaintRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	return r.countBy(ctx, "$status")
}

// CountByCategory groups all complaints by category.
func (r *ComplaintRepository) CountByCategory(ctx context.Context) (map[string]int64, error) {
	return r.countBy(ctx, "$category")
}

func (r *ComplaintRepository) countBy(ctx context.Context, field string) (map[string]int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": field, "count": bson.M{"$sum": 1}}}},
	}
	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Key   string `bson:"_id"`
		Count int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Key] = row.Count
	}
	return counts, nil
}

// EnsureIndexes creates the indexes backing scoped queries and list sorting.
func (r *ComplaintRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
