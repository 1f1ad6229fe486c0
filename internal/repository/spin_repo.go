package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"thrgacha/internal/model"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_spin_repo.go -source=spin_repo.go

// SpinRepo persists the append-only ledger of reward grants.
type SpinRepo interface {
	Create(ctx context.Context, record *model.SpinRecord) error
	ListByParticipant(ctx context.Context, roomID, participantID string) ([]*model.SpinRecord, error)
	ListByRoom(ctx context.Context, roomID string) ([]*model.SpinRecord, error)

	// AwardedCounts returns how many grants each tier has, keyed by tier
	// name. Tiers with no grants are absent.
	AwardedCounts(ctx context.Context, roomID string) (map[string]int, error)

	// TotalEarnings sums the amounts a participant has won in a room.
	TotalEarnings(ctx context.Context, roomID, participantID string) (float64, error)
}

type spinRepo struct {
	collection *mongo.Collection
}

// NewSpinRepo creates a spin ledger repository over the given database.
func NewSpinRepo(db *mongo.Database) SpinRepo {
	return &spinRepo{
		collection: db.Collection("spin_records"),
	}
}

func (r *spinRepo) Create(ctx context.Context, record *model.SpinRecord) error {
	if record.ID == "" {
		record.ID = primitive.NewObjectID().Hex()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, record)
	return err
}

func (r *spinRepo) ListByParticipant(ctx context.Context, roomID, participantID string) ([]*model.SpinRecord, error) {
	return r.list(ctx, bson.M{"roomId": roomID, "participantId": participantID})
}

func (r *spinRepo) ListByRoom(ctx context.Context, roomID string) ([]*model.SpinRecord, error) {
	return r.list(ctx, bson.M{"roomId": roomID})
}

func (r *spinRepo) list(ctx context.Context, filter bson.M) ([]*model.SpinRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*model.SpinRecord
	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *spinRepo) AwardedCounts(ctx context.Context, roomID string) (map[string]int, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"roomId": roomID}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$tierName",
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		TierName string `bson:"_id"`
		Count    int    `bson:"count"`
	}
	if err = cursor.All(ctx, &results); err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(results))
	for _, res := range results {
		counts[res.TierName] = res.Count
	}
	return counts, nil
}

func (r *spinRepo) TotalEarnings(ctx context.Context, roomID, participantID string) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"roomId": roomID, "participantId": participantID}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$thrAmount"},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err = cursor.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}
