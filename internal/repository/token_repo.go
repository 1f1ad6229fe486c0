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

//go:generate mockgen -package=mocks -destination=mocks/mock_token_repo.go -source=token_repo.go

// TokenRepo persists spin token balances, one document per
// (participant, room) pair. All mutations are single conditional updates
// so concurrent credits and debits cannot race a balance negative.
type TokenRepo interface {
	// Get returns the balance, creating a zero record if none exists.
	Get(ctx context.Context, participantID, roomID string) (*model.TokenBalance, error)

	// Credit adds amount and returns the new balance.
	Credit(ctx context.Context, participantID, roomID string, amount int) (*model.TokenBalance, error)

	// Debit subtracts amount only if the current count covers it. It
	// returns (nil, nil) when the balance is insufficient.
	Debit(ctx context.Context, participantID, roomID string, amount int) (*model.TokenBalance, error)

	// TotalTokens sums the outstanding token counts across a room.
	TotalTokens(ctx context.Context, roomID string) (int, error)
}

type tokenRepo struct {
	collection *mongo.Collection
}

// NewTokenRepo creates a token balance repository over the given database.
func NewTokenRepo(db *mongo.Database) TokenRepo {
	return &tokenRepo{
		collection: db.Collection("token_balances"),
	}
}

func (r *tokenRepo) key(participantID, roomID string) bson.M {
	return bson.M{"participantId": participantID, "roomId": roomID}
}

func (r *tokenRepo) Get(ctx context.Context, participantID, roomID string) (*model.TokenBalance, error) {
	update := bson.M{"$setOnInsert": bson.M{
		"_id":       primitive.NewObjectID().Hex(),
		"count":     0,
		"updatedAt": time.Now(),
	}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var balance model.TokenBalance
	err := r.collection.FindOneAndUpdate(ctx, r.key(participantID, roomID), update, opts).Decode(&balance)
	if err != nil {
		return nil, err
	}
	return &balance, nil
}

func (r *tokenRepo) Credit(ctx context.Context, participantID, roomID string, amount int) (*model.TokenBalance, error) {
	update := bson.M{
		"$inc":         bson.M{"count": amount},
		"$set":         bson.M{"updatedAt": time.Now()},
		"$setOnInsert": bson.M{"_id": primitive.NewObjectID().Hex()},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var balance model.TokenBalance
	err := r.collection.FindOneAndUpdate(ctx, r.key(participantID, roomID), update, opts).Decode(&balance)
	if err != nil {
		return nil, err
	}
	return &balance, nil
}

func (r *tokenRepo) Debit(ctx context.Context, participantID, roomID string, amount int) (*model.TokenBalance, error) {
	filter := bson.M{
		"participantId": participantID,
		"roomId":        roomID,
		"count":         bson.M{"$gte": amount},
	}
	update := bson.M{
		"$inc": bson.M{"count": -amount},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var balance model.TokenBalance
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&balance)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &balance, nil
}

func (r *tokenRepo) TotalTokens(ctx context.Context, roomID string) (int, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"roomId": roomID}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$count"},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total int `bson:"total"`
	}
	if err = cursor.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}
