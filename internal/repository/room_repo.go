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

//go:generate mockgen -package=mocks -destination=mocks/mock_room_repo.go -source=room_repo.go

// RoomRepo persists game rooms.
type RoomRepo interface {
	Create(ctx context.Context, room *model.Room) error
	GetByID(ctx context.Context, id string) (*model.Room, error)
	GetByCode(ctx context.Context, code string) (*model.Room, error)
	ListByCreator(ctx context.Context, creatorID string) ([]*model.Room, error)
	UpdateTiers(ctx context.Context, roomID string, mode model.TierWeightingMode, tiers []model.RewardTier) error
}

type roomRepo struct {
	collection *mongo.Collection
}

// NewRoomRepo creates a room repository over the given database.
func NewRoomRepo(db *mongo.Database) RoomRepo {
	return &roomRepo{
		collection: db.Collection("rooms"),
	}
}

func (r *roomRepo) Create(ctx context.Context, room *model.Room) error {
	if room.ID == "" {
		room.ID = primitive.NewObjectID().Hex()
	}
	now := time.Now()
	room.CreatedAt = now
	room.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, room)
	return err
}

func (r *roomRepo) GetByID(ctx context.Context, id string) (*model.Room, error) {
	var room model.Room
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&room)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &room, nil
}

func (r *roomRepo) GetByCode(ctx context.Context, code string) (*model.Room, error) {
	var room model.Room
	err := r.collection.FindOne(ctx, bson.M{"code": code}).Decode(&room)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &room, nil
}

func (r *roomRepo) ListByCreator(ctx context.Context, creatorID string) ([]*model.Room, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"createdBy": creatorID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rooms []*model.Room
	if err = cursor.All(ctx, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *roomRepo) UpdateTiers(ctx context.Context, roomID string, mode model.TierWeightingMode, tiers []model.RewardTier) error {
	update := bson.M{"$set": bson.M{
		"weightingMode": mode,
		"rewardTiers":   tiers,
		"updatedAt":     time.Now(),
	}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": roomID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
