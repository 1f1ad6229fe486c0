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

//go:generate mockgen -package=mocks -destination=mocks/mock_entry_repo.go -source=entry_repo.go

// EntryRepo persists entry codes. Codes are unique within a room.
type EntryRepo interface {
	CreateMany(ctx context.Context, entries []*model.EntryCode) error
	GetByCode(ctx context.Context, roomID, code string) (*model.EntryCode, error)
	ListByRoom(ctx context.Context, roomID string) ([]*model.EntryCode, error)
	ListEntered(ctx context.Context, roomID string) ([]*model.EntryCode, error)

	// MarkEntered flips an unused active code to entered and binds the
	// participant in a single conditional update. It returns (nil, nil)
	// when the code does not exist, is revoked, or was already entered —
	// the caller resolves a lost activation race by reading the code back.
	MarkEntered(ctx context.Context, roomID, code, participantID string) (*model.EntryCode, error)
}

type entryRepo struct {
	collection *mongo.Collection
}

// NewEntryRepo creates an entry code repository over the given database.
func NewEntryRepo(db *mongo.Database) EntryRepo {
	return &entryRepo{
		collection: db.Collection("entry_codes"),
	}
}

func (r *entryRepo) CreateMany(ctx context.Context, entries []*model.EntryCode) error {
	now := time.Now()
	docs := make([]interface{}, len(entries))
	for i, entry := range entries {
		if entry.ID == "" {
			entry.ID = primitive.NewObjectID().Hex()
		}
		entry.CreatedAt = now
		entry.UpdatedAt = now
		docs[i] = entry
	}

	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

func (r *entryRepo) GetByCode(ctx context.Context, roomID, code string) (*model.EntryCode, error) {
	var entry model.EntryCode
	err := r.collection.FindOne(ctx, bson.M{"roomId": roomID, "code": code}).Decode(&entry)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *entryRepo) ListByRoom(ctx context.Context, roomID string) ([]*model.EntryCode, error) {
	return r.list(ctx, bson.M{"roomId": roomID})
}

func (r *entryRepo) ListEntered(ctx context.Context, roomID string) ([]*model.EntryCode, error) {
	return r.list(ctx, bson.M{"roomId": roomID, "hasEntered": true})
}

func (r *entryRepo) list(ctx context.Context, filter bson.M) ([]*model.EntryCode, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []*model.EntryCode
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *entryRepo) MarkEntered(ctx context.Context, roomID, code, participantID string) (*model.EntryCode, error) {
	filter := bson.M{
		"roomId":     roomID,
		"code":       code,
		"isActive":   true,
		"hasEntered": false,
	}
	update := bson.M{"$set": bson.M{
		"hasEntered":    true,
		"participantId": participantID,
		"updatedAt":     time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var entry model.EntryCode
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&entry)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}
