package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"thrgacha/internal/model"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_participant_repo.go -source=participant_repo.go

// ParticipantRepo persists participant identities. IDs are minted by the
// caller so an identity can be bound to an entry code before insertion.
type ParticipantRepo interface {
	Create(ctx context.Context, participant *model.Participant) error
	GetByID(ctx context.Context, id string) (*model.Participant, error)
	Delete(ctx context.Context, id string) error
}

type participantRepo struct {
	collection *mongo.Collection
}

// NewParticipantRepo creates a participant repository over the given database.
func NewParticipantRepo(db *mongo.Database) ParticipantRepo {
	return &participantRepo{
		collection: db.Collection("participants"),
	}
}

func (r *participantRepo) Create(ctx context.Context, participant *model.Participant) error {
	if participant.CreatedAt.IsZero() {
		participant.CreatedAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, participant)
	return err
}

func (r *participantRepo) GetByID(ctx context.Context, id string) (*model.Participant, error) {
	var participant model.Participant
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&participant)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &participant, nil
}

func (r *participantRepo) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
