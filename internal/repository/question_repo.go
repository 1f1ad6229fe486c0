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

//go:generate mockgen -package=mocks -destination=mocks/mock_question_repo.go -source=question_repo.go

// QuestionRepo persists trivia questions.
type QuestionRepo interface {
	Create(ctx context.Context, question *model.Question) error
	CreateMany(ctx context.Context, questions []*model.Question) (int, error)
	GetByID(ctx context.Context, id string) (*model.Question, error)
	ListByRoom(ctx context.Context, roomID string) ([]*model.Question, error)
	ListUnanswered(ctx context.Context, roomID, participantID string) ([]*model.Question, error)

	// AddSolver atomically adds the participant to the question's solvedBy
	// set, optionally marking the question solved. It reports false when
	// the participant was already present (or the question is missing),
	// leaving the document untouched. This single conditional update is
	// the double-credit gate.
	AddSolver(ctx context.Context, questionID, participantID string, markSolved bool) (bool, error)
}

type questionRepo struct {
	collection *mongo.Collection
}

// NewQuestionRepo creates a question repository over the given database.
func NewQuestionRepo(db *mongo.Database) QuestionRepo {
	return &questionRepo{
		collection: db.Collection("questions"),
	}
}

func (r *questionRepo) Create(ctx context.Context, question *model.Question) error {
	r.prepare(question)
	_, err := r.collection.InsertOne(ctx, question)
	return err
}

func (r *questionRepo) CreateMany(ctx context.Context, questions []*model.Question) (int, error) {
	docs := make([]interface{}, len(questions))
	for i, q := range questions {
		r.prepare(q)
		docs[i] = q
	}

	result, err := r.collection.InsertMany(ctx, docs)
	if err != nil {
		return 0, err
	}
	return len(result.InsertedIDs), nil
}

func (r *questionRepo) prepare(question *model.Question) {
	if question.ID == "" {
		question.ID = primitive.NewObjectID().Hex()
	}
	if question.SolvedBy == nil {
		question.SolvedBy = []string{}
	}
	now := time.Now()
	question.CreatedAt = now
	question.UpdatedAt = now
}

func (r *questionRepo) GetByID(ctx context.Context, id string) (*model.Question, error) {
	var question model.Question
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&question)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &question, nil
}

func (r *questionRepo) ListByRoom(ctx context.Context, roomID string) ([]*model.Question, error) {
	return r.list(ctx, bson.M{"roomId": roomID})
}

func (r *questionRepo) ListUnanswered(ctx context.Context, roomID, participantID string) ([]*model.Question, error) {
	return r.list(ctx, bson.M{
		"roomId":   roomID,
		"solvedBy": bson.M{"$ne": participantID},
	})
}

func (r *questionRepo) list(ctx context.Context, filter bson.M) ([]*model.Question, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "difficulty", Value: 1},
		{Key: "createdAt", Value: 1},
	})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var questions []*model.Question
	if err = cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepo) AddSolver(ctx context.Context, questionID, participantID string, markSolved bool) (bool, error) {
	set := bson.M{"updatedAt": time.Now()}
	if markSolved {
		set["isSolved"] = true
	}

	filter := bson.M{
		"_id":      questionID,
		"solvedBy": bson.M{"$ne": participantID},
	}
	update := bson.M{
		"$addToSet": bson.M{"solvedBy": participantID},
		"$set":      set,
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return result.ModifiedCount == 1, nil
}
