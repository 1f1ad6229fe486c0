package service

import (
	"context"
	"fmt"

	"thrgacha/internal/model"
	"thrgacha/internal/repository"
)

// QuestionService handles question management and answer submission.
type QuestionService struct {
	questionRepo repository.QuestionRepo
	roomRepo     repository.RoomRepo
	tokenSvc     *TokenService
}

// NewQuestionService creates a new question service.
func NewQuestionService(questionRepo repository.QuestionRepo, roomRepo repository.RoomRepo, tokenSvc *TokenService) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		roomRepo:     roomRepo,
		tokenSvc:     tokenSvc,
	}
}

// QuestionInput describes a new question.
type QuestionInput struct {
	Content       string           `json:"content"`
	Options       []string         `json:"options"`
	CorrectAnswer int              `json:"correctAnswer"`
	Difficulty    model.Difficulty `json:"difficulty"`
}

// CreateQuestion validates and persists one question.
func (s *QuestionService) CreateQuestion(ctx context.Context, roomID string, input *QuestionInput) (*model.Question, error) {
	questions, err := s.buildQuestions(ctx, roomID, []*QuestionInput{input})
	if err != nil {
		return nil, err
	}

	if err := s.questionRepo.Create(ctx, questions[0]); err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}
	return questions[0], nil
}

// BulkCreateQuestions validates and persists a batch of questions,
// returning how many were inserted. The batch is all-or-nothing on
// validation: one bad question rejects the upload.
func (s *QuestionService) BulkCreateQuestions(ctx context.Context, roomID string, inputs []*QuestionInput) (int, error) {
	if len(inputs) == 0 {
		return 0, fmt.Errorf("%w: no questions provided", ErrValidation)
	}

	questions, err := s.buildQuestions(ctx, roomID, inputs)
	if err != nil {
		return 0, err
	}

	count, err := s.questionRepo.CreateMany(ctx, questions)
	if err != nil {
		return 0, fmt.Errorf("failed to create questions: %w", err)
	}
	return count, nil
}

func (s *QuestionService) buildQuestions(ctx context.Context, roomID string, inputs []*QuestionInput) ([]*model.Question, error) {
	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to get room: %w", err)
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	questions := make([]*model.Question, len(inputs))
	for i, input := range inputs {
		question := &model.Question{
			RoomID:        room.ID,
			Content:       input.Content,
			Options:       input.Options,
			CorrectAnswer: input.CorrectAnswer,
			Difficulty:    input.Difficulty,
		}
		if err := question.Validate(); err != nil {
			return nil, fmt.Errorf("%w: question %d: %v", ErrValidation, i+1, err)
		}
		questions[i] = question
	}
	return questions, nil
}

// ListQuestions returns all of a room's questions sorted by difficulty
// then creation time.
func (s *QuestionService) ListQuestions(ctx context.Context, roomID string) ([]*model.Question, error) {
	questions, err := s.questionRepo.ListByRoom(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return questions, nil
}

// ListActiveQuestions returns the questions the participant has not yet
// attempted.
func (s *QuestionService) ListActiveQuestions(ctx context.Context, roomID, participantID string) ([]*model.Question, error) {
	questions, err := s.questionRepo.ListUnanswered(ctx, roomID, participantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active questions: %w", err)
	}
	return questions, nil
}

// SubmitAnswer records one answer attempt. Each participant gets exactly
// one attempt per question, right or wrong; a correct answer earns one
// spin token. The membership check and mutation are a single atomic
// update, so a double submit cannot be credited twice.
func (s *QuestionService) SubmitAnswer(ctx context.Context, questionID, participantID string, answerIndex int) (bool, error) {
	question, err := s.questionRepo.GetByID(ctx, questionID)
	if err != nil {
		return false, fmt.Errorf("failed to get question: %w", err)
	}
	if question == nil {
		return false, ErrQuestionNotFound
	}

	if answerIndex < 0 || answerIndex >= len(question.Options) {
		return false, fmt.Errorf("%w: answer index %d out of range", ErrValidation, answerIndex)
	}

	isCorrect := question.CorrectAnswer == answerIndex

	added, err := s.questionRepo.AddSolver(ctx, questionID, participantID, isCorrect)
	if err != nil {
		return false, fmt.Errorf("failed to record answer: %w", err)
	}
	if !added {
		return false, ErrAlreadyAnswered
	}

	if isCorrect {
		if _, err := s.tokenSvc.Credit(ctx, participantID, question.RoomID, 1); err != nil {
			return false, fmt.Errorf("failed to award token: %w", err)
		}
	}

	return isCorrect, nil
}
