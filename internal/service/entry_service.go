package service

import (
	"context"
	"crypto/rand"
	"fmt"

	"github.com/google/uuid"

	"thrgacha/internal/model"
	"thrgacha/internal/repository"
)

const maxEntryBatch = 200

// EntryService manages entry codes: batch creation by the admin and the
// validate/activate flow that admits participants. An entry code binds to
// exactly one participant identity, ever; retried activations return the
// existing binding.
type EntryService struct {
	entryRepo       repository.EntryRepo
	participantRepo repository.ParticipantRepo
	roomRepo        repository.RoomRepo
	appBaseURL      string
}

// NewEntryService creates a new entry service. appBaseURL is used to build
// the join URLs handed to the QR layer.
func NewEntryService(entryRepo repository.EntryRepo, participantRepo repository.ParticipantRepo, roomRepo repository.RoomRepo, appBaseURL string) *EntryService {
	return &EntryService{
		entryRepo:       entryRepo,
		participantRepo: participantRepo,
		roomRepo:        roomRepo,
		appBaseURL:      appBaseURL,
	}
}

// EntryWithURL pairs a created entry with its join URL.
type EntryWithURL struct {
	*model.EntryCode
	EntryURL string `json:"entryUrl"`
}

// CreateEntries provisions count entry codes named "{baseName} 1..N".
func (s *EntryService) CreateEntries(ctx context.Context, roomID, baseName string, count int) ([]*EntryWithURL, error) {
	if baseName == "" {
		return nil, fmt.Errorf("%w: entry name is required", ErrValidation)
	}
	if count < 1 || count > maxEntryBatch {
		return nil, fmt.Errorf("%w: count must be between 1 and %d", ErrValidation, maxEntryBatch)
	}

	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to get room: %w", err)
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	entries := make([]*model.EntryCode, count)
	for i := 0; i < count; i++ {
		code, err := s.generateEntryCode(ctx, room.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to generate entry code: %w", err)
		}
		entries[i] = &model.EntryCode{
			RoomID:     room.ID,
			Code:       code,
			Name:       fmt.Sprintf("%s %d", baseName, i+1),
			IsActive:   true,
			HasEntered: false,
		}
	}

	if err := s.entryRepo.CreateMany(ctx, entries); err != nil {
		return nil, fmt.Errorf("failed to create entries: %w", err)
	}

	result := make([]*EntryWithURL, count)
	for i, entry := range entries {
		result[i] = &EntryWithURL{
			EntryCode: entry,
			EntryURL:  fmt.Sprintf("%s/game/%s?code=%s", s.appBaseURL, room.ID, entry.Code),
		}
	}
	return result, nil
}

// ListEntries returns all entry codes of a room, newest first.
func (s *EntryService) ListEntries(ctx context.Context, roomID string) ([]*model.EntryCode, error) {
	entries, err := s.entryRepo.ListByRoom(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	return entries, nil
}

// Validate checks an entry code without mutating anything. An activated
// code returns its bound participant so a returning visitor resumes the
// same identity.
func (s *EntryService) Validate(ctx context.Context, roomID, code string) (*model.EntryLookupResult, error) {
	entry, err := s.entryRepo.GetByCode(ctx, roomID, code)
	if err != nil {
		return nil, fmt.Errorf("failed to look up entry: %w", err)
	}
	if entry == nil || !entry.IsActive {
		return nil, ErrInvalidEntryCode
	}

	result := &model.EntryLookupResult{Entry: entry}
	if entry.HasEntered && entry.ParticipantID != "" {
		participant, err := s.participantRepo.GetByID(ctx, entry.ParticipantID)
		if err != nil {
			return nil, fmt.Errorf("failed to get participant: %w", err)
		}
		result.Participant = participant
	}
	return result, nil
}

// Activate mints a participant identity for an unused code, or returns the
// existing binding if the code was already activated. The UNUSED to
// ACTIVATED flip is a single conditional update; if a concurrent request
// wins the flip, the freshly created participant is discarded and the
// winner's binding is returned, so one code never yields two identities.
func (s *EntryService) Activate(ctx context.Context, roomID, code, displayName string) (*model.Participant, error) {
	entry, err := s.entryRepo.GetByCode(ctx, roomID, code)
	if err != nil {
		return nil, fmt.Errorf("failed to look up entry: %w", err)
	}
	if entry == nil || !entry.IsActive {
		return nil, ErrInvalidEntryCode
	}

	if entry.HasEntered && entry.ParticipantID != "" {
		return s.boundParticipant(ctx, entry)
	}

	name := displayName
	if name == "" {
		name = entry.Name
	}
	participant := &model.Participant{
		ID:     "p_" + uuid.New().String()[:8],
		RoomID: entry.RoomID,
		Name:   name,
	}
	if err := s.participantRepo.Create(ctx, participant); err != nil {
		return nil, fmt.Errorf("failed to create participant: %w", err)
	}

	flipped, err := s.entryRepo.MarkEntered(ctx, roomID, code, participant.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to activate entry: %w", err)
	}
	if flipped == nil {
		// Lost the activation race. Discard our identity and return
		// whatever the winner bound.
		_ = s.participantRepo.Delete(ctx, participant.ID)

		entry, err = s.entryRepo.GetByCode(ctx, roomID, code)
		if err != nil {
			return nil, fmt.Errorf("failed to re-read entry: %w", err)
		}
		if entry == nil || entry.ParticipantID == "" {
			return nil, ErrInvalidEntryCode
		}
		return s.boundParticipant(ctx, entry)
	}

	return participant, nil
}

func (s *EntryService) boundParticipant(ctx context.Context, entry *model.EntryCode) (*model.Participant, error) {
	participant, err := s.participantRepo.GetByID(ctx, entry.ParticipantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}
	if participant == nil {
		return nil, fmt.Errorf("entry %s bound to missing participant %s", entry.Code, entry.ParticipantID)
	}
	return participant, nil
}

// generateEntryCode creates a "C-" prefixed 5-char code unique within the
// room.
func (s *EntryService) generateEntryCode(ctx context.Context, roomID string) (string, error) {
	const chars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	const codeLen = 5

	for attempts := 0; attempts < 10; attempts++ {
		b := make([]byte, codeLen)
		if _, err := rand.Read(b); err != nil {
			return "", err
		}

		code := make([]byte, codeLen)
		for i := range code {
			code[i] = chars[int(b[i])%len(chars)]
		}
		codeStr := "C-" + string(code)

		existing, err := s.entryRepo.GetByCode(ctx, roomID, codeStr)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return codeStr, nil
		}
	}

	return "", fmt.Errorf("failed to generate unique entry code")
}
