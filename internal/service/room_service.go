package service

import (
	"context"
	"crypto/rand"
	"fmt"

	"thrgacha/internal/model"
	"thrgacha/internal/repository"
)

// RoomService handles game room lifecycle operations.
type RoomService struct {
	roomRepo repository.RoomRepo
}

// NewRoomService creates a new room service.
func NewRoomService(roomRepo repository.RoomRepo) *RoomService {
	return &RoomService{
		roomRepo: roomRepo,
	}
}

// CreateRoomInput describes a new room.
type CreateRoomInput struct {
	Name          string                  `json:"name"`
	Description   string                  `json:"description"`
	CreatedBy     string                  `json:"createdBy"`
	WeightingMode model.TierWeightingMode `json:"weightingMode"`
	RewardTiers   []model.RewardTier      `json:"rewardTiers"`
}

// CreateRoom validates the tier definition, generates a unique room code
// and persists the room.
func (s *RoomService) CreateRoom(ctx context.Context, input *CreateRoomInput) (*model.Room, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: room name is required", ErrValidation)
	}
	if input.CreatedBy == "" {
		return nil, fmt.Errorf("%w: creator is required", ErrValidation)
	}

	mode := input.WeightingMode
	if mode == "" {
		mode = model.WeightingCapacity
	}
	if mode != model.WeightingCapacity && mode != model.WeightingProbability {
		return nil, fmt.Errorf("%w: unknown weighting mode %q", ErrValidation, mode)
	}
	if err := model.ValidateRewardTiers(mode, input.RewardTiers); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	code, err := s.generateRoomCode(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate room code: %w", err)
	}

	room := &model.Room{
		Name:          input.Name,
		Code:          code,
		Description:   input.Description,
		CreatedBy:     input.CreatedBy,
		IsActive:      true,
		WeightingMode: mode,
		RewardTiers:   input.RewardTiers,
	}

	if err := s.roomRepo.Create(ctx, room); err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}
	return room, nil
}

// GetRoom retrieves a room by ID, falling back to the room code.
func (s *RoomService) GetRoom(ctx context.Context, idOrCode string) (*model.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, idOrCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get room: %w", err)
	}
	if room == nil {
		room, err = s.roomRepo.GetByCode(ctx, idOrCode)
		if err != nil {
			return nil, fmt.Errorf("failed to get room by code: %w", err)
		}
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

// ListRooms returns the rooms created by one admin, newest first.
func (s *RoomService) ListRooms(ctx context.Context, creatorID string) ([]*model.Room, error) {
	rooms, err := s.roomRepo.ListByCreator(ctx, creatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

// UpdateRewardTiers replaces a room's tier definition. This is the only
// operation that mutates tiers; the spin flow never does.
func (s *RoomService) UpdateRewardTiers(ctx context.Context, roomID string, mode model.TierWeightingMode, tiers []model.RewardTier) (*model.Room, error) {
	room, err := s.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	if mode == "" {
		mode = room.WeightingMode
	}
	if err := model.ValidateRewardTiers(mode, tiers); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if err := s.roomRepo.UpdateTiers(ctx, room.ID, mode, tiers); err != nil {
		return nil, fmt.Errorf("failed to update tiers: %w", err)
	}

	room.WeightingMode = mode
	room.RewardTiers = tiers
	return room, nil
}

// generateRoomCode creates a 6-char alphanumeric code, retrying on the
// unlikely collision with an existing room.
func (s *RoomService) generateRoomCode(ctx context.Context) (string, error) {
	const chars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	const codeLen = 6

	for attempts := 0; attempts < 10; attempts++ {
		b := make([]byte, codeLen)
		if _, err := rand.Read(b); err != nil {
			return "", err
		}

		code := make([]byte, codeLen)
		for i := range code {
			code[i] = chars[int(b[i])%len(chars)]
		}
		codeStr := string(code)

		existing, err := s.roomRepo.GetByCode(ctx, codeStr)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return codeStr, nil
		}
	}

	return "", fmt.Errorf("failed to generate unique room code")
}
