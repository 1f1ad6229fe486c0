package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"thrgacha/internal/cache"
	"thrgacha/internal/gacha"
	"thrgacha/internal/model"
	"thrgacha/internal/repository"
)

// SpinService orchestrates the reward wheel: debit a token, draw a tier
// against live awarded counts, append the grant. The three steps are not
// one transaction; each is individually atomic and a failed draw refunds
// the token.
type SpinService struct {
	roomRepo   repository.RoomRepo
	spinRepo   repository.SpinRepo
	tokenSvc   *TokenService
	selector   *gacha.Selector
	earnings   cache.EarningsCache
	statsCache cache.StatsCache
	logger     *zap.Logger
}

// NewSpinService creates a new spin service.
func NewSpinService(
	roomRepo repository.RoomRepo,
	spinRepo repository.SpinRepo,
	tokenSvc *TokenService,
	selector *gacha.Selector,
	earnings cache.EarningsCache,
	statsCache cache.StatsCache,
	logger *zap.Logger,
) *SpinService {
	return &SpinService{
		roomRepo:   roomRepo,
		spinRepo:   spinRepo,
		tokenSvc:   tokenSvc,
		selector:   selector,
		earnings:   earnings,
		statsCache: statsCache,
		logger:     logger,
	}
}

// Spin consumes one token and awards a reward tier.
func (s *SpinService) Spin(ctx context.Context, participantID, roomID string) (*model.SpinResult, error) {
	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to get room: %w", err)
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	// Debit first so a concurrent spin cannot ride the same token. Every
	// failure after this point must refund.
	balance, err := s.tokenSvc.Debit(ctx, participantID, roomID, 1)
	if err != nil {
		return nil, err
	}

	awarded, err := s.spinRepo.AwardedCounts(ctx, room.ID)
	if err != nil {
		s.refund(ctx, participantID, roomID)
		return nil, fmt.Errorf("failed to get awarded counts: %w", err)
	}

	tier, err := s.selector.Select(room.WeightingMode, room.RewardTiers, awarded)
	if err != nil {
		s.refund(ctx, participantID, roomID)
		if errors.Is(err, gacha.ErrNoTiersAvailable) {
			return nil, ErrNoRewardsAvailable
		}
		return nil, fmt.Errorf("failed to select reward tier: %w", err)
	}

	record := &model.SpinRecord{
		ParticipantID: participantID,
		RoomID:        room.ID,
		TierName:      tier.Name,
		THRAmount:     tier.THRAmount,
	}
	if err := s.spinRepo.Create(ctx, record); err != nil {
		s.refund(ctx, participantID, roomID)
		return nil, fmt.Errorf("failed to record spin: %w", err)
	}

	// The grant changed the room; drop the stats snapshot so the next
	// dashboard read recomputes.
	if err := s.statsCache.Invalidate(ctx, room.ID); err != nil {
		s.logger.Warn("stats cache invalidation failed",
			zap.String("room_id", room.ID),
			zap.Error(err))
	}

	var rank int64
	if err := s.earnings.AddEarnings(ctx, room.ID, participantID, tier.THRAmount); err != nil {
		s.logger.Warn("earnings cache update failed",
			zap.String("room_id", room.ID),
			zap.String("participant_id", participantID),
			zap.Error(err))
	} else if rank, err = s.earnings.GetRank(ctx, room.ID, participantID); err != nil {
		s.logger.Warn("earnings rank lookup failed",
			zap.String("room_id", room.ID),
			zap.String("participant_id", participantID),
			zap.Error(err))
		rank = 0
	}

	total, err := s.spinRepo.TotalEarnings(ctx, room.ID, participantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get total earnings: %w", err)
	}

	return &model.SpinResult{
		TierName:      tier.Name,
		THRAmount:     tier.THRAmount,
		TokensLeft:    balance.Count,
		TotalEarnings: total,
		Rank:          rank,
	}, nil
}

// History returns a participant's spins in a room with the running total,
// newest first.
func (s *SpinService) History(ctx context.Context, participantID, roomID string) (*model.SpinHistory, error) {
	spins, err := s.spinRepo.ListByParticipant(ctx, roomID, participantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list spins: %w", err)
	}

	total, err := s.spinRepo.TotalEarnings(ctx, roomID, participantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get total earnings: %w", err)
	}

	if spins == nil {
		spins = []*model.SpinRecord{}
	}
	return &model.SpinHistory{
		Spins:         spins,
		TotalEarnings: total,
	}, nil
}

// refund compensates an aborted spin. A failed refund means a token was
// consumed with no reward; log loudly, there is no further recourse here.
func (s *SpinService) refund(ctx context.Context, participantID, roomID string) {
	if _, err := s.tokenSvc.Credit(ctx, participantID, roomID, 1); err != nil {
		s.logger.Error("spin refund failed",
			zap.String("room_id", roomID),
			zap.String("participant_id", participantID),
			zap.Error(err))
	}
}
