package service

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"thrgacha/internal/cache"
	"thrgacha/internal/model"
	"thrgacha/internal/repository"
)

// StatsService derives admin-facing reports by combining the room,
// question, entry, token and spin stores. Reads are not cross-store
// locked; reports may lag concurrent play, which is fine for reporting.
type StatsService struct {
	roomRepo     repository.RoomRepo
	questionRepo repository.QuestionRepo
	entryRepo    repository.EntryRepo
	tokenRepo    repository.TokenRepo
	spinRepo     repository.SpinRepo
	statsCache   cache.StatsCache
	earnings     cache.EarningsCache
	logger       *zap.Logger
}

// NewStatsService creates a new statistics service.
func NewStatsService(
	roomRepo repository.RoomRepo,
	questionRepo repository.QuestionRepo,
	entryRepo repository.EntryRepo,
	tokenRepo repository.TokenRepo,
	spinRepo repository.SpinRepo,
	statsCache cache.StatsCache,
	earnings cache.EarningsCache,
	logger *zap.Logger,
) *StatsService {
	return &StatsService{
		roomRepo:     roomRepo,
		questionRepo: questionRepo,
		entryRepo:    entryRepo,
		tokenRepo:    tokenRepo,
		spinRepo:     spinRepo,
		statsCache:   statsCache,
		earnings:     earnings,
		logger:       logger,
	}
}

// RoomStatistics builds the room summary, serving a cached snapshot when
// one is fresh.
func (s *StatsService) RoomStatistics(ctx context.Context, roomID string) (*model.RoomStatistics, error) {
	if cached, err := s.statsCache.GetSnapshot(ctx, roomID); err != nil {
		s.logger.Warn("stats cache read failed", zap.String("room_id", roomID), zap.Error(err))
	} else if cached != nil {
		return cached, nil
	}

	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to get room: %w", err)
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	questions, err := s.questionRepo.ListByRoom(ctx, room.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	entries, err := s.entryRepo.ListByRoom(ctx, room.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	spins, err := s.spinRepo.ListByRoom(ctx, room.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list spins: %w", err)
	}
	outstanding, err := s.tokenRepo.TotalTokens(ctx, room.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to total tokens: %w", err)
	}

	stats := &model.RoomStatistics{
		TotalEntries: len(entries),
		QuestionStats: map[model.Difficulty]model.DifficultyStats{
			model.DifficultyBronze: {},
			model.DifficultySilver: {},
			model.DifficultyGold:   {},
		},
		TotalQuestions:  len(questions),
		TotalTokensUsed: len(spins),
	}

	for _, entry := range entries {
		if entry.HasEntered {
			stats.ActiveParticipants++
		}
	}

	for _, q := range questions {
		ds := stats.QuestionStats[q.Difficulty]
		ds.Total++
		if q.IsSolved {
			ds.Solved++
			stats.SolvedQuestions++
		}
		stats.QuestionStats[q.Difficulty] = ds
	}

	// Tokens awarded = outstanding balances plus every token spent on a
	// spin; the ledger is the only token source.
	stats.TotalTokensAwarded = outstanding + len(spins)

	awarded := map[string]int{}
	totals := map[string]float64{}
	for _, spin := range spins {
		awarded[spin.TierName]++
		totals[spin.TierName] += spin.THRAmount
		stats.TotalTHRAwarded += spin.THRAmount
	}

	stats.RewardDistribution = make([]model.TierDistribution, len(room.RewardTiers))
	for i, tier := range room.RewardTiers {
		stats.RewardDistribution[i] = model.TierDistribution{
			Name:      tier.Name,
			THRAmount: tier.THRAmount,
			Defined:   tier.Weight,
			Awarded:   awarded[tier.Name],
			Remaining: tier.Weight - awarded[tier.Name],
			Total:     totals[tier.Name],
		}
	}

	if err := s.statsCache.SetSnapshot(ctx, roomID, stats); err != nil {
		s.logger.Warn("stats cache write failed", zap.String("room_id", roomID), zap.Error(err))
	}
	return stats, nil
}

// QuestionStatistics returns each question with the participants who
// attempted it.
func (s *StatsService) QuestionStatistics(ctx context.Context, roomID string) ([]*model.QuestionStats, error) {
	questions, err := s.questionRepo.ListByRoom(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	names, err := s.participantNames(ctx, roomID)
	if err != nil {
		return nil, err
	}

	stats := make([]*model.QuestionStats, len(questions))
	for i, q := range questions {
		solvers := make([]model.SolverDetail, len(q.SolvedBy))
		for j, pid := range q.SolvedBy {
			name := names[pid]
			if name == "" {
				name = "Unknown"
			}
			solvers[j] = model.SolverDetail{
				ParticipantID: pid,
				Name:          name,
				SolvedAt:      q.UpdatedAt,
			}
		}
		stats[i] = &model.QuestionStats{
			ID:         q.ID,
			Content:    q.Content,
			Difficulty: q.Difficulty,
			IsSolved:   q.IsSolved,
			SolvedBy:   solvers,
		}
	}
	return stats, nil
}

// ParticipantStatistics returns per-participant performance for every
// activated entry. Tokens earned are derived from the ledger: remaining
// balance plus tokens spent on spins.
func (s *StatsService) ParticipantStatistics(ctx context.Context, roomID string) ([]*model.ParticipantStats, error) {
	entries, err := s.entryRepo.ListEntered(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	stats := make([]*model.ParticipantStats, 0, len(entries))
	for _, entry := range entries {
		ps := &model.ParticipantStats{
			EntryID: entry.ID,
			Name:    entry.Name,
			Spins:   []*model.SpinRecord{},
		}
		if entry.ParticipantID == "" {
			stats = append(stats, ps)
			continue
		}

		balance, err := s.tokenRepo.Get(ctx, entry.ParticipantID, roomID)
		if err != nil {
			return nil, fmt.Errorf("failed to get balance: %w", err)
		}
		spins, err := s.spinRepo.ListByParticipant(ctx, roomID, entry.ParticipantID)
		if err != nil {
			return nil, fmt.Errorf("failed to list spins: %w", err)
		}

		ps.TokensRemaining = balance.Count
		if spins != nil {
			ps.Spins = spins
		}
		ps.TokensEarned = balance.Count + len(spins)
		ps.SolvedQuestions = ps.TokensEarned
		for _, spin := range spins {
			ps.TotalEarnings += spin.THRAmount
		}
		stats = append(stats, ps)
	}
	return stats, nil
}

// RewardDistribution returns every tier with its individual grants.
func (s *StatsService) RewardDistribution(ctx context.Context, roomID string) (*model.RewardDistribution, error) {
	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to get room: %w", err)
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	spins, err := s.spinRepo.ListByRoom(ctx, room.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list spins: %w", err)
	}

	grants := map[string][]*model.SpinRecord{}
	totals := map[string]float64{}
	for _, spin := range spins {
		grants[spin.TierName] = append(grants[spin.TierName], spin)
		totals[spin.TierName] += spin.THRAmount
	}

	dist := &model.RewardDistribution{
		Tiers:        make([]model.TierGrants, len(room.RewardTiers)),
		TotalAwarded: len(spins),
	}
	for i, tier := range room.RewardTiers {
		tierSpins := grants[tier.Name]
		if tierSpins == nil {
			tierSpins = []*model.SpinRecord{}
		}
		dist.Tiers[i] = model.TierGrants{
			Name:      tier.Name,
			THRAmount: tier.THRAmount,
			Defined:   tier.Weight,
			Awarded:   len(tierSpins),
			Remaining: tier.Weight - len(tierSpins),
			Spins:     tierSpins,
			Total:     totals[tier.Name],
		}
		dist.TotalDefined += tier.Weight
		dist.TotalTHR += totals[tier.Name]
	}
	dist.TotalRemaining = dist.TotalDefined - dist.TotalAwarded
	return dist, nil
}

// Leaderboard returns the top earners of a room. The Redis ZSET is the
// fast path; on a cold or unavailable cache it falls back to the spin
// ledger.
func (s *StatsService) Leaderboard(ctx context.Context, roomID string, limit int) ([]cache.EarningsEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	entries, err := s.earnings.GetTop(ctx, roomID, limit)
	if err != nil {
		s.logger.Warn("earnings cache read failed", zap.String("room_id", roomID), zap.Error(err))
		entries = nil
	}
	if len(entries) == 0 {
		entries, err = s.leaderboardFromLedger(ctx, roomID, limit)
		if err != nil {
			return nil, err
		}
	}

	names, err := s.participantNames(ctx, roomID)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].Name = names[entries[i].ParticipantID]
	}
	return entries, nil
}

func (s *StatsService) leaderboardFromLedger(ctx context.Context, roomID string, limit int) ([]cache.EarningsEntry, error) {
	spins, err := s.spinRepo.ListByRoom(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to list spins: %w", err)
	}

	totals := map[string]float64{}
	for _, spin := range spins {
		totals[spin.ParticipantID] += spin.THRAmount
	}

	entries := make([]cache.EarningsEntry, 0, len(totals))
	for pid, total := range totals {
		entries = append(entries, cache.EarningsEntry{
			ParticipantID: pid,
			Earnings:      total,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Earnings > entries[j].Earnings
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}

func (s *StatsService) participantNames(ctx context.Context, roomID string) (map[string]string, error) {
	entered, err := s.entryRepo.ListEntered(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	names := make(map[string]string, len(entered))
	for _, entry := range entered {
		if entry.ParticipantID != "" {
			names[entry.ParticipantID] = entry.Name
		}
	}
	return names, nil
}
