package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"thrgacha/internal/cache"
	"thrgacha/internal/model"
	"thrgacha/internal/repository/mocks"
)

type StatsServiceTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockRoomRepo     *mocks.MockRoomRepo
	mockQuestionRepo *mocks.MockQuestionRepo
	mockEntryRepo    *mocks.MockEntryRepo
	mockTokenRepo    *mocks.MockTokenRepo
	mockSpinRepo     *mocks.MockSpinRepo
	redisServer      *miniredis.Miniredis
	redisClient      *redis.Client
	earnings         cache.EarningsCache
	statsService     *StatsService
	ctx              context.Context

	testRoomID string
	testRoom   *model.Room
}

func (s *StatsServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRoomRepo = mocks.NewMockRoomRepo(s.mockCtrl)
	s.mockQuestionRepo = mocks.NewMockQuestionRepo(s.mockCtrl)
	s.mockEntryRepo = mocks.NewMockEntryRepo(s.mockCtrl)
	s.mockTokenRepo = mocks.NewMockTokenRepo(s.mockCtrl)
	s.mockSpinRepo = mocks.NewMockSpinRepo(s.mockCtrl)

	var err error
	s.redisServer, err = miniredis.Run()
	s.Require().NoError(err)
	s.redisClient = redis.NewClient(&redis.Options{Addr: s.redisServer.Addr()})

	statsCache := cache.NewStatsCache(s.redisClient, 15*time.Second)
	s.earnings = cache.NewEarningsCache(s.redisClient)

	s.statsService = NewStatsService(
		s.mockRoomRepo,
		s.mockQuestionRepo,
		s.mockEntryRepo,
		s.mockTokenRepo,
		s.mockSpinRepo,
		statsCache,
		s.earnings,
		zap.NewNop(),
	)
	s.ctx = context.Background()

	s.testRoomID = "room-1"
	s.testRoom = &model.Room{
		ID:            s.testRoomID,
		Name:          "Test Room",
		WeightingMode: model.WeightingCapacity,
		RewardTiers: []model.RewardTier{
			{Name: "Big", Weight: 2, THRAmount: 100000},
			{Name: "Small", Weight: 8, THRAmount: 20000},
		},
	}
}

func (s *StatsServiceTestSuite) TearDownTest() {
	s.redisClient.Close()
	s.redisServer.Close()
	s.mockCtrl.Finish()
}

func (s *StatsServiceTestSuite) expectRoomAggregation() {
	questions := []*model.Question{
		{Difficulty: model.DifficultyBronze, IsSolved: true},
		{Difficulty: model.DifficultyBronze, IsSolved: false},
		{Difficulty: model.DifficultyGold, IsSolved: true},
	}
	entries := []*model.EntryCode{
		{HasEntered: true, ParticipantID: "p_aaa"},
		{HasEntered: true, ParticipantID: "p_bbb"},
		{HasEntered: false},
	}
	spins := []*model.SpinRecord{
		{ParticipantID: "p_aaa", TierName: "Big", THRAmount: 100000},
		{ParticipantID: "p_aaa", TierName: "Small", THRAmount: 20000},
		{ParticipantID: "p_bbb", TierName: "Small", THRAmount: 20000},
	}

	s.mockRoomRepo.EXPECT().
		GetByID(gomock.Any(), s.testRoomID).
		Return(s.testRoom, nil)
	s.mockQuestionRepo.EXPECT().
		ListByRoom(gomock.Any(), s.testRoomID).
		Return(questions, nil)
	s.mockEntryRepo.EXPECT().
		ListByRoom(gomock.Any(), s.testRoomID).
		Return(entries, nil)
	s.mockSpinRepo.EXPECT().
		ListByRoom(gomock.Any(), s.testRoomID).
		Return(spins, nil)
	s.mockTokenRepo.EXPECT().
		TotalTokens(gomock.Any(), s.testRoomID).
		Return(1, nil)
}

func (s *StatsServiceTestSuite) TestRoomStatistics() {
	s.expectRoomAggregation()

	stats, err := s.statsService.RoomStatistics(s.ctx, s.testRoomID)

	s.Require().NoError(err)
	s.Equal(3, stats.TotalEntries)
	s.Equal(2, stats.ActiveParticipants)
	s.Equal(3, stats.TotalQuestions)
	s.Equal(2, stats.SolvedQuestions)
	s.Equal(model.DifficultyStats{Total: 2, Solved: 1}, stats.QuestionStats[model.DifficultyBronze])
	s.Equal(model.DifficultyStats{Total: 1, Solved: 1}, stats.QuestionStats[model.DifficultyGold])

	// One outstanding token plus three spent on spins.
	s.Equal(4, stats.TotalTokensAwarded)
	s.Equal(3, stats.TotalTokensUsed)
	s.Equal(140000.0, stats.TotalTHRAwarded)

	s.Require().Len(stats.RewardDistribution, 2)
	s.Equal("Big", stats.RewardDistribution[0].Name)
	s.Equal(1, stats.RewardDistribution[0].Awarded)
	s.Equal(1, stats.RewardDistribution[0].Remaining)
	s.Equal(2, stats.RewardDistribution[1].Awarded)
	s.Equal(6, stats.RewardDistribution[1].Remaining)
}

func (s *StatsServiceTestSuite) TestRoomStatisticsServesCachedSnapshot() {
	s.expectRoomAggregation()

	first, err := s.statsService.RoomStatistics(s.ctx, s.testRoomID)
	s.Require().NoError(err)

	// No further repository expectations; the second read must come from
	// the snapshot cache.
	second, err := s.statsService.RoomStatistics(s.ctx, s.testRoomID)
	s.Require().NoError(err)
	s.Equal(first.TotalEntries, second.TotalEntries)
	s.Equal(first.TotalTHRAwarded, second.TotalTHRAwarded)
}

func (s *StatsServiceTestSuite) TestRoomStatisticsRoomNotFound() {
	s.mockRoomRepo.EXPECT().
		GetByID(gomock.Any(), "missing").
		Return(nil, nil)

	_, err := s.statsService.RoomStatistics(s.ctx, "missing")
	s.True(errors.Is(err, ErrRoomNotFound))
}

func (s *StatsServiceTestSuite) TestQuestionStatistics() {
	now := time.Now()
	questions := []*model.Question{
		{
			ID:         "q1",
			Content:    "first",
			Difficulty: model.DifficultyBronze,
			IsSolved:   true,
			SolvedBy:   []string{"p_aaa", "p_ghost"},
			UpdatedAt:  now,
		},
	}
	entries := []*model.EntryCode{
		{HasEntered: true, ParticipantID: "p_aaa", Name: "Budi"},
	}

	s.mockQuestionRepo.EXPECT().
		ListByRoom(gomock.Any(), s.testRoomID).
		Return(questions, nil)
	s.mockEntryRepo.EXPECT().
		ListEntered(gomock.Any(), s.testRoomID).
		Return(entries, nil)

	stats, err := s.statsService.QuestionStatistics(s.ctx, s.testRoomID)

	s.Require().NoError(err)
	s.Require().Len(stats, 1)
	s.Require().Len(stats[0].SolvedBy, 2)
	s.Equal("Budi", stats[0].SolvedBy[0].Name)
	s.Equal("Unknown", stats[0].SolvedBy[1].Name)
}

func (s *StatsServiceTestSuite) TestParticipantStatistics() {
	entries := []*model.EntryCode{
		{ID: "entry-1", Name: "Budi", HasEntered: true, ParticipantID: "p_aaa"},
	}
	spins := []*model.SpinRecord{
		{TierName: "Small", THRAmount: 20000},
		{TierName: "Big", THRAmount: 100000},
	}

	s.mockEntryRepo.EXPECT().
		ListEntered(gomock.Any(), s.testRoomID).
		Return(entries, nil)
	s.mockTokenRepo.EXPECT().
		Get(gomock.Any(), "p_aaa", s.testRoomID).
		Return(&model.TokenBalance{Count: 1}, nil)
	s.mockSpinRepo.EXPECT().
		ListByParticipant(gomock.Any(), s.testRoomID, "p_aaa").
		Return(spins, nil)

	stats, err := s.statsService.ParticipantStatistics(s.ctx, s.testRoomID)

	s.Require().NoError(err)
	s.Require().Len(stats, 1)
	s.Equal("Budi", stats[0].Name)
	s.Equal(1, stats[0].TokensRemaining)
	s.Equal(3, stats[0].TokensEarned)
	s.Equal(120000.0, stats[0].TotalEarnings)
}

func (s *StatsServiceTestSuite) TestRewardDistribution() {
	spins := []*model.SpinRecord{
		{ParticipantID: "p_aaa", TierName: "Big", THRAmount: 100000},
		{ParticipantID: "p_bbb", TierName: "Small", THRAmount: 20000},
		{ParticipantID: "p_aaa", TierName: "Small", THRAmount: 20000},
	}

	s.mockRoomRepo.EXPECT().
		GetByID(gomock.Any(), s.testRoomID).
		Return(s.testRoom, nil)
	s.mockSpinRepo.EXPECT().
		ListByRoom(gomock.Any(), s.testRoomID).
		Return(spins, nil)

	dist, err := s.statsService.RewardDistribution(s.ctx, s.testRoomID)

	s.Require().NoError(err)
	s.Equal(10, dist.TotalDefined)
	s.Equal(3, dist.TotalAwarded)
	s.Equal(7, dist.TotalRemaining)
	s.Equal(140000.0, dist.TotalTHR)

	s.Require().Len(dist.Tiers, 2)
	s.Len(dist.Tiers[0].Spins, 1)
	s.Len(dist.Tiers[1].Spins, 2)
	s.Equal(40000.0, dist.Tiers[1].Total)
}

func (s *StatsServiceTestSuite) TestLeaderboardFromCache() {
	s.Require().NoError(s.earnings.AddEarnings(s.ctx, s.testRoomID, "p_aaa", 120000))
	s.Require().NoError(s.earnings.AddEarnings(s.ctx, s.testRoomID, "p_bbb", 20000))

	entries := []*model.EntryCode{
		{HasEntered: true, ParticipantID: "p_aaa", Name: "Budi"},
		{HasEntered: true, ParticipantID: "p_bbb", Name: "Sari"},
	}
	s.mockEntryRepo.EXPECT().
		ListEntered(gomock.Any(), s.testRoomID).
		Return(entries, nil)

	board, err := s.statsService.Leaderboard(s.ctx, s.testRoomID, 10)

	s.Require().NoError(err)
	s.Require().Len(board, 2)
	s.Equal("p_aaa", board[0].ParticipantID)
	s.Equal("Budi", board[0].Name)
	s.Equal(120000.0, board[0].Earnings)
	s.Equal(1, board[0].Rank)
}

func (s *StatsServiceTestSuite) TestLeaderboardFallsBackToLedger() {
	// Cold cache: derive the board from spin records instead.
	spins := []*model.SpinRecord{
		{ParticipantID: "p_aaa", THRAmount: 100000},
		{ParticipantID: "p_bbb", THRAmount: 20000},
		{ParticipantID: "p_aaa", THRAmount: 20000},
	}
	entries := []*model.EntryCode{
		{HasEntered: true, ParticipantID: "p_aaa", Name: "Budi"},
		{HasEntered: true, ParticipantID: "p_bbb", Name: "Sari"},
	}

	s.mockSpinRepo.EXPECT().
		ListByRoom(gomock.Any(), s.testRoomID).
		Return(spins, nil)
	s.mockEntryRepo.EXPECT().
		ListEntered(gomock.Any(), s.testRoomID).
		Return(entries, nil)

	board, err := s.statsService.Leaderboard(s.ctx, s.testRoomID, 10)

	s.Require().NoError(err)
	s.Require().Len(board, 2)
	s.Equal("p_aaa", board[0].ParticipantID)
	s.Equal(120000.0, board[0].Earnings)
	s.Equal("p_bbb", board[1].ParticipantID)
	s.Equal(2, board[1].Rank)
}

func TestStatsServiceSuite(t *testing.T) {
	suite.Run(t, new(StatsServiceTestSuite))
}
