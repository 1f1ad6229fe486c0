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
	"thrgacha/internal/gacha"
	"thrgacha/internal/model"
	"thrgacha/internal/repository/mocks"
)

type SpinServiceTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockRoomRepo  *mocks.MockRoomRepo
	mockSpinRepo  *mocks.MockSpinRepo
	mockTokenRepo *mocks.MockTokenRepo
	redisServer   *miniredis.Miniredis
	redisClient   *redis.Client
	statsCache    cache.StatsCache
	spinService   *SpinService
	ctx           context.Context

	testRoomID        string
	testParticipantID string
	testRoom          *model.Room
}

func (s *SpinServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRoomRepo = mocks.NewMockRoomRepo(s.mockCtrl)
	s.mockSpinRepo = mocks.NewMockSpinRepo(s.mockCtrl)
	s.mockTokenRepo = mocks.NewMockTokenRepo(s.mockCtrl)

	var err error
	s.redisServer, err = miniredis.Run()
	s.Require().NoError(err)
	s.redisClient = redis.NewClient(&redis.Options{Addr: s.redisServer.Addr()})

	tokenSvc := NewTokenService(s.mockTokenRepo)
	selector := gacha.New(&gacha.Config{Seed: 42})
	earnings := cache.NewEarningsCache(s.redisClient)
	s.statsCache = cache.NewStatsCache(s.redisClient, 15*time.Second)

	s.spinService = NewSpinService(s.mockRoomRepo, s.mockSpinRepo, tokenSvc, selector, earnings, s.statsCache, zap.NewNop())
	s.ctx = context.Background()

	s.testRoomID = "room-1"
	s.testParticipantID = "p_abc12345"
	s.testRoom = &model.Room{
		ID:            s.testRoomID,
		Name:          "Test Room",
		Code:          "ABC234",
		WeightingMode: model.WeightingCapacity,
		RewardTiers: []model.RewardTier{
			{Name: "Big", Weight: 2, THRAmount: 100000},
			{Name: "Small", Weight: 8, THRAmount: 20000},
		},
	}
}

func (s *SpinServiceTestSuite) TearDownTest() {
	s.redisClient.Close()
	s.redisServer.Close()
	s.mockCtrl.Finish()
}

func (s *SpinServiceTestSuite) TestSpinHappyPath() {
	// A stale snapshot must be dropped by the spin.
	s.Require().NoError(s.statsCache.SetSnapshot(s.ctx, s.testRoomID, &model.RoomStatistics{TotalEntries: 1}))

	s.mockRoomRepo.EXPECT().
		GetByID(gomock.Any(), s.testRoomID).
		Return(s.testRoom, nil)
	s.mockTokenRepo.EXPECT().
		Debit(gomock.Any(), s.testParticipantID, s.testRoomID, 1).
		Return(&model.TokenBalance{Count: 2}, nil)
	s.mockSpinRepo.EXPECT().
		AwardedCounts(gomock.Any(), s.testRoomID).
		Return(map[string]int{}, nil)

	var recorded *model.SpinRecord
	s.mockSpinRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record *model.SpinRecord) error {
			recorded = record
			return nil
		})
	s.mockSpinRepo.EXPECT().
		TotalEarnings(gomock.Any(), s.testRoomID, s.testParticipantID).
		Return(20000.0, nil)

	result, err := s.spinService.Spin(s.ctx, s.testParticipantID, s.testRoomID)

	s.Require().NoError(err)
	s.Require().NotNil(result)
	s.Equal(2, result.TokensLeft)
	s.Equal(20000.0, result.TotalEarnings)
	s.Require().NotNil(recorded)
	s.Equal(result.TierName, recorded.TierName)
	s.Equal(result.THRAmount, recorded.THRAmount)

	tier := s.testRoom.Tier(result.TierName)
	s.Require().NotNil(tier, "awarded tier must be one of the room's tiers")
	s.Equal(tier.THRAmount, result.THRAmount)

	// The earnings leaderboard must reflect the grant, and the result
	// carries the participant's leaderboard position.
	score, err := s.redisServer.ZScore("room:"+s.testRoomID+":earnings", s.testParticipantID)
	s.Require().NoError(err)
	s.Equal(result.THRAmount, score)
	s.Equal(int64(1), result.Rank)

	// The room changed, so the stats snapshot is gone.
	snapshot, err := s.statsCache.GetSnapshot(s.ctx, s.testRoomID)
	s.Require().NoError(err)
	s.Nil(snapshot)
}

func (s *SpinServiceTestSuite) TestSpinRoomNotFound() {
	s.mockRoomRepo.EXPECT().
		GetByID(gomock.Any(), "missing").
		Return(nil, nil)

	result, err := s.spinService.Spin(s.ctx, s.testParticipantID, "missing")

	s.Require().Error(err)
	s.True(errors.Is(err, ErrRoomNotFound))
	s.Nil(result)
}

func (s *SpinServiceTestSuite) TestSpinInsufficientTokens() {
	s.mockRoomRepo.EXPECT().
		GetByID(gomock.Any(), s.testRoomID).
		Return(s.testRoom, nil)
	s.mockTokenRepo.EXPECT().
		Debit(gomock.Any(), s.testParticipantID, s.testRoomID, 1).
		Return(nil, nil)

	result, err := s.spinService.Spin(s.ctx, s.testParticipantID, s.testRoomID)

	s.Require().Error(err)
	s.True(errors.Is(err, ErrInsufficientTokens))
	s.Nil(result)
}

func (s *SpinServiceTestSuite) TestSpinRefundsWhenPrizesExhausted() {
	s.mockRoomRepo.EXPECT().
		GetByID(gomock.Any(), s.testRoomID).
		Return(s.testRoom, nil)
	s.mockTokenRepo.EXPECT().
		Debit(gomock.Any(), s.testParticipantID, s.testRoomID, 1).
		Return(&model.TokenBalance{Count: 0}, nil)
	s.mockSpinRepo.EXPECT().
		AwardedCounts(gomock.Any(), s.testRoomID).
		Return(map[string]int{"Big": 2, "Small": 8}, nil)
	s.mockTokenRepo.EXPECT().
		Credit(gomock.Any(), s.testParticipantID, s.testRoomID, 1).
		Return(&model.TokenBalance{Count: 1}, nil)

	result, err := s.spinService.Spin(s.ctx, s.testParticipantID, s.testRoomID)

	s.Require().Error(err)
	s.True(errors.Is(err, ErrNoRewardsAvailable))
	s.Nil(result)
}

func (s *SpinServiceTestSuite) TestSpinRefundsWhenRecordFails() {
	s.mockRoomRepo.EXPECT().
		GetByID(gomock.Any(), s.testRoomID).
		Return(s.testRoom, nil)
	s.mockTokenRepo.EXPECT().
		Debit(gomock.Any(), s.testParticipantID, s.testRoomID, 1).
		Return(&model.TokenBalance{Count: 0}, nil)
	s.mockSpinRepo.EXPECT().
		AwardedCounts(gomock.Any(), s.testRoomID).
		Return(map[string]int{}, nil)
	s.mockSpinRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(errors.New("write failed"))
	s.mockTokenRepo.EXPECT().
		Credit(gomock.Any(), s.testParticipantID, s.testRoomID, 1).
		Return(&model.TokenBalance{Count: 1}, nil)

	result, err := s.spinService.Spin(s.ctx, s.testParticipantID, s.testRoomID)

	s.Require().Error(err)
	s.Nil(result)
}

func (s *SpinServiceTestSuite) TestSpinSucceedsWhenEarningsCacheDown() {
	s.redisServer.Close()

	s.mockRoomRepo.EXPECT().
		GetByID(gomock.Any(), s.testRoomID).
		Return(s.testRoom, nil)
	s.mockTokenRepo.EXPECT().
		Debit(gomock.Any(), s.testParticipantID, s.testRoomID, 1).
		Return(&model.TokenBalance{Count: 0}, nil)
	s.mockSpinRepo.EXPECT().
		AwardedCounts(gomock.Any(), s.testRoomID).
		Return(map[string]int{}, nil)
	s.mockSpinRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil)
	s.mockSpinRepo.EXPECT().
		TotalEarnings(gomock.Any(), s.testRoomID, s.testParticipantID).
		Return(100000.0, nil)

	result, err := s.spinService.Spin(s.ctx, s.testParticipantID, s.testRoomID)

	s.Require().NoError(err)
	s.Require().NotNil(result)
	s.Zero(result.Rank)
}

func (s *SpinServiceTestSuite) TestHistory() {
	spins := []*model.SpinRecord{
		{ID: "spin-2", TierName: "Small", THRAmount: 20000},
		{ID: "spin-1", TierName: "Big", THRAmount: 100000},
	}
	s.mockSpinRepo.EXPECT().
		ListByParticipant(gomock.Any(), s.testRoomID, s.testParticipantID).
		Return(spins, nil)
	s.mockSpinRepo.EXPECT().
		TotalEarnings(gomock.Any(), s.testRoomID, s.testParticipantID).
		Return(120000.0, nil)

	history, err := s.spinService.History(s.ctx, s.testParticipantID, s.testRoomID)

	s.Require().NoError(err)
	s.Len(history.Spins, 2)
	s.Equal(120000.0, history.TotalEarnings)
}

func (s *SpinServiceTestSuite) TestHistoryEmpty() {
	s.mockSpinRepo.EXPECT().
		ListByParticipant(gomock.Any(), s.testRoomID, s.testParticipantID).
		Return(nil, nil)
	s.mockSpinRepo.EXPECT().
		TotalEarnings(gomock.Any(), s.testRoomID, s.testParticipantID).
		Return(0.0, nil)

	history, err := s.spinService.History(s.ctx, s.testParticipantID, s.testRoomID)

	s.Require().NoError(err)
	s.NotNil(history.Spins)
	s.Empty(history.Spins)
	s.Equal(0.0, history.TotalEarnings)
}

func TestSpinServiceSuite(t *testing.T) {
	suite.Run(t, new(SpinServiceTestSuite))
}
