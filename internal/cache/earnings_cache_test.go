package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type EarningsCacheTestSuite struct {
	suite.Suite
	redisServer *miniredis.Miniredis
	redisClient *redis.Client
	cache       EarningsCache
	ctx         context.Context
}

func (s *EarningsCacheTestSuite) SetupTest() {
	var err error
	s.redisServer, err = miniredis.Run()
	s.Require().NoError(err)

	s.redisClient = redis.NewClient(&redis.Options{Addr: s.redisServer.Addr()})
	s.cache = NewEarningsCache(s.redisClient)
	s.ctx = context.Background()
}

func (s *EarningsCacheTestSuite) TearDownTest() {
	s.redisClient.Close()
	s.redisServer.Close()
}

func (s *EarningsCacheTestSuite) TestAddEarningsAccumulates() {
	s.Require().NoError(s.cache.AddEarnings(s.ctx, "room-1", "p_aaa", 20000))
	s.Require().NoError(s.cache.AddEarnings(s.ctx, "room-1", "p_aaa", 50000))

	top, err := s.cache.GetTop(s.ctx, "room-1", 10)

	s.Require().NoError(err)
	s.Require().Len(top, 1)
	s.Equal("p_aaa", top[0].ParticipantID)
	s.Equal(70000.0, top[0].Earnings)
}

func (s *EarningsCacheTestSuite) TestGetTopOrdersAndRanks() {
	s.Require().NoError(s.cache.AddEarnings(s.ctx, "room-1", "p_low", 10000))
	s.Require().NoError(s.cache.AddEarnings(s.ctx, "room-1", "p_high", 200000))
	s.Require().NoError(s.cache.AddEarnings(s.ctx, "room-1", "p_mid", 50000))

	top, err := s.cache.GetTop(s.ctx, "room-1", 2)

	s.Require().NoError(err)
	s.Require().Len(top, 2)
	s.Equal("p_high", top[0].ParticipantID)
	s.Equal(1, top[0].Rank)
	s.Equal("p_mid", top[1].ParticipantID)
	s.Equal(2, top[1].Rank)
}

func (s *EarningsCacheTestSuite) TestGetTopEmptyRoom() {
	top, err := s.cache.GetTop(s.ctx, "room-empty", 10)

	s.Require().NoError(err)
	s.Empty(top)
}

func (s *EarningsCacheTestSuite) TestRoomsAreIsolated() {
	s.Require().NoError(s.cache.AddEarnings(s.ctx, "room-1", "p_aaa", 20000))
	s.Require().NoError(s.cache.AddEarnings(s.ctx, "room-2", "p_bbb", 90000))

	top, err := s.cache.GetTop(s.ctx, "room-1", 10)

	s.Require().NoError(err)
	s.Require().Len(top, 1)
	s.Equal("p_aaa", top[0].ParticipantID)
}

func (s *EarningsCacheTestSuite) TestGetRank() {
	s.Require().NoError(s.cache.AddEarnings(s.ctx, "room-1", "p_high", 200000))
	s.Require().NoError(s.cache.AddEarnings(s.ctx, "room-1", "p_low", 10000))

	rank, err := s.cache.GetRank(s.ctx, "room-1", "p_low")
	s.Require().NoError(err)
	s.Equal(int64(2), rank)

	rank, err = s.cache.GetRank(s.ctx, "room-1", "p_unknown")
	s.Require().NoError(err)
	s.Equal(int64(-1), rank)
}

func TestEarningsCacheSuite(t *testing.T) {
	suite.Run(t, new(EarningsCacheTestSuite))
}
