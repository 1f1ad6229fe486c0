package gacha

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"thrgacha/internal/model"
)

type SelectorTestSuite struct {
	suite.Suite

	tiers []model.RewardTier
}

func (s *SelectorTestSuite) SetupTest() {
	s.tiers = []model.RewardTier{
		{Name: "Gold", Weight: 1, THRAmount: 200000},
		{Name: "Silver", Weight: 2, THRAmount: 100000},
		{Name: "Bronze", Weight: 5, THRAmount: 50000},
	}
}

func (s *SelectorTestSuite) newSelector(seed int64) *Selector {
	return New(&Config{Seed: seed})
}

func (s *SelectorTestSuite) TestSelectEmptyTiers() {
	selector := s.newSelector(1)

	tier, err := selector.Select(model.WeightingCapacity, nil, nil)

	s.Nil(tier)
	s.ErrorIs(err, ErrNoTiersAvailable)
}

func (s *SelectorTestSuite) TestSelectReturnsDefinedTier() {
	selector := s.newSelector(42)

	tier, err := selector.Select(model.WeightingCapacity, s.tiers, map[string]int{})

	s.Require().NoError(err)
	s.Require().NotNil(tier)
	s.Contains([]string{"Gold", "Silver", "Bronze"}, tier.Name)
}

func (s *SelectorTestSuite) TestCapacityRespectsAwardedCounts() {
	selector := s.newSelector(7)

	// Gold and Bronze are exhausted; every draw must land on Silver.
	awarded := map[string]int{"Gold": 1, "Bronze": 5, "Silver": 1}
	for i := 0; i < 50; i++ {
		tier, err := selector.Select(model.WeightingCapacity, s.tiers, awarded)
		s.Require().NoError(err)
		s.Equal("Silver", tier.Name)
	}
}

func (s *SelectorTestSuite) TestCapacityExhausted() {
	selector := s.newSelector(7)

	awarded := map[string]int{"Gold": 1, "Silver": 2, "Bronze": 5}
	tier, err := selector.Select(model.WeightingCapacity, s.tiers, awarded)

	s.Nil(tier)
	s.ErrorIs(err, ErrNoTiersAvailable)
}

func (s *SelectorTestSuite) TestCapacityOverAwardedClampsToZero() {
	selector := s.newSelector(9)

	// Awarded counts above the defined weight must not go negative and
	// skew the draw.
	awarded := map[string]int{"Gold": 3, "Silver": 2}
	for i := 0; i < 50; i++ {
		tier, err := selector.Select(model.WeightingCapacity, s.tiers, awarded)
		s.Require().NoError(err)
		s.Equal("Bronze", tier.Name)
	}
}

func (s *SelectorTestSuite) TestCapacityNeverOversells() {
	selector := s.newSelector(1234)

	// Draw until exhaustion, crediting awarded counts as a spin flow
	// would. Each tier must end exactly at its defined weight.
	awarded := map[string]int{}
	draws := 0
	for {
		tier, err := selector.Select(model.WeightingCapacity, s.tiers, awarded)
		if err != nil {
			s.ErrorIs(err, ErrNoTiersAvailable)
			break
		}
		awarded[tier.Name]++
		draws++
		s.Require().LessOrEqual(draws, 8, "selector drew past total capacity")
	}

	s.Equal(8, draws)
	s.Equal(1, awarded["Gold"])
	s.Equal(2, awarded["Silver"])
	s.Equal(5, awarded["Bronze"])
}

func (s *SelectorTestSuite) TestProbabilityIgnoresAwardedCounts() {
	selector := s.newSelector(99)

	tiers := []model.RewardTier{
		{Name: "Common", Weight: 90, THRAmount: 10000},
		{Name: "Rare", Weight: 10, THRAmount: 100000},
	}
	// Awarded counts beyond any capacity; probability mode keeps drawing.
	awarded := map[string]int{"Common": 1000, "Rare": 1000}

	tier, err := selector.Select(model.WeightingProbability, tiers, awarded)

	s.Require().NoError(err)
	s.Contains([]string{"Common", "Rare"}, tier.Name)
}

func (s *SelectorTestSuite) TestProbabilityUnderHundredAlwaysAwards() {
	selector := s.newSelector(5)

	// Weights sum to 60; the draw normalizes over the declared sum, so a
	// token is never silently lost.
	tiers := []model.RewardTier{
		{Name: "A", Weight: 40, THRAmount: 25000},
		{Name: "B", Weight: 20, THRAmount: 75000},
	}
	for i := 0; i < 100; i++ {
		tier, err := selector.Select(model.WeightingProbability, tiers, nil)
		s.Require().NoError(err)
		s.Require().NotNil(tier)
	}
}

func (s *SelectorTestSuite) TestProbabilityZeroWeights() {
	selector := s.newSelector(5)

	tiers := []model.RewardTier{
		{Name: "A", Weight: 0, THRAmount: 25000},
	}
	tier, err := selector.Select(model.WeightingProbability, tiers, nil)

	s.Nil(tier)
	s.ErrorIs(err, ErrNoTiersAvailable)
}

func (s *SelectorTestSuite) TestDeterministicWithFixedSeed() {
	first := s.newSelector(2024)
	second := s.newSelector(2024)

	for i := 0; i < 20; i++ {
		a, errA := first.Select(model.WeightingCapacity, s.tiers, nil)
		b, errB := second.Select(model.WeightingCapacity, s.tiers, nil)
		s.Require().NoError(errA)
		s.Require().NoError(errB)
		s.Equal(a.Name, b.Name)
	}
}

func (s *SelectorTestSuite) TestConcurrentDraws() {
	selector := s.newSelector(42)

	// One selector is shared by every spin request; concurrent draws must
	// be safe under the race detector.
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				tier, err := selector.Select(model.WeightingProbability, s.tiers, nil)
				s.NoError(err)
				s.NotNil(tier)
			}
		}()
	}
	wg.Wait()
}

func (s *SelectorTestSuite) TestDistributionFollowsWeights() {
	selector := s.newSelector(31337)

	counts := map[string]int{}
	const draws = 8000
	for i := 0; i < draws; i++ {
		tier, err := selector.Select(model.WeightingProbability, s.tiers, nil)
		s.Require().NoError(err)
		counts[tier.Name]++
	}

	// Weights are 1/2/5 out of 8. Allow a generous tolerance; the seed is
	// fixed so this cannot flake.
	s.InDelta(draws*1.0/8.0, float64(counts["Gold"]), draws*0.03)
	s.InDelta(draws*2.0/8.0, float64(counts["Silver"]), draws*0.03)
	s.InDelta(draws*5.0/8.0, float64(counts["Bronze"]), draws*0.03)
}

func TestSelectorTestSuite(t *testing.T) {
	suite.Run(t, new(SelectorTestSuite))
}
