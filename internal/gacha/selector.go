// Package gacha implements weighted random reward tier selection.
package gacha

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"thrgacha/internal/model"
)

// ErrNoTiersAvailable signals that no tier has any remaining weight.
// For capacity rooms this means every prize has been awarded.
var ErrNoTiersAvailable = errors.New("no reward tiers available")

// Selector draws reward tiers from a room's tier list. One selector is
// shared across requests; the mutex serializes draws because *rand.Rand
// is not safe for concurrent use.
type Selector struct {
	mu     sync.Mutex
	random *rand.Rand
}

// Config for the selector.
type Config struct {
	// Optional seed for deterministic draws in tests.
	Seed int64
}

// New creates a selector. A zero config seeds from the wall clock.
func New(cfg *Config) *Selector {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &Selector{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Select picks one tier by weighted random draw.
//
// In capacity mode the effective weight of each tier is its defined weight
// minus the number already awarded, so a tier can never be drawn past its
// capacity. In probability mode the defined weights are used as-is and
// awarded counts are ignored; the draw is normalized over the declared sum,
// so a spin always lands on some tier even when the weights total less
// than 100.
//
// Tiers are walked in their defined order, which makes the draw stable for
// a fixed random source.
func (s *Selector) Select(mode model.TierWeightingMode, tiers []model.RewardTier, awarded map[string]int) (*model.RewardTier, error) {
	if len(tiers) == 0 {
		return nil, ErrNoTiersAvailable
	}

	remaining := make([]int, len(tiers))
	total := 0
	for i, tier := range tiers {
		w := tier.Weight
		if mode == model.WeightingCapacity {
			w -= awarded[tier.Name]
		}
		if w < 0 {
			w = 0
		}
		remaining[i] = w
		total += w
	}

	if total <= 0 {
		return nil, ErrNoTiersAvailable
	}

	s.mu.Lock()
	r := s.random.Intn(total)
	s.mu.Unlock()

	cumulative := 0
	for i := range tiers {
		cumulative += remaining[i]
		if r < cumulative {
			tier := tiers[i]
			return &tier, nil
		}
	}

	// Unreachable: the cumulative walk covers [0, total).
	tier := tiers[len(tiers)-1]
	return &tier, nil
}
