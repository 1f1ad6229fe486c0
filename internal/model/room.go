package model

import (
	"errors"
	"fmt"
	"time"
)

// TierWeightingMode selects how a room's reward tiers are interpreted
// during a spin.
type TierWeightingMode string

const (
	// WeightingCapacity treats each tier weight as a fixed number of
	// prizes; a tier stops being drawable once that many have been
	// awarded.
	WeightingCapacity TierWeightingMode = "capacity"
	// WeightingProbability treats each tier weight as a relative
	// percentage; prizes are not capacity-limited.
	WeightingProbability TierWeightingMode = "probability"
)

// RewardTier is a single prize bracket owned by a room.
type RewardTier struct {
	Name      string  `json:"name" bson:"name"`
	Weight    int     `json:"weight" bson:"weight"`
	THRAmount float64 `json:"thrAmount" bson:"thrAmount"`
}

// Room is a game room participants join with an entry code.
type Room struct {
	ID            string            `json:"id" bson:"_id,omitempty"`
	Name          string            `json:"name" bson:"name"`
	Code          string            `json:"code" bson:"code"`
	Description   string            `json:"description,omitempty" bson:"description,omitempty"`
	CreatedBy     string            `json:"createdBy" bson:"createdBy"`
	IsActive      bool              `json:"isActive" bson:"isActive"`
	WeightingMode TierWeightingMode `json:"weightingMode" bson:"weightingMode"`
	RewardTiers   []RewardTier      `json:"rewardTiers" bson:"rewardTiers"`
	CreatedAt     time.Time         `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt" bson:"updatedAt"`
}

var (
	ErrNoRewardTiers     = errors.New("at least one reward tier is required")
	ErrInvalidTierWeight = errors.New("tier weight cannot be negative")
	ErrInvalidTierAmount = errors.New("tier amount cannot be negative")
	ErrProbabilitySum    = errors.New("tier probabilities cannot exceed 100")
)

// ValidateRewardTiers checks a tier list against the given weighting mode.
func ValidateRewardTiers(mode TierWeightingMode, tiers []RewardTier) error {
	if len(tiers) == 0 {
		return ErrNoRewardTiers
	}

	total := 0
	for _, tier := range tiers {
		if tier.Name == "" {
			return fmt.Errorf("tier name is required")
		}
		if tier.Weight < 0 {
			return fmt.Errorf("%w: %s", ErrInvalidTierWeight, tier.Name)
		}
		if tier.THRAmount < 0 {
			return fmt.Errorf("%w: %s", ErrInvalidTierAmount, tier.Name)
		}
		total += tier.Weight
	}

	if mode == WeightingProbability && total > 100 {
		return ErrProbabilitySum
	}
	return nil
}

// TotalPrizes returns the total number of prizes a capacity room can ever
// award. Meaningless for probability rooms.
func (r *Room) TotalPrizes() int {
	total := 0
	for _, tier := range r.RewardTiers {
		total += tier.Weight
	}
	return total
}

// Tier returns the tier with the given name, or nil.
func (r *Room) Tier(name string) *RewardTier {
	for i := range r.RewardTiers {
		if r.RewardTiers[i].Name == name {
			return &r.RewardTiers[i]
		}
	}
	return nil
}
