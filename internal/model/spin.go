package model

import "time"

// SpinRecord is one reward grant. Records are append-only; per-tier
// awarded counts and participant earnings are derived from them.
type SpinRecord struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	ParticipantID string    `json:"participantId" bson:"participantId"`
	RoomID        string    `json:"roomId" bson:"roomId"`
	TierName      string    `json:"tierName" bson:"tierName"`
	THRAmount     float64   `json:"thrAmount" bson:"thrAmount"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
}

// SpinResult is what a participant sees after a successful spin. Rank is
// the 1-based leaderboard position after the grant; zero when the
// leaderboard cache is unavailable.
type SpinResult struct {
	TierName      string  `json:"tierName"`
	THRAmount     float64 `json:"thrAmount"`
	TokensLeft    int     `json:"tokensLeft"`
	TotalEarnings float64 `json:"totalEarnings"`
	Rank          int64   `json:"rank,omitempty"`
}

// SpinHistory is a participant's spins in a room with the running total.
type SpinHistory struct {
	Spins         []*SpinRecord `json:"spins"`
	TotalEarnings float64       `json:"totalEarnings"`
}
