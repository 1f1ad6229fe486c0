package model

import "time"

// DifficultyStats counts questions and solved questions in one bucket.
type DifficultyStats struct {
	Total  int `json:"total"`
	Solved int `json:"solved"`
}

// TierDistribution compares a defined tier against what has actually been
// awarded so far.
type TierDistribution struct {
	Name      string  `json:"name"`
	THRAmount float64 `json:"thrAmount"`
	Defined   int     `json:"defined"`
	Awarded   int     `json:"awarded"`
	Remaining int     `json:"remaining"`
	Total     float64 `json:"totalAmount"`
}

// RoomStatistics is the admin-facing summary for one room.
type RoomStatistics struct {
	TotalEntries       int                            `json:"totalEntries"`
	ActiveParticipants int                            `json:"activeParticipants"`
	QuestionStats      map[Difficulty]DifficultyStats `json:"questionStats"`
	TotalQuestions     int                            `json:"totalQuestions"`
	SolvedQuestions    int                            `json:"solvedQuestions"`
	TotalTokensAwarded int                            `json:"totalTokensAwarded"`
	TotalTokensUsed    int                            `json:"totalTokensUsed"`
	TotalTHRAwarded    float64                        `json:"totalThrAwarded"`
	RewardDistribution []TierDistribution             `json:"rewardDistribution"`
}

// SolverDetail names one participant who answered a question.
type SolverDetail struct {
	ParticipantID string    `json:"participantId"`
	Name          string    `json:"name"`
	SolvedAt      time.Time `json:"solvedAt"`
}

// QuestionStats is the per-question solve report.
type QuestionStats struct {
	ID         string         `json:"id"`
	Content    string         `json:"content"`
	Difficulty Difficulty     `json:"difficulty"`
	IsSolved   bool           `json:"isSolved"`
	SolvedBy   []SolverDetail `json:"solvedBy"`
}

// ParticipantStats is one participant's performance in a room.
type ParticipantStats struct {
	EntryID         string        `json:"id"`
	Name            string        `json:"name"`
	SolvedQuestions int           `json:"solvedQuestions"`
	TokensEarned    int           `json:"tokensEarned"`
	TokensRemaining int           `json:"tokensRemaining"`
	Spins           []*SpinRecord `json:"spins"`
	TotalEarnings   float64       `json:"totalEarnings"`
}

// TierGrants is the reward-distribution view of one tier with the
// individual grants behind it.
type TierGrants struct {
	Name      string        `json:"name"`
	THRAmount float64       `json:"thrAmount"`
	Defined   int           `json:"defined"`
	Awarded   int           `json:"awarded"`
	Remaining int           `json:"remaining"`
	Spins     []*SpinRecord `json:"spins"`
	Total     float64       `json:"totalAmount"`
}

// RewardDistribution summarizes every tier of a room plus room totals.
type RewardDistribution struct {
	Tiers          []TierGrants `json:"tiers"`
	TotalDefined   int          `json:"totalDefined"`
	TotalAwarded   int          `json:"totalAwarded"`
	TotalRemaining int          `json:"totalRemaining"`
	TotalTHR       float64      `json:"totalThrAmount"`
}
