package model

import "time"

// TokenBalance tracks spin tokens for one participant in one room.
// Unique per (participant, room); created lazily with a zero count.
// Count never goes below zero.
type TokenBalance struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	ParticipantID string    `json:"participantId" bson:"participantId"`
	RoomID        string    `json:"roomId" bson:"roomId"`
	Count         int       `json:"count" bson:"count"`
	UpdatedAt     time.Time `json:"updatedAt" bson:"updatedAt"`
}
