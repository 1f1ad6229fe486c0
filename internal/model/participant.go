package model

import "time"

// Participant is an identity minted when an entry code is activated.
// Exactly one participant ever exists per activated code.
type Participant struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	RoomID    string    `json:"roomId" bson:"roomId"`
	Name      string    `json:"name" bson:"name"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
