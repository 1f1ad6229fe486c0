package model

import "time"

// EntryCode is a single-use code that admits one participant to a room.
// Lifecycle: created unused (HasEntered=false) -> activated once
// (HasEntered=true, ParticipantID bound permanently). IsActive=false is a
// soft revoke of a never-used code.
type EntryCode struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	RoomID        string    `json:"roomId" bson:"roomId"`
	Code          string    `json:"code" bson:"code"`
	Name          string    `json:"name" bson:"name"`
	IsActive      bool      `json:"isActive" bson:"isActive"`
	HasEntered    bool      `json:"hasEntered" bson:"hasEntered"`
	ParticipantID string    `json:"participantId,omitempty" bson:"participantId,omitempty"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt" bson:"updatedAt"`
}

// EntryLookupResult is the outcome of validating an entry code.
// Participant is non-nil only when the code is already bound.
type EntryLookupResult struct {
	Entry       *EntryCode   `json:"entry"`
	Participant *Participant `json:"participant,omitempty"`
}

// Bound reports whether the code already has a participant identity.
func (r *EntryLookupResult) Bound() bool {
	return r.Participant != nil
}
