package models

import (
	"time"
)

// SipReason explains why a sip transfer happened
type SipReason string

const (
	// SipReasonQuestionCorrect is a phase 1 correct answer, the player hands out a sip
	SipReasonQuestionCorrect SipReason = "question_correct"

	// SipReasonQuestionWrong is a phase 1 wrong answer, the player drinks
	SipReasonQuestionWrong SipReason = "question_wrong"

	// SipReasonAllocationAccepted is a recipient accepting a pyramid allocation
	SipReasonAllocationAccepted SipReason = "allocation_accepted"

	// SipReasonChallengeLostChallenger is a challenger who called out an honest giver
	SipReasonChallengeLostChallenger SipReason = "challenge_lost_challenger"

	// SipReasonChallengeLostGiver is a giver caught bluffing
	SipReasonChallengeLostGiver SipReason = "challenge_lost_giver"
)

// SipTransfer is a sip movement produced by the engine. A wrong phase 1 answer has
// no giver and a correct one has no named drinker.
type SipTransfer struct {
	FromPlayerID string    `json:"fromPlayerId,omitempty"`
	ToPlayerID   string    `json:"toPlayerId,omitempty"`
	Amount       int       `json:"amount"`
	Reason       SipReason `json:"reason"`
}

// SipRecord is a persisted sip transfer in the room ledger
type SipRecord struct {
	// ID is the unique identifier for the record
	ID string `json:"id"`

	// RoomID is the room the sips belong to
	RoomID string `json:"roomId"`

	FromPlayerID string    `json:"fromPlayerId,omitempty"`
	ToPlayerID   string    `json:"toPlayerId,omitempty"`
	Amount       int       `json:"amount"`
	Reason       SipReason `json:"reason"`

	// Timestamp is when the transfer was recorded
	Timestamp time.Time `json:"timestamp"`
}
