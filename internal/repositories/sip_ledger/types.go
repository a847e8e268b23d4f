package sip_ledger

import (
	"time"

	"github.com/KirkDiggler/pyramid/internal/models"
)

// AddSipRecordInput contains parameters for adding a sip record
type AddSipRecordInput struct {
	Record *models.SipRecord
}

// CreateSipRecordsInput contains parameters for recording engine transfers
type CreateSipRecordsInput struct {
	RoomID    string
	Transfers []models.SipTransfer
	Timestamp time.Time
}

// CreateSipRecordsOutput contains the stored records
type CreateSipRecordsOutput struct {
	Records []*models.SipRecord
}

// GetSipRecordsForRoomInput contains parameters for retrieving a room's ledger
type GetSipRecordsForRoomInput struct {
	RoomID string
}

// GetSipRecordsForRoomOutput contains the result of retrieving a room's ledger
type GetSipRecordsForRoomOutput struct {
	Records []*models.SipRecord
}

// GetSipRecordsForPlayerInput contains parameters for retrieving a player's records
type GetSipRecordsForPlayerInput struct {
	PlayerID string
}

// GetSipRecordsForPlayerOutput contains the result of retrieving a player's records
type GetSipRecordsForPlayerOutput struct {
	Records []*models.SipRecord
}

// GetRoomTotalsInput contains parameters for summing a room's ledger
type GetRoomTotalsInput struct {
	RoomID string
}

// Totals is what one player gave and took in a room
type Totals struct {
	Given int `json:"given"`
	Taken int `json:"taken"`
}

// GetRoomTotalsOutput contains totals keyed by player id
type GetRoomTotalsOutput struct {
	Totals map[string]*Totals
}

// DeleteSipRecordsInput contains parameters for removing a room's ledger
type DeleteSipRecordsInput struct {
	RoomID string
}
