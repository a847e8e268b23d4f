package sip_ledger

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/pyramid/internal/repositories/sip_ledger Repository

import (
	"context"
)

// Repository defines the interface for sip ledger persistence
type Repository interface {
	// AddSipRecord adds a record to the ledger
	AddSipRecord(ctx context.Context, input *AddSipRecordInput) error

	// CreateSipRecords records engine transfers with generated ids
	CreateSipRecords(ctx context.Context, input *CreateSipRecordsInput) (*CreateSipRecordsOutput, error)

	// GetSipRecordsForRoom retrieves a room's ledger in recording order
	GetSipRecordsForRoom(ctx context.Context, input *GetSipRecordsForRoomInput) (*GetSipRecordsForRoomOutput, error)

	// GetSipRecordsForPlayer retrieves every record a player gave or received
	GetSipRecordsForPlayer(ctx context.Context, input *GetSipRecordsForPlayerInput) (*GetSipRecordsForPlayerOutput, error)

	// GetRoomTotals returns given and taken sums per player for a room
	GetRoomTotals(ctx context.Context, input *GetRoomTotalsInput) (*GetRoomTotalsOutput, error)

	// DeleteSipRecords removes a room's ledger
	DeleteSipRecords(ctx context.Context, input *DeleteSipRecordsInput) error
}
