package game

import (
	"github.com/KirkDiggler/pyramid/internal/common/clock"
	"github.com/KirkDiggler/pyramid/internal/common/uuid"
	"github.com/KirkDiggler/pyramid/internal/engine"
	"github.com/KirkDiggler/pyramid/internal/models"
	"github.com/KirkDiggler/pyramid/internal/repositories/player"
	"github.com/KirkDiggler/pyramid/internal/repositories/room"
	"github.com/KirkDiggler/pyramid/internal/repositories/sip_ledger"
)

// Config holds configuration for the game service
type Config struct {
	// Repository dependencies
	RoomRepo      room.Repository
	PlayerRepo    player.Repository
	SipLedgerRepo sip_ledger.Repository

	// Engine computes every state transition
	Engine *engine.Engine

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// RoomCodeGenerator returns candidate room codes, defaults to four random letters
	RoomCodeGenerator func() string

	// PublishAttempts bounds retries after a version conflict, defaults to 3
	PublishAttempts int
}

// ActionOutput is the result of any action that changes a room
type ActionOutput struct {
	// State is the document as published
	State *models.GameState

	// Events emitted by the action
	Events []*models.Event

	// Sips transferred by the action
	Sips []models.SipTransfer

	// Correct is the verdict of a phase 1 answer
	Correct bool

	// AllocationID is set by AllocateSips
	AllocationID string
}

// CreateRoomInput contains parameters for creating a room
type CreateRoomInput struct {
	// PlayerID is optional, a fresh id is minted when empty
	PlayerID   string
	PlayerName string

	// ChannelID links the room to a chat channel when set
	ChannelID string
}

// CreateRoomOutput contains the result of creating a room
type CreateRoomOutput struct {
	RoomCode string
	PlayerID string
	State    *models.GameState
}

// JoinRoomInput contains parameters for joining a room
type JoinRoomInput struct {
	RoomCode string

	// PlayerID is optional, a fresh id is minted when empty
	PlayerID   string
	PlayerName string
}

// JoinRoomOutput contains the result of joining a room
type JoinRoomOutput struct {
	PlayerID string
	State    *models.GameState

	// AlreadyJoined is true when the player was seated before
	AlreadyJoined bool
}

// LinkChannelInput contains parameters for linking a chat channel
type LinkChannelInput struct {
	RoomCode  string
	ChannelID string
}

// SetConnectedInput contains parameters for flagging presence
type SetConnectedInput struct {
	RoomCode  string
	PlayerID  string
	Connected bool
}

// StartGameInput contains parameters for starting a game
type StartGameInput struct {
	RoomCode string
	PlayerID string
}

// DrawCardInput contains parameters for drawing a phase 1 card
type DrawCardInput struct {
	RoomCode string
	PlayerID string
}

// SubmitAnswerInput contains parameters for answering a question
type SubmitAnswerInput struct {
	RoomCode string
	PlayerID string
	Answer   string
}

// ResolveTurnInput contains parameters for settling a turn
type ResolveTurnInput struct {
	RoomCode string
	PlayerID string
	Correct  bool
}

// InitializePyramidInput contains parameters for dealing the pyramid
type InitializePyramidInput struct {
	RoomCode string
	PlayerID string
}

// RevealPyramidCardInput contains parameters for revealing a pyramid card
type RevealPyramidCardInput struct {
	RoomCode string
	PlayerID string
}

// AllocateSipsInput contains parameters for handing out sips
type AllocateSipsInput struct {
	RoomCode       string
	PlayerID       string
	TargetPlayerID string
	Amount         int
	UsingCardID    string
}

// ConfirmPhase2TurnInput contains parameters for finishing allocation
type ConfirmPhase2TurnInput struct {
	RoomCode string
	PlayerID string
}

// RespondToAllocationInput contains parameters for answering an allocation
type RespondToAllocationInput struct {
	RoomCode     string
	PlayerID     string
	AllocationID string
	Action       engine.ResponseAction
}

// ResolveChallengeInput contains parameters for answering a challenge
type ResolveChallengeInput struct {
	RoomCode string
	PlayerID string
	CardID   string
}

// CloseRoomInput contains parameters for closing a room
type CloseRoomInput struct {
	RoomCode string

	// PlayerID must be the host
	PlayerID string
}

// GetRoomInput contains parameters for loading a room
type GetRoomInput struct {
	RoomCode string
}

// GetRoomByChannelInput contains parameters for loading a channel's room
type GetRoomByChannelInput struct {
	ChannelID string
}

// GetPlayerRoomInput contains parameters for loading a player's room
type GetPlayerRoomInput struct {
	PlayerID string
}

// GetRoomOutput contains a room document
type GetRoomOutput struct {
	State *models.GameState
}

// GetLeaderboardInput contains parameters for ranking a room
type GetLeaderboardInput struct {
	RoomCode string
}

// GetLeaderboardOutput contains the standings of a room
type GetLeaderboardOutput struct {
	Leaderboard *models.Leaderboard
}

// GetSipHistoryInput contains parameters for reading the ledger.
// PlayerID narrows the history to one player across every room.
type GetSipHistoryInput struct {
	RoomCode string
	PlayerID string
}

// GetSipHistoryOutput contains ledger records, oldest first
type GetSipHistoryOutput struct {
	Records []*models.SipRecord

	// Totals per player id, only for room histories
	Totals map[string]*sip_ledger.Totals
}

// GetEventsInput contains parameters for reading the event log
type GetEventsInput struct {
	RoomCode string
	AfterID  int64
	Limit    int
}

// GetEventsOutput contains events, oldest first
type GetEventsOutput struct {
	Events []*models.Event
}

// SubscribeInput contains parameters for following a room
type SubscribeInput struct {
	RoomCode string
}
