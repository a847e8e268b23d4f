package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/pyramid/internal/services/game Service

import (
	"context"

	"github.com/KirkDiggler/pyramid/internal/repositories/room"
)

// Service runs pyramid rooms on top of the shared document store
type Service interface {
	// CreateRoom opens a lobby with the caller as host
	CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error)

	// JoinRoom seats a player in a lobby
	JoinRoom(ctx context.Context, input *JoinRoomInput) (*JoinRoomOutput, error)

	// LinkChannel points a chat channel at a room
	LinkChannel(ctx context.Context, input *LinkChannelInput) error

	// SetConnected flags whether a player has a live client
	SetConnected(ctx context.Context, input *SetConnectedInput) (*ActionOutput, error)

	// StartGame deals the deck and opens phase 1
	StartGame(ctx context.Context, input *StartGameInput) (*ActionOutput, error)

	// DrawCard puts the next phase 1 card in play when none is active
	DrawCard(ctx context.Context, input *DrawCardInput) (*ActionOutput, error)

	// SubmitAnswer evaluates the turn holder's guess and settles the turn
	SubmitAnswer(ctx context.Context, input *SubmitAnswerInput) (*ActionOutput, error)

	// ResolveTurn settles the turn with a verdict reached elsewhere
	ResolveTurn(ctx context.Context, input *ResolveTurnInput) (*ActionOutput, error)

	// InitializePyramid deals the fifteen pyramid cards
	InitializePyramid(ctx context.Context, input *InitializePyramidInput) (*ActionOutput, error)

	// RevealPyramidCard flips the next pyramid card and opens allocation
	RevealPyramidCard(ctx context.Context, input *RevealPyramidCardInput) (*ActionOutput, error)

	// AllocateSips hands out sips for the revealed card
	AllocateSips(ctx context.Context, input *AllocateSipsInput) (*ActionOutput, error)

	// ConfirmPhase2Turn declares the caller done allocating
	ConfirmPhase2Turn(ctx context.Context, input *ConfirmPhase2TurnInput) (*ActionOutput, error)

	// RespondToAllocation accepts or challenges an allocation
	RespondToAllocation(ctx context.Context, input *RespondToAllocationInput) (*ActionOutput, error)

	// ResolveChallenge settles the active challenge
	ResolveChallenge(ctx context.Context, input *ResolveChallengeInput) (*ActionOutput, error)

	// CloseRoom removes a room and everything recorded for it
	CloseRoom(ctx context.Context, input *CloseRoomInput) error

	// GetRoom returns the current document of a room
	GetRoom(ctx context.Context, input *GetRoomInput) (*GetRoomOutput, error)

	// GetRoomByChannel returns the room linked to a chat channel
	GetRoomByChannel(ctx context.Context, input *GetRoomByChannelInput) (*GetRoomOutput, error)

	// GetPlayerRoom returns the room a player is sitting in
	GetPlayerRoom(ctx context.Context, input *GetPlayerRoomInput) (*GetRoomOutput, error)

	// ListActiveRooms lists rooms that have not finished
	ListActiveRooms(ctx context.Context) ([]string, error)

	// GetLeaderboard ranks the players of a room by sips taken
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)

	// GetSipHistory returns the ledger of a room or a player
	GetSipHistory(ctx context.Context, input *GetSipHistoryInput) (*GetSipHistoryOutput, error)

	// GetEvents returns the room's event log
	GetEvents(ctx context.Context, input *GetEventsInput) (*GetEventsOutput, error)

	// Subscribe streams every published document of a room
	Subscribe(ctx context.Context, input *SubscribeInput) (*room.Subscription, error)
}
