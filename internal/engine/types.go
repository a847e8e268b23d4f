package engine

import (
	"github.com/KirkDiggler/pyramid/internal/models"
)

// ResponseAction is how a recipient answers an allocation
type ResponseAction string

const (
	// ResponseAccept drinks the allocated sips
	ResponseAccept ResponseAction = "ACCEPT"

	// ResponseChallenge calls the giver a liar
	ResponseChallenge ResponseAction = "CHALLENGE"
)

// Result is the outcome of an accepted action
type Result struct {
	// State is the next state, never the same pointer as the input
	State *models.GameState

	// Events emitted by the action in order
	Events []*models.Event

	// Sips lists every sip transfer the action caused
	Sips []models.SipTransfer

	// Correct reports the verdict of a phase 1 answer
	Correct bool

	// AllocationID is set by AllocateSips
	AllocationID string
}

// AddPlayerInput contains parameters for seating a player
type AddPlayerInput struct {
	PlayerID string
	Name     string
}

// SetPlayerConnectedInput contains parameters for flagging presence
type SetPlayerConnectedInput struct {
	PlayerID  string
	Connected bool
}

// StartGameInput contains parameters for starting a game
type StartGameInput struct {
	PlayerID string
}

// DrawCardInput contains parameters for drawing a phase 1 card
type DrawCardInput struct {
	PlayerID string
}

// SubmitAnswerInput contains parameters for answering the current question
type SubmitAnswerInput struct {
	PlayerID string
	Answer   string
}

// ResolveTurnInput contains parameters for settling a turn with a known verdict
type ResolveTurnInput struct {
	PlayerID string
	Correct  bool
}

// InitializePyramidInput contains parameters for dealing the pyramid
type InitializePyramidInput struct {
	PlayerID string
}

// RevealPyramidCardInput contains parameters for flipping the next pyramid card
type RevealPyramidCardInput struct {
	PlayerID string
}

// AllocateSipsInput contains parameters for handing out sips
type AllocateSipsInput struct {
	PlayerID       string
	TargetPlayerID string
	Amount         int

	// UsingCardID is the card the giver claims to hold, optional
	UsingCardID string
}

// ConfirmPhase2TurnInput contains parameters for declaring allocations done
type ConfirmPhase2TurnInput struct {
	PlayerID string
}

// RespondToAllocationInput contains parameters for accepting or challenging an allocation
type RespondToAllocationInput struct {
	PlayerID     string
	AllocationID string
	Action       ResponseAction
}

// ResolveChallengeInput contains parameters for answering a challenge
type ResolveChallengeInput struct {
	PlayerID string

	// CardID is the card the accused shows
	CardID string
}
