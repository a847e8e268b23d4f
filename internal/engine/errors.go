package engine

// GameError is a custom error type for rejected game actions
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        GameError = "config cannot be nil"
	ErrNilDealer        GameError = "dealer cannot be nil"
	ErrNilClock         GameError = "clock cannot be nil"
	ErrNilUUIDGenerator GameError = "UUID generator cannot be nil"
	ErrNilState         GameError = "game state cannot be nil"

	ErrInvalidInput        GameError = "invalid input"
	ErrInvalidPhase        GameError = "action not allowed in the current phase"
	ErrPlayerNotFound      GameError = "player not found"
	ErrPlayerAlreadyJoined GameError = "player already joined"
	ErrRoomFull            GameError = "room is at maximum capacity"
	ErrNoPlayers           GameError = "no players in the room"
	ErrNotHost             GameError = "only the host can do that"
	ErrNotYourTurn         GameError = "not your turn"

	ErrNoActiveCard        GameError = "no card in play"
	ErrCardAlreadyActive   GameError = "a card is already in play"
	ErrPyramidAlreadyBuilt GameError = "pyramid already built"
	ErrPyramidExhausted    GameError = "every pyramid card is revealed"

	ErrSelfAllocation       GameError = "cannot give sips to yourself"
	ErrInvalidAmount        GameError = "sip amount must be positive"
	ErrSipCapExceeded       GameError = "sip cap exceeded for this card"
	ErrAlreadyConfirmed     GameError = "already confirmed this round"
	ErrAllocationNotFound   GameError = "allocation not found"
	ErrNotRecipient         GameError = "only the recipient can respond"
	ErrAllocationChallenged GameError = "allocation is under challenge"
	ErrChallengeActive      GameError = "a challenge is already in progress"
	ErrNoActiveChallenge    GameError = "no challenge in progress"
	ErrNotChallengeTarget   GameError = "only the accused player can answer the challenge"
	ErrInvalidAction        GameError = "unknown response action"
)
