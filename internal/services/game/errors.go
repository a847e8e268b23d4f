package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrRoomNotFound       GameError = "room not found"
	ErrNoRoomForChannel   GameError = "no room is linked to this channel"
	ErrPlayerNotInRoom    GameError = "player is not in a room"
	ErrRoomCodesExhausted GameError = "could not find a free room code"
	ErrVersionConflict    GameError = "the table moved on, try again"
	ErrInvalidInput       GameError = "invalid input"
	ErrNotHost            GameError = "only the host can do that"
	ErrNilConfig          GameError = "config cannot be nil"
	ErrNilRoomRepo        GameError = "room repository cannot be nil"
	ErrNilPlayerRepo      GameError = "player repository cannot be nil"
	ErrNilSipLedgerRepo   GameError = "sip ledger repository cannot be nil"
	ErrNilEngine          GameError = "engine cannot be nil"
	ErrNilClock           GameError = "clock cannot be nil"
	ErrNilUUIDGenerator   GameError = "UUID generator cannot be nil"
)
