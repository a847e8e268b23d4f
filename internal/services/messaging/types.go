package messaging

import (
	"github.com/KirkDiggler/pyramid/internal/models"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneSarcastic is a sarcastic tone
	ToneSarcastic MessageTone = "sarcastic"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// Config contains configuration for the messaging service
type Config struct {
	// Seed fixes the message picks, zero seeds from the clock
	Seed int64
}

// GetJoinRoomMessageInput contains parameters for getting a join message
type GetJoinRoomMessageInput struct {
	// PlayerName is the name of the player joining
	PlayerName string

	// Phase is the current phase of the room
	Phase models.Phase

	// AlreadyJoined indicates if the player was already seated
	AlreadyJoined bool

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetJoinRoomMessageOutput contains the result of getting a join message
type GetJoinRoomMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetPhaseMessageInput contains parameters for describing the table
type GetPhaseMessageInput struct {
	Phase models.Phase

	// QuestionIndex is only used in phase 1
	QuestionIndex int

	// Multiplier is the sip multiplier of the revealed card in phase 2
	Multiplier int
}

// GetPhaseMessageOutput contains the table description
type GetPhaseMessageOutput struct {
	Message string
}

// GetTurnResultMessageInput contains parameters for a phase 1 verdict
type GetTurnResultMessageInput struct {
	PlayerName string
	Correct    bool
	Card       models.Card

	// IsPersonalMessage is true for a message only the player sees
	IsPersonalMessage bool
}

// GetTurnResultMessageOutput contains the verdict message
type GetTurnResultMessageOutput struct {
	Title   string
	Message string
}

// GetChallengeVerdictMessageInput contains parameters for a settled challenge
type GetChallengeVerdictMessageInput struct {
	GiverName      string
	ChallengerName string

	// Truthful is true when the giver held the rank
	Truthful bool

	// Penalty is the number of sips the loser drinks
	Penalty int
}

// GetChallengeVerdictMessageOutput contains the verdict message
type GetChallengeVerdictMessageOutput struct {
	Title   string
	Message string
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	// Err is the error returned by the game service
	Err error

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	Title   string
	Message string
	Tone    MessageTone
}
