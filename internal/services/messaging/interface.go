package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetJoinRoomMessage returns a message for when a player joins a room
	GetJoinRoomMessage(ctx context.Context, input *GetJoinRoomMessageInput) (*GetJoinRoomMessageOutput, error)

	// GetPhaseMessage returns a dynamic message describing what the table is doing
	GetPhaseMessage(ctx context.Context, input *GetPhaseMessageInput) (*GetPhaseMessageOutput, error)

	// GetTurnResultMessage returns a message for a phase 1 answer
	GetTurnResultMessage(ctx context.Context, input *GetTurnResultMessageInput) (*GetTurnResultMessageOutput, error)

	// GetChallengeVerdictMessage returns a message for a settled challenge
	GetChallengeVerdictMessage(ctx context.Context, input *GetChallengeVerdictMessageInput) (*GetChallengeVerdictMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
