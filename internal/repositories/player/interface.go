package player

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/pyramid/internal/repositories/player Repository

import (
	"context"

	"github.com/KirkDiggler/pyramid/internal/models"
)

// Repository defines the interface for the player directory
type Repository interface {
	// SaveProfile persists a player profile
	SaveProfile(ctx context.Context, input *SaveProfileInput) error

	// GetProfile retrieves a profile by player ID
	GetProfile(ctx context.Context, input *GetProfileInput) (*models.Profile, error)

	// GetProfilesInRoom retrieves every profile seated in a room
	GetProfilesInRoom(ctx context.Context, input *GetProfilesInRoomInput) (*GetProfilesInRoomOutput, error)

	// UpdateProfileRoom moves a player to another room, or out of any room
	UpdateProfileRoom(ctx context.Context, input *UpdateProfileRoomInput) error
}
