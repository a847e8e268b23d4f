package player

import "github.com/KirkDiggler/pyramid/internal/models"

// SaveProfileInput contains parameters for saving a profile
type SaveProfileInput struct {
	Profile *models.Profile
}

// GetProfileInput contains parameters for retrieving a profile
type GetProfileInput struct {
	PlayerID string
}

// GetProfilesInRoomInput contains parameters for retrieving profiles in a room
type GetProfilesInRoomInput struct {
	RoomCode string
}

// GetProfilesInRoomOutput contains the result of retrieving profiles in a room
type GetProfilesInRoomOutput struct {
	Profiles []*models.Profile
}

// UpdateProfileRoomInput contains parameters for moving a player between rooms
type UpdateProfileRoomInput struct {
	PlayerID string
	RoomCode string
}
