package models

import (
	"time"
)

// Profile is a player's entry in the directory, independent of any single room
type Profile struct {
	// ID is the player id used in game documents
	ID string `json:"id"`

	// Name is the display name
	Name string `json:"name"`

	// CurrentRoomCode is the room the player is sitting in, empty when none
	CurrentRoomCode string `json:"currentRoomCode"`

	// LastSeen is updated whenever the player joins a room
	LastSeen time.Time `json:"lastSeen"`
}
