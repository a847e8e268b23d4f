package models

// PlayerStats represents a player's sip totals in a room
type PlayerStats struct {
	// PlayerID is the id of the player
	PlayerID string `json:"playerId"`

	// PlayerName is the display name of the player
	PlayerName string `json:"playerName"`

	// SipsGiven is the number of sips handed out to others
	SipsGiven int `json:"sipsGiven"`

	// SipsTaken is the number of sips the player had to drink
	SipsTaken int `json:"sipsTaken"`

	// CardsHeld is the size of the player's hand
	CardsHeld int `json:"cardsHeld"`
}

// Leaderboard represents the current standings in a room
type Leaderboard struct {
	// RoomID is the room code
	RoomID string `json:"roomId"`

	// PlayerStats is sorted by sips taken, highest first
	PlayerStats []*PlayerStats `json:"playerStats"`
}
