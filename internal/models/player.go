package models

// Player represents a participant in a room
type Player struct {
	// ID is the unique identifier of the player
	ID string `json:"id"`

	// Name is the display name of the player
	Name string `json:"name"`

	// Hand holds the cards won in phase 1, in the order they were acquired
	Hand []Card `json:"hand"`

	// SipsGiven is the number of sips this player handed out
	SipsGiven int `json:"sipsGiven"`

	// SipsTaken is the number of sips this player drank
	SipsTaken int `json:"sipsTaken"`

	// IsHost is set for the room creator only
	IsHost bool `json:"isHost"`

	// IsConnected tracks whether a client is currently attached
	IsConnected bool `json:"isConnected"`
}

// HasRank reports whether the hand holds any card of the given rank
func (p *Player) HasRank(rank Rank) bool {
	for _, c := range p.Hand {
		if c.Rank == rank {
			return true
		}
	}
	return false
}

// CardByID finds a card in the hand
func (p *Player) CardByID(cardID string) (Card, bool) {
	for _, c := range p.Hand {
		if c.ID == cardID {
			return c, true
		}
	}
	return Card{}, false
}

// Clone returns a deep copy of the player
func (p *Player) Clone() *Player {
	if p == nil {
		return nil
	}
	cp := *p
	if p.Hand != nil {
		cp.Hand = make([]Card, len(p.Hand))
		copy(cp.Hand, p.Hand)
	}
	return &cp
}
