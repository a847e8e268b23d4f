package models

import (
	"time"
)

// Phase represents where a room is in the game
type Phase string

const (
	// PhaseLobby indicates the room is waiting for players to join
	PhaseLobby Phase = "LOBBY"

	// PhaseDistribution is phase 1, players answer questions about drawn cards
	PhaseDistribution Phase = "PHASE_1_DISTRIBUTION"

	// PhasePyramid indicates the pyramid has been dealt and nothing is revealed yet
	PhasePyramid Phase = "PHASE_2_PYRAMID"

	// PhaseReveal indicates the previous pyramid card is settled and the host may reveal the next
	PhaseReveal Phase = "PHASE_2_REVEAL"

	// PhaseAllocate indicates players are handing out sips for the revealed card
	PhaseAllocate Phase = "PHASE_2_ALLOCATE"

	// PhaseResolve indicates recipients are accepting or challenging allocations
	PhaseResolve Phase = "PHASE_2_RESOLVE"

	// PhaseGameOver indicates the game has ended
	PhaseGameOver Phase = "GAME_OVER"
)

// IsPyramid reports whether the phase belongs to phase 2
func (p Phase) IsPyramid() bool {
	switch p {
	case PhasePyramid, PhaseReveal, PhaseAllocate, PhaseResolve:
		return true
	}
	return false
}

// AllocationStatus is the lifecycle of a sip allocation
type AllocationStatus string

const (
	AllocationStatusPending    AllocationStatus = "PENDING"
	AllocationStatusChallenged AllocationStatus = "CHALLENGED"
)

// SipAllocation is a claim that FromPlayerID holds the revealed rank and hands sips to ToPlayerID
type SipAllocation struct {
	FromPlayerID string           `json:"fromPlayerId"`
	ToPlayerID   string           `json:"toPlayerId"`
	Amount       int              `json:"amount"`
	UsingCardID  string           `json:"usingCardId"`
	Status       AllocationStatus `json:"status"`

	// Seq orders allocations within a cycle
	Seq int `json:"seq"`
}

// ChallengeStatus is the lifecycle of a challenge
type ChallengeStatus string

const (
	ChallengeStatusActive ChallengeStatus = "ACTIVE"
)

// Challenge is a recipient calling "Menteur" on the giver of an allocation
type Challenge struct {
	// ChallengerID is the recipient of the allocation
	ChallengerID string `json:"challengerId"`

	// TargetID is the accused giver
	TargetID string `json:"targetId"`

	AllocationID string          `json:"allocationId"`
	Status       ChallengeStatus `json:"status"`
}

// EventType categorises notifications
type EventType string

const (
	EventTypeSipDistribute EventType = "SIP_DISTRIBUTE"
	EventTypeSipTake       EventType = "SIP_TAKE"
	EventTypeCardDrawn     EventType = "CARD_DRAWN"
	EventTypePhaseChange   EventType = "PHASE_CHANGE"
	EventTypeGameStart     EventType = "GAME_START"
	EventTypePlayerJoined  EventType = "PLAYER_JOINED"
	EventTypeGameOver      EventType = "GAME_OVER"
)

// Event is an informational notification. IDs increase monotonically per room.
type Event struct {
	ID             int64     `json:"id"`
	Type           EventType `json:"type"`
	Message        string    `json:"message"`
	TargetPlayerID string    `json:"targetPlayerId,omitempty"`
	Amount         int       `json:"amount,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// GameState is the single shared document of a room
type GameState struct {
	// RoomID is the room code
	RoomID string `json:"roomId"`

	// Version is bumped on every accepted mutation
	Version int64 `json:"version"`

	// Players in join order, which is also turn order
	Players []*Player `json:"players"`

	// Deck is a stack, the last element is the top
	Deck []Card `json:"deck"`

	// Pyramid holds 15 cards, index 0-4 base row through index 14 apex
	Pyramid []Card `json:"pyramid"`

	CurrentPhase Phase `json:"currentPhase"`

	// CurrentTurnPlayerID is empty outside phase 1
	CurrentTurnPlayerID string `json:"currentTurnPlayerId"`

	// ActiveCard is the drawn card in phase 1 or the revealed pyramid card in phase 2
	ActiveCard *Card `json:"activeCard"`

	// CurrentQuestionIndex is 0-4 during phase 1
	CurrentQuestionIndex int `json:"currentQuestionIndex"`

	// CurrentPyramidRow is 5 (base) down to 1 (apex)
	CurrentPyramidRow int `json:"currentPyramidRow"`

	RevealedPyramidCards []string `json:"revealedPyramidCards"`

	PendingAllocations   map[string]*SipAllocation `json:"pendingAllocations"`
	ConfirmedTurnPlayers []string                  `json:"confirmedTurnPlayers"`
	ActiveChallenge      *Challenge                `json:"activeChallenge"`

	// EventSeq is the id of the newest event
	EventSeq  int64  `json:"eventSeq"`
	LastEvent *Event `json:"lastEvent"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewGameState returns an empty lobby document
func NewGameState(roomID string) *GameState {
	return &GameState{
		RoomID:               roomID,
		Players:              []*Player{},
		Deck:                 []Card{},
		Pyramid:              []Card{},
		CurrentPhase:         PhaseLobby,
		CurrentPyramidRow:    5,
		RevealedPyramidCards: []string{},
		PendingAllocations:   map[string]*SipAllocation{},
		ConfirmedTurnPlayers: []string{},
	}
}

// Player looks up a player by id
func (g *GameState) Player(id string) *Player {
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// PlayerIndex returns the join position of a player, or -1
func (g *GameState) PlayerIndex(id string) int {
	for i, p := range g.Players {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// PlayerIDs returns the ids in turn order
func (g *GameState) PlayerIDs() []string {
	ids := make([]string, 0, len(g.Players))
	for _, p := range g.Players {
		ids = append(ids, p.ID)
	}
	return ids
}

// Host returns the room host
func (g *GameState) Host() *Player {
	for _, p := range g.Players {
		if p.IsHost {
			return p
		}
	}
	return nil
}

// HasConfirmed reports whether a player declared they are done allocating
func (g *GameState) HasConfirmed(playerID string) bool {
	for _, id := range g.ConfirmedTurnPlayers {
		if id == playerID {
			return true
		}
	}
	return false
}

// PyramidIndex returns the position of a card in the pyramid, or -1
func (g *GameState) PyramidIndex(cardID string) int {
	for i, c := range g.Pyramid {
		if c.ID == cardID {
			return i
		}
	}
	return -1
}

// CardsInPlay counts every card the room still holds: deck, pyramid, hands and a
// drawn card that has not been handed to anyone yet.
func (g *GameState) CardsInPlay() int {
	total := len(g.Deck) + len(g.Pyramid)
	for _, p := range g.Players {
		total += len(p.Hand)
	}
	if g.ActiveCard != nil && g.PyramidIndex(g.ActiveCard.ID) < 0 {
		total++
	}
	return total
}

// Clone returns a deep copy so that transitions never share memory with their input
func (g *GameState) Clone() *GameState {
	if g == nil {
		return nil
	}
	cp := *g

	cp.Players = make([]*Player, len(g.Players))
	for i, p := range g.Players {
		cp.Players[i] = p.Clone()
	}
	cp.Deck = cloneCards(g.Deck)
	cp.Pyramid = cloneCards(g.Pyramid)
	if g.ActiveCard != nil {
		c := *g.ActiveCard
		cp.ActiveCard = &c
	}
	cp.RevealedPyramidCards = append([]string{}, g.RevealedPyramidCards...)
	cp.ConfirmedTurnPlayers = append([]string{}, g.ConfirmedTurnPlayers...)
	cp.PendingAllocations = make(map[string]*SipAllocation, len(g.PendingAllocations))
	for id, a := range g.PendingAllocations {
		alloc := *a
		cp.PendingAllocations[id] = &alloc
	}
	if g.ActiveChallenge != nil {
		ch := *g.ActiveChallenge
		cp.ActiveChallenge = &ch
	}
	if g.LastEvent != nil {
		ev := *g.LastEvent
		cp.LastEvent = &ev
	}
	return &cp
}

func cloneCards(cards []Card) []Card {
	if cards == nil {
		return []Card{}
	}
	out := make([]Card, len(cards))
	copy(out, cards)
	return out
}
