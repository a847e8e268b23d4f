package engine

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/pyramid/internal/common/clock"
	"github.com/KirkDiggler/pyramid/internal/common/uuid"
	"github.com/KirkDiggler/pyramid/internal/deck"
	"github.com/KirkDiggler/pyramid/internal/models"
)

// DefaultMaxPlayers keeps five phase 1 rounds plus the pyramid inside one deck
const DefaultMaxPlayers = 7

// Config holds configuration for the engine
type Config struct {
	Dealer        deck.Dealer
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// MaxPlayers defaults to DefaultMaxPlayers
	MaxPlayers int

	// StrictChallengeReveal requires the card shown in a challenge to be the matching card
	// instead of checking the whole hand for the rank
	StrictChallengeReveal bool
}

// Engine computes state transitions. Every action takes the latest state and an
// intent and returns a new state; the input state is never modified.
type Engine struct {
	dealer     deck.Dealer
	clock      clock.Clock
	uuid       uuid.UUID
	maxPlayers int
	strict     bool
}

// New creates a new engine
func New(cfg *Config) (*Engine, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Dealer == nil {
		return nil, ErrNilDealer
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	maxPlayers := cfg.MaxPlayers
	if maxPlayers <= 0 {
		maxPlayers = DefaultMaxPlayers
	}

	return &Engine{
		dealer:     cfg.Dealer,
		clock:      cfg.Clock,
		uuid:       cfg.UUIDGenerator,
		maxPlayers: maxPlayers,
		strict:     cfg.StrictChallengeReveal,
	}, nil
}

// MaxPlayers returns the seat limit of a room
func (e *Engine) MaxPlayers() int {
	return e.maxPlayers
}

// transition accumulates the effects of a single action on a cloned state
type transition struct {
	state  *models.GameState
	now    time.Time
	result *Result
}

func (e *Engine) begin(state *models.GameState) (*transition, error) {
	if state == nil {
		return nil, ErrNilState
	}
	next := state.Clone()
	if next.PendingAllocations == nil {
		next.PendingAllocations = map[string]*models.SipAllocation{}
	}
	return &transition{
		state:  next,
		now:    e.clock.Now(),
		result: &Result{},
	}, nil
}

func (t *transition) emit(eventType models.EventType, targetPlayerID string, amount int, format string, args ...any) {
	t.state.EventSeq++
	event := &models.Event{
		ID:             t.state.EventSeq,
		Type:           eventType,
		Message:        fmt.Sprintf(format, args...),
		TargetPlayerID: targetPlayerID,
		Amount:         amount,
		CreatedAt:      t.now,
	}
	t.result.Events = append(t.result.Events, event)
	last := *event
	t.state.LastEvent = &last
}

func (t *transition) sip(from, to string, amount int, reason models.SipReason) {
	t.result.Sips = append(t.result.Sips, models.SipTransfer{
		FromPlayerID: from,
		ToPlayerID:   to,
		Amount:       amount,
		Reason:       reason,
	})
}

func (t *transition) gameOver(format string, args ...any) {
	t.state.CurrentPhase = models.PhaseGameOver
	t.state.CurrentTurnPlayerID = ""
	t.state.ActiveCard = nil
	t.emit(models.EventTypeGameOver, "", 0, format, args...)
}

func (t *transition) commit() *Result {
	t.state.Version++
	t.state.UpdatedAt = t.now
	t.result.State = t.state
	return t.result
}

// AddPlayer seats a player in the lobby. The first player becomes the host.
func (e *Engine) AddPlayer(state *models.GameState, input *AddPlayerInput) (*Result, error) {
	if input == nil || input.PlayerID == "" || input.Name == "" {
		return nil, ErrInvalidInput
	}
	t, err := e.begin(state)
	if err != nil {
		return nil, err
	}
	s := t.state

	if s.CurrentPhase != models.PhaseLobby {
		return nil, ErrInvalidPhase
	}
	if s.Player(input.PlayerID) != nil {
		return nil, ErrPlayerAlreadyJoined
	}
	if len(s.Players) >= e.maxPlayers {
		return nil, ErrRoomFull
	}

	s.Players = append(s.Players, &models.Player{
		ID:          input.PlayerID,
		Name:        input.Name,
		Hand:        []models.Card{},
		IsHost:      len(s.Players) == 0,
		IsConnected: true,
	})
	t.emit(models.EventTypePlayerJoined, input.PlayerID, 0, "%s joined the table", input.Name)

	return t.commit(), nil
}

// SetPlayerConnected flags whether a player currently has a live client
func (e *Engine) SetPlayerConnected(state *models.GameState, input *SetPlayerConnectedInput) (*Result, error) {
	if input == nil || input.PlayerID == "" {
		return nil, ErrInvalidInput
	}
	t, err := e.begin(state)
	if err != nil {
		return nil, err
	}

	player := t.state.Player(input.PlayerID)
	if player == nil {
		return nil, ErrPlayerNotFound
	}
	player.IsConnected = input.Connected

	return t.commit(), nil
}
