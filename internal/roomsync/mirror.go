package roomsync

import (
	"context"
	"sync"

	"github.com/KirkDiggler/pyramid/internal/models"
	"github.com/rs/zerolog/log"
)

// Mirror is a client's local copy of a room: the last received snapshot merged
// over defaults. It is never written to directly by actions.
type Mirror struct {
	mu    sync.RWMutex
	state *models.GameState
}

// NewMirror creates an empty mirror for a room
func NewMirror(roomID string) *Mirror {
	return &Mirror{
		state: models.NewGameState(roomID),
	}
}

// Apply merges an inbound snapshot. Snapshots older than the mirrored version are
// dropped and reported as not applied.
func (m *Mirror) Apply(snap Snapshot) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := snap[VersionKey]; ok && snap.Version() < m.state.Version {
		return false, nil
	}

	next, err := Apply(m.state, snap)
	if err != nil {
		return false, err
	}
	m.state = next
	return true, nil
}

// State returns a copy of the mirrored state
func (m *Mirror) State() *models.GameState {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.state.Clone()
}

// Version returns the mirrored logical clock
func (m *Mirror) Version() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.state.Version
}

// Follow applies snapshots from updates until the channel closes or ctx is done,
// calling onChange with every newly adopted state.
func (m *Mirror) Follow(ctx context.Context, updates <-chan Snapshot, onChange func(*models.GameState)) {
	for {
		select {
		case <-ctx.Done():
			return
		case snap, ok := <-updates:
			if !ok {
				return
			}
			applied, err := m.Apply(snap)
			if err != nil {
				log.Warn().Err(err).Msg("dropping unreadable snapshot")
				continue
			}
			if applied && onChange != nil {
				onChange(m.State())
			}
		}
	}
}
