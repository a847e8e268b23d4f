package roomsync

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/KirkDiggler/pyramid/internal/models"
)

// Snapshot is a full or partial game document keyed by top-level field
type Snapshot map[string]json.RawMessage

// VersionKey is the document field holding the logical clock
const VersionKey = "version"

// Encode breaks a state into its top-level fields
func Encode(state *models.GameState) (Snapshot, error) {
	if state == nil {
		return nil, fmt.Errorf("cannot encode nil state")
	}
	data, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal state: %w", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to split state: %w", err)
	}
	return snap, nil
}

// Decode reads a snapshot over an empty document so missing keys keep their defaults
func Decode(snap Snapshot) (*models.GameState, error) {
	return Apply(nil, snap)
}

// Diff returns the fields of next that differ from prev. A nil prev yields the full document.
func Diff(prev, next *models.GameState) (Snapshot, error) {
	nextSnap, err := Encode(next)
	if err != nil {
		return nil, err
	}
	if prev == nil {
		return nextSnap, nil
	}
	prevSnap, err := Encode(prev)
	if err != nil {
		return nil, err
	}

	delta := Snapshot{}
	for key, raw := range nextSnap {
		if old, ok := prevSnap[key]; ok && bytes.Equal(old, raw) {
			continue
		}
		delta[key] = raw
	}
	return delta, nil
}

// Merge overwrites base with every key in delta and returns a new snapshot
func Merge(base, delta Snapshot) Snapshot {
	out := make(Snapshot, len(base)+len(delta))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range delta {
		out[k] = v
	}
	return out
}

// Apply merges snap over state with shallow per-key overwrite and returns the
// result as a new state. A nil state starts from an empty lobby document.
func Apply(state *models.GameState, snap Snapshot) (*models.GameState, error) {
	if state == nil {
		state = models.NewGameState("")
	}
	base, err := Encode(state)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(Merge(base, snap))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	next := models.NewGameState("")
	if err := json.Unmarshal(data, next); err != nil {
		return nil, fmt.Errorf("failed to apply snapshot: %w", err)
	}
	return next, nil
}

// Version reads the logical clock from a snapshot, zero when absent
func (s Snapshot) Version() int64 {
	raw, ok := s[VersionKey]
	if !ok {
		return 0
	}
	var v int64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0
	}
	return v
}

// Keys lists the fields carried by the snapshot
func (s Snapshot) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	return keys
}
