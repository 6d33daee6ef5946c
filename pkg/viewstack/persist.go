package viewstack

import (
	"encoding/json"
	"fmt"
)

// SnapshotVersion is the current persisted snapshot format.
const SnapshotVersion = 1

// StateStore is the host's key/value store for persisted stacks.
type StateStore interface {
	// Get returns the value for key and whether it exists.
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
}

// Snapshot is the persisted form of a stack, bottom to top.
type Snapshot struct {
	Version int             `json:"version"`
	Entries []SnapshotEntry `json:"entries"`
}

// SnapshotEntry is one persisted screen: the registered factory name, the
// factory's JSON encoding, and the saved-state bag.
type SnapshotEntry struct {
	Type    string          `json:"type"`
	Factory json.RawMessage `json:"factory"`
	State   State           `json:"state,omitempty"`
}

// Save writes the stack's factories, bottom to top, under key.
// Stateful components are asked for their current state first.
func (s *ViewStack) Save(store StateStore, key string) error {
	if err := checkStoreArgs("save", store, key); err != nil {
		return err
	}

	for _, e := range s.entries {
		captureState(e)
	}

	data, err := EncodeSnapshot(s.registry, s.entries)
	if err != nil {
		return err
	}
	if err := store.Put(key, data); err != nil {
		return wrapError("save", nil, fmt.Sprintf("put %q", key), err)
	}

	s.logger.Debug("Saved stack", "key", key, "depth", len(s.entries), "bytes", len(data))
	return nil
}

// Restore replays a stack saved under key by pushing each factory in its
// original order. Observers are notified once, after the last push. If any
// factory fails to decode or create its component, the stack is unchanged.
// Restoring onto a non-empty stack pushes on top of what is there.
func (s *ViewStack) Restore(store StateStore, key string) error {
	if err := checkStoreArgs("restore", store, key); err != nil {
		return err
	}
	if err := s.checkIdle("restore"); err != nil {
		return err
	}

	data, ok, err := store.Get(key)
	if err != nil {
		return wrapError("restore", nil, fmt.Sprintf("get %q", key), err)
	}
	if !ok {
		return newError("restore", ErrMissingState,
			fmt.Sprintf("store doesn't contain any stack state under %q", key))
	}

	entries, err := DecodeSnapshot(s.registry, data)
	if err != nil {
		return err
	}

	// Create every component first so a failing factory leaves the stack
	// untouched.
	components := make([]Component, len(entries))
	for i, e := range entries {
		c, err := s.create("restore", e.Factory)
		if err != nil {
			return err
		}
		components[i] = c
	}

	for i, e := range entries {
		s.attach(e.Factory, e.State, components[i])
		s.hide(s.below())
	}
	s.notify()

	s.logger.Debug("Restored stack", "key", key, "depth", s.Size())
	return nil
}

// EncodeSnapshot serializes entries, bottom to top, using registry names.
func EncodeSnapshot(registry *FactoryRegistry, entries []*StackEntry) ([]byte, error) {
	if registry == nil {
		return nil, newError("encode", ErrInvalidArgument, "registry == nil")
	}

	snap := Snapshot{
		Version: SnapshotVersion,
		Entries: make([]SnapshotEntry, 0, len(entries)),
	}
	for _, e := range entries {
		name, data, err := registry.encode(e.Factory)
		if err != nil {
			return nil, err
		}
		snap.Entries = append(snap.Entries, SnapshotEntry{
			Type:    name,
			Factory: data,
			State:   e.State,
		})
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return nil, wrapError("encode", nil, "marshal snapshot", err)
	}
	return data, nil
}

// DecodeSnapshot parses a snapshot into detached entries, bottom to top.
// The entries have no mounted component.
func DecodeSnapshot(registry *FactoryRegistry, data []byte) ([]*StackEntry, error) {
	if registry == nil {
		return nil, newError("decode", ErrInvalidArgument, "registry == nil")
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, wrapError("decode", nil, "malformed snapshot", err)
	}
	if snap.Version != SnapshotVersion {
		return nil, newError("decode", nil,
			fmt.Sprintf("unsupported snapshot version %d", snap.Version))
	}

	entries := make([]*StackEntry, 0, len(snap.Entries))
	for _, se := range snap.Entries {
		f, err := registry.decode(se.Type, se.Factory)
		if err != nil {
			return nil, err
		}
		entries = append(entries, &StackEntry{Factory: f, State: se.State})
	}
	return entries, nil
}

func checkStoreArgs(op string, store StateStore, key string) error {
	if store == nil {
		return newError(op, ErrInvalidArgument, "store == nil")
	}
	if key == "" {
		return newError(op, ErrInvalidArgument, "key is empty")
	}
	return nil
}
