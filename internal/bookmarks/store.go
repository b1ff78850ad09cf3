package bookmarks

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// StorageKey is the fixed key bookmarks persist under in the client's local
// storage directory.
const StorageKey = "saved_orgs.json"

// Store is the client-local set of bookmarked organization ids. It is read
// once at startup and written back on every toggle. Bookmarks have no
// server-side representation; their lifecycle is tied to this local state,
// not to the organizations they reference.
type Store struct {
	path string

	mu  sync.Mutex
	ids map[uuid.UUID]bool
}

// Open loads the bookmark set persisted under the fixed key in dir.
// A missing file or corrupt/unparseable content yields an empty set,
// never an error: stale local state must not break the client.
func Open(dir string) *Store {
	store := &Store{
		path: filepath.Join(dir, StorageKey),
		ids:  map[uuid.UUID]bool{},
	}

	raw, err := os.ReadFile(store.path)
	if err != nil {
		return store
	}
	var saved []uuid.UUID
	if err := json.Unmarshal(raw, &saved); err != nil {
		return store
	}
	for _, id := range saved {
		store.ids[id] = true
	}
	return store
}

// Toggle flips the bookmark state of an organization, persists the set, and
// reports whether the organization is saved afterwards.
func (s *Store) Toggle(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ids[id] {
		delete(s.ids, id)
	} else {
		s.ids[id] = true
	}
	s.persist()
	return s.ids[id]
}

// Contains reports whether an organization is bookmarked.
func (s *Store) Contains(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ids[id]
}

// IDs returns the bookmarked organization ids.
func (s *Store) IDs() []uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]uuid.UUID, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	return ids
}

// Len returns the number of bookmarked organizations.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}

func (s *Store) persist() {
	ids := make([]uuid.UUID, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return
	}
	_ = os.WriteFile(s.path, raw, 0o644)
}
