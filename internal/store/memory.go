// internal/store/memory.go
//
// In-memory implementation of the Store interface.
// Holds the live solver sessions behind the HTTP API.
//
// Characteristics:
//   - Entries keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Each Entry carries its own mutex so one session sees one event at a time.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robalobadob/wordle/apps/go-helper/internal/solver"
)

// ErrNotFound is returned by Get for unknown IDs.
var ErrNotFound = errors.New("store: session not found")

// Store defines the persistence interface for solver sessions.
type Store interface {
	// Save persists or replaces an entry.
	Save(ctx context.Context, e *Entry) error

	// Get retrieves an entry by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*Entry, error)

	// Delete drops an entry; unknown IDs are ignored.
	Delete(ctx context.Context, id string) error

	// Sweep drops entries idle since before cutoff and returns how many.
	Sweep(ctx context.Context, cutoff time.Time) (int, error)
}

// Entry is a session plus its bookkeeping.
type Entry struct {
	ID string

	mu       sync.Mutex // serializes session events
	session  *solver.Session
	lastSeen atomic.Int64 // unix nanos; read without mu
}

// NewEntry wraps a session.
func NewEntry(id string, s *solver.Session) *Entry {
	e := &Entry{ID: id, session: s}
	e.touch()
	return e
}

// Do runs fn with exclusive access to the session.
func (e *Entry) Do(fn func(s *solver.Session)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.touch()
	fn(e.session)
}

// LastSeen reports the time of the last Do call.
// It never waits for an event in progress.
func (e *Entry) LastSeen() time.Time {
	return time.Unix(0, e.lastSeen.Load())
}

func (e *Entry) touch() { e.lastSeen.Store(time.Now().UnixNano()) }

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu      sync.RWMutex      // guards entries
	entries map[string]*Entry // keyed by Entry.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{entries: make(map[string]*Entry)}
}

func (m *memory) Save(ctx context.Context, e *Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[e.ID] = e
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.entries[id]; ok {
		return e, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, id)
	return nil
}

func (m *memory) Sweep(ctx context.Context, cutoff time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, e := range m.entries {
		if e.LastSeen().Before(cutoff) {
			delete(m.entries, id)
			n++
		}
	}
	return n, nil
}
