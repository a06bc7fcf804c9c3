package anchor

import (
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/editmap/internal/textedit"
)

// ID uniquely identifies an anchor within a Set.
type ID = uuid.UUID

// Set is a registry of anchors tracked against one document. All
// registered anchors relocate together when an edit sequence is folded
// in with Transform. All operations are thread-safe.
type Set struct {
	mu      sync.RWMutex
	anchors map[ID]Anchor
}

// NewSet creates an empty anchor set.
func NewSet() *Set {
	return &Set{anchors: make(map[ID]Anchor)}
}

// Add registers an anchor and returns its generated ID.
func (s *Set) Add(a Anchor) ID {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New()
	s.anchors[id] = a
	return id
}

// Get returns the anchor for id.
func (s *Set) Get(id ID) (Anchor, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.anchors[id]
	return a, ok
}

// Remove deletes the anchor for id.
func (s *Set) Remove(id ID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.anchors, id)
}

// Len returns the number of registered anchors.
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.anchors)
}

// Transform relocates every registered anchor through seq.
func (s *Set) Transform(seq textedit.Sequence) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, a := range s.anchors {
		s.anchors[id] = a.Transform(seq)
	}
}

// Positions returns a snapshot of the current anchor positions by ID.
func (s *Set) Positions() map[ID]textedit.Position {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[ID]textedit.Position, len(s.anchors))
	for id, a := range s.anchors {
		out[id] = a.Pos
	}
	return out
}
