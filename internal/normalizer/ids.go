package normalizer

import (
	"strconv"
	"sync"

	"github.com/google/uuid"
)

// IDGenerator produces identifiers for ranges. Implementations must be safe for concurrent use.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator issues random version 4 UUIDs.
type UUIDGenerator struct{}

// NewID returns a new random UUID string.
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// SequenceIDs issues "1", "2", ... in increasing order.
// It makes output reproducible for tests and diffing. The range prefix is added by the builder.
type SequenceIDs struct {
	mu   sync.Mutex
	next int
}

// NewSequenceIDs creates a sequence starting at 1.
func NewSequenceIDs() *SequenceIDs {
	return &SequenceIDs{next: 1}
}

// NewID returns the next identifier in the sequence.
func (s *SequenceIDs) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := strconv.Itoa(s.next)
	s.next++

	return id
}
