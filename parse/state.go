package parse

import (
	"github.com/ef-ds/deque"
)

// State represents the current state of the argument scan
type State interface {
	CurrentArg() string   // Get the current argument
	Peek() (string, bool) // Peek at the next argument
	Advance() bool        // Move to the next argument, returning false when none is left
	Skip() bool           // Consume the next argument without making it current
}

// DefaultState is the default implementation of the State interface. Pending arguments
// are held on a deque which is drained from the front as the scan advances.
type DefaultState struct {
	current string
	pending *deque.Deque
}

// NewState creates a new State instance with the given argument list
func NewState(args []string) State {
	pending := deque.New()
	for _, arg := range args {
		pending.PushBack(arg)
	}

	return &DefaultState{
		pending: pending,
	}
}

// CurrentArg returns the current argument
func (s *DefaultState) CurrentArg() string {
	return s.current
}

// Peek returns the next argument without advancing the current position
func (s *DefaultState) Peek() (string, bool) {
	next, ok := s.pending.Front()
	if !ok {
		return "", false
	}

	return next.(string), true
}

// Advance advances to the next argument, returning true if successful
func (s *DefaultState) Advance() bool {
	next, ok := s.pending.PopFront()
	if !ok {
		s.current = ""
		return false
	}

	s.current = next.(string)

	return true
}

// Skip drops the next argument, returning false when there was none
func (s *DefaultState) Skip() bool {
	_, ok := s.pending.PopFront()

	return ok
}
