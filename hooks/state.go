package hooks

// State is a value cell that counts every store into it.
//
// Get returns a copy for value types, so changing the copy without calling
// Set or Update leaves the cell and its version untouched.
type State[T any] struct {
	value   T
	version uint64
}

// NewState creates a State holding initial at version zero.
func NewState[T any](initial T) *State[T] {
	return &State[T]{value: initial}
}

// Get returns the current value.
func (s *State[T]) Get() T {
	return s.value
}

// Set stores v and bumps the version.
func (s *State[T]) Set(v T) {
	s.value = v
	s.version++
}

// Update stores fn(current).
func (s *State[T]) Update(fn func(T) T) {
	s.Set(fn(s.value))
}

// Version returns how many times the cell has been stored into.
func (s *State[T]) Version() uint64 {
	return s.version
}
