package hooks

// Ref is a mutable box. Writing to it is not a state change: nothing
// observes it and no version is kept.
type Ref[T any] struct {
	current T
}

// NewRef creates a Ref holding initial.
func NewRef[T any](initial T) *Ref[T] {
	return &Ref[T]{current: initial}
}

// Current returns the boxed value.
func (r *Ref[T]) Current() T {
	return r.current
}

// Set replaces the boxed value.
func (r *Ref[T]) Set(v T) {
	r.current = v
}
