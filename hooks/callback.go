package hooks

// Callback keeps one function value stable across updates until its deps
// change. Go func values cannot be compared, so Created is the observable
// identity: it only moves when a new function is kept.
type Callback[F any] struct {
	fn      F
	deps    []any
	set     bool
	created uint64
}

// NewCallback creates an empty Callback.
func NewCallback[F any]() *Callback[F] {
	return &Callback[F]{}
}

// Use returns the kept function, replacing it with fn first when deps
// changed since the last call. Deps follow the Effects rules.
func (c *Callback[F]) Use(deps []any, fn F) F {
	if !c.set || depsChanged(c.deps, deps) {
		c.fn = fn
		c.deps = deps
		c.set = true
		c.created++
	}
	return c.fn
}

// Created returns how many functions have been kept so far.
func (c *Callback[F]) Created() uint64 {
	return c.created
}
