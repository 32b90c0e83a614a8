package hooks

// Setup starts an effect and returns its cleanup, or nil if there is
// nothing to release.
type Setup func() (cleanup func())

type effect struct {
	name    string
	deps    []any
	next    []any
	setup   Setup
	cleanup func()
	ran     bool
}

// Effects runs named side effects after each update and releases them in
// strict setup/cleanup pairs.
//
// Call Use for every effect on each update, then Run once. Deps decide
// when an effect is due:
//
//	nil        every Run
//	[]any{}    first Run only (mount)
//	[]any{x}   first Run and whenever x changes
//
// Deps are compared with ==, so they must hold comparable values.
type Effects struct {
	effects []*effect
	byName  map[string]*effect
}

// NewEffects creates an empty effect runner.
func NewEffects() *Effects {
	return &Effects{byName: make(map[string]*effect)}
}

// Use registers the effect on first call and records the deps and setup
// to compare on the next Run.
func (e *Effects) Use(name string, deps []any, setup Setup) {
	eff, ok := e.byName[name]
	if !ok {
		eff = &effect{name: name}
		e.byName[name] = eff
		e.effects = append(e.effects, eff)
	}
	eff.next = deps
	eff.setup = setup
}

// Run executes every due effect in registration order, calling its
// previous cleanup first. It returns the names of the effects that ran.
func (e *Effects) Run() []string {
	var ran []string
	for _, eff := range e.effects {
		if !eff.due() {
			continue
		}
		eff.release()
		if eff.setup != nil {
			eff.cleanup = eff.setup()
		}
		eff.deps = eff.next
		eff.ran = true
		ran = append(ran, eff.name)
	}
	return ran
}

// Unmount runs every outstanding cleanup once and forgets all effects.
// A later Use and Run mounts them again from scratch.
func (e *Effects) Unmount() {
	for i := len(e.effects) - 1; i >= 0; i-- {
		e.effects[i].release()
	}
	e.effects = nil
	e.byName = make(map[string]*effect)
}

// Active returns the names of effects holding a cleanup.
func (e *Effects) Active() []string {
	var names []string
	for _, eff := range e.effects {
		if eff.cleanup != nil {
			names = append(names, eff.name)
		}
	}
	return names
}

func (eff *effect) due() bool {
	return !eff.ran || depsChanged(eff.deps, eff.next)
}

// depsChanged reports whether next differs from prev. Nil next always
// counts as a change.
func depsChanged(prev, next []any) bool {
	if next == nil || len(prev) != len(next) {
		return true
	}
	for i := range next {
		if next[i] != prev[i] {
			return true
		}
	}
	return false
}

func (eff *effect) release() {
	if eff.cleanup != nil {
		cleanup := eff.cleanup
		eff.cleanup = nil
		cleanup()
	}
}
