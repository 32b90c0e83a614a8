// Package reducer provides declarative action handler registration for
// pure state transitions.
//
// Replaces manual switch/case chains in reducer functions. Handlers are
// registered by action type and looked up in registration order.
package reducer

// Action describes one requested state transition.
type Action interface {
	Type() string
}

// Applier applies an action to state and returns the next state.
//
// Each applier extracts its payload with As. Appliers must not mutate the
// state they receive; return it unchanged for no-ops.
type Applier[S any] func(state S, action Action) S

type applierEntry[S any] struct {
	actionType string
	apply      Applier[S]
}

// Reducer maps (state, action) to the next state using registered appliers.
//
// Example:
//
//	r := reducer.New[CartState]().
//	    On("ADD_ITEM", applyAddItem).
//	    On("REMOVE_ITEM", applyRemoveItem)
//
//	next := r.Reduce(state, AddItem{Item: item})
type Reducer[S any] struct {
	appliers []applierEntry[S]
}

// New creates an empty Reducer for state type S.
func New[S any]() *Reducer[S] {
	return &Reducer[S]{
		appliers: make([]applierEntry[S], 0),
	}
}

// On registers an applier for an action type.
func (r *Reducer[S]) On(actionType string, apply Applier[S]) *Reducer[S] {
	r.appliers = append(r.appliers, applierEntry[S]{
		actionType: actionType,
		apply:      apply,
	})
	return r
}

// Reduce applies a single action to state.
//
// Nil actions and unregistered action types return state unchanged. A nil
// pointer to an action type is not a valid action.
func (r *Reducer[S]) Reduce(state S, action Action) S {
	if action == nil {
		return state
	}
	t := action.Type()
	for _, entry := range r.appliers {
		if entry.actionType == t {
			return entry.apply(state, action)
		}
	}
	return state
}

// Types returns registered action types in registration order.
func (r *Reducer[S]) Types() []string {
	types := make([]string, 0, len(r.appliers))
	for _, entry := range r.appliers {
		types = append(types, entry.actionType)
	}
	return types
}

// As extracts an action of type A, accepting both A and a non-nil *A.
// Action types with value receivers satisfy Action through either form,
// so appliers and validators must not assume one.
func As[A Action](action Action) (A, bool) {
	switch a := action.(type) {
	case A:
		return a, true
	case *A:
		if a != nil {
			return *a, true
		}
	}
	var zero A
	return zero, false
}
