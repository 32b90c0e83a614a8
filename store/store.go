// Package store holds a reducer's current state and dispatches actions to
// it one at a time.
//
// A Store is what a view owns: it keeps the latest state, records every
// dispatched action in a journal, runs a middleware chain around the
// reduce step and notifies subscribers after each transition.
//
// A Store is not safe for concurrent use. It belongs to one goroutine,
// normally the UI event loop; work done elsewhere hands its actions back
// to that goroutine (as a tea.Msg, for instance) before dispatching.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/HarshaSuranjith/react-hooks-demo/reducer"
)

var (
	// ErrReentrantDispatch is returned when a reducer calls Dispatch on
	// its own store.
	ErrReentrantDispatch = errors.New("dispatch called during reduce")

	// ErrNilAction is returned when Dispatch is given a nil action.
	ErrNilAction = errors.New("nil action")
)

// ReduceFunc is a pure transition function.
type ReduceFunc[S any] func(state S, action reducer.Action) S

// Entry is one journaled dispatch.
type Entry struct {
	Sequence uint32
	Type     string
	Action   reducer.Action
	At       time.Time
}

// Store holds the current state of one reducer.
//
// Subscribers run after the transition is complete and may dispatch
// again; only a dispatch from inside the reducer is rejected.
type Store[S any] struct {
	id      uuid.UUID
	name    string
	reduce  ReduceFunc[S]
	initial S
	logger  *zap.Logger
	now     func() time.Time
	chain   Handler

	state    S
	journal  []Entry
	subs     map[uint64]func(S)
	nextSub  uint64
	reducing bool
}

// New creates a Store named name starting from initial.
func New[S any](name string, reduce ReduceFunc[S], initial S, opts ...Option) *Store[S] {
	o := options{
		id:     uuid.New(),
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Store[S]{
		id:      o.id,
		name:    name,
		reduce:  reduce,
		initial: initial,
		logger:  o.logger.With(zap.String("store", name), zap.String("store_id", o.id.String())),
		now:     o.now,
		state:   initial,
		subs:    make(map[uint64]func(S)),
	}
	s.chain = WithMiddlewares(s.apply, o.middlewares...)

	s.logger.Debug("store created", zap.Int("middlewares", len(o.middlewares)))
	return s
}

// ID returns the store's identifier.
func (s *Store[S]) ID() uuid.UUID { return s.id }

// Name returns the store's name.
func (s *Store[S]) Name() string { return s.name }

// State returns the current state.
func (s *Store[S]) State() S { return s.state }

// Dispatch runs action through the middleware chain and the reducer, then
// notifies subscribers with the new state.
func (s *Store[S]) Dispatch(ctx context.Context, action reducer.Action) error {
	if action == nil {
		return ErrNilAction
	}
	if s.reducing {
		return fmt.Errorf("%s: %w", action.Type(), ErrReentrantDispatch)
	}

	if err := s.chain(ctx, action); err != nil {
		return err
	}

	s.notify()
	return nil
}

// apply is the innermost handler of the chain.
func (s *Store[S]) apply(_ context.Context, action reducer.Action) error {
	s.state = s.reduceGuarded(s.state, action)
	s.journal = append(s.journal, Entry{
		Sequence: uint32(len(s.journal)),
		Type:     action.Type(),
		Action:   action,
		At:       s.now(),
	})
	return nil
}

func (s *Store[S]) reduceGuarded(state S, action reducer.Action) S {
	s.reducing = true
	defer func() { s.reducing = false }()
	return s.reduce(state, action)
}

// notify calls a snapshot of the subscribers, so callbacks may subscribe
// or unsubscribe while it runs.
func (s *Store[S]) notify() {
	state := s.state
	subs := make([]func(S), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}

	for _, fn := range subs {
		fn(state)
	}
}

// Subscribe registers fn to be called after every successful dispatch.
// The returned function unsubscribes; calling it more than once is safe.
func (s *Store[S]) Subscribe(fn func(S)) (unsubscribe func()) {
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() { delete(s.subs, id) })
	}
}

// Subscribers returns the number of live subscriptions.
func (s *Store[S]) Subscribers() int {
	return len(s.subs)
}

// History returns a copy of the journal.
func (s *Store[S]) History() []Entry {
	out := make([]Entry, len(s.journal))
	copy(out, s.journal)
	return out
}

// NextSequence returns the sequence number the next dispatch will get.
func (s *Store[S]) NextSequence() uint32 {
	return uint32(len(s.journal))
}

// Replay folds the journal over the initial state. For a pure reducer the
// result equals State.
func (s *Store[S]) Replay() S {
	state := s.initial
	for _, e := range s.journal {
		state = s.reduceGuarded(state, e.Action)
	}
	return state
}

// Reset returns the store to its initial state and clears the journal.
// Subscriptions are kept.
func (s *Store[S]) Reset() {
	s.state = s.initial
	s.journal = nil

	s.logger.Debug("store reset")
}
