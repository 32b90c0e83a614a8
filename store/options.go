package store

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type options struct {
	id          uuid.UUID
	logger      *zap.Logger
	now         func() time.Time
	middlewares []Middleware
}

// Option configures a Store.
type Option func(*options)

// WithID sets the store identifier. Defaults to a random UUID.
func WithID(id uuid.UUID) Option {
	return func(o *options) { o.id = id }
}

// WithLogger sets the logger used for store lifecycle messages.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithClock sets the clock used to timestamp journal entries.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithMiddleware appends middlewares. The first one listed is outermost.
func WithMiddleware(mws ...Middleware) Option {
	return func(o *options) { o.middlewares = append(o.middlewares, mws...) }
}
