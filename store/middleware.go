package store

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"go.uber.org/zap"

	"github.com/HarshaSuranjith/react-hooks-demo/reducer"
)

// Handler processes one dispatched action.
type Handler func(ctx context.Context, action reducer.Action) error

// Middleware wraps a Handler.
type Middleware func(next Handler) Handler

// WithMiddlewares wraps fn so that middlewares[0] runs first.
func WithMiddlewares(fn Handler, middlewares ...Middleware) Handler {
	wrapped := fn
	for i := len(middlewares) - 1; i >= 0; i-- {
		wrapped = middlewares[i](wrapped)
	}
	return wrapped
}

// Logging logs every dispatch with its type, outcome and duration.
// Rejections carrying an ActionError also log its status code.
func Logging(logger *zap.Logger) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, action reducer.Action) error {
			start := time.Now()
			err := next(ctx, action)
			fields := []zap.Field{
				zap.String("action", action.Type()),
				zap.Duration("duration", time.Since(start)),
			}
			if s, ok := action.(fmt.Stringer); ok {
				fields = append(fields, zap.Stringer("payload", s))
			}
			if err != nil {
				if code, ok := reducer.CodeOf(err); ok {
					fields = append(fields, zap.Stringer("code", code))
				}
				logger.Warn("dispatch rejected", append(fields, zap.Error(err))...)
				return err
			}
			logger.Debug("dispatched", fields...)
			return nil
		}
	}
}

// Recovery converts a panic further down the chain into an error.
func Recovery(logger *zap.Logger) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, action reducer.Action) (err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("panic during dispatch",
						zap.String("action", action.Type()),
						zap.Any("panic", r),
						zap.ByteString("stack", debug.Stack()),
					)
					err = fmt.Errorf("dispatch %s: panic: %v", action.Type(), r)
				}
			}()
			return next(ctx, action)
		}
	}
}

// Validation rejects actions for which validate returns an error. Rejected
// actions never reach the reducer or the journal.
func Validation(validate func(reducer.Action) error) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, action reducer.Action) error {
			if err := validate(action); err != nil {
				return fmt.Errorf("validate %s: %w", action.Type(), err)
			}
			return next(ctx, action)
		}
	}
}

// Cancellation rejects dispatches whose context is already done.
func Cancellation() Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, action reducer.Action) error {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("dispatch %s: %w", action.Type(), err)
			}
			return next(ctx, action)
		}
	}
}
