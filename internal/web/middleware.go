package web

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"

	"github.com/gatherly-app/gatherly/pkg/logger"
)

// requestIDKey is the context key for the request tracking ID.
type requestIDKey struct{}

// RequestID returns middleware that assigns each request a UUID, exposes
// it in the context and the X-Request-ID response header.
func RequestID() Middleware {
	return func(next HandlerFunc) HandlerFunc {
		return func(c Context) error {
			id := c.Header("X-Request-ID")
			if id == "" {
				id = uuid.NewString()
			}
			c.Set(requestIDKey{}, id)
			c.SetHeader("X-Request-ID", id)
			return next(c)
		}
	}
}

// GetRequestID returns the request tracking ID, "" when the RequestID
// middleware is not installed.
func GetRequestID(c Context) string {
	return ContextValue[string](c, requestIDKey{})
}

// RequestIDExtractor returns a logger extractor that injects the request
// ID into every log record carrying the request context.
func RequestIDExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
			return slog.String("request_id", id), true
		}
		return slog.Attr{}, false
	}
}

// recoverStackSize bounds the recorded stack trace.
const recoverStackSize = 4096

// Recover returns middleware that converts panics into handled errors so a
// misbehaving handler degrades to an error page instead of killing the
// connection.
func Recover() Middleware {
	return func(next HandlerFunc) HandlerFunc {
		return func(c Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					stack := make([]byte, recoverStackSize)
					n := runtime.Stack(stack, false)
					c.LogError("panic recovered", "panic", r, "stack", string(stack[:n]))
					err = ErrInternal("Something went wrong. Please try again.", WithRequestID(GetRequestID(c)))
				}
			}()
			return next(c)
		}
	}
}

// Logging returns middleware that logs each request with method, path,
// status, and duration.
func Logging() Middleware {
	return func(next HandlerFunc) HandlerFunc {
		return func(c Context) error {
			start := time.Now()
			err := next(c)

			status := 0
			if rw, ok := c.Response().(*ResponseWriter); ok {
				status = rw.Status()
			}
			c.LogInfo("request",
				slog.String("method", c.Request().Method),
				slog.String("path", c.Request().URL.Path),
				slog.Int("status", status),
				slog.Duration("duration", time.Since(start)),
			)
			return err
		}
	}
}
