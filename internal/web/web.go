// Package web is the HTTP kernel of the application: a thin layer over chi
// that gives handlers a request Context, centralized error handling,
// HTMX-aware rendering, and graceful shutdown.
package web

// Handler declares routes on a router.
//
// Example:
//
//	type EventsHandler struct {
//	    events *api.EventsService
//	}
//
//	func (h *EventsHandler) Routes(r web.Router) {
//	    r.GET("/events", h.list)
//	    r.POST("/events", h.create)
//	}
type Handler interface {
	Routes(r Router)
}

// HandlerFunc is the signature for route handlers. Returning a non-nil
// error triggers the application error handler.
type HandlerFunc func(c Context) error

// Middleware wraps a HandlerFunc to add cross-cutting concerns.
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler handles errors returned from handlers.
type ErrorHandler func(Context, error) error
