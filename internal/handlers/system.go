package handlers

import (
	"net/http"

	"github.com/gatherly-app/gatherly/internal/api"
	"github.com/gatherly-app/gatherly/internal/views"
	"github.com/gatherly-app/gatherly/internal/web"
)

// System serves health probes.
type System struct {
	client *api.Client
}

// NewSystem creates the system handler.
func NewSystem(client *api.Client) *System {
	return &System{client: client}
}

func (h *System) Routes(r web.Router) {
	r.GET("/healthz", h.live)
	r.GET("/readyz", h.ready)
}

func (h *System) live(c web.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// ready reports whether the remote API is reachable; the app is useless
// without it.
func (h *System) ready(c web.Context) error {
	if err := h.client.Healthy(c.Context()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// ErrorHandler renders handler errors as a full error page, or a bare
// message for HTMX requests so the fragment swap stays small.
func ErrorHandler() web.ErrorHandler {
	return func(c web.Context, err error) error {
		if c.Written() {
			return nil
		}
		code := http.StatusInternalServerError
		message := "Something went wrong. Please try again."
		if httpErr := web.AsHTTPError(err); httpErr != nil {
			code = httpErr.Code
			message = httpErr.Message
		}
		if code >= http.StatusInternalServerError {
			c.LogError("request failed", "error", err, "status", code)
		}
		if c.IsHTMX() {
			return c.String(code, message)
		}
		user := currentUserRef(c)
		return c.Render(code, views.Layout("Error", user, views.ErrorPage(code, message)))
	}
}

// NotFoundHandler renders the 404 page.
func NotFoundHandler() web.HandlerFunc {
	return func(c web.Context) error {
		user := currentUserRef(c)
		return c.Render(http.StatusNotFound, views.Layout("Not Found", user, views.ErrorPage(http.StatusNotFound, "The page you are looking for does not exist.")))
	}
}
