package handlers

import (
	"net/http"

	"github.com/gatherly-app/gatherly/internal/api"
	"github.com/gatherly-app/gatherly/internal/auth"
	"github.com/gatherly-app/gatherly/internal/views"
	"github.com/gatherly-app/gatherly/internal/web"
)

// Dashboard serves the attendee dashboard and the pages shared by every
// signed-in role.
type Dashboard struct {
	events *api.EventsService
}

// NewDashboard creates the user dashboard handler.
func NewDashboard(events *api.EventsService) *Dashboard {
	return &Dashboard{events: events}
}

func (h *Dashboard) Routes(r web.Router) {
	r.Group(func(r web.Router) {
		r.Use(auth.RequireAuth())
		r.GET("/my-profile", h.profile)
	})
	r.Route("/dashboard", func(r web.Router) {
		r.Use(auth.RequireRole(auth.RoleUser))
		r.GET("/", h.home)
		r.GET("/my-events", h.myEvents)
	})
}

func (h *Dashboard) home(c web.Context) error {
	user := sessionUser(c)
	return c.Render(http.StatusOK, views.DashboardLayout("Dashboard", user, views.Dashboard(user)))
}

func (h *Dashboard) profile(c web.Context) error {
	user := sessionUser(c)
	return c.Render(http.StatusOK, views.DashboardLayout("My Profile", user, views.Profile(user)))
}

func (h *Dashboard) myEvents(c web.Context) error {
	user := sessionUser(c)
	events, err := h.events.Mine(apiCtx(c))
	if err != nil {
		return c.Error(http.StatusBadGateway, api.FailureMessage(err, "Could not load your events."), web.WithError(err))
	}
	return c.Render(http.StatusOK, views.DashboardLayout("My Events", user, views.MyEvents(events)))
}
