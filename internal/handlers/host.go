package handlers

import (
	"net/http"

	"github.com/gatherly-app/gatherly/internal/actions"
	"github.com/gatherly-app/gatherly/internal/api"
	"github.com/gatherly-app/gatherly/internal/auth"
	"github.com/gatherly-app/gatherly/internal/forms"
	"github.com/gatherly-app/gatherly/internal/views"
	"github.com/gatherly-app/gatherly/internal/web"
	"github.com/gatherly-app/gatherly/pkg/htmx"
)

// Host serves the host dashboard: event creation and the host's own
// event listing.
type Host struct {
	events  *api.EventsService
	action  *actions.Events
	catalog *Catalog
}

// NewHost creates the host dashboard handler.
func NewHost(events *api.EventsService, action *actions.Events, catalog *Catalog) *Host {
	return &Host{events: events, action: action, catalog: catalog}
}

func (h *Host) Routes(r web.Router) {
	r.Route("/host/dashboard", func(r web.Router) {
		r.Use(auth.RequireRole(auth.RoleHost))
		r.GET("/", h.dashboard)
		r.GET("/create-events", h.createForm)
		r.POST("/create-events", h.create)
		r.GET("/my-hosted-events", h.hostedEvents)
	})
}

func (h *Host) dashboard(c web.Context) error {
	user := sessionUser(c)
	return c.Render(http.StatusOK, views.DashboardLayout("Host Dashboard", user, views.Dashboard(user)))
}

func (h *Host) createForm(c web.Context) error {
	user := sessionUser(c)
	form := views.EventForm(forms.Initial(), h.categories(c), "")
	return c.Render(http.StatusOK, views.DashboardLayout("Create Events", user, form))
}

func (h *Host) create(c web.Context) error {
	user := sessionUser(c)
	values := formValues(c)

	upload, closer := formUpload(c, "file")
	if closer != nil {
		defer closer.Close()
	}

	st := h.action.Create(apiCtx(c), values, upload)

	// A browser cannot re-fill a file input, so on failure the form notes
	// what was attached and asks for it again.
	prevFile := values.Get("prevFile")
	if upload != nil {
		prevFile = upload.Filename
	}
	if st.Success {
		prevFile = ""
	}

	form := views.EventForm(st, h.categories(c), prevFile)
	page := views.DashboardLayout("Create Events", user, form)
	if !st.Success {
		return c.RenderPartial(http.StatusUnprocessableEntity, page, form)
	}
	return c.RenderPartial(http.StatusOK, page, form, htmx.WithTrigger("event-created"))
}

func (h *Host) hostedEvents(c web.Context) error {
	user := sessionUser(c)
	events, err := h.events.List(apiCtx(c))
	if err != nil {
		return c.Error(http.StatusBadGateway, api.FailureMessage(err, "Could not load events."), web.WithError(err))
	}
	mine := make([]api.Event, 0, len(events))
	for _, ev := range events {
		if ev.HostID == user.ID {
			mine = append(mine, ev)
		}
	}
	return c.Render(http.StatusOK, views.DashboardLayout("My Hosted Events", user, views.HostedEvents(mine)))
}

func (h *Host) categories(c web.Context) []api.Category {
	categories, err := h.catalog.Categories(c.Context())
	if err != nil {
		c.LogWarn("list categories", "error", err)
		return nil
	}
	return categories
}
