package handlers

import (
	"net/http"
	"strconv"

	"github.com/gatherly-app/gatherly/internal/api"
	"github.com/gatherly-app/gatherly/internal/auth"
	"github.com/gatherly-app/gatherly/internal/views"
	"github.com/gatherly-app/gatherly/internal/web"
)

// Events serves the public pages: home, the event listing, and event
// detail. Listings are fetched unauthenticated and filtered locally.
type Events struct {
	svc     *api.EventsService
	catalog *Catalog
}

// NewEvents creates the public events handler.
func NewEvents(svc *api.EventsService, catalog *Catalog) *Events {
	return &Events{svc: svc, catalog: catalog}
}

func (h *Events) Routes(r web.Router) {
	r.GET("/", h.home)
	r.GET("/events", h.list)
	r.GET("/events/{id}", h.detail)
}

func (h *Events) home(c web.Context) error {
	events, err := h.svc.List(c.Context())
	if err != nil {
		c.LogWarn("list events", "error", err)
		events = nil
	}
	if len(events) > 6 {
		events = events[:6]
	}
	user := currentUserRef(c)
	return c.Render(http.StatusOK, views.Layout("Home", user, views.Home(events)))
}

func (h *Events) list(c web.Context) error {
	filters := parseFilters(c)
	events, err := h.svc.List(c.Context())
	if err != nil {
		return c.Error(http.StatusBadGateway, api.FailureMessage(err, "Could not load events."), web.WithError(err))
	}
	events = filters.Apply(events)

	categories, err := h.catalog.Categories(c.Context())
	if err != nil {
		c.LogWarn("list categories", "error", err)
		categories = nil
	}

	user := currentUserRef(c)
	page := views.Layout("Events", user, views.EventsPage(filters, categories, events))
	return c.RenderPartial(http.StatusOK, page, views.EventList(events))
}

func (h *Events) detail(c web.Context) error {
	event, err := h.svc.Get(c.Context(), c.Param("id"))
	if err != nil {
		return c.Error(http.StatusNotFound, api.FailureMessage(err, "Event not found."), web.WithError(err))
	}
	user := currentUserRef(c)
	return c.Render(http.StatusOK, views.Layout(event.Title, user, views.EventDetail(event)))
}

func parseFilters(c web.Context) api.Filters {
	f := api.Filters{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Status:   c.Query("status"),
		SortBy:   c.Query("sortBy"),
	}
	if v, err := strconv.ParseFloat(c.Query("minPrice"), 64); err == nil {
		f.MinPrice = v
	}
	if v, err := strconv.ParseFloat(c.Query("maxPrice"), 64); err == nil {
		f.MaxPrice = v
	}
	return f
}

func currentUserRef(c web.Context) *auth.User {
	if u, ok := auth.CurrentUser(c); ok {
		return &u
	}
	return nil
}
