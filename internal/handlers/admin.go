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

// Admin serves the admin dashboard: account management, host management,
// event moderation, and category management.
type Admin struct {
	events     *api.EventsService
	hosts      *api.HostsService
	users      *api.UsersService
	hostAction *actions.Hosts
	catAction  *actions.Categories
	catalog    *Catalog
}

// NewAdmin creates the admin dashboard handler.
func NewAdmin(events *api.EventsService, hosts *api.HostsService, users *api.UsersService,
	hostAction *actions.Hosts, catAction *actions.Categories, catalog *Catalog) *Admin {
	return &Admin{
		events:     events,
		hosts:      hosts,
		users:      users,
		hostAction: hostAction,
		catAction:  catAction,
		catalog:    catalog,
	}
}

func (h *Admin) Routes(r web.Router) {
	r.Route("/admin/dashboard", func(r web.Router) {
		r.Use(auth.RequireRole(auth.RoleAdmin))
		r.GET("/", h.dashboard)
		r.GET("/events", h.allEvents)
		r.GET("/event-categories", h.categoriesPage)
		r.POST("/event-categories", h.createCategory)
		r.GET("/admins-management", h.admins)
		r.GET("/users-management", h.members)
		r.GET("/hosts-management", h.hostList)
		r.POST("/hosts-management", h.saveHost)
		r.GET("/hosts-management/new", h.newHost)
		r.GET("/hosts-management/{id}/edit", h.editHost)
		r.POST("/hosts-management/{id}", h.saveHost)
		r.DELETE("/hosts-management/{id}", h.deleteHost)
	})
}

func (h *Admin) dashboard(c web.Context) error {
	user := sessionUser(c)
	return c.Render(http.StatusOK, views.DashboardLayout("Admin Dashboard", user, views.Dashboard(user)))
}

func (h *Admin) allEvents(c web.Context) error {
	user := sessionUser(c)
	events, err := h.events.List(apiCtx(c))
	if err != nil {
		return c.Error(http.StatusBadGateway, api.FailureMessage(err, "Could not load events."), web.WithError(err))
	}
	return c.Render(http.StatusOK, views.DashboardLayout("All Events", user, views.AdminEvents(events)))
}

func (h *Admin) categoriesPage(c web.Context) error {
	user := sessionUser(c)
	categories, err := h.catalog.Categories(c.Context())
	if err != nil {
		return c.Error(http.StatusBadGateway, api.FailureMessage(err, "Could not load categories."), web.WithError(err))
	}
	return c.Render(http.StatusOK,
		views.DashboardLayout("Event Categories", user, views.CategoriesPage(forms.Initial(), categories)))
}

func (h *Admin) createCategory(c web.Context) error {
	user := sessionUser(c)
	st := h.catAction.Create(apiCtx(c), formValues(c))

	form := views.CategoryForm(st)
	if !st.Success {
		categories, _ := h.catalog.Categories(c.Context())
		page := views.DashboardLayout("Event Categories", user, views.CategoriesPage(st, categories))
		return c.RenderPartial(http.StatusUnprocessableEntity, page, form)
	}

	h.catalog.Invalidate(c.Context())
	categories, err := h.catalog.Categories(c.Context())
	if err != nil {
		c.LogWarn("list categories", "error", err)
	}
	page := views.DashboardLayout("Event Categories", user, views.CategoriesPage(st, categories))
	return c.RenderPartial(http.StatusOK, page, form,
		htmx.WithTrigger("category-created"),
	)
}

func (h *Admin) admins(c web.Context) error {
	user := sessionUser(c)
	members, err := h.users.Admins(apiCtx(c))
	if err != nil {
		return c.Error(http.StatusBadGateway, api.FailureMessage(err, "Could not load admins."), web.WithError(err))
	}
	return c.Render(http.StatusOK, views.DashboardLayout("Admins", user, views.MemberTable("Admins", members)))
}

func (h *Admin) members(c web.Context) error {
	user := sessionUser(c)
	members, err := h.users.Users(apiCtx(c))
	if err != nil {
		return c.Error(http.StatusBadGateway, api.FailureMessage(err, "Could not load users."), web.WithError(err))
	}
	return c.Render(http.StatusOK, views.DashboardLayout("Users", user, views.MemberTable("Users", members)))
}

func (h *Admin) hostList(c web.Context) error {
	user := sessionUser(c)
	hosts, err := h.hosts.List(apiCtx(c))
	if err != nil {
		return c.Error(http.StatusBadGateway, api.FailureMessage(err, "Could not load hosts."), web.WithError(err))
	}
	return c.Render(http.StatusOK, views.DashboardLayout("Hosts", user, views.HostsPage(hosts)))
}

func (h *Admin) newHost(c web.Context) error {
	user := sessionUser(c)
	form := views.HostForm(forms.Initial(), api.Host{}, "")
	return c.Render(http.StatusOK, views.DashboardLayout("Add host", user, form))
}

func (h *Admin) editHost(c web.Context) error {
	user := sessionUser(c)
	host, err := h.hosts.Get(apiCtx(c), c.Param("id"))
	if err != nil {
		return c.Error(http.StatusNotFound, api.FailureMessage(err, "Host not found."), web.WithError(err))
	}
	form := views.HostForm(forms.Initial(), host, "")
	return c.Render(http.StatusOK, views.DashboardLayout("Edit host", user, form))
}

// saveHost handles both variants of the host dialog: the route without an
// id creates, the route with an id updates.
func (h *Admin) saveHost(c web.Context) error {
	user := sessionUser(c)
	id := c.Param("id")
	values := formValues(c)

	upload, closer := formUpload(c, "file")
	if closer != nil {
		defer closer.Close()
	}

	st := h.hostAction.Save(apiCtx(c), id, values, upload)

	prevFile := values.Get("prevFile")
	if upload != nil {
		prevFile = upload.Filename
	}
	if st.Success {
		prevFile = ""
	}

	form := views.HostForm(st, api.Host{ID: id}, prevFile)
	title := "Add host"
	if id != "" {
		title = "Edit host"
	}
	page := views.DashboardLayout(title, user, form)
	if !st.Success {
		return c.RenderPartial(http.StatusUnprocessableEntity, page, form)
	}
	return c.RenderPartial(http.StatusOK, page, form, htmx.WithTrigger("host-saved"))
}

func (h *Admin) deleteHost(c web.Context) error {
	message, err := h.hostAction.Delete(apiCtx(c), c.Param("id"))
	if err != nil {
		return c.Error(http.StatusBadGateway, api.FailureMessage(err, "Failed to delete host."), web.WithError(err))
	}
	c.LogInfo("host deleted", "message", message)

	hosts, err := h.hosts.List(apiCtx(c))
	if err != nil {
		return c.Error(http.StatusBadGateway, api.FailureMessage(err, "Could not load hosts."), web.WithError(err))
	}
	return c.Render(http.StatusOK, views.HostTable(hosts), htmx.WithTrigger("host-deleted"))
}
