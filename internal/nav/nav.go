// Package nav derives the dashboard navigation menu and default landing
// route from the authenticated user's role. All configuration is immutable
// role-indexed lookup data; resolution is a pure function of the role.
package nav

import "github.com/gatherly-app/gatherly/internal/auth"

// Item is one navigation link. Icon is a symbolic name resolved by the
// rendering layer, not a rendering object.
type Item struct {
	Title string
	Href  string
	Icon  string
	Badge string
	Roles []auth.Role
}

// Section is an ordered group of items with an optional title.
type Section struct {
	Title string
	Items []Item
}

// Default landing paths per role.
const (
	adminDashboard = "/admin/dashboard"
	hostDashboard  = "/host/dashboard"
	userDashboard  = "/dashboard"
)

// DefaultDashboard returns the landing path for a role's dashboard.
// Unknown roles land on the public home page.
func DefaultDashboard(role auth.Role) string {
	switch role {
	case auth.RoleAdmin:
		return adminDashboard
	case auth.RoleHost:
		return hostDashboard
	case auth.RoleUser:
		return userDashboard
	}
	return "/"
}

var allRoles = []auth.Role{auth.RoleUser, auth.RoleHost, auth.RoleAdmin}

// commonSections returns the block shared by every role. The Dashboard
// entry is parameterized with the role's default landing path, so the
// common block is computed per call rather than held as package state.
func commonSections(role auth.Role) []Section {
	return []Section{
		{
			Items: []Item{
				{Title: "Dashboard", Href: DefaultDashboard(role), Icon: "layout-dashboard", Roles: allRoles},
				{Title: "My Profile", Href: "/my-profile", Icon: "user", Roles: allRoles},
			},
		},
		{
			Title: "Settings",
			Items: []Item{
				{Title: "Change Password", Href: "/change-password", Icon: "settings", Roles: []auth.Role{auth.RoleUser}},
			},
		},
	}
}

var hostSections = []Section{
	{
		Title: "Events Management",
		Items: []Item{
			{Title: "Create Events", Href: "/host/dashboard/create-events", Icon: "calendar", Roles: []auth.Role{auth.RoleHost}},
			{Title: "My Hosted Events", Href: "/host/dashboard/my-hosted-events", Icon: "ticket", Roles: []auth.Role{auth.RoleHost}},
		},
	},
}

var userSections = []Section{
	{
		Title: "Events",
		Items: []Item{
			{Title: "My Events", Href: "/dashboard/my-events", Icon: "calendar", Roles: []auth.Role{auth.RoleUser}},
		},
	},
}

var adminSections = []Section{
	{
		Title: "User Management",
		Items: []Item{
			{Title: "Admins", Href: "/admin/dashboard/admins-management", Icon: "shield", Roles: []auth.Role{auth.RoleAdmin}},
			{Title: "Hosts", Href: "/admin/dashboard/hosts-management", Icon: "briefcase", Roles: []auth.Role{auth.RoleAdmin}},
			{Title: "Users", Href: "/admin/dashboard/users-management", Icon: "users", Roles: []auth.Role{auth.RoleAdmin}},
		},
	},
	{
		Title: "Events Management",
		Items: []Item{
			{Title: "All Events", Href: "/admin/dashboard/events", Icon: "calendar", Roles: []auth.Role{auth.RoleAdmin}},
			{Title: "Event Categories", Href: "/admin/dashboard/event-categories", Icon: "tags", Roles: []auth.Role{auth.RoleAdmin}},
		},
	},
}

// Resolve returns the ordered navigation sections for a role: the common
// block followed by exactly one role-specific block. An unrecognized role
// yields an empty list; deciding whether that is an error is the caller's
// concern.
func Resolve(role auth.Role) []Section {
	var specific []Section
	switch role {
	case auth.RoleAdmin:
		specific = adminSections
	case auth.RoleHost:
		specific = hostSections
	case auth.RoleUser:
		specific = userSections
	default:
		return []Section{}
	}

	common := commonSections(role)
	out := make([]Section, 0, len(common)+len(specific))
	out = append(out, common...)
	out = append(out, specific...)
	return out
}

// VisibleTo filters sections down to the items whose role set includes
// role, dropping sections left empty. The source data pre-selects whole
// per-role blocks, so this is a render-time safety net rather than the
// primary mechanism.
func VisibleTo(sections []Section, role auth.Role) []Section {
	out := make([]Section, 0, len(sections))
	for _, sec := range sections {
		items := make([]Item, 0, len(sec.Items))
		for _, item := range sec.Items {
			for _, r := range item.Roles {
				if r == role {
					items = append(items, item)
					break
				}
			}
		}
		if len(items) > 0 {
			out = append(out, Section{Title: sec.Title, Items: items})
		}
	}
	return out
}
