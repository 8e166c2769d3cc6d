package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/gatherly-app/gatherly/internal/auth"
	"github.com/gatherly-app/gatherly/internal/nav"
)

// Layout wraps page content in the shared HTML shell. When user is nil the
// header shows sign-in links instead of the account menu.
func Layout(title string, user *auth.User, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writef(w, `<!doctype html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>%s · Gatherly</title><script src="https://unpkg.com/htmx.org@1.9.12"></script></head><body>`, e(title)); err != nil {
			return err
		}
		if err := header(user).Render(ctx, w); err != nil {
			return err
		}
		if err := writef(w, `<main id="main">`); err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		return writef(w, `</main></body></html>`)
	})
}

// DashboardLayout renders the shell with the role-aware sidebar next to the
// page content.
func DashboardLayout(title string, user auth.User, body templ.Component) templ.Component {
	sections := nav.Resolve(user.Role)
	content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writef(w, `<div class="dashboard">`); err != nil {
			return err
		}
		if err := Sidebar(sections, user.Role).Render(ctx, w); err != nil {
			return err
		}
		if err := writef(w, `<section class="content">`); err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		return writef(w, `</section></div>`)
	})
	return Layout(title, &user, content)
}

// Sidebar renders the navigation sections visible to the given role.
func Sidebar(sections []nav.Section, role auth.Role) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writef(w, `<nav class="sidebar" aria-label="Dashboard">`); err != nil {
			return err
		}
		for _, section := range nav.VisibleTo(sections, role) {
			if err := writef(w, `<div class="nav-section"><h3>%s</h3><ul>`, e(section.Title)); err != nil {
				return err
			}
			for _, item := range section.Items {
				badge := ""
				if item.Badge != "" {
					badge = ` <span class="badge">` + e(item.Badge) + `</span>`
				}
				if err := writef(w, `<li><a href="%s" data-icon="%s">%s%s</a></li>`, e(item.Href), e(item.Icon), e(item.Title), badge); err != nil {
					return err
				}
			}
			if err := writef(w, `</ul></div>`); err != nil {
				return err
			}
		}
		return writef(w, `</nav>`)
	})
}

func header(user *auth.User) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writef(w, `<header class="site-header"><a href="/" class="brand">Gatherly</a><div class="account">`); err != nil {
			return err
		}
		if user != nil {
			if err := writef(w, `<a href="%s">%s</a> <form method="post" action="/logout" class="inline"><button type="submit">Sign out</button></form>`, e(nav.DefaultDashboard(user.Role)), e(user.Name)); err != nil {
				return err
			}
		} else {
			if err := writef(w, `<a href="/login">Sign in</a> <a href="/register">Sign up</a>`); err != nil {
				return err
			}
		}
		return writef(w, `</div></header>`)
	})
}
