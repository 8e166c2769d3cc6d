package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/gatherly-app/gatherly/internal/api"
	"github.com/gatherly-app/gatherly/internal/auth"
)

// Home renders the landing page with a handful of upcoming events.
func Home(events []api.Event) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writef(w, `<section class="hero"><h1>Find something to do</h1><p>Browse events hosted by people near you.</p><a href="/events" class="button">Browse events</a></section><h2>Upcoming</h2>`); err != nil {
			return err
		}
		return EventList(events).Render(ctx, w)
	})
}

// Dashboard renders the landing screen of a role dashboard.
func Dashboard(user auth.User) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return writef(w, `<h1>Welcome back, %s</h1><p>Pick a section from the sidebar to get started.</p>`, e(user.Name))
	})
}

// Profile renders the account details page.
func Profile(user auth.User) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return writef(w, `<h1>My Profile</h1><dl><dt>Name</dt><dd>%s</dd><dt>Email</dt><dd>%s</dd><dt>Role</dt><dd>%s</dd></dl>`,
			e(user.Name), e(user.Email), e(string(user.Role)))
	})
}

// MyEvents renders the attendee's registered events.
func MyEvents(events []api.Event) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writef(w, `<h1>My Events</h1>`); err != nil {
			return err
		}
		return EventList(events).Render(ctx, w)
	})
}

// HostedEvents renders the host's own events.
func HostedEvents(events []api.Event) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writef(w, `<h1>My Hosted Events</h1>`); err != nil {
			return err
		}
		return EventList(events).Render(ctx, w)
	})
}

// MemberTable lists accounts on the admin management screens.
func MemberTable(title string, members []api.Member) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writef(w, `<h1>%s</h1>`, e(title)); err != nil {
			return err
		}
		if len(members) == 0 {
			return writef(w, `<p class="empty">Nothing to show.</p>`)
		}
		if err := writef(w, `<table class="data"><thead><tr><th>Name</th><th>Email</th><th>Role</th></tr></thead><tbody>`); err != nil {
			return err
		}
		for _, m := range members {
			if err := writef(w, `<tr><td>%s</td><td>%s</td><td>%s</td></tr>`, e(m.Name), e(m.Email), e(m.Role)); err != nil {
				return err
			}
		}
		return writef(w, `</tbody></table>`)
	})
}

// AdminEvents lists every event with its status for moderation.
func AdminEvents(events []api.Event) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writef(w, `<h1>All Events</h1>`); err != nil {
			return err
		}
		if len(events) == 0 {
			return writef(w, `<p class="empty">No events found.</p>`)
		}
		if err := writef(w, `<table class="data"><thead><tr><th>Title</th><th>Category</th><th>Date</th><th>Status</th><th>Fee</th></tr></thead><tbody>`); err != nil {
			return err
		}
		for _, ev := range events {
			if err := writef(w, `<tr><td><a href="/events/%s">%s</a></td><td>%s</td><td>%s</td><td>%s</td><td>$%.2f</td></tr>`,
				e(ev.ID), e(ev.Title), e(ev.CategoryName), e(ev.Date), e(ev.Status), ev.Fee); err != nil {
				return err
			}
		}
		return writef(w, `</tbody></table>`)
	})
}

// ErrorPage renders a friendly full-page error.
func ErrorPage(status int, message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return writef(w, `<section class="error-page"><h1>%d</h1><p>%s</p><a href="/">Back to home</a></section>`, status, e(message))
	})
}
