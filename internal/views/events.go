package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/gatherly-app/gatherly/internal/api"
	"github.com/gatherly-app/gatherly/internal/forms"
)

// EventList renders the public event grid.
func EventList(events []api.Event) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(events) == 0 {
			return writef(w, `<p class="empty">No events found.</p>`)
		}
		if err := writef(w, `<ul class="event-grid">`); err != nil {
			return err
		}
		for _, ev := range events {
			if err := eventCard(ev).Render(ctx, w); err != nil {
				return err
			}
		}
		return writef(w, `</ul>`)
	})
}

func eventCard(ev api.Event) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return writef(w,
			`<li class="event-card"><a href="/events/%s"><h3>%s</h3></a><p>%s · %s</p><p>%s · $%.2f · %s</p></li>`,
			e(ev.ID), e(ev.Title), e(ev.CategoryName), e(ev.Location), e(ev.Date), ev.Fee, e(ev.Status))
	})
}

// EventFilterBar renders the search and filter controls above the list. The
// form re-fetches the list fragment on change.
func EventFilterBar(f api.Filters, categories []api.Category) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writef(w, `<form class="filters" hx-get="/events" hx-target="#event-list" hx-swap="innerHTML"><input type="search" name="search" placeholder="Search events" value="%s"><select name="category"><option value="">All categories</option>`, e(f.Search)); err != nil {
			return err
		}
		for _, c := range categories {
			marker := ""
			if c.Name == f.Category {
				marker = " selected"
			}
			if err := writef(w, `<option value="%s"%s>%s</option>`, e(c.Name), marker, e(c.Name)); err != nil {
				return err
			}
		}
		if err := writef(w, `</select><select name="status"><option value="">Any status</option>`); err != nil {
			return err
		}
		for _, s := range api.EventStatuses {
			marker := ""
			if s == f.Status {
				marker = " selected"
			}
			if err := writef(w, `<option value="%s"%s>%s</option>`, e(s), marker, e(s)); err != nil {
				return err
			}
		}
		return writef(w, `</select><button type="submit">Apply</button></form>`)
	})
}

// EventsPage is the full public listing: filter bar plus grid.
func EventsPage(f api.Filters, categories []api.Category, events []api.Event) templ.Component {
	list := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writef(w, `<h1>Events</h1>`); err != nil {
			return err
		}
		if err := EventFilterBar(f, categories).Render(ctx, w); err != nil {
			return err
		}
		if err := writef(w, `<div id="event-list">`); err != nil {
			return err
		}
		if err := EventList(events).Render(ctx, w); err != nil {
			return err
		}
		return writef(w, `</div>`)
	})
	return list
}

// EventDetail renders one event. The description is sanitized before it is
// stored, so it renders unescaped.
func EventDetail(ev api.Event) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writef(w, `<article class="event"><h1>%s</h1><p class="meta">%s · %s · %s</p>`, e(ev.Title), e(ev.CategoryName), e(ev.Location), e(ev.Date)); err != nil {
			return err
		}
		if ev.Image != "" {
			if err := writef(w, `<img src="%s" alt="">`, e(ev.Image)); err != nil {
				return err
			}
		}
		if err := writef(w, `<div class="description">%s</div>`, ev.Description); err != nil {
			return err
		}
		return writef(w, `<dl><dt>Fee</dt><dd>$%.2f</dd><dt>Participants</dt><dd>%d–%d</dd><dt>Status</dt><dd>%s</dd><dt>Type</dt><dd>%s</dd></dl></article>`,
			ev.Fee, ev.MinParticipants, ev.MaxParticipants, e(ev.Status), e(ev.Type))
	})
}

// EventForm renders the create-event form. prevFile carries the name of a
// file chosen on a failed submission so the user can see what they had
// attached; browsers cannot re-fill file inputs, so it renders as a note.
func EventForm(st forms.State, categories []api.Category, prevFile string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writef(w, `<form id="event-form" hx-post="/host/dashboard/create-events" hx-target="#event-form" hx-swap="outerHTML" hx-disabled-elt="find button[type=submit]" enctype="multipart/form-data">`); err != nil {
			return err
		}
		if err := Banner(st).Render(ctx, w); err != nil {
			return err
		}
		opts := make([]selectOption, 0, len(categories))
		for _, c := range categories {
			opts = append(opts, selectOption{Value: c.Name, Label: c.Name})
		}
		typeOpts := make([]selectOption, 0, len(api.EventTypes))
		for _, t := range api.EventTypes {
			typeOpts = append(typeOpts, selectOption{Value: t, Label: t})
		}
		statusOpts := make([]selectOption, 0, len(api.EventStatuses))
		for _, s := range api.EventStatuses {
			statusOpts = append(statusOpts, selectOption{Value: s, Label: s})
		}
		fields := join(
			field(st, "title", "Title", "text", ""),
			textarea(st, "description", "Description", ""),
			selectField(st, "category", "Category", "", opts),
			selectField(st, "type", "Event type", "PUBLIC", typeOpts),
			selectField(st, "status", "Status", "OPEN", statusOpts),
			field(st, "startDate", "Starts", "datetime-local", ""),
			field(st, "endDate", "Ends", "datetime-local", ""),
			field(st, "location", "Location", "text", ""),
			field(st, "capacity", "Capacity", "number", ""),
			field(st, "minParticipants", "Minimum participants", "number", "1"),
			field(st, "price", "Price", "number", "0"),
		)
		if err := fields.Render(ctx, w); err != nil {
			return err
		}
		if err := writef(w, `<div class="field"><label for="file">Cover image</label><input type="file" id="file" name="file" accept="image/*">`); err != nil {
			return err
		}
		if prevFile != "" {
			if err := writef(w, `<p class="field-note">Previously selected: %s - please attach it again.</p>`, e(prevFile)); err != nil {
				return err
			}
		}
		if err := writef(w, `</div><input type="hidden" name="prevFile" value="%s">`, e(prevFile)); err != nil {
			return err
		}
		return writef(w, `<button type="submit">Create event</button></form>`)
	})
}
