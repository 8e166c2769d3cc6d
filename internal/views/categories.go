package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/gatherly-app/gatherly/internal/api"
	"github.com/gatherly-app/gatherly/internal/forms"
)

// CategoryForm renders the add-category form used on the admin page.
func CategoryForm(st forms.State) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writef(w, `<form id="category-form" hx-post="/admin/dashboard/event-categories" hx-target="#category-form" hx-swap="outerHTML" hx-disabled-elt="find button[type=submit]">`); err != nil {
			return err
		}
		if err := Banner(st).Render(ctx, w); err != nil {
			return err
		}
		if err := field(st, "name", "Category name", "text", "").Render(ctx, w); err != nil {
			return err
		}
		return writef(w, `<button type="submit">Add category</button></form>`)
	})
}

// CategoryTable lists existing categories.
func CategoryTable(categories []api.Category) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(categories) == 0 {
			return writef(w, `<p class="empty">No categories yet.</p>`)
		}
		if err := writef(w, `<table class="data"><thead><tr><th>Name</th></tr></thead><tbody>`); err != nil {
			return err
		}
		for _, c := range categories {
			if err := writef(w, `<tr><td>%s</td></tr>`, e(c.Name)); err != nil {
				return err
			}
		}
		return writef(w, `</tbody></table>`)
	})
}

// CategoriesPage is the admin screen combining the form and the table.
func CategoriesPage(st forms.State, categories []api.Category) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writef(w, `<h1>Event Categories</h1>`); err != nil {
			return err
		}
		if err := CategoryForm(st).Render(ctx, w); err != nil {
			return err
		}
		if err := writef(w, `<div id="category-table">`); err != nil {
			return err
		}
		if err := CategoryTable(categories).Render(ctx, w); err != nil {
			return err
		}
		return writef(w, `</div>`)
	})
}
