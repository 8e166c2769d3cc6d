package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/gatherly-app/gatherly/internal/api"
	"github.com/gatherly-app/gatherly/internal/forms"
)

// HostForm renders the create-or-edit host dialog body. An empty host.ID
// means the create variant, which adds the password field.
func HostForm(st forms.State, host api.Host, prevFile string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		action := "/admin/dashboard/hosts-management"
		title := "Add host"
		if host.ID != "" {
			action = "/admin/dashboard/hosts-management/" + host.ID
			title = "Edit host"
		}
		if err := writef(w, `<form id="host-form" hx-post="%s" hx-target="#host-form" hx-swap="outerHTML" hx-disabled-elt="find button[type=submit]" enctype="multipart/form-data"><h2>%s</h2>`, e(action), e(title)); err != nil {
			return err
		}
		if err := Banner(st).Render(ctx, w); err != nil {
			return err
		}
		verified := "false"
		if host.IsVerified {
			verified = "true"
		}
		fields := []templ.Component{
			field(st, "name", "Name", "text", host.Name),
			field(st, "email", "Email", "email", host.Email),
			field(st, "displayName", "Display name", "text", host.DisplayName),
		}
		if host.ID == "" {
			fields = append(fields, field(st, "password", "Password", "password", ""))
		}
		fields = append(fields,
			textarea(st, "bio", "Bio", host.Bio),
			field(st, "location", "Location", "text", host.Location),
			field(st, "contactNumber", "Contact number", "text", host.ContactNumber),
			checkbox(st, "isVerified", "Verified", verified),
		)
		if host.ID != "" {
			deleted := ""
			if host.IsDeleted {
				deleted = "true"
			}
			fields = append(fields, checkbox(st, "isDeleted", "Deactivated", deleted))
		}
		if err := join(fields...).Render(ctx, w); err != nil {
			return err
		}
		if err := writef(w, `<div class="field"><label for="file">Profile image</label><input type="file" id="file" name="file" accept="image/*">`); err != nil {
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
		return writef(w, `<button type="submit">Save host</button></form>`)
	})
}

// HostTable lists hosts with edit and delete controls.
func HostTable(hosts []api.Host) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(hosts) == 0 {
			return writef(w, `<p class="empty">No hosts yet.</p>`)
		}
		if err := writef(w, `<table class="data"><thead><tr><th>Name</th><th>Email</th><th>Location</th><th>Verified</th><th></th></tr></thead><tbody>`); err != nil {
			return err
		}
		for _, h := range hosts {
			verified := "No"
			if h.IsVerified {
				verified = "Yes"
			}
			if err := writef(w,
				`<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td><a href="/admin/dashboard/hosts-management/%s/edit">Edit</a> <button hx-delete="/admin/dashboard/hosts-management/%s" hx-target="#host-table" hx-confirm="Delete this host?">Delete</button></td></tr>`,
				e(h.Name), e(h.Email), e(h.Location), verified, e(h.ID), e(h.ID)); err != nil {
				return err
			}
		}
		return writef(w, `</tbody></table>`)
	})
}

// HostsPage is the admin host management screen.
func HostsPage(hosts []api.Host) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writef(w, `<h1>Hosts</h1><a href="/admin/dashboard/hosts-management/new" class="button">Add host</a><div id="host-table">`); err != nil {
			return err
		}
		if err := HostTable(hosts).Render(ctx, w); err != nil {
			return err
		}
		return writef(w, `</div>`)
	})
}
