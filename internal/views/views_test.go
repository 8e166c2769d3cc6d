package views_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatherly-app/gatherly/internal/api"
	"github.com/gatherly-app/gatherly/internal/auth"
	"github.com/gatherly-app/gatherly/internal/forms"
	"github.com/gatherly-app/gatherly/internal/nav"
	"github.com/gatherly-app/gatherly/internal/views"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestEventFormEchoesStateAndErrors(t *testing.T) {
	t.Parallel()

	st := forms.Invalid(
		forms.Values{"title": "ab", "capacity": "0"},
		forms.Issues{{Field: "capacity", Message: "Capacity must be greater than 0"}},
	)
	out := render(t, views.EventForm(st, []api.Category{{Name: "Sports"}}, ""))

	assert.Contains(t, out, `value="ab"`)
	assert.Contains(t, out, `value="0"`)
	assert.Contains(t, out, "Capacity must be greater than 0")
	assert.Contains(t, out, "Please fix the highlighted fields.")
	assert.Contains(t, out, `<option value="Sports"`)
}

func TestEventFormStatusSelect(t *testing.T) {
	t.Parallel()

	out := render(t, views.EventForm(forms.Initial(), nil, ""))
	assert.Contains(t, out, `<option value="OPEN" selected>OPEN</option>`)
	for _, status := range []string{"CLOSED", "CANCELLED", "COMPLETED"} {
		assert.Contains(t, out, `<option value="`+status+`">`+status+`</option>`)
	}

	echoed := render(t, views.EventForm(forms.Invalid(
		forms.Values{"status": "CLOSED"},
		forms.Issues{{Field: "title", Message: "Title is required"}},
	), nil, ""))
	assert.Contains(t, echoed, `<option value="CLOSED" selected>`)
}

func TestEventFormNotesLostFile(t *testing.T) {
	t.Parallel()

	out := render(t, views.EventForm(forms.Initial(), nil, "cover.png"))
	assert.Contains(t, out, "Previously selected: cover.png - please attach it again.")

	clean := render(t, views.EventForm(forms.Initial(), nil, ""))
	assert.NotContains(t, clean, "attach it again")
}

func TestEventFormEscapesUserInput(t *testing.T) {
	t.Parallel()

	st := forms.Invalid(
		forms.Values{"title": `"><script>alert(1)</script>`},
		forms.Issues{{Field: "title", Message: "too short"}},
	)
	out := render(t, views.EventForm(st, nil, ""))
	assert.NotContains(t, out, "<script>alert(1)</script>")
}

func TestBannerStates(t *testing.T) {
	t.Parallel()

	assert.Empty(t, render(t, views.Banner(forms.Initial())))
	assert.Contains(t, render(t, views.Banner(forms.Succeeded("Saved"))), "alert-success")
	assert.Contains(t, render(t, views.Banner(forms.Failed(nil, "Nope"))), "alert-error")
}

func TestSidebarShowsOnlyRoleSections(t *testing.T) {
	t.Parallel()

	sections := nav.Resolve(auth.RoleHost)
	out := render(t, views.Sidebar(sections, auth.RoleHost))

	assert.Contains(t, out, "Create Events")
	assert.Contains(t, out, "My Hosted Events")
	assert.NotContains(t, out, "Change Password") // USER-only item
	assert.NotContains(t, out, "User Management")
}

func TestHostFormVariants(t *testing.T) {
	t.Parallel()

	create := render(t, views.HostForm(forms.Initial(), api.Host{}, ""))
	assert.Contains(t, create, `name="password"`)
	assert.Contains(t, create, `hx-post="/admin/dashboard/hosts-management"`)

	edit := render(t, views.HostForm(forms.Initial(), api.Host{ID: "h-1", Name: "Jess"}, ""))
	assert.NotContains(t, edit, `name="password"`)
	assert.Contains(t, edit, `value="Jess"`)
	assert.Contains(t, edit, "/admin/dashboard/hosts-management/h-1")
}

func TestLayoutHeaderByAuthState(t *testing.T) {
	t.Parallel()

	anon := render(t, views.Layout("Home", nil, nil))
	assert.Contains(t, anon, "Sign in")
	assert.Contains(t, anon, "Sign up")

	user := auth.User{Name: "Sam Blake", Role: auth.RoleUser}
	signed := render(t, views.Layout("Home", &user, nil))
	assert.Contains(t, signed, "Sam Blake")
	assert.Contains(t, signed, "Sign out")
	assert.Contains(t, signed, `href="/dashboard"`)
}
