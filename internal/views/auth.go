package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/gatherly-app/gatherly/internal/forms"
)

// LoginForm renders the sign-in form.
func LoginForm(st forms.State) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writef(w, `<form id="login-form" hx-post="/login" hx-target="#login-form" hx-swap="outerHTML" hx-disabled-elt="find button[type=submit]"><h1>Sign in</h1>`); err != nil {
			return err
		}
		if err := Banner(st).Render(ctx, w); err != nil {
			return err
		}
		fields := join(
			field(st, "email", "Email", "email", ""),
			field(st, "password", "Password", "password", ""),
		)
		if err := fields.Render(ctx, w); err != nil {
			return err
		}
		return writef(w, `<button type="submit">Sign in</button><p>New here? <a href="/register">Create an account</a></p></form>`)
	})
}

// RegisterForm renders the sign-up form.
func RegisterForm(st forms.State) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writef(w, `<form id="register-form" hx-post="/register" hx-target="#register-form" hx-swap="outerHTML" hx-disabled-elt="find button[type=submit]"><h1>Create account</h1>`); err != nil {
			return err
		}
		if err := Banner(st).Render(ctx, w); err != nil {
			return err
		}
		fields := join(
			field(st, "name", "Name", "text", ""),
			field(st, "email", "Email", "email", ""),
			field(st, "password", "Password", "password", ""),
			field(st, "confirmPassword", "Confirm password", "password", ""),
		)
		if err := fields.Render(ctx, w); err != nil {
			return err
		}
		return writef(w, `<button type="submit">Sign up</button><p>Already registered? <a href="/login">Sign in</a></p></form>`)
	})
}

// ChangePasswordForm renders the password change form.
func ChangePasswordForm(st forms.State) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writef(w, `<form id="change-password-form" hx-post="/change-password" hx-target="#change-password-form" hx-swap="outerHTML" hx-disabled-elt="find button[type=submit]"><h1>Change Password</h1>`); err != nil {
			return err
		}
		if err := Banner(st).Render(ctx, w); err != nil {
			return err
		}
		fields := join(
			field(st, "oldPassword", "Current password", "password", ""),
			field(st, "newPassword", "New password", "password", ""),
			field(st, "confirmPassword", "Confirm new password", "password", ""),
		)
		if err := fields.Render(ctx, w); err != nil {
			return err
		}
		return writef(w, `<button type="submit">Change password</button></form>`)
	})
}
