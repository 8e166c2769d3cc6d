package actions

import (
	"context"

	"github.com/gatherly-app/gatherly/internal/api"
	"github.com/gatherly-app/gatherly/internal/forms"
	"github.com/gatherly-app/gatherly/internal/requests"
	"github.com/gatherly-app/gatherly/pkg/sanitizer"
)

// Auth handles sign-in and sign-up form submissions.
type Auth struct {
	svc *api.AuthService
}

// NewAuth creates the auth action with its API service.
func NewAuth(svc *api.AuthService) *Auth {
	return &Auth{svc: svc}
}

// Login runs one submission attempt of the sign-in form. On success the
// returned account carries the API token for the session cookie.
func (a *Auth) Login(ctx context.Context, values forms.Values) (st forms.State, account api.Account) {
	defer func() {
		if r := recover(); r != nil {
			st = forms.Failed(values, "Something went wrong while signing in")
			account = api.Account{}
		}
	}()

	result, issues := requests.Login.Validate(values)
	if !issues.IsEmpty() {
		return forms.Invalid(values, issues), api.Account{}
	}

	account, err := a.svc.Login(ctx, result.Str("email"), result.Str("password"))
	if err != nil {
		return forms.Failed(values, api.FailureMessage(err, "Invalid email or password")), api.Account{}
	}
	return forms.Succeeded("Signed in successfully"), account
}

// Register runs one submission attempt of the sign-up form.
func (a *Auth) Register(ctx context.Context, values forms.Values) (st forms.State) {
	defer func() {
		if r := recover(); r != nil {
			st = forms.Failed(values, "Something went wrong while creating your account")
		}
	}()

	result, issues := requests.Register.Validate(values)
	if !issues.IsEmpty() {
		return forms.Invalid(values, issues)
	}

	message, err := a.svc.Register(ctx,
		sanitizer.PlainText(result.Str("name")),
		result.Str("email"),
		result.Str("password"),
	)
	if err != nil {
		return forms.Failed(values, api.FailureMessage(err, "Failed to create account"))
	}
	return forms.Succeeded(message)
}

// ChangePassword runs one submission attempt of the password change form.
func (a *Auth) ChangePassword(ctx context.Context, values forms.Values) (st forms.State) {
	defer func() {
		if r := recover(); r != nil {
			st = forms.Failed(values, "Something went wrong while changing your password")
		}
	}()

	result, issues := requests.ChangePassword.Validate(values)
	if !issues.IsEmpty() {
		return forms.Invalid(values, issues)
	}

	message, err := a.svc.ChangePassword(ctx, result.Str("oldPassword"), result.Str("newPassword"))
	if err != nil {
		return forms.Failed(values, api.FailureMessage(err, "Failed to change password"))
	}
	return forms.Succeeded(message)
}
