package handlers

import (
	"net/http"

	"github.com/gatherly-app/gatherly/internal/actions"
	"github.com/gatherly-app/gatherly/internal/auth"
	"github.com/gatherly-app/gatherly/internal/forms"
	"github.com/gatherly-app/gatherly/internal/nav"
	"github.com/gatherly-app/gatherly/internal/views"
	"github.com/gatherly-app/gatherly/internal/web"
	"github.com/gatherly-app/gatherly/pkg/htmx"
)

// Auth serves sign-in, sign-up, sign-out, and password change.
type Auth struct {
	action *actions.Auth
}

// NewAuth creates the auth handler.
func NewAuth(action *actions.Auth) *Auth {
	return &Auth{action: action}
}

func (h *Auth) Routes(r web.Router) {
	r.GET("/login", h.loginPage)
	r.POST("/login", h.login)
	r.GET("/register", h.registerPage)
	r.POST("/register", h.register)
	r.POST("/logout", h.logout)
	r.Group(func(r web.Router) {
		r.Use(auth.RequireAuth())
		r.GET("/change-password", h.changePasswordPage)
		r.POST("/change-password", h.changePassword)
	})
}

func (h *Auth) loginPage(c web.Context) error {
	if u, ok := auth.CurrentUser(c); ok {
		return c.Redirect(http.StatusFound, nav.DefaultDashboard(u.Role))
	}
	return c.Render(http.StatusOK, views.Layout("Sign in", nil, views.LoginForm(forms.Initial())))
}

func (h *Auth) login(c web.Context) error {
	st, account := h.action.Login(c.Context(), formValues(c))
	if !st.Success {
		form := views.LoginForm(st)
		return c.RenderPartial(http.StatusUnprocessableEntity, views.Layout("Sign in", nil, form), form)
	}

	user := auth.User{
		ID:       account.ID,
		Name:     account.Name,
		Email:    account.Email,
		Role:     auth.ParseRole(account.Role),
		APIToken: account.Token,
	}
	if err := auth.StartSession(c, user); err != nil {
		c.LogError("start session", "error", err)
		form := views.LoginForm(forms.Failed(formValues(c), "Could not start your session. Please try again."))
		return c.RenderPartial(http.StatusInternalServerError, views.Layout("Sign in", nil, form), form)
	}
	return c.Redirect(http.StatusFound, nav.DefaultDashboard(user.Role))
}

func (h *Auth) registerPage(c web.Context) error {
	if u, ok := auth.CurrentUser(c); ok {
		return c.Redirect(http.StatusFound, nav.DefaultDashboard(u.Role))
	}
	return c.Render(http.StatusOK, views.Layout("Create account", nil, views.RegisterForm(forms.Initial())))
}

func (h *Auth) register(c web.Context) error {
	st := h.action.Register(c.Context(), formValues(c))
	form := views.RegisterForm(st)
	if !st.Success {
		return c.RenderPartial(http.StatusUnprocessableEntity, views.Layout("Create account", nil, form), form)
	}
	return c.RenderPartial(http.StatusOK,
		views.Layout("Create account", nil, form),
		form,
		htmx.WithTrigger("account-created"),
	)
}

func (h *Auth) logout(c web.Context) error {
	auth.EndSession(c)
	return c.Redirect(http.StatusFound, "/")
}

func (h *Auth) changePasswordPage(c web.Context) error {
	user := sessionUser(c)
	return c.Render(http.StatusOK, views.DashboardLayout("Change Password", user, views.ChangePasswordForm(forms.Initial())))
}

func (h *Auth) changePassword(c web.Context) error {
	user := sessionUser(c)
	st := h.action.ChangePassword(apiCtx(c), formValues(c))
	form := views.ChangePasswordForm(st)
	page := views.DashboardLayout("Change Password", user, form)
	if !st.Success {
		return c.RenderPartial(http.StatusUnprocessableEntity, page, form)
	}
	return c.RenderPartial(http.StatusOK, page, form, htmx.WithTrigger("password-changed"))
}
