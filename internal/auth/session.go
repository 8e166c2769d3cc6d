// Package auth holds the user identity model and the signed-cookie session
// that carries it between requests. The remote API owns credentials; this
// app only stores the issued token and the user's profile claims.
package auth

import (
	"encoding/json"
	"errors"

	"github.com/gatherly-app/gatherly/internal/web"
)

// SessionCookie is the name of the signed session cookie.
const SessionCookie = "gatherly_session"

// sessionMaxAge is the cookie lifetime in seconds (7 days); the remote API
// enforces its own token expiry independently.
const sessionMaxAge = 7 * 24 * 60 * 60

// ErrNoSession is returned when no valid session cookie is present.
var ErrNoSession = errors.New("auth: no session")

// User is the authenticated user as seen by this app.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	APIToken string `json:"token"`
}

// userKey is the request-context key for the resolved user.
type userKey struct{}

// StartSession stores the user in a signed session cookie.
func StartSession(c web.Context, u User) error {
	payload, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return c.SetCookieSigned(SessionCookie, string(payload), sessionMaxAge)
}

// EndSession clears the session cookie.
func EndSession(c web.Context) {
	c.DeleteCookie(SessionCookie)
}

// SessionUser reads and verifies the session cookie. Returns ErrNoSession
// for a missing, tampered, or malformed cookie.
func SessionUser(c web.Context) (User, error) {
	raw, err := c.CookieSigned(SessionCookie)
	if err != nil {
		return User{}, ErrNoSession
	}
	var u User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return User{}, ErrNoSession
	}
	if u.ID == "" {
		return User{}, ErrNoSession
	}
	return u, nil
}

// CurrentUser returns the user resolved by the Resolve middleware.
// The second return is false for anonymous requests.
func CurrentUser(c web.Context) (User, bool) {
	u, ok := c.Get(userKey{}).(User)
	return u, ok
}

// Resolve returns middleware that reads the session cookie once per
// request and stores the user in the request context. Anonymous requests
// pass through untouched.
func Resolve() web.Middleware {
	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(c web.Context) error {
			if u, err := SessionUser(c); err == nil {
				c.Set(userKey{}, u)
			}
			return next(c)
		}
	}
}

// RequireAuth returns middleware that redirects anonymous requests to the
// login page.
func RequireAuth() web.Middleware {
	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(c web.Context) error {
			if _, ok := CurrentUser(c); !ok {
				return c.Redirect(302, "/login")
			}
			return next(c)
		}
	}
}

// RequireRole returns middleware that rejects users outside the allowed
// roles with 403. Anonymous requests are redirected to login first.
func RequireRole(roles ...Role) web.Middleware {
	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(c web.Context) error {
			u, ok := CurrentUser(c)
			if !ok {
				return c.Redirect(302, "/login")
			}
			for _, r := range roles {
				if u.Role == r {
					return next(c)
				}
			}
			return c.Error(403, "You don't have access to this page.")
		}
	}
}
