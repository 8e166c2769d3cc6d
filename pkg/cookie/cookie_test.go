package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatherly-app/gatherly/pkg/cookie"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func requestWithCookies(rec *httptest.ResponseRecorder) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestPlainRoundTrip(t *testing.T) {
	t.Parallel()

	m := cookie.New()
	rec := httptest.NewRecorder()
	m.Set(rec, "theme", "dark", 3600)

	value, err := m.Get(requestWithCookies(rec), "theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", value)

	_, err = m.Get(requestWithCookies(rec), "missing")
	assert.ErrorIs(t, err, cookie.ErrNotFound)
}

func TestSignedRoundTrip(t *testing.T) {
	t.Parallel()

	m := cookie.New(cookie.WithSecret(testSecret))
	rec := httptest.NewRecorder()
	require.NoError(t, m.SetSigned(rec, "session", `{"id":"u-1"}`, 3600))

	value, err := m.GetSigned(requestWithCookies(rec), "session")
	require.NoError(t, err)
	assert.Equal(t, `{"id":"u-1"}`, value)
}

func TestSignedRejectsTampering(t *testing.T) {
	t.Parallel()

	m := cookie.New(cookie.WithSecret(testSecret))
	rec := httptest.NewRecorder()
	require.NoError(t, m.SetSigned(rec, "session", "original", 3600))

	raw := rec.Result().Cookies()[0]
	parts := strings.SplitN(raw.Value, ".", 2)
	require.Len(t, parts, 2)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: "dGFtcGVyZWQ." + parts[1]})
	_, err := m.GetSigned(req, "session")
	assert.ErrorIs(t, err, cookie.ErrBadSig)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: "no-separator"})
	_, err = m.GetSigned(req, "session")
	assert.ErrorIs(t, err, cookie.ErrBadSig)
}

func TestSignedRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	signer := cookie.New(cookie.WithSecret(testSecret))
	rec := httptest.NewRecorder()
	require.NoError(t, signer.SetSigned(rec, "session", "value", 3600))

	verifier := cookie.New(cookie.WithSecret("ffffffffffffffffffffffffffffffff"))
	_, err := verifier.GetSigned(requestWithCookies(rec), "session")
	assert.ErrorIs(t, err, cookie.ErrBadSig)
}

func TestSigningRequiresSecret(t *testing.T) {
	t.Parallel()

	m := cookie.New()
	err := m.SetSigned(httptest.NewRecorder(), "session", "value", 3600)
	assert.ErrorIs(t, err, cookie.ErrNoSecret)

	// A short secret is ignored entirely rather than weakening signing.
	short := cookie.New(cookie.WithSecret("too-short"))
	err = short.SetSigned(httptest.NewRecorder(), "session", "value", 3600)
	assert.ErrorIs(t, err, cookie.ErrNoSecret)
}

func TestDelete(t *testing.T) {
	t.Parallel()

	m := cookie.New()
	rec := httptest.NewRecorder()
	m.Delete(rec, "session")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
	assert.Empty(t, cookies[0].Value)
}
