package htmx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gatherly-app/gatherly/pkg/htmx"
)

func htmxRequest() *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(htmx.HeaderHXRequest, "true")
	return req
}

func TestIsHTMX(t *testing.T) {
	t.Parallel()

	assert.True(t, htmx.IsHTMX(htmxRequest()))
	assert.False(t, htmx.IsHTMX(httptest.NewRequest(http.MethodGet, "/", nil)))

	// Anything but the literal "true" is not an HTMX request.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(htmx.HeaderHXRequest, "1")
	assert.False(t, htmx.IsHTMX(req))
}

func TestRedirect(t *testing.T) {
	t.Parallel()

	t.Run("regular request gets an HTTP redirect", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		htmx.Redirect(rec, httptest.NewRequest(http.MethodGet, "/", nil), "/dashboard")
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
	})

	t.Run("HTMX request gets HX-Redirect with 200", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		htmx.Redirect(rec, htmxRequest(), "/dashboard")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "/dashboard", rec.Header().Get(htmx.HeaderHXRedirect))
		assert.Empty(t, rec.Header().Get("Location"))
	})
}

func TestApplyHeaders(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	cfg := htmx.NewConfig(
		htmx.WithTrigger("event-created", "form-reset"),
		htmx.WithRetarget("#main"),
		htmx.WithReswap("outerHTML"),
		htmx.WithRefresh(),
	)
	cfg.ApplyHeaders(rec)

	assert.Equal(t, "event-created, form-reset", rec.Header().Get(htmx.HeaderHXTrigger))
	assert.Equal(t, "#main", rec.Header().Get(htmx.HeaderHXRetarget))
	assert.Equal(t, "outerHTML", rec.Header().Get(htmx.HeaderHXReswap))
	assert.Equal(t, "true", rec.Header().Get(htmx.HeaderHXRefresh))
}

func TestApplyHeadersEmptyConfig(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	htmx.NewConfig().ApplyHeaders(rec)
	assert.Empty(t, rec.Header().Get(htmx.HeaderHXTrigger))
	assert.Empty(t, rec.Header().Get(htmx.HeaderHXRefresh))
}
