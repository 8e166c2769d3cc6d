package web_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatherly-app/gatherly/internal/web"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	var seen string
	app := web.New(
		web.WithMiddleware(web.RequestID()),
		web.WithHandlers(routesFunc(func(r web.Router) {
			r.GET("/", func(c web.Context) error {
				seen = web.GetRequestID(c)
				return c.NoContent(http.StatusNoContent)
			})
		})),
	)

	rec := httptest.NewRecorder()
	app.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	header := rec.Header().Get("X-Request-ID")
	require.NotEmpty(t, header)
	assert.Equal(t, header, seen)
	_, err := uuid.Parse(header)
	assert.NoError(t, err)
}

func TestRecover(t *testing.T) {
	t.Parallel()

	app := web.New(
		web.WithMiddleware(web.Recover()),
		web.WithHandlers(routesFunc(func(r web.Router) {
			r.GET("/panic", func(c web.Context) error {
				panic("boom")
			})
		})),
	)

	rec := httptest.NewRecorder()
	app.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "boom")
}

func TestLoggingPassesThrough(t *testing.T) {
	t.Parallel()

	app := web.New(
		web.WithMiddleware(web.Logging()),
		web.WithHandlers(routesFunc(func(r web.Router) {
			r.GET("/", func(c web.Context) error {
				return c.String(http.StatusOK, "ok")
			})
		})),
	)

	rec := httptest.NewRecorder()
	app.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
