package web_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gatherly-app/gatherly/internal/web"
)

func TestResponseWriterTracksStatusAndSize(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	w := web.NewResponseWriter(rec, false)

	assert.False(t, w.Written())
	w.WriteHeader(http.StatusTeapot)
	_, _ = w.Write([]byte("short and stout"))

	assert.True(t, w.Written())
	assert.Equal(t, http.StatusTeapot, w.Status())
	assert.EqualValues(t, 15, w.Size())
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestResponseWriterIgnoresRepeatedWriteHeader(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	w := web.NewResponseWriter(rec, false)

	w.WriteHeader(http.StatusNotFound)
	w.WriteHeader(http.StatusOK)

	assert.Equal(t, http.StatusNotFound, w.Status())
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResponseWriterDefaultsTo200OnWrite(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	w := web.NewResponseWriter(rec, false)

	_, _ = w.Write([]byte("hello"))
	assert.Equal(t, http.StatusOK, w.Status())
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestResponseWriterRewritesStatusForHTMX(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	w := web.NewResponseWriter(rec, true)

	w.WriteHeader(http.StatusUnprocessableEntity)

	// The wire status is 200 so HTMX swaps the fragment, but the recorded
	// status keeps the real outcome for logging.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Status())
}
