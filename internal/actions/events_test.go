package actions_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatherly-app/gatherly/internal/actions"
	"github.com/gatherly-app/gatherly/internal/api"
	"github.com/gatherly-app/gatherly/internal/forms"
)

// countingServer records how many requests reached the fake API.
func countingServer(t *testing.T, handler http.HandlerFunc) (*api.Client, *atomic.Int64) {
	t.Helper()
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return api.NewClient(srv.URL), &calls
}

func validEventValues() forms.Values {
	return forms.Values{
		"title":       "Morning Trail Run",
		"description": "A relaxed run through the park trails.",
		"category":    "Sports",
		"type":        "PUBLIC",
		"startDate":   "2026-09-01T09:00",
		"endDate":     "2026-09-01T11:00",
		"location":    "Riverside Park",
		"capacity":    "20",
		"price":       "5",
	}
}

func TestCreateEventValidationSkipsNetwork(t *testing.T) {
	t.Parallel()

	client, calls := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should reach the API on validation failure")
	})
	action := actions.NewEvents(client.Events())

	t.Run("zero capacity", func(t *testing.T) {
		values := validEventValues()
		values["capacity"] = "0"
		st := action.Create(t.Context(), values, nil)

		assert.False(t, st.Success)
		assert.Equal(t, "Capacity must be greater than 0", st.FieldError("capacity"))
		assert.Equal(t, "0", st.Value("capacity", ""))
	})

	t.Run("end date before start date", func(t *testing.T) {
		values := validEventValues()
		values["endDate"] = "2026-09-01T08:00"
		st := action.Create(t.Context(), values, nil)

		assert.False(t, st.Success)
		assert.False(t, st.HasFieldErrors())
		assert.Equal(t, "End date must be after start date", st.Error)
	})

	assert.EqualValues(t, 0, calls.Load())
}

func TestCreateEventRenamesFieldsAndDefaults(t *testing.T) {
	t.Parallel()

	client, calls := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		var payload map[string]any
		require.NoError(t, json.Unmarshal([]byte(r.FormValue("data")), &payload))

		assert.EqualValues(t, 20, payload["maxParticipants"])
		assert.EqualValues(t, 5, payload["fee"])
		assert.Equal(t, "Sports", payload["categoryName"])
		assert.Equal(t, "2026-09-01T09:00", payload["date"])
		assert.EqualValues(t, 1, payload["minParticipants"])
		assert.Equal(t, "OPEN", payload["status"])
		assert.NotContains(t, payload, "capacity")
		assert.NotContains(t, payload, "price")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "Event created successfully"})
	})
	action := actions.NewEvents(client.Events())

	st := action.Create(t.Context(), validEventValues(), nil)
	require.True(t, st.Success)
	assert.Equal(t, "Event created successfully", st.Message)
	assert.Empty(t, st.Values)
	assert.Empty(t, st.FieldErrors)
	assert.EqualValues(t, 1, calls.Load())
}

func TestCreateEventServerFailurePreservesValues(t *testing.T) {
	t.Parallel()

	client, _ := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "Event title already taken"})
	})
	action := actions.NewEvents(client.Events())

	values := validEventValues()
	st := action.Create(t.Context(), values, nil)

	assert.False(t, st.Success)
	assert.Equal(t, "Event title already taken", st.Error)
	assert.Equal(t, "Morning Trail Run", st.Value("title", ""))
	assert.Equal(t, "20", st.Value("capacity", ""))
	assert.False(t, st.HasFieldErrors())
}

func TestCreateEventUnreachableServer(t *testing.T) {
	t.Parallel()

	client := api.NewClient("http://127.0.0.1:1")
	action := actions.NewEvents(client.Events())

	st := action.Create(t.Context(), validEventValues(), nil)
	assert.False(t, st.Success)
	assert.Equal(t, "Could not reach the server. Please try again.", st.Error)
}

func TestCreateEventSanitizesInput(t *testing.T) {
	t.Parallel()

	client, _ := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		var payload map[string]any
		require.NoError(t, json.Unmarshal([]byte(r.FormValue("data")), &payload))

		assert.Equal(t, "Morning Run", payload["title"])
		assert.NotContains(t, payload["description"], "<script>")

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	})
	action := actions.NewEvents(client.Events())

	values := validEventValues()
	values["title"] = `Morning <b>Run</b>`
	values["description"] = `Fun for everyone <script>alert(1)</script> join us today`
	st := action.Create(t.Context(), values, nil)
	require.True(t, st.Success)
}
