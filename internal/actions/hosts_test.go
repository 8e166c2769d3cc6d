package actions_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatherly-app/gatherly/internal/actions"
	"github.com/gatherly-app/gatherly/internal/forms"
)

func hostValues() forms.Values {
	return forms.Values{
		"name":     "Jess Harper",
		"email":    "jess@example.com",
		"password": "secret123",
		"bio":      "Runs community events.",
	}
}

func TestSaveHostCreateRequiresPassword(t *testing.T) {
	t.Parallel()

	client, calls := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should reach the API on validation failure")
	})
	action := actions.NewHosts(client.Hosts())

	values := hostValues()
	values["password"] = "short"
	st := action.Save(t.Context(), "", values, nil)

	assert.False(t, st.Success)
	assert.Equal(t, "Password must be at least 6 characters long", st.FieldError("password"))
	assert.EqualValues(t, 0, calls.Load())
}

func TestSaveHostUpdateIgnoresPassword(t *testing.T) {
	t.Parallel()

	client, _ := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/Host/h-42", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		var data map[string]map[string]any
		require.NoError(t, json.Unmarshal([]byte(r.FormValue("data")), &data))
		assert.NotContains(t, data, "password")

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "Host updated"})
	})
	action := actions.NewHosts(client.Hosts())

	// The update variant validates with the password-free schema, so a
	// short password does not block the save.
	values := hostValues()
	values["password"] = "short"
	st := action.Save(t.Context(), "h-42", values, nil)

	require.True(t, st.Success)
	assert.Equal(t, "Host updated", st.Message)
}

func TestSaveHostServerFailurePreservesValues(t *testing.T) {
	t.Parallel()

	client, _ := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "Email already exists"})
	})
	action := actions.NewHosts(client.Hosts())

	st := action.Save(t.Context(), "", hostValues(), nil)

	assert.False(t, st.Success)
	assert.Equal(t, "Email already exists", st.Error)
	assert.Equal(t, "jess@example.com", st.Value("email", ""))
	assert.Equal(t, "Jess Harper", st.Value("name", ""))
}

func TestCreateCategory(t *testing.T) {
	t.Parallel()

	client, calls := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/events/categories", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Music", body["name"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "Category created successfully"})
	})
	action := actions.NewCategories(client.Categories())

	st := action.Create(t.Context(), forms.Values{"name": ""})
	assert.False(t, st.Success)
	assert.Equal(t, "Category name is required", st.FieldError("name"))
	assert.EqualValues(t, 0, calls.Load())

	st = action.Create(t.Context(), forms.Values{"name": "Music"})
	require.True(t, st.Success)
	assert.Equal(t, "Category created successfully", st.Message)
}
