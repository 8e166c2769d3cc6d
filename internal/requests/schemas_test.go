package requests_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatherly-app/gatherly/internal/forms"
	"github.com/gatherly-app/gatherly/internal/requests"
)

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

func TestCreateEventValid(t *testing.T) {
	t.Parallel()

	result, issues := requests.CreateEvent.Validate(validEventValues())
	require.True(t, issues.IsEmpty())
	assert.Equal(t, 20, result.Int("capacity"))
	assert.InDelta(t, 5, result.Float("price"), 0.001)
	assert.Equal(t, 0, result.Int("minParticipants"))
	assert.Equal(t, "", result.Str("status"))
}

func TestCreateEventFieldMessages(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		field   string
		value   string
		message string
	}{
		{"short title", "title", "ab", "Title must be at least 3 characters"},
		{"short description", "description", "too short", "Description must be at least 10 characters"},
		{"missing category", "category", "", "Category is required"},
		{"bad type", "type", "SEMI_PUBLIC", "Select a valid event type"},
		{"bad start date", "startDate", "tomorrow", "Invalid date and time"},
		{"short location", "location", "at", "Location must be at least 3 characters"},
		{"zero capacity", "capacity", "0", "Capacity must be greater than 0"},
		{"negative capacity", "capacity", "-5", "Capacity must be greater than 0"},
		{"negative price", "price", "-1", "Price cannot be negative"},
		{"bad status", "status", "PENDING", "Select a valid status"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			values := validEventValues()
			values[tc.field] = tc.value
			result, issues := requests.CreateEvent.Validate(values)
			assert.Nil(t, result)
			assert.Equal(t, tc.message, issues.ByField()[tc.field])
		})
	}
}

func TestCreateEventDateOrdering(t *testing.T) {
	t.Parallel()

	values := validEventValues()
	values["endDate"] = "2026-09-01T08:00"
	result, issues := requests.CreateEvent.Validate(values)
	assert.Nil(t, result)
	assert.Equal(t, "End date must be after start date", issues.FormError(""))
	assert.Empty(t, issues.ByField())
}

func TestCreateCategory(t *testing.T) {
	t.Parallel()

	_, issues := requests.CreateCategory.Validate(forms.Values{"name": ""})
	assert.Equal(t, "Category name is required", issues.ByField()["name"])

	result, issues := requests.CreateCategory.Validate(forms.Values{"name": "Music"})
	require.True(t, issues.IsEmpty())
	assert.Equal(t, "Music", result.Str("name"))
}

func TestCreateHostRequiresPassword(t *testing.T) {
	t.Parallel()

	values := forms.Values{
		"name":  "Jess Harper",
		"email": "jess@example.com",
	}
	_, issues := requests.CreateHost.Validate(values)
	assert.Equal(t, "Password must be at least 6 characters long", issues.ByField()["password"])

	// The update variant has no password field at all.
	result, issues := requests.UpdateHost.Validate(values)
	require.True(t, issues.IsEmpty())
	assert.Equal(t, "jess@example.com", result.Str("email"))
}

func TestCreateHostEmail(t *testing.T) {
	t.Parallel()

	_, issues := requests.CreateHost.Validate(forms.Values{
		"name":     "Jess Harper",
		"email":    "not-an-email",
		"password": "secret123",
	})
	assert.Equal(t, "Invalid email address", issues.ByField()["email"])
}

func TestRegisterPasswordsMustMatch(t *testing.T) {
	t.Parallel()

	_, issues := requests.Register.Validate(forms.Values{
		"name":            "Sam Blake",
		"email":           "sam@example.com",
		"password":        "secret123",
		"confirmPassword": "secret124",
	})
	assert.Equal(t, "Passwords don't match", issues.ByField()["confirmPassword"])
}

func TestChangePassword(t *testing.T) {
	t.Parallel()

	_, issues := requests.ChangePassword.Validate(forms.Values{
		"oldPassword":     "old-secret",
		"newPassword":     "new-secret",
		"confirmPassword": "other",
	})
	assert.Equal(t, "Passwords don't match", issues.ByField()["confirmPassword"])
}
