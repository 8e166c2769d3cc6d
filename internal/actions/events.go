// Package actions implements form submissions: each action validates raw
// input against its schema, translates it into the backend payload, calls
// the remote API, and folds the outcome into a forms.State. Nothing here
// panics outward; every failure degrades to a redisplayable state.
package actions

import (
	"context"

	"github.com/gatherly-app/gatherly/internal/api"
	"github.com/gatherly-app/gatherly/internal/forms"
	"github.com/gatherly-app/gatherly/internal/requests"
	"github.com/gatherly-app/gatherly/pkg/sanitizer"
)

// Events handles event form submissions.
type Events struct {
	svc *api.EventsService
}

// NewEvents creates the events action with its API service.
func NewEvents(svc *api.EventsService) *Events {
	return &Events{svc: svc}
}

// Create runs one submission attempt of the event creation form.
//
// Validation failures return a Failed state with field errors and the raw
// values echoed back; no network call is made. A valid submission is
// translated to the backend shape (capacity becomes maxParticipants, price
// becomes fee, category becomes categoryName, startDate becomes date) and
// posted as multipart with the optional cover image.
func (a *Events) Create(ctx context.Context, values forms.Values, file *api.Upload) (st forms.State) {
	defer func() {
		if r := recover(); r != nil {
			st = forms.Failed(values, "Something went wrong while creating event")
		}
	}()

	result, issues := requests.CreateEvent.Validate(values)
	if !issues.IsEmpty() {
		return forms.Invalid(values, issues)
	}

	minParticipants := result.Int("minParticipants")
	if minParticipants == 0 {
		minParticipants = 1
	}
	status := result.Str("status")
	if status == "" {
		status = "OPEN"
	}

	payload := api.EventPayload{
		Title:           sanitizer.PlainText(result.Str("title")),
		Description:     sanitizer.BasicHTML(result.Str("description")),
		Location:        sanitizer.PlainText(result.Str("location")),
		Date:            result.Str("startDate"),
		Type:            result.Str("type"),
		Fee:             result.Float("price"),
		MaxParticipants: result.Int("capacity"),
		MinParticipants: minParticipants,
		Status:          status,
		CategoryName:    result.Str("category"),
	}

	message, err := a.svc.Create(ctx, payload, file)
	if err != nil {
		return forms.Failed(values, api.FailureMessage(err, "Failed to create event"))
	}
	return forms.Succeeded(message)
}
