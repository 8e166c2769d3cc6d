package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"sort"
	"strings"
)

// Event statuses accepted by the remote API.
var EventStatuses = []string{"OPEN", "CLOSED", "CANCELLED", "COMPLETED"}

// Event types accepted by the remote API.
var EventTypes = []string{"PUBLIC", "PRIVATE"}

// Event is the canonical event record.
type Event struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Type            string  `json:"type"`
	Description     string  `json:"description"`
	Date            string  `json:"date"`
	Location        string  `json:"location"`
	Image           string  `json:"image"`
	Status          string  `json:"status"`
	CategoryName    string  `json:"categoryName"`
	HostID          string  `json:"hostId"`
	Fee             float64 `json:"fee"`
	MinParticipants int     `json:"minParticipants"`
	MaxParticipants int     `json:"maxParticipants"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// EventPayload is the backend shape for creating an event. The rename from
// user-facing fields happens before this type is built: capacity becomes
// MaxParticipants, price becomes Fee, category becomes CategoryName, and
// startDate becomes Date.
type EventPayload struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Location        string  `json:"location"`
	Date            string  `json:"date"`
	Type            string  `json:"type"`
	Fee             float64 `json:"fee"`
	MaxParticipants int     `json:"maxParticipants"`
	MinParticipants int     `json:"minParticipants"`
	Status          string  `json:"status"`
	CategoryName    string  `json:"categoryName"`
}

// Filters narrows event listings. Zero values mean "no constraint".
type Filters struct {
	Search   string
	Category string
	Status   string
	MinPrice float64
	MaxPrice float64
	SortBy   string // date, price, popularity
}

// EventsService calls the remote events endpoints.
type EventsService struct {
	client *Client
}

// Create posts a new event as multipart: JSON payload under "data" plus an
// optional cover image under "file". Returns the server's success message.
func (s *EventsService) Create(ctx context.Context, payload EventPayload, file *Upload) (string, error) {
	body, contentType, err := multipartBody(payload, file)
	if err != nil {
		return "", err
	}
	env, err := s.client.call(ctx, http.MethodPost, "/events", contentType, body)
	if err != nil {
		return "", err
	}
	if env.Message != "" {
		return env.Message, nil
	}
	return "Event created successfully", nil
}

// List fetches all events.
func (s *EventsService) List(ctx context.Context) ([]Event, error) {
	env, err := s.client.call(ctx, http.MethodGet, "/events", "", nil)
	if err != nil {
		return nil, err
	}
	var events []Event
	if err := json.Unmarshal(env.Data, &events); err != nil {
		return nil, &RemoteError{Message: "Unexpected response from the server.", Status: http.StatusOK}
	}
	return events, nil
}

// Mine fetches the events the signed-in user has joined. The caller's
// token must already be on the context.
func (s *EventsService) Mine(ctx context.Context) ([]Event, error) {
	env, err := s.client.call(ctx, http.MethodGet, "/user/my-events", "", nil)
	if err != nil {
		return nil, err
	}
	var events []Event
	if err := json.Unmarshal(env.Data, &events); err != nil {
		return nil, &RemoteError{Message: "Unexpected response from the server.", Status: http.StatusOK}
	}
	return events, nil
}

// Get fetches one event by id.
func (s *EventsService) Get(ctx context.Context, id string) (Event, error) {
	env, err := s.client.call(ctx, http.MethodGet, "/events/"+url.PathEscape(id), "", nil)
	if err != nil {
		return Event{}, err
	}
	var event Event
	if err := json.Unmarshal(env.Data, &event); err != nil {
		return Event{}, &RemoteError{Message: "Unexpected response from the server.", Status: http.StatusOK}
	}
	return event, nil
}

// Apply filters a fetched event list locally. The remote list endpoint has
// no query support, so narrowing happens client-side.
func (f Filters) Apply(events []Event) []Event {
	out := make([]Event, 0, len(events))
	for _, e := range events {
		if f.Category != "" && e.CategoryName != f.Category {
			continue
		}
		if f.Status != "" && e.Status != f.Status {
			continue
		}
		if f.MinPrice > 0 && e.Fee < f.MinPrice {
			continue
		}
		if f.MaxPrice > 0 && e.Fee > f.MaxPrice {
			continue
		}
		if f.Search != "" && !containsFold(e.Title, f.Search) && !containsFold(e.Location, f.Search) {
			continue
		}
		out = append(out, e)
	}
	switch f.SortBy {
	case "date":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	case "price":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Fee < out[j].Fee })
	case "popularity":
		sort.SliceStable(out, func(i, j int) bool { return out[i].MaxParticipants > out[j].MaxParticipants })
	}
	return out
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
