package api

import (
	"context"
	"encoding/json"
	"net/http"
)

// Category is an event category record.
type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// CategoriesService calls the remote category endpoints.
type CategoriesService struct {
	client *Client
}

// Create posts a new category. Returns the server's success message.
func (s *CategoriesService) Create(ctx context.Context, name string) (string, error) {
	env, err := s.client.postJSON(ctx, "/events/categories", map[string]string{"name": name})
	if err != nil {
		return "", err
	}
	if env.Message != "" {
		return env.Message, nil
	}
	return "Category created successfully", nil
}

// List fetches all categories.
func (s *CategoriesService) List(ctx context.Context) ([]Category, error) {
	env, err := s.client.call(ctx, http.MethodGet, "/events/categories", "", nil)
	if err != nil {
		return nil, err
	}
	var categories []Category
	if err := json.Unmarshal(env.Data, &categories); err != nil {
		return nil, &RemoteError{Message: "Unexpected response from the server.", Status: http.StatusOK}
	}
	return categories, nil
}
