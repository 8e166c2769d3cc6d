package api

import (
	"context"
	"encoding/json"
	"net/http"
)

// Member is an account row on the admin management screens.
type Member struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	IsDeleted bool   `json:"isDeleted"`
}

type memberRow struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	IsDeleted bool   `json:"isDeleted"`
}

func (r memberRow) canonical() Member {
	id := r.ID
	if id == "" {
		id = r.UserID
	}
	return Member{ID: id, Name: r.Name, Email: r.Email, Role: r.Role, IsDeleted: r.IsDeleted}
}

// UsersService calls the remote account listing endpoints used by the
// admin screens.
type UsersService struct {
	client *Client
}

// Admins fetches accounts with the ADMIN role.
func (s *UsersService) Admins(ctx context.Context) ([]Member, error) {
	return s.list(ctx, "/user/get-admins")
}

// Users fetches accounts with the USER role.
func (s *UsersService) Users(ctx context.Context) ([]Member, error) {
	return s.list(ctx, "/user/get-users")
}

func (s *UsersService) list(ctx context.Context, path string) ([]Member, error) {
	env, err := s.client.call(ctx, http.MethodGet, path, "", nil)
	if err != nil {
		return nil, err
	}
	var rows []memberRow
	if err := json.Unmarshal(env.Data, &rows); err != nil {
		return nil, &RemoteError{Message: "Unexpected response from the server.", Status: http.StatusOK}
	}
	members := make([]Member, len(rows))
	for i, r := range rows {
		members[i] = r.canonical()
	}
	return members, nil
}
