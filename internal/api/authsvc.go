package api

import (
	"context"
	"encoding/json"
	"net/http"
)

// Account is the authenticated account returned by the login endpoint,
// token included. Like hosts, the id field varies by endpoint and is
// normalized here.
type Account struct {
	ID    string
	Name  string
	Email string
	Role  string
	Token string
}

type accountRow struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Token  string `json:"accessToken"`
}

func (r accountRow) canonical() Account {
	id := r.ID
	if id == "" {
		id = r.UserID
	}
	return Account{ID: id, Name: r.Name, Email: r.Email, Role: r.Role, Token: r.Token}
}

// AuthService calls the remote authentication endpoints.
type AuthService struct {
	client *Client
}

// Login exchanges credentials for an account with an access token.
func (s *AuthService) Login(ctx context.Context, email, password string) (Account, error) {
	env, err := s.client.postJSON(ctx, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return Account{}, err
	}
	var row accountRow
	if err := json.Unmarshal(env.Data, &row); err != nil {
		return Account{}, &RemoteError{Message: "Unexpected response from the server.", Status: http.StatusOK}
	}
	return row.canonical(), nil
}

// Register creates a new USER account. Returns the server's success message.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (string, error) {
	env, err := s.client.postJSON(ctx, "/user/register", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	})
	if err != nil {
		return "", err
	}
	if env.Message != "" {
		return env.Message, nil
	}
	return "Account created successfully", nil
}

// ChangePassword updates the signed-in user's password. The caller's token
// must already be on the context.
func (s *AuthService) ChangePassword(ctx context.Context, oldPassword, newPassword string) (string, error) {
	env, err := s.client.postJSON(ctx, "/user/change-password", map[string]string{
		"oldPassword": oldPassword,
		"newPassword": newPassword,
	})
	if err != nil {
		return "", err
	}
	if env.Message != "" {
		return env.Message, nil
	}
	return "Password changed successfully", nil
}
