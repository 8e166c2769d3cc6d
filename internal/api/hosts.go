package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// Host is the canonical host record. Server responses are inconsistent
// about the id field (id, hostId, or userId depending on the endpoint);
// normalization happens once on receipt so internal code only ever sees ID.
type Host struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	DisplayName   string `json:"displayName"`
	Bio           string `json:"bio"`
	Location      string `json:"location"`
	ContactNumber string `json:"contactNumber"`
	ProfileImage  string `json:"profileImage"`
	IsVerified    bool   `json:"isVerified"`
	IsDeleted     bool   `json:"isDeleted"`
}

// hostRow is the wire shape of a host record before normalization.
type hostRow struct {
	ID            string `json:"id"`
	HostID        string `json:"hostId"`
	UserID        string `json:"userId"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	DisplayName   string `json:"displayName"`
	Bio           string `json:"bio"`
	Location      string `json:"location"`
	ContactNumber string `json:"contactNumber"`
	ProfileImage  string `json:"profileImage"`
	IsVerified    bool   `json:"isVerified"`
	IsDeleted     bool   `json:"isDeleted"`
}

func (r hostRow) canonical() Host {
	id := r.ID
	if id == "" {
		id = r.HostID
	}
	if id == "" {
		id = r.UserID
	}
	return Host{
		ID:            id,
		Name:          r.Name,
		Email:         r.Email,
		DisplayName:   r.DisplayName,
		Bio:           r.Bio,
		Location:      r.Location,
		ContactNumber: r.ContactNumber,
		ProfileImage:  r.ProfileImage,
		IsVerified:    r.IsVerified,
		IsDeleted:     r.IsDeleted,
	}
}

// HostPayload is the host profile part of a save request.
type HostPayload struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	DisplayName   string `json:"displayName"`
	Bio           string `json:"bio,omitempty"`
	ContactNumber string `json:"contactNumber,omitempty"`
	Location      string `json:"location,omitempty"`
	IsVerified    bool   `json:"isVerified"`
	IsDeleted     bool   `json:"isDeleted"`
	Role          string `json:"role,omitempty"`
}

// SaveHostRequest is a discriminated create-or-update request: an empty ID
// means create, a set ID means update. One handler dispatches on the
// variant instead of binding closures over identifiers.
type SaveHostRequest struct {
	ID       string
	Payload  HostPayload
	Password string // create only
	File     *Upload
}

// IsUpdate reports which variant this request is.
func (r SaveHostRequest) IsUpdate() bool {
	return r.ID != ""
}

// HostsService calls the remote host management endpoints.
type HostsService struct {
	client *Client
}

// Save dispatches a SaveHostRequest to the create or update endpoint.
// Both send multipart bodies with the host nested under "Host" in the
// "data" part, plus an optional profile image under "file". Create also
// carries the initial password and forces the HOST role; DisplayName
// defaults to Name when unset. Returns the server's success message.
func (s *HostsService) Save(ctx context.Context, req SaveHostRequest) (string, error) {
	payload := req.Payload
	if payload.DisplayName == "" {
		payload.DisplayName = payload.Name
	}

	var (
		data any
		path string
		verb string
	)
	if req.IsUpdate() {
		data = map[string]any{"Host": payload}
		path = "/Host/" + url.PathEscape(req.ID)
		verb = http.MethodPut
	} else {
		payload.Role = "HOST"
		data = map[string]any{"password": req.Password, "Host": payload}
		path = "/user/create-host"
		verb = http.MethodPost
	}

	body, contentType, err := multipartBody(data, req.File)
	if err != nil {
		return "", err
	}
	env, err := s.client.call(ctx, verb, path, contentType, body)
	if err != nil {
		return "", err
	}
	if env.Message != "" {
		return env.Message, nil
	}
	if req.IsUpdate() {
		return "Host updated successfully", nil
	}
	return "Host created successfully", nil
}

// List fetches hosts, normalizing each row's id variant.
func (s *HostsService) List(ctx context.Context) ([]Host, error) {
	env, err := s.client.call(ctx, http.MethodGet, "/user/get-hosts", "", nil)
	if err != nil {
		return nil, err
	}
	var rows []hostRow
	if err := json.Unmarshal(env.Data, &rows); err != nil {
		return nil, &RemoteError{Message: "Unexpected response from the server.", Status: http.StatusOK}
	}
	hosts := make([]Host, len(rows))
	for i, r := range rows {
		hosts[i] = r.canonical()
	}
	return hosts, nil
}

// Get fetches one host by id.
func (s *HostsService) Get(ctx context.Context, id string) (Host, error) {
	env, err := s.client.call(ctx, http.MethodGet, "/Host/"+url.PathEscape(id), "", nil)
	if err != nil {
		return Host{}, err
	}
	var row hostRow
	if err := json.Unmarshal(env.Data, &row); err != nil {
		return Host{}, &RemoteError{Message: "Unexpected response from the server.", Status: http.StatusOK}
	}
	return row.canonical(), nil
}

// Delete soft-deletes a host.
func (s *HostsService) Delete(ctx context.Context, id string) (string, error) {
	env, err := s.client.call(ctx, http.MethodDelete, "/user/host/"+url.PathEscape(id), "", nil)
	if err != nil {
		return "", err
	}
	if env.Message != "" {
		return env.Message, nil
	}
	return "Host deleted successfully", nil
}
