package actions

import (
	"context"

	"github.com/gatherly-app/gatherly/internal/api"
	"github.com/gatherly-app/gatherly/internal/forms"
	"github.com/gatherly-app/gatherly/internal/requests"
	"github.com/gatherly-app/gatherly/pkg/sanitizer"
)

// Hosts handles host management form submissions.
type Hosts struct {
	svc *api.HostsService
}

// NewHosts creates the hosts action with its API service.
func NewHosts(svc *api.HostsService) *Hosts {
	return &Hosts{svc: svc}
}

// Save runs one submission attempt of the host dialog. An empty id means
// create (password required), a set id means update (password ignored).
func (a *Hosts) Save(ctx context.Context, id string, values forms.Values, file *api.Upload) (st forms.State) {
	defer func() {
		if r := recover(); r != nil {
			st = forms.Failed(values, "Something went wrong while saving host")
		}
	}()

	schema := requests.CreateHost
	if id != "" {
		schema = requests.UpdateHost
	}

	result, issues := schema.Validate(values)
	if !issues.IsEmpty() {
		return forms.Invalid(values, issues)
	}

	req := api.SaveHostRequest{
		ID:       id,
		Password: result.Str("password"),
		File:     file,
		Payload: api.HostPayload{
			Name:          sanitizer.PlainText(result.Str("name")),
			Email:         result.Str("email"),
			DisplayName:   sanitizer.PlainText(result.Str("displayName")),
			Bio:           sanitizer.BasicHTML(result.Str("bio")),
			Location:      sanitizer.PlainText(result.Str("location")),
			ContactNumber: sanitizer.PlainText(result.Str("contactNumber")),
			IsVerified:    result.Bool("isVerified"),
			IsDeleted:     result.Bool("isDeleted"),
		},
	}

	message, err := a.svc.Save(ctx, req)
	if err != nil {
		return forms.Failed(values, api.FailureMessage(err, "Failed to save host"))
	}
	return forms.Succeeded(message)
}

// Delete removes a host by id and returns the server's confirmation.
func (a *Hosts) Delete(ctx context.Context, id string) (string, error) {
	return a.svc.Delete(ctx, id)
}
