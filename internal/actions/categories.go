package actions

import (
	"context"

	"github.com/gatherly-app/gatherly/internal/api"
	"github.com/gatherly-app/gatherly/internal/forms"
	"github.com/gatherly-app/gatherly/internal/requests"
	"github.com/gatherly-app/gatherly/pkg/sanitizer"
)

// Categories handles category form submissions.
type Categories struct {
	svc *api.CategoriesService
}

// NewCategories creates the categories action with its API service.
func NewCategories(svc *api.CategoriesService) *Categories {
	return &Categories{svc: svc}
}

// Create runs one submission attempt of the category form.
func (a *Categories) Create(ctx context.Context, values forms.Values) (st forms.State) {
	defer func() {
		if r := recover(); r != nil {
			st = forms.Failed(values, "Something went wrong while creating category")
		}
	}()

	result, issues := requests.CreateCategory.Validate(values)
	if !issues.IsEmpty() {
		return forms.Invalid(values, issues)
	}

	message, err := a.svc.Create(ctx, sanitizer.PlainText(result.Str("name")))
	if err != nil {
		return forms.Failed(values, api.FailureMessage(err, "Failed to create category"))
	}
	return forms.Succeeded(message)
}
