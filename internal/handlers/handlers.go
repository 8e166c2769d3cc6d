// Package handlers wires HTTP routes to actions and views. Each handler
// group implements web.Handler and registers its own routes.
package handlers

import (
	"context"
	"io"

	"github.com/gatherly-app/gatherly/internal/api"
	"github.com/gatherly-app/gatherly/internal/auth"
	"github.com/gatherly-app/gatherly/internal/forms"
	"github.com/gatherly-app/gatherly/internal/web"
	"github.com/gatherly-app/gatherly/pkg/cache"
)

const categoriesCacheKey = "categories"

// Catalog serves the category list through a short-lived cache; the list
// backs both the public filter bar and the event form, and changes rarely.
type Catalog struct {
	svc   *api.CategoriesService
	cache *cache.Memory[[]api.Category]
}

// NewCatalog creates the catalog around the categories service.
func NewCatalog(svc *api.CategoriesService, c *cache.Memory[[]api.Category]) *Catalog {
	return &Catalog{svc: svc, cache: c}
}

// Categories returns the cached category list, loading it on a miss.
// Concurrent misses share one remote call.
func (cat *Catalog) Categories(ctx context.Context) ([]api.Category, error) {
	return cat.cache.GetOrLoad(ctx, categoriesCacheKey, func(ctx context.Context) ([]api.Category, error) {
		return cat.svc.List(ctx)
	})
}

// Invalidate drops the cached list after a category is created.
func (cat *Catalog) Invalidate(ctx context.Context) {
	_ = cat.cache.Delete(ctx, categoriesCacheKey)
}

// apiCtx returns the request context with the signed-in user's API token
// attached, so service calls authenticate as that user.
func apiCtx(c web.Context) context.Context {
	ctx := c.Context()
	if u, ok := auth.CurrentUser(c); ok && u.APIToken != "" {
		ctx = api.WithToken(ctx, u.APIToken)
	}
	return ctx
}

// formValues converts the posted form into the shape schemas validate.
func formValues(c web.Context) forms.Values {
	return forms.Values(c.FormValues())
}

// formUpload reads the optional file part of a multipart form. It returns
// nil when no file was attached; the caller owns closing nothing, the
// request's lifecycle cleans up the temp file.
func formUpload(c web.Context, name string) (*api.Upload, io.Closer) {
	file, header, err := c.FormFile(name)
	if err != nil || header == nil || header.Filename == "" {
		return nil, nil
	}
	return &api.Upload{Filename: header.Filename, Content: file}, file
}

// sessionUser returns the current user; handlers behind RequireAuth can
// assume it is present.
func sessionUser(c web.Context) auth.User {
	u, _ := auth.CurrentUser(c)
	return u
}
