package main

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/gatherly-app/gatherly/internal/actions"
	"github.com/gatherly-app/gatherly/internal/api"
	"github.com/gatherly-app/gatherly/internal/auth"
	"github.com/gatherly-app/gatherly/internal/config"
	"github.com/gatherly-app/gatherly/internal/handlers"
	"github.com/gatherly-app/gatherly/internal/web"
	"github.com/gatherly-app/gatherly/pkg/cache"
	"github.com/gatherly-app/gatherly/pkg/cookie"
	"github.com/gatherly-app/gatherly/pkg/logger"
)

func main() {
	if err := run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.New().Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.NewWithSentry(logger.SentryConfig{
		DSN:         cfg.SentryDSN,
		Environment: cfg.Environment,
	}, web.RequestIDExtractor())

	client := api.NewClient(cfg.APIBaseURL, api.WithTimeout(cfg.APITimeout))
	catalog := handlers.NewCatalog(client.Categories(), cache.NewMemory[[]api.Category](cfg.CategoriesTTL))

	eventsAction := actions.NewEvents(client.Events())
	categoriesAction := actions.NewCategories(client.Categories())
	hostsAction := actions.NewHosts(client.Hosts())
	authAction := actions.NewAuth(client.Auth())

	app := web.New(
		web.WithAddress(cfg.Address),
		web.WithLogger(log),
		web.WithCookies(cookie.New(
			cookie.WithSecret(cfg.CookieSecret),
			cookie.WithSecure(cfg.SecureCookies),
			cookie.WithSameSite(http.SameSiteLaxMode),
		)),
		web.WithMiddleware(
			web.RequestID(),
			web.Recover(),
			web.Logging(),
			auth.Resolve(),
		),
		web.WithHandlers(
			handlers.NewSystem(client),
			handlers.NewEvents(client.Events(), catalog),
			handlers.NewAuth(authAction),
			handlers.NewDashboard(client.Events()),
			handlers.NewHost(client.Events(), eventsAction, catalog),
			handlers.NewAdmin(client.Events(), client.Hosts(), client.Users(), hostsAction, categoriesAction, catalog),
		),
		web.WithErrorHandler(handlers.ErrorHandler()),
		web.WithNotFoundHandler(handlers.NotFoundHandler()),
		web.WithShutdownHook(func(ctx context.Context) error {
			log.InfoContext(ctx, "server stopped")
			return nil
		}),
	)

	log.Info("starting server", "address", cfg.Address, "api", cfg.APIBaseURL, "env", cfg.Environment)
	return app.Run()
}
