package web

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/gatherly-app/gatherly/pkg/cookie"
	"github.com/gatherly-app/gatherly/pkg/logger"
)

// Default server timeouts.
const (
	defaultReadTimeout       = 15 * time.Second
	defaultWriteTimeout      = 30 * time.Second
	defaultIdleTimeout       = 120 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
	defaultMaxHeaderBytes    = 1 << 20 // 1MB
	defaultShutdownTimeout   = 30 * time.Second
)

// App orchestrates the application lifecycle: routing, middleware, error
// handling, and graceful shutdown. Immutable after New.
type App struct {
	baseCtx context.Context
	logger  *slog.Logger

	server   *http.Server
	router   chi.Router
	listener net.Listener

	cookieManager *cookie.Manager

	errorHandler    ErrorHandler
	notFoundHandler HandlerFunc

	shutdownTimeout time.Duration
	shutdownHooks   []func(ctx context.Context) error
}

// Option configures the application.
type Option func(*App)

// WithAddress sets the listen address.
func WithAddress(addr string) Option {
	return func(a *App) {
		a.server.Addr = addr
	}
}

// WithLogger sets the application logger.
func WithLogger(log *slog.Logger) Option {
	return func(a *App) {
		a.logger = log
	}
}

// WithBaseContext sets the base context used for signal handling.
func WithBaseContext(ctx context.Context) Option {
	return func(a *App) {
		a.baseCtx = ctx
	}
}

// WithCookies sets the cookie manager available to handlers.
func WithCookies(cm *cookie.Manager) Option {
	return func(a *App) {
		a.cookieManager = cm
	}
}

// WithMiddleware appends global middleware applied to every route.
func WithMiddleware(mw ...Middleware) Option {
	return func(a *App) {
		for _, m := range mw {
			a.router.Use(a.adaptMiddleware(m))
		}
	}
}

// WithHandlers registers route handlers.
func WithHandlers(handlers ...Handler) Option {
	return func(a *App) {
		r := &routerAdapter{router: a.router, app: a}
		for _, h := range handlers {
			h.Routes(r)
		}
	}
}

// WithErrorHandler overrides the default error handler.
func WithErrorHandler(h ErrorHandler) Option {
	return func(a *App) {
		a.errorHandler = h
	}
}

// WithNotFoundHandler sets the handler for unmatched routes.
func WithNotFoundHandler(h HandlerFunc) Option {
	return func(a *App) {
		a.notFoundHandler = h
	}
}

// WithShutdownTimeout sets the graceful shutdown timeout.
func WithShutdownTimeout(d time.Duration) Option {
	return func(a *App) {
		a.shutdownTimeout = d
	}
}

// WithShutdownHook appends a hook run during graceful shutdown, after the
// HTTP server stops accepting requests.
func WithShutdownHook(hook func(ctx context.Context) error) Option {
	return func(a *App) {
		a.shutdownHooks = append(a.shutdownHooks, hook)
	}
}

// New creates a new application with the given options.
func New(opts ...Option) *App {
	router := chi.NewRouter()

	a := &App{
		router:          router,
		logger:          logger.NewNope(),
		cookieManager:   cookie.New(),
		shutdownTimeout: defaultShutdownTimeout,
		server: &http.Server{
			Addr:              ":8080",
			Handler:           router,
			ReadTimeout:       defaultReadTimeout,
			WriteTimeout:      defaultWriteTimeout,
			IdleTimeout:       defaultIdleTimeout,
			ReadHeaderTimeout: defaultReadHeaderTimeout,
			MaxHeaderBytes:    defaultMaxHeaderBytes,
		},
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.notFoundHandler != nil {
		router.NotFound(a.adaptHandler(a.notFoundHandler))
	}

	return a
}

// Router returns the underlying http.Handler, mainly for tests.
func (a *App) Router() http.Handler {
	return a.router
}

// Addr returns the server's listening address, "" before Run.
func (a *App) Addr() string {
	if a.listener == nil {
		return ""
	}
	return a.listener.Addr().String()
}

// handleError routes handler errors through the configured error handler,
// falling back to a minimal response when none is set or it fails too.
func (a *App) handleError(c Context, err error) {
	if a.errorHandler != nil {
		if herr := a.errorHandler(c, err); herr == nil {
			return
		}
	}
	if c.Written() {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal Server Error"
	if httpErr := AsHTTPError(err); httpErr != nil {
		code = httpErr.Code
		message = httpErr.Message
	}
	_ = c.String(code, message)
}

// Run starts the HTTP server and blocks until a shutdown signal or a fatal
// server error. Shutdown drains in-flight requests within the configured
// timeout, then runs shutdown hooks in order.
func (a *App) Run() error {
	baseCtx := a.baseCtx
	if baseCtx == nil {
		baseCtx = context.Background()
	}
	ctx, cancel := signal.NotifyContext(baseCtx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Listen first so Addr reports the bound address.
	ln, err := net.Listen("tcp", a.server.Addr)
	if err != nil {
		return err
	}
	a.listener = ln

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("server starting", slog.String("address", ln.Addr().String()))
		if err := a.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.logger.Info("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer shutdownCancel()

	var errs []error
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, err)
	}
	for _, hook := range a.shutdownHooks {
		if err := hook(shutdownCtx); err != nil {
			errs = append(errs, err)
			a.logger.Error("shutdown hook failed", slog.Any("error", err))
		}
	}

	if len(errs) > 0 {
		a.logger.Error("shutdown completed with errors")
		return errors.Join(errs...)
	}

	a.logger.Info("shutdown completed")
	return nil
}
