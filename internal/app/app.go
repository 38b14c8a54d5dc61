// Package app assembles the router, middleware stack and routes into one handler.
package app

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/janisto/image-analyzer-backend/internal/http/health"
	"github.com/janisto/image-analyzer-backend/internal/http/root"
	"github.com/janisto/image-analyzer-backend/internal/platform/config"
	applog "github.com/janisto/image-analyzer-backend/internal/platform/logging"
	appmiddleware "github.com/janisto/image-analyzer-backend/internal/platform/middleware"
	"github.com/janisto/image-analyzer-backend/internal/platform/openapi"
	"github.com/janisto/image-analyzer-backend/internal/platform/respond"
)

// New builds the application handler and the huma API registered on it.
func New(cfg config.Config, version string) (http.Handler, huma.API) {
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	router.Use(
		appmiddleware.Security(openapi.DocsPath),
		appmiddleware.Vary(),
		appmiddleware.CORS(cfg.AllowedOrigins...),
		appmiddleware.RequestID(),
		// RealIP trusts X-Forwarded-For; only deploy behind a trusted proxy.
		chimiddleware.RealIP,
		chimiddleware.RequestSize(cfg.MaxRequestBytes),
		applog.RequestLogger(),
		applog.AccessLogger(),
		respond.Recoverer(),
	)

	router.Get("/health", health.Handler(version))

	api := humachi.New(router, openapi.Config(version))
	root.Register(api)

	return router, api
}
