package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/sudostake/vault-indexer/internal/config"
	"github.com/sudostake/vault-indexer/internal/db/model"
	"github.com/sudostake/vault-indexer/internal/observability/metrics"
	"github.com/sudostake/vault-indexer/internal/observability/tracing"
)

// VaultService is the part of services.Service exposed over http.
type VaultService interface {
	Healthcheck(ctx context.Context) error
	GetVaultIDsByOwner(ctx context.Context, factoryID, owner string) ([]string, error)
	SyncVault(ctx context.Context, factoryID, vaultID string, txHash *string) (*model.VaultDocument, error)
}

type Server struct {
	httpServer *http.Server
}

func New(cfg *config.ServerConfig, service VaultService) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         cfg.Addr(),
			Handler:      NewRouter(service),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
	}
}

func NewRouter(service VaultService) http.Handler {
	h := &Handlers{service: service}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(tracing.Middleware)
	r.Use(recordDuration)

	r.Get("/healthcheck", h.Healthcheck)
	r.Route("/api", func(r chi.Router) {
		r.Get("/vaults-by-owner", h.GetVaultsByOwner)
		r.Post("/index-vault", h.IndexVault)
	})

	return r
}

// Start blocks until the server is shut down.
func (s *Server) Start() error {
	log.Info().Msgf("Starting api server on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	log.Info().Msg("Shutting down api server")
	return s.httpServer.Shutdown(ctx)
}

func recordDuration(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		startTime := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		// route pattern keeps label cardinality bounded
		route := "unknown"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		metrics.RecordHttpRequestDuration(time.Since(startTime), route, ww.Status())
	})
}
