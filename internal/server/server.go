package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/EmojiKombat_Go/internal/handler"
	"github.com/osse101/EmojiKombat_Go/internal/metrics"
	"github.com/osse101/EmojiKombat_Go/internal/progression"
	"github.com/osse101/EmojiKombat_Go/internal/repository"
)

// Server is the HTTP presentation layer
type Server struct {
	httpServer *http.Server
	service    progression.Service
}

// Options configures the router
type Options struct {
	Port           int
	Version        string // configured version; ldflags take precedence
	APIKey         string // empty disables authentication
	TrustedProxies []string
	MaxBodyBytes   int64
	RateLimit      int           // requests per client per RateWindow; 0 uses the default
	RateWindow     time.Duration // 0 uses the default
}

// NewServer creates a new Server instance
func NewServer(opts Options, service progression.Service, store repository.Pinger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, service, store),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		service: service,
	}
}

// NewRouter builds the chi router with every route and middleware mounted
func NewRouter(opts Options, service progression.Service, store repository.Pinger) chi.Router {
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = DefaultRateLimit
	}
	if opts.RateWindow <= 0 {
		opts.RateWindow = DefaultRateWindow
	}

	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	limiter := NewRateWindow(opts.RateWindow, opts.RateLimit)

	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, limiter))
	r.Use(RateLimitMiddleware(opts.TrustedProxies, limiter))
	r.Use(RequestSizeLimitMiddleware(opts.MaxBodyBytes))
	r.Use(metrics.Middleware)

	// Health check routes (unversioned)
	health := handler.NewHealthChecker(store)
	r.Get("/healthz", health.HandleHealthz())
	r.Get("/readyz", health.HandleReadyz())
	r.Get("/version", handler.HandleVersion(handler.ResolveBuild(opts.Version)))
	r.Handle("/metrics", promhttp.Handler())

	catalogHandlers := handler.NewCatalogHandlers(service)
	playerHandlers := handler.NewPlayerHandlers(service)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/upgrades", catalogHandlers.HandleGetUpgrades())
			r.Get("/ranks", catalogHandlers.HandleGetRanks())
			r.Get("/tasks", catalogHandlers.HandleGetTasks())
		})

		r.Post("/players", playerHandlers.HandleCreate())
		r.Route("/players/{playerID}", func(r chi.Router) {
			r.Get("/", playerHandlers.HandleGetState())
			r.Delete("/", playerHandlers.HandleReset())
			r.Post("/tap", playerHandlers.HandleTap())
			r.Get("/upgrades", playerHandlers.HandleGetOffers())
			r.Post("/upgrades/{upgradeID}", playerHandlers.HandlePurchaseUpgrade())
			r.Get("/tasks", playerHandlers.HandleGetTasks())
			r.Post("/tasks/complete", playerHandlers.HandleCompleteTask())
			r.Post("/tasks/{taskID}/claim", playerHandlers.HandleClaimTask())
			r.Post("/minigames/earn", playerHandlers.HandleEarnFromMinigame())
			r.Post("/referrals", playerHandlers.HandleIncrementReferral())
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start blocks serving HTTP until Stop is called
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ReadHeaderTimeout bounds slowloris-style header reads
const ReadHeaderTimeout = 5 * time.Second
