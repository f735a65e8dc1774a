package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/CoinQuest_Go/internal/auth"
	"github.com/osse101/CoinQuest_Go/internal/cooldown"
	"github.com/osse101/CoinQuest_Go/internal/handler"
	"github.com/osse101/CoinQuest_Go/internal/jobs"
	"github.com/osse101/CoinQuest_Go/internal/ledger"
	"github.com/osse101/CoinQuest_Go/internal/logger"
	"github.com/osse101/CoinQuest_Go/internal/metrics"
	"github.com/osse101/CoinQuest_Go/internal/profile"
	"github.com/osse101/CoinQuest_Go/internal/redeem"
	"github.com/osse101/CoinQuest_Go/internal/reward"
	"github.com/osse101/CoinQuest_Go/internal/shop"
	"github.com/osse101/CoinQuest_Go/internal/sse"
)

// Options are the listener and middleware settings
type Options struct {
	Port              int
	APIKey            string
	TrustedProxies    []string
	SSEKeepAlive      time.Duration
	CountdownInterval time.Duration
}

// Dependencies are the services the routes call into
type Dependencies struct {
	DB        handler.Pinger
	Verifier  *auth.Verifier
	Profiles  profile.Service
	Cooldowns cooldown.Service
	Rewards   reward.Service
	Ledger    ledger.Service
	Shop      shop.Service
	Redeem    redeem.Service
	Hub       *sse.Hub
	JobRunner handler.JobRunner
	Jobs      []jobs.Job
}

type Server struct {
	httpServer *http.Server
	// drainCtx is cancelled when shutdown begins so long-lived streams return
	drainCtx context.Context
	drain    context.CancelFunc
}

// NewServer creates a new Server instance
func NewServer(opts Options, deps Dependencies) *Server {
	drainCtx, drain := context.WithCancel(context.Background())
	s := &Server{drainCtx: drainCtx, drain: drain}

	if opts.CountdownInterval <= 0 {
		opts.CountdownInterval = sse.CountdownInterval
	}

	profileHandler := handler.NewProfileHandler(deps.Profiles, deps.Cooldowns)
	rewardHandler := handler.NewRewardHandler(deps.Rewards)
	ledgerHandler := handler.NewLedgerHandler(deps.Ledger)
	shopHandler := handler.NewShopHandler(deps.Shop)
	redeemHandler := handler.NewRedeemHandler(deps.Redeem, opts.CountdownInterval)
	adminHandler := handler.NewAdminHandler(deps.Ledger, deps.Profiles, deps.JobRunner, deps.Jobs...)

	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.DB))

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		// Player routes: JWT bearer, profile created on first sight
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(deps.Verifier))
			r.Use(handler.EnsureProfileMiddleware(deps.Profiles))

			r.Get("/profile", profileHandler.HandleGetProfile)
			r.Get("/cooldowns", profileHandler.HandleGetCooldowns)

			r.Post("/rewards/claim", rewardHandler.HandleClaim)
			r.Post("/rewards/video/sessions", rewardHandler.HandleStartVideo)
			r.Get("/rewards/wheel", rewardHandler.HandleGetWheel)

			r.Get("/transactions", ledgerHandler.HandleGetTransactions)

			r.Get("/shop/items", shopHandler.HandleListItems)
			r.Post("/shop/purchase", shopHandler.HandlePurchase)

			r.Get("/redeem/codes", redeemHandler.HandleListCodes)
			r.Post("/redeem/sessions", redeemHandler.HandleStart)
			r.Get("/redeem/sessions/current", redeemHandler.HandleCurrent)
			r.Post("/redeem/sessions/{id}/confirm", redeemHandler.HandleConfirm)
			r.Delete("/redeem/sessions/{id}", redeemHandler.HandleCancel)

			// Streams
			r.With(s.streamMiddleware).Get("/redeem/sessions/{id}/countdown", redeemHandler.HandleCountdown)
			r.With(s.streamMiddleware).Get("/events", sse.Handler(deps.Hub, opts.SSEKeepAlive))
		})

		// Operator routes
		r.Route("/admin", func(r chi.Router) {
			r.Use(APIKeyMiddleware(opts.APIKey, opts.TrustedProxies, detector))

			r.Get("/ledger/{authID}/audit", adminHandler.HandleLedgerAudit)
			r.Get("/cache/stats", adminHandler.HandleGetCacheStats)
			r.Post("/jobs/{job}/run", adminHandler.HandleRunJob)
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.Port),
		Handler:           r,
		ReadHeaderTimeout: ReadHeaderTimeout,
		ReadTimeout:       ReadTimeout,
		WriteTimeout:      WriteTimeout,
		IdleTimeout:       IdleTimeout,
	}
	s.httpServer.RegisterOnShutdown(func() {
		slog.Info(LogMsgDrainingStreams)
		s.drain()
	})
	return s
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// streamMiddleware lifts the write deadline for SSE responses and ends them
// when the server starts shutting down.
func (s *Server) streamMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = http.NewResponseController(w).SetWriteDeadline(time.Time{})

		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()
		stop := context.AfterFunc(s.drainCtx, cancel)
		defer stop()

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		for _, p := range QuietPaths {
			if strings.HasPrefix(r.URL.Path, p) {
				next.ServeHTTP(w, r)
				return
			}
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	defer s.drain()
	return s.httpServer.Shutdown(ctx)
}
