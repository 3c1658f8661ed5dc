package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/suplink/vendorcrm/internal/config"
	dbRedis "github.com/suplink/vendorcrm/internal/db/redis"
	logpkg "github.com/suplink/vendorcrm/internal/logger"
	"github.com/suplink/vendorcrm/internal/metrics"
	"github.com/suplink/vendorcrm/internal/repository/record"
	chiTransport "github.com/suplink/vendorcrm/internal/transport/chi"
	contactuc "github.com/suplink/vendorcrm/internal/usecase/contact"
	dealuc "github.com/suplink/vendorcrm/internal/usecase/deal"
	healthuc "github.com/suplink/vendorcrm/internal/usecase/health"
	noteuc "github.com/suplink/vendorcrm/internal/usecase/note"
	vendoruc "github.com/suplink/vendorcrm/internal/usecase/vendor"
	"github.com/suplink/vendorcrm/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting vendorcrm API server",
		zap.String("version", version.String()),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Bool("database_url_set", cfg.Database.URL != ""),
	)

	// Connect to the document store. A missing URL or a failed connection
	// does not abort startup: the API stays up and data endpoints answer 503
	// until the store comes back. The diagnostic endpoint reports the state.
	var store *dbRedis.Store
	if cfg.Database.URL != "" {
		store, err = dbRedis.NewStore(dbRedis.Config{URL: cfg.Database.URL})
		if err != nil {
			logger.Error("Failed to create document store, continuing without it", zap.Error(err))
			store = nil
		}
	} else {
		logger.Warn("DATABASE_URL not set, running without a document store")
	}

	ctx := context.Background()
	if store != nil {
		defer store.Close()
		readiness := time.Duration(cfg.Database.ReadinessTimeout) * time.Second
		if err := store.WaitForReady(ctx, readiness); err != nil {
			logger.Warn("Document store not ready", zap.Error(err))
		} else {
			logger.Info("Connected to document store")
		}
	}

	// Pass nil interface (not typed nil pointer!) when the store is absent.
	// Go gotcha: (*redis.Store)(nil) wrapped in an interface != nil.
	var pinger healthuc.Pinger
	if store != nil {
		pinger = store
	}

	repo := record.New(nil)
	if store != nil {
		repo = record.New(store)
	}

	var lister healthuc.CollectionLister
	if store != nil {
		lister = repo
	}

	vendorSvc := vendoruc.New(repo).WithDefaultLimit(cfg.Lists.VendorLimit)
	contactSvc := contactuc.New(repo).WithDefaultLimit(cfg.Lists.DefaultLimit)
	dealSvc := dealuc.New(repo).WithDefaultLimit(cfg.Lists.DefaultLimit)
	noteSvc := noteuc.New(repo).WithDefaultLimit(cfg.Lists.DefaultLimit)
	healthSvc := healthuc.New(pinger, lister, cfg.Database.URL != "")

	server := chiTransport.NewServer(vendorSvc, contactSvc, dealSvc, noteSvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(chiTransport.ErrorResponse{
						Detail: "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.WithContext(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line, one per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
