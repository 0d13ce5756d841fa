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

	"github.com/kailas-cloud/expertmatch/internal/config"
	dbRedis "github.com/kailas-cloud/expertmatch/internal/db/redis"
	"github.com/kailas-cloud/expertmatch/internal/domain"
	logpkg "github.com/kailas-cloud/expertmatch/internal/logger"
	"github.com/kailas-cloud/expertmatch/internal/metrics"
	indexrepo "github.com/kailas-cloud/expertmatch/internal/repository/index"
	recordrepo "github.com/kailas-cloud/expertmatch/internal/repository/record"
	chiTransport "github.com/kailas-cloud/expertmatch/internal/transport/chi"
	openaiEmb "github.com/kailas-cloud/expertmatch/internal/transport/openai"
	expertuc "github.com/kailas-cloud/expertmatch/internal/usecase/expert"
	healthuc "github.com/kailas-cloud/expertmatch/internal/usecase/health"
	matchuc "github.com/kailas-cloud/expertmatch/internal/usecase/match"
	projectuc "github.com/kailas-cloud/expertmatch/internal/usecase/project"
	reindexuc "github.com/kailas-cloud/expertmatch/internal/usecase/reindex"
	"github.com/kailas-cloud/expertmatch/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting expertmatch API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("records_driver", cfg.Records.Driver),
		zap.Strings("index_addrs", cfg.Index.Addrs),
	)

	// Relational record store
	gormDB, err := recordrepo.Open(cfg.Records.Driver, cfg.Records.DSN)
	if err != nil {
		logger.Fatal("Failed to open record store", zap.Error(err))
	}
	records, err := recordrepo.New(gormDB)
	if err != nil {
		logger.Fatal("Failed to migrate record store", zap.Error(err))
	}
	logger.Info("Connected to record store")

	// Vector index store
	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Index.Addrs,
		Password: cfg.Index.Password,
	})
	if err != nil {
		logger.Fatal("Failed to create index store", zap.Error(err))
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Index.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Index store not ready", zap.Error(err))
	}
	logger.Info("Connected to index store")

	index := indexrepo.New(store, cfg.Index.KeyPrefix, cfg.Embedding.Dimensions)
	if err := index.EnsureIndex(ctx); err != nil {
		logger.Fatal("Failed to ensure vector index", zap.Error(err))
	}

	// Register pipeline metrics explicitly (no init())
	metrics.RegisterPipelineMetrics()

	// Embedder — composition root
	embedder, embHealth := buildEmbedder(cfg.Embedding, logger)
	logger.Info("Embedder created",
		zap.String("provider", cfg.Embedding.Provider),
		zap.String("model", cfg.Embedding.Model),
		zap.Int("dimensions", cfg.Embedding.Dimensions),
	)

	// Background reindexer
	reindexer, err := reindexuc.New(records, index, embedder, cfg.Reindex.Workers, logger,
		reindexuc.WithMaxAttempts(cfg.Reindex.MaxAttempts),
		reindexuc.WithTimeout(time.Duration(cfg.Reindex.TimeoutSec)*time.Second),
	)
	if err != nil {
		logger.Fatal("Failed to create reindexer", zap.Error(err))
	}
	defer reindexer.Close()

	// Use case services
	expertSvc := expertuc.New(records, reindexer, logger)
	projectSvc := projectuc.New(records, logger)
	matchSvc := matchuc.New(records, index, embedder, logger).WithTopK(cfg.Matching.TopK)
	healthSvc := healthuc.New(records, store, embHealth)

	// HTTP server
	server := chiTransport.NewServer(expertSvc, projectSvc, matchSvc, healthSvc, logger)

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

// buildEmbedder selects the embedding provider. The hash embedder is
// fully local and needs no health check.
func buildEmbedder(cfg config.EmbeddingConfig, logger *zap.Logger) (domain.Embedder, healthuc.EmbeddingChecker) {
	if cfg.Provider == "openai" {
		emb := openaiEmb.NewEmbedder(&openaiEmb.Config{
			APIKey:     cfg.APIKey,
			BaseURL:    cfg.BaseURL,
			Model:      cfg.Model,
			Dimensions: cfg.Dimensions,
			Provider:   cfg.Provider,
			Logger:     logger,
		})
		return emb, emb
	}
	return domain.NewHashEmbedder(cfg.Dimensions), nil
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
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
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
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
