package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/satpilot/backend/internal/api"
	"github.com/satpilot/backend/internal/assembler"
	"github.com/satpilot/backend/internal/catalog"
	"github.com/satpilot/backend/internal/domain/questionbank"
	"github.com/satpilot/backend/internal/generator"
	"github.com/satpilot/backend/internal/infrastructure/config"
	"github.com/satpilot/backend/internal/service"
	"github.com/satpilot/backend/internal/store"
	"github.com/satpilot/backend/internal/trends"

	_ "github.com/satpilot/backend/docs" // generated swagger docs
)

// @title           SATPilot API
// @version         1.0
// @description     SAT practice companion — assemble quiz sessions, track performance, and predict section scores.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Dependencies ────────────────────────────────────────────────
	db, err := store.NewSQLite(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	cat, err := loadCatalog(cfg, logger)
	if err != nil {
		logger.Error("failed to load catalog", "error", err)
		os.Exit(1)
	}
	bank := questionbank.New(cat.Questions, cat.Passages)

	// Generated questions survive restarts.
	generated, err := db.LoadGenerated(context.Background())
	if err != nil {
		logger.Error("failed to load generated questions", "error", err)
		os.Exit(1)
	}
	bank.AddGenerated(generated)
	logger.Info("question bank ready",
		"catalog", len(cat.Questions),
		"generated", len(generated),
	)

	source := generator.NewFallbackSource(buildSource(cfg, logger), logger)
	trendsClient := buildTrends(cfg, logger)

	asm := assembler.New(bank, source, trendsClient, logger)
	sessions := service.NewSessionService(asm, bank, db, logger)
	handler := api.NewHandler(bank, sessions, db, logger)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}

func loadCatalog(cfg *config.Config, logger *slog.Logger) (*catalog.Catalog, error) {
	if cfg.CatalogDir == "" {
		logger.Info("using built-in catalog")
		return catalog.Builtin(), nil
	}
	return catalog.LoadDir(cfg.CatalogDir)
}

// buildSource picks the configured question provider. Returns nil when no
// provider is usable; the fallback source then serves template questions.
func buildSource(cfg *config.Config, logger *slog.Logger) generator.Source {
	switch cfg.Provider {
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			logger.Warn("gemini provider selected but GEMINI_API_KEY is not set")
			return nil
		}
		src, err := generator.NewGeminiSource(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Warn("failed to create gemini source", "error", err)
			return nil
		}
		return src
	case "llm":
		return generator.NewLLMSource(cfg.LLMURL, cfg.LLMModel)
	default:
		logger.Warn("unknown question provider", "provider", cfg.Provider)
		return nil
	}
}

func buildTrends(cfg *config.Config, logger *slog.Logger) *trends.Client {
	if cfg.SearchURL == "" {
		return trends.New("", "", nil, logger)
	}

	var cache *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Warn("invalid REDIS_URL, hint cache disabled", "error", err)
		} else {
			cache = redis.NewClient(opts)
		}
	}
	return trends.New(cfg.SearchURL, cfg.SearchAPIKey, cache, logger)
}
