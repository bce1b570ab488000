// Mufasa AI - Chat Web Server
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Jiyan009/Mufasa-AI/internal/api"
	"github.com/Jiyan009/Mufasa-AI/internal/chat"
	"github.com/Jiyan009/Mufasa-AI/internal/config"
	"github.com/Jiyan009/Mufasa-AI/internal/identity"
	"github.com/Jiyan009/Mufasa-AI/internal/mascot"
	"github.com/Jiyan009/Mufasa-AI/internal/middleware"
	"github.com/Jiyan009/Mufasa-AI/internal/sarvam"
	"github.com/Jiyan009/Mufasa-AI/internal/search"
	"github.com/Jiyan009/Mufasa-AI/internal/store"
	"github.com/Jiyan009/Mufasa-AI/internal/weather"
	"github.com/Jiyan009/Mufasa-AI/internal/ws"
	"github.com/Jiyan009/Mufasa-AI/web"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting server", "port", cfg.Port, "dev", cfg.IsDevelopment())
	if !cfg.HasSarvamKey() {
		slog.Warn("SARVAM_API_KEY not set, chat turns will fail with provider errors")
	}

	// Initialize dependencies.
	repo, err := store.NewSQLite(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if closeErr := repo.Close(); closeErr != nil {
			slog.Error("Failed to close repository", "error", closeErr)
		}
	}()

	if err := repo.Ping(context.Background()); err != nil {
		slog.Error("Database health check failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database connected")

	sarvamClient := sarvam.NewClient(cfg.Sarvam.BaseURL, cfg.Sarvam.APIKey, cfg.Sarvam.Model)
	weatherClient := weather.NewClient(cfg.Weather.BaseURL, cfg.Weather.APIKey)
	searchClient := search.NewClient(cfg.Search.BaseURL, cfg.Search.APIKey, cfg.Search.MaxResults)

	chatSvc := chat.NewService(repo, sarvamClient, weatherClient, searchClient, chat.Options{
		Temperature: cfg.Sarvam.Temperature,
		HappyDelay:  cfg.HappyDelay,
	})

	if cfg.TurnLog.Enabled {
		turnLog, err := chat.NewNDJSONTurnLogger(cfg.TurnLog.Dir, 0)
		if err != nil {
			slog.Error("Failed to initialize turn logger", "error", err)
			os.Exit(1)
		}
		defer func() {
			if closeErr := turnLog.Close(); closeErr != nil {
				slog.Warn("Failed to close turn logger", "error", closeErr)
			}
		}()
		chatSvc.SetTurnLogger(turnLog)
		slog.Info("Turn logging enabled", "dir", cfg.TurnLog.Dir)
	}

	// Mascot transitions stream to the session's WebSocket as they happen.
	wsManager := ws.NewManager()
	chatSvc.SetStateListener(func(userID, sessionID string, state mascot.State) {
		wsManager.Send(userID, sessionID, ws.MascotEvent(state))
	})

	apiHandler := api.NewHandler(chatSvc, sarvamClient, repo, cfg)
	wsHandler := ws.NewHandler(wsManager, cfg.FrontendURL, cfg.IsDevelopment())

	// Setup router.
	r := chi.NewRouter()

	// Global middleware.
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))
	r.Use(middleware.CORS([]string{"*"}))
	r.Use(identity.Middleware(cfg.IsDevelopment()))

	apiHandler.RegisterRoutes(r)

	// WebSocket endpoint.
	r.Get("/ws/chat", wsHandler.ServeHTTP)

	// Serve embedded frontend (SPA catch-all).
	r.Handle("/*", web.SPAHandler())

	// A turn blocks on the chat call (30s budget) plus the translate call,
	// so the write timeout has to cover both with headroom.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start TTL worker.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	chat.StartTTLWorker(ctx, repo, cfg.SessionTTL, wsManager.CloseSession)

	// Start server.
	go func() {
		slog.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal.
	<-ctx.Done()
	stop()

	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped successfully")
}
