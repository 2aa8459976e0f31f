package cmd

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vidloop-backend/internal/ai"
	"vidloop-backend/internal/catalog"
	"vidloop-backend/internal/config"
	"vidloop-backend/internal/handlers"
	"vidloop-backend/internal/middleware"
	"vidloop-backend/internal/repository"
	"vidloop-backend/internal/services"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func Run() {
	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Setup logger
	setupLogger(cfg.Log.Level)

	// Build the shared catalogs once; they are read-only afterwards.
	pools := catalog.DefaultPools()
	gen := catalog.NewGenerator(pools, rand.New(rand.NewSource(time.Now().UnixNano())))
	catalogStore := repository.NewCatalogStore(pools.Users, gen.Songs(cfg.Catalog.Songs), gen.Effects(cfg.Catalog.Effects))
	sessionStore := repository.NewSessionStore()
	log.Info().
		Int("songs", cfg.Catalog.Songs).
		Int("effects", cfg.Catalog.Effects).
		Msg("Shared catalogs built")

	// Initialize services
	sessionService := services.NewSessionService(sessionStore, pools, cfg.Catalog, cfg.JWT.Secret, func() *rand.Rand {
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	})
	feedService := services.NewFeedService(sessionStore, pools.MainUser)
	chatService := services.NewChatService(sessionStore)
	storyService := services.NewStoryService(sessionStore)
	notificationService := services.NewNotificationService(sessionStore)
	aiClient := ai.NewClient(cfg.AI.Endpoint, cfg.AI.APIKey, cfg.AI.Model, cfg.AI.Timeout())
	wsHub := services.NewWSHub(storyService)

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(sessionService)
	feedHandler := handlers.NewFeedHandler(feedService)
	chatHandler := handlers.NewChatHandler(chatService)
	catalogHandler := handlers.NewCatalogHandler(catalogStore, storyService, notificationService)
	aiHandler := handlers.NewAIHandler(aiClient)
	wsHandler := handlers.NewWebSocketHandler(wsHub, sessionService)

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(corsMiddleware)

	// Routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/sessions", sessionHandler.CreateSession)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(sessionService))

			r.Get("/feed", feedHandler.GetFeed)
			r.Get("/shorts", feedHandler.GetShorts)
			r.Post("/videos/{video_id}/like", feedHandler.ToggleLike)
			r.Post("/videos/{video_id}/comments", feedHandler.AddComment)
			r.Delete("/videos/{video_id}/comments/{comment_id}", feedHandler.DeleteComment)

			r.Get("/stories", catalogHandler.GetStories)
			r.Get("/notifications", catalogHandler.GetNotifications)
			r.Post("/notifications/read", catalogHandler.MarkNotificationsRead)

			r.Get("/chats", chatHandler.GetChats)
			r.Get("/chats/{chat_id}", chatHandler.GetChat)
			r.Post("/chats/{chat_id}/messages", chatHandler.SendMessage)

			r.Get("/songs", catalogHandler.SearchSongs)
			r.Get("/effects", catalogHandler.GetEffects)
			r.Get("/users/{user_id}", catalogHandler.GetUser)

			r.Route("/admin", func(r chi.Router) {
				r.Post("/moderate", aiHandler.ModerateContent)
				r.Post("/captions", aiHandler.GenerateCaptions)
				r.Post("/fraud", aiHandler.DetectFraud)
				r.Post("/bugfix", aiHandler.SuggestBugFix)
				r.Post("/mood", aiHandler.RecommendVideos)
			})
		})
	})

	// WebSocket route
	r.Get("/ws", wsHandler.HandleWebSocket)

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("host", cfg.Server.Host).
			Int("port", cfg.Server.Port).
			Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Shutdown HTTP server; open WebSocket connections close with it and
	// unregister their viewers on the way out.
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// setupLogger configures zerolog logger
func setupLogger(level string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// corsMiddleware handles CORS
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
