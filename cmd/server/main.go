package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/saasbase/backend/internal/config"
	"github.com/saasbase/backend/internal/handler"
	"github.com/saasbase/backend/internal/middleware"
	"github.com/saasbase/backend/internal/repository"
	"github.com/saasbase/backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	log := newLogger()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, relying on environment variables")
	}

	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		log = log.Level(level)
	}

	// --- Database Connection ---
	// A missing or unreachable database is deliberately non-fatal.
	db, disconnect := config.ConnectDB(cfg, log)
	defer disconnect()

	// --- Initialize Repositories ---
	userRepo := repository.NewUserRepository(db)
	blogRepo := repository.NewBlogRepository(db)
	contactRepo := repository.NewContactRepository(db)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo)
	blogService := service.NewBlogService(blogRepo)
	contactService := service.NewContactService(contactRepo)

	// --- Initialize Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	blogHandler := handler.NewBlogHandler(blogService)
	contactHandler := handler.NewContactHandler(contactService)
	healthHandler := handler.NewHealthHandler(db, cfg.DatabaseURL != "")

	// --- Setup Gin Router ---
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware(log))
	router.Use(middleware.CORSMiddleware())

	// --- Register Routes ---
	healthHandler.RegisterHealthRoutes(router)
	apiGroup := router.Group("/api")
	authHandler.RegisterAuthRoutes(apiGroup)
	blogHandler.RegisterBlogRoutes(apiGroup)
	contactHandler.RegisterContactRoutes(apiGroup)

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen failed")
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exiting")
}

// newLogger builds the process-wide JSON logger written to stdout.
func newLogger() zerolog.Logger {
	return zerolog.New(os.Stdout).With().
		Str("role", "server").
		Timestamp().
		Logger()
}
