package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-medlink-backend/config"
	_ "go-medlink-backend/docs" // Important for Swagger
	v1 "go-medlink-backend/internal/delivery/http/v1"
	"go-medlink-backend/internal/repository/postgres"
	"go-medlink-backend/internal/usecase"
	"go-medlink-backend/pkg/auth"
	"go-medlink-backend/pkg/database"
	"go-medlink-backend/pkg/logger"
	"go-medlink-backend/pkg/redis"
	"go-medlink-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// @title           MedLink Backend API
// @version         1.0
// @description     Professional network backend for healthcare professionals and institutions.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting medlink backend", "port", cfg.Port)

	// 3. Setup Database
	ctx := context.Background()
	dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// Readiness probe caches whether the schema is actually reachable.
	// The server still starts when the store is down; reads degrade.
	readiness := database.NewReadiness(dbPool, logger.Log)
	readiness.Probe(ctx)

	// 4. Setup Redis (rate limiting); the API works without it
	if err := redis.Initialize(redis.Config{
		URL:      cfg.UpstashRedisURL,
		Password: cfg.UpstashRedisPassword,
	}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	}

	// 5. Setup Repositories
	profileRepo := postgres.NewProfileRepository(dbPool)
	postRepo := postgres.NewPostRepository(dbPool)
	connectionRepo := postgres.NewConnectionRepository(dbPool)
	followRepo := postgres.NewFollowRepository(dbPool)
	experienceRepo := postgres.NewExperienceRepository(dbPool)
	educationRepo := postgres.NewEducationRepository(dbPool)
	institutionRepo := postgres.NewInstitutionRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	eventRepo := postgres.NewEventRepository(dbPool)

	// 6. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)

	profileUC := usecase.NewProfileUsecase(profileRepo, readiness, validate)
	postUC := usecase.NewPostUsecase(postRepo, profileRepo, readiness)
	connectionUC := usecase.NewConnectionUsecase(connectionRepo, profileRepo, readiness)
	followUC := usecase.NewFollowUsecase(followRepo, readiness)
	careerUC := usecase.NewCareerUsecase(experienceRepo, educationRepo, readiness)
	institutionUC := usecase.NewInstitutionUsecase(institutionRepo, readiness)
	jobUC := usecase.NewJobUsecase(jobRepo, institutionRepo, readiness)
	eventUC := usecase.NewEventUsecase(eventRepo, readiness)

	// 7. Setup Auth Provider (JWKS)
	// Assuming Supabase URL is like https://xyz.supabase.co
	jwksURL := cfg.SupabaseUrl + "/auth/v1/.well-known/jwks.json"
	jwksProvider := auth.NewProvider(jwksURL)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ProfileUC:     profileUC,
		PostUC:        postUC,
		ConnectionUC:  connectionUC,
		FollowUC:      followUC,
		CareerUC:      careerUC,
		InstitutionUC: institutionUC,
		JobUC:         jobUC,
		EventUC:       eventUC,
		StoreGuard:    readiness,
		JWKSProvider:  jwksProvider,
		Config:        cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	redis.Close()
	logger.Log.Info("Server exiting")
}
