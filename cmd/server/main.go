package main

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	_ "ecotrack/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"ecotrack/internal/auth"
	"ecotrack/internal/cache"
	"ecotrack/internal/config"
	"ecotrack/internal/db"
	"ecotrack/internal/handler"
	"ecotrack/internal/repository"
	"ecotrack/internal/router"
	"ecotrack/internal/service"
)

// @title EcoTrack API
// @version 1.0
// @description Carbon footprint tracking API: log activities, review emissions and get reduction tips.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN, cfg.DBLogLevel)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if cfg.ResetDB {
		log.Println("RESET_DB=true detected, dropping all tables...")
		if err := db.Reset(gormDB); err != nil {
			log.Printf("Warning: reset failed (tables may not exist): %v", err)
		}
		log.Println("Tables dropped")
	}

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("%v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	if err := cacheClient.Ping(pingCtx); err != nil {
		log.Printf("Warning: redis unavailable, continuing without cache: %v", err)
	}
	cancel()

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	suggestionRepo := repository.NewSuggestionRepository(gormDB)
	activityRepo := repository.NewActivityRepository(gormDB)
	logRepo := repository.NewCarbonLogRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	userService := service.NewUserService(userRepo, cacheClient)
	activityService := service.NewActivityService(userRepo, categoryRepo, activityRepo, logRepo, cacheClient)
	recommendationService := service.NewRecommendationService(activityRepo, suggestionRepo, cacheClient)
	dashboardService := service.NewDashboardService(activityRepo, logRepo, cacheClient, cfg.DashboardWindowDays)
	referenceService := service.NewReferenceService(categoryRepo, suggestionRepo, cacheClient)

	// Register routes
	e := echo.New()
	router.Register(e, cfg, tokenStore, router.Handlers{
		User:      handler.NewUserHandler(userService),
		Auth:      handler.NewAuthHandler(authService),
		Activity:  handler.NewActivityHandler(activityService),
		Insight:   handler.NewInsightHandler(recommendationService, dashboardService),
		Reference: handler.NewReferenceHandler(referenceService),
	})

	log.Printf("Swagger documentation available at: %s", swaggerURL(cfg))

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}

// swaggerURL builds the docs URL; SwaggerHost may already include a scheme.
func swaggerURL(cfg *config.Config) string {
	host := cfg.SwaggerHost
	if host == "" {
		host = "localhost:" + cfg.ServerPort
	}
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	return strings.TrimSuffix(host, "/") + "/swagger/index.html"
}
