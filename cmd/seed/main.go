package main

import (
	"context"
	"log"

	"ecotrack/internal/config"
	"ecotrack/internal/db"
	"ecotrack/internal/repository"
	"ecotrack/internal/seed"
	"ecotrack/internal/service"
)

func main() {
	log.Println("Starting seed script...")

	// Load configuration
	cfg := config.Load()

	// Connect to database
	gormDB, err := db.NewMySQL(cfg.MySQLDSN, cfg.DBLogLevel)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	source := cfg.SeedFile
	if source == "" {
		source = "embedded defaults"
	}
	log.Printf("Loading reference data from: %s", source)
	data, err := seed.LoadFile(cfg.SeedFile)
	if err != nil {
		log.Fatalf("Failed to load reference data: %v", err)
	}
	log.Printf("Loaded %d categories", len(data.Categories))

	// Seeding runs without a cache; the server's cached reference lists expire on their own.
	referenceService := service.NewReferenceService(
		repository.NewCategoryRepository(gormDB),
		repository.NewSuggestionRepository(gormDB),
		nil,
	)

	log.Println("Seeding reference data into database...")
	result, err := referenceService.SeedReferenceData(context.Background(), data)
	if err != nil {
		log.Fatalf("Failed to seed reference data: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Categories created: %d", result.CategoriesCreated)
	log.Printf("  - Categories updated: %d", result.CategoriesUpdated)
	log.Printf("  - Suggestions created: %d", result.SuggestionsCreated)
	log.Printf("  - Suggestions already present: %d", result.SuggestionsSkipped)
}
