package main

import (
	"context"
	"log"
	"time"

	"portfolio-api/internal/config"
	"portfolio-api/internal/database/migration"
	dbpostgres "portfolio-api/internal/database/postgres"
	"portfolio-api/internal/repository"
	"portfolio-api/internal/usecase"
)

// Loads the embedded portfolio fixture into Postgres, replacing any
// existing content. Meant for first-time setup and local development.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.Run(ctx, db); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	seeder := usecase.NewSeedUsecase(
		repository.NewPostgresSectionRepository(db),
		repository.NewPostgresProjectRepository(db),
		repository.NewPostgresExperienceRepository(db),
		nil,
		log.Default(),
	)
	if err := seeder.Seed(ctx); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}

	log.Println("database seeded successfully")
}
