package main

import (
	"context"
	"flag"
	"log"

	migrate "github.com/rubenv/sql-migrate"
	"go.uber.org/zap"

	"github.com/carein/call-summary/internal/infrastructure/database"
	"github.com/carein/call-summary/pkg/config"
)

func main() {
	down := flag.Bool("down", false, "roll migrations back instead of applying them")
	max := flag.Int("max", 0, "maximum number of migrations to run (0 = all)")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadDatabase()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.NewDB(context.Background(), cfg, logger)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	direction, verb := migrate.Up, "applied"
	if *down {
		direction, verb = migrate.Down, "rolled back"
	}

	log.Printf("🔄 Running embedded %s migrations...", cfg.Database.Driver)
	n, err := database.Migrate(db, cfg.Database.Driver, direction, *max)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Printf("✅ Successfully %s %d migration(s)!", verb, n)
}
