package main

import (
	"context"
	"fmt"
	"log"

	"go.uber.org/zap"

	"github.com/carein/call-summary/internal/adapter/repository"
	"github.com/carein/call-summary/internal/infrastructure/database"
	"github.com/carein/call-summary/internal/infrastructure/metrics"
	"github.com/carein/call-summary/internal/usecase/summary"
	pkgai "github.com/carein/call-summary/pkg/ai"
	"github.com/carein/call-summary/pkg/config"
)

var sampleTranscripts = []string{
	"Patient called about tooth pain in the lower left molar, scheduled appointment for Friday at 10am.",
	"Caller asked whether the office accepts Delta Dental PPO and what the copay for a cleaning would be.",
	"Parent rescheduled their son's orthodontic check from Tuesday to next Monday afternoon.",
	"Patient reported swelling after yesterday's extraction; front desk advised ice and booked a follow-up tomorrow.",
	"Caller requested a copy of their x-rays to be sent to a specialist, needs a signed release form.",
}

func main() {
	log.Println("🚀 Seeding demo call summaries...")

	// Load configuration from .env
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	// Initialize database
	log.Println("📦 Connecting to database...")
	db, err := database.NewDB(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	if _, err := database.AutoMigrate(db, cfg.Database.Driver); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	service := summary.NewCallSummaryService(
		repository.NewCallSummaryRepository(db),
		repository.NewCommLogRepository(db),
		repository.NewTransactor(db),
		pkgai.NewOpenAISummarizer(&cfg.OpenAI, logger),
		metrics.Nop{},
		logger,
		summary.Options{Transactional: cfg.Audit.Transactional},
	)

	for i, transcript := range sampleTranscripts {
		created, err := service.Create(ctx, summary.CreateInput{Transcript: transcript})
		if err != nil {
			log.Printf("❌ Failed to create summary %d: %v", i+1, err)
			continue
		}

		fmt.Printf("═══════════════════════════════════════════════════════════════\n")
		fmt.Printf("🟢 Call summary %d\n", created.ID)
		fmt.Printf("Transcript:   %s\n", created.Transcript)
		fmt.Printf("Summary:      %s\n", created.SummaryText())
	}

	log.Println("✅ Demo call summaries created")
	log.Println("💡 Browse them at GET /api/v1/summaries and their audit trail at GET /api/v1/commlog")
}
