package repositories

import (
	"context"

	"github.com/carein/call-summary/internal/domain/entities"
)

// CallSummaryRepository defines the interface for call summary data access
type CallSummaryRepository interface {
	// Create inserts a new call summary and fills in its ID and timestamps
	Create(ctx context.Context, summary *entities.CallSummary) error

	// FindByID retrieves a call summary by its ID
	FindByID(ctx context.Context, id int64) (*entities.CallSummary, error)

	// List retrieves call summaries ordered by ID
	List(ctx context.Context, offset, limit int) ([]*entities.CallSummary, error)

	// UpdateSummary overwrites the generated summary text and refreshes updated_at
	UpdateSummary(ctx context.Context, id int64, summary string) error
}
