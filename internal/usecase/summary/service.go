package summary

import (
	"context"

	"github.com/carein/call-summary/internal/domain/entities"
)

// DefaultListLimit is used when a caller does not ask for a page size
const DefaultListLimit = 100

// Service defines the interface for call summary use cases
type Service interface {
	// Create generates a summary for a transcript, stores it and logs a "created" entry
	Create(ctx context.Context, input CreateInput) (*entities.CallSummary, error)

	// Rerun regenerates the summary of an existing record and logs a "rerun" entry
	Rerun(ctx context.Context, id int64) (*entities.CallSummary, error)

	// Get retrieves a call summary by ID
	Get(ctx context.Context, id int64) (*entities.CallSummary, error)

	// List retrieves call summaries with offset pagination
	List(ctx context.Context, input ListInput) ([]*entities.CallSummary, error)
}

// CreateInput represents input for creating a call summary
type CreateInput struct {
	Transcript string
}

// ListInput represents pagination for listing call summaries
type ListInput struct {
	Skip  int
	Limit int
}

// Ensure CallSummaryService implements Service interface
var _ Service = (*CallSummaryService)(nil)
