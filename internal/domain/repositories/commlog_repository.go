package repositories

import (
	"context"

	"github.com/carein/call-summary/internal/domain/entities"
)

// CommLogRepository defines the interface for commlog data access
type CommLogRepository interface {
	// Create appends a commlog entry
	Create(ctx context.Context, entry *entities.CommLog) error

	// List retrieves entries newest first
	List(ctx context.Context, filters CommLogFilters) ([]*entities.CommLog, error)

	// CountBySummary counts the entries recorded for one call summary
	CountBySummary(ctx context.Context, callSummaryID int64) (int64, error)
}

// CommLogFilters represents filter options for listing commlog entries
type CommLogFilters struct {
	CallSummaryID *int64
	Offset        int
	Limit         int
}
