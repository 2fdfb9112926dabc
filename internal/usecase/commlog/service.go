package commlog

import (
	"context"

	"github.com/carein/call-summary/internal/domain/entities"
)

// DefaultListLimit is used when a caller does not ask for a page size
const DefaultListLimit = 100

// Service defines the interface for commlog use cases
type Service interface {
	// List retrieves commlog entries newest first, optionally for one call summary
	List(ctx context.Context, input ListInput) ([]*entities.CommLog, error)
}

// ListInput represents filter and pagination options for listing commlog entries
type ListInput struct {
	CallSummaryID *int64
	Skip          int
	Limit         int
}

var _ Service = (*CommLogService)(nil)
