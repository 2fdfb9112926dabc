package commlog

import (
	"context"
	"fmt"

	"github.com/carein/call-summary/internal/domain/entities"
	"github.com/carein/call-summary/internal/domain/repositories"
	usecaseErrors "github.com/carein/call-summary/internal/usecase/errors"
)

// CommLogService serves the read side of the audit trail
type CommLogService struct {
	commLogRepo repositories.CommLogRepository
}

// NewCommLogService creates a new commlog service
func NewCommLogService(commLogRepo repositories.CommLogRepository) *CommLogService {
	return &CommLogService{commLogRepo: commLogRepo}
}

// List retrieves entries ordered by created_at then id, both descending.
// An unknown call summary yields an empty list.
func (s *CommLogService) List(ctx context.Context, input ListInput) ([]*entities.CommLog, error) {
	if input.Skip < 0 || input.Limit < 0 {
		return nil, usecaseErrors.ErrInvalidPagination
	}

	entries, err := s.commLogRepo.List(ctx, repositories.CommLogFilters{
		CallSummaryID: input.CallSummaryID,
		Offset:        input.Skip,
		Limit:         input.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list commlog entries: %w",
			usecaseErrors.NewQueryError("list_commlog", err))
	}
	return entries, nil
}
