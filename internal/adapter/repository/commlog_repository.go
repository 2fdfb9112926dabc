package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/carein/call-summary/internal/domain/entities"
	"github.com/carein/call-summary/internal/domain/repositories"
)

// commLogRepository implements the CommLogRepository interface
type commLogRepository struct {
	db *gorm.DB
}

// NewCommLogRepository creates a new commlog repository
func NewCommLogRepository(db *gorm.DB) repositories.CommLogRepository {
	return &commLogRepository{db: db}
}

// Create appends a commlog entry
func (r *commLogRepository) Create(ctx context.Context, entry *entities.CommLog) error {
	if entry == nil {
		return errors.New("commlog entry cannot be nil")
	}
	return conn(ctx, r.db).Create(entry).Error
}

// List retrieves commlog entries newest first; ties fall back to insertion order
func (r *commLogRepository) List(ctx context.Context, filters repositories.CommLogFilters) ([]*entities.CommLog, error) {
	entries := make([]*entities.CommLog, 0)
	if filters.Limit == 0 {
		return entries, nil
	}

	query := conn(ctx, r.db).Model(&entities.CommLog{})

	if filters.CallSummaryID != nil {
		query = query.Where("call_summary_id = ?", *filters.CallSummaryID)
	}

	query = query.Order("created_at DESC").Order("id DESC")

	// Apply pagination
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	err := query.Find(&entries).Error
	return entries, err
}

// CountBySummary counts the entries recorded for one call summary
func (r *commLogRepository) CountBySummary(ctx context.Context, callSummaryID int64) (int64, error) {
	var total int64
	err := conn(ctx, r.db).
		Model(&entities.CommLog{}).
		Where("call_summary_id = ?", callSummaryID).
		Count(&total).Error
	return total, err
}
