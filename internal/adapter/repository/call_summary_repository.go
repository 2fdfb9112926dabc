package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/carein/call-summary/internal/domain/entities"
	"github.com/carein/call-summary/internal/domain/repositories"
)

// callSummaryRepository implements the CallSummaryRepository interface
type callSummaryRepository struct {
	db *gorm.DB
}

// NewCallSummaryRepository creates a new call summary repository
func NewCallSummaryRepository(db *gorm.DB) repositories.CallSummaryRepository {
	return &callSummaryRepository{db: db}
}

// Create creates a new call summary
func (r *callSummaryRepository) Create(ctx context.Context, summary *entities.CallSummary) error {
	if summary == nil {
		return errors.New("call summary cannot be nil")
	}
	return conn(ctx, r.db).Create(summary).Error
}

// FindByID retrieves a call summary by its ID
func (r *callSummaryRepository) FindByID(ctx context.Context, id int64) (*entities.CallSummary, error) {
	var summary entities.CallSummary
	err := conn(ctx, r.db).
		Where("id = ?", id).
		First(&summary).Error

	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// List retrieves call summaries with pagination
func (r *callSummaryRepository) List(ctx context.Context, offset, limit int) ([]*entities.CallSummary, error) {
	summaries := make([]*entities.CallSummary, 0)
	if limit == 0 {
		return summaries, nil
	}

	query := conn(ctx, r.db).Order("id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	err := query.Find(&summaries).Error
	return summaries, err
}

// UpdateSummary overwrites the summary text; updated_at is refreshed by GORM
func (r *callSummaryRepository) UpdateSummary(ctx context.Context, id int64, summary string) error {
	result := conn(ctx, r.db).
		Model(&entities.CallSummary{ID: id}).
		Update("summary", summary)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
