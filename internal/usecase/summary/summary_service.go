package summary

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/carein/call-summary/internal/domain/entities"
	"github.com/carein/call-summary/internal/domain/repositories"
	"github.com/carein/call-summary/internal/infrastructure/metrics"
	usecaseErrors "github.com/carein/call-summary/internal/usecase/errors"
	"github.com/carein/call-summary/pkg/ai"
)

// Options tunes how the service commits its writes
type Options struct {
	// Transactional writes a new summary and its "created" entry in one transaction.
	// When false the summary is committed first and the entry second, so a failed
	// entry write leaves the summary without its audit record.
	Transactional bool
}

// CallSummaryService handles call summary business logic
type CallSummaryService struct {
	summaryRepo repositories.CallSummaryRepository
	commLogRepo repositories.CommLogRepository
	transactor  repositories.Transactor
	summarizer  ai.Summarizer
	metrics     metrics.Recorder
	logger      *zap.Logger
	opts        Options
}

// NewCallSummaryService creates a new call summary service
func NewCallSummaryService(
	summaryRepo repositories.CallSummaryRepository,
	commLogRepo repositories.CommLogRepository,
	transactor repositories.Transactor,
	summarizer ai.Summarizer,
	recorder metrics.Recorder,
	logger *zap.Logger,
	opts Options,
) *CallSummaryService {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CallSummaryService{
		summaryRepo: summaryRepo,
		commLogRepo: commLogRepo,
		transactor:  transactor,
		summarizer:  summarizer,
		metrics:     recorder,
		logger:      logger,
		opts:        opts,
	}
}

// Create generates a summary for the transcript and stores it with a "created" entry
func (s *CallSummaryService) Create(ctx context.Context, input CreateInput) (*entities.CallSummary, error) {
	summary := &entities.CallSummary{Transcript: input.Transcript}
	result := s.generate(ctx, entities.CommLogActionCreated, input.Transcript)
	summary.Summary = &result.Text

	if s.opts.Transactional {
		err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
			if err := s.summaryRepo.Create(ctx, summary); err != nil {
				return fmt.Errorf("failed to create call summary: %w", err)
			}
			if err := s.commLogRepo.Create(ctx, entities.NewCreatedCommLog(summary.ID)); err != nil {
				return fmt.Errorf("failed to write commlog entry: %w", err)
			}
			return nil
		})
		if err != nil {
			return nil, usecaseErrors.TransactionError(err)
		}
		s.metrics.IncCommLogWrite(string(entities.CommLogActionCreated))
		return summary, nil
	}

	if err := s.summaryRepo.Create(ctx, summary); err != nil {
		return nil, fmt.Errorf("failed to create call summary: %w",
			usecaseErrors.NewQueryError("create_call_summary", err))
	}
	if err := s.commLogRepo.Create(ctx, entities.NewCreatedCommLog(summary.ID)); err != nil {
		s.logger.Error("call summary stored without its commlog entry",
			zap.Int64("summary_id", summary.ID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to write commlog entry: %w",
			usecaseErrors.NewQueryError("create_commlog", err))
	}
	s.metrics.IncCommLogWrite(string(entities.CommLogActionCreated))

	return summary, nil
}

// Rerun regenerates the summary of an existing record.
// The language model call happens outside the transaction.
func (s *CallSummaryService) Rerun(ctx context.Context, id int64) (*entities.CallSummary, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	result := s.generate(ctx, entities.CommLogActionRerun, existing.Transcript)

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.summaryRepo.UpdateSummary(ctx, id, result.Text); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usecaseErrors.NewSummaryNotFoundError(id)
			}
			return fmt.Errorf("failed to update call summary: %w", err)
		}
		if err := s.commLogRepo.Create(ctx, entities.NewRerunCommLog(id)); err != nil {
			return fmt.Errorf("failed to write commlog entry: %w", err)
		}
		return nil
	})
	if errors.Is(err, usecaseErrors.ErrSummaryNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, usecaseErrors.TransactionError(err)
	}
	s.metrics.IncCommLogWrite(string(entities.CommLogActionRerun))

	return s.Get(ctx, id)
}

// Get retrieves a call summary by ID
func (s *CallSummaryService) Get(ctx context.Context, id int64) (*entities.CallSummary, error) {
	summary, err := s.summaryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.NewSummaryNotFoundError(id)
		}
		return nil, fmt.Errorf("failed to get call summary: %w",
			usecaseErrors.NewQueryError("get_call_summary", err))
	}
	return summary, nil
}

// List retrieves call summaries with offset pagination
func (s *CallSummaryService) List(ctx context.Context, input ListInput) ([]*entities.CallSummary, error) {
	if input.Skip < 0 || input.Limit < 0 {
		return nil, usecaseErrors.ErrInvalidPagination
	}

	summaries, err := s.summaryRepo.List(ctx, input.Skip, input.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list call summaries: %w",
			usecaseErrors.NewQueryError("list_call_summaries", err))
	}
	return summaries, nil
}

func (s *CallSummaryService) generate(ctx context.Context, action entities.CommLogAction, transcript string) ai.Result {
	start := time.Now()
	result := s.summarizer.Generate(ctx, transcript)
	s.metrics.ObserveGeneration(string(action), result.Fallback, time.Since(start))

	if result.Fallback {
		s.logger.Info("fallback summary used",
			zap.String("action", string(action)),
			zap.NamedError("cause", result.Err),
		)
	}
	return result
}
