package errors

import (
	"errors"
	"fmt"
)

// Call summary errors
var (
	ErrSummaryNotFound   = errors.New("call summary not found")
	ErrInvalidPagination = errors.New("skip and limit must not be negative")
)

// Store errors
var (
	ErrQueryFailed       = errors.New("query failed")
	ErrTransactionFailed = errors.New("transaction failed")
)

// SummaryNotFoundError names the call summary that does not exist.
// It matches ErrSummaryNotFound.
type SummaryNotFoundError struct {
	SummaryID int64
}

func NewSummaryNotFoundError(summaryID int64) error {
	return &SummaryNotFoundError{SummaryID: summaryID}
}

func (e *SummaryNotFoundError) Error() string {
	return fmt.Sprintf("call summary %d not found", e.SummaryID)
}

func (e *SummaryNotFoundError) Is(target error) bool {
	return target == ErrSummaryNotFound
}

// QueryError reports a failed repository read or write. It matches ErrQueryFailed.
type QueryError struct {
	Query string
	Err   error
}

func NewQueryError(query string, err error) error {
	return &QueryError{Query: query, Err: err}
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s: %v", e.Query, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

func (e *QueryError) Is(target error) bool {
	return target == ErrQueryFailed
}

// TransactionError marks err as the failure of a whole transaction
func TransactionError(err error) error {
	return fmt.Errorf("%w: %w", ErrTransactionFailed, err)
}
