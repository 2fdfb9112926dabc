package summary

import "time"

// SummaryResponse represents a call summary in API responses
type SummaryResponse struct {
	ID         int64     `json:"id" example:"1"`
	Transcript string    `json:"transcript"`
	Summary    *string   `json:"summary"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
