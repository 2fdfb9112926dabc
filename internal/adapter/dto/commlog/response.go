package commlog

import "time"

// CommLogResponse represents one audit entry in API responses
type CommLogResponse struct {
	ID            int64     `json:"id" example:"1"`
	CallSummaryID int64     `json:"call_summary_id" example:"1"`
	Action        string    `json:"action" example:"created"`
	Message       *string   `json:"message" example:"Summary initially created and generated."`
	CreatedAt     time.Time `json:"created_at"`
}
