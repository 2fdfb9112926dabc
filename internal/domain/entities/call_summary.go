package entities

import "time"

// CallSummary is a stored call transcript together with its generated summary
type CallSummary struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Transcript string    `gorm:"type:text;not null" json:"transcript"`
	Summary    *string   `gorm:"type:text" json:"summary"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for CallSummary
func (CallSummary) TableName() string {
	return "call_summaries"
}

// NewCallSummary creates a call summary for a transcript with the given summary text
func NewCallSummary(transcript, summary string) *CallSummary {
	return &CallSummary{
		Transcript: transcript,
		Summary:    &summary,
	}
}

// SummaryText returns the summary or an empty string when none was generated yet
func (s *CallSummary) SummaryText() string {
	if s.Summary == nil {
		return ""
	}
	return *s.Summary
}
