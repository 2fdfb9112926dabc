package entities

import "time"

// CommLogAction tags what happened to a call summary.
// The set is open: unknown values read back from the store are kept as-is.
type CommLogAction string

const (
	CommLogActionCreated CommLogAction = "created"
	CommLogActionRerun   CommLogAction = "rerun"
)

// Messages written alongside each action
const (
	CommLogMessageCreated = "Summary initially created and generated."
	CommLogMessageRerun   = "Summary re-generated for transcript."
)

// CommLog is an immutable audit record of one action taken on a call summary
type CommLog struct {
	ID            int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	CallSummaryID int64         `gorm:"not null;index" json:"call_summary_id"`
	Action        CommLogAction `gorm:"type:varchar(50);not null" json:"action"`
	Message       *string       `gorm:"type:text" json:"message"`
	CreatedAt     time.Time     `gorm:"autoCreateTime;index" json:"created_at"`
}

// TableName specifies the table name for CommLog
func (CommLog) TableName() string {
	return "commlog"
}

// NewCommLog creates a commlog entry for a summary
func NewCommLog(callSummaryID int64, action CommLogAction, message string) *CommLog {
	return &CommLog{
		CallSummaryID: callSummaryID,
		Action:        action,
		Message:       &message,
	}
}

// NewCreatedCommLog records the initial generation of a summary
func NewCreatedCommLog(callSummaryID int64) *CommLog {
	return NewCommLog(callSummaryID, CommLogActionCreated, CommLogMessageCreated)
}

// NewRerunCommLog records a regeneration of an existing summary
func NewRerunCommLog(callSummaryID int64) *CommLog {
	return NewCommLog(callSummaryID, CommLogActionRerun, CommLogMessageRerun)
}
