package summary

// CreateSummaryRequest represents the request to summarize a call transcript
type CreateSummaryRequest struct {
	Transcript string `json:"transcript" validate:"required" example:"Patient called about tooth pain, scheduled appointment for Friday."`
}

// ListSummariesRequest represents pagination for listing call summaries
type ListSummariesRequest struct {
	Skip  int `query:"skip" validate:"min=0"`
	Limit int `query:"limit" validate:"min=0,max=1000"`
}
