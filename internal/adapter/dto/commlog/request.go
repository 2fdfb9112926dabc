package commlog

// ListCommLogsRequest represents pagination for listing commlog entries
type ListCommLogsRequest struct {
	Skip  int `query:"skip" validate:"min=0"`
	Limit int `query:"limit" validate:"min=0,max=1000"`
}
