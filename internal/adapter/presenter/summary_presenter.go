package presenter

import (
	"github.com/carein/call-summary/internal/adapter/dto/summary"
	"github.com/carein/call-summary/internal/domain/entities"
)

// ToSummaryResponse converts a CallSummary entity to SummaryResponse DTO
func ToSummaryResponse(s *entities.CallSummary) *summary.SummaryResponse {
	if s == nil {
		return nil
	}

	return &summary.SummaryResponse{
		ID:         s.ID,
		Transcript: s.Transcript,
		Summary:    s.Summary,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

// ToSummaryListResponse converts CallSummary entities to a list that always encodes as an array
func ToSummaryListResponse(summaries []*entities.CallSummary) []*summary.SummaryResponse {
	responses := make([]*summary.SummaryResponse, len(summaries))
	for i, s := range summaries {
		responses[i] = ToSummaryResponse(s)
	}
	return responses
}
