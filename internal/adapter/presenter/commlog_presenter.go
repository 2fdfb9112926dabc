package presenter

import (
	"github.com/carein/call-summary/internal/adapter/dto/commlog"
	"github.com/carein/call-summary/internal/domain/entities"
)

// ToCommLogResponse converts a CommLog entity to CommLogResponse DTO
func ToCommLogResponse(e *entities.CommLog) *commlog.CommLogResponse {
	if e == nil {
		return nil
	}

	return &commlog.CommLogResponse{
		ID:            e.ID,
		CallSummaryID: e.CallSummaryID,
		Action:        string(e.Action),
		Message:       e.Message,
		CreatedAt:     e.CreatedAt,
	}
}

// ToCommLogListResponse converts CommLog entities to a list that always encodes as an array
func ToCommLogListResponse(entries []*entities.CommLog) []*commlog.CommLogResponse {
	responses := make([]*commlog.CommLogResponse, len(entries))
	for i, e := range entries {
		responses[i] = ToCommLogResponse(e)
	}
	return responses
}
