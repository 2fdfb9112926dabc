package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	summaryDto "github.com/carein/call-summary/internal/adapter/dto/summary"
	"github.com/carein/call-summary/internal/adapter/presenter"
	summaryUsecase "github.com/carein/call-summary/internal/usecase/summary"
)

// Summary handles call summary HTTP requests
type Summary struct {
	summaryService summaryUsecase.Service
	logger         *zap.Logger
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(summaryService summaryUsecase.Service, logger *zap.Logger) *Summary {
	return &Summary{
		summaryService: summaryService,
		logger:         logger,
	}
}

// CreateSummary handles POST /summaries
// @Summary      Summarize a call transcript
// @Description  Generates a summary for the transcript, stores it and records a "created" commlog entry
// @Tags         Summaries
// @Accept       json
// @Produce      json
// @Param        request  body      summary.CreateSummaryRequest  true  "Transcript to summarize"
// @Success      200      {object}  summary.SummaryResponse       "Stored call summary"
// @Failure      400      {object}  common.ErrorResponse          "Malformed body"
// @Failure      422      {object}  common.ErrorResponse          "Transcript missing or empty"
// @Failure      500      {object}  common.ErrorResponse          "Storage failure"
// @Router       /api/v1/summaries [post]
func (h *Summary) CreateSummary(c echo.Context) error {
	var req summaryDto.CreateSummaryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	created, err := h.summaryService.Create(c.Request().Context(), summaryUsecase.CreateInput{
		Transcript: req.Transcript,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToSummaryResponse(created))
}

// ListSummaries handles GET /summaries
// @Summary      List call summaries
// @Description  Lists call summaries in insertion order with offset pagination
// @Tags         Summaries
// @Produce      json
// @Param        skip   query     int  false  "Records to skip"            default(0)   minimum(0)
// @Param        limit  query     int  false  "Maximum records to return"  default(100) minimum(0) maximum(1000)
// @Success      200    {array}   summary.SummaryResponse
// @Failure      422    {object}  common.ErrorResponse  "Invalid pagination"
// @Failure      500    {object}  common.ErrorResponse
// @Router       /api/v1/summaries [get]
func (h *Summary) ListSummaries(c echo.Context) error {
	req := summaryDto.ListSummariesRequest{Skip: 0, Limit: summaryUsecase.DefaultListLimit}
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	summaries, err := h.summaryService.List(c.Request().Context(), summaryUsecase.ListInput{
		Skip:  req.Skip,
		Limit: req.Limit,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToSummaryListResponse(summaries))
}

// GetSummary handles GET /summaries/:id
// @Summary      Get a call summary
// @Tags         Summaries
// @Produce      json
// @Param        id   path      int  true  "Call summary ID"
// @Success      200  {object}  summary.SummaryResponse
// @Failure      400  {object}  common.ErrorResponse  "Invalid ID"
// @Failure      404  {object}  common.ErrorResponse  "Call summary not found"
// @Router       /api/v1/summaries/{id} [get]
func (h *Summary) GetSummary(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	found, err := h.summaryService.Get(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToSummaryResponse(found))
}

// RerunSummary handles POST /summaries/:id/rerun
// @Summary      Regenerate a call summary
// @Description  Regenerates the summary from the stored transcript and records a "rerun" commlog entry
// @Tags         Summaries
// @Produce      json
// @Param        id   path      int  true  "Call summary ID"
// @Success      200  {object}  summary.SummaryResponse
// @Failure      400  {object}  common.ErrorResponse  "Invalid ID"
// @Failure      404  {object}  common.ErrorResponse  "Call summary not found"
// @Failure      500  {object}  common.ErrorResponse
// @Router       /api/v1/summaries/{id}/rerun [post]
func (h *Summary) RerunSummary(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	updated, err := h.summaryService.Rerun(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToSummaryResponse(updated))
}
