package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	commlogDto "github.com/carein/call-summary/internal/adapter/dto/commlog"
	"github.com/carein/call-summary/internal/adapter/presenter"
	commlogUsecase "github.com/carein/call-summary/internal/usecase/commlog"
)

// CommLog handles audit trail HTTP requests
type CommLog struct {
	commLogService commlogUsecase.Service
	logger         *zap.Logger
}

// NewCommLogHandler creates a new commlog handler
func NewCommLogHandler(commLogService commlogUsecase.Service, logger *zap.Logger) *CommLog {
	return &CommLog{
		commLogService: commLogService,
		logger:         logger,
	}
}

// ListCommLogs handles GET /commlog
// @Summary      List commlog entries
// @Description  Lists audit entries for all call summaries, newest first
// @Tags         CommLog
// @Produce      json
// @Param        skip   query     int  false  "Records to skip"            default(0)   minimum(0)
// @Param        limit  query     int  false  "Maximum records to return"  default(100) minimum(0) maximum(1000)
// @Success      200    {array}   commlog.CommLogResponse
// @Failure      422    {object}  common.ErrorResponse  "Invalid pagination"
// @Router       /api/v1/commlog [get]
func (h *CommLog) ListCommLogs(c echo.Context) error {
	return h.list(c, nil)
}

// ListCommLogsBySummary handles GET /commlog/:summary_id
// @Summary      List commlog entries of one call summary
// @Description  Unknown call summaries yield an empty list
// @Tags         CommLog
// @Produce      json
// @Param        summary_id  path      int  true   "Call summary ID"
// @Param        skip        query     int  false  "Records to skip"            default(0)   minimum(0)
// @Param        limit       query     int  false  "Maximum records to return"  default(100) minimum(0) maximum(1000)
// @Success      200         {array}   commlog.CommLogResponse
// @Failure      400         {object}  common.ErrorResponse  "Invalid ID"
// @Failure      422         {object}  common.ErrorResponse  "Invalid pagination"
// @Router       /api/v1/commlog/{summary_id} [get]
func (h *CommLog) ListCommLogsBySummary(c echo.Context) error {
	id, err := parseIDParam(c, "summary_id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return h.list(c, &id)
}

func (h *CommLog) list(c echo.Context, callSummaryID *int64) error {
	req := commlogDto.ListCommLogsRequest{Skip: 0, Limit: commlogUsecase.DefaultListLimit}
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	entries, err := h.commLogService.List(c.Request().Context(), commlogUsecase.ListInput{
		CallSummaryID: callSummaryID,
		Skip:          req.Skip,
		Limit:         req.Limit,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToCommLogListResponse(entries))
}
