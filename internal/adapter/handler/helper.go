package handler

import (
	stdErrors "errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/carein/call-summary/errors"
	"github.com/carein/call-summary/internal/adapter/dto/common"
	usecaseErrors "github.com/carein/call-summary/internal/usecase/errors"
)

// getRequestID reads the request ID assigned by the RequestID middleware,
// falling back to the one sent by the client
func getRequestID(c echo.Context) string {
	if c == nil {
		return ""
	}
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	if c.Request() == nil {
		return ""
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}

// parseIDParam reads a positive integer path parameter
func parseIDParam(c echo.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.ErrInvalidArgument("Invalid " + name).WithDetail(name, raw)
	}
	return id, nil
}

// bindAndValidate binds the request into req and validates it.
// Bind failures become 400 INVALID_PAYLOAD, field failures 422 VALIDATION_FAILED.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return errors.ErrInvalidPayload(err)
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	return nil
}

// toAppError translates usecase errors into AppErrors
func toAppError(err error) errors.AppError {
	var (
		appErr   errors.AppError
		notFound *usecaseErrors.SummaryNotFoundError
		queryErr *usecaseErrors.QueryError
	)
	switch {
	case stdErrors.As(err, &appErr):
		return appErr
	case stdErrors.As(err, &notFound):
		return errors.ErrSummaryNotFound(notFound.SummaryID)
	case stdErrors.Is(err, usecaseErrors.ErrInvalidPagination):
		return errors.ErrValidationFailed().WithDetail("pagination", err.Error())
	case stdErrors.Is(err, usecaseErrors.ErrTransactionFailed):
		return errors.ErrDBTransactionFailed(err)
	case stdErrors.As(err, &queryErr):
		return errors.ErrDBQueryFailed(queryErr.Query, err)
	default:
		return errors.ErrInternal(err)
	}
}

// HandleSuccess writes data as the response body using provided logger
func HandleSuccess(logger *zap.Logger, c echo.Context, status int, data interface{}) error {
	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.Int("status", status),
		)
	}

	return c.JSON(status, data)
}

// HandleError centralizes error handling and logging using provided logger
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	reqID := getRequestID(c)

	appErr := toAppError(err)

	if logger != nil {
		log := logger.Warn
		if appErr.HTTPCode >= http.StatusInternalServerError {
			log = logger.Error
		}
		log("http.response.error",
			zap.String("request_id", reqID),
			zap.String("path", c.Path()),
			zap.Any("app_code", appErr.Code),
			zap.Error(err),
		)
	}

	info := ""
	if appErr.Raw != nil {
		info = appErr.Raw.Error()
	}

	body := common.ErrorResponse{
		Code:    appErr.Code,
		Message: appErr.Message,
		Info:    info,
		Details: appErr.Details,
	}

	return c.JSON(appErr.HTTPCode, body)
}
