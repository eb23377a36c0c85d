// Package response renders JSON bodies for the API.
package response

import (
	"net/http"

	deliverycontext "tableplay/internal/delivery/context"
	domainerrors "tableplay/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// OK writes the payload as the whole body. Success responses carry no envelope.
func OK(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, data)
}

// Error writes the error envelope.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= 500 || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, domainerrors.ErrorResponse{
		Error: &domainerrors.ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: &domainerrors.MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// AppError renders an AppError, keeping details only when there are some.
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	var details any
	if d := appErr.Details(); d != "" {
		details = d
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
}
