package api

import (
	"errors"
	"net/http"

	"dataproc/internal/engine"

	"github.com/labstack/echo/v4"
)

// APIError is the JSON body returned for every failed request.
type APIError struct {
	StatusCode int    `json:"status_code"`
	ErrorCode  string `json:"error_code"`
	Message    string `json:"message"`
	Details    any    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	return e.Message
}

// RowDetails identifies the offending row of a RowParseError.
type RowDetails struct {
	Row    int    `json:"row"`
	Column string `json:"column,omitempty"`
}

func newAPIError(status int, code, message string, details any) *APIError {
	return &APIError{StatusCode: status, ErrorCode: code, Message: message, Details: details}
}

var errNotReady = newAPIError(http.StatusServiceUnavailable, "NOT_READY", "data is still loading", nil)

// fromAnalyzeError maps an analyzer failure onto an APIError.
func fromAnalyzeError(err error) *APIError {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return newAPIError(httpErr.Code, "REQUEST_REJECTED", http.StatusText(httpErr.Code), nil)
	}

	var rowErr *engine.RowParseError
	switch {
	case errors.As(err, &rowErr):
		return newAPIError(http.StatusUnprocessableEntity, "ROW_PARSE_ERROR", err.Error(),
			RowDetails{Row: rowErr.Row, Column: rowErr.Column})
	case errors.Is(err, engine.ErrSchema):
		return newAPIError(http.StatusUnprocessableEntity, "SCHEMA_ERROR", err.Error(), nil)
	case errors.Is(err, engine.ErrSourceUnavailable):
		return newAPIError(http.StatusBadRequest, "SOURCE_UNAVAILABLE", err.Error(), nil)
	}
	return newAPIError(http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", err.Error(), nil)
}

// LoadDetails names the analyzer error class behind a failed startup load.
type LoadDetails struct {
	Cause string `json:"cause"`
}

// fromLoadError maps a failed startup load onto a 503 APIError.
func fromLoadError(err error) *APIError {
	cause := fromAnalyzeError(err).ErrorCode
	return newAPIError(http.StatusServiceUnavailable, "MANIFEST_LOAD_FAILED", err.Error(), LoadDetails{Cause: cause})
}
