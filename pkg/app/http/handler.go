// Package http provides the JSON error envelope and server lifecycle shared by
// the transfer HTTP endpoints.
package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	apperrors "github.com/chainsafe/evm-transfers/pkg/app/errors"
)

const unexpectedErrorMessage = "Unexpected Service Error"

// HandlerFunc is an http handler that reports failures by returning them
type HandlerFunc func(http.ResponseWriter, *http.Request) error

// ErrorResponse is the body written for every failed request
type ErrorResponse struct {
	ErrMsg     string `json:"error"`
	ErrMsgCode int    `json:"code"`
	Category   string `json:"category,omitempty"`
}

// HandleError adapts an error-returning handler to http.HandlerFunc.
// Internal failures are logged on the given logger; nil disables logging.
//
//	r.Get("/balances", http.HandleError(h.balances, logger))
func HandleError(h HandlerFunc, logger *zap.Logger) http.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		err := h(w, r)
		if err == nil {
			return
		}
		if apperrors.IsInternalError(err) {
			logger.Error("Request failed",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Error(err),
			)
		}
		DefaultErrorHandler(w, err)
	}
}

// DefaultErrorHandler writes err as an ErrorResponse. Only ServiceError
// messages reach the client; anything else becomes a 500.
func DefaultErrorHandler(w http.ResponseWriter, err error) {
	var svcErr *apperrors.ServiceError
	if errors.As(err, &svcErr) {
		_ = WriteJSON(w, svcErr.StatusCode(), &ErrorResponse{
			ErrMsg:     svcErr.Message,
			ErrMsgCode: svcErr.StatusCode(),
			Category:   svcErr.Category.String(),
		})
		return
	}

	_ = WriteJSON(w, http.StatusInternalServerError, &ErrorResponse{
		ErrMsg:     unexpectedErrorMessage,
		ErrMsgCode: http.StatusInternalServerError,
	})
}

// WriteJSON writes data with the given status as application/json
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}
