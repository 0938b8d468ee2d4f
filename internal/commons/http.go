package commons

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	apperrors "driwich/internal/errors"
)

type ErrorResponse struct {
	TraceID   string    `json:"traceId"`
	Status    int       `json:"status"`
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationErrorResponse struct {
	TraceID string                       `json:"traceId"`
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func WriteJSON(w http.ResponseWriter, status int, data interface{}, logger *zap.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

func WriteValidationError(w http.ResponseWriter, traceID string, message string, logger *zap.Logger, details ...apperrors.ValidationDetail) {
	if details == nil {
		details = []apperrors.ValidationDetail{}
	}
	WriteJSON(w, http.StatusBadRequest, ValidationErrorResponse{
		TraceID: traceID,
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	}, logger)
}

func WriteError(w http.ResponseWriter, traceID string, status int, code string, message string, logger *zap.Logger) {
	WriteJSON(w, status, ErrorResponse{
		TraceID:   traceID,
		Status:    status,
		Code:      code,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}, logger)
}

// HandleError maps application errors onto HTTP responses.
func HandleError(w http.ResponseWriter, traceID string, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		WriteValidationError(w, traceID, ve.Message, logger, ve.Details...)
		return
	}

	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		WriteError(w, traceID, http.StatusNotFound, "NOT_FOUND", nfe.Message, logger)
		return
	}

	if ie, ok := apperrors.IsInternalError(err); ok {
		logger.Error("store error", zap.Error(err))
		WriteError(w, traceID, http.StatusBadGateway, "STORE_ERROR", ie.Message, logger)
		return
	}

	if pe, ok := apperrors.IsPrintError(err); ok {
		logger.Warn("print error", zap.Error(err))
		WriteError(w, traceID, http.StatusBadGateway, "PRINT_ERROR", pe.Message, logger)
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	WriteError(w, traceID, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred", logger)
}
