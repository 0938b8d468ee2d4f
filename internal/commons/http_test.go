package commons

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "driwich/internal/errors"
)

func TestHandleError_StatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
		code string
	}{
		{"not found", fmt.Errorf("wrap: %w", apperrors.NewNotFoundError("order with id 4 not found")), http.StatusNotFound, "NOT_FOUND"},
		{"store", apperrors.NewInternalError("failed to add product", errors.New("conn refused")), http.StatusBadGateway, "STORE_ERROR"},
		{"print", apperrors.NewPrintError("print request failed", nil), http.StatusBadGateway, "PRINT_ERROR"},
		{"other", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, "trace-1", tt.err, zap.NewNop())

			assert.Equal(t, tt.want, rec.Code)
			var resp ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, tt.code, resp.Code)
			assert.Equal(t, "trace-1", resp.TraceID)
		})
	}
}

func TestHandleError_Validation(t *testing.T) {
	rec := httptest.NewRecorder()
	err := apperrors.NewValidationError("validation failed", apperrors.ValidationDetail{Field: "name", Message: "name is required"})

	HandleError(rec, "trace-2", err, zap.NewNop())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp ValidationErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "VALIDATION_ERROR", resp.Error)
	require.Len(t, resp.Details, 1)
	assert.Equal(t, "name", resp.Details[0].Field)
}
