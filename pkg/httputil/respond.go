package httputil

import (
	"context"
	"encoding/json"
	"net/http"

	padringerrors "github.com/chenzc24/padring/pkg/errors"
)

// ctxKey is the private type for context keys owned by this package.
type ctxKey int

const requestIDKey ctxKey = iota

// WithRequestID stores a request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFrom returns the request ID stored in the context, if any.
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// ErrorResponse is the standard error response body.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// WriteError writes a structured error response. The status code derives
// from the error's code; internal errors are masked in the body.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	code := padringerrors.GetCode(err)
	status := StatusForCode(code)

	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal error"
	}

	WriteJSON(w, status, ErrorResponse{
		Error:     msg,
		Code:      string(code),
		RequestID: RequestIDFrom(r.Context()),
	})
}

// StatusForCode maps a structured error code to an HTTP status.
//
// Codes that mean "the request could not be understood" map to 400. Codes
// that mean "the spec decoded but the ring is not buildable" map to 422 so
// clients can tell input syntax from structural problems apart.
func StatusForCode(code padringerrors.Code) int {
	switch code {
	case padringerrors.ErrCodeInvalidSpec,
		padringerrors.ErrCodeInvalidConfig,
		padringerrors.ErrCodeInvalidPosition,
		padringerrors.ErrCodeInvalidName,
		padringerrors.ErrCodeInvalidFormat,
		padringerrors.ErrCodeInvalidPath,
		padringerrors.ErrCodeUnknownSide,
		padringerrors.ErrCodeUnknownProcess,
		padringerrors.ErrCodeUnknownDevice,
		padringerrors.ErrCodeUnsupported:
		return http.StatusBadRequest
	case padringerrors.ErrCodePositionConflict,
		padringerrors.ErrCodeCornerCount,
		padringerrors.ErrCodeSideCountMismatch,
		padringerrors.ErrCodeSideOverflow,
		padringerrors.ErrCodeInvalidReference,
		padringerrors.ErrCodeMissingOrientation:
		return http.StatusUnprocessableEntity
	case padringerrors.ErrCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
