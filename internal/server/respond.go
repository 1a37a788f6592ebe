package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/permute/pkg/enumstore"
	perrors "github.com/matzehuels/permute/pkg/errors"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps an error to an HTTP status and a structured body. Client
// errors carry their message through; everything mapped to a 5xx is logged
// with the request ID and answered generically.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := statusFor(err)

	message := perrors.UserMessage(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			"error", err,
			"request_id", middleware.GetReqID(r.Context()))
		message = "internal server error"
	}

	writeJSON(w, status, errorBody{Error: errorDetail{
		Code:    string(code),
		Message: message,
	}})
}

func statusFor(err error) (int, perrors.Code) {
	switch {
	case errors.Is(err, enumstore.ErrNotFound):
		return http.StatusNotFound, perrors.ErrCodeEnumerationNotFound
	case errors.Is(err, enumstore.ErrExpired):
		return http.StatusGone, perrors.ErrCodeEnumerationExpired
	}

	code := perrors.GetCode(err)
	switch code {
	case perrors.ErrCodeInvalidInput,
		perrors.ErrCodeInvalidOrder,
		perrors.ErrCodeInvalidFormat,
		perrors.ErrCodeInvalidElements,
		perrors.ErrCodeSequenceTooLong:
		return http.StatusBadRequest, code
	case perrors.ErrCodeNotFound, perrors.ErrCodeEnumerationNotFound:
		return http.StatusNotFound, code
	case perrors.ErrCodeEnumerationExpired:
		return http.StatusGone, code
	case perrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout, code
	case perrors.ErrCodeStorage:
		return http.StatusBadGateway, code
	case perrors.ErrCodeUnsupported:
		return http.StatusNotImplemented, code
	default:
		return http.StatusInternalServerError, perrors.ErrCodeInternal
	}
}
