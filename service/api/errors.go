package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"github.com/QuangTung97/mailing-scheduler/pkg/apperrors"
	"github.com/QuangTung97/mailing-scheduler/pkg/otellib"
	"go.uber.org/zap"
	"net/http"
)

// badRequestError is a malformed request, detected before calling the services
type badRequestError struct {
	reason string
}

func newBadRequest(format string, args ...interface{}) *badRequestError {
	return &badRequestError{reason: fmt.Sprintf(format, args...)}
}

func (e *badRequestError) Error() string {
	return e.reason
}

func errorStatus(err error) (int, string) {
	var badReq *badRequestError
	if errors.As(err, &badReq) {
		return http.StatusBadRequest, "bad_request"
	}

	kind := apperrors.Kind(err)
	switch kind {
	case "schedule_configuration", "invalid_target":
		return http.StatusUnprocessableEntity, kind
	case "invalid_transition", "conflict":
		return http.StatusConflict, kind
	case "not_found":
		return http.StatusNotFound, kind
	case "generation":
		return http.StatusServiceUnavailable, kind
	default:
		return http.StatusInternalServerError, "internal"
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, kind := errorStatus(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		otellib.Extract(r.Context()).Error("api request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		message = "internal error"
	}

	writeJSON(w, status, errorResponse{
		Error: errorBody{Kind: kind, Message: message},
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
