// internal/app/system/httpjson/httpjson.go

// Package httpjson writes JSON responses and maps the apperr taxonomy to
// HTTP status codes in one place. Handlers never pick status codes for
// domain failures themselves.
package httpjson

import (
	"encoding/json"
	"net/http"

	"github.com/uovhub/campusevents/internal/domain/apperr"
	"go.uber.org/zap"
)

// Respond writes v as JSON with the given status.
func Respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

// errorBody is the wire shape of every failure response.
type errorBody struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"` // policy denial reason code
}

// Err classifies err and writes the matching status:
//
//	validation 400, denied 403, not found 404, conflict 409, unavailable 503,
//	anything else 500 (logged; detail not leaked to the client).
func Err(w http.ResponseWriter, logger *zap.Logger, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		Respond(w, http.StatusBadRequest, errorBody{Error: err.Error()})
	case apperr.KindDenied:
		Respond(w, http.StatusForbidden, errorBody{
			Error:  "not allowed",
			Reason: apperr.DenialReason(err),
		})
	case apperr.KindNotFound:
		Respond(w, http.StatusNotFound, errorBody{Error: err.Error()})
	case apperr.KindConflict:
		Respond(w, http.StatusConflict, errorBody{Error: err.Error()})
	case apperr.KindUnavailable:
		logger.Warn("collaborator unavailable", zap.Error(err))
		Respond(w, http.StatusServiceUnavailable, errorBody{Error: "service temporarily unavailable"})
	default:
		logger.Error("unhandled error", zap.Error(err))
		Respond(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
	}
}

// Decode reads the request body into v, returning a validation error for
// malformed JSON so the boundary mapping stays uniform.
func Decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return apperr.Validation("invalid request body: %v", err)
	}
	return nil
}
