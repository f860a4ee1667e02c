package http

import (
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"net/http"

	"pomo-lab/errors"

	"github.com/go-playground/validator/v10"
)

var errBadRequestBody = stderrors.New("invalid request body")

type errorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

type responder struct {
	log *slog.Logger
}

func (r responder) writeJSON(w http.ResponseWriter, status int, payload any) {
	if status == http.StatusNoContent || payload == nil {
		w.WriteHeader(status)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		r.log.Error("Failed to encode response", "error", err)
	}
}

func (r responder) writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		r.log.Error("Request failed", "status", status, "error", err)
	} else {
		r.log.Debug("Request rejected", "status", status, "error", err)
	}
	r.writeJSON(w, status, errorResponse{Message: err.Error()})
}

// handleServiceError maps orchestrator error kinds to HTTP statuses.
func (r responder) handleServiceError(w http.ResponseWriter, err error) {
	var vErrs validator.ValidationErrors
	switch {
	case stderrors.As(err, &vErrs):
		details := make(map[string]string, len(vErrs))
		for _, fe := range vErrs {
			details[fe.Field()] = fe.Tag()
		}
		r.writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request", Errors: details})
	case stderrors.Is(err, errors.ErrAlreadyActive),
		stderrors.Is(err, errors.ErrAlreadyJoined),
		stderrors.Is(err, errors.ErrNotJoined):
		r.writeError(w, http.StatusConflict, err)
	case stderrors.Is(err, errors.ErrNotFound):
		r.writeError(w, http.StatusNotFound, err)
	case stderrors.Is(err, errors.ErrSelfJoin),
		stderrors.Is(err, errors.ErrSelfLeave):
		r.writeError(w, http.StatusBadRequest, err)
	case stderrors.Is(err, errors.ErrInvalidConfig),
		stderrors.Is(err, errors.ErrOwnerNotPresent):
		r.writeError(w, http.StatusUnprocessableEntity, err)
	case stderrors.Is(err, errors.ErrStorageFailure),
		stderrors.Is(err, errors.ErrOrchestratorNotStarted):
		r.writeError(w, http.StatusServiceUnavailable, err)
	default:
		r.writeError(w, http.StatusInternalServerError, err)
	}
}
