// Package http exposes the session orchestrator as a JSON API.
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"pomo-lab/domain"
	"pomo-lab/domain/event"
	"pomo-lab/observability"

	"github.com/go-playground/validator/v10"
)

type sessionService interface {
	Defaults() domain.SessionConfig
	StartSession(ownerID, spaceID string, config domain.SessionConfig) (domain.Snapshot, error)
	PauseSession(ownerID string) error
	ResumeSession(ownerID string) error
	StopSession(ownerID string) error
	JoinSession(ownerID, userID string) ([]string, error)
	LeaveSession(ownerID, userID string) error
	OnPresenceChanged(spaceID, userID string, nowPresent bool)
	GetSessionStatus(userID string) (domain.Snapshot, error)
	ListSessions() []domain.Snapshot
	GetUserStats(ctx context.Context, userID string) (domain.StatsRecord, error)
	ResetUserStats(ctx context.Context, userID string) (domain.StatsRecord, error)
}

type presenceUpdater interface {
	Update(spaceID, userID string, present bool) (left string)
}

type timelineReader interface {
	Recent(ownerID string) []event.Notification
}

type monitoringReader interface {
	GetLatest() observability.MonitoringStats
}

type Handler struct {
	service    sessionService
	presence   presenceUpdater
	timeline   timelineReader
	monitoring monitoringReader
	validate   *validator.Validate
	responder  responder
	log        *slog.Logger
}

func NewHandler(log *slog.Logger, service sessionService, presence presenceUpdater,
	timeline timelineReader, monitoring monitoringReader) *Handler {
	return &Handler{
		service:    service,
		presence:   presence,
		timeline:   timeline,
		monitoring: monitoring,
		validate:   validator.New(),
		responder:  responder{log: log},
		log:        log,
	}
}

// Routes returns the API mux wrapped in request logging.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /sessions", h.StartSession)
	mux.HandleFunc("GET /sessions", h.ListSessions)
	mux.HandleFunc("GET /sessions/status", h.SessionStatus)
	mux.HandleFunc("POST /sessions/{owner}/pause", h.control(h.service.PauseSession))
	mux.HandleFunc("POST /sessions/{owner}/resume", h.control(h.service.ResumeSession))
	mux.HandleFunc("POST /sessions/{owner}/stop", h.control(h.service.StopSession))
	mux.HandleFunc("POST /sessions/{owner}/members", h.JoinSession)
	mux.HandleFunc("DELETE /sessions/{owner}/members/{user}", h.LeaveSession)
	mux.HandleFunc("GET /sessions/{owner}/timeline", h.Timeline)
	mux.HandleFunc("POST /presence", h.Presence)
	mux.HandleFunc("GET /stats/{user}", h.GetStats)
	mux.HandleFunc("DELETE /stats/{user}", h.ResetStats)
	mux.HandleFunc("GET /debug/monitoring", h.Monitoring)
	return RequestLogger(h.log)(mux)
}

type startSessionRequest struct {
	OwnerID           string `json:"ownerId" validate:"required"`
	SpaceID           string `json:"spaceId" validate:"required"`
	WorkMinutes       *int   `json:"workMinutes,omitempty"`
	ShortBreakMinutes *int   `json:"shortBreakMinutes,omitempty"`
	LongBreakMinutes  *int   `json:"longBreakMinutes,omitempty"`
	LongBreakInterval *int   `json:"longBreakInterval,omitempty"`
}

// config fills omitted fields from the server defaults.
func (r startSessionRequest) config(defaults domain.SessionConfig) domain.SessionConfig {
	cfg := defaults
	if r.WorkMinutes != nil {
		cfg.WorkMinutes = *r.WorkMinutes
	}
	if r.ShortBreakMinutes != nil {
		cfg.ShortBreakMinutes = *r.ShortBreakMinutes
	}
	if r.LongBreakMinutes != nil {
		cfg.LongBreakMinutes = *r.LongBreakMinutes
	}
	if r.LongBreakInterval != nil {
		cfg.LongBreakInterval = *r.LongBreakInterval
	}
	return cfg
}

type memberRequest struct {
	UserID string `json:"userId" validate:"required"`
}

type membersResponse struct {
	OwnerID string   `json:"ownerId"`
	Members []string `json:"members"`
}

type presenceRequest struct {
	SpaceID string `json:"spaceId" validate:"required"`
	UserID  string `json:"userId" validate:"required"`
	Present bool   `json:"present"`
}

type presenceResponse struct {
	UserID string `json:"userId"`
	Left   string `json:"left,omitempty"`
}

func (h *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if !h.decode(w, r, &req) {
		return
	}
	snapshot, err := h.service.StartSession(req.OwnerID, req.SpaceID, req.config(h.service.Defaults()))
	if err != nil {
		h.responder.handleServiceError(w, err)
		return
	}
	h.responder.writeJSON(w, http.StatusCreated, snapshot)
}

func (h *Handler) ListSessions(w http.ResponseWriter, _ *http.Request) {
	h.responder.writeJSON(w, http.StatusOK, h.service.ListSessions())
}

func (h *Handler) SessionStatus(w http.ResponseWriter, r *http.Request) {
	user := r.URL.Query().Get("user")
	if user == "" {
		h.responder.writeJSON(w, http.StatusBadRequest, errorResponse{Message: "missing user query parameter"})
		return
	}
	snapshot, err := h.service.GetSessionStatus(user)
	if err != nil {
		h.responder.handleServiceError(w, err)
		return
	}
	h.responder.writeJSON(w, http.StatusOK, snapshot)
}

func (h *Handler) control(fn func(ownerID string) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(r.PathValue("owner")); err != nil {
			h.responder.handleServiceError(w, err)
			return
		}
		h.responder.writeJSON(w, http.StatusAccepted, nil)
	}
}

func (h *Handler) JoinSession(w http.ResponseWriter, r *http.Request) {
	var req memberRequest
	if !h.decode(w, r, &req) {
		return
	}
	owner := r.PathValue("owner")
	members, err := h.service.JoinSession(owner, req.UserID)
	if err != nil {
		h.responder.handleServiceError(w, err)
		return
	}
	h.responder.writeJSON(w, http.StatusOK, membersResponse{OwnerID: owner, Members: members})
}

func (h *Handler) LeaveSession(w http.ResponseWriter, r *http.Request) {
	if err := h.service.LeaveSession(r.PathValue("owner"), r.PathValue("user")); err != nil {
		h.responder.handleServiceError(w, err)
		return
	}
	h.responder.writeJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) Timeline(w http.ResponseWriter, r *http.Request) {
	entries := h.timeline.Recent(r.PathValue("owner"))
	if entries == nil {
		entries = []event.Notification{}
	}
	h.responder.writeJSON(w, http.StatusOK, entries)
}

// Presence records a presence change and drops the user from rosters in
// the space they left, whether they walked out or moved elsewhere.
func (h *Handler) Presence(w http.ResponseWriter, r *http.Request) {
	var req presenceRequest
	if !h.decode(w, r, &req) {
		return
	}
	left := h.presence.Update(req.SpaceID, req.UserID, req.Present)
	if left != "" {
		h.service.OnPresenceChanged(left, req.UserID, false)
	}
	h.responder.writeJSON(w, http.StatusOK, presenceResponse{UserID: req.UserID, Left: left})
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	record, err := h.service.GetUserStats(r.Context(), r.PathValue("user"))
	if err != nil {
		h.responder.handleServiceError(w, err)
		return
	}
	h.responder.writeJSON(w, http.StatusOK, record)
}

func (h *Handler) ResetStats(w http.ResponseWriter, r *http.Request) {
	record, err := h.service.ResetUserStats(r.Context(), r.PathValue("user"))
	if err != nil {
		h.responder.handleServiceError(w, err)
		return
	}
	h.responder.writeJSON(w, http.StatusOK, record)
}

func (h *Handler) Monitoring(w http.ResponseWriter, _ *http.Request) {
	h.responder.writeJSON(w, http.StatusOK, h.monitoring.GetLatest())
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.responder.writeError(w, http.StatusBadRequest, errBadRequestBody)
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		h.responder.handleServiceError(w, err)
		return false
	}
	return true
}
