package session

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/credportal/pkg/logger"
)

const maxLoginBodyBytes = 16 << 10

// Handler exposes a Repository over HTTP for the simulated login screens.
type Handler struct {
	repo *Repository
	log  *slog.Logger
}

// NewHandler creates session HTTP handlers. A nil logger discards output.
func NewHandler(repo *Repository, log *slog.Logger) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{repo: repo, log: log.With(logger.Component("session"))}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r loginRequest) validate() error {
	if r.Username == "" || r.Password == "" {
		return ErrMissingCredentials
	}
	return nil
}

// Save handles a simulated login: it stores a fresh record and returns it.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxLoginBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	rec, err := h.repo.Save(r.Context(), req.Username, req.Password)
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to save session",
			logger.SessionKey(h.repo.Key()),
			logger.Error(err),
		)
		writeError(w, http.StatusInternalServerError, "failed to save session")
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// Get returns the current record, 404 when none is stored.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	rec, err := h.repo.Get(r.Context())
	if err != nil {
		level := slog.LevelError
		if errors.Is(err, ErrCorruptedRecord) {
			level = slog.LevelWarn
		}
		h.log.Log(r.Context(), level, "failed to load session",
			logger.SessionKey(h.repo.Key()),
			logger.Error(err),
		)
		writeError(w, http.StatusInternalServerError, "failed to load session")
		return
	}
	if rec == nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// Clear handles a simulated logout.
func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Clear(r.Context()); err != nil {
		h.log.ErrorContext(r.Context(), "failed to clear session",
			logger.SessionKey(h.repo.Key()),
			logger.Error(err),
		)
		writeError(w, http.StatusInternalServerError, "failed to clear session")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
