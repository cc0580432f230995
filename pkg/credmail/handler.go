package credmail

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/credportal/pkg/logger"
)

const maxRequestBodyBytes = 64 << 10

type successResponse struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handler exposes d as a POST-only JSON endpoint.
//
//	405 {"error":"Method not allowed"}          non-POST, with Allow: POST
//	400 {"error":"Missing required fields..."} any field empty or body unreadable
//	200 {"success":true,"messageId":"..."}     provider accepted the message
//	500 {"error":"..."}                        provider rejection or any other failure
func Handler(d *Dispatcher, log *slog.Logger) http.HandlerFunc {
	if log == nil {
		log = logger.Nop()
	}
	log = log.With(logger.Component("credmail"))

	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			d.metrics.observe(OutcomeMethodNotAllowed)
			log.DebugContext(r.Context(), "method not allowed",
				slog.String("method", r.Method),
				logger.StatusCode(http.StatusMethodNotAllowed),
			)
			w.Header().Set("Allow", http.MethodPost)
			writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "Method not allowed"})
			return
		}

		// An unreadable body yields a zero Request, which fails validation below.
		var req Request
		if r.Body != nil {
			if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)).Decode(&req); err != nil {
				log.DebugContext(r.Context(), "unreadable request body", logger.Error(err))
				req = Request{}
			}
		}

		id, err := d.Dispatch(r.Context(), req)
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, successResponse{Success: true, MessageID: id})
		case errors.Is(err, ErrMissingFields):
			log.DebugContext(r.Context(), "missing required fields", logger.StatusCode(http.StatusBadRequest))
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: MissingFieldsMessage})
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: PublicMessage(err)})
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
