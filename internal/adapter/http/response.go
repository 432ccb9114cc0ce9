package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/Raviteja659/decentralized-campaign-ai/internal/core/domain"
)

// envelope is the body of every API response. Success is always set.
type envelope map[string]any

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) writeOK(w http.ResponseWriter, body envelope) {
	body["success"] = true
	h.writeJSON(w, http.StatusOK, body)
}

func (h *Handler) writeMessage(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, envelope{"success": false, "error": msg})
}

// writeError logs err and answers with its short user message. Raw error
// text is never sent to the client.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(domain.KindOf(err))
	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	h.logger.Log(r.Context(), level, "request failed",
		slog.String("path", r.URL.Path),
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.Any("error", err),
	)
	h.writeMessage(w, status, domain.UserMessage(err))
}

func statusFor(k domain.Kind) int {
	switch k {
	case domain.KindValidation, domain.KindInsufficientFunds, domain.KindContractReverted:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindUserRejected:
		return http.StatusConflict
	case domain.KindTransport:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
