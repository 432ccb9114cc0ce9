package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Raviteja659/decentralized-campaign-ai/internal/core/domain"
	"github.com/Raviteja659/decentralized-campaign-ai/internal/core/port"
)

const (
	msgGeneratorNotConfigured = "Gemini API key not configured"
	msgGenerateFailed         = "Failed to generate description"
)

// publicError is implemented by upstream errors whose message may be shown
// to users.
type publicError interface {
	PublicMessage() string
}

func (h *Handler) handleGenerateDescription(w http.ResponseWriter, r *http.Request) {
	var body generateRequest
	if err := decodeJSON(w, r, &body); err != nil {
		h.writeMessage(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}
	description, err := h.svc.GenerateDescription(r.Context(), body.Prompt)
	if err == nil {
		h.writeOK(w, envelope{"description": description})
		return
	}

	var pub publicError
	switch {
	case domain.KindOf(err) == domain.KindValidation:
		h.writeError(w, r, err)
	case errors.Is(err, port.ErrNotConfigured):
		h.writeMessage(w, http.StatusInternalServerError, msgGeneratorNotConfigured)
	case errors.As(err, &pub) && pub.PublicMessage() != "":
		h.logger.Error("description generation failed", slog.Any("error", err))
		h.writeMessage(w, http.StatusInternalServerError, pub.PublicMessage())
	default:
		h.logger.Error("description generation failed", slog.Any("error", err))
		h.writeMessage(w, http.StatusInternalServerError, msgGenerateFailed)
	}
}
