package httpadapter

import (
	"net/http"
	"strings"
)

const msgNoRate = "price unavailable"

// handlePrice returns the last known good native-token rate.
func (h *Handler) handlePrice(w http.ResponseWriter, r *http.Request) {
	rate, ok := h.svc.CurrentRate()
	if !ok {
		h.writeMessage(w, http.StatusServiceUnavailable, msgNoRate)
		return
	}
	h.writeOK(w, envelope{"rate": rate.String(), "currency": strings.ToUpper(h.opts.Currency)})
}

func (h *Handler) handleContractBalance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.svc.ContractBalance(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeOK(w, envelope{"balance": balance})
}
