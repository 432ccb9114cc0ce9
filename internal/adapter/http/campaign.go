package httpadapter

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/Raviteja659/decentralized-campaign-ai/internal/core/domain"
)

const (
	msgInvalidJSON = "invalid JSON"
	msgInvalidID   = "invalid campaign id"
	msgInvalidAuth = "invalid session token"
)

type descriptorResponse struct {
	Method string `json:"method"`
	Params []any  `json:"params"`
	Value  string `json:"value"`
}

type summaryResponse struct {
	Title        string `json:"title"`
	Budget       string `json:"budget"`
	Reward       string `json:"reward"`
	DurationDays uint64 `json:"durationDays"`
	BudgetFiat   string `json:"budgetFiat"`
	RewardFiat   string `json:"rewardFiat"`
	Currency     string `json:"currency"`
	Text         string `json:"text"`
}

// campaignResponse mirrors the registry view. Times and the participant
// count are decimal strings as the ledger encodes them.
type campaignResponse struct {
	ID               uint64 `json:"id"`
	Owner            string `json:"owner"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	Budget           string `json:"budget"`
	Reward           string `json:"reward"`
	StartTime        string `json:"startTime"`
	EndTime          string `json:"endTime"`
	StartDate        string `json:"startDate"`
	EndDate          string `json:"endDate"`
	IsActive         bool   `json:"isActive"`
	Active           bool   `json:"active"`
	ParticipantCount string `json:"participantCount"`
}

func toCampaignResponse(c domain.Campaign, now time.Time) campaignResponse {
	return campaignResponse{
		ID:               c.ID,
		Owner:            c.Owner,
		Title:            c.Title,
		Description:      c.Description,
		Budget:           c.Budget,
		Reward:           c.Reward,
		StartTime:        strconv.FormatInt(c.StartTime.Unix(), 10),
		EndTime:          strconv.FormatInt(c.EndTime.Unix(), 10),
		StartDate:        c.StartDate(),
		EndDate:          c.EndDate(),
		IsActive:         c.IsActive,
		Active:           c.EffectiveActive(now),
		ParticipantCount: strconv.FormatUint(c.ParticipantCount, 10),
	}
}

func toCampaignResponses(cs []domain.Campaign) []campaignResponse {
	now := time.Now()
	out := make([]campaignResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, toCampaignResponse(c, now))
	}
	return out
}

// handleCreateCampaign validates the campaign and returns the createCampaign
// descriptor for the caller's wallet to sign. Nothing is submitted here.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var body createCampaignRequest
	if err := decodeJSON(w, r, &body); err != nil {
		h.writeMessage(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}
	req := domain.CampaignRequest{
		Title:        body.Title,
		Description:  body.Description,
		Budget:       string(body.Budget),
		Reward:       string(body.Reward),
		DurationDays: string(body.Duration),
	}
	prepared, err := h.svc.PrepareCampaign(r.Context(), req, body.From)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp := envelope{"data": descriptorResponse{
		Method: prepared.Descriptor.Method,
		Params: prepared.Descriptor.Params,
		Value:  prepared.Descriptor.Value,
	}}
	if prepared.HasRate {
		s := prepared.Summary
		resp["summary"] = summaryResponse{
			Title:        s.Title,
			Budget:       s.Budget,
			Reward:       s.Reward,
			DurationDays: s.DurationDays,
			BudgetFiat:   s.BudgetFiat,
			RewardFiat:   s.RewardFiat,
			Currency:     s.Currency,
			Text:         s.String(),
		}
	}
	h.writeOK(w, resp)
}

// handleListCampaigns reloads the registry. When the ledger is unreachable
// the last good view is served with stale set.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.svc.ListCampaigns(r.Context())
	if err != nil {
		cached, ok := h.svc.CachedCampaigns()
		if !ok {
			h.writeError(w, r, err)
			return
		}
		h.logger.Warn("serving stale campaigns", slog.Any("error", err))
		h.writeOK(w, envelope{"campaigns": toCampaignResponses(cached), "stale": true})
		return
	}
	h.writeOK(w, envelope{"campaigns": toCampaignResponses(campaigns)})
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(r)
	if !ok {
		h.writeMessage(w, http.StatusBadRequest, msgInvalidID)
		return
	}
	c, err := h.svc.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeOK(w, envelope{"campaign": toCampaignResponse(c, time.Now())})
}

func (h *Handler) handleParticipate(w http.ResponseWriter, r *http.Request) {
	h.handleAction(w, r, h.svc.Participate)
}

func (h *Handler) handleClaim(w http.ResponseWriter, r *http.Request) {
	h.handleAction(w, r, h.svc.Claim)
}

// handleAction submits a participate or claim call through the server's
// signing agent. A Bearer session token names the participating account.
func (h *Handler) handleAction(w http.ResponseWriter, r *http.Request,
	submit func(ctx context.Context, id uint64, account string) (domain.Receipt, error)) {
	id, ok := campaignID(r)
	if !ok {
		h.writeMessage(w, http.StatusBadRequest, msgInvalidID)
		return
	}
	account, err := h.bearerAccount(r)
	if err != nil {
		h.writeMessage(w, http.StatusUnauthorized, msgInvalidAuth)
		return
	}
	receipt, err := submit(r.Context(), id, account)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeOK(w, envelope{"transactionHash": receipt.TxHash})
}

func (h *Handler) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(r)
	if !ok {
		h.writeMessage(w, http.StatusBadRequest, msgInvalidID)
		return
	}
	a, err := h.svc.Analytics(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeOK(w, envelope{"analytics": envelope{
		"impressions":    a.Impressions,
		"clicks":         a.Clicks,
		"conversions":    a.Conversions,
		"engagementRate": a.EngagementRate,
	}})
}
