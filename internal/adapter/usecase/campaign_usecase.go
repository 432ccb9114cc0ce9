package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Raviteja659/decentralized-campaign-ai/internal/core/domain"
	"github.com/Raviteja659/decentralized-campaign-ai/internal/core/port"
)

const (
	msgPromptRequired   = "Prompt is required"
	msgInvalidSignature = "invalid signature"
)

// ServiceDeps groups the collaborators of a CampaignService. Signer,
// Generator, Store and Rates may be nil.
type ServiceDeps struct {
	Ledger    port.Ledger
	Signer    port.SigningAgent
	Verifier  port.SignatureVerifier
	Generator port.DescriptionGenerator
	Registry  *Registry
	Rates     port.RateReader
	Store     port.CampaignStore
	Logger    *slog.Logger

	ChainID              int64
	Currency             string
	RequireParticipation bool
}

// CampaignService provides the proxy server's business logic. It
// implements port.CampaignUseCase.
type CampaignService struct {
	ledger    port.Ledger
	verifier  port.SignatureVerifier
	generator port.DescriptionGenerator
	registry  *Registry
	rates     port.RateReader
	actions   *actionRunner
	logger    *slog.Logger
	now       func() time.Time

	chainID  int64
	currency string
}

var _ port.CampaignUseCase = (*CampaignService)(nil)

func NewCampaignService(d ServiceDeps) *CampaignService {
	s := &CampaignService{
		ledger:    d.Ledger,
		verifier:  d.Verifier,
		generator: d.Generator,
		registry:  d.Registry,
		rates:     d.Rates,
		logger:    d.Logger,
		now:       time.Now,
		chainID:   d.ChainID,
		currency:  d.Currency,
	}
	s.actions = &actionRunner{
		registry:             d.Registry,
		signer:               d.Signer,
		store:                d.Store,
		logger:               d.Logger,
		now:                  func() time.Time { return s.now() },
		requireParticipation: d.RequireParticipation,
	}
	return s
}

// PrepareCampaign validates req and builds the createCampaign descriptor
// for the caller's wallet to sign. The balance of from is checked when from
// is known.
func (s *CampaignService) PrepareCampaign(ctx context.Context, req domain.CampaignRequest, from string) (*port.PreparedCampaign, error) {
	in, err := domain.ValidateCampaign(req)
	if err != nil {
		return nil, err
	}
	if from != "" {
		balance, err := s.ledger.Balance(ctx, from)
		if err != nil {
			return nil, asTransport(err)
		}
		if err = domain.CheckBalance(balance, in.Budget); err != nil {
			return nil, err
		}
	}

	rate, ok := decimal.Zero, false
	if s.rates != nil {
		rate, ok = s.rates.CurrentRate()
	}
	return &port.PreparedCampaign{
		Descriptor: domain.BuildCreate(in),
		Summary:    domain.NewSummary(in, rate, ok, s.currency),
		HasRate:    ok,
	}, nil
}

func (s *CampaignService) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	return s.registry.FetchAll(ctx)
}

func (s *CampaignService) CachedCampaigns() ([]domain.Campaign, bool) {
	return s.registry.Cached()
}

func (s *CampaignService) GetCampaign(ctx context.Context, id uint64) (domain.Campaign, error) {
	return s.registry.FetchOne(ctx, id)
}

func (s *CampaignService) Participate(ctx context.Context, id uint64, account string) (domain.Receipt, error) {
	return s.actions.run(ctx, participateAction, id, account, nil)
}

func (s *CampaignService) Claim(ctx context.Context, id uint64, account string) (domain.Receipt, error) {
	return s.actions.run(ctx, claimAction, id, account, nil)
}

// Analytics returns placeholder engagement metrics. The ledger records no
// impression data.
func (s *CampaignService) Analytics(_ context.Context, _ uint64) (domain.Analytics, error) {
	return domain.PlaceholderAnalytics(), nil
}

// GenerateDescription asks the text generation backend for a campaign
// description. port.ErrNotConfigured is returned when no backend is set.
func (s *CampaignService) GenerateDescription(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", domain.NewValidationError(msgPromptRequired)
	}
	if s.generator == nil {
		return "", port.ErrNotConfigured
	}
	return s.generator.Generate(ctx, prompt)
}

// Authenticate recovers the account that signed message and opens a
// session for it.
func (s *CampaignService) Authenticate(_ context.Context, message, signature string) (*domain.Session, error) {
	if message == "" || signature == "" {
		return nil, domain.NewValidationError(domain.MsgMissingFields)
	}
	account, err := s.verifier.RecoverAddress(message, signature)
	if err != nil {
		s.logger.Debug("signature recovery failed", slog.Any("error", err))
		return nil, domain.NewValidationError(msgInvalidSignature)
	}
	return domain.NewSession(account, s.chainID, s.now()), nil
}

func (s *CampaignService) CurrentRate() (decimal.Decimal, bool) {
	if s.rates == nil {
		return decimal.Zero, false
	}
	return s.rates.CurrentRate()
}

// ContractBalance returns the funds held by the contract in display units.
func (s *CampaignService) ContractBalance(ctx context.Context) (string, error) {
	v, err := s.ledger.ContractBalance(ctx)
	if err != nil {
		return "", asTransport(err)
	}
	return domain.FormatAmount(v), nil
}
