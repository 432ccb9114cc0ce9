package port

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Raviteja659/decentralized-campaign-ai/internal/core/domain"
)

// CampaignUseCase defines the operations exposed by the proxy server. This
// interface is the primary port into the application domain.
type CampaignUseCase interface {
	// PrepareCampaign validates req and returns the createCampaign
	// descriptor. When from is set the account balance must cover the
	// budget.
	PrepareCampaign(ctx context.Context, req domain.CampaignRequest, from string) (*PreparedCampaign, error)

	// ListCampaigns reloads the registry view from the ledger.
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	// CachedCampaigns returns the last good view and whether one exists.
	CachedCampaigns() ([]domain.Campaign, bool)
	GetCampaign(ctx context.Context, id uint64) (domain.Campaign, error)

	// Participate and Claim submit through the server's signing agent.
	// account identifies the participant for records; empty means the
	// signing account.
	Participate(ctx context.Context, id uint64, account string) (domain.Receipt, error)
	Claim(ctx context.Context, id uint64, account string) (domain.Receipt, error)

	Analytics(ctx context.Context, id uint64) (domain.Analytics, error)
	GenerateDescription(ctx context.Context, prompt string) (string, error)
	// Authenticate recovers the signer of message and opens a session.
	Authenticate(ctx context.Context, message, signature string) (*domain.Session, error)

	CurrentRate() (decimal.Decimal, bool)
	ContractBalance(ctx context.Context) (string, error)
}

// PreparedCampaign is the output of PrepareCampaign. Summary carries fiat
// values only when HasRate is true.
type PreparedCampaign struct {
	Descriptor domain.Descriptor
	Summary    domain.Summary
	HasRate    bool
}
