package port

import (
	"context"
	"math/big"

	"github.com/Raviteja659/decentralized-campaign-ai/internal/core/domain"
)

// Ledger is the read side of the campaign contract. It is an outbound port;
// implementations return *domain.Error values classified at the call site.
type Ledger interface {
	// Campaigns returns every campaign in id order. An empty registry is an
	// empty slice, not an error.
	Campaigns(ctx context.Context) ([]domain.RawCampaign, error)
	// Campaign returns one campaign or a domain.KindNotFound error.
	Campaign(ctx context.Context, id uint64) (domain.RawCampaign, error)
	// Balance returns the native balance of account in base units.
	Balance(ctx context.Context, account string) (*big.Int, error)
	// ContractBalance returns the funds held by the contract in base units.
	ContractBalance(ctx context.Context) (*big.Int, error)
}

// SigningAgent signs and submits descriptors for an account and waits for
// the ledger to confirm them. Failures are classified into the domain error
// kinds before they are returned.
type SigningAgent interface {
	// Account is the address the agent signs for.
	Account() string
	Submit(ctx context.Context, from string, d domain.Descriptor) (domain.Receipt, error)
}

// SignatureVerifier recovers the account that signed a personal message.
type SignatureVerifier interface {
	RecoverAddress(message, signature string) (string, error)
}
