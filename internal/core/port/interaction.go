package port

import (
	"context"
	"errors"

	"github.com/Raviteja659/decentralized-campaign-ai/internal/core/domain"
)

// ErrNotConfigured is returned by optional integrations that lack
// credentials.
var ErrNotConfigured = errors.New("integration not configured")

// Confirmer asks the user to approve a pending campaign.
type Confirmer interface {
	Confirm(ctx context.Context, s domain.Summary) (bool, error)
}

// DescriptionGenerator writes campaign descriptions from a short prompt.
type DescriptionGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// WalletEvents delivers account and network changes. Subscribe returns a
// function that removes the subscription.
type WalletEvents interface {
	Subscribe(fn func(domain.WalletEvent)) (unsubscribe func())
}
