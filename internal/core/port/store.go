package port

import (
	"context"
	"time"

	"github.com/Raviteja659/decentralized-campaign-ai/internal/core/domain"
)

// CampaignStore persists the last good registry view and the participations
// confirmed through this service. It never acts as a source of truth for
// campaign state.
type CampaignStore interface {
	SaveSnapshot(ctx context.Context, campaigns []domain.RawCampaign, syncedAt time.Time) error
	LoadSnapshot(ctx context.Context) ([]domain.RawCampaign, error)
	RecordParticipation(ctx context.Context, p domain.Participation) error
	HasParticipated(ctx context.Context, campaignID uint64, account string) (bool, error)
}
