package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/Raviteja659/decentralized-campaign-ai/internal/core/domain"
	"github.com/Raviteja659/decentralized-campaign-ai/internal/core/port"
)

// Registry is the read path over the ledger. It keeps the last good view so
// a failed reload never blanks what callers already have.
type Registry struct {
	ledger port.Ledger
	store  port.CampaignStore
	logger *slog.Logger
	now    func() time.Time

	mu     sync.RWMutex
	view   []domain.Campaign
	loaded bool
}

// NewRegistry creates a registry over ledger. store may be nil, in which
// case the view is kept in memory only.
func NewRegistry(ledger port.Ledger, store port.CampaignStore, logger *slog.Logger) *Registry {
	return &Registry{ledger: ledger, store: store, logger: logger, now: time.Now}
}

// Warm fills the view from the snapshot store. It is a no-op without a
// store or when the view was already loaded from the ledger.
func (r *Registry) Warm(ctx context.Context) error {
	if r.store == nil {
		return nil
	}
	raw, err := r.store.LoadSnapshot(ctx)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loaded {
		return nil
	}
	r.view = normalizeAll(raw)
	r.loaded = len(raw) > 0
	return nil
}

// FetchAll reloads every campaign from the ledger and replaces the view.
func (r *Registry) FetchAll(ctx context.Context) ([]domain.Campaign, error) {
	raw, err := r.ledger.Campaigns(ctx)
	if err != nil {
		return nil, asTransport(err)
	}
	campaigns := normalizeAll(raw)

	r.mu.Lock()
	r.view = campaigns
	r.loaded = true
	r.mu.Unlock()

	if r.store != nil {
		if err = r.store.SaveSnapshot(ctx, raw, r.now()); err != nil {
			r.logger.Warn("snapshot save failed", slog.Any("error", err))
		}
	}
	return copyView(campaigns), nil
}

// FetchOne returns a single campaign straight from the ledger.
func (r *Registry) FetchOne(ctx context.Context, id uint64) (domain.Campaign, error) {
	raw, err := r.ledger.Campaign(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Campaign{}, err
		}
		return domain.Campaign{}, asTransport(err)
	}
	return domain.Normalize(raw), nil
}

// Cached returns the last good view and whether any view exists.
func (r *Registry) Cached() ([]domain.Campaign, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyView(r.view), r.loaded
}

// Reset drops the view, e.g. after a network change made it meaningless.
func (r *Registry) Reset() {
	r.mu.Lock()
	r.view = nil
	r.loaded = false
	r.mu.Unlock()
}

func normalizeAll(raw []domain.RawCampaign) []domain.Campaign {
	campaigns := make([]domain.Campaign, 0, len(raw))
	for _, c := range raw {
		campaigns = append(campaigns, domain.Normalize(c))
	}
	return campaigns
}

// copyView never returns nil so an empty ledger reads as an empty list.
func copyView(v []domain.Campaign) []domain.Campaign {
	out := make([]domain.Campaign, len(v))
	copy(out, v)
	return out
}

// asTransport keeps classified errors and treats anything else from the
// read path as a transport failure.
func asTransport(err error) error {
	var e *domain.Error
	if errors.As(err, &e) {
		return err
	}
	return domain.NewTransportError(err)
}
