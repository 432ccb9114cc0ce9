package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Raviteja659/decentralized-campaign-ai/internal/core/port"
)

// Oracle keeps the last known good native-token to fiat rate. A failed
// refresh never clears a rate that was already observed.
type Oracle struct {
	source   port.PriceSource
	store    port.RateStore
	interval time.Duration
	logger   *slog.Logger
	now      func() time.Time

	mu      sync.RWMutex
	rate    decimal.Decimal
	hasRate bool
	at      time.Time
}

// NewOracle creates an oracle polling source every interval. store may be
// nil.
func NewOracle(source port.PriceSource, store port.RateStore, interval time.Duration, logger *slog.Logger) *Oracle {
	return &Oracle{
		source:   source,
		store:    store,
		interval: interval,
		logger:   logger,
		now:      time.Now,
	}
}

// Seed loads the last persisted quote so a restart does not start without a
// rate.
func (o *Oracle) Seed(ctx context.Context) error {
	if o.store == nil {
		return nil
	}
	q, ok, err := o.store.LoadQuote(ctx)
	if err != nil || !ok {
		return err
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.hasRate {
		o.rate, o.hasRate, o.at = q.Rate, true, q.ObservedAt
	}
	return nil
}

// Refresh fetches a new rate. On failure the previous rate is kept and the
// error is returned.
func (o *Oracle) Refresh(ctx context.Context) error {
	rate, err := o.source.FetchRate(ctx)
	if err != nil {
		return err
	}
	q := port.Quote{Rate: rate, ObservedAt: o.now()}

	o.mu.Lock()
	o.rate, o.hasRate, o.at = q.Rate, true, q.ObservedAt
	o.mu.Unlock()

	if o.store != nil {
		if err = o.store.SaveQuote(ctx, q); err != nil {
			o.logger.Warn("quote save failed", slog.Any("error", err))
		}
	}
	return nil
}

// Run refreshes immediately and then on every tick until ctx is done.
func (o *Oracle) Run(ctx context.Context) {
	o.refreshAndLog(ctx)
	if o.interval <= 0 {
		return
	}
	ticker := time.NewTicker(o.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			o.refreshAndLog(ctx)
		}
	}
}

func (o *Oracle) refreshAndLog(ctx context.Context) {
	if err := o.Refresh(ctx); err != nil {
		o.logger.Warn("price refresh failed, keeping last rate", slog.Any("error", err))
	}
}

// CurrentRate returns the cached rate and whether one has been observed.
func (o *Oracle) CurrentRate() (decimal.Decimal, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.rate, o.hasRate
}

// ObservedAt is when the cached rate was fetched.
func (o *Oracle) ObservedAt() time.Time {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.at
}
