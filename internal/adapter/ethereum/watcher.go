package ethereum

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Raviteja659/decentralized-campaign-ai/internal/core/domain"
	"github.com/Raviteja659/decentralized-campaign-ai/internal/core/port"
)

// ChainIDReader reports the network a node is on.
type ChainIDReader interface {
	ChainID(ctx context.Context) (int64, error)
}

// ChainWatcher polls the node's chain id and publishes NetworkChanged
// events when it moves. Account changes can be published by the caller.
type ChainWatcher struct {
	reader   ChainIDReader
	interval time.Duration
	logger   *slog.Logger

	mu   sync.Mutex
	subs map[int]func(domain.WalletEvent)
	next int
	last int64
}

var _ port.WalletEvents = (*ChainWatcher)(nil)

func NewChainWatcher(reader ChainIDReader, interval time.Duration, logger *slog.Logger) *ChainWatcher {
	return &ChainWatcher{
		reader:   reader,
		interval: interval,
		logger:   logger,
		subs:     make(map[int]func(domain.WalletEvent)),
	}
}

func (w *ChainWatcher) Subscribe(fn func(domain.WalletEvent)) func() {
	w.mu.Lock()
	id := w.next
	w.next++
	w.subs[id] = fn
	w.mu.Unlock()

	return func() {
		w.mu.Lock()
		delete(w.subs, id)
		w.mu.Unlock()
	}
}

// Publish delivers ev to every subscriber in the caller's goroutine.
func (w *ChainWatcher) Publish(ev domain.WalletEvent) {
	w.mu.Lock()
	fns := make([]func(domain.WalletEvent), 0, len(w.subs))
	for _, fn := range w.subs {
		fns = append(fns, fn)
	}
	w.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}

// Run polls until ctx is done. The first successful poll only records the
// current chain id. A non-positive interval polls once.
func (w *ChainWatcher) Run(ctx context.Context) {
	w.Poll(ctx)
	if w.interval <= 0 {
		return
	}
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.Poll(ctx)
		}
	}
}

// Poll reads the chain id once and publishes a NetworkChanged event when it
// differs from the last one seen.
func (w *ChainWatcher) Poll(ctx context.Context) {
	id, err := w.reader.ChainID(ctx)
	if err != nil {
		w.logger.Warn("chain id poll failed", slog.Any("error", err))
		return
	}

	w.mu.Lock()
	prev := w.last
	w.last = id
	w.mu.Unlock()

	if prev != 0 && prev != id {
		w.logger.Info("network changed", slog.Int64("from", prev), slog.Int64("to", id))
		w.Publish(domain.WalletEvent{Type: domain.NetworkChanged, ChainID: id})
	}
}
