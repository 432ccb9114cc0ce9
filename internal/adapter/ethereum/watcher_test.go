package ethereum

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Raviteja659/decentralized-campaign-ai/internal/core/domain"
)

type chainIDs struct {
	ids []int64
	err error
}

func (c *chainIDs) ChainID(context.Context) (int64, error) {
	if c.err != nil {
		return 0, c.err
	}
	id := c.ids[0]
	if len(c.ids) > 1 {
		c.ids = c.ids[1:]
	}
	return id, nil
}

func TestChainWatcherPublishesOnChange(t *testing.T) {
	reader := &chainIDs{ids: []int64{11155111, 11155111, 1}}
	w := NewChainWatcher(reader, time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)))

	var got []domain.WalletEvent
	stop := w.Subscribe(func(ev domain.WalletEvent) { got = append(got, ev) })

	ctx := context.Background()
	w.Poll(ctx)
	w.Poll(ctx)
	assert.Empty(t, got)

	w.Poll(ctx)
	assert.Equal(t, []domain.WalletEvent{{Type: domain.NetworkChanged, ChainID: 1}}, got)

	stop()
	w.Publish(domain.WalletEvent{Type: domain.AccountChanged, Account: "0x1"})
	assert.Len(t, got, 1)
}

func TestChainWatcherIgnoresPollErrors(t *testing.T) {
	reader := &chainIDs{err: errors.New("connection refused")}
	w := NewChainWatcher(reader, time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)))

	called := false
	w.Subscribe(func(domain.WalletEvent) { called = true })
	w.Poll(context.Background())

	assert.False(t, called)
}

func TestChainWatcherRunWithoutInterval(t *testing.T) {
	reader := &chainIDs{ids: []int64{11155111}}
	w := NewChainWatcher(reader, 0, slog.New(slog.NewTextHandler(io.Discard, nil)))

	done := make(chan struct{})
	go func() {
		w.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return for a zero interval")
	}
}
