package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Raviteja659/decentralized-campaign-ai/internal/core/port"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *RateStore) {
	mr := miniredis.RunT(t)

	rdb, err := NewClient(context.Background(), "redis://"+mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })

	return mr, NewRateStore(rdb, "campaign", "ethereum", "usd")
}

func TestRateStoreEmpty(t *testing.T) {
	_, store := setupTestRedis(t)

	_, ok, err := store.LoadQuote(context.Background())

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRateStoreRoundTrip(t *testing.T) {
	mr, store := setupTestRedis(t)
	at := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	err := store.SaveQuote(context.Background(), port.Quote{Rate: decimal.RequireFromString("3150.42"), ObservedAt: at})
	require.NoError(t, err)
	assert.Equal(t, "3150.42", mr.HGet("campaign:price:ethereum:usd", "rate"))

	q, ok, err := store.LoadQuote(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "3150.42", q.Rate.String())
	assert.Equal(t, at, q.ObservedAt)
}

func TestRateStoreCorruptValue(t *testing.T) {
	mr, store := setupTestRedis(t)
	mr.HSet("campaign:price:ethereum:usd", "rate", "abc", "observed_at", "1")

	_, _, err := store.LoadQuote(context.Background())

	assert.Error(t, err)
}

func TestNewClientInvalidURL(t *testing.T) {
	_, err := NewClient(context.Background(), "invalid://url")
	assert.Error(t, err)
}
