package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/Raviteja659/decentralized-campaign-ai/internal/core/port"
)

const (
	fieldRate       = "rate"
	fieldObservedAt = "observed_at"
)

// RateStore persists the last known good quote in a Redis hash so every
// instance starts with a rate after a restart.
type RateStore struct {
	rdb *redis.Client
	key string
}

var _ port.RateStore = (*RateStore)(nil)

// NewRateStore stores the quote for asset/currency under prefix.
func NewRateStore(rdb *redis.Client, prefix, asset, currency string) *RateStore {
	return &RateStore{rdb: rdb, key: fmt.Sprintf("%s:price:%s:%s", prefix, asset, currency)}
}

func (s *RateStore) SaveQuote(ctx context.Context, q port.Quote) error {
	return s.rdb.HSet(ctx, s.key,
		fieldRate, q.Rate.String(),
		fieldObservedAt, strconv.FormatInt(q.ObservedAt.Unix(), 10),
	).Err()
}

func (s *RateStore) LoadQuote(ctx context.Context) (port.Quote, bool, error) {
	vals, err := s.rdb.HGetAll(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) || (err == nil && len(vals) == 0) {
		return port.Quote{}, false, nil
	}
	if err != nil {
		return port.Quote{}, false, err
	}

	rate, err := decimal.NewFromString(vals[fieldRate])
	if err != nil {
		return port.Quote{}, false, fmt.Errorf("stored rate: %w", err)
	}
	sec, err := strconv.ParseInt(vals[fieldObservedAt], 10, 64)
	if err != nil {
		return port.Quote{}, false, fmt.Errorf("stored timestamp: %w", err)
	}
	return port.Quote{Rate: rate, ObservedAt: time.Unix(sec, 0).UTC()}, true, nil
}
