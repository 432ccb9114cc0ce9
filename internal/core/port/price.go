package port

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Quote is one observed exchange rate.
type Quote struct {
	Rate       decimal.Decimal
	ObservedAt time.Time
}

// PriceSource fetches the current native-token to fiat rate.
type PriceSource interface {
	FetchRate(ctx context.Context) (decimal.Decimal, error)
}

// RateStore keeps the last known good quote outside the process.
type RateStore interface {
	SaveQuote(ctx context.Context, q Quote) error
	// LoadQuote reports false when no quote has been stored yet.
	LoadQuote(ctx context.Context) (Quote, bool, error)
}

// RateReader exposes the cached rate.
type RateReader interface {
	CurrentRate() (decimal.Decimal, bool)
}
