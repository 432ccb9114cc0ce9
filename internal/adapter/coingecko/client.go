// Package coingecko fetches native-token quotes from the CoinGecko simple
// price API.
package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Raviteja659/decentralized-campaign-ai/internal/core/port"
)

// Client implements port.PriceSource.
type Client struct {
	url        string
	asset      string
	currency   string
	httpClient *http.Client
}

var _ port.PriceSource = (*Client)(nil)

// NewClient queries endpoint, a simple/price URL, for asset priced in
// currency. The ids and vs_currencies parameters are set from asset and
// currency; other query parameters of endpoint are kept.
func NewClient(endpoint, asset, currency string, timeout time.Duration) *Client {
	return &Client{
		url:      endpoint,
		asset:    strings.ToLower(asset),
		currency: strings.ToLower(currency),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchRate returns the current price of one asset unit.
func (c *Client) FetchRate(ctx context.Context) (decimal.Decimal, error) {
	endpoint, err := c.endpoint()
	if err != nil {
		return decimal.Zero, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to fetch price: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("price API returned status %d", resp.StatusCode)
	}

	var body map[string]map[string]decimal.Decimal
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return decimal.Zero, fmt.Errorf("failed to decode price: %w", err)
	}
	rate, ok := body[c.asset][c.currency]
	if !ok {
		return decimal.Zero, fmt.Errorf("price for %s/%s missing from response", c.asset, c.currency)
	}
	if !rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("non-positive price %s", rate)
	}
	return rate, nil
}

func (c *Client) endpoint() (string, error) {
	u, err := url.Parse(c.url)
	if err != nil {
		return "", fmt.Errorf("invalid price URL: %w", err)
	}
	q := u.Query()
	q.Set("ids", c.asset)
	q.Set("vs_currencies", c.currency)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
