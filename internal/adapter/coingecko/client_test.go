package coingecko

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchRate(t *testing.T) {
	srv := newServer(t, http.StatusOK, `{"ethereum":{"usd":3150.42}}`)
	c := NewClient(srv.URL, "ethereum", "usd", time.Second)

	rate, err := c.FetchRate(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "3150.42", rate.String())
}

func TestFetchRateErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "rate limited", status: http.StatusTooManyRequests, body: `{}`},
		{name: "missing asset", status: http.StatusOK, body: `{"bitcoin":{"usd":1}}`},
		{name: "zero price", status: http.StatusOK, body: `{"ethereum":{"usd":0}}`},
		{name: "garbage", status: http.StatusOK, body: `<html>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newServer(t, tt.status, tt.body)
			c := NewClient(srv.URL, "ethereum", "usd", time.Second)

			_, err := c.FetchRate(context.Background())
			assert.Error(t, err)
		})
	}
}

func TestFetchRateQueriesConfiguredPair(t *testing.T) {
	var query url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		_, _ = w.Write([]byte(`{"ethereum":{"eur":2900.1}}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL+"/simple/price?ids=bitcoin&precision=2", "ethereum", "EUR", time.Second)
	rate, err := c.FetchRate(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "2900.1", rate.String())
	assert.Equal(t, "ethereum", query.Get("ids"))
	assert.Equal(t, "eur", query.Get("vs_currencies"))
	assert.Equal(t, "2", query.Get("precision"))
}
