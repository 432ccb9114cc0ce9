package configs

import "time"

// Price configures the native-token to fiat quote source.
type Price struct {
	URL      string        `env:"URL" envDefault:"https://api.coingecko.com/api/v3/simple/price"`
	Asset    string        `env:"ASSET" envDefault:"ethereum"`
	Currency string        `env:"CURRENCY" envDefault:"usd"`
	Interval time.Duration `env:"INTERVAL" envDefault:"60s"`
	Timeout  time.Duration `env:"TIMEOUT" envDefault:"10s"`
}
