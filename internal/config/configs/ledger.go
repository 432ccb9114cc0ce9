package configs

import "time"

// Ledger configures access to the campaign contract.
type Ledger struct {
	RPCURL          string `env:"RPC_URL" envDefault:"http://localhost:8545"`
	ContractAddress string `env:"CONTRACT_ADDRESS"`
	// PrivateKey is the hex key of the account that signs participate and
	// claim transactions. Without it the write endpoints are unavailable.
	PrivateKey string `env:"PRIVATE_KEY"`
	// ChainID pins the expected network. Zero accepts whatever the RPC
	// endpoint reports.
	ChainID        int64         `env:"CHAIN_ID" envDefault:"11155111"`
	ReceiptTimeout time.Duration `env:"RECEIPT_TIMEOUT" envDefault:"2m"`
	// WatchInterval is how often the chain id is polled for network changes.
	WatchInterval time.Duration `env:"WATCH_INTERVAL" envDefault:"15s"`
}
