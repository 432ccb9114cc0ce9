package domain

// WalletEventType identifies a change reported by the wallet or the chain.
type WalletEventType string

const (
	AccountChanged WalletEventType = "account_changed"
	NetworkChanged WalletEventType = "network_changed"
)

// WalletEvent is delivered to subscribers when the acting account or the
// network changes.
type WalletEvent struct {
	Type    WalletEventType
	Account string
	ChainID int64
}
