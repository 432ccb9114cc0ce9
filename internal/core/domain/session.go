package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session is the per-user context shared by the lifecycle components. It is
// created on wallet connect and replaced when the account or network
// changes.
type Session struct {
	ID        string
	Account   string
	ChainID   int64
	StartedAt time.Time
}

// NewSession starts a session for account on chainID.
func NewSession(account string, chainID int64, now time.Time) *Session {
	return &Session{
		ID:        uuid.NewString(),
		Account:   account,
		ChainID:   chainID,
		StartedAt: now,
	}
}
