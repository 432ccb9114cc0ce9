package ethereum

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/Raviteja659/decentralized-campaign-ai/internal/core/port"
)

var errSignatureLength = errors.New("signature must be 65 bytes")

// Verifier recovers personal_sign (EIP-191) signers.
type Verifier struct{}

var _ port.SignatureVerifier = Verifier{}

func (Verifier) RecoverAddress(message, signature string) (string, error) {
	return RecoverAddress(message, signature)
}

// RecoverAddress returns the checksummed address that signed message. The
// recovery id may be 0/1 or 27/28.
func RecoverAddress(message, signature string) (string, error) {
	sig, err := hexutil.Decode(signature)
	if err != nil {
		return "", fmt.Errorf("decode signature: %w", err)
	}
	if len(sig) != crypto.SignatureLength {
		return "", errSignatureLength
	}
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig[crypto.RecoveryIDOffset] -= 27
	}
	pub, err := crypto.SigToPub(accounts.TextHash([]byte(message)), sig)
	if err != nil {
		return "", fmt.Errorf("recover public key: %w", err)
	}
	return crypto.PubkeyToAddress(*pub).Hex(), nil
}
