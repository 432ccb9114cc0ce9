package ethereum

import (
	"testing"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoverAddress(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	want := crypto.PubkeyToAddress(key.PublicKey).Hex()
	message := "Sign in to Decentralized Campaign AI"

	sig, err := crypto.Sign(accounts.TextHash([]byte(message)), key)
	require.NoError(t, err)

	got, err := RecoverAddress(message, hexutil.Encode(sig))
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// wallets report v as 27/28
	sig[crypto.RecoveryIDOffset] += 27
	got, err = Verifier{}.RecoverAddress(message, hexutil.Encode(sig))
	require.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = RecoverAddress("another message", hexutil.Encode(sig))
	require.NoError(t, err)
	assert.NotEqual(t, want, got)
}

func TestRecoverAddressRejectsMalformed(t *testing.T) {
	_, err := RecoverAddress("m", "0x1234")
	assert.ErrorIs(t, err, errSignatureLength)

	_, err = RecoverAddress("m", "not-hex")
	assert.Error(t, err)
}
