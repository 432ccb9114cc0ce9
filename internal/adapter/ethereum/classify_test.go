package ethereum

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Raviteja659/decentralized-campaign-ai/internal/core/domain"
)

// rpcError mimics a JSON-RPC error returned by the node client.
type rpcError struct {
	code int
	msg  string
	data any
}

func (e rpcError) Error() string          { return e.msg }
func (e rpcError) ErrorCode() int         { return e.code }
func (e rpcError) ErrorData() interface{} { return e.data }

func revertData(t *testing.T, reason string) string {
	t.Helper()
	strType, err := abi.NewType("string", "", nil)
	require.NoError(t, err)
	packed, err := abi.Arguments{{Type: strType}}.Pack(reason)
	require.NoError(t, err)
	return hexutil.Encode(append([]byte{0x08, 0xc3, 0x79, 0xa0}, packed...))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		kind   domain.Kind
		reason string
	}{
		{
			name: "core insufficient funds",
			err:  fmt.Errorf("send: %w", core.ErrInsufficientFunds),
			kind: domain.KindInsufficientFunds,
		},
		{
			name: "node insufficient funds text",
			err:  errors.New("insufficient funds for gas * price + value: balance 0"),
			kind: domain.KindInsufficientFunds,
		},
		{
			name: "wallet rejection code",
			err:  rpcError{code: 4001, msg: "MetaMask Tx Signature: User denied transaction signature."},
			kind: domain.KindUserRejected,
		},
		{
			name:   "revert with data",
			err:    rpcError{code: 3, msg: "execution reverted", data: revertData(t, "Campaign is not active")},
			kind:   domain.KindContractReverted,
			reason: "Campaign is not active",
		},
		{
			name:   "revert text only",
			err:    errors.New("execution reverted: Reward already claimed"),
			kind:   domain.KindContractReverted,
			reason: "Reward already claimed",
		},
		{
			name: "deadline",
			err:  fmt.Errorf("wait mined: %w", context.DeadlineExceeded),
			kind: domain.KindTransport,
		},
		{
			name: "connection refused",
			err:  errors.New("Post \"http://localhost:8545\": dial tcp 127.0.0.1:8545: connect: connection refused"),
			kind: domain.KindTransport,
		},
		{
			name: "unmatched",
			err:  errors.New("nonce too low"),
			kind: domain.KindUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)

			var de *domain.Error
			require.ErrorAs(t, got, &de)
			assert.Equal(t, tt.kind, de.Kind)
			assert.Equal(t, tt.reason, de.Reason)
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

func TestClassifyUnknownHidesRawText(t *testing.T) {
	err := Classify(errors.New("internal node panic at 0xdeadbeef"))

	assert.Equal(t, "Transaction failed", domain.UserMessage(err))
}

func TestClassifyKeepsDomainErrors(t *testing.T) {
	in := domain.NewValidationError(domain.MsgBusy)

	assert.Same(t, in, Classify(in))
	assert.NoError(t, Classify(nil))
}
