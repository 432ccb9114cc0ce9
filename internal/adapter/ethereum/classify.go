package ethereum

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/Raviteja659/decentralized-campaign-ai/internal/core/domain"
)

// JSON-RPC error codes with a fixed meaning across wallets and nodes.
const (
	codeUserRejected    = 4001
	codeExecutionRevert = 3
)

const revertPrefix = "execution reverted"

// phrases maps node error text to a kind when no structured error is
// available. Entries are lower case and checked in order.
var phrases = []struct {
	phrase string
	kind   domain.Kind
}{
	{"insufficient funds", domain.KindInsufficientFunds},
	{"user denied", domain.KindUserRejected},
	{"user rejected", domain.KindUserRejected},
	{revertPrefix, domain.KindContractReverted},
	{"connection refused", domain.KindTransport},
	{"no such host", domain.KindTransport},
	{"i/o timeout", domain.KindTransport},
}

// Classify maps a go-ethereum error into the domain error kinds. Already
// classified errors pass through unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	var de *domain.Error
	if errors.As(err, &de) {
		return err
	}

	switch {
	case errors.Is(err, core.ErrInsufficientFunds), errors.Is(err, core.ErrInsufficientFundsForTransfer):
		return domain.NewInsufficientFundsError(err)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return domain.NewTransportError(err)
	}

	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		switch rpcErr.ErrorCode() {
		case codeUserRejected:
			return domain.NewUserRejectedError(err)
		case codeExecutionRevert:
			return domain.NewRevertedError(revertReason(err), err)
		}
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return domain.NewTransportError(err)
	}

	msg := strings.ToLower(err.Error())
	for _, p := range phrases {
		if !strings.Contains(msg, p.phrase) {
			continue
		}
		switch p.kind {
		case domain.KindInsufficientFunds:
			return domain.NewInsufficientFundsError(err)
		case domain.KindUserRejected:
			return domain.NewUserRejectedError(err)
		case domain.KindContractReverted:
			return domain.NewRevertedError(revertReason(err), err)
		case domain.KindTransport:
			return domain.NewTransportError(err)
		}
	}
	return domain.NewUnknownError(err)
}

// revertReason extracts the Error(string) reason from the revert data
// attached to err, falling back to the text after "execution reverted:".
func revertReason(err error) string {
	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		if s, ok := dataErr.ErrorData().(string); ok {
			if data, decodeErr := hexutil.Decode(s); decodeErr == nil {
				if reason, unpackErr := abi.UnpackRevert(data); unpackErr == nil {
					return reason
				}
			}
		}
	}
	msg := err.Error()
	i := strings.Index(strings.ToLower(msg), revertPrefix+":")
	if i < 0 {
		return ""
	}
	return strings.TrimSpace(msg[i+len(revertPrefix)+1:])
}
