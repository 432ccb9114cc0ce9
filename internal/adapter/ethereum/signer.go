package ethereum

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/Raviteja659/decentralized-campaign-ai/internal/core/domain"
	"github.com/Raviteja659/decentralized-campaign-ai/internal/core/port"
)

// Signer is a signing agent holding a single private key. It submits
// descriptors to the campaign contract and waits for them to be mined.
type Signer struct {
	ledger  *Ledger
	key     *ecdsa.PrivateKey
	from    common.Address
	chainID *big.Int
	timeout time.Duration
}

var _ port.SigningAgent = (*Signer)(nil)

// NewSigner creates a signer for the hex encoded private key. chainID must
// be the id of the network the ledger is on.
func NewSigner(ledger *Ledger, hexKey string, chainID int64, timeout time.Duration) (*Signer, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}
	return &Signer{
		ledger:  ledger,
		key:     key,
		from:    crypto.PubkeyToAddress(key.PublicKey),
		chainID: big.NewInt(chainID),
		timeout: timeout,
	}, nil
}

func (s *Signer) Account() string {
	return s.from.Hex()
}

// Submit sends d from the signer's account. The agent refuses to sign for
// any other account.
func (s *Signer) Submit(ctx context.Context, from string, d domain.Descriptor) (domain.Receipt, error) {
	if from != "" && !strings.EqualFold(from, s.from.Hex()) {
		return domain.Receipt{}, domain.NewUserRejectedError(fmt.Errorf("no key for account %s", from))
	}
	method, ok := s.ledger.abi.Methods[d.Method]
	if !ok {
		return domain.Receipt{}, domain.NewUnknownError(fmt.Errorf("unknown method %q", d.Method))
	}
	args, err := packParams(method.Inputs, d.Params)
	if err != nil {
		return domain.Receipt{}, domain.NewUnknownError(err)
	}
	value, ok := d.ValueInt()
	if !ok {
		return domain.Receipt{}, domain.NewUnknownError(fmt.Errorf("invalid value %q", d.Value))
	}

	opts, err := bind.NewKeyedTransactorWithChainID(s.key, s.chainID)
	if err != nil {
		return domain.Receipt{}, domain.NewUnknownError(err)
	}
	opts.Context = ctx
	opts.Value = value

	tx, err := s.ledger.contract.Transact(opts, d.Method, args...)
	if err != nil {
		return domain.Receipt{}, Classify(err)
	}

	waitCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	receipt, err := bind.WaitMined(waitCtx, s.ledger.backend, tx)
	if err != nil {
		return domain.Receipt{}, Classify(err)
	}
	if receipt.Status == types.ReceiptStatusFailed {
		return domain.Receipt{}, domain.NewRevertedError("", fmt.Errorf("transaction %s reverted", tx.Hash().Hex()))
	}

	r := domain.Receipt{TxHash: tx.Hash().Hex(), GasUsed: receipt.GasUsed}
	if receipt.BlockNumber != nil {
		r.BlockNumber = receipt.BlockNumber.Uint64()
	}
	return r, nil
}

// packParams converts descriptor params into the Go types the ABI encoder
// expects for inputs.
func packParams(inputs abi.Arguments, params []any) ([]any, error) {
	if len(inputs) != len(params) {
		return nil, fmt.Errorf("got %d params, want %d", len(params), len(inputs))
	}
	out := make([]any, len(params))
	for i, in := range inputs {
		v, err := convertParam(in.Type, params[i])
		if err != nil {
			return nil, fmt.Errorf("param %s: %w", in.Name, err)
		}
		out[i] = v
	}
	return out, nil
}

func convertParam(t abi.Type, p any) (any, error) {
	switch t.T {
	case abi.StringTy:
		s, ok := p.(string)
		if !ok {
			return nil, fmt.Errorf("want string, got %T", p)
		}
		return s, nil
	case abi.UintTy, abi.IntTy:
		if t.Size != 256 {
			return nil, fmt.Errorf("unsupported integer size %d", t.Size)
		}
		return toBigInt(p)
	case abi.AddressTy:
		s, ok := p.(string)
		if !ok || !common.IsHexAddress(s) {
			return nil, fmt.Errorf("invalid address %v", p)
		}
		return common.HexToAddress(s), nil
	case abi.BoolTy:
		b, ok := p.(bool)
		if !ok {
			return nil, fmt.Errorf("want bool, got %T", p)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("unsupported type %s", t.String())
	}
}

func toBigInt(p any) (*big.Int, error) {
	switch v := p.(type) {
	case *big.Int:
		return v, nil
	case uint64:
		return new(big.Int).SetUint64(v), nil
	case int64:
		return big.NewInt(v), nil
	case int:
		return big.NewInt(int64(v)), nil
	case string:
		n, ok := new(big.Int).SetString(v, 10)
		if !ok {
			return nil, fmt.Errorf("invalid integer %q", v)
		}
		return n, nil
	default:
		return nil, fmt.Errorf("want integer, got %T", p)
	}
}
