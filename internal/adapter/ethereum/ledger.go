package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/Raviteja659/decentralized-campaign-ai/internal/core/domain"
	"github.com/Raviteja659/decentralized-campaign-ai/internal/core/port"
)

// Backend is the node surface used by the adapter. *ethclient.Client
// satisfies it.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	ChainID(ctx context.Context) (*big.Int, error)
}

// Ledger implements port.Ledger over the campaign contract.
type Ledger struct {
	backend  Backend
	address  common.Address
	abi      abi.ABI
	contract *bind.BoundContract
}

var _ port.Ledger = (*Ledger)(nil)

// Dial connects to rpcURL and binds the contract at contractAddress.
func Dial(ctx context.Context, rpcURL, contractAddress string) (*Ledger, *ethclient.Client, error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to EVM RPC: %w", err)
	}
	l, err := NewLedger(client, contractAddress)
	if err != nil {
		client.Close()
		return nil, nil, err
	}
	return l, client, nil
}

// NewLedger binds the campaign contract at contractAddress on backend.
func NewLedger(backend Backend, contractAddress string) (*Ledger, error) {
	if !common.IsHexAddress(contractAddress) {
		return nil, fmt.Errorf("invalid contract address %q", contractAddress)
	}
	parsed, err := ContractABI()
	if err != nil {
		return nil, fmt.Errorf("failed to parse contract ABI: %w", err)
	}
	address := common.HexToAddress(contractAddress)
	return &Ledger{
		backend:  backend,
		address:  address,
		abi:      parsed,
		contract: bind.NewBoundContract(address, parsed, backend, backend, backend),
	}, nil
}

// Address is the bound contract address.
func (l *Ledger) Address() common.Address {
	return l.address
}

// Campaigns reads every campaign through getCampaigns.
func (l *Ledger) Campaigns(ctx context.Context) ([]domain.RawCampaign, error) {
	var out []interface{}
	if err := l.contract.Call(&bind.CallOpts{Context: ctx}, &out, methodGetCampaigns); err != nil {
		return nil, readError(err)
	}
	campaigns, err := decodeCampaigns(out)
	if err != nil {
		return nil, domain.NewTransportError(err)
	}
	return campaigns, nil
}

// Campaign reads one campaign through getCampaignDetails. The contract
// reverts for unknown ids; a zero owner is treated the same way.
func (l *Ledger) Campaign(ctx context.Context, id uint64) (domain.RawCampaign, error) {
	var out []interface{}
	err := l.contract.Call(&bind.CallOpts{Context: ctx}, &out, methodGetCampaignDetails, new(big.Int).SetUint64(id))
	if err != nil {
		err = readError(err)
		if errors.Is(err, domain.ErrContractReverted) {
			return domain.RawCampaign{}, domain.NewNotFoundError(err)
		}
		return domain.RawCampaign{}, err
	}
	c, err := decodeCampaign(id, out)
	if err != nil {
		return domain.RawCampaign{}, domain.NewTransportError(err)
	}
	if c.Owner == (common.Address{}).Hex() {
		return domain.RawCampaign{}, domain.NewNotFoundError(fmt.Errorf("campaign %d", id))
	}
	return c, nil
}

func (l *Ledger) Balance(ctx context.Context, account string) (*big.Int, error) {
	if !common.IsHexAddress(account) {
		return nil, domain.NewValidationError("invalid account address")
	}
	balance, err := l.backend.BalanceAt(ctx, common.HexToAddress(account), nil)
	if err != nil {
		return nil, domain.NewTransportError(err)
	}
	return balance, nil
}

func (l *Ledger) ContractBalance(ctx context.Context) (*big.Int, error) {
	var out []interface{}
	if err := l.contract.Call(&bind.CallOpts{Context: ctx}, &out, methodGetContractBalance); err != nil {
		return nil, readError(err)
	}
	if len(out) != 1 {
		return nil, domain.NewTransportError(fmt.Errorf("getContractBalance: %d outputs", len(out)))
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

// ChainID returns the id of the network the node is on.
func (l *Ledger) ChainID(ctx context.Context) (int64, error) {
	id, err := l.backend.ChainID(ctx)
	if err != nil {
		return 0, domain.NewTransportError(err)
	}
	return id.Int64(), nil
}

// readError classifies a failed view call. Reverts keep their kind and
// everything else is a transport failure.
func readError(err error) error {
	classified := Classify(err)
	if errors.Is(classified, domain.ErrContractReverted) {
		return classified
	}
	return domain.NewTransportError(err)
}

// decodeCampaigns zips the parallel arrays returned by getCampaigns.
func decodeCampaigns(out []interface{}) ([]domain.RawCampaign, error) {
	if len(out) != 10 {
		return nil, fmt.Errorf("getCampaigns: %d outputs, want 10", len(out))
	}
	ids := *abi.ConvertType(out[0], new([]*big.Int)).(*[]*big.Int)
	owners := *abi.ConvertType(out[1], new([]common.Address)).(*[]common.Address)
	titles := *abi.ConvertType(out[2], new([]string)).(*[]string)
	descriptions := *abi.ConvertType(out[3], new([]string)).(*[]string)
	budgets := *abi.ConvertType(out[4], new([]*big.Int)).(*[]*big.Int)
	rewards := *abi.ConvertType(out[5], new([]*big.Int)).(*[]*big.Int)
	starts := *abi.ConvertType(out[6], new([]*big.Int)).(*[]*big.Int)
	ends := *abi.ConvertType(out[7], new([]*big.Int)).(*[]*big.Int)
	actives := *abi.ConvertType(out[8], new([]bool)).(*[]bool)
	counts := *abi.ConvertType(out[9], new([]*big.Int)).(*[]*big.Int)

	n := len(ids)
	for _, l := range []int{
		len(owners), len(titles), len(descriptions), len(budgets),
		len(rewards), len(starts), len(ends), len(actives), len(counts),
	} {
		if l != n {
			return nil, fmt.Errorf("getCampaigns: array length mismatch (%d != %d)", l, n)
		}
	}

	campaigns := make([]domain.RawCampaign, 0, n)
	for i := 0; i < n; i++ {
		campaigns = append(campaigns, domain.RawCampaign{
			ID:               ids[i].Uint64(),
			Owner:            owners[i].Hex(),
			Title:            titles[i],
			Description:      descriptions[i],
			Budget:           budgets[i],
			Reward:           rewards[i],
			StartTime:        starts[i].Uint64(),
			EndTime:          ends[i].Uint64(),
			IsActive:         actives[i],
			ParticipantCount: counts[i].Uint64(),
		})
	}
	return campaigns, nil
}

func decodeCampaign(id uint64, out []interface{}) (domain.RawCampaign, error) {
	if len(out) != 9 {
		return domain.RawCampaign{}, fmt.Errorf("getCampaignDetails: %d outputs, want 9", len(out))
	}
	return domain.RawCampaign{
		ID:               id,
		Owner:            abi.ConvertType(out[0], new(common.Address)).(*common.Address).Hex(),
		Title:            *abi.ConvertType(out[1], new(string)).(*string),
		Description:      *abi.ConvertType(out[2], new(string)).(*string),
		Budget:           *abi.ConvertType(out[3], new(*big.Int)).(**big.Int),
		Reward:           *abi.ConvertType(out[4], new(*big.Int)).(**big.Int),
		StartTime:        (*abi.ConvertType(out[5], new(*big.Int)).(**big.Int)).Uint64(),
		EndTime:          (*abi.ConvertType(out[6], new(*big.Int)).(**big.Int)).Uint64(),
		IsActive:         *abi.ConvertType(out[7], new(bool)).(*bool),
		ParticipantCount: (*abi.ConvertType(out[8], new(*big.Int)).(**big.Int)).Uint64(),
	}, nil
}
