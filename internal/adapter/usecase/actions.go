package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Raviteja659/decentralized-campaign-ai/internal/core/domain"
	"github.com/Raviteja659/decentralized-campaign-ai/internal/core/port"
)

// action is a single-call campaign write: participation or reward claim.
type action struct {
	name  string
	build func(id uint64) domain.Descriptor
	gate  func(c domain.Campaign, now time.Time) bool
	// denied is the validation message returned when gate fails.
	denied string
	// records marks actions whose confirmation is stored as a participation.
	records bool
	// needsParticipation marks actions subject to the participation policy.
	needsParticipation bool
}

var (
	participateAction = action{
		name:    "participate",
		build:   domain.BuildParticipate,
		gate:    domain.Campaign.CanParticipate,
		denied:  domain.MsgNotActive,
		records: true,
	}
	claimAction = action{
		name:               "claim",
		build:              domain.BuildClaim,
		gate:               domain.Campaign.CanClaim,
		denied:             domain.MsgNotEnded,
		needsParticipation: true,
	}
)

// actionRunner executes participation and claim flows. It is shared by the
// orchestrator and the proxy service.
type actionRunner struct {
	registry *Registry
	signer   port.SigningAgent
	store    port.CampaignStore
	logger   *slog.Logger
	now      func() time.Time

	requireParticipation bool
}

// run gates the campaign, submits the descriptor and reloads the registry
// on success. step is called when the flow starts submitting.
func (a *actionRunner) run(ctx context.Context, act action, id uint64, account string, step func()) (domain.Receipt, error) {
	if a.signer == nil {
		return domain.Receipt{}, domain.NewTransportError(errNoSigner)
	}
	// The signer is the only account that can act on the ledger here, so
	// it is also the account that gets gated and recorded.
	signer := a.signer.Account()
	if account == "" {
		account = signer
	}
	if !strings.EqualFold(account, signer) {
		return domain.Receipt{}, domain.NewUserRejectedError(fmt.Errorf("%w: %s", errForeignAccount, account))
	}
	account = signer

	c, err := a.registry.FetchOne(ctx, id)
	if err != nil {
		return domain.Receipt{}, err
	}
	if !act.gate(c, a.now()) {
		return domain.Receipt{}, domain.NewValidationError(act.denied)
	}
	if act.needsParticipation && a.requireParticipation && a.store != nil {
		ok, err := a.store.HasParticipated(ctx, id, account)
		if err != nil {
			return domain.Receipt{}, domain.NewTransportError(err)
		}
		if !ok {
			return domain.Receipt{}, domain.NewValidationError(domain.MsgNotParticipant)
		}
	}

	if step != nil {
		step()
	}
	receipt, err := a.signer.Submit(ctx, account, act.build(id))
	if err != nil {
		return domain.Receipt{}, classified(err)
	}

	a.logger.Info("campaign action confirmed",
		slog.String("action", act.name),
		slog.Uint64("campaign_id", id),
		slog.String("account", account),
		slog.String("tx", receipt.TxHash),
	)

	if act.records && a.store != nil {
		p := domain.Participation{CampaignID: id, Account: account, TxHash: receipt.TxHash, CreatedAt: a.now()}
		if err = a.store.RecordParticipation(ctx, p); err != nil {
			a.logger.Warn("participation record failed", slog.Any("error", err))
		}
	}
	if _, err = a.registry.FetchAll(ctx); err != nil {
		a.logger.Warn("registry reload failed", slog.Any("error", err))
	}
	return receipt, nil
}

var (
	errNoSigner       = errors.New("no signing account configured")
	errForeignAccount = errors.New("account is not the signing account")
)

// classified makes sure err carries a domain kind. Signing agents classify
// their own failures; anything that slipped through is unknown.
func classified(err error) error {
	var e *domain.Error
	if errors.As(err, &e) {
		return err
	}
	return domain.NewUnknownError(err)
}
