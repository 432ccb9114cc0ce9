package usecase

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Raviteja659/decentralized-campaign-ai/internal/core/domain"
	"github.com/Raviteja659/decentralized-campaign-ai/internal/core/port"
)

// State is a step of a campaign write flow.
type State string

const (
	StateIdle                     State = "idle"
	StateValidating               State = "validating"
	StateRejected                 State = "rejected"
	StateBuildingDescriptor       State = "building_descriptor"
	StateAwaitingUserConfirmation State = "awaiting_user_confirmation"
	StateCancelled                State = "cancelled"
	StateSubmitting               State = "submitting"
	StateConfirmed                State = "confirmed"
	StateFailed                   State = "failed"
)

// Transition is reported to observers on every state change.
type Transition struct {
	Flow string
	From State
	To   State
}

// Outcome is the terminal result of one flow. Err is set for Rejected and
// Failed outcomes.
type Outcome struct {
	State      State
	Descriptor domain.Descriptor
	Summary    domain.Summary
	Receipt    domain.Receipt
	Err        error
}

// OrchestratorDeps groups the collaborators of an Orchestrator. Store,
// Rates and Confirmer may be nil; without a Confirmer every campaign is
// approved.
type OrchestratorDeps struct {
	Ledger    port.Ledger
	Signer    port.SigningAgent
	Confirmer port.Confirmer
	Registry  *Registry
	Rates     port.RateReader
	Store     port.CampaignStore
	Logger    *slog.Logger

	Currency             string
	RequireParticipation bool
}

// Orchestrator drives campaign creation, participation and claims for one
// session. At most one flow runs at a time.
type Orchestrator struct {
	ledger    port.Ledger
	signer    port.SigningAgent
	confirmer port.Confirmer
	registry  *Registry
	rates     port.RateReader
	currency  string
	actions   *actionRunner
	logger    *slog.Logger
	now       func() time.Time

	busy atomic.Bool

	mu        sync.Mutex
	state     State
	session   *domain.Session
	observers []func(Transition)
}

func NewOrchestrator(d OrchestratorDeps) *Orchestrator {
	o := &Orchestrator{
		ledger:    d.Ledger,
		signer:    d.Signer,
		confirmer: d.Confirmer,
		registry:  d.Registry,
		rates:     d.Rates,
		currency:  d.Currency,
		logger:    d.Logger,
		now:       time.Now,
		state:     StateIdle,
	}
	o.actions = &actionRunner{
		registry:             d.Registry,
		signer:               d.Signer,
		store:                d.Store,
		logger:               d.Logger,
		now:                  func() time.Time { return o.now() },
		requireParticipation: d.RequireParticipation,
	}
	return o
}

// Observe registers fn for every transition.
func (o *Orchestrator) Observe(fn func(Transition)) {
	o.mu.Lock()
	o.observers = append(o.observers, fn)
	o.mu.Unlock()
}

// State returns the current step.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Connect starts a new session for account on chainID.
func (o *Orchestrator) Connect(account string, chainID int64) *domain.Session {
	s := domain.NewSession(account, chainID, o.now())
	o.mu.Lock()
	o.session = s
	o.mu.Unlock()
	return s
}

// Session returns the current session or nil before Connect.
func (o *Orchestrator) Session() *domain.Session {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.session == nil {
		return nil
	}
	s := *o.session
	return &s
}

// Watch resets the session and reloads the registry on every wallet event.
// An account change without an account is a disconnect and only closes the
// session. The returned function stops watching.
func (o *Orchestrator) Watch(ctx context.Context, events port.WalletEvents) func() {
	return events.Subscribe(func(ev domain.WalletEvent) {
		o.handleEvent(ctx, ev)
	})
}

func (o *Orchestrator) handleEvent(ctx context.Context, ev domain.WalletEvent) {
	if ev.Type == domain.AccountChanged && ev.Account == "" {
		o.mu.Lock()
		o.session = nil
		o.mu.Unlock()
		o.logger.Info("session closed", slog.String("event", string(ev.Type)))
		return
	}
	prev := o.Session()
	account, chainID := ev.Account, ev.ChainID
	if prev != nil {
		if account == "" {
			account = prev.Account
		}
		if chainID == 0 {
			chainID = prev.ChainID
		}
	}
	s := o.Connect(account, chainID)
	o.logger.Info("session reset",
		slog.String("event", string(ev.Type)),
		slog.String("account", s.Account),
		slog.Int64("chain_id", s.ChainID),
	)
	if ev.Type == domain.NetworkChanged {
		o.registry.Reset()
	}
	if _, err := o.registry.FetchAll(ctx); err != nil {
		o.logger.Warn("registry reload failed", slog.Any("error", err))
	}
}

// Create runs the full creation flow for req. The returned error is the
// classified reason for Rejected and Failed outcomes and nil otherwise.
func (o *Orchestrator) Create(ctx context.Context, req domain.CampaignRequest) (Outcome, error) {
	if !o.busy.CompareAndSwap(false, true) {
		return Outcome{State: o.State()}, domain.NewValidationError(domain.MsgBusy)
	}
	defer o.busy.Store(false)
	defer o.move("create", StateIdle)

	o.move("create", StateValidating)
	in, err := domain.ValidateCampaign(req)
	if err != nil {
		return o.finish("create", Outcome{State: StateRejected, Err: err})
	}
	from := o.account()
	if from != "" {
		balance, err := o.ledger.Balance(ctx, from)
		if err != nil {
			return o.finish("create", Outcome{State: StateRejected, Err: asTransport(err)})
		}
		if err = domain.CheckBalance(balance, in.Budget); err != nil {
			return o.finish("create", Outcome{State: StateRejected, Err: err})
		}
	}

	o.move("create", StateBuildingDescriptor)
	out := Outcome{Descriptor: domain.BuildCreate(in), Summary: o.summary(in)}

	o.move("create", StateAwaitingUserConfirmation)
	if !o.confirm(ctx, out.Summary) {
		out.State = StateCancelled
		return o.finish("create", out)
	}

	o.move("create", StateSubmitting)
	if o.signer == nil {
		out.State, out.Err = StateFailed, domain.NewTransportError(errNoSigner)
		return o.finish("create", out)
	}
	out.Receipt, err = o.signer.Submit(ctx, from, out.Descriptor)
	if err != nil {
		out.State, out.Err = StateFailed, classified(err)
		return o.finish("create", out)
	}

	out.State = StateConfirmed
	o.finish("create", out)
	if _, err = o.registry.FetchAll(ctx); err != nil {
		o.logger.Warn("registry reload failed", slog.Any("error", err))
	}
	return out, nil
}

// Participate joins campaign id. Only effectively active campaigns accept
// participants.
func (o *Orchestrator) Participate(ctx context.Context, id uint64) (Outcome, error) {
	return o.runAction(ctx, participateAction, id)
}

// Claim claims the reward of campaign id once it is no longer active.
func (o *Orchestrator) Claim(ctx context.Context, id uint64) (Outcome, error) {
	return o.runAction(ctx, claimAction, id)
}

func (o *Orchestrator) runAction(ctx context.Context, act action, id uint64) (Outcome, error) {
	if !o.busy.CompareAndSwap(false, true) {
		return Outcome{State: o.State()}, domain.NewValidationError(domain.MsgBusy)
	}
	defer o.busy.Store(false)
	defer o.move(act.name, StateIdle)

	submitted := false
	receipt, err := o.actions.run(ctx, act, id, o.account(), func() {
		submitted = true
		o.move(act.name, StateSubmitting)
	})
	out := Outcome{Descriptor: act.build(id), Receipt: receipt}
	switch {
	case err == nil:
		out.State = StateConfirmed
	case submitted:
		out.State, out.Err = StateFailed, err
	default:
		out.State, out.Err = StateRejected, err
	}
	return o.finish(act.name, out)
}

func (o *Orchestrator) finish(flow string, out Outcome) (Outcome, error) {
	o.move(flow, out.State)
	if out.Err != nil {
		o.logger.Warn("campaign flow ended",
			slog.String("flow", flow),
			slog.String("state", string(out.State)),
			slog.Any("error", out.Err),
		)
	}
	return out, out.Err
}

func (o *Orchestrator) move(flow string, to State) {
	o.mu.Lock()
	from := o.state
	o.state = to
	observers := append([]func(Transition){}, o.observers...)
	o.mu.Unlock()

	if from == to {
		return
	}
	for _, fn := range observers {
		fn(Transition{Flow: flow, From: from, To: to})
	}
}

func (o *Orchestrator) confirm(ctx context.Context, s domain.Summary) bool {
	if o.confirmer == nil {
		return true
	}
	ok, err := o.confirmer.Confirm(ctx, s)
	if err != nil {
		o.logger.Warn("confirmation aborted", slog.Any("error", err))
		return false
	}
	return ok
}

func (o *Orchestrator) summary(in domain.CampaignInput) domain.Summary {
	if o.rates == nil {
		return domain.NewSummary(in, decimal.Zero, false, o.currency)
	}
	rate, ok := o.rates.CurrentRate()
	return domain.NewSummary(in, rate, ok, o.currency)
}

// account is the acting account: the session's when connected, otherwise
// the signer's.
func (o *Orchestrator) account() string {
	if s := o.Session(); s != nil && s.Account != "" {
		return s.Account
	}
	if o.signer != nil {
		return o.signer.Account()
	}
	return ""
}
