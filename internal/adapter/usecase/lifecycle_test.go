package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Raviteja659/decentralized-campaign-ai/internal/core/domain"
	"github.com/Raviteja659/decentralized-campaign-ai/internal/core/port/mocks"
)

const account = "0x00000000000000000000000000000000000000b2"

type fixedRate struct {
	rate decimal.Decimal
	ok   bool
}

func (f fixedRate) CurrentRate() (decimal.Decimal, bool) { return f.rate, f.ok }

// walletFeed is an in-memory port.WalletEvents.
type walletFeed struct {
	mu  sync.Mutex
	fns []func(domain.WalletEvent)
}

func (w *walletFeed) Subscribe(fn func(domain.WalletEvent)) func() {
	w.mu.Lock()
	w.fns = append(w.fns, fn)
	w.mu.Unlock()
	return func() {
		w.mu.Lock()
		w.fns = nil
		w.mu.Unlock()
	}
}

func (w *walletFeed) publish(ev domain.WalletEvent) {
	w.mu.Lock()
	fns := append([]func(domain.WalletEvent){}, w.fns...)
	w.mu.Unlock()
	for _, fn := range fns {
		fn(ev)
	}
}

type orchestratorFixture struct {
	ledger    *mocks.MockLedger
	signer    *mocks.MockSigningAgent
	confirmer *mocks.MockConfirmer
	store     *mocks.MockCampaignStore
	orch      *Orchestrator
	moves     []Transition
}

func newOrchestratorFixture(t *testing.T, requireParticipation bool) *orchestratorFixture {
	f := &orchestratorFixture{
		ledger:    mocks.NewMockLedger(t),
		signer:    mocks.NewMockSigningAgent(t),
		confirmer: mocks.NewMockConfirmer(t),
		store:     mocks.NewMockCampaignStore(t),
	}
	f.signer.EXPECT().Account().Return(account).Maybe()
	f.orch = NewOrchestrator(OrchestratorDeps{
		Ledger:               f.ledger,
		Signer:               f.signer,
		Confirmer:            f.confirmer,
		Registry:             NewRegistry(f.ledger, nil, testLogger()),
		Rates:                fixedRate{rate: decimal.NewFromInt(2000), ok: true},
		Store:                f.store,
		Logger:               testLogger(),
		Currency:             "usd",
		RequireParticipation: requireParticipation,
	})
	f.orch.now = func() time.Time { return testNow }
	f.orch.Connect(account, 11155111)
	f.orch.Observe(func(tr Transition) { f.moves = append(f.moves, tr) })
	return f
}

func (f *orchestratorFixture) states() []State {
	out := make([]State, 0, len(f.moves))
	for _, m := range f.moves {
		out = append(out, m.To)
	}
	return out
}

func launchRequest() domain.CampaignRequest {
	return domain.CampaignRequest{
		Title:        "Launch",
		Description:  "D",
		Budget:       "1.0",
		Reward:       "0.5",
		DurationDays: "7",
	}
}

func TestCreateConfirmed(t *testing.T) {
	f := newOrchestratorFixture(t, false)
	receipt := domain.Receipt{TxHash: "0xfeed", BlockNumber: 10}

	f.ledger.EXPECT().Balance(mock.Anything, account).Return(eth(5), nil)
	f.confirmer.EXPECT().Confirm(mock.Anything, mock.MatchedBy(func(s domain.Summary) bool {
		return s.BudgetFiat == "2000.00" && s.RewardFiat == "1000.00" && s.Currency == "USD"
	})).Return(true, nil)
	f.signer.EXPECT().Submit(mock.Anything, account, mock.MatchedBy(func(d domain.Descriptor) bool {
		return d.Method == domain.MethodCreateCampaign && d.Value == "1000000000000000000"
	})).Return(receipt, nil)
	f.ledger.EXPECT().Campaigns(mock.Anything).Return([]domain.RawCampaign{rawCampaign(0, true, testNow.Add(time.Hour))}, nil)

	out, err := f.orch.Create(context.Background(), launchRequest())

	require.NoError(t, err)
	assert.Equal(t, StateConfirmed, out.State)
	assert.Equal(t, receipt, out.Receipt)
	assert.Equal(t, []any{"Launch", "D", "1000000000000000000", "500000000000000000", uint64(604800)}, out.Descriptor.Params)
	assert.Equal(t, []State{
		StateValidating,
		StateBuildingDescriptor,
		StateAwaitingUserConfirmation,
		StateSubmitting,
		StateConfirmed,
		StateIdle,
	}, f.states())
	assert.Equal(t, StateIdle, f.orch.State())

	cached, ok := f.orch.registry.Cached()
	assert.True(t, ok)
	assert.Len(t, cached, 1)
}

func TestCreateRejectsRewardAboveBudget(t *testing.T) {
	f := newOrchestratorFixture(t, false)
	req := launchRequest()
	req.Budget, req.Reward = "1", "2"

	out, err := f.orch.Create(context.Background(), req)

	require.Error(t, err)
	assert.Equal(t, StateRejected, out.State)
	assert.Equal(t, domain.MsgRewardExceedsBudget, domain.UserMessage(err))
	assert.Empty(t, out.Descriptor.Method)
	assert.Equal(t, []State{StateValidating, StateRejected, StateIdle}, f.states())
}

func TestCreateRejectsInsufficientBalance(t *testing.T) {
	f := newOrchestratorFixture(t, false)
	f.ledger.EXPECT().Balance(mock.Anything, account).Return(eth(0), nil)

	out, err := f.orch.Create(context.Background(), launchRequest())

	require.Error(t, err)
	assert.Equal(t, StateRejected, out.State)
	assert.Equal(t, domain.MsgInsufficientBalance, domain.UserMessage(err))
}

func TestCreateCancelled(t *testing.T) {
	f := newOrchestratorFixture(t, false)
	f.ledger.EXPECT().Balance(mock.Anything, account).Return(eth(5), nil)
	f.confirmer.EXPECT().Confirm(mock.Anything, mock.Anything).Return(false, nil)

	out, err := f.orch.Create(context.Background(), launchRequest())

	require.NoError(t, err)
	assert.Equal(t, StateCancelled, out.State)
	assert.Equal(t, domain.Receipt{}, out.Receipt)
	assert.NotContains(t, f.states(), StateSubmitting)
}

// A signing failure must not reload the registry: the mock ledger fails the
// test on any unexpected Campaigns call.
func TestCreateInsufficientFundsSkipsReload(t *testing.T) {
	f := newOrchestratorFixture(t, false)
	f.ledger.EXPECT().Campaigns(mock.Anything).Return([]domain.RawCampaign{rawCampaign(0, true, testNow)}, nil).Once()
	_, err := f.orch.registry.FetchAll(context.Background())
	require.NoError(t, err)

	f.ledger.EXPECT().Balance(mock.Anything, account).Return(eth(5), nil)
	f.confirmer.EXPECT().Confirm(mock.Anything, mock.Anything).Return(true, nil)
	f.signer.EXPECT().Submit(mock.Anything, account, mock.Anything).
		Return(domain.Receipt{}, domain.NewInsufficientFundsError(errors.New("insufficient funds for gas * price + value")))

	out, err := f.orch.Create(context.Background(), launchRequest())

	require.Error(t, err)
	assert.Equal(t, StateFailed, out.State)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	cached, _ := f.orch.registry.Cached()
	assert.Len(t, cached, 1)
	assert.Equal(t, StateIdle, f.orch.State())
}

func TestCreateUnclassifiedFailureIsUnknown(t *testing.T) {
	f := newOrchestratorFixture(t, false)
	f.ledger.EXPECT().Balance(mock.Anything, account).Return(eth(5), nil)
	f.confirmer.EXPECT().Confirm(mock.Anything, mock.Anything).Return(true, nil)
	f.signer.EXPECT().Submit(mock.Anything, account, mock.Anything).Return(domain.Receipt{}, errors.New("boom"))

	_, err := f.orch.Create(context.Background(), launchRequest())

	assert.Equal(t, domain.KindUnknown, domain.KindOf(err))
	assert.Equal(t, "Transaction failed", domain.UserMessage(err))
}

func TestCreateSingleFlight(t *testing.T) {
	f := newOrchestratorFixture(t, false)
	entered := make(chan struct{})
	release := make(chan struct{})

	f.ledger.EXPECT().Balance(mock.Anything, account).Return(eth(5), nil)
	f.confirmer.EXPECT().Confirm(mock.Anything, mock.Anything).RunAndReturn(func(context.Context, domain.Summary) (bool, error) {
		close(entered)
		<-release
		return false, nil
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = f.orch.Create(context.Background(), launchRequest())
	}()
	<-entered

	_, err := f.orch.Create(context.Background(), launchRequest())
	require.Error(t, err)
	assert.Equal(t, domain.MsgBusy, domain.UserMessage(err))

	close(release)
	<-done

	f.ledger.EXPECT().Campaign(mock.Anything, uint64(99)).Return(domain.RawCampaign{}, domain.NewNotFoundError(nil))
	_, err = f.orch.Participate(context.Background(), 99)
	assert.NotEqual(t, domain.MsgBusy, domain.UserMessage(err))
}

func TestParticipateGatedByActiveness(t *testing.T) {
	f := newOrchestratorFixture(t, false)
	f.ledger.EXPECT().Campaign(mock.Anything, uint64(1)).Return(rawCampaign(1, true, testNow.Add(-time.Second)), nil)

	out, err := f.orch.Participate(context.Background(), 1)

	require.Error(t, err)
	assert.Equal(t, StateRejected, out.State)
	assert.Equal(t, domain.MsgNotActive, domain.UserMessage(err))
}

func TestParticipateRecordsAndReloads(t *testing.T) {
	f := newOrchestratorFixture(t, false)
	raw := rawCampaign(1, true, testNow.Add(time.Hour))
	receipt := domain.Receipt{TxHash: "0xabc"}

	f.ledger.EXPECT().Campaign(mock.Anything, uint64(1)).Return(raw, nil)
	f.signer.EXPECT().Submit(mock.Anything, account, domain.BuildParticipate(1)).Return(receipt, nil)
	f.store.EXPECT().RecordParticipation(mock.Anything, domain.Participation{
		CampaignID: 1, Account: account, TxHash: "0xabc", CreatedAt: testNow,
	}).Return(nil)
	f.ledger.EXPECT().Campaigns(mock.Anything).Return([]domain.RawCampaign{raw}, nil)

	out, err := f.orch.Participate(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, StateConfirmed, out.State)
	assert.Equal(t, []State{StateSubmitting, StateConfirmed, StateIdle}, f.states())
}

func TestClaimRequiresEndedCampaign(t *testing.T) {
	f := newOrchestratorFixture(t, false)
	f.ledger.EXPECT().Campaign(mock.Anything, uint64(1)).Return(rawCampaign(1, true, testNow.Add(time.Hour)), nil)

	_, err := f.orch.Claim(context.Background(), 1)

	assert.Equal(t, domain.MsgNotEnded, domain.UserMessage(err))
}

func TestClaimRequiresParticipation(t *testing.T) {
	f := newOrchestratorFixture(t, true)
	f.ledger.EXPECT().Campaign(mock.Anything, uint64(1)).Return(rawCampaign(1, false, testNow), nil)
	f.store.EXPECT().HasParticipated(mock.Anything, uint64(1), account).Return(false, nil)

	out, err := f.orch.Claim(context.Background(), 1)

	assert.Equal(t, StateRejected, out.State)
	assert.Equal(t, domain.MsgNotParticipant, domain.UserMessage(err))
}

func TestClaimReverted(t *testing.T) {
	f := newOrchestratorFixture(t, true)
	f.ledger.EXPECT().Campaign(mock.Anything, uint64(1)).Return(rawCampaign(1, false, testNow), nil)
	f.store.EXPECT().HasParticipated(mock.Anything, uint64(1), account).Return(true, nil)
	f.signer.EXPECT().Submit(mock.Anything, account, domain.BuildClaim(1)).
		Return(domain.Receipt{}, domain.NewRevertedError("Reward already claimed", nil))

	out, err := f.orch.Claim(context.Background(), 1)

	assert.Equal(t, StateFailed, out.State)
	assert.ErrorIs(t, err, domain.ErrContractReverted)
	assert.Equal(t, "Reward already claimed", domain.UserMessage(err))
}

func TestWalletEventsResetSession(t *testing.T) {
	f := newOrchestratorFixture(t, false)
	feed := &walletFeed{}
	before := f.orch.Session()

	f.ledger.EXPECT().Campaigns(mock.Anything).Return([]domain.RawCampaign{}, nil).Twice()

	stop := f.orch.Watch(context.Background(), feed)
	feed.publish(domain.WalletEvent{Type: domain.NetworkChanged, ChainID: 1})

	s := f.orch.Session()
	require.NotNil(t, s)
	assert.NotEqual(t, before.ID, s.ID)
	assert.Equal(t, int64(1), s.ChainID)
	assert.Equal(t, account, s.Account)

	next := "0x00000000000000000000000000000000000000c3"
	feed.publish(domain.WalletEvent{Type: domain.AccountChanged, Account: next})
	assert.Equal(t, next, f.orch.Session().Account)
	assert.Equal(t, int64(1), f.orch.Session().ChainID)

	stop()
	feed.publish(domain.WalletEvent{Type: domain.AccountChanged, Account: account})
	assert.Equal(t, next, f.orch.Session().Account)
}

func TestWalletDisconnectClosesSession(t *testing.T) {
	f := newOrchestratorFixture(t, false)
	feed := &walletFeed{}

	stop := f.orch.Watch(context.Background(), feed)
	defer stop()
	feed.publish(domain.WalletEvent{Type: domain.AccountChanged})

	assert.Nil(t, f.orch.Session())
}

func TestActionsRejectSessionOtherThanSigner(t *testing.T) {
	other := "0x00000000000000000000000000000000000000c3"

	t.Run("participate", func(t *testing.T) {
		f := newOrchestratorFixture(t, false)
		f.orch.Connect(other, 11155111)

		out, err := f.orch.Participate(context.Background(), 1)

		assert.Equal(t, StateRejected, out.State)
		assert.ErrorIs(t, err, domain.ErrUserRejected)
	})
	t.Run("claim", func(t *testing.T) {
		f := newOrchestratorFixture(t, true)
		f.orch.Connect(other, 11155111)

		out, err := f.orch.Claim(context.Background(), 1)

		assert.Equal(t, StateRejected, out.State)
		assert.ErrorIs(t, err, domain.ErrUserRejected)
	})
}

func TestClaimChecksParticipationOfSigner(t *testing.T) {
	f := newOrchestratorFixture(t, true)
	f.orch.Connect("0x00000000000000000000000000000000000000B2", 11155111)
	raw := rawCampaign(1, false, testNow)

	f.ledger.EXPECT().Campaign(mock.Anything, uint64(1)).Return(raw, nil)
	f.store.EXPECT().HasParticipated(mock.Anything, uint64(1), account).Return(true, nil)
	f.signer.EXPECT().Submit(mock.Anything, account, domain.BuildClaim(1)).Return(domain.Receipt{TxHash: "0x2"}, nil)
	f.ledger.EXPECT().Campaigns(mock.Anything).Return([]domain.RawCampaign{raw}, nil)

	out, err := f.orch.Claim(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, StateConfirmed, out.State)
}
