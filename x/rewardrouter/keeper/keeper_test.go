package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/stretchr/testify/require"

	"github.com/nsc-protocol/nsc/app"
	appparams "github.com/nsc-protocol/nsc/app/params"
	"github.com/nsc-protocol/nsc/x/rewardrouter/types"
	rttypes "github.com/nsc-protocol/nsc/x/rewardtracker/types"
	vestertypes "github.com/nsc-protocol/nsc/x/vester/types"
)

const day = 24 * time.Hour

var (
	alice = sdk.AccAddress([]byte("alice_______________"))
	bob   = sdk.AccAddress([]byte("bob_________________"))
	carol = sdk.AccAddress([]byte("carol_______________"))
)

type fixture struct {
	t     *testing.T
	app   *app.NscApp
	route types.Route
}

func newFixture(t *testing.T, accounts ...sdk.AccAddress) *fixture {
	return &fixture{
		t:     t,
		app:   app.Setup(t, accounts...),
		route: types.DefaultRoute(),
	}
}

// block delivers msgs in a block d after the previous one and commits it.
func (f *fixture) block(d time.Duration, msgs ...any) []any {
	f.t.Helper()
	app.NextBlock(f.t, f.app, d)
	res := make([]any, 0, len(msgs))
	for _, msg := range msgs {
		res = append(res, app.Deliver(f.t, f.app, msg))
	}
	require.NoError(f.t, f.app.Commit())
	return res
}

// fail delivers msg in a block d after the previous one and returns its
// error. The block is committed without it.
func (f *fixture) fail(d time.Duration, msg any) error {
	f.t.Helper()
	app.NextBlock(f.t, f.app, d)
	_, _, err := f.app.Deliver(msg)
	require.Error(f.t, err)
	require.NoError(f.t, f.app.Commit())
	return err
}

func (f *fixture) staked(trackerID string, addr sdk.AccAddress) math.Int {
	f.t.Helper()
	amount, err := f.app.RewardTrackerKeeper.StakedAmount(f.app.NewContext(), trackerID, addr)
	require.NoError(f.t, err)
	return amount
}

func (f *fixture) deposited(trackerID string, addr sdk.AccAddress, denom string) math.Int {
	f.t.Helper()
	amount, err := f.app.RewardTrackerKeeper.DepositBalance(f.app.NewContext(), trackerID, addr, denom)
	require.NoError(f.t, err)
	return amount
}

func (f *fixture) receipts(trackerID string, addr sdk.AccAddress) math.Int {
	f.t.Helper()
	amount, err := f.app.RewardTrackerKeeper.ReceiptBalance(f.app.NewContext(), trackerID, addr)
	require.NoError(f.t, err)
	return amount
}

func (f *fixture) balance(addr sdk.AccAddress, denom string) math.Int {
	return f.app.BankKeeper.GetBalance(f.app.NewContext(), addr, denom).Amount
}

func (f *fixture) supply(denom string) math.Int {
	return f.app.BankKeeper.GetSupply(f.app.NewContext(), denom).Amount
}

func TestStakeNscChain(t *testing.T) {
	f := newFixture(t, alice)
	r := f.route

	f.block(time.Second, &types.MsgStakeNsc{Sender: alice.String(), Amount: app.Tokens(60)})

	require.Equal(t, app.Tokens(940), f.balance(alice, r.NscDenom))
	require.Equal(t, app.Tokens(60), f.deposited(r.StakedNscTracker, alice, r.NscDenom))
	require.Equal(t, app.Tokens(60), f.deposited(r.BonusNscTracker, alice, rttypes.ReceiptDenom(r.StakedNscTracker)))
	require.Equal(t, app.Tokens(60), f.deposited(r.FeeNscTracker, alice, rttypes.ReceiptDenom(r.BonusNscTracker)))
	// only the top receipt stays with the account
	require.True(t, f.receipts(r.StakedNscTracker, alice).IsZero())
	require.True(t, f.receipts(r.BonusNscTracker, alice).IsZero())
	require.Equal(t, app.Tokens(60), f.receipts(r.FeeNscTracker, alice))

	err := f.fail(time.Second, &types.MsgStakeNsc{Sender: alice.String(), Amount: math.ZeroInt()})
	require.ErrorIs(t, err, types.ErrInvalidAmount)
	err = f.fail(time.Second, &types.MsgUnstakeNsc{Sender: alice.String(), Amount: app.Tokens(61)})
	require.Error(t, err)

	f.block(time.Second, &types.MsgUnstakeNsc{Sender: alice.String(), Amount: app.Tokens(20)})
	require.Equal(t, app.Tokens(960), f.balance(alice, r.NscDenom))
	for _, id := range []string{r.StakedNscTracker, r.BonusNscTracker, r.FeeNscTracker} {
		require.Equal(t, app.Tokens(40), f.staked(id, alice), id)
	}
}

func TestCompoundAndBonusBurn(t *testing.T) {
	f := newFixture(t, alice)
	r := f.route

	f.block(time.Second, &types.MsgStakeNsc{Sender: alice.String(), Amount: app.Tokens(100)})
	f.block(30*day, &types.MsgCompound{Sender: alice.String()})

	esStaked := f.deposited(r.StakedNscTracker, alice, r.EsNscDenom)
	require.True(t, esStaked.IsPositive())
	bnStaked := f.deposited(r.FeeNscTracker, alice, r.BnNscDenom)
	require.True(t, bnStaked.IsPositive())
	// 50% a year on 100 NSC for 30 days
	require.True(t, bnStaked.LTE(app.Tokens(5)), bnStaked.String())

	staked := f.staked(r.StakedNscTracker, alice)
	require.Equal(t, app.Tokens(100).Add(esStaked), staked)
	bnSupply := f.supply(r.BnNscDenom)

	// same block time, so no bonus points accrue before the burn
	unstake := app.Tokens(50)
	f.block(0, &types.MsgUnstakeNsc{Sender: alice.String(), Amount: unstake})

	reduction := bnStaked.Mul(unstake).Quo(staked)
	require.True(t, reduction.IsPositive())
	require.Equal(t, bnStaked.Sub(reduction), f.deposited(r.FeeNscTracker, alice, r.BnNscDenom))
	require.Equal(t, bnSupply.Sub(reduction), f.supply(r.BnNscDenom))
	require.True(t, f.balance(alice, r.BnNscDenom).IsZero())

	// unstaking esNSC burns bonus points as well
	bnStaked = f.deposited(r.FeeNscTracker, alice, r.BnNscDenom)
	staked = f.staked(r.StakedNscTracker, alice)
	esUnstake := esStaked.QuoRaw(2)
	f.block(0, &types.MsgUnstakeEsNsc{Sender: alice.String(), Amount: esUnstake})
	reduction = bnStaked.Mul(esUnstake).Quo(staked)
	require.Equal(t, bnStaked.Sub(reduction), f.deposited(r.FeeNscTracker, alice, r.BnNscDenom))
	require.Equal(t, esUnstake, f.balance(alice, r.EsNscDenom))
}

func TestStakeNlpChain(t *testing.T) {
	f := newFixture(t, alice)
	r := f.route

	f.block(time.Second, &types.MsgStakeNlp{Sender: alice.String(), Amount: app.Tokens(20)})
	require.Equal(t, app.Tokens(20), f.staked(r.FeeNlpTracker, alice))
	require.Equal(t, app.Tokens(20), f.staked(r.StakedNlpTracker, alice))
	require.Equal(t, app.Tokens(980), f.balance(alice, r.NlpDenom))

	err := f.fail(time.Second, &types.MsgUnstakeNlp{Sender: alice.String(), Amount: app.Tokens(21)})
	require.Error(t, err)

	f.block(time.Second, &types.MsgUnstakeNlp{Sender: alice.String(), Amount: app.Tokens(5)})
	require.Equal(t, app.Tokens(15), f.staked(r.FeeNlpTracker, alice))
	require.Equal(t, app.Tokens(15), f.staked(r.StakedNlpTracker, alice))
	require.Equal(t, app.Tokens(985), f.balance(alice, r.NlpDenom))
}

func TestClaimRewards(t *testing.T) {
	f := newFixture(t, alice)
	r := f.route

	f.block(time.Second,
		&types.MsgStakeNsc{Sender: alice.String(), Amount: app.Tokens(100)},
		&types.MsgStakeNlp{Sender: alice.String(), Amount: app.Tokens(100)},
	)

	res := f.block(time.Hour, &types.MsgClaimEsNsc{Sender: alice.String()})
	es := res[0].(*types.MsgClaimEsNscResponse).Amount
	require.True(t, es.IsPositive())
	require.Equal(t, es, f.balance(alice, r.EsNscDenom))

	res = f.block(time.Hour, &types.MsgClaimFees{Sender: alice.String()})
	fees := res[0].(*types.MsgClaimFeesResponse).Amount
	require.True(t, fees.IsPositive())
	require.Equal(t, fees, f.balance(alice, appparams.FeeDenom))

	res = f.block(time.Hour, &types.MsgClaim{Sender: alice.String()})
	claim := res[0].(*types.MsgClaimResponse)
	require.True(t, claim.EsNsc.IsPositive())
	require.True(t, claim.Fees.IsPositive())
	require.Equal(t, es.Add(claim.EsNsc), f.balance(alice, r.EsNscDenom))
	require.Equal(t, fees.Add(claim.Fees), f.balance(alice, appparams.FeeDenom))
}

func TestHandleRewards(t *testing.T) {
	f := newFixture(t, alice)
	r := f.route

	f.block(time.Second,
		&types.MsgStakeNsc{Sender: alice.String(), Amount: app.Tokens(100)},
		&types.MsgStakeNlp{Sender: alice.String(), Amount: app.Tokens(100)},
	)
	res := f.block(day, &types.MsgHandleRewards{
		Sender: alice.String(),
		Options: types.HandleRewardsOptions{
			ClaimNsc:              true,
			StakeNsc:              true,
			ClaimEsNsc:            true,
			StakeEsNsc:            true,
			StakeMultiplierPoints: true,
			ClaimFees:             true,
		},
	})
	result := res[0].(*types.MsgHandleRewardsResponse).Result

	// nothing vests without deposits
	require.True(t, result.Nsc.IsZero())
	require.True(t, result.EsNsc.IsPositive())
	require.True(t, result.BnNsc.IsPositive())
	require.True(t, result.Fees.IsPositive())

	require.Equal(t, result.EsNsc, f.deposited(r.StakedNscTracker, alice, r.EsNscDenom))
	require.Equal(t, result.BnNsc, f.deposited(r.FeeNscTracker, alice, r.BnNscDenom))
	require.Equal(t, result.Fees, f.balance(alice, appparams.FeeDenom))
	require.True(t, f.balance(alice, r.EsNscDenom).IsZero())
}

func TestGovOnlyOperations(t *testing.T) {
	gov := appparams.AccGov
	f := newFixture(t, alice, gov)
	r := f.route

	err := f.fail(time.Second, &types.MsgStakeNscForAccount{Sender: alice.String(), Account: bob.String(), Amount: app.Tokens(1)})
	require.ErrorIs(t, err, types.ErrForbidden)
	err = f.fail(time.Second, &types.MsgBatchCompoundForAccounts{Sender: alice.String(), Accounts: []string{alice.String()}})
	require.ErrorIs(t, err, types.ErrForbidden)
	err = f.fail(time.Second, &types.MsgSetRoute{Authority: alice.String(), Route: r})
	require.ErrorIs(t, err, govtypes.ErrInvalidSigner)

	f.block(time.Second,
		&types.MsgStakeNscForAccount{Sender: gov.String(), Account: bob.String(), Amount: app.Tokens(10)},
		&types.MsgStakeNsc{Sender: alice.String(), Amount: app.Tokens(10)},
	)
	require.Equal(t, app.Tokens(10), f.staked(r.FeeNscTracker, bob))
	require.Equal(t, app.Tokens(990), f.balance(gov, r.NscDenom))

	f.block(day, &types.MsgBatchCompoundForAccounts{
		Sender:   gov.String(),
		Accounts: []string{alice.String(), bob.String()},
	})
	require.True(t, f.deposited(r.StakedNscTracker, alice, r.EsNscDenom).IsPositive())
	require.True(t, f.deposited(r.StakedNscTracker, bob, r.EsNscDenom).IsPositive())
}

func TestSignalAndAcceptTransfer(t *testing.T) {
	f := newFixture(t, alice, bob)
	r := f.route
	k := f.app.RewardRouterKeeper

	f.block(time.Second,
		&types.MsgStakeNsc{Sender: alice.String(), Amount: app.Tokens(100)},
		&types.MsgStakeNlp{Sender: alice.String(), Amount: app.Tokens(50)},
	)
	f.block(day, &types.MsgClaimEsNsc{Sender: alice.String()})
	wallet := f.balance(alice, r.EsNscDenom)
	require.True(t, wallet.IsPositive())

	// a later signal replaces an earlier one
	f.block(time.Second,
		&types.MsgSignalTransfer{Sender: alice.String(), Receiver: bob.String()},
		&types.MsgSignalTransfer{Sender: alice.String(), Receiver: carol.String()},
	)
	pending, err := k.PendingReceiver(f.app.NewContext(), alice)
	require.NoError(t, err)
	require.Equal(t, carol, pending)

	err = f.fail(time.Second, &types.MsgAcceptTransfer{Receiver: bob.String(), Sender: alice.String()})
	require.ErrorIs(t, err, types.ErrTransferNotSignalled)

	f.block(time.Second, &types.MsgAcceptTransfer{Receiver: carol.String(), Sender: alice.String()})

	for _, id := range r.Trackers() {
		require.True(t, f.staked(id, alice).IsZero(), id)
	}
	require.True(t, app.Tokens(100).LT(f.staked(r.StakedNscTracker, carol)), "pending esNSC is compounded")
	require.Equal(t, app.Tokens(50), f.staked(r.StakedNlpTracker, carol))
	require.Equal(t, wallet, f.balance(carol, r.EsNscDenom))
	require.True(t, f.balance(alice, r.EsNscDenom).IsZero())

	pending, err = k.PendingReceiver(f.app.NewContext(), alice)
	require.NoError(t, err)
	require.Nil(t, pending)

	err = f.fail(time.Second, &types.MsgAcceptTransfer{Receiver: carol.String(), Sender: alice.String()})
	require.ErrorIs(t, err, types.ErrTransferNotSignalled)
}

func TestTransferRejections(t *testing.T) {
	f := newFixture(t, alice, bob)
	r := f.route

	f.block(time.Second,
		&types.MsgStakeNsc{Sender: alice.String(), Amount: app.Tokens(100)},
		&types.MsgStakeNsc{Sender: bob.String(), Amount: app.Tokens(10)},
	)

	err := f.fail(time.Second, &types.MsgSignalTransfer{Sender: alice.String(), Receiver: alice.String()})
	require.ErrorIs(t, err, types.ErrInvalidAddress)
	err = f.fail(time.Second, &types.MsgSignalTransfer{Sender: alice.String(), Receiver: bob.String()})
	require.ErrorIs(t, err, types.ErrAverageStakedAmountNonZero)

	// escrow in a vester blocks both sides of the protocol
	f.block(time.Second, &types.MsgSignalTransfer{Sender: alice.String(), Receiver: carol.String()})
	res := f.block(day, &types.MsgClaimEsNsc{Sender: alice.String()})
	es := res[0].(*types.MsgClaimEsNscResponse).Amount
	require.True(t, es.IsPositive())
	f.block(time.Second, &vestertypes.MsgDeposit{Sender: alice.String(), VesterID: r.NscVester, Amount: es.QuoRaw(2)})
	require.True(t, f.receipts(r.FeeNscTracker, alice).LT(app.Tokens(100)), "pair receipts are escrowed")

	err = f.fail(time.Second, &types.MsgAcceptTransfer{Receiver: carol.String(), Sender: alice.String()})
	require.ErrorIs(t, err, types.ErrSenderHasVestedTokens)
	err = f.fail(time.Second, &types.MsgSignalTransfer{Sender: alice.String(), Receiver: carol.String()})
	require.ErrorIs(t, err, types.ErrSenderHasVestedTokens)

	// a receiver that staked after the signal is rejected on accept
	f.block(time.Second, &types.MsgSignalTransfer{Sender: bob.String(), Receiver: carol.String()})
	f.block(time.Second, &vestertypes.MsgWithdraw{Sender: alice.String(), VesterID: r.NscVester})
	f.block(time.Second,
		&types.MsgAcceptTransfer{Receiver: carol.String(), Sender: alice.String()},
	)
	err = f.fail(time.Second, &types.MsgAcceptTransfer{Receiver: carol.String(), Sender: bob.String()})
	require.ErrorIs(t, err, types.ErrAverageStakedAmountNonZero)
}
