package app

import (
	"context"
	"fmt"
	"reflect"
	"sort"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	rewardclaimerkeeper "github.com/nsc-protocol/nsc/x/rewardclaimer/keeper"
	rewardclaimertypes "github.com/nsc-protocol/nsc/x/rewardclaimer/types"
	rewardrouterkeeper "github.com/nsc-protocol/nsc/x/rewardrouter/keeper"
	rewardroutertypes "github.com/nsc-protocol/nsc/x/rewardrouter/types"
	rewardtrackerkeeper "github.com/nsc-protocol/nsc/x/rewardtracker/keeper"
	rewardtrackertypes "github.com/nsc-protocol/nsc/x/rewardtracker/types"
	vesterkeeper "github.com/nsc-protocol/nsc/x/vester/keeper"
	vestertypes "github.com/nsc-protocol/nsc/x/vester/types"
)

type msgHandler func(ctx sdk.Context, msg any) (any, error)

type msgRoute struct {
	name    string
	typ     reflect.Type
	handler msgHandler
}

// MsgRouter dispatches messages to the module message servers by their Go
// type. Every message is also addressable by its name, "<module>/<MsgType>".
type MsgRouter struct {
	byType map[reflect.Type]*msgRoute
	byName map[string]*msgRoute
}

func NewMsgRouter() *MsgRouter {
	return &MsgRouter{
		byType: make(map[reflect.Type]*msgRoute),
		byName: make(map[string]*msgRoute),
	}
}

// registerHandler routes messages of type *Req to h.
func registerHandler[Req, Res any](r *MsgRouter, moduleName string, h func(context.Context, *Req) (*Res, error)) {
	typ := reflect.TypeOf((*Req)(nil))
	name := moduleName + "/" + typ.Elem().Name()
	if _, ok := r.byType[typ]; ok {
		panic(fmt.Sprintf("handler for %s already registered", name))
	}
	route := &msgRoute{
		name: name,
		typ:  typ,
		handler: func(ctx sdk.Context, msg any) (any, error) {
			return h(ctx, msg.(*Req))
		},
	}
	r.byType[typ] = route
	r.byName[name] = route
}

// Handle runs msg through its message server.
func (r *MsgRouter) Handle(ctx sdk.Context, msg any) (any, error) {
	route, ok := r.byType[reflect.TypeOf(msg)]
	if !ok {
		return nil, sdkerrors.ErrUnknownRequest.Wrapf("unrecognized message type %T", msg)
	}
	return route.handler(ctx, msg)
}

// NewMsg returns a new zero message for name.
func (r *MsgRouter) NewMsg(name string) (any, error) {
	route, ok := r.byName[name]
	if !ok {
		return nil, sdkerrors.ErrUnknownRequest.Wrapf("unrecognized message %s", name)
	}
	return reflect.New(route.typ.Elem()).Interface(), nil
}

// MsgNames returns the names of all routed messages, sorted.
func (r *MsgRouter) MsgNames() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MsgName returns the short name of a message, e.g. "MsgStakeNsc".
func MsgName(msg any) string {
	typ := reflect.TypeOf(msg)
	if typ == nil {
		return ""
	}
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	return typ.Name()
}

func (app *NscApp) registerMsgServers() {
	r := app.msgRouter

	rt := rewardtrackerkeeper.NewMsgServerImpl(app.RewardTrackerKeeper)
	const rtName = rewardtrackertypes.ModuleName
	registerHandler(r, rtName, rt.CreateTracker)
	registerHandler(r, rtName, rt.CreateDistributor)
	registerHandler(r, rtName, rt.Initialize)
	registerHandler(r, rtName, rt.Stake)
	registerHandler(r, rtName, rt.StakeForAccount)
	registerHandler(r, rtName, rt.Unstake)
	registerHandler(r, rtName, rt.UnstakeForAccount)
	registerHandler(r, rtName, rt.Claim)
	registerHandler(r, rtName, rt.ClaimForAccount)
	registerHandler(r, rtName, rt.Transfer)
	registerHandler(r, rtName, rt.Approve)
	registerHandler(r, rtName, rt.TransferFrom)
	registerHandler(r, rtName, rt.SetTrackerGov)
	registerHandler(r, rtName, rt.SetDepositToken)
	registerHandler(r, rtName, rt.SetPrivateMode)
	registerHandler(r, rtName, rt.SetHandler)
	registerHandler(r, rtName, rt.WithdrawToken)
	registerHandler(r, rtName, rt.UpdateLastDistributionTime)
	registerHandler(r, rtName, rt.SetTokensPerInterval)
	registerHandler(r, rtName, rt.SetBonusMultiplier)
	registerHandler(r, rtName, rt.SetDistributorGov)
	registerHandler(r, rtName, rt.WithdrawDistributorToken)

	vester := vesterkeeper.NewMsgServerImpl(app.VesterKeeper)
	const vesterName = vestertypes.ModuleName
	registerHandler(r, vesterName, vester.CreateVester)
	registerHandler(r, vesterName, vester.Deposit)
	registerHandler(r, vesterName, vester.DepositForAccount)
	registerHandler(r, vesterName, vester.Claim)
	registerHandler(r, vesterName, vester.ClaimForAccount)
	registerHandler(r, vesterName, vester.Withdraw)
	registerHandler(r, vesterName, vester.SetAccountValue)
	registerHandler(r, vesterName, vester.TransferStakeValues)
	registerHandler(r, vesterName, vester.SetHandler)
	registerHandler(r, vesterName, vester.SetGov)
	registerHandler(r, vesterName, vester.SetHasMaxVestableAmount)
	registerHandler(r, vesterName, vester.WithdrawToken)

	router := rewardrouterkeeper.NewMsgServerImpl(app.RewardRouterKeeper)
	const routerName = rewardroutertypes.ModuleName
	registerHandler(r, routerName, router.SetRoute)
	registerHandler(r, routerName, router.StakeNsc)
	registerHandler(r, routerName, router.StakeNscForAccount)
	registerHandler(r, routerName, router.StakeEsNsc)
	registerHandler(r, routerName, router.UnstakeNsc)
	registerHandler(r, routerName, router.UnstakeEsNsc)
	registerHandler(r, routerName, router.StakeNlp)
	registerHandler(r, routerName, router.UnstakeNlp)
	registerHandler(r, routerName, router.Claim)
	registerHandler(r, routerName, router.ClaimEsNsc)
	registerHandler(r, routerName, router.ClaimFees)
	registerHandler(r, routerName, router.Compound)
	registerHandler(r, routerName, router.CompoundForAccount)
	registerHandler(r, routerName, router.BatchCompoundForAccounts)
	registerHandler(r, routerName, router.HandleRewards)
	registerHandler(r, routerName, router.SignalTransfer)
	registerHandler(r, routerName, router.AcceptTransfer)
	registerHandler(r, routerName, router.ApproveStakedNlp)
	registerHandler(r, routerName, router.TransferStakedNlp)
	registerHandler(r, routerName, router.TransferStakedNlpFrom)

	claimer := rewardclaimerkeeper.NewMsgServerImpl(app.RewardClaimerKeeper)
	const claimerName = rewardclaimertypes.ModuleName
	registerHandler(r, claimerName, claimer.SetGov)
	registerHandler(r, claimerName, claimer.SetClaimableToken)
	registerHandler(r, claimerName, claimer.SetHandler)
	registerHandler(r, claimerName, claimer.WithdrawToken)
	registerHandler(r, claimerName, claimer.IncreaseClaimableAmounts)
	registerHandler(r, claimerName, claimer.DecreaseClaimableAmounts)
	registerHandler(r, claimerName, claimer.Claim)
	registerHandler(r, claimerName, claimer.ClaimForAccount)
}
