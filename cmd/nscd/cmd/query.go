package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nsc-protocol/nsc/app"
	appparams "github.com/nsc-protocol/nsc/app/params"
	rttypes "github.com/nsc-protocol/nsc/x/rewardtracker/types"
)

// QueryCmd returns the parent command of the state queries.
func QueryCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query the committed state",
	}
	cmd.AddCommand(
		queryCmd(v, "tracker [id]", "Show a reward tracker and its distributor", printTracker),
		queryCmd(v, "vester [id]", "Show a vester", printVester),
		queryCmd(v, "account [address]", "Show the balances and positions of an account", printAccount),
		queryCmd(v, "genesis", "Export the state as genesis JSON", printGenesis),
	)
	return cmd
}

type printFn func(w io.Writer, nscApp *app.NscApp, args []string) error

func queryCmd(v *viper.Viper, use, short string, show printFn) *cobra.Command {
	nargs := strings.Count(use, "[")
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(nargs),
		RunE: func(cmd *cobra.Command, args []string) error {
			nscApp, err := openInitializedApp(cmd, v)
			if err != nil {
				return err
			}
			defer nscApp.Close()

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			if err := show(tw, nscApp, args); err != nil {
				return err
			}
			return tw.Flush()
		},
	}
}

// MsgsCmd lists the message types accepted by the run command.
func MsgsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "msgs",
		Short: "List the message types a scenario can deliver",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			nscApp, err := app.NewNscApp(log.NewNopLogger(), dbm.NewMemDB(), 0)
			if err != nil {
				return err
			}
			for _, name := range nscApp.MsgRouter().MsgNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func printTracker(w io.Writer, nscApp *app.NscApp, args []string) error {
	ctx := nscApp.NewContext()
	k := nscApp.RewardTrackerKeeper

	tracker, err := k.GetTracker(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "id\t%s\n", tracker.ID)
	fmt.Fprintf(w, "name\t%s (%s)\n", tracker.Name, tracker.Symbol)
	fmt.Fprintf(w, "receipt denom\t%s\n", rttypes.ReceiptDenom(tracker.ID))
	fmt.Fprintf(w, "total supply\t%s\n", appparams.FormatAmount(tracker.TotalSupply))
	for _, denom := range tracker.DepositDenoms {
		supply, err := k.TotalDepositSupply(ctx, tracker.ID, denom)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "deposits %s\t%s\n", denom, appparams.FormatAmount(supply))
	}
	fmt.Fprintf(w, "private modes\ttransfer=%t staking=%t claiming=%t\n",
		tracker.InPrivateTransferMode, tracker.InPrivateStakingMode, tracker.InPrivateClaimingMode)
	fmt.Fprintf(w, "distributed\t%s\n", appparams.FormatAmount(tracker.TotalDistributed))
	fmt.Fprintf(w, "claimed\t%s\n", appparams.FormatAmount(tracker.TotalClaimed))

	if tracker.DistributorID == "" {
		return nil
	}
	d, err := k.GetDistributor(ctx, tracker.DistributorID)
	if err != nil {
		return err
	}
	pending, err := k.PendingRewards(ctx, d.ID)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "distributor\t%s %s\n", d.Kind, d.RewardDenom)
	if d.Kind == rttypes.DistributorKindBonus {
		fmt.Fprintf(w, "bonus multiplier\t%s bps\n", d.BonusMultiplierBasisPoints)
	} else {
		fmt.Fprintf(w, "tokens per second\t%s\n", appparams.FormatAmount(d.TokensPerInterval))
	}
	fmt.Fprintf(w, "pending rewards\t%s\n", appparams.FormatAmount(pending))
	if d.LastDistributionTime > 0 {
		fmt.Fprintf(w, "last distribution\t%s\n", time.Unix(d.LastDistributionTime, 0).UTC().Format(time.RFC3339))
	}
	return nil
}

func printVester(w io.Writer, nscApp *app.NscApp, args []string) error {
	ctx := nscApp.NewContext()
	v, err := nscApp.VesterKeeper.GetVester(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "id\t%s\n", v.ID)
	fmt.Fprintf(w, "name\t%s (%s)\n", v.Name, v.Symbol)
	fmt.Fprintf(w, "vests\t%s into %s\n", v.EsDenom, v.ClaimableDenom)
	fmt.Fprintf(w, "duration\t%s\n", time.Duration(v.VestingDuration)*time.Second)
	fmt.Fprintf(w, "total vesting\t%s\n", appparams.FormatAmount(v.TotalSupply))
	if v.PairDenom != "" {
		fmt.Fprintf(w, "pair\t%s %s\n", appparams.FormatAmount(v.PairSupply), v.PairDenom)
	}
	if v.RewardTrackerID != "" {
		fmt.Fprintf(w, "reward tracker\t%s (max vestable %t)\n", v.RewardTrackerID, v.HasMaxVestableAmount)
	}
	return nil
}

func printAccount(w io.Writer, nscApp *app.NscApp, args []string) error {
	addr, err := app.ResolveAccount(args[0])
	if err != nil {
		return err
	}
	ctx := nscApp.NewContext()
	route, err := nscApp.RewardRouterKeeper.GetRoute(ctx)
	if err != nil {
		return errors.Wrap(err, "no route set")
	}

	fmt.Fprintf(w, "address\t%s\n", addr)
	for _, c := range nscApp.BankKeeper.GetAllBalances(ctx, addr) {
		fmt.Fprintf(w, "balance %s\t%s\n", c.Denom, appparams.FormatAmount(c.Amount))
	}

	fmt.Fprintln(w, "tracker\tstaked\tclaimable\taverage staked")
	for _, id := range route.Trackers() {
		staked, err := nscApp.RewardTrackerKeeper.StakedAmount(ctx, id, addr)
		if err != nil {
			return err
		}
		claimable, err := nscApp.RewardTrackerKeeper.Claimable(ctx, id, addr)
		if err != nil {
			return err
		}
		avg, err := nscApp.RewardTrackerKeeper.AverageStakedAmount(ctx, id, addr)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", id,
			appparams.FormatAmount(staked), appparams.FormatAmount(claimable), appparams.FormatAmount(avg))
	}

	fmt.Fprintln(w, "vester\tvesting\tclaimable\tmax vestable")
	for _, id := range route.Vesters() {
		amounts := make([]math.Int, 0, 3)
		for _, get := range []func() (math.Int, error){
			func() (math.Int, error) { return nscApp.VesterKeeper.BalanceOf(ctx, id, addr) },
			func() (math.Int, error) { return nscApp.VesterKeeper.Claimable(ctx, id, addr) },
			func() (math.Int, error) { return nscApp.VesterKeeper.MaxVestableAmount(ctx, id, addr) },
		} {
			amount, err := get()
			if err != nil {
				return err
			}
			amounts = append(amounts, amount)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", id,
			appparams.FormatAmount(amounts[0]), appparams.FormatAmount(amounts[1]), appparams.FormatAmount(amounts[2]))
	}

	receiver, err := nscApp.RewardRouterKeeper.PendingReceiver(ctx, addr)
	if err != nil {
		return err
	}
	if receiver != nil {
		fmt.Fprintf(w, "pending transfer to\t%s\n", receiver)
	}
	return printClaimerAmounts(w, nscApp, addr)
}

func printClaimerAmounts(w io.Writer, nscApp *app.NscApp, addr sdk.AccAddress) error {
	ctx := nscApp.NewContext()
	for _, denom := range []string{appparams.EsNscDenom, appparams.FeeDenom} {
		amount, err := nscApp.RewardClaimerKeeper.ClaimableAmount(ctx, addr, denom)
		if err != nil {
			return err
		}
		if amount.IsPositive() {
			fmt.Fprintf(w, "claimer %s\t%s\n", denom, appparams.FormatAmount(amount))
		}
	}
	return nil
}

func printGenesis(w io.Writer, nscApp *app.NscApp, _ []string) error {
	gs, err := nscApp.ExportGenesis()
	if err != nil {
		return err
	}
	bz, err := json.MarshalIndent(gs, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(bz))
	return err
}
