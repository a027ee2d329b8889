package types

import (
	"math/big"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/telemetry"
	"github.com/hashicorp/go-metrics"
)

// performance oriented metrics measuring the execution time of each message
const (
	MetricsKeyDeposit  = "deposit"
	MetricsKeyClaim    = "claim"
	MetricsKeyWithdraw = "withdraw"
)

const (
	// MetricsKeyVestedAmount is the key of the counter recording the amount
	// of escrow converted (and burnt) by vesting
	MetricsKeyVestedAmount = "vested_amount"
)

// RecordVested records escrow burnt by the vesting schedule.
func RecordVested(vesterID string, amount math.Int) {
	f, _ := new(big.Float).SetInt(amount.BigInt()).Float32()
	telemetry.IncrCounterWithLabels(
		[]string{MetricsKeyVestedAmount},
		f,
		[]metrics.Label{
			telemetry.NewLabel(telemetry.MetricLabelNameModule, ModuleName),
			telemetry.NewLabel("vester", vesterID),
		},
	)
}
