package types

import (
	"math/big"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/telemetry"
	"github.com/hashicorp/go-metrics"
)

// performance oriented metrics measuring the execution time of each message
const (
	MetricsKeyIncreaseClaimable = "increase_claimable"
	MetricsKeyDecreaseClaimable = "decrease_claimable"
	MetricsKeyClaim             = "claim"
)

const (
	// MetricsKeyClaimedAmount is the key of the counter recording tokens paid
	// out by the claimer
	MetricsKeyClaimedAmount = "claimed_amount"
)

// RecordClaimed records tokens paid to a receiver.
func RecordClaimed(denom string, amount math.Int) {
	f, _ := new(big.Float).SetInt(amount.BigInt()).Float32()
	telemetry.IncrCounterWithLabels(
		[]string{MetricsKeyClaimedAmount},
		f,
		[]metrics.Label{
			telemetry.NewLabel(telemetry.MetricLabelNameModule, ModuleName),
			telemetry.NewLabel("denom", denom),
		},
	)
}
