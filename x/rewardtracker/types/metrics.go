package types

import (
	"math/big"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/telemetry"
	"github.com/hashicorp/go-metrics"
)

// performance oriented metrics measuring the execution time of each message
const (
	MetricsKeyStake    = "stake"
	MetricsKeyUnstake  = "unstake"
	MetricsKeyClaim    = "claim"
	MetricsKeyTransfer = "receipt_transfer"
)

const (
	/* Metrics for monitoring reward flows */

	// MetricsKeyDistributedAmount is the key of the counter recording the
	// amount of reward tokens moved from distributors into trackers
	MetricsKeyDistributedAmount = "distributed_amount"
	// MetricsKeyClaimedAmount is the key of the counter recording the amount
	// of reward tokens paid out by trackers
	MetricsKeyClaimedAmount = "claimed_amount"
)

// RecordDistributed records a distribution into a tracker.
func RecordDistributed(trackerID string, amount math.Int) {
	recordAmount(MetricsKeyDistributedAmount, trackerID, amount)
}

// RecordClaimed records a claim from a tracker.
func RecordClaimed(trackerID string, amount math.Int) {
	recordAmount(MetricsKeyClaimedAmount, trackerID, amount)
}

func recordAmount(key, trackerID string, amount math.Int) {
	labels := []metrics.Label{
		telemetry.NewLabel(telemetry.MetricLabelNameModule, ModuleName),
		telemetry.NewLabel("tracker", trackerID),
	}
	f, _ := new(big.Float).SetInt(amount.BigInt()).Float32()
	telemetry.IncrCounterWithLabels(
		[]string{key},
		f,
		labels,
	)
}
