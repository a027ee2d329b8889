package types

import (
	"math/big"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/telemetry"
	"github.com/hashicorp/go-metrics"
)

// performance oriented metrics measuring the execution time of each message
const (
	MetricsKeyStakeNsc       = "stake_nsc"
	MetricsKeyUnstakeNsc     = "unstake_nsc"
	MetricsKeyStakeNlp       = "stake_nlp"
	MetricsKeyUnstakeNlp     = "unstake_nlp"
	MetricsKeyClaim          = "claim"
	MetricsKeyCompound       = "compound"
	MetricsKeyHandleRewards  = "handle_rewards"
	MetricsKeySignalTransfer = "signal_transfer"
	MetricsKeyAcceptTransfer = "accept_transfer"
	MetricsKeyTransferNlp    = "transfer_staked_nlp"
)

const (
	// MetricsKeyBurntBonusPoints is the key of the counter recording bonus
	// points burnt on unstake
	MetricsKeyBurntBonusPoints = "burnt_bonus_points"
	// MetricsKeyCompounded is the key of the counter recording rewards
	// restaked by compounding
	MetricsKeyCompounded = "compounded"
)

func RecordBurntBonusPoints(amount math.Int) {
	recordAmount(MetricsKeyBurntBonusPoints, amount)
}

func RecordCompounded(amount math.Int) {
	recordAmount(MetricsKeyCompounded, amount)
}

func recordAmount(key string, amount math.Int) {
	f, _ := new(big.Float).SetInt(amount.BigInt()).Float32()
	telemetry.IncrCounterWithLabels(
		[]string{key},
		f,
		[]metrics.Label{telemetry.NewLabel(telemetry.MetricLabelNameModule, ModuleName)},
	)
}
