package types

const (
	EventTypeStake              = "stake"
	EventTypeUnstake            = "unstake"
	EventTypeClaim              = "claim"
	EventTypeDistribute         = "distribute"
	EventTypeReceiptTransfer    = "receipt_transfer"
	EventTypeReceiptApproval    = "receipt_approval"
	EventTypeMovePosition       = "move_position"
	EventTypeSetHandler         = "set_handler"
	EventTypeSetGov             = "set_gov"
	EventTypeSetDepositToken    = "set_deposit_token"
	EventTypeSetPrivateMode     = "set_private_mode"
	EventTypeTokensPerInterval  = "tokens_per_interval_change"
	EventTypeBonusMultiplier    = "bonus_multiplier_change"
	EventTypeInitialize         = "initialize"
	EventTypeWithdrawToken      = "withdraw_token"
	EventTypeDistributionBootup = "update_last_distribution_time"

	AttributeKeyTracker     = "tracker"
	AttributeKeyDistributor = "distributor"
	AttributeKeyAccount     = "account"
	AttributeKeyFunder      = "funder"
	AttributeKeyReceiver    = "receiver"
	AttributeKeySpender     = "spender"
	AttributeKeyDenom       = "denom"
	AttributeKeyAmount      = "amount"
	AttributeKeyHandler     = "handler"
	AttributeKeyIsActive    = "is_active"
	AttributeKeyGov         = "gov"
	AttributeKeyMode        = "mode"
	AttributeKeyTime        = "time"
)
