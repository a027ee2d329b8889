package types

const (
	EventTypeDeposit            = "vester_deposit"
	EventTypeClaim              = "vester_claim"
	EventTypeWithdraw           = "vester_withdraw"
	EventTypePairTransfer       = "pair_transfer"
	EventTypeTransferStakeValue = "transfer_stake_values"
	EventTypeSetAccountValue    = "set_account_value"
	EventTypeSetHandler         = "set_handler"
	EventTypeSetGov             = "set_gov"
	EventTypeSetMaxVestable     = "set_has_max_vestable_amount"
	EventTypeWithdrawToken      = "withdraw_token"

	AttributeKeyVester   = "vester"
	AttributeKeyAccount  = "account"
	AttributeKeySender   = "sender"
	AttributeKeyReceiver = "receiver"
	AttributeKeyDenom    = "denom"
	AttributeKeyAmount   = "amount"
	AttributeKeyField    = "field"
	AttributeKeyHandler  = "handler"
	AttributeKeyIsActive = "is_active"
	AttributeKeyGov      = "gov"
	AttributeKeyEnabled  = "enabled"
)
