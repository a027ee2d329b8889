package types

const (
	EventTypeIncreaseClaimable = "increase_claimable"
	EventTypeDecreaseClaimable = "decrease_claimable"
	EventTypeClaim             = "claim"
	EventTypeSetClaimableToken = "set_claimable_token"
	EventTypeSetHandler        = "set_handler"
	EventTypeSetGov            = "set_gov"
	EventTypeWithdrawToken     = "withdraw_token"

	AttributeKeyAccount     = "account"
	AttributeKeyReceiver    = "receiver"
	AttributeKeyDenom       = "denom"
	AttributeKeyAmount      = "amount"
	AttributeKeyHandler     = "handler"
	AttributeKeyIsActive    = "is_active"
	AttributeKeyIsClaimable = "is_claimable"
	AttributeKeyGov         = "gov"
)
