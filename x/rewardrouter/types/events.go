package types

const (
	EventTypeStakeNsc       = "stake_nsc"
	EventTypeUnstakeNsc     = "unstake_nsc"
	EventTypeStakeNlp       = "stake_nlp"
	EventTypeUnstakeNlp     = "unstake_nlp"
	EventTypeBurnBonus      = "burn_bonus_points"
	EventTypeCompound       = "compound"
	EventTypeSignalTransfer = "signal_transfer"
	EventTypeAcceptTransfer = "accept_transfer"
	EventTypeSetRoute       = "set_route"
	EventTypeApproveNlp     = "approve_staked_nlp"
	EventTypeTransferNlp    = "transfer_staked_nlp"

	AttributeKeyAccount  = "account"
	AttributeKeyFunder   = "funder"
	AttributeKeySender   = "sender"
	AttributeKeyReceiver = "receiver"
	AttributeKeyOwner    = "owner"
	AttributeKeySpender  = "spender"
	AttributeKeyDenom    = "denom"
	AttributeKeyAmount   = "amount"
	AttributeKeyEsAmount = "es_amount"
	AttributeKeyBnAmount = "bn_amount"
)
