package types

// daogame module event types
const (
	EventTypeProposalCreated  = "proposal_created"
	EventTypeVoteCast         = "vote_cast"
	EventTypeProposalExecuted = "proposal_executed"
	EventTypeRewardClaimed    = "nft_claimed"

	AttributeKeyProposalID  = "proposal_id"
	AttributeKeyCreator     = "creator"
	AttributeKeyTitle       = "title"
	AttributeKeyVoter       = "voter"
	AttributeKeyVoteFor     = "vote_for"
	AttributeKeyStakeAmount = "stake_amount"
	AttributeKeyPassed      = "passed"
	AttributeKeyPlayer      = "player"
	AttributeKeyScore       = "score"
	AttributeValueCategory  = ModuleName
)
