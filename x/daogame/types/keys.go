package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// ModuleName is the name of the daogame module
	ModuleName = "daogame"

	// StoreKey is the string store representation
	StoreKey = ModuleName

	// QuerierRoute is the querier route for the daogame module
	QuerierRoute = ModuleName

	// RouterKey is the msg router key for the daogame module
	RouterKey = ModuleName
)

// nolint
var (
	GameConfigKey      = []byte{0x01}
	NextProposalIDKey  = []byte{0x02}
	ProposalPrefix     = []byte{0x03}
	VotePrefix         = []byte{0x04}
	ScorePrefix        = []byte{0x05}
	ScoreIndexPrefix   = []byte{0x06}
	RewardClaimPrefix  = []byte{0x07}
)

// ProposalKey returns the store key for the proposal with the given id.
func ProposalKey(proposalID uint32) []byte {
	return append(ProposalPrefix, proposalIDBytes(proposalID)...)
}

// VoteKey returns the store key for the vote of the given voter on the given
// proposal: `<prefix><proposal_id><voter>`.
func VoteKey(proposalID uint32, voter sdk.AccAddress) []byte {
	return append(VotesByProposalPrefix(proposalID), voter.Bytes()...)
}

// VotesByProposalPrefix returns the store prefix under which all votes for the
// given proposal are stored.
func VotesByProposalPrefix(proposalID uint32) []byte {
	return append(VotePrefix, proposalIDBytes(proposalID)...)
}

// ScoreKey returns the store key for a player score.
func ScoreKey(player sdk.AccAddress) []byte {
	return append(ScorePrefix, player.Bytes()...)
}

// ScoreIndexKey builds the key of the score-ordered secondary index:
// `<prefix><big endian score><player>`. Ascending iteration over this space
// yields players ordered by score, ties resolved by address bytes.
func ScoreIndexKey(score uint64, player sdk.AccAddress) []byte {
	return append(append(ScoreIndexPrefix, sdk.Uint64ToBigEndian(score)...), player.Bytes()...)
}

// SplitScoreIndexKey splits an index key without its store prefix back into
// score and player address.
func SplitScoreIndexKey(key []byte) (uint64, sdk.AccAddress) {
	return sdk.BigEndianToUint64(key[0:8]), key[8:]
}

// RewardClaimKey returns the store key marking a player reward claim.
func RewardClaimKey(player sdk.AccAddress) []byte {
	return append(RewardClaimPrefix, player.Bytes()...)
}

func proposalIDBytes(proposalID uint32) []byte {
	return sdk.Uint64ToBigEndian(uint64(proposalID))
}
