package types

import (
	"math"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// GameConfig is the immutable game setup, persisted once at genesis.
type GameConfig struct {
	// GameDurationBlocks is the number of blocks the game stays active,
	// counted from StartBlock.
	GameDurationBlocks uint64 `json:"game_duration_blocks" yaml:"game_duration_blocks"`
	// StartBlock is the height the game was initialized at. A zero value in
	// the genesis file means "capture the current height on import".
	StartBlock uint64 `json:"start_block" yaml:"start_block"`
	// StakeDenom is the denomination accepted as vote stake.
	StakeDenom string `json:"stake_denom" yaml:"stake_denom"`
	// RewardDenom is the denomination of the scarce reward token minted on claim.
	RewardDenom string `json:"reward_denom" yaml:"reward_denom"`
}

// EndBlock returns the last height the game is active at, saturating instead
// of wrapping around.
func (c GameConfig) EndBlock() uint64 {
	if c.StartBlock > math.MaxUint64-c.GameDurationBlocks {
		return math.MaxUint64
	}
	return c.StartBlock + c.GameDurationBlocks
}

// IsActiveAt returns true while the game phase is Active at the given height.
// The Ended phase is the negation and is never persisted.
func (c GameConfig) IsActiveAt(height uint64) bool {
	return height <= c.EndBlock()
}

// ValidateBasic syntax checks
func (c GameConfig) ValidateBasic() error {
	if c.GameDurationBlocks == 0 {
		return sdkerrors.Wrap(ErrEmpty, "game duration")
	}
	if err := sdk.ValidateDenom(c.StakeDenom); err != nil {
		return sdkerrors.Wrap(err, "stake denom")
	}
	if err := sdk.ValidateDenom(c.RewardDenom); err != nil {
		return sdkerrors.Wrap(err, "reward denom")
	}
	return nil
}

// Proposal is a governance item voted on within a fixed block window.
type Proposal struct {
	Id          uint32 `json:"id" yaml:"id"`
	Creator     string `json:"creator" yaml:"creator"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	// VotesFor and VotesAgainst are stake-weighted tallies. They only ever
	// grow and must never use fixed-width arithmetic.
	VotesFor     sdk.Int `json:"votes_for" yaml:"votes_for"`
	VotesAgainst sdk.Int `json:"votes_against" yaml:"votes_against"`
	StartBlock   uint64  `json:"start_block" yaml:"start_block"`
	EndBlock     uint64  `json:"end_block" yaml:"end_block"`
	// Executed marks the proposal settled. It flips false->true at most once.
	Executed bool `json:"executed" yaml:"executed"`
	// Passed records the settlement outcome. Only meaningful when Executed.
	Passed bool `json:"passed" yaml:"passed"`
}

// NewProposal constructor with zero tallies
func NewProposal(id uint32, creator sdk.AccAddress, title, description string, startBlock, endBlock uint64) Proposal {
	return Proposal{
		Id:           id,
		Creator:      creator.String(),
		Title:        title,
		Description:  description,
		VotesFor:     sdk.ZeroInt(),
		VotesAgainst: sdk.ZeroInt(),
		StartBlock:   startBlock,
		EndBlock:     endBlock,
	}
}

// IsVotingOpenAt returns true when the given height is within the proposal
// voting window, boundaries included.
func (p Proposal) IsVotingOpenAt(height uint64) bool {
	return height >= p.StartBlock && height <= p.EndBlock
}

// ValidateBasic syntax checks
func (p Proposal) ValidateBasic() error {
	if p.Id == 0 {
		return sdkerrors.Wrap(ErrEmpty, "id")
	}
	if _, err := sdk.AccAddressFromBech32(p.Creator); err != nil {
		return sdkerrors.Wrap(err, "creator")
	}
	if len(p.Title) == 0 {
		return sdkerrors.Wrap(ErrEmpty, "title")
	}
	if p.VotesFor.IsNil() || p.VotesFor.IsNegative() {
		return sdkerrors.Wrap(ErrInvalid, "votes for")
	}
	if p.VotesAgainst.IsNil() || p.VotesAgainst.IsNegative() {
		return sdkerrors.Wrap(ErrInvalid, "votes against")
	}
	if p.EndBlock < p.StartBlock {
		return sdkerrors.Wrap(ErrInvalid, "voting window")
	}
	if p.Passed && !p.Executed {
		return sdkerrors.Wrap(ErrInvalid, "passed without settlement")
	}
	return nil
}

// Vote is a single staked vote. Immutable once created; its existence is the
// sole double-vote guard for the (proposal, voter) pair.
type Vote struct {
	Voter       string  `json:"voter" yaml:"voter"`
	ProposalId  uint32  `json:"proposal_id" yaml:"proposal_id"`
	VoteFor     bool    `json:"vote_for" yaml:"vote_for"`
	StakeAmount sdk.Int `json:"stake_amount" yaml:"stake_amount"`
	BlockNumber uint64  `json:"block_number" yaml:"block_number"`
}

// NewVote constructor
func NewVote(voter sdk.AccAddress, proposalID uint32, voteFor bool, stake sdk.Int, height uint64) Vote {
	return Vote{
		Voter:       voter.String(),
		ProposalId:  proposalID,
		VoteFor:     voteFor,
		StakeAmount: stake,
		BlockNumber: height,
	}
}

// ValidateBasic syntax checks
func (v Vote) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(v.Voter); err != nil {
		return sdkerrors.Wrap(err, "voter")
	}
	if v.ProposalId == 0 {
		return sdkerrors.Wrap(ErrEmpty, "proposal id")
	}
	if v.StakeAmount.IsNil() || !v.StakeAmount.IsPositive() {
		return sdkerrors.Wrap(ErrZeroStake, "stake amount")
	}
	return nil
}

// LeaderboardEntry is a single row of the score ranking.
type LeaderboardEntry struct {
	Player string `json:"player" yaml:"player"`
	Score  uint64 `json:"score" yaml:"score"`
}
