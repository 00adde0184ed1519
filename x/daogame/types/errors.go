package types

import sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

var (
	ErrGameEnded         = sdkerrors.Register(ModuleName, 2, "game has ended")
	ErrGameStillActive   = sdkerrors.Register(ModuleName, 3, "game is still active")
	ErrZeroStake         = sdkerrors.Register(ModuleName, 4, "must stake to vote")
	ErrProposalNotFound  = sdkerrors.Register(ModuleName, 5, "proposal does not exist")
	ErrVotingNotStarted  = sdkerrors.Register(ModuleName, 6, "voting not started")
	ErrVotingEnded       = sdkerrors.Register(ModuleName, 7, "voting ended")
	ErrAlreadyVoted      = sdkerrors.Register(ModuleName, 8, "already voted")
	ErrVotingStillActive = sdkerrors.Register(ModuleName, 9, "voting still active")
	ErrAlreadyExecuted   = sdkerrors.Register(ModuleName, 10, "proposal already executed")
	ErrAlreadyClaimed    = sdkerrors.Register(ModuleName, 11, "reward already claimed")
	ErrNoScore           = sdkerrors.Register(ModuleName, 12, "no score recorded")
	ErrNotEligible       = sdkerrors.Register(ModuleName, 13, "not eligible for reward")
	ErrEmpty             = sdkerrors.Register(ModuleName, 14, "empty")
	ErrInvalid           = sdkerrors.Register(ModuleName, 15, "invalid")
)
