package keeper

import (
	"math"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/confio/quantum-dao/x/daogame/types"
)

// CastVote records a staked vote on a proposal. The stake moves into the
// module escrow account and stays there; it weighs into the proposal tally
// and grants the voter stake-proportional points.
func (k Keeper) CastVote(ctx sdk.Context, voter sdk.AccAddress, proposalID uint32, voteFor bool, stake sdk.Coin) error {
	if !k.IsGameActive(ctx) {
		return types.ErrGameEnded
	}
	if !stake.IsPositive() {
		return types.ErrZeroStake
	}
	cfg, err := k.GetGameConfig(ctx)
	if err != nil {
		return err
	}
	if stake.Denom != cfg.StakeDenom {
		return sdkerrors.Wrapf(types.ErrInvalid, "stake denom: got %s, expected %s", stake.Denom, cfg.StakeDenom)
	}
	proposal, err := k.GetProposal(ctx, proposalID)
	if err != nil {
		return err
	}
	currentBlock := uint64(ctx.BlockHeight())
	if currentBlock < proposal.StartBlock {
		return types.ErrVotingNotStarted
	}
	if currentBlock > proposal.EndBlock {
		return types.ErrVotingEnded
	}
	if k.HasVote(ctx, proposalID, voter) {
		return types.ErrAlreadyVoted
	}

	// custody: the stake is held by the module account, not by this core
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, voter, types.ModuleName, sdk.NewCoins(stake)); err != nil {
		return sdkerrors.Wrap(err, "escrow stake")
	}

	k.setVote(ctx, types.NewVote(voter, proposalID, voteFor, stake.Amount, currentBlock))

	// sdk.Int addition errors out beyond 256 bits instead of wrapping
	if voteFor {
		proposal.VotesFor = proposal.VotesFor.Add(stake.Amount)
	} else {
		proposal.VotesAgainst = proposal.VotesAgainst.Add(stake.Amount)
	}
	k.setProposal(ctx, proposal)

	k.addPoints(ctx, voter, votePoints(stake.Amount, k.UnitStake(ctx), k.VotePointsMultiplier(ctx)))

	ModuleLogger(ctx).Info("Vote cast", "proposalID", proposalID, "voter", voter.String(), "for", voteFor)
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeVoteCast,
		sdk.NewAttribute(types.AttributeKeyProposalID, strconv.FormatUint(uint64(proposalID), 10)),
		sdk.NewAttribute(types.AttributeKeyVoter, voter.String()),
		sdk.NewAttribute(types.AttributeKeyVoteFor, strconv.FormatBool(voteFor)),
		sdk.NewAttribute(types.AttributeKeyStakeAmount, stake.Amount.String()),
	))
	return nil
}

// votePoints derives score points from a stake amount: floor(stake/unit)
// scaled by the multiplier. Any positive stake grants at least 1 point: when
// the quotient is zero or does not fit the score width the delta falls back
// to 1, deliberately unscaled.
func votePoints(stake, unit sdk.Int, multiplier uint64) uint64 {
	q := stake.Quo(unit)
	if q.IsZero() || !q.IsUint64() {
		return 1
	}
	points := q.Uint64()
	if points > math.MaxUint64/multiplier {
		return 1
	}
	return points * multiplier
}
