package keeper

import (
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/confio/quantum-dao/x/daogame/types"
)

// CreateProposal opens a new proposal with a voting window starting at the
// current height. The creator is awarded the configured creation points.
func (k Keeper) CreateProposal(ctx sdk.Context, creator sdk.AccAddress, title, description string, votingPeriodBlocks uint64) (uint32, error) {
	if !k.IsGameActive(ctx) {
		return 0, types.ErrGameEnded
	}
	if max := k.MaxVotingPeriod(ctx); max > 0 && votingPeriodBlocks > max {
		return 0, sdkerrors.Wrapf(types.ErrInvalid, "voting period %d exceeds maximum %d", votingPeriodBlocks, max)
	}

	currentBlock := uint64(ctx.BlockHeight())
	proposalID := k.nextProposalID(ctx)
	proposal := types.NewProposal(proposalID, creator, title, description, currentBlock, currentBlock+votingPeriodBlocks)
	k.setProposal(ctx, proposal)

	k.addPoints(ctx, creator, k.CreatorPoints(ctx))

	ModuleLogger(ctx).Info("Proposal created", "proposalID", proposalID, "creator", creator.String())
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeProposalCreated,
		sdk.NewAttribute(types.AttributeKeyProposalID, strconv.FormatUint(uint64(proposalID), 10)),
		sdk.NewAttribute(types.AttributeKeyCreator, creator.String()),
		sdk.NewAttribute(types.AttributeKeyTitle, title),
	))
	return proposalID, nil
}

// ExecuteProposal settles a proposal after its voting window closed. The
// proposal passes with strictly more stake for than against; ties fail. Both
// outcomes mark the proposal settled so it cannot be executed twice.
func (k Keeper) ExecuteProposal(ctx sdk.Context, proposalID uint32) (bool, error) {
	proposal, err := k.GetProposal(ctx, proposalID)
	if err != nil {
		return false, err
	}
	if uint64(ctx.BlockHeight()) <= proposal.EndBlock {
		return false, types.ErrVotingStillActive
	}
	if proposal.Executed {
		return false, types.ErrAlreadyExecuted
	}

	passed := proposal.VotesFor.GT(proposal.VotesAgainst)
	proposal.Executed = true
	proposal.Passed = passed
	k.setProposal(ctx, proposal)

	if passed {
		creator, err := sdk.AccAddressFromBech32(proposal.Creator)
		if err != nil {
			return false, sdkerrors.Wrap(err, "creator")
		}
		k.addPoints(ctx, creator, k.ExecutedBonus(ctx))
	}

	ModuleLogger(ctx).Info("Proposal executed", "proposalID", proposalID, "passed", passed)
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeProposalExecuted,
		sdk.NewAttribute(types.AttributeKeyProposalID, strconv.FormatUint(uint64(proposalID), 10)),
		sdk.NewAttribute(types.AttributeKeyPassed, strconv.FormatBool(passed)),
	))
	return passed, nil
}
