package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/confio/quantum-dao/x/daogame/types"
)

// InitGenesis imports the game state. A zero start block in the config means
// a fresh game: the current height is captured as the start. The score index
// is rebuilt from the score table.
func InitGenesis(ctx sdk.Context, k Keeper, genState types.GenesisState) error {
	k.setParams(ctx, genState.Params)

	cfg := genState.GameConfig
	if cfg.StartBlock == 0 {
		cfg.StartBlock = uint64(ctx.BlockHeight())
	}
	k.setGameConfig(ctx, cfg)
	k.setNextProposalID(ctx, genState.NextProposalId)

	for i, proposal := range genState.Proposals {
		if _, err := k.GetProposal(ctx, proposal.Id); err == nil {
			return sdkerrors.Wrapf(types.ErrInvalid, "duplicate proposal [%d]: %d", i, proposal.Id)
		}
		k.setProposal(ctx, proposal)
	}
	for i, vote := range genState.Votes {
		voter, err := sdk.AccAddressFromBech32(vote.Voter)
		if err != nil {
			return sdkerrors.Wrapf(err, "vote [%d]", i)
		}
		if k.HasVote(ctx, vote.ProposalId, voter) {
			return sdkerrors.Wrapf(types.ErrAlreadyVoted, "vote [%d]", i)
		}
		k.setVote(ctx, vote)
	}
	for i, score := range genState.Scores {
		player, err := sdk.AccAddressFromBech32(score.Player)
		if err != nil {
			return sdkerrors.Wrapf(err, "score [%d]", i)
		}
		k.setPlayerScore(ctx, player, score.Score)
	}
	for i, claimed := range genState.Claimed {
		player, err := sdk.AccAddressFromBech32(claimed)
		if err != nil {
			return sdkerrors.Wrapf(err, "claimed [%d]", i)
		}
		k.setRewardClaimed(ctx, player)
	}
	return nil
}

// ExportGenesis dumps the full game state
func ExportGenesis(ctx sdk.Context, k Keeper) *types.GenesisState {
	genState := types.GenesisState{
		Params:         k.GetParams(ctx),
		NextProposalId: k.GetNextProposalID(ctx),
	}
	if cfg, err := k.GetGameConfig(ctx); err == nil {
		genState.GameConfig = cfg
	}
	k.IterateProposals(ctx, func(p types.Proposal) bool {
		genState.Proposals = append(genState.Proposals, p)
		return false
	})
	k.IterateVotes(ctx, func(v types.Vote) bool {
		genState.Votes = append(genState.Votes, v)
		return false
	})
	k.IteratePlayerScores(ctx, func(player sdk.AccAddress, score uint64) bool {
		genState.Scores = append(genState.Scores, types.PlayerScore{Player: player.String(), Score: score})
		return false
	})
	k.IterateRewardClaims(ctx, func(player sdk.AccAddress) bool {
		genState.Claimed = append(genState.Claimed, player.String())
		return false
	})
	return &genState
}
