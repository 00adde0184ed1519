package keeper

import (
	"strconv"

	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/confio/quantum-dao/x/daogame/types"
)

// NewLegacyQuerier is the root query handler for the daogame module, served
// under `custom/daogame/...`. All responses are amino JSON.
func NewLegacyQuerier(k Keeper, legacyQuerierCdc *codec.LegacyAmino) sdk.Querier {
	return func(ctx sdk.Context, path []string, req abci.RequestQuery) ([]byte, error) {
		switch path[0] {
		case types.QueryProposal:
			return queryProposal(ctx, k, legacyQuerierCdc, path[1:])
		case types.QueryVote:
			return queryVote(ctx, k, legacyQuerierCdc, path[1:])
		case types.QueryPlayerScore:
			return queryPlayerScore(ctx, k, legacyQuerierCdc, path[1:])
		case types.QueryLeaderboard:
			return queryLeaderboard(ctx, k, legacyQuerierCdc, req)
		case types.QueryIsGameActive:
			return queryIsGameActive(ctx, k, legacyQuerierCdc)
		case types.QueryParams:
			return codec.MarshalJSONIndent(legacyQuerierCdc, k.GetParams(ctx))
		default:
			return nil, sdkerrors.Wrapf(sdkerrors.ErrUnknownRequest, "unknown %s query endpoint: %s", types.ModuleName, path[0])
		}
	}
}

func queryProposal(ctx sdk.Context, k Keeper, legacyQuerierCdc *codec.LegacyAmino, path []string) ([]byte, error) {
	if len(path) != 1 {
		return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidRequest, "proposal id")
	}
	proposalID, err := parseProposalID(path[0])
	if err != nil {
		return nil, err
	}
	proposal, err := k.GetProposal(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	return codec.MarshalJSONIndent(legacyQuerierCdc, proposal)
}

func queryVote(ctx sdk.Context, k Keeper, legacyQuerierCdc *codec.LegacyAmino, path []string) ([]byte, error) {
	if len(path) != 2 {
		return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidRequest, "proposal id and voter")
	}
	proposalID, err := parseProposalID(path[0])
	if err != nil {
		return nil, err
	}
	voter, err := sdk.AccAddressFromBech32(path[1])
	if err != nil {
		return nil, sdkerrors.Wrap(err, "voter")
	}
	vote, err := k.GetVote(ctx, proposalID, voter)
	if err != nil {
		return nil, err
	}
	return codec.MarshalJSONIndent(legacyQuerierCdc, vote)
}

func queryPlayerScore(ctx sdk.Context, k Keeper, legacyQuerierCdc *codec.LegacyAmino, path []string) ([]byte, error) {
	if len(path) != 1 {
		return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidRequest, "player address")
	}
	player, err := sdk.AccAddressFromBech32(path[0])
	if err != nil {
		return nil, sdkerrors.Wrap(err, "player")
	}
	return codec.MarshalJSONIndent(legacyQuerierCdc, k.GetPlayerScore(ctx, player))
}

func queryLeaderboard(ctx sdk.Context, k Keeper, legacyQuerierCdc *codec.LegacyAmino, req abci.RequestQuery) ([]byte, error) {
	var params types.QueryLeaderboardParams
	if len(req.Data) != 0 {
		if err := legacyQuerierCdc.UnmarshalJSON(req.Data, &params); err != nil {
			return nil, sdkerrors.Wrap(sdkerrors.ErrJSONUnmarshal, err.Error())
		}
	}
	limit := params.Limit
	if limit == 0 {
		limit = k.RewardCohortSize(ctx)
	}
	return codec.MarshalJSONIndent(legacyQuerierCdc, k.GetLeaderboard(ctx, limit))
}

func queryIsGameActive(ctx sdk.Context, k Keeper, legacyQuerierCdc *codec.LegacyAmino) ([]byte, error) {
	res := types.IsGameActiveResponse{
		Active:       k.IsGameActive(ctx),
		CurrentBlock: uint64(ctx.BlockHeight()),
	}
	if cfg, err := k.GetGameConfig(ctx); err == nil {
		res.EndBlock = cfg.EndBlock()
	}
	return codec.MarshalJSONIndent(legacyQuerierCdc, res)
}

func parseProposalID(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, sdkerrors.Wrap(sdkerrors.ErrInvalidRequest, "proposal id")
	}
	return uint32(v), nil
}
