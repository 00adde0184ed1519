package keeper

import (
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/confio/quantum-dao/x/daogame/types"
)

// ClaimReward permits a player exactly one reward claim after the game ended.
// The player must have a positive score and rank within the reward cohort.
// The reward token itself is minted by the bank collaborator once the gate
// passed.
func (k Keeper) ClaimReward(ctx sdk.Context, player sdk.AccAddress) (uint64, error) {
	if k.IsGameActive(ctx) {
		return 0, types.ErrGameStillActive
	}
	if k.HasClaimedReward(ctx, player) {
		return 0, types.ErrAlreadyClaimed
	}
	score := k.GetPlayerScore(ctx, player)
	if score == 0 {
		return 0, types.ErrNoScore
	}
	if !k.IsEligibleForReward(ctx, player) {
		return 0, types.ErrNotEligible
	}

	k.setRewardClaimed(ctx, player)

	cfg, err := k.GetGameConfig(ctx)
	if err != nil {
		return 0, err
	}
	reward := sdk.NewCoins(sdk.NewCoin(cfg.RewardDenom, sdk.OneInt()))
	if err := k.bankKeeper.MintCoins(ctx, types.ModuleName, reward); err != nil {
		return 0, sdkerrors.Wrap(err, "mint reward")
	}
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, player, reward); err != nil {
		return 0, sdkerrors.Wrap(err, "payout reward")
	}

	ModuleLogger(ctx).Info("Reward claimed", "player", player.String(), "score", score)
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeRewardClaimed,
		sdk.NewAttribute(types.AttributeKeyPlayer, player.String()),
		sdk.NewAttribute(types.AttributeKeyScore, strconv.FormatUint(score, 10)),
	))
	return score, nil
}

// IsEligibleForReward returns whether the player ranks within the top-K of
// the score index, K being the reward cohort size. The check walks the same
// index the leaderboard query serves.
func (k Keeper) IsEligibleForReward(ctx sdk.Context, player sdk.AccAddress) bool {
	var (
		eligible bool
		seen     uint32
		cohort   = k.RewardCohortSize(ctx)
	)
	k.IterateScoreIndexDesc(ctx, func(p sdk.AccAddress, _ uint64) bool {
		seen++
		if p.Equals(player) {
			eligible = true
			return true
		}
		return seen >= cohort
	})
	return eligible
}

// HasClaimedReward returns whether the player claimed already. Membership in
// the claimed set is permanent.
func (k Keeper) HasClaimedReward(ctx sdk.Context, player sdk.AccAddress) bool {
	store := ctx.KVStore(k.storeKey)
	return store.Has(types.RewardClaimKey(player))
}

func (k Keeper) setRewardClaimed(ctx sdk.Context, player sdk.AccAddress) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.RewardClaimKey(player), []byte{1})
}

// IterateRewardClaims calls cb for every address in the claimed set.
func (k Keeper) IterateRewardClaims(ctx sdk.Context, cb func(player sdk.AccAddress) bool) {
	store := ctx.KVStore(k.storeKey)
	iter := sdk.KVStorePrefixIterator(store, types.RewardClaimPrefix)
	defer iter.Close()
	for ; iter.Valid(); iter.Next() {
		if cb(iter.Key()[len(types.RewardClaimPrefix):]) {
			return
		}
	}
}
