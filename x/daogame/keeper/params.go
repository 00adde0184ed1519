package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/confio/quantum-dao/x/daogame/types"
)

// CreatorPoints awarded for creating a proposal
func (k Keeper) CreatorPoints(ctx sdk.Context) (res uint64) {
	k.paramStore.Get(ctx, types.KeyCreatorPoints, &res)
	return
}

// ExecutedBonus awarded to the creator of a passed proposal
func (k Keeper) ExecutedBonus(ctx sdk.Context) (res uint64) {
	k.paramStore.Get(ctx, types.KeyExecutedBonus, &res)
	return
}

// VotePointsMultiplier scales stake-derived vote points
func (k Keeper) VotePointsMultiplier(ctx sdk.Context) (res uint64) {
	k.paramStore.Get(ctx, types.KeyVotePointsMultiplier, &res)
	return
}

// RewardCohortSize is the top-K score cut off for reward eligibility
func (k Keeper) RewardCohortSize(ctx sdk.Context) (res uint32) {
	k.paramStore.Get(ctx, types.KeyRewardCohortSize, &res)
	return
}

// MaxVotingPeriod upper bound for requested voting windows. Zero = unbounded.
func (k Keeper) MaxVotingPeriod(ctx sdk.Context) (res uint64) {
	k.paramStore.Get(ctx, types.KeyMaxVotingPeriod, &res)
	return
}

// UnitStake is one base denomination unit of the staking asset
func (k Keeper) UnitStake(ctx sdk.Context) (res sdk.Int) {
	k.paramStore.Get(ctx, types.KeyUnitStake, &res)
	return
}

// GetParams returns all parameters as types.Params
func (k Keeper) GetParams(ctx sdk.Context) types.Params {
	return types.NewParams(
		k.CreatorPoints(ctx),
		k.ExecutedBonus(ctx),
		k.VotePointsMultiplier(ctx),
		k.RewardCohortSize(ctx),
		k.MaxVotingPeriod(ctx),
		k.UnitStake(ctx),
	)
}

// setParams set the params
func (k Keeper) setParams(ctx sdk.Context, params types.Params) {
	k.paramStore.SetParamSet(ctx, &params)
}
