package keeper

import (
	"math"

	"github.com/cosmos/cosmos-sdk/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/confio/quantum-dao/x/daogame/types"
)

// GetPlayerScore reads the accumulated points of a player. Zero when absent.
func (k Keeper) GetPlayerScore(ctx sdk.Context, player sdk.AccAddress) uint64 {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.ScoreKey(player))
	if len(bz) == 0 {
		return 0
	}
	return sdk.BigEndianToUint64(bz)
}

// addPoints accrues delta points to the player score and keeps the
// score-ordered secondary index in sync. Scores only ever grow; there is no
// decrease operation.
func (k Keeper) addPoints(ctx sdk.Context, player sdk.AccAddress, delta uint64) {
	if delta == 0 {
		return
	}
	current := k.GetPlayerScore(ctx, player)
	if delta > math.MaxUint64-current {
		panic("player score overflow")
	}
	newScore := current + delta

	store := ctx.KVStore(k.storeKey)
	store.Set(types.ScoreKey(player), sdk.Uint64ToBigEndian(newScore))

	// move the leaderboard index entry
	if current > 0 {
		store.Delete(types.ScoreIndexKey(current, player))
	}
	store.Set(types.ScoreIndexKey(newScore, player), []byte{1})
}

// setPlayerScore overwrites a player score including the index entry. Genesis
// import only.
func (k Keeper) setPlayerScore(ctx sdk.Context, player sdk.AccAddress, score uint64) {
	store := ctx.KVStore(k.storeKey)
	if current := k.GetPlayerScore(ctx, player); current > 0 {
		store.Delete(types.ScoreIndexKey(current, player))
	}
	store.Set(types.ScoreKey(player), sdk.Uint64ToBigEndian(score))
	store.Set(types.ScoreIndexKey(score, player), []byte{1})
}

// IteratePlayerScores calls cb for every score table entry, ordered by
// address ASC. Returning true stops the iteration early.
func (k Keeper) IteratePlayerScores(ctx sdk.Context, cb func(player sdk.AccAddress, score uint64) bool) {
	prefixStore := prefix.NewStore(ctx.KVStore(k.storeKey), types.ScorePrefix)
	iter := prefixStore.Iterator(nil, nil)
	defer iter.Close()
	for ; iter.Valid(); iter.Next() {
		if cb(iter.Key(), sdk.BigEndianToUint64(iter.Value())) {
			return
		}
	}
}

// IterateScoreIndexDesc walks the score-ordered index from the highest score
// down. Ties iterate by address bytes DESC, which is deterministic across
// nodes. Returning true stops the iteration early.
func (k Keeper) IterateScoreIndexDesc(ctx sdk.Context, cb func(player sdk.AccAddress, score uint64) bool) {
	prefixStore := prefix.NewStore(ctx.KVStore(k.storeKey), types.ScoreIndexPrefix)
	iter := prefixStore.ReverseIterator(nil, nil)
	defer iter.Close()
	for ; iter.Valid(); iter.Next() {
		score, player := types.SplitScoreIndexKey(iter.Key())
		if cb(player, score) {
			return
		}
	}
}

// GetLeaderboard returns the top-n players by score, descending. This is the
// same index the reward eligibility check walks so both views always agree.
func (k Keeper) GetLeaderboard(ctx sdk.Context, n uint32) []types.LeaderboardEntry {
	if n == 0 {
		return nil
	}
	result := make([]types.LeaderboardEntry, 0, n)
	k.IterateScoreIndexDesc(ctx, func(player sdk.AccAddress, score uint64) bool {
		result = append(result, types.LeaderboardEntry{Player: player.String(), Score: score})
		return len(result) >= int(n)
	})
	return result
}
