package keeper

import (
	"fmt"

	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	paramtypes "github.com/cosmos/cosmos-sdk/x/params/types"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/confio/quantum-dao/x/daogame/types"
)

// Keeper is the daogame state machine. All mutations run within the
// transactional multistore of the host so every failing operation rolls back
// as a whole.
type Keeper struct {
	storeKey   sdk.StoreKey
	cdc        *codec.LegacyAmino
	paramStore paramtypes.Subspace
	bankKeeper types.BankKeeper
	accKeeper  types.AccountKeeper
}

// NewKeeper constructor
func NewKeeper(
	cdc *codec.LegacyAmino,
	storeKey sdk.StoreKey,
	paramSpace paramtypes.Subspace,
	ak types.AccountKeeper,
	bk types.BankKeeper,
) Keeper {
	if !paramSpace.HasKeyTable() {
		paramSpace = paramSpace.WithKeyTable(types.ParamKeyTable())
	}
	return Keeper{
		storeKey:   storeKey,
		cdc:        cdc,
		paramStore: paramSpace,
		bankKeeper: bk,
		accKeeper:  ak,
	}
}

// setGameConfig persists the immutable game setup. Called on genesis import
// only; there is no msg that mutates it.
func (k Keeper) setGameConfig(ctx sdk.Context, cfg types.GameConfig) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.GameConfigKey, k.cdc.MustMarshal(&cfg))
}

// GetGameConfig loads the game setup. Returns an error before genesis import.
func (k Keeper) GetGameConfig(ctx sdk.Context) (types.GameConfig, error) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.GameConfigKey)
	if len(bz) == 0 {
		return types.GameConfig{}, sdkerrors.Wrap(types.ErrEmpty, "game config")
	}
	var cfg types.GameConfig
	k.cdc.MustUnmarshal(bz, &cfg)
	return cfg, nil
}

// IsGameActive derives the game phase from the current block height. The
// phase is re-derived on every call and never cached or persisted.
func (k Keeper) IsGameActive(ctx sdk.Context) bool {
	cfg, err := k.GetGameConfig(ctx)
	if err != nil {
		return false
	}
	return cfg.IsActiveAt(uint64(ctx.BlockHeight()))
}

// GetNextProposalID returns the current value of the proposal id counter.
func (k Keeper) GetNextProposalID(ctx sdk.Context) uint32 {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.NextProposalIDKey)
	if len(bz) == 0 {
		return 0
	}
	return uint32(sdk.BigEndianToUint64(bz))
}

func (k Keeper) setNextProposalID(ctx sdk.Context, id uint32) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.NextProposalIDKey, sdk.Uint64ToBigEndian(uint64(id)))
}

// nextProposalID allocates the next proposal id. Strictly increasing,
// starting at 1, never reused.
func (k Keeper) nextProposalID(ctx sdk.Context) uint32 {
	id := k.GetNextProposalID(ctx)
	if id == 0 {
		panic("proposal id counter not initialized")
	}
	k.setNextProposalID(ctx, id+1)
	return id
}

// GetProposal loads a proposal by id.
func (k Keeper) GetProposal(ctx sdk.Context, proposalID uint32) (types.Proposal, error) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.ProposalKey(proposalID))
	if len(bz) == 0 {
		return types.Proposal{}, types.ErrProposalNotFound
	}
	var proposal types.Proposal
	k.cdc.MustUnmarshal(bz, &proposal)
	return proposal, nil
}

func (k Keeper) setProposal(ctx sdk.Context, proposal types.Proposal) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.ProposalKey(proposal.Id), k.cdc.MustMarshal(&proposal))
}

// IterateProposals calls cb for every stored proposal, ordered by id ASC.
// Returning true stops the iteration early.
func (k Keeper) IterateProposals(ctx sdk.Context, cb func(types.Proposal) bool) {
	prefixStore := prefix.NewStore(ctx.KVStore(k.storeKey), types.ProposalPrefix)
	iter := prefixStore.Iterator(nil, nil)
	defer iter.Close()
	for ; iter.Valid(); iter.Next() {
		var proposal types.Proposal
		k.cdc.MustUnmarshal(iter.Value(), &proposal)
		if cb(proposal) {
			return
		}
	}
}

// GetVote loads the vote of the given voter on the given proposal.
func (k Keeper) GetVote(ctx sdk.Context, proposalID uint32, voter sdk.AccAddress) (types.Vote, error) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.VoteKey(proposalID, voter))
	if len(bz) == 0 {
		return types.Vote{}, sdkerrors.Wrap(types.ErrEmpty, "vote")
	}
	var vote types.Vote
	k.cdc.MustUnmarshal(bz, &vote)
	return vote, nil
}

// HasVote returns whether the (proposal, voter) pair voted already.
func (k Keeper) HasVote(ctx sdk.Context, proposalID uint32, voter sdk.AccAddress) bool {
	store := ctx.KVStore(k.storeKey)
	return store.Has(types.VoteKey(proposalID, voter))
}

func (k Keeper) setVote(ctx sdk.Context, vote types.Vote) {
	voter, err := sdk.AccAddressFromBech32(vote.Voter)
	if err != nil {
		panic(err)
	}
	store := ctx.KVStore(k.storeKey)
	store.Set(types.VoteKey(vote.ProposalId, voter), k.cdc.MustMarshal(&vote))
}

// IterateVotes calls cb for every stored vote, ordered by proposal id and
// voter address ASC. Returning true stops the iteration early.
func (k Keeper) IterateVotes(ctx sdk.Context, cb func(types.Vote) bool) {
	prefixStore := prefix.NewStore(ctx.KVStore(k.storeKey), types.VotePrefix)
	iter := prefixStore.Iterator(nil, nil)
	defer iter.Close()
	for ; iter.Valid(); iter.Next() {
		var vote types.Vote
		k.cdc.MustUnmarshal(iter.Value(), &vote)
		if cb(vote) {
			return
		}
	}
}

// IterateProposalVotes calls cb for every vote on the given proposal.
func (k Keeper) IterateProposalVotes(ctx sdk.Context, proposalID uint32, cb func(types.Vote) bool) {
	prefixStore := prefix.NewStore(ctx.KVStore(k.storeKey), types.VotesByProposalPrefix(proposalID))
	iter := prefixStore.Iterator(nil, nil)
	defer iter.Close()
	for ; iter.Valid(); iter.Next() {
		var vote types.Vote
		k.cdc.MustUnmarshal(iter.Value(), &vote)
		if cb(vote) {
			return
		}
	}
}

// ModuleLogger returns the module scoped logger
func ModuleLogger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}
