package keeper

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confio/quantum-dao/x/daogame/types"
)

func TestTallyInvariant(t *testing.T) {
	specs := map[string]struct {
		setup     func(ctx sdk.Context, k Keeper)
		expBroken bool
	}{
		"empty state": {
			setup: func(sdk.Context, Keeper) {},
		},
		"tally matches votes": {
			setup: func(ctx sdk.Context, k Keeper) {
				voter := types.RandomAccAddress()
				p := types.ProposalFixture(func(p *types.Proposal) {
					p.VotesFor = sdk.NewInt(100)
				})
				k.setProposal(ctx, p)
				k.setVote(ctx, types.NewVote(voter, p.Id, true, sdk.NewInt(100), 2))
			},
		},
		"tally without votes": {
			setup: func(ctx sdk.Context, k Keeper) {
				k.setProposal(ctx, types.ProposalFixture(func(p *types.Proposal) {
					p.VotesFor = sdk.NewInt(100)
				}))
			},
			expBroken: true,
		},
		"votes exceed tally": {
			setup: func(ctx sdk.Context, k Keeper) {
				voter := types.RandomAccAddress()
				p := types.ProposalFixture()
				k.setProposal(ctx, p)
				k.setVote(ctx, types.NewVote(voter, p.Id, true, sdk.NewInt(100), 2))
			},
			expBroken: true,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			ctx, keepers := CreateDefaultTestInput(t)
			k := keepers.DaoGameKeeper
			spec.setup(ctx, k)

			_, gotBroken := TallyInvariant(k)(ctx)
			assert.Equal(t, spec.expBroken, gotBroken)
		})
	}
}

func TestModuleEscrowInvariant(t *testing.T) {
	ctx, keepers := CreateDefaultTestInput(t)
	k := keepers.DaoGameKeeper

	_, broken := ModuleEscrowInvariant(k)(ctx)
	assert.False(t, broken)

	// a vote cast through the keeper funds the escrow
	voter := types.RandomAccAddress()
	stake := sdk.NewCoin(sdk.DefaultBondDenom, sdk.NewInt(100))
	FundAccount(t, ctx, keepers.BankKeeper, voter, sdk.NewCoins(stake))
	k.setProposal(ctx, types.ProposalFixture())
	ctx = ctx.WithBlockHeight(5)
	require.NoError(t, k.CastVote(ctx, voter, 1, true, stake))

	_, broken = ModuleEscrowInvariant(k)(ctx)
	assert.False(t, broken)

	// a vote written without escrow breaks it
	k.setVote(ctx, types.NewVote(types.RandomAccAddress(), 1, true, sdk.NewInt(1_000), 5))
	_, broken = ModuleEscrowInvariant(k)(ctx)
	assert.True(t, broken)
}
