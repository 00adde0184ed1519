package keeper

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confio/quantum-dao/x/daogame/types"
)

func TestCreateProposal(t *testing.T) {
	creator := types.RandomAccAddress()

	specs := map[string]struct {
		setupCtx     func(ctx sdk.Context) sdk.Context
		votingPeriod uint64
		maxPeriod    uint64
		expErr       *sdkerrors.Error
		expID        uint32
	}{
		"fresh game": {
			votingPeriod: 10,
			expID:        1,
		},
		"unbounded voting period": {
			votingPeriod: 1_000_000,
			expID:        1,
		},
		"voting period within max": {
			votingPeriod: 10,
			maxPeriod:    10,
			expID:        1,
		},
		"voting period exceeds max": {
			votingPeriod: 11,
			maxPeriod:    10,
			expErr:       types.ErrInvalid,
		},
		"game ended": {
			setupCtx: func(ctx sdk.Context) sdk.Context {
				return ctx.WithBlockHeight(102) // game active through block 101
			},
			votingPeriod: 10,
			expErr:       types.ErrGameEnded,
		},
		"last active block": {
			setupCtx: func(ctx sdk.Context) sdk.Context {
				return ctx.WithBlockHeight(101)
			},
			votingPeriod: 10,
			expID:        1,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			ctx, keepers := CreateDefaultTestInput(t)
			k := keepers.DaoGameKeeper
			if spec.maxPeriod != 0 {
				params := k.GetParams(ctx)
				params.MaxVotingPeriod = spec.maxPeriod
				k.setParams(ctx, params)
			}
			if spec.setupCtx != nil {
				ctx = spec.setupCtx(ctx)
			}

			// when
			gotID, gotErr := k.CreateProposal(ctx, creator, "my title", "my description", spec.votingPeriod)

			// then
			if spec.expErr != nil {
				require.True(t, spec.expErr.Is(gotErr), "expected %v but got %v", spec.expErr, gotErr)
				assert.Equal(t, uint64(0), k.GetPlayerScore(ctx, creator))
				return
			}
			require.NoError(t, gotErr)
			assert.Equal(t, spec.expID, gotID)

			proposal, err := k.GetProposal(ctx, gotID)
			require.NoError(t, err)
			currentBlock := uint64(ctx.BlockHeight())
			assert.Equal(t, creator.String(), proposal.Creator)
			assert.Equal(t, "my title", proposal.Title)
			assert.Equal(t, currentBlock, proposal.StartBlock)
			assert.Equal(t, currentBlock+spec.votingPeriod, proposal.EndBlock)
			assert.True(t, proposal.VotesFor.IsZero())
			assert.True(t, proposal.VotesAgainst.IsZero())
			assert.False(t, proposal.Executed)

			// creator points awarded
			assert.Equal(t, types.DefaultCreatorPoints, k.GetPlayerScore(ctx, creator))
		})
	}
}

func TestProposalIDSequence(t *testing.T) {
	ctx, keepers := CreateDefaultTestInput(t)
	k := keepers.DaoGameKeeper
	creator := types.RandomAccAddress()

	for expID := uint32(1); expID <= 3; expID++ {
		gotID, err := k.CreateProposal(ctx, creator, "my title", "my description", 10)
		require.NoError(t, err)
		assert.Equal(t, expID, gotID)
	}
	assert.Equal(t, uint32(4), k.GetNextProposalID(ctx))
}

func TestExecuteProposal(t *testing.T) {
	creator := types.RandomAccAddress()

	specs := map[string]struct {
		votesFor     int64
		votesAgainst int64
		height       int64
		settled      bool
		expErr       *sdkerrors.Error
		expPassed    bool
	}{
		"more stake for than against passes": {
			votesFor:     2,
			votesAgainst: 1,
			height:       12,
			expPassed:    true,
		},
		"more stake against fails": {
			votesFor:     1,
			votesAgainst: 2,
			height:       12,
			expPassed:    false,
		},
		"tie fails": {
			votesFor:     1,
			votesAgainst: 1,
			height:       12,
			expPassed:    false,
		},
		"no votes fails": {
			height:    12,
			expPassed: false,
		},
		"window still open": {
			height: 11, // proposal end block
			expErr: types.ErrVotingStillActive,
		},
		"already settled": {
			height:  12,
			settled: true,
			expErr:  types.ErrAlreadyExecuted,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			ctx, keepers := CreateDefaultTestInput(t)
			k := keepers.DaoGameKeeper
			proposal := types.ProposalFixture(func(p *types.Proposal) {
				p.Creator = creator.String()
				p.VotesFor = sdk.NewInt(spec.votesFor)
				p.VotesAgainst = sdk.NewInt(spec.votesAgainst)
				p.Executed = spec.settled
			})
			k.setProposal(ctx, proposal)
			k.setNextProposalID(ctx, proposal.Id+1)
			ctx = ctx.WithBlockHeight(spec.height)

			// when
			gotPassed, gotErr := k.ExecuteProposal(ctx, proposal.Id)

			// then
			if spec.expErr != nil {
				require.True(t, spec.expErr.Is(gotErr), "expected %v but got %v", spec.expErr, gotErr)
				return
			}
			require.NoError(t, gotErr)
			assert.Equal(t, spec.expPassed, gotPassed)

			stored, err := k.GetProposal(ctx, proposal.Id)
			require.NoError(t, err)
			assert.True(t, stored.Executed)
			assert.Equal(t, spec.expPassed, stored.Passed)

			expBonus := uint64(0)
			if spec.expPassed {
				expBonus = types.DefaultExecutedBonus
			}
			assert.Equal(t, expBonus, k.GetPlayerScore(ctx, creator))

			// settled exactly once
			_, gotErr = k.ExecuteProposal(ctx, proposal.Id)
			require.True(t, types.ErrAlreadyExecuted.Is(gotErr))
		})
	}
}

func TestExecuteProposalNotFound(t *testing.T) {
	ctx, keepers := CreateDefaultTestInput(t)
	_, gotErr := keepers.DaoGameKeeper.ExecuteProposal(ctx, 99)
	require.True(t, types.ErrProposalNotFound.Is(gotErr))
}
