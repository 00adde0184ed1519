package daogame

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/confio/quantum-dao/x/daogame/keeper"
	"github.com/confio/quantum-dao/x/daogame/types"
)

func TestHandlerRouting(t *testing.T) {
	var (
		creator = types.RandomAccAddress()
		voter   = types.RandomAccAddress()
		stake   = sdk.NewCoin(sdk.DefaultBondDenom, types.DefaultUnitStake)
	)

	specs := map[string]struct {
		setup  func(t *testing.T, ctx sdk.Context, keepers keeper.TestKeepers) sdk.Context
		src    sdk.Msg
		expErr *sdkerrors.Error
		assert func(t *testing.T, ctx sdk.Context, keepers keeper.TestKeepers, res *sdk.Result)
	}{
		"create proposal": {
			src: types.NewMsgCreateProposal(creator, "my title", "my description", 10),
			assert: func(t *testing.T, ctx sdk.Context, keepers keeper.TestKeepers, res *sdk.Result) {
				assert.Equal(t, int64(1), gjson.GetBytes(res.Data, "proposal_id").Int())
				_, err := keepers.DaoGameKeeper.GetProposal(ctx, 1)
				require.NoError(t, err)
			},
		},
		"vote": {
			setup: func(t *testing.T, ctx sdk.Context, keepers keeper.TestKeepers) sdk.Context {
				_, err := keepers.DaoGameKeeper.CreateProposal(ctx, creator, "my title", "", 10)
				require.NoError(t, err)
				keeper.FundAccount(t, ctx, keepers.BankKeeper, voter, sdk.NewCoins(stake))
				return ctx.WithBlockHeight(5)
			},
			src: types.NewMsgVote(voter, 1, true, stake),
			assert: func(t *testing.T, ctx sdk.Context, keepers keeper.TestKeepers, res *sdk.Result) {
				vote, err := keepers.DaoGameKeeper.GetVote(ctx, 1, voter)
				require.NoError(t, err)
				assert.True(t, vote.VoteFor)
			},
		},
		"execute proposal": {
			setup: func(t *testing.T, ctx sdk.Context, keepers keeper.TestKeepers) sdk.Context {
				_, err := keepers.DaoGameKeeper.CreateProposal(ctx, creator, "my title", "", 10)
				require.NoError(t, err)
				return ctx.WithBlockHeight(12)
			},
			src: types.NewMsgExecuteProposal(creator, 1),
			assert: func(t *testing.T, ctx sdk.Context, keepers keeper.TestKeepers, res *sdk.Result) {
				proposal, err := keepers.DaoGameKeeper.GetProposal(ctx, 1)
				require.NoError(t, err)
				assert.True(t, proposal.Executed)
				assert.False(t, proposal.Passed) // no votes
			},
		},
		"claim reward": {
			setup: func(t *testing.T, ctx sdk.Context, keepers keeper.TestKeepers) sdk.Context {
				_, err := keepers.DaoGameKeeper.CreateProposal(ctx, creator, "my title", "", 10)
				require.NoError(t, err)
				return ctx.WithBlockHeight(102)
			},
			src: types.NewMsgClaimReward(creator),
			assert: func(t *testing.T, ctx sdk.Context, keepers keeper.TestKeepers, res *sdk.Result) {
				assert.Equal(t, int64(types.DefaultCreatorPoints), gjson.GetBytes(res.Data, "score").Int())
				assert.True(t, keepers.DaoGameKeeper.HasClaimedReward(ctx, creator))
			},
		},
		"keeper error surfaces": {
			src:    types.NewMsgExecuteProposal(creator, 99),
			expErr: types.ErrProposalNotFound,
		},
		"unknown msg rejected": {
			src:    &unknownMsg{},
			expErr: sdkerrors.ErrUnknownRequest,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			ctx, keepers := keeper.CreateDefaultTestInput(t)
			if spec.setup != nil {
				ctx = spec.setup(t, ctx, keepers)
			}
			h := NewHandler(keepers.DaoGameKeeper)

			res, gotErr := h(ctx, spec.src)
			if spec.expErr != nil {
				require.True(t, spec.expErr.Is(gotErr), "expected %v but got %v", spec.expErr, gotErr)
				return
			}
			require.NoError(t, gotErr)
			require.NotNil(t, res)
			spec.assert(t, ctx, keepers, res)
		})
	}
}

type unknownMsg struct{}

func (unknownMsg) Reset()                       {}
func (unknownMsg) String() string               { return "unknown" }
func (unknownMsg) ProtoMessage()                {}
func (unknownMsg) ValidateBasic() error         { return nil }
func (unknownMsg) GetSigners() []sdk.AccAddress { return nil }
