package keeper

import (
	"context"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confio/quantum-dao/x/daogame/types"
)

// GameKeeperMock implements GameKeeper with function fields for tests
type GameKeeperMock struct {
	CreateProposalFn  func(ctx sdk.Context, creator sdk.AccAddress, title, description string, votingPeriodBlocks uint64) (uint32, error)
	CastVoteFn        func(ctx sdk.Context, voter sdk.AccAddress, proposalID uint32, voteFor bool, stake sdk.Coin) error
	ExecuteProposalFn func(ctx sdk.Context, proposalID uint32) (bool, error)
	ClaimRewardFn     func(ctx sdk.Context, player sdk.AccAddress) (uint64, error)
}

func (m GameKeeperMock) CreateProposal(ctx sdk.Context, creator sdk.AccAddress, title, description string, votingPeriodBlocks uint64) (uint32, error) {
	if m.CreateProposalFn == nil {
		panic("not expected to be called")
	}
	return m.CreateProposalFn(ctx, creator, title, description, votingPeriodBlocks)
}

func (m GameKeeperMock) CastVote(ctx sdk.Context, voter sdk.AccAddress, proposalID uint32, voteFor bool, stake sdk.Coin) error {
	if m.CastVoteFn == nil {
		panic("not expected to be called")
	}
	return m.CastVoteFn(ctx, voter, proposalID, voteFor, stake)
}

func (m GameKeeperMock) ExecuteProposal(ctx sdk.Context, proposalID uint32) (bool, error) {
	if m.ExecuteProposalFn == nil {
		panic("not expected to be called")
	}
	return m.ExecuteProposalFn(ctx, proposalID)
}

func (m GameKeeperMock) ClaimReward(ctx sdk.Context, player sdk.AccAddress) (uint64, error) {
	if m.ClaimRewardFn == nil {
		panic("not expected to be called")
	}
	return m.ClaimRewardFn(ctx, player)
}

func TestMsgServerCreateProposal(t *testing.T) {
	creator := types.RandomAccAddress()
	specs := map[string]struct {
		src    *types.MsgCreateProposal
		mockFn func(ctx sdk.Context, creator sdk.AccAddress, title, description string, votingPeriodBlocks uint64) (uint32, error)
		expErr bool
		expID  uint32
	}{
		"all good": {
			src: types.NewMsgCreateProposal(creator, "my title", "my description", 10),
			mockFn: func(_ sdk.Context, gotCreator sdk.AccAddress, title, description string, votingPeriodBlocks uint64) (uint32, error) {
				assert.Equal(t, creator, gotCreator)
				assert.Equal(t, "my title", title)
				assert.Equal(t, "my description", description)
				assert.Equal(t, uint64(10), votingPeriodBlocks)
				return 7, nil
			},
			expID: 7,
		},
		"invalid creator address": {
			src:    &types.MsgCreateProposal{Creator: "not-an-address", Title: "my title", VotingPeriodBlocks: 10},
			expErr: true,
		},
		"keeper error returned": {
			src: types.NewMsgCreateProposal(creator, "my title", "", 10),
			mockFn: func(sdk.Context, sdk.AccAddress, string, string, uint64) (uint32, error) {
				return 0, types.ErrGameEnded
			},
			expErr: true,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			ctx := sdk.Context{}.WithContext(context.Background()).WithEventManager(sdk.NewEventManager())
			m := NewMsgServerImpl(GameKeeperMock{CreateProposalFn: spec.mockFn})

			got, gotErr := m.CreateProposal(sdk.WrapSDKContext(ctx), spec.src)
			if spec.expErr {
				require.Error(t, gotErr)
				return
			}
			require.NoError(t, gotErr)
			assert.Equal(t, spec.expID, got.ProposalId)
		})
	}
}

func TestMsgServerVote(t *testing.T) {
	voter := types.RandomAccAddress()
	stake := sdk.NewCoin(sdk.DefaultBondDenom, sdk.NewInt(100))
	specs := map[string]struct {
		src    *types.MsgVote
		mockFn func(ctx sdk.Context, voter sdk.AccAddress, proposalID uint32, voteFor bool, stake sdk.Coin) error
		expErr bool
	}{
		"all good": {
			src: types.NewMsgVote(voter, 1, true, stake),
			mockFn: func(_ sdk.Context, gotVoter sdk.AccAddress, proposalID uint32, voteFor bool, gotStake sdk.Coin) error {
				assert.Equal(t, voter, gotVoter)
				assert.Equal(t, uint32(1), proposalID)
				assert.True(t, voteFor)
				assert.Equal(t, stake, gotStake)
				return nil
			},
		},
		"invalid voter address": {
			src:    &types.MsgVote{Voter: "not-an-address", ProposalId: 1, Stake: stake},
			expErr: true,
		},
		"keeper error returned": {
			src: types.NewMsgVote(voter, 1, false, stake),
			mockFn: func(sdk.Context, sdk.AccAddress, uint32, bool, sdk.Coin) error {
				return types.ErrAlreadyVoted
			},
			expErr: true,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			ctx := sdk.Context{}.WithContext(context.Background()).WithEventManager(sdk.NewEventManager())
			m := NewMsgServerImpl(GameKeeperMock{CastVoteFn: spec.mockFn})

			_, gotErr := m.Vote(sdk.WrapSDKContext(ctx), spec.src)
			if spec.expErr {
				require.Error(t, gotErr)
				return
			}
			require.NoError(t, gotErr)
		})
	}
}

func TestMsgServerExecuteProposal(t *testing.T) {
	sender := types.RandomAccAddress()
	specs := map[string]struct {
		src       *types.MsgExecuteProposal
		mockFn    func(ctx sdk.Context, proposalID uint32) (bool, error)
		expErr    bool
		expPassed bool
	}{
		"passed": {
			src: types.NewMsgExecuteProposal(sender, 1),
			mockFn: func(_ sdk.Context, proposalID uint32) (bool, error) {
				assert.Equal(t, uint32(1), proposalID)
				return true, nil
			},
			expPassed: true,
		},
		"failed": {
			src: types.NewMsgExecuteProposal(sender, 1),
			mockFn: func(sdk.Context, uint32) (bool, error) {
				return false, nil
			},
		},
		"invalid sender address": {
			src:    &types.MsgExecuteProposal{Sender: "not-an-address", ProposalId: 1},
			expErr: true,
		},
		"keeper error returned": {
			src: types.NewMsgExecuteProposal(sender, 1),
			mockFn: func(sdk.Context, uint32) (bool, error) {
				return false, types.ErrVotingStillActive
			},
			expErr: true,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			ctx := sdk.Context{}.WithContext(context.Background()).WithEventManager(sdk.NewEventManager())
			m := NewMsgServerImpl(GameKeeperMock{ExecuteProposalFn: spec.mockFn})

			got, gotErr := m.ExecuteProposal(sdk.WrapSDKContext(ctx), spec.src)
			if spec.expErr {
				require.Error(t, gotErr)
				return
			}
			require.NoError(t, gotErr)
			assert.Equal(t, spec.expPassed, got.Passed)
		})
	}
}

func TestMsgServerClaimReward(t *testing.T) {
	sender := types.RandomAccAddress()
	specs := map[string]struct {
		src      *types.MsgClaimReward
		mockFn   func(ctx sdk.Context, player sdk.AccAddress) (uint64, error)
		expErr   bool
		expScore uint64
	}{
		"all good": {
			src: types.NewMsgClaimReward(sender),
			mockFn: func(_ sdk.Context, player sdk.AccAddress) (uint64, error) {
				assert.Equal(t, sender, player)
				return 42, nil
			},
			expScore: 42,
		},
		"invalid sender address": {
			src:    &types.MsgClaimReward{Sender: "not-an-address"},
			expErr: true,
		},
		"keeper error returned": {
			src: types.NewMsgClaimReward(sender),
			mockFn: func(sdk.Context, sdk.AccAddress) (uint64, error) {
				return 0, types.ErrNotEligible
			},
			expErr: true,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			ctx := sdk.Context{}.WithContext(context.Background()).WithEventManager(sdk.NewEventManager())
			m := NewMsgServerImpl(GameKeeperMock{ClaimRewardFn: spec.mockFn})

			got, gotErr := m.ClaimReward(sdk.WrapSDKContext(ctx), spec.src)
			if spec.expErr {
				require.Error(t, gotErr)
				return
			}
			require.NoError(t, gotErr)
			assert.Equal(t, spec.expScore, got.Score)
		})
	}
}
