package types

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestMsgCreateProposalValidateBasic(t *testing.T) {
	creator := RandomAccAddress()

	specs := map[string]struct {
		src    *MsgCreateProposal
		expErr bool
	}{
		"all good": {
			src: NewMsgCreateProposal(creator, "my title", "my description", 10),
		},
		"empty description ok": {
			src: NewMsgCreateProposal(creator, "my title", "", 10),
		},
		"invalid creator": {
			src:    &MsgCreateProposal{Creator: "invalid", Title: "my title", VotingPeriodBlocks: 10},
			expErr: true,
		},
		"empty title": {
			src:    NewMsgCreateProposal(creator, "", "my description", 10),
			expErr: true,
		},
		"zero voting period": {
			src:    NewMsgCreateProposal(creator, "my title", "my description", 0),
			expErr: true,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			gotErr := spec.src.ValidateBasic()
			if spec.expErr {
				require.Error(t, gotErr)
				return
			}
			require.NoError(t, gotErr)
		})
	}
}

func TestMsgVoteValidateBasic(t *testing.T) {
	voter := RandomAccAddress()
	stake := sdk.NewCoin(sdk.DefaultBondDenom, sdk.NewInt(100))

	specs := map[string]struct {
		src    *MsgVote
		expErr bool
	}{
		"all good": {
			src: NewMsgVote(voter, 1, true, stake),
		},
		"zero stake passes basic checks": {
			// amount gating happens in the keeper where the config lives
			src: NewMsgVote(voter, 1, true, sdk.NewCoin(sdk.DefaultBondDenom, sdk.ZeroInt())),
		},
		"invalid voter": {
			src:    &MsgVote{Voter: "invalid", ProposalId: 1, Stake: stake},
			expErr: true,
		},
		"zero proposal id": {
			src:    NewMsgVote(voter, 0, true, stake),
			expErr: true,
		},
		"invalid stake": {
			src:    &MsgVote{Voter: voter.String(), ProposalId: 1, Stake: sdk.Coin{Denom: "", Amount: sdk.OneInt()}},
			expErr: true,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			gotErr := spec.src.ValidateBasic()
			if spec.expErr {
				require.Error(t, gotErr)
				return
			}
			require.NoError(t, gotErr)
		})
	}
}

func TestMsgExecuteProposalValidateBasic(t *testing.T) {
	sender := RandomAccAddress()

	specs := map[string]struct {
		src    *MsgExecuteProposal
		expErr bool
	}{
		"all good": {
			src: NewMsgExecuteProposal(sender, 1),
		},
		"invalid sender": {
			src:    &MsgExecuteProposal{Sender: "invalid", ProposalId: 1},
			expErr: true,
		},
		"zero proposal id": {
			src:    NewMsgExecuteProposal(sender, 0),
			expErr: true,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			gotErr := spec.src.ValidateBasic()
			if spec.expErr {
				require.Error(t, gotErr)
				return
			}
			require.NoError(t, gotErr)
		})
	}
}

func TestMsgClaimRewardValidateBasic(t *testing.T) {
	require.NoError(t, NewMsgClaimReward(RandomAccAddress()).ValidateBasic())
	require.Error(t, (&MsgClaimReward{Sender: "invalid"}).ValidateBasic())
}

func TestMsgGetSigners(t *testing.T) {
	addr := RandomAccAddress()
	stake := sdk.NewCoin(sdk.DefaultBondDenom, sdk.OneInt())

	for _, msg := range []sdk.Msg{
		NewMsgCreateProposal(addr, "my title", "", 10),
		NewMsgVote(addr, 1, true, stake),
		NewMsgExecuteProposal(addr, 1),
		NewMsgClaimReward(addr),
	} {
		assert.Equal(t, []sdk.AccAddress{addr}, msg.GetSigners(), "%T", msg)
	}
}

func TestMsgGetSignBytes(t *testing.T) {
	addr := RandomAccAddress()

	specs := map[string]struct {
		src     interface{ GetSignBytes() []byte }
		expType string
	}{
		"create proposal": {
			src:     NewMsgCreateProposal(addr, "my title", "my description", 10),
			expType: "daogame/CreateProposal",
		},
		"vote": {
			src:     NewMsgVote(addr, 1, true, sdk.NewCoin(sdk.DefaultBondDenom, sdk.OneInt())),
			expType: "daogame/Vote",
		},
		"execute proposal": {
			src:     NewMsgExecuteProposal(addr, 1),
			expType: "daogame/ExecuteProposal",
		},
		"claim reward": {
			src:     NewMsgClaimReward(addr),
			expType: "daogame/ClaimReward",
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			bz := spec.src.GetSignBytes()
			assert.Equal(t, spec.expType, gjson.GetBytes(bz, "type").String())
			assert.True(t, gjson.GetBytes(bz, "value").Exists())
		})
	}
}
