package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/confio/quantum-dao/x/daogame/types"
)

// GameKeeper is the subset of the keeper the msg server needs
type GameKeeper interface {
	CreateProposal(ctx sdk.Context, creator sdk.AccAddress, title, description string, votingPeriodBlocks uint64) (uint32, error)
	CastVote(ctx sdk.Context, voter sdk.AccAddress, proposalID uint32, voteFor bool, stake sdk.Coin) error
	ExecuteProposal(ctx sdk.Context, proposalID uint32) (bool, error)
	ClaimReward(ctx sdk.Context, player sdk.AccAddress) (uint64, error)
}

type msgServer struct {
	keeper GameKeeper
}

// NewMsgServerImpl returns an implementation of the daogame MsgServer
// interface for the provided keeper.
func NewMsgServerImpl(k GameKeeper) types.MsgServer {
	return msgServer{keeper: k}
}

var _ types.MsgServer = msgServer{}

func (m msgServer) CreateProposal(goCtx context.Context, msg *types.MsgCreateProposal) (*types.MsgCreateProposalResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "creator")
	}

	proposalID, err := m.keeper.CreateProposal(ctx, creator, msg.Title, msg.Description, msg.VotingPeriodBlocks)
	if err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		sdk.EventTypeMessage,
		sdk.NewAttribute(sdk.AttributeKeyModule, types.AttributeValueCategory),
		sdk.NewAttribute(sdk.AttributeKeySender, msg.Creator),
	))
	return &types.MsgCreateProposalResponse{ProposalId: proposalID}, nil
}

func (m msgServer) Vote(goCtx context.Context, msg *types.MsgVote) (*types.MsgVoteResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	voter, err := sdk.AccAddressFromBech32(msg.Voter)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "voter")
	}

	if err := m.keeper.CastVote(ctx, voter, msg.ProposalId, msg.VoteFor, msg.Stake); err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		sdk.EventTypeMessage,
		sdk.NewAttribute(sdk.AttributeKeyModule, types.AttributeValueCategory),
		sdk.NewAttribute(sdk.AttributeKeySender, msg.Voter),
	))
	return &types.MsgVoteResponse{}, nil
}

func (m msgServer) ExecuteProposal(goCtx context.Context, msg *types.MsgExecuteProposal) (*types.MsgExecuteProposalResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return nil, sdkerrors.Wrap(err, "sender")
	}

	passed, err := m.keeper.ExecuteProposal(ctx, msg.ProposalId)
	if err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		sdk.EventTypeMessage,
		sdk.NewAttribute(sdk.AttributeKeyModule, types.AttributeValueCategory),
		sdk.NewAttribute(sdk.AttributeKeySender, msg.Sender),
	))
	return &types.MsgExecuteProposalResponse{Passed: passed}, nil
}

func (m msgServer) ClaimReward(goCtx context.Context, msg *types.MsgClaimReward) (*types.MsgClaimRewardResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	player, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "sender")
	}

	score, err := m.keeper.ClaimReward(ctx, player)
	if err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		sdk.EventTypeMessage,
		sdk.NewAttribute(sdk.AttributeKeyModule, types.AttributeValueCategory),
		sdk.NewAttribute(sdk.AttributeKeySender, msg.Sender),
	))
	return &types.MsgClaimRewardResponse{Score: score}, nil
}
