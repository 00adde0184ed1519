package daogame

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/confio/quantum-dao/x/daogame/keeper"
	"github.com/confio/quantum-dao/x/daogame/types"
)

// NewHandler constructor
func NewHandler(k keeper.GameKeeper) sdk.Handler {
	return newHandler(keeper.NewMsgServerImpl(k))
}

// internal constructor for testing
func newHandler(msgServer types.MsgServer) sdk.Handler {
	return func(ctx sdk.Context, msg sdk.Msg) (*sdk.Result, error) {
		ctx = ctx.WithEventManager(sdk.NewEventManager())

		switch msg := msg.(type) {
		case *types.MsgCreateProposal:
			res, err := msgServer.CreateProposal(sdk.WrapSDKContext(ctx), msg)
			return wrapServiceResult(ctx, res, err)
		case *types.MsgVote:
			res, err := msgServer.Vote(sdk.WrapSDKContext(ctx), msg)
			return wrapServiceResult(ctx, res, err)
		case *types.MsgExecuteProposal:
			res, err := msgServer.ExecuteProposal(sdk.WrapSDKContext(ctx), msg)
			return wrapServiceResult(ctx, res, err)
		case *types.MsgClaimReward:
			res, err := msgServer.ClaimReward(sdk.WrapSDKContext(ctx), msg)
			return wrapServiceResult(ctx, res, err)
		default:
			return nil, sdkerrors.Wrapf(sdkerrors.ErrUnknownRequest, "unrecognized %s message type: %T", types.ModuleName, msg)
		}
	}
}

// wrapServiceResult converts a msg server response into an sdk.Result. The
// response payload travels as amino JSON since the module carries no proto
// services.
func wrapServiceResult(ctx sdk.Context, res interface{}, err error) (*sdk.Result, error) {
	if err != nil {
		return nil, err
	}
	var data []byte
	if res != nil {
		data, err = types.ModuleCdc.LegacyAmino.MarshalJSON(res)
		if err != nil {
			return nil, sdkerrors.Wrap(sdkerrors.ErrJSONMarshal, err.Error())
		}
	}
	return &sdk.Result{
		Data:   data,
		Events: ctx.EventManager().ABCIEvents(),
	}, nil
}
