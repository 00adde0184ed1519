package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cryptocodec "github.com/cosmos/cosmos-sdk/crypto/codec"
)

// RegisterLegacyAminoCodec registers the daogame types and messages
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgCreateProposal{}, "daogame/CreateProposal", nil)
	cdc.RegisterConcrete(&MsgVote{}, "daogame/Vote", nil)
	cdc.RegisterConcrete(&MsgExecuteProposal{}, "daogame/ExecuteProposal", nil)
	cdc.RegisterConcrete(&MsgClaimReward{}, "daogame/ClaimReward", nil)
}

var (
	amino = codec.NewLegacyAmino()

	// ModuleCdc references the global x/daogame module codec. The module is
	// amino only: store values, sign bytes, genesis and the legacy querier all
	// go through it.
	ModuleCdc = codec.NewAminoCodec(amino)
)

func init() {
	RegisterLegacyAminoCodec(amino)
	cryptocodec.RegisterCrypto(amino)
	amino.Seal()
}
