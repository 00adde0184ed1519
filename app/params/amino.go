package params

import (
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/x/auth/legacy/legacytx"
)

// MakeEncodingConfig creates an EncodingConfig with an amino StdTx pipeline.
// The daogame messages are registered with the legacy amino codec only, so
// transactions travel as StdTx signed with amino JSON and are dispatched
// through the legacy msg router.
func MakeEncodingConfig() EncodingConfig {
	amino := codec.NewLegacyAmino()
	interfaceRegistry := types.NewInterfaceRegistry()
	marshaler := codec.NewProtoCodec(interfaceRegistry)

	return EncodingConfig{
		InterfaceRegistry: interfaceRegistry,
		Codec:             marshaler,
		TxConfig:          legacytx.StdTxConfig{Cdc: amino},
		Amino:             amino,
	}
}
