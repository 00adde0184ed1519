package app

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	daogametypes "github.com/confio/quantum-dao/x/daogame/types"
)

func TestGameMsgTxRoundTrip(t *testing.T) {
	encodingConfig := MakeEncodingConfig()
	myAddr := daogametypes.RandomAccAddress()

	specs := map[string]struct {
		srcMsg sdk.Msg
	}{
		"create proposal": {
			srcMsg: daogametypes.NewMsgCreateProposal(myAddr, "my title", "my description", 10),
		},
		"vote": {
			srcMsg: daogametypes.NewMsgVote(myAddr, 1, true, sdk.NewInt64Coin(sdk.DefaultBondDenom, 1_000_000)),
		},
		"execute proposal": {
			srcMsg: daogametypes.NewMsgExecuteProposal(myAddr, 1),
		},
		"claim reward": {
			srcMsg: daogametypes.NewMsgClaimReward(myAddr),
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			txBuilder := encodingConfig.TxConfig.NewTxBuilder()
			require.NoError(t, txBuilder.SetMsgs(spec.srcMsg))

			bz, err := encodingConfig.TxConfig.TxEncoder()(txBuilder.GetTx())
			require.NoError(t, err)
			require.NotEmpty(t, bz)

			// decode with the same decoder the baseapp is constructed with
			gotTx, err := encodingConfig.TxConfig.TxDecoder()(bz)
			require.NoError(t, err)
			gotMsgs := gotTx.GetMsgs()
			require.Len(t, gotMsgs, 1)
			assert.Equal(t, spec.srcMsg, gotMsgs[0])
			assert.NoError(t, gotMsgs[0].ValidateBasic())
		})
	}
}
