package keeper

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tidwall/gjson"

	"github.com/confio/quantum-dao/x/daogame/types"
)

func TestLegacyQuerier(t *testing.T) {
	ctx, keepers := CreateDefaultTestInput(t)
	k := keepers.DaoGameKeeper
	cdc := keepers.EncodingConfig.Amino

	proposal := types.ProposalFixture()
	k.setProposal(ctx, proposal)
	k.setNextProposalID(ctx, proposal.Id+1)

	voter := types.RandomAccAddress()
	vote := types.VoteFixture(func(v *types.Vote) {
		v.Voter = voter.String()
		v.ProposalId = proposal.Id
	})
	k.setVote(ctx, vote)

	player := types.RandomAccAddress()
	k.setPlayerScore(ctx, player, 42)

	q := NewLegacyQuerier(k, cdc)

	specs := map[string]struct {
		path   []string
		data   []byte
		expErr bool
		assert func(t *testing.T, bz []byte)
	}{
		"proposal": {
			path: []string{types.QueryProposal, "1"},
			assert: func(t *testing.T, bz []byte) {
				assert.Equal(t, proposal.Creator, gjson.GetBytes(bz, "creator").String())
				assert.Equal(t, "my title", gjson.GetBytes(bz, "title").String())
			},
		},
		"unknown proposal": {
			path:   []string{types.QueryProposal, "99"},
			expErr: true,
		},
		"invalid proposal id": {
			path:   []string{types.QueryProposal, "not-a-number"},
			expErr: true,
		},
		"vote": {
			path: []string{types.QueryVote, "1", voter.String()},
			assert: func(t *testing.T, bz []byte) {
				assert.Equal(t, voter.String(), gjson.GetBytes(bz, "voter").String())
				assert.True(t, gjson.GetBytes(bz, "vote_for").Bool())
			},
		},
		"score": {
			path: []string{types.QueryPlayerScore, player.String()},
			assert: func(t *testing.T, bz []byte) {
				assert.Equal(t, int64(42), gjson.ParseBytes(bz).Int())
			},
		},
		"score of unknown player is zero": {
			path: []string{types.QueryPlayerScore, types.RandomAccAddress().String()},
			assert: func(t *testing.T, bz []byte) {
				assert.Equal(t, int64(0), gjson.ParseBytes(bz).Int())
			},
		},
		"leaderboard": {
			path: []string{types.QueryLeaderboard},
			data: []byte(`{"limit": 1}`),
			assert: func(t *testing.T, bz []byte) {
				rows := gjson.ParseBytes(bz).Array()
				require.Len(t, rows, 1)
				assert.Equal(t, player.String(), rows[0].Get("player").String())
				assert.Equal(t, int64(42), rows[0].Get("score").Int())
			},
		},
		"is active": {
			path: []string{types.QueryIsGameActive},
			assert: func(t *testing.T, bz []byte) {
				assert.True(t, gjson.GetBytes(bz, "active").Bool())
				assert.Equal(t, int64(1), gjson.GetBytes(bz, "current_block").Int())
				assert.Equal(t, int64(101), gjson.GetBytes(bz, "end_block").Int())
			},
		},
		"params": {
			path: []string{types.QueryParams},
			assert: func(t *testing.T, bz []byte) {
				assert.Equal(t, int64(types.DefaultCreatorPoints), gjson.GetBytes(bz, "creator_points").Int())
			},
		},
		"unknown endpoint": {
			path:   []string{"unknown"},
			expErr: true,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			bz, err := q(ctx, spec.path, abci.RequestQuery{Data: spec.data})
			if spec.expErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			spec.assert(t, bz)
		})
	}
}

func TestQueryIsGameActivePhases(t *testing.T) {
	ctx, keepers := CreateDefaultTestInput(t)
	k := keepers.DaoGameKeeper
	cdc := keepers.EncodingConfig.Amino
	q := NewLegacyQuerier(k, cdc)

	for _, spec := range []struct {
		height    int64
		expActive bool
	}{
		{height: 1, expActive: true},
		{height: 101, expActive: true},
		{height: 102, expActive: false},
	} {
		t.Run(fmt.Sprintf("height %d", spec.height), func(t *testing.T) {
			bz, err := q(ctx.WithBlockHeight(spec.height), []string{types.QueryIsGameActive}, abci.RequestQuery{})
			require.NoError(t, err)
			assert.Equal(t, spec.expActive, gjson.GetBytes(bz, "active").Bool())
		})
	}
}
