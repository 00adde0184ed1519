package types

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamsValidate(t *testing.T) {
	specs := map[string]struct {
		mutator func(*Params)
		expErr  bool
	}{
		"default": {
			mutator: func(*Params) {},
		},
		"zero creator points allowed": {
			mutator: func(p *Params) { p.CreatorPoints = 0 },
		},
		"zero executed bonus allowed": {
			mutator: func(p *Params) { p.ExecutedBonus = 0 },
		},
		"zero multiplier": {
			mutator: func(p *Params) { p.VotePointsMultiplier = 0 },
			expErr:  true,
		},
		"zero cohort size": {
			mutator: func(p *Params) { p.RewardCohortSize = 0 },
			expErr:  true,
		},
		"nil unit stake": {
			mutator: func(p *Params) { p.UnitStake = sdk.Int{} },
			expErr:  true,
		},
		"zero unit stake": {
			mutator: func(p *Params) { p.UnitStake = sdk.ZeroInt() },
			expErr:  true,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			params := DefaultParams()
			spec.mutator(&params)

			gotErr := params.Validate()
			if spec.expErr {
				require.Error(t, gotErr)
				return
			}
			require.NoError(t, gotErr)
		})
	}
}

func TestDefaultParams(t *testing.T) {
	params := DefaultParams()
	assert.Equal(t, uint64(10), params.CreatorPoints)
	assert.Equal(t, uint64(50), params.ExecutedBonus)
	assert.Equal(t, uint64(2), params.VotePointsMultiplier)
	assert.Equal(t, uint32(10), params.RewardCohortSize)
	assert.Equal(t, uint64(0), params.MaxVotingPeriod)
	assert.Equal(t, sdk.NewIntWithDecimal(1, 18), params.UnitStake)
	require.NoError(t, params.Validate())
}
