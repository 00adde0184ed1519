package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	paramtypes "github.com/cosmos/cosmos-sdk/x/params/types"
	yaml "gopkg.in/yaml.v2"
)

// daogame params default values
const (
	// DefaultCreatorPoints are awarded for creating a proposal
	DefaultCreatorPoints uint64 = 10

	// DefaultExecutedBonus is the extra award for the creator of a passed proposal
	DefaultExecutedBonus uint64 = 50

	// DefaultVotePointsMultiplier scales the stake-derived vote points
	DefaultVotePointsMultiplier uint64 = 2

	// DefaultRewardCohortSize is the top-K score cut off for reward eligibility
	DefaultRewardCohortSize uint32 = 10

	// DefaultMaxVotingPeriod 0 means proposal voting periods are unbounded
	DefaultMaxVotingPeriod uint64 = 0
)

// DefaultUnitStake is one base denomination unit of the staking asset. A vote
// stake is normalized by this constant before points are derived from it.
var DefaultUnitStake = sdk.NewIntWithDecimal(1, 18)

var (
	KeyCreatorPoints        = []byte("CreatorPoints")
	KeyExecutedBonus        = []byte("ExecutedBonus")
	KeyVotePointsMultiplier = []byte("VotePointsMultiplier")
	KeyRewardCohortSize     = []byte("RewardCohortSize")
	KeyMaxVotingPeriod      = []byte("MaxVotingPeriod")
	KeyUnitStake            = []byte("UnitStake")
)

// Params are the operator-configurable knobs of the game score mechanics.
type Params struct {
	CreatorPoints        uint64  `json:"creator_points" yaml:"creator_points"`
	ExecutedBonus        uint64  `json:"executed_bonus" yaml:"executed_bonus"`
	VotePointsMultiplier uint64  `json:"vote_points_multiplier" yaml:"vote_points_multiplier"`
	RewardCohortSize     uint32  `json:"reward_cohort_size" yaml:"reward_cohort_size"`
	MaxVotingPeriod      uint64  `json:"max_voting_period" yaml:"max_voting_period"`
	UnitStake            sdk.Int `json:"unit_stake" yaml:"unit_stake"`
}

var _ paramtypes.ParamSet = (*Params)(nil)

// ParamKeyTable for the daogame module
func ParamKeyTable() paramtypes.KeyTable {
	return paramtypes.NewKeyTable().RegisterParamSet(&Params{})
}

// NewParams creates a new Params instance
func NewParams(creatorPoints, executedBonus, voteMultiplier uint64, cohortSize uint32, maxVotingPeriod uint64, unitStake sdk.Int) Params {
	return Params{
		CreatorPoints:        creatorPoints,
		ExecutedBonus:        executedBonus,
		VotePointsMultiplier: voteMultiplier,
		RewardCohortSize:     cohortSize,
		MaxVotingPeriod:      maxVotingPeriod,
		UnitStake:            unitStake,
	}
}

// ParamSetPairs implements params.ParamSet
func (p *Params) ParamSetPairs() paramtypes.ParamSetPairs {
	return paramtypes.ParamSetPairs{
		paramtypes.NewParamSetPair(KeyCreatorPoints, &p.CreatorPoints, validateUint64),
		paramtypes.NewParamSetPair(KeyExecutedBonus, &p.ExecutedBonus, validateUint64),
		paramtypes.NewParamSetPair(KeyVotePointsMultiplier, &p.VotePointsMultiplier, validatePositiveUint64),
		paramtypes.NewParamSetPair(KeyRewardCohortSize, &p.RewardCohortSize, validatePositiveUint32),
		paramtypes.NewParamSetPair(KeyMaxVotingPeriod, &p.MaxVotingPeriod, validateUint64),
		paramtypes.NewParamSetPair(KeyUnitStake, &p.UnitStake, validatePositiveInt),
	}
}

// DefaultParams returns a default set of parameters.
func DefaultParams() Params {
	return NewParams(
		DefaultCreatorPoints,
		DefaultExecutedBonus,
		DefaultVotePointsMultiplier,
		DefaultRewardCohortSize,
		DefaultMaxVotingPeriod,
		DefaultUnitStake,
	)
}

// String returns a human readable string representation of the parameters.
func (p Params) String() string {
	out, _ := yaml.Marshal(p)
	return string(out)
}

// Validate validate a set of params
func (p Params) Validate() error {
	if err := validatePositiveUint64(p.VotePointsMultiplier); err != nil {
		return err
	}
	if err := validatePositiveUint32(p.RewardCohortSize); err != nil {
		return err
	}
	return validatePositiveInt(p.UnitStake)
}

func validateUint64(i interface{}) error {
	_, ok := i.(uint64)
	if !ok {
		return fmt.Errorf("invalid parameter type: %T", i)
	}
	return nil
}

func validatePositiveUint64(i interface{}) error {
	v, ok := i.(uint64)
	if !ok {
		return fmt.Errorf("invalid parameter type: %T", i)
	}
	if v == 0 {
		return fmt.Errorf("must not be zero: %d", v)
	}
	return nil
}

func validatePositiveUint32(i interface{}) error {
	v, ok := i.(uint32)
	if !ok {
		return fmt.Errorf("invalid parameter type: %T", i)
	}
	if v == 0 {
		return fmt.Errorf("must not be zero: %d", v)
	}
	return nil
}

func validatePositiveInt(i interface{}) error {
	v, ok := i.(sdk.Int)
	if !ok {
		return fmt.Errorf("invalid parameter type: %T", i)
	}
	if v.IsNil() || !v.IsPositive() {
		return fmt.Errorf("must be positive: %s", v)
	}
	return nil
}
