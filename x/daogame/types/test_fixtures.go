package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/tendermint/tendermint/libs/rand"
)

// RandomAccAddress returns a new random account address
func RandomAccAddress() sdk.AccAddress {
	return rand.Bytes(20)
}

// GameConfigFixture test helper
func GameConfigFixture(mutators ...func(*GameConfig)) GameConfig {
	r := GameConfig{
		GameDurationBlocks: 100,
		StartBlock:         1,
		StakeDenom:         sdk.DefaultBondDenom,
		RewardDenom:        "qdnft",
	}
	for _, m := range mutators {
		m(&r)
	}
	return r
}

// ProposalFixture test helper
func ProposalFixture(mutators ...func(*Proposal)) Proposal {
	r := NewProposal(1, RandomAccAddress(), "my title", "my description", 1, 11)
	for _, m := range mutators {
		m(&r)
	}
	return r
}

// VoteFixture test helper
func VoteFixture(mutators ...func(*Vote)) Vote {
	r := NewVote(RandomAccAddress(), 1, true, sdk.OneInt(), 2)
	for _, m := range mutators {
		m(&r)
	}
	return r
}

// GenesisStateFixture test helper for a consistent non-empty state
func GenesisStateFixture(mutators ...func(*GenesisState)) GenesisState {
	proposal := ProposalFixture()
	vote := VoteFixture(func(v *Vote) {
		v.ProposalId = proposal.Id
		v.StakeAmount = sdk.NewInt(1_000)
	})
	proposal.VotesFor = vote.StakeAmount

	r := GenesisState{
		Params:         DefaultParams(),
		GameConfig:     GameConfigFixture(),
		NextProposalId: proposal.Id + 1,
		Proposals:      []Proposal{proposal},
		Votes:          []Vote{vote},
		Scores: []PlayerScore{
			{Player: proposal.Creator, Score: DefaultCreatorPoints},
			{Player: vote.Voter, Score: 1},
		},
	}
	for _, m := range mutators {
		m(&r)
	}
	return r
}
