package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// PlayerScore is a genesis score table row.
type PlayerScore struct {
	Player string `json:"player" yaml:"player"`
	Score  uint64 `json:"score" yaml:"score"`
}

// GenesisState is the full state of the game as imported/exported.
type GenesisState struct {
	Params         Params        `json:"params" yaml:"params"`
	GameConfig     GameConfig    `json:"game_config" yaml:"game_config"`
	NextProposalId uint32        `json:"next_proposal_id" yaml:"next_proposal_id"`
	Proposals      []Proposal    `json:"proposals,omitempty" yaml:"proposals"`
	Votes          []Vote        `json:"votes,omitempty" yaml:"votes"`
	Scores         []PlayerScore `json:"scores,omitempty" yaml:"scores"`
	// Claimed are the addresses that already claimed the reward. Membership
	// is permanent.
	Claimed []string `json:"claimed,omitempty" yaml:"claimed"`
}

// DefaultGenesisState default game setup: fresh counter, no proposals, start
// block captured on import.
func DefaultGenesisState() GenesisState {
	return GenesisState{
		Params: DefaultParams(),
		GameConfig: GameConfig{
			GameDurationBlocks: 100_000,
			StakeDenom:         sdk.DefaultBondDenom,
			RewardDenom:        "qdnft",
		},
		NextProposalId: 1,
	}
}

// ValidateBasic performs genesis state validation, including the cross-table
// consistency rules: ids below the counter, votes referencing existing
// proposals, tallies matching the vote stakes.
func (g GenesisState) ValidateBasic() error {
	if err := g.Params.Validate(); err != nil {
		return sdkerrors.Wrap(err, "params")
	}
	if err := g.GameConfig.ValidateBasic(); err != nil {
		return sdkerrors.Wrap(err, "game config")
	}
	if g.NextProposalId == 0 {
		return sdkerrors.Wrap(ErrEmpty, "next proposal id")
	}

	proposals := make(map[uint32]Proposal, len(g.Proposals))
	for i, p := range g.Proposals {
		if err := p.ValidateBasic(); err != nil {
			return sdkerrors.Wrapf(err, "proposal [%d]", i)
		}
		if p.Id >= g.NextProposalId {
			return sdkerrors.Wrapf(ErrInvalid, "proposal id %d not below counter %d", p.Id, g.NextProposalId)
		}
		if _, exists := proposals[p.Id]; exists {
			return sdkerrors.Wrapf(ErrInvalid, "duplicate proposal id %d", p.Id)
		}
		proposals[p.Id] = p
	}

	type voteKey struct {
		id    uint32
		voter string
	}
	votesSeen := make(map[voteKey]struct{}, len(g.Votes))
	tallies := make(map[uint32]sdk.Int, len(g.Proposals))
	for i, v := range g.Votes {
		if err := v.ValidateBasic(); err != nil {
			return sdkerrors.Wrapf(err, "vote [%d]", i)
		}
		if _, exists := proposals[v.ProposalId]; !exists {
			return sdkerrors.Wrapf(ErrProposalNotFound, "vote [%d]: proposal %d", i, v.ProposalId)
		}
		key := voteKey{id: v.ProposalId, voter: v.Voter}
		if _, exists := votesSeen[key]; exists {
			return sdkerrors.Wrapf(ErrAlreadyVoted, "vote [%d]: proposal %d voter %s", i, v.ProposalId, v.Voter)
		}
		votesSeen[key] = struct{}{}
		total, ok := tallies[v.ProposalId]
		if !ok {
			total = sdk.ZeroInt()
		}
		tallies[v.ProposalId] = total.Add(v.StakeAmount)
	}
	for id, p := range proposals {
		total, ok := tallies[id]
		if !ok {
			total = sdk.ZeroInt()
		}
		if !p.VotesFor.Add(p.VotesAgainst).Equal(total) {
			return sdkerrors.Wrapf(ErrInvalid, "proposal %d tally does not match vote stakes", id)
		}
	}

	uniqueScores := make(map[string]struct{}, len(g.Scores))
	for i, s := range g.Scores {
		if _, err := sdk.AccAddressFromBech32(s.Player); err != nil {
			return sdkerrors.Wrapf(err, "score [%d]", i)
		}
		if s.Score == 0 {
			return sdkerrors.Wrapf(ErrEmpty, "score [%d]: %s", i, s.Player)
		}
		if _, exists := uniqueScores[s.Player]; exists {
			return sdkerrors.Wrapf(ErrInvalid, "duplicate score entry: %s", s.Player)
		}
		uniqueScores[s.Player] = struct{}{}
	}

	uniqueClaims := make(map[string]struct{}, len(g.Claimed))
	for i, a := range g.Claimed {
		if _, err := sdk.AccAddressFromBech32(a); err != nil {
			return sdkerrors.Wrapf(err, "claimed [%d]", i)
		}
		if _, exists := uniqueClaims[a]; exists {
			return sdkerrors.Wrapf(ErrInvalid, "duplicate claim entry: %s", a)
		}
		uniqueClaims[a] = struct{}{}
	}
	return nil
}
