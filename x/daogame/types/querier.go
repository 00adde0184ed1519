package types

// Query endpoints supported by the daogame legacy querier
const (
	QueryProposal     = "proposal"
	QueryVote         = "vote"
	QueryPlayerScore  = "score"
	QueryLeaderboard  = "leaderboard"
	QueryIsGameActive = "is-active"
	QueryParams       = "params"
)

// QueryLeaderboardParams payload for the leaderboard query. A zero limit means
// the full reward cohort size.
type QueryLeaderboardParams struct {
	Limit uint32 `json:"limit" yaml:"limit"`
}

// IsGameActiveResponse payload for the is-active query
type IsGameActiveResponse struct {
	Active       bool   `json:"active" yaml:"active"`
	CurrentBlock uint64 `json:"current_block" yaml:"current_block"`
	EndBlock     uint64 `json:"end_block" yaml:"end_block"`
}
