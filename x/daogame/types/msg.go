package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/cosmos/cosmos-sdk/x/auth/legacy/legacytx"
	yaml "gopkg.in/yaml.v2"
)

const (
	TypeMsgCreateProposal  = "create_proposal"
	TypeMsgVote            = "vote"
	TypeMsgExecuteProposal = "execute_proposal"
	TypeMsgClaimReward     = "claim_reward"
)

var (
	_ legacytx.LegacyMsg = &MsgCreateProposal{}
	_ legacytx.LegacyMsg = &MsgVote{}
	_ legacytx.LegacyMsg = &MsgExecuteProposal{}
	_ legacytx.LegacyMsg = &MsgClaimReward{}
)

// MsgServer is the server API for the daogame msg service.
type MsgServer interface {
	CreateProposal(context.Context, *MsgCreateProposal) (*MsgCreateProposalResponse, error)
	Vote(context.Context, *MsgVote) (*MsgVoteResponse, error)
	ExecuteProposal(context.Context, *MsgExecuteProposal) (*MsgExecuteProposalResponse, error)
	ClaimReward(context.Context, *MsgClaimReward) (*MsgClaimRewardResponse, error)
}

// MsgCreateProposal opens a new governance proposal for staked voting.
type MsgCreateProposal struct {
	Creator     string `json:"creator" yaml:"creator"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	// VotingPeriodBlocks is the requested length of the voting window.
	VotingPeriodBlocks uint64 `json:"voting_period_blocks" yaml:"voting_period_blocks"`
}

type MsgCreateProposalResponse struct {
	ProposalId uint32 `json:"proposal_id" yaml:"proposal_id"`
}

// NewMsgCreateProposal constructor
func NewMsgCreateProposal(creator sdk.AccAddress, title, description string, votingPeriodBlocks uint64) *MsgCreateProposal {
	return &MsgCreateProposal{
		Creator:            creator.String(),
		Title:              title,
		Description:        description,
		VotingPeriodBlocks: votingPeriodBlocks,
	}
}

// Route implements the sdk.Msg interface.
func (msg MsgCreateProposal) Route() string { return RouterKey }

// Type implements the sdk.Msg interface.
func (msg MsgCreateProposal) Type() string { return TypeMsgCreateProposal }

// GetSigners implements the sdk.Msg interface.
func (msg MsgCreateProposal) GetSigners() []sdk.AccAddress {
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{creator}
}

// GetSignBytes returns the message bytes to sign over.
func (msg MsgCreateProposal) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.LegacyAmino.MustMarshalJSON(&msg))
}

// ValidateBasic implements the sdk.Msg interface.
func (msg MsgCreateProposal) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return sdkerrors.Wrap(err, "creator")
	}
	if len(msg.Title) == 0 {
		return sdkerrors.Wrap(ErrEmpty, "title")
	}
	if msg.VotingPeriodBlocks == 0 {
		return sdkerrors.Wrap(ErrEmpty, "voting period")
	}
	return nil
}

// MsgVote casts a staked vote on a proposal. The attached stake is escrowed by
// the module account for the lifetime of the game.
type MsgVote struct {
	Voter      string `json:"voter" yaml:"voter"`
	ProposalId uint32 `json:"proposal_id" yaml:"proposal_id"`
	VoteFor    bool   `json:"vote_for" yaml:"vote_for"`
	// Stake is the payment attached to the vote.
	Stake sdk.Coin `json:"stake" yaml:"stake"`
}

type MsgVoteResponse struct{}

// NewMsgVote constructor
func NewMsgVote(voter sdk.AccAddress, proposalID uint32, voteFor bool, stake sdk.Coin) *MsgVote {
	return &MsgVote{
		Voter:      voter.String(),
		ProposalId: proposalID,
		VoteFor:    voteFor,
		Stake:      stake,
	}
}

// Route implements the sdk.Msg interface.
func (msg MsgVote) Route() string { return RouterKey }

// Type implements the sdk.Msg interface.
func (msg MsgVote) Type() string { return TypeMsgVote }

// GetSigners implements the sdk.Msg interface.
func (msg MsgVote) GetSigners() []sdk.AccAddress {
	voter, err := sdk.AccAddressFromBech32(msg.Voter)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{voter}
}

// GetSignBytes returns the message bytes to sign over.
func (msg MsgVote) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.LegacyAmino.MustMarshalJSON(&msg))
}

// ValidateBasic implements the sdk.Msg interface.
func (msg MsgVote) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Voter); err != nil {
		return sdkerrors.Wrap(err, "voter")
	}
	if msg.ProposalId == 0 {
		return sdkerrors.Wrap(ErrEmpty, "proposal id")
	}
	if !msg.Stake.IsValid() {
		return sdkerrors.Wrap(ErrInvalid, "stake")
	}
	return nil
}

// MsgExecuteProposal settles a proposal after its voting window closed.
// Anybody can send it.
type MsgExecuteProposal struct {
	Sender     string `json:"sender" yaml:"sender"`
	ProposalId uint32 `json:"proposal_id" yaml:"proposal_id"`
}

type MsgExecuteProposalResponse struct {
	Passed bool `json:"passed" yaml:"passed"`
}

// NewMsgExecuteProposal constructor
func NewMsgExecuteProposal(sender sdk.AccAddress, proposalID uint32) *MsgExecuteProposal {
	return &MsgExecuteProposal{Sender: sender.String(), ProposalId: proposalID}
}

// Route implements the sdk.Msg interface.
func (msg MsgExecuteProposal) Route() string { return RouterKey }

// Type implements the sdk.Msg interface.
func (msg MsgExecuteProposal) Type() string { return TypeMsgExecuteProposal }

// GetSigners implements the sdk.Msg interface.
func (msg MsgExecuteProposal) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// GetSignBytes returns the message bytes to sign over.
func (msg MsgExecuteProposal) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.LegacyAmino.MustMarshalJSON(&msg))
}

// ValidateBasic implements the sdk.Msg interface.
func (msg MsgExecuteProposal) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return sdkerrors.Wrap(err, "sender")
	}
	if msg.ProposalId == 0 {
		return sdkerrors.Wrap(ErrEmpty, "proposal id")
	}
	return nil
}

// MsgClaimReward claims the post-game reward token for the sender.
type MsgClaimReward struct {
	Sender string `json:"sender" yaml:"sender"`
}

type MsgClaimRewardResponse struct {
	Score uint64 `json:"score" yaml:"score"`
}

// NewMsgClaimReward constructor
func NewMsgClaimReward(sender sdk.AccAddress) *MsgClaimReward {
	return &MsgClaimReward{Sender: sender.String()}
}

// Route implements the sdk.Msg interface.
func (msg MsgClaimReward) Route() string { return RouterKey }

// Type implements the sdk.Msg interface.
func (msg MsgClaimReward) Type() string { return TypeMsgClaimReward }

// GetSigners implements the sdk.Msg interface.
func (msg MsgClaimReward) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// GetSignBytes returns the message bytes to sign over.
func (msg MsgClaimReward) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.LegacyAmino.MustMarshalJSON(&msg))
}

// ValidateBasic implements the sdk.Msg interface.
func (msg MsgClaimReward) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return sdkerrors.Wrap(err, "sender")
	}
	return nil
}

// proto.Message stubs so that the amino encoded messages satisfy sdk.Msg.

func (msg *MsgCreateProposal) Reset()  { *msg = MsgCreateProposal{} }
func (msg *MsgVote) Reset()            { *msg = MsgVote{} }
func (msg *MsgExecuteProposal) Reset() { *msg = MsgExecuteProposal{} }
func (msg *MsgClaimReward) Reset()     { *msg = MsgClaimReward{} }

func (msg MsgCreateProposal) String() string  { return toYaml(msg) }
func (msg MsgVote) String() string            { return toYaml(msg) }
func (msg MsgExecuteProposal) String() string { return toYaml(msg) }
func (msg MsgClaimReward) String() string     { return toYaml(msg) }

func (msg *MsgCreateProposal) ProtoMessage()  {}
func (msg *MsgVote) ProtoMessage()            {}
func (msg *MsgExecuteProposal) ProtoMessage() {}
func (msg *MsgClaimReward) ProtoMessage()     {}

func toYaml(o interface{}) string {
	out, _ := yaml.Marshal(o)
	return string(out)
}
