package cli

import (
	"strconv"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"

	"github.com/confio/quantum-dao/x/daogame/types"
)

const (
	flagDescription  = "description"
	flagVotingPeriod = "voting-period"
)

// NewTxCmd returns a root CLI command handler for all daogame transaction commands.
func NewTxCmd() *cobra.Command {
	txCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "DAO game transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}
	txCmd.AddCommand(
		NewCreateProposalCmd(),
		NewVoteCmd(),
		NewExecuteProposalCmd(),
		NewClaimRewardCmd(),
	)
	return txCmd
}

func NewCreateProposalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-proposal [title]",
		Short: "Create a new governance proposal and earn creator points",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			description, votingPeriod, err := proposalDataFromFlags(cmd.Flags())
			if err != nil {
				return err
			}

			msg := types.NewMsgCreateProposal(clientCtx.GetFromAddress(), args[0], description, votingPeriod)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}
	cmd.Flags().String(flagDescription, "", "Proposal description")
	cmd.Flags().Uint64(flagVotingPeriod, 100, "Length of the voting window in blocks")
	flags.AddTxFlagsToCmd(cmd)
	_ = cmd.MarkFlagRequired(flags.FlagFrom)
	return cmd
}

func NewVoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vote [proposal-id] [for|against] [stake]",
		Short: "Cast a staked vote on a proposal",
		Long: `Cast a staked vote on a proposal. The stake is escrowed by the game
for its full duration and weighs into the proposal tally.

Example:
$ qdaod tx daogame vote 1 for 1000000stake --from mykey`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			proposalID, err := parseProposalID(args[0])
			if err != nil {
				return err
			}
			var voteFor bool
			switch args[1] {
			case "for", "yes":
				voteFor = true
			case "against", "no":
				voteFor = false
			default:
				return errors.Errorf("unknown vote option: %q", args[1])
			}
			stake, err := sdk.ParseCoinNormalized(args[2])
			if err != nil {
				return errors.Wrap(err, "stake")
			}

			msg := types.NewMsgVote(clientCtx.GetFromAddress(), proposalID, voteFor, stake)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}
	flags.AddTxFlagsToCmd(cmd)
	_ = cmd.MarkFlagRequired(flags.FlagFrom)
	return cmd
}

func NewExecuteProposalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "execute [proposal-id]",
		Short: "Settle a proposal after its voting window closed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			proposalID, err := parseProposalID(args[0])
			if err != nil {
				return err
			}

			msg := types.NewMsgExecuteProposal(clientCtx.GetFromAddress(), proposalID)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}
	flags.AddTxFlagsToCmd(cmd)
	_ = cmd.MarkFlagRequired(flags.FlagFrom)
	return cmd
}

func NewClaimRewardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claim-reward",
		Short: "Claim the reward token after the game ended",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}
			msg := types.NewMsgClaimReward(clientCtx.GetFromAddress())
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}
	flags.AddTxFlagsToCmd(cmd)
	_ = cmd.MarkFlagRequired(flags.FlagFrom)
	return cmd
}

func proposalDataFromFlags(fs *flag.FlagSet) (description string, votingPeriod uint64, err error) {
	if description, err = fs.GetString(flagDescription); err != nil {
		return "", 0, errors.Wrap(err, "description")
	}
	if votingPeriod, err = fs.GetUint64(flagVotingPeriod); err != nil {
		return "", 0, errors.Wrap(err, "voting period")
	}
	return description, votingPeriod, nil
}

func parseProposalID(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, errors.Wrap(err, "proposal id")
	}
	return uint32(v), nil
}
