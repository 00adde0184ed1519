package cli

import (
	"fmt"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/confio/quantum-dao/x/daogame/types"
)

const flagLimit = "limit"

// GetQueryCmd returns the root query command for the daogame module.
func GetQueryCmd() *cobra.Command {
	queryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the DAO game",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}
	queryCmd.AddCommand(
		GetCmdQueryProposal(),
		GetCmdQueryVote(),
		GetCmdQueryScore(),
		GetCmdQueryLeaderboard(),
		GetCmdQueryIsActive(),
		GetCmdQueryParams(),
	)
	return queryCmd
}

func GetCmdQueryProposal() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "proposal [proposal-id]",
		Short: "Query a proposal by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			if _, err := parseProposalID(args[0]); err != nil {
				return err
			}
			route := fmt.Sprintf("custom/%s/%s/%s", types.QuerierRoute, types.QueryProposal, args[0])
			res, _, err := clientCtx.QueryWithData(route, nil)
			if err != nil {
				return err
			}
			return clientCtx.PrintString(string(res) + "\n")
		},
	}
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func GetCmdQueryVote() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vote [proposal-id] [voter]",
		Short: "Query the vote a voter cast on a proposal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			if _, err := parseProposalID(args[0]); err != nil {
				return err
			}
			if _, err := sdk.AccAddressFromBech32(args[1]); err != nil {
				return errors.Wrap(err, "voter")
			}
			route := fmt.Sprintf("custom/%s/%s/%s/%s", types.QuerierRoute, types.QueryVote, args[0], args[1])
			res, _, err := clientCtx.QueryWithData(route, nil)
			if err != nil {
				return err
			}
			return clientCtx.PrintString(string(res) + "\n")
		},
	}
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func GetCmdQueryScore() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score [player]",
		Short: "Query the accumulated score of a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			if _, err := sdk.AccAddressFromBech32(args[0]); err != nil {
				return errors.Wrap(err, "player")
			}
			route := fmt.Sprintf("custom/%s/%s/%s", types.QuerierRoute, types.QueryPlayerScore, args[0])
			res, _, err := clientCtx.QueryWithData(route, nil)
			if err != nil {
				return err
			}
			return clientCtx.PrintString(string(res) + "\n")
		},
	}
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func GetCmdQueryLeaderboard() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Query the top players ranked by score",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			limit, _ := cmd.Flags().GetUint32(flagLimit)
			bz, err := clientCtx.LegacyAmino.MarshalJSON(types.QueryLeaderboardParams{Limit: limit})
			if err != nil {
				return err
			}
			route := fmt.Sprintf("custom/%s/%s", types.QuerierRoute, types.QueryLeaderboard)
			res, _, err := clientCtx.QueryWithData(route, bz)
			if err != nil {
				return err
			}
			return clientCtx.PrintString(string(res) + "\n")
		},
	}
	cmd.Flags().Uint32(flagLimit, 0, "Number of entries to return, 0 for the reward cohort size")
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func GetCmdQueryIsActive() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "is-active",
		Short: "Query whether the game still accepts proposals and votes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			route := fmt.Sprintf("custom/%s/%s", types.QuerierRoute, types.QueryIsGameActive)
			res, _, err := clientCtx.QueryWithData(route, nil)
			if err != nil {
				return err
			}
			return clientCtx.PrintString(string(res) + "\n")
		},
	}
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func GetCmdQueryParams() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Query the current daogame module parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			route := fmt.Sprintf("custom/%s/%s", types.QuerierRoute, types.QueryParams)
			res, _, err := clientCtx.QueryWithData(route, nil)
			if err != nil {
				return err
			}
			return clientCtx.PrintString(string(res) + "\n")
		},
	}
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
