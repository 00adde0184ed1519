package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/confio/quantum-dao/x/daogame/types"
)

// RegisterInvariants registers all daogame invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "tally", TallyInvariant(k))
	ir.RegisterRoute(types.ModuleName, "module-escrow", ModuleEscrowInvariant(k))
}

// TallyInvariant checks that for every proposal the sum of vote stakes equals
// votes_for + votes_against.
func TallyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var msg string
		var broken bool
		k.IterateProposals(ctx, func(p types.Proposal) bool {
			total := sdk.ZeroInt()
			k.IterateProposalVotes(ctx, p.Id, func(v types.Vote) bool {
				total = total.Add(v.StakeAmount)
				return false
			})
			if !p.VotesFor.Add(p.VotesAgainst).Equal(total) {
				broken = true
				msg += fmt.Sprintf("proposal %d tally %s does not match vote stakes %s\n",
					p.Id, p.VotesFor.Add(p.VotesAgainst), total)
			}
			return false
		})
		return sdk.FormatInvariant(types.ModuleName, "tally", msg), broken
	}
}

// ModuleEscrowInvariant checks that the module account holds at least the sum
// of all escrowed vote stakes.
func ModuleEscrowInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		cfg, err := k.GetGameConfig(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "module-escrow", "game config not set"), false
		}
		staked := sdk.ZeroInt()
		k.IterateVotes(ctx, func(v types.Vote) bool {
			staked = staked.Add(v.StakeAmount)
			return false
		})
		balance := k.bankKeeper.GetAllBalances(ctx, k.accKeeper.GetModuleAddress(types.ModuleName)).AmountOf(cfg.StakeDenom)
		broken := balance.LT(staked)
		return sdk.FormatInvariant(types.ModuleName, "module-escrow",
			fmt.Sprintf("escrow balance %s, total staked %s\n", balance, staked)), broken
	}
}
