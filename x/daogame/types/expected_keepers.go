package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper is the payment custody collaborator: it escrows vote stakes in
// the module account and mints the reward token. The core never holds funds
// itself.
type BankKeeper interface {
	SendCoinsFromAccountToModule(ctx sdk.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx sdk.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
	MintCoins(ctx sdk.Context, moduleName string, amt sdk.Coins) error
	GetAllBalances(ctx sdk.Context, addr sdk.AccAddress) sdk.Coins
}

// AccountKeeper subset used to resolve the module escrow account
type AccountKeeper interface {
	GetModuleAddress(moduleName string) sdk.AccAddress
}
