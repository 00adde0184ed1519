package keeper

import (
	"testing"
	"time"

	"github.com/cosmos/cosmos-sdk/std"
	"github.com/cosmos/cosmos-sdk/store"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/module"
	"github.com/cosmos/cosmos-sdk/x/auth"
	authkeeper "github.com/cosmos/cosmos-sdk/x/auth/keeper"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/cosmos/cosmos-sdk/x/bank"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	minttypes "github.com/cosmos/cosmos-sdk/x/mint/types"
	"github.com/cosmos/cosmos-sdk/x/params"
	paramskeeper "github.com/cosmos/cosmos-sdk/x/params/keeper"
	paramstypes "github.com/cosmos/cosmos-sdk/x/params/types"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"
	tmproto "github.com/tendermint/tendermint/proto/tendermint/types"
	dbm "github.com/tendermint/tm-db"

	appparams "github.com/confio/quantum-dao/app/params"
	"github.com/confio/quantum-dao/x/daogame/types"
)

var moduleBasics = module.NewBasicManager(
	auth.AppModuleBasic{},
	bank.AppModuleBasic{},
	params.AppModuleBasic{},
)

// MakeEncodingConfig registers the std and test module codecs
func MakeEncodingConfig(_ testing.TB) appparams.EncodingConfig {
	encodingConfig := appparams.MakeEncodingConfig()
	std.RegisterLegacyAminoCodec(encodingConfig.Amino)
	std.RegisterInterfaces(encodingConfig.InterfaceRegistry)
	moduleBasics.RegisterLegacyAminoCodec(encodingConfig.Amino)
	moduleBasics.RegisterInterfaces(encodingConfig.InterfaceRegistry)

	types.RegisterLegacyAminoCodec(encodingConfig.Amino)
	return encodingConfig
}

type TestKeepers struct {
	AccountKeeper  authkeeper.AccountKeeper
	BankKeeper     bankkeeper.Keeper
	DaoGameKeeper  Keeper
	EncodingConfig appparams.EncodingConfig
}

// CreateDefaultTestInput sets up a multistore over a mem db with a fresh
// active game: start block 1, duration 100 blocks, fresh proposal counter.
func CreateDefaultTestInput(t *testing.T) (sdk.Context, TestKeepers) {
	return CreateTestInput(t, types.GameConfigFixture(func(c *types.GameConfig) {
		c.StartBlock = 0 // captured on genesis import
	}))
}

// CreateTestInput sets up the keeper test harness with the given game config.
func CreateTestInput(t *testing.T, cfg types.GameConfig) (sdk.Context, TestKeepers) {
	db := dbm.NewMemDB()
	keys := sdk.NewKVStoreKeys(
		authtypes.StoreKey, banktypes.StoreKey, paramstypes.StoreKey, types.StoreKey,
	)
	ms := store.NewCommitMultiStore(db)
	for _, v := range keys {
		ms.MountStoreWithDB(v, sdk.StoreTypeIAVL, db)
	}
	tkeys := sdk.NewTransientStoreKeys(paramstypes.TStoreKey)
	for _, v := range tkeys {
		ms.MountStoreWithDB(v, sdk.StoreTypeTransient, db)
	}
	require.NoError(t, ms.LoadLatestVersion())

	ctx := sdk.NewContext(ms, tmproto.Header{
		Height: 1,
		Time:   time.Date(2022, time.January, 1, 12, 0, 0, 0, time.UTC),
	}, false, log.NewNopLogger())

	encodingConfig := MakeEncodingConfig(t)
	appCodec, legacyAmino := encodingConfig.Codec, encodingConfig.Amino

	paramsKeeper := paramskeeper.NewKeeper(
		appCodec,
		legacyAmino,
		keys[paramstypes.StoreKey],
		tkeys[paramstypes.TStoreKey],
	)
	for _, m := range []string{authtypes.ModuleName, banktypes.ModuleName, types.ModuleName} {
		paramsKeeper.Subspace(m)
	}
	subspace := func(m string) paramstypes.Subspace {
		r, ok := paramsKeeper.GetSubspace(m)
		require.True(t, ok)
		return r
	}

	maccPerms := map[string][]string{ // module account permissions
		authtypes.FeeCollectorName: nil,
		minttypes.ModuleName:       {authtypes.Minter}, // for the test faucet only
		types.ModuleName:           {authtypes.Minter, authtypes.Burner},
	}
	accountKeeper := authkeeper.NewAccountKeeper(
		appCodec,
		keys[authtypes.StoreKey],
		subspace(authtypes.ModuleName),
		authtypes.ProtoBaseAccount,
		maccPerms,
	)
	accountKeeper.SetParams(ctx, authtypes.DefaultParams())

	blockedAddrs := make(map[string]bool)
	for acc := range maccPerms {
		blockedAddrs[authtypes.NewModuleAddress(acc).String()] = true
	}
	bankKeeper := bankkeeper.NewBaseKeeper(
		appCodec,
		keys[banktypes.StoreKey],
		accountKeeper,
		subspace(banktypes.ModuleName),
		blockedAddrs,
	)
	bankKeeper.SetParams(ctx, banktypes.DefaultParams())

	keeper := NewKeeper(legacyAmino, keys[types.StoreKey], subspace(types.ModuleName), accountKeeper, bankKeeper)
	genState := types.GenesisState{
		Params:         types.DefaultParams(),
		GameConfig:     cfg,
		NextProposalId: 1,
	}
	require.NoError(t, InitGenesis(ctx, keeper, genState))

	return ctx, TestKeepers{
		AccountKeeper:  accountKeeper,
		BankKeeper:     bankKeeper,
		DaoGameKeeper:  keeper,
		EncodingConfig: encodingConfig,
	}
}

// FundAccount mints coins to the faucet module and pays them out to addr.
func FundAccount(t *testing.T, ctx sdk.Context, bk bankkeeper.Keeper, addr sdk.AccAddress, coins sdk.Coins) {
	t.Helper()
	require.NoError(t, bk.MintCoins(ctx, minttypes.ModuleName, coins))
	require.NoError(t, bk.SendCoinsFromModuleToAccount(ctx, minttypes.ModuleName, addr, coins))
}
