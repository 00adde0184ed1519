package app

import (
	"testing"

	"github.com/cosmos/cosmos-sdk/codec"
	authkeeper "github.com/cosmos/cosmos-sdk/x/auth/keeper"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"

	daogamekeeper "github.com/confio/quantum-dao/x/daogame/keeper"
)

type TestSupport struct {
	t   *testing.T
	app *QuantumDaoApp
}

func NewTestSupport(t *testing.T, app *QuantumDaoApp) *TestSupport {
	return &TestSupport{t: t, app: app}
}

func (s TestSupport) AppCodec() codec.Codec {
	return s.app.appCodec
}

func (s TestSupport) AccountKeeper() authkeeper.AccountKeeper {
	return s.app.accountKeeper
}

func (s TestSupport) BankKeeper() bankkeeper.Keeper {
	return s.app.bankKeeper
}

func (s TestSupport) DaoGameKeeper() daogamekeeper.Keeper {
	return s.app.daoGameKeeper
}
