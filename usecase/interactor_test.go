package usecase

import (
	"math/big"
	"testing"

	"treasury/domain"
	"treasury/infrastructure/ledger"

	"github.com/stretchr/testify/require"
)

const (
	treasuryAddr = "treasury"
	ownerAddr    = "owner"
	minterAddr   = "minter"
	senderAddr   = "sender"
	aliceAddr    = "alice"
	bobAddr      = "bob"
)

func units(n int64, decimals int) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), domain.UnitScale(decimals))
}

func bigStr(t *testing.T, s string) *big.Int {
	value, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok)
	return value
}

type fixture struct {
	registry *ledger.Registry
	token    *ledger.Token
	reserve  *ledger.Token
	state    *domain.TreasuryState
	recorder *fakeRecorder

	accounting *AccountingInteractor
	treasury   *TreasuryInteractor
}

// newFixture builds a treasury over in-process ledgers: an 18-decimal
// managed token, an 18-decimal reserve, the default backing ratio, and the
// minter and sender roles pre-granted.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	registry := ledger.NewRegistry()
	reserve := ledger.NewToken("RSV", 18)
	token := ledger.NewManagedToken("hTRY", 18, reserve.Address())
	registry.Add(reserve)
	registry.Add(token)

	state := domain.NewTreasuryState(treasuryAddr, ownerAddr)
	state.ReserveAsset = reserve
	state.Minters[minterAddr] = true
	state.Senders[senderAddr] = true

	recorder := &fakeRecorder{}
	accounting := NewAccountingInteractor(token, state, domain.DefaultBackingRatio)
	minting := NewMintInteractor(token, accounting, state)
	redeeming := NewRedeemInteractor(token, state, registry)
	treasury := NewTreasuryInteractor(token, state, accounting, minting, redeeming, recorder)

	return &fixture{
		registry:   registry,
		token:      token,
		reserve:    reserve,
		state:      state,
		recorder:   recorder,
		accounting: accounting,
		treasury:   treasury,
	}
}

type fakeRecorder struct {
	events []*domain.Event
}

func (recorder *fakeRecorder) Record(event *domain.Event) error {
	recorder.events = append(recorder.events, event)
	return nil
}

func (recorder *fakeRecorder) kinds() []string {
	kinds := make([]string, 0, len(recorder.events))
	for _, event := range recorder.events {
		kinds = append(kinds, event.Kind)
	}
	return kinds
}

// failingAsset rejects every transfer; it stands in for a basket asset
// whose ledger reverts.
type failingAsset struct{}

func (asset *failingAsset) Address() string                  { return "BROKEN" }
func (asset *failingAsset) Decimals() int                    { return 18 }
func (asset *failingAsset) TotalSupply() *big.Int            { return new(big.Int) }
func (asset *failingAsset) BalanceOf(holder string) *big.Int { return new(big.Int) }

func (asset *failingAsset) Transfer(from string, to string, amount *big.Int) error {
	return domain.ErrorInsufficientBalance
}

// reentrantAsset calls back into the treasury during its own transfer, the
// way a token with caller-controlled transfer hooks could.
type reentrantAsset struct {
	*ledger.Token
	treasury *TreasuryInteractor
}

func (asset *reentrantAsset) Transfer(from string, to string, amount *big.Int) error {
	err := asset.treasury.BurnAndRedeem(to, big.NewInt(1))
	if err != nil {
		return err
	}
	return asset.Token.Transfer(from, to, amount)
}
