package ledger

import (
	"math/big"
	"testing"

	"treasury/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransferMovesBalance(t *testing.T) {
	token := NewToken("RSV", 18)
	require.NoError(t, token.Mint("alice", big.NewInt(1000)))

	err := token.Transfer("alice", "bob", big.NewInt(400))
	require.NoError(t, err)

	assert.Equal(t, "600", token.BalanceOf("alice").String())
	assert.Equal(t, "400", token.BalanceOf("bob").String())
	assert.Equal(t, "1000", token.TotalSupply().String())
}

func TestTransferInsufficientBalance(t *testing.T) {
	token := NewToken("RSV", 18)
	require.NoError(t, token.Mint("alice", big.NewInt(10)))

	err := token.Transfer("alice", "bob", big.NewInt(11))
	assert.ErrorIs(t, err, domain.ErrorInsufficientBalance)
	assert.Equal(t, "10", token.BalanceOf("alice").String())
	assert.Equal(t, "0", token.BalanceOf("bob").String())
}

func TestNegativeAmountsRejected(t *testing.T) {
	token := NewToken("RSV", 18)

	assert.ErrorIs(t, token.Mint("alice", big.NewInt(-1)), domain.ErrorNegativeAmount)
	assert.ErrorIs(t, token.Transfer("alice", "bob", big.NewInt(-1)), domain.ErrorNegativeAmount)
	assert.ErrorIs(t, token.BurnFrom("alice", "alice", big.NewInt(-1)), domain.ErrorNegativeAmount)
}

func TestMintRaisesSupply(t *testing.T) {
	token := NewManagedToken("hTRY", 18, "RSV")
	assert.Equal(t, "RSV", token.ReservePair())

	require.NoError(t, token.Mint("alice", big.NewInt(7)))
	require.NoError(t, token.Mint("bob", big.NewInt(5)))
	assert.Equal(t, "12", token.TotalSupply().String())
}

func TestCreditsAccumulate(t *testing.T) {
	token := NewToken("RSV", 18)

	// Repeated credits to the same holder add up, whether the balance
	// entry exists yet or not.
	require.NoError(t, token.Mint("alice", big.NewInt(3)))
	require.NoError(t, token.Mint("alice", big.NewInt(4)))
	require.NoError(t, token.Mint("bob", big.NewInt(2)))
	require.NoError(t, token.Transfer("bob", "alice", big.NewInt(2)))

	assert.Equal(t, "9", token.BalanceOf("alice").String())
	assert.Equal(t, "0", token.BalanceOf("bob").String())
	assert.Equal(t, "9", token.TotalSupply().String())
}

func TestBurnFromRequiresAllowance(t *testing.T) {
	token := NewManagedToken("hTRY", 18, "RSV")
	require.NoError(t, token.Mint("alice", big.NewInt(100)))

	err := token.BurnFrom("treasury", "alice", big.NewInt(40))
	assert.ErrorIs(t, err, domain.ErrorInsufficientTokenBalance)

	token.Approve("alice", "treasury", big.NewInt(50))
	err = token.BurnFrom("treasury", "alice", big.NewInt(40))
	require.NoError(t, err)

	assert.Equal(t, "60", token.BalanceOf("alice").String())
	assert.Equal(t, "60", token.TotalSupply().String())
	assert.Equal(t, "10", token.Allowance("alice", "treasury").String())

	// The remaining allowance no longer covers this.
	err = token.BurnFrom("treasury", "alice", big.NewInt(20))
	assert.ErrorIs(t, err, domain.ErrorInsufficientTokenBalance)
}

func TestBurnFromSelfNeedsNoAllowance(t *testing.T) {
	token := NewManagedToken("hTRY", 18, "RSV")
	require.NoError(t, token.Mint("alice", big.NewInt(100)))

	err := token.BurnFrom("alice", "alice", big.NewInt(30))
	require.NoError(t, err)
	assert.Equal(t, "70", token.BalanceOf("alice").String())
}

func TestBurnFromInsufficientBalance(t *testing.T) {
	token := NewManagedToken("hTRY", 18, "RSV")
	require.NoError(t, token.Mint("alice", big.NewInt(10)))
	token.Approve("alice", "treasury", big.NewInt(100))

	err := token.BurnFrom("treasury", "alice", big.NewInt(11))
	assert.ErrorIs(t, err, domain.ErrorInsufficientTokenBalance)
	assert.Equal(t, "10", token.BalanceOf("alice").String())
}

func TestRegistryJournalRollback(t *testing.T) {
	registry := NewRegistry()
	token := NewManagedToken("hTRY", 18, "RSV")
	reserve := NewToken("RSV", 18)
	registry.Add(token)
	registry.Add(reserve)

	require.NoError(t, token.Mint("alice", big.NewInt(100)))
	require.NoError(t, reserve.Mint("treasury", big.NewInt(500)))
	token.Approve("alice", "treasury", big.NewInt(100))

	registry.Begin()
	require.NoError(t, token.BurnFrom("treasury", "alice", big.NewInt(100)))
	require.NoError(t, reserve.Transfer("treasury", "alice", big.NewInt(123)))
	registry.Rollback()

	assert.Equal(t, "100", token.BalanceOf("alice").String())
	assert.Equal(t, "100", token.TotalSupply().String())
	assert.Equal(t, "100", token.Allowance("alice", "treasury").String())
	assert.Equal(t, "500", reserve.BalanceOf("treasury").String())
	assert.Equal(t, "0", reserve.BalanceOf("alice").String())
}

func TestRegistryJournalCommit(t *testing.T) {
	registry := NewRegistry()
	reserve := NewToken("RSV", 18)
	registry.Add(reserve)
	require.NoError(t, reserve.Mint("treasury", big.NewInt(500)))

	registry.Begin()
	require.NoError(t, reserve.Transfer("treasury", "alice", big.NewInt(200)))
	registry.Commit()

	assert.Equal(t, "300", reserve.BalanceOf("treasury").String())
	assert.Equal(t, "200", reserve.BalanceOf("alice").String())
}

func TestRegistryGet(t *testing.T) {
	registry := NewRegistry()
	reserve := NewToken("RSV", 18)
	registry.Add(reserve)

	assert.Equal(t, reserve, registry.Get("RSV"))
	assert.Nil(t, registry.Get("unknown"))
}

func TestRegistryCovers(t *testing.T) {
	registry := NewRegistry()
	reserve := NewToken("RSV", 18)
	registry.Add(reserve)

	assert.True(t, registry.Covers(reserve))
	assert.False(t, registry.Covers(NewToken("TOKX", 18)))

	// Coverage is by address, so another handle onto the registered
	// ledger's state counts.
	assert.True(t, registry.Covers(NewToken("RSV", 6)))
}
