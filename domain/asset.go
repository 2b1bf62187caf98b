package domain

import "math/big"

// Asset is the capability the treasury holds for every basket or reserve
// asset: an opaque ledger exposing balances and transfers. Amounts are in
// the asset's own base units.
type Asset interface {
	Address() string
	Decimals() int
	TotalSupply() *big.Int
	BalanceOf(holder string) *big.Int
	Transfer(from string, to string, amount *big.Int) error
}

// ManagedToken is the token whose supply the treasury backs. On top of the
// plain asset capability it can mint and burn delegated balances, and it
// carries the reserve-asset pair identity given to it at construction.
type ManagedToken interface {
	Asset
	Mint(to string, amount *big.Int) error
	BurnFrom(spender string, holder string, amount *big.Int) error
	ReservePair() string
}

// Journaler groups a set of asset ledgers whose mutations commit together.
// A call that fails partway rolls back everything written since Begin.
// Covers reports whether an asset's state is part of that group; an asset
// outside it could keep a payout that a later failure should have undone.
type Journaler interface {
	Begin()
	Commit()
	Rollback()
	Covers(asset Asset) bool
}
