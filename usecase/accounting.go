package usecase

import (
	"math/big"

	"treasury/domain"
)

// AccountingInteractor answers the read-only valuation queries: how much
// headroom the reserve gives for minting, and what an asset amount is worth
// in managed-token units. Both are pure functions of current ledger state
// and are recomputed on every call; nothing here is cached because reserve
// balance and total supply can change between calls.
type AccountingInteractor struct {
	token        domain.ManagedToken
	state        *domain.TreasuryState
	backingRatio *big.Int
}

func NewAccountingInteractor(token domain.ManagedToken,
	state *domain.TreasuryState,
	backingRatio *big.Int) *AccountingInteractor {
	interactor := &AccountingInteractor{
		token:        token,
		state:        state,
		backingRatio: backingRatio,
	}
	return interactor
}

// ExcessReserves returns the mintable headroom in managed-token base units:
// the reserve balance valued through the backing ratio, minus the current
// total supply, floored at zero.
func (interactor *AccountingInteractor) ExcessReserves() *big.Int {
	balance := interactor.state.ReserveAsset.BalanceOf(interactor.state.Address)
	scale := domain.UnitScale(interactor.token.Decimals())

	value := domain.MulDiv(balance, scale, interactor.backingRatio)
	value.Sub(value, interactor.token.TotalSupply())
	if value.Sign() < 0 {
		return new(big.Int)
	}
	return value
}

// ValueOfToken converts a raw asset amount from the asset's decimal
// precision to the managed token's, truncating toward zero. Published as a
// utility; the mint and redeem paths do not use it.
func (interactor *AccountingInteractor) ValueOfToken(asset domain.Asset, amount *big.Int) *big.Int {
	return domain.MulDiv(amount,
		domain.UnitScale(interactor.token.Decimals()),
		domain.UnitScale(asset.Decimals()))
}
