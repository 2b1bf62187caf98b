package usecase

import (
	"math/big"

	"treasury/domain"
)

// RedeemInteractor burns a caller's managed tokens and pays out the
// proportional share of every basket asset. The whole operation is one
// atomic unit: a failed transfer partway through the basket rolls back the
// burn and every earlier payout through the journal.
type RedeemInteractor struct {
	token   domain.ManagedToken
	state   *domain.TreasuryState
	journal domain.Journaler
}

func NewRedeemInteractor(token domain.ManagedToken,
	state *domain.TreasuryState,
	journal domain.Journaler) *RedeemInteractor {
	interactor := &RedeemInteractor{
		token:   token,
		state:   state,
		journal: journal,
	}
	return interactor
}

// CoversAsset reports whether the journal can roll the asset back. With no
// journal configured there is nothing to cover.
func (interactor *RedeemInteractor) CoversAsset(asset domain.Asset) bool {
	if interactor.journal == nil {
		return true
	}
	return interactor.journal.Covers(asset)
}

func (interactor *RedeemInteractor) BurnAndRedeem(caller string, amount *big.Int) error {
	if !interactor.state.RedemptionActive {
		return domain.ErrorRedemptionInactive
	}

	// The share is computed against the supply as of the start of the call,
	// before the burn lowers it.
	supply := interactor.token.TotalSupply()
	if supply.Sign() == 0 {
		return domain.ErrorDivideByZero
	}

	scale := domain.UnitScale(interactor.token.Decimals())
	share := domain.MulDiv(scale, amount, supply)

	if interactor.journal != nil {
		interactor.journal.Begin()
	}

	err := interactor.payout(caller, amount, share, scale)
	if interactor.journal != nil {
		if err != nil {
			interactor.journal.Rollback()
		} else {
			interactor.journal.Commit()
		}
	}
	return err
}

func (interactor *RedeemInteractor) payout(caller string, amount *big.Int, share *big.Int, scale *big.Int) error {

	err := interactor.token.BurnFrom(interactor.state.Address, caller, amount)
	if err != nil {
		return err
	}

	// Basket order is payout order. Balances are read fresh at each turn,
	// so a duplicated asset pays from its already-debited balance the
	// second time. Truncation happens twice per asset and always favors
	// the treasury.
	for _, asset := range interactor.state.Basket {
		balance := asset.BalanceOf(interactor.state.Address)
		raw := domain.MulDiv(balance, share, scale)
		payout := domain.ApplyPercent(raw, interactor.state.PayoutPercent)

		err = asset.Transfer(interactor.state.Address, caller, payout)
		if err != nil {
			return err
		}
	}

	return nil
}
