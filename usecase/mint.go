package usecase

import (
	"log"
	"math/big"

	"treasury/domain"
	"treasury/domain/util"
)

// MintInteractor gates mint requests against the accounting ceiling. Each
// successful mint raises total supply and therefore lowers the ceiling the
// next request observes; there is no reservation mechanism.
type MintInteractor struct {
	token      domain.ManagedToken
	accounting *AccountingInteractor
	state      *domain.TreasuryState
}

func NewMintInteractor(token domain.ManagedToken,
	accounting *AccountingInteractor,
	state *domain.TreasuryState) *MintInteractor {
	interactor := &MintInteractor{
		token:      token,
		accounting: accounting,
		state:      state,
	}
	return interactor
}

func (interactor *MintInteractor) Mint(caller string, to string, amount *big.Int) error {
	if !interactor.state.IsMinter(caller) {
		return domain.ErrorUnauthorized
	}

	excess := interactor.accounting.ExcessReserves()
	if amount.Cmp(excess) > 0 {
		log.Printf("🔴 mint of %v rejected, headroom is %v\n",
			util.BaseUnitString(amount), util.BaseUnitString(excess))
		return domain.ErrorInsufficientBacking
	}

	return interactor.token.Mint(to, amount)
}
