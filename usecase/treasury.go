package usecase

import (
	"log"
	"math/big"
	"sync/atomic"

	"treasury/domain"
	"treasury/domain/util"
	"treasury/interface/exporter"
)

// EventRecorder persists notification events. A nil recorder disables
// recording without disabling the operations themselves.
type EventRecorder interface {
	Record(event *domain.Event) error
}

// TreasuryInteractor is the single entry surface of the engine. It checks
// authorization, serializes calls, guards against reentrancy, delegates to
// the mint/redeem/accounting interactors, and emits one event per
// successful state-changing call.
type TreasuryInteractor struct {
	token      domain.ManagedToken
	state      *domain.TreasuryState
	accounting *AccountingInteractor
	minting    *MintInteractor
	redeeming  *RedeemInteractor
	recorder   EventRecorder

	// At most one call is in flight per treasury instance. Reentrant
	// callbacks from a basket asset and concurrent callers alike are
	// rejected, never queued; the caller retries once the treasury is
	// idle.
	entered atomic.Bool
}

func NewTreasuryInteractor(token domain.ManagedToken,
	state *domain.TreasuryState,
	accounting *AccountingInteractor,
	minting *MintInteractor,
	redeeming *RedeemInteractor,
	recorder EventRecorder) *TreasuryInteractor {
	interactor := &TreasuryInteractor{
		token:      token,
		state:      state,
		accounting: accounting,
		minting:    minting,
		redeeming:  redeeming,
		recorder:   recorder,
	}
	return interactor
}

func (interactor *TreasuryInteractor) enter() (func(), error) {
	if !interactor.entered.CompareAndSwap(false, true) {
		return nil, domain.ErrorReentrantCall
	}
	return func() {
		interactor.entered.Store(false)
	}, nil
}

//-------------------------------------------------------------------
// Queries

func (interactor *TreasuryInteractor) ExcessReserves() *big.Int {
	return interactor.accounting.ExcessReserves()
}

func (interactor *TreasuryInteractor) ValueOfToken(asset domain.Asset, amount *big.Int) *big.Int {
	return interactor.accounting.ValueOfToken(asset, amount)
}

func (interactor *TreasuryInteractor) State() *domain.TreasuryState {
	return interactor.state
}

//-------------------------------------------------------------------
// Value movement

func (interactor *TreasuryInteractor) Mint(caller string, to string, amount *big.Int) error {
	release, err := interactor.enter()
	if err != nil {
		return err
	}
	defer release()

	err = interactor.minting.Mint(caller, to, amount)
	if err != nil {
		exporter.IncErrorCount()
		return err
	}

	exporter.IncMintCount()
	interactor.record(domain.EventMinted, &domain.AmountPayload{
		To:     to,
		Amount: amount.String(),
	})
	log.Printf("minted %v to %v\n",
		util.AmountString(amount, interactor.token.Decimals(), interactor.token.Address()), to)
	return nil
}

func (interactor *TreasuryInteractor) BurnAndRedeem(caller string, amount *big.Int) error {
	release, err := interactor.enter()
	if err != nil {
		return err
	}
	defer release()

	err = interactor.redeeming.BurnAndRedeem(caller, amount)
	if err != nil {
		exporter.IncErrorCount()
		return err
	}

	exporter.IncRedeemCount()
	interactor.record(domain.EventRedeemed, &domain.AmountPayload{
		From:   caller,
		Amount: amount.String(),
	})
	log.Printf("redeemed %v from %v\n",
		util.AmountString(amount, interactor.token.Decimals(), interactor.token.Address()), caller)
	return nil
}

// TransferFromTreasury moves treasury holdings out unconditionally; the
// approved-sender set is the entire security boundary for this path.
func (interactor *TreasuryInteractor) TransferFromTreasury(caller string, asset domain.Asset, to string, amount *big.Int) error {
	if !interactor.state.IsSender(caller) {
		return domain.ErrorUnauthorized
	}

	release, err := interactor.enter()
	if err != nil {
		return err
	}
	defer release()

	err = asset.Transfer(interactor.state.Address, to, amount)
	if err != nil {
		exporter.IncErrorCount()
		return err
	}

	exporter.IncTransferCount()
	interactor.record(domain.EventTreasuryTransfer, &domain.AmountPayload{
		Asset:  asset.Address(),
		To:     to,
		Amount: amount.String(),
	})
	return nil
}

//-------------------------------------------------------------------
// Administrative surface (owner-gated)

// SetRedemptionActive enables redemption with the given payout percent.
// There is no counterpart that disables it again: once active, redemption
// can only be re-parameterized.
func (interactor *TreasuryInteractor) SetRedemptionActive(caller string, percent int64) error {
	if !interactor.state.IsOwner(caller) {
		return domain.ErrorUnauthorized
	}
	if percent < 0 || percent >= 100 {
		return domain.ErrorInvalidPercentage
	}

	release, err := interactor.enter()
	if err != nil {
		return err
	}
	defer release()

	interactor.state.RedemptionActive = true
	interactor.state.PayoutPercent = percent

	interactor.record(domain.EventRedemptionActivated, &domain.PercentPayload{Percent: percent})
	log.Printf("redemption active at %v%%\n", percent)
	return nil
}

// SetRedeemableTokens replaces the basket wholesale. Duplicates and empty
// lists are accepted as given, but every asset must be covered by the
// ledger journal: an uncovered asset would keep its payout when a later
// transfer aborts the redemption, breaking all-or-nothing.
func (interactor *TreasuryInteractor) SetRedeemableTokens(caller string, assets []domain.Asset) error {
	if !interactor.state.IsOwner(caller) {
		return domain.ErrorUnauthorized
	}
	for _, asset := range assets {
		if !interactor.redeeming.CoversAsset(asset) {
			return domain.ErrorUncoveredAsset
		}
	}

	release, err := interactor.enter()
	if err != nil {
		return err
	}
	defer release()

	basket := make([]domain.Asset, len(assets))
	copy(basket, assets)
	interactor.state.Basket = basket

	addresses := make([]string, 0, len(basket))
	for _, asset := range basket {
		addresses = append(addresses, asset.Address())
	}
	interactor.record(domain.EventBasketReplaced, &domain.BasketPayload{Assets: addresses})
	return nil
}

func (interactor *TreasuryInteractor) AddApprovedMinter(caller string, minter string) error {
	return interactor.setRole(caller, interactor.state.Minters, minter, true, domain.EventMinterAdded)
}

func (interactor *TreasuryInteractor) RemoveApprovedMinter(caller string, minter string) error {
	return interactor.setRole(caller, interactor.state.Minters, minter, false, domain.EventMinterRemoved)
}

func (interactor *TreasuryInteractor) AddApprovedSender(caller string, sender string) error {
	return interactor.setRole(caller, interactor.state.Senders, sender, true, domain.EventSenderAdded)
}

func (interactor *TreasuryInteractor) RemoveApprovedSender(caller string, sender string) error {
	return interactor.setRole(caller, interactor.state.Senders, sender, false, domain.EventSenderRemoved)
}

// UpdateReserveAsset repoints the reserve. Balances are not migrated; the
// operator moves funds separately.
func (interactor *TreasuryInteractor) UpdateReserveAsset(caller string, asset domain.Asset) error {
	if !interactor.state.IsOwner(caller) {
		return domain.ErrorUnauthorized
	}

	release, err := interactor.enter()
	if err != nil {
		return err
	}
	defer release()

	interactor.state.ReserveAsset = asset
	interactor.record(domain.EventReserveAssetUpdated, &domain.AddressPayload{Address: asset.Address()})
	log.Printf("reserve asset updated to %v\n", asset.Address())
	return nil
}

func (interactor *TreasuryInteractor) TransferOwnership(caller string, newOwner string) error {
	if !interactor.state.IsOwner(caller) {
		return domain.ErrorUnauthorized
	}

	release, err := interactor.enter()
	if err != nil {
		return err
	}
	defer release()

	interactor.state.Owner = newOwner
	interactor.record(domain.EventOwnershipTransferred, &domain.AddressPayload{Address: newOwner})
	return nil
}

func (interactor *TreasuryInteractor) setRole(caller string, roles map[string]bool, member string, granted bool, kind string) error {
	if !interactor.state.IsOwner(caller) {
		return domain.ErrorUnauthorized
	}

	release, err := interactor.enter()
	if err != nil {
		return err
	}
	defer release()

	if granted {
		roles[member] = true
	} else {
		delete(roles, member)
	}

	interactor.record(kind, &domain.AddressPayload{Address: member})
	return nil
}

// record writes the notification event for a successful call. Events are
// for external indexers, not internal logic; a recording failure is logged
// and does not undo the call it describes.
func (interactor *TreasuryInteractor) record(kind string, payload domain.Jsonable) {
	if interactor.recorder == nil {
		return
	}

	err := interactor.recorder.Record(domain.NewEvent(kind, payload))
	if err != nil {
		log.Printf("🔴 recording %v event - %v\n", kind, err.Error())
		exporter.IncErrorCount()
	}
}
