package domain

// TreasuryState is the mutable configuration of one treasury instance:
// who may do what, which asset backs the managed token, which assets a
// redemption pays out, and whether redemption is enabled at all. It is
// created with administrative defaults and mutated only through the
// treasury's administrative surface.
type TreasuryState struct {
	// Address is the account under which the treasury holds its balances.
	Address string

	Owner   string
	Minters map[string]bool
	Senders map[string]bool

	ReserveAsset Asset

	// Basket order is significant: payouts run in list order, so later
	// entries absorb truncation loss last. Duplicates are legal and pay
	// from the already-debited balance on their second turn.
	Basket []Asset

	RedemptionActive bool
	PayoutPercent    int64
}

func NewTreasuryState(address string, owner string) *TreasuryState {
	return &TreasuryState{
		Address: address,
		Owner:   owner,
		Minters: make(map[string]bool),
		Senders: make(map[string]bool),
	}
}

func (state *TreasuryState) IsOwner(caller string) bool {
	return caller == state.Owner
}

func (state *TreasuryState) IsMinter(caller string) bool {
	return state.Minters[caller]
}

func (state *TreasuryState) IsSender(caller string) bool {
	return state.Senders[caller]
}
