package ledger

import (
	"math/big"
	"sync"

	"treasury/domain"
)

// Token is an in-process asset ledger: a balance table with ERC-20 style
// allowances. It satisfies domain.Asset, and domain.ManagedToken when it is
// the token the treasury mints and burns.
type Token struct {
	mutex sync.Mutex

	address     string
	decimals    int
	reservePair string

	supply     *big.Int
	balances   map[string]*big.Int
	allowances map[string]map[string]*big.Int
}

func NewToken(address string, decimals int) *Token {
	return &Token{
		address:    address,
		decimals:   decimals,
		supply:     new(big.Int),
		balances:   make(map[string]*big.Int),
		allowances: make(map[string]map[string]*big.Int),
	}
}

// NewManagedToken creates a token that also records the identity of its
// reserve-asset pair. The pair is read once here and immutable thereafter.
func NewManagedToken(address string, decimals int, reservePair string) *Token {
	token := NewToken(address, decimals)
	token.reservePair = reservePair
	return token
}

func (token *Token) Address() string {
	return token.address
}

func (token *Token) Decimals() int {
	return token.decimals
}

func (token *Token) ReservePair() string {
	return token.reservePair
}

func (token *Token) TotalSupply() *big.Int {
	token.mutex.Lock()
	defer token.mutex.Unlock()
	return new(big.Int).Set(token.supply)
}

func (token *Token) BalanceOf(holder string) *big.Int {
	token.mutex.Lock()
	defer token.mutex.Unlock()
	return new(big.Int).Set(token.balance(holder))
}

func (token *Token) Transfer(from string, to string, amount *big.Int) error {
	if amount.Sign() < 0 {
		return domain.ErrorNegativeAmount
	}

	token.mutex.Lock()
	defer token.mutex.Unlock()

	balance := token.balance(from)
	if balance.Cmp(amount) < 0 {
		return domain.ErrorInsufficientBalance
	}

	balance.Sub(balance, amount)
	token.credit(to, amount)
	return nil
}

func (token *Token) Mint(to string, amount *big.Int) error {
	if amount.Sign() < 0 {
		return domain.ErrorNegativeAmount
	}

	token.mutex.Lock()
	defer token.mutex.Unlock()

	token.credit(to, amount)
	token.supply.Add(token.supply, amount)
	return nil
}

// BurnFrom burns from the holder's balance on behalf of the spender. The
// holder must have approved at least the burned amount beforehand; a
// self-burn (spender == holder) needs no allowance.
func (token *Token) BurnFrom(spender string, holder string, amount *big.Int) error {
	if amount.Sign() < 0 {
		return domain.ErrorNegativeAmount
	}

	token.mutex.Lock()
	defer token.mutex.Unlock()

	balance := token.balance(holder)
	if balance.Cmp(amount) < 0 {
		return domain.ErrorInsufficientTokenBalance
	}

	if spender != holder {
		allowance := token.allowance(holder, spender)
		if allowance.Cmp(amount) < 0 {
			return domain.ErrorInsufficientTokenBalance
		}
		allowance.Sub(allowance, amount)
	}

	balance.Sub(balance, amount)
	token.supply.Sub(token.supply, amount)
	return nil
}

func (token *Token) Approve(holder string, spender string, amount *big.Int) {
	token.mutex.Lock()
	defer token.mutex.Unlock()

	granted, exist := token.allowances[holder]
	if !exist {
		granted = make(map[string]*big.Int)
		token.allowances[holder] = granted
	}
	granted[spender] = new(big.Int).Set(amount)
}

func (token *Token) Allowance(holder string, spender string) *big.Int {
	token.mutex.Lock()
	defer token.mutex.Unlock()
	return new(big.Int).Set(token.allowance(holder, spender))
}

//-------------------------------------------------------------------
// Unexported accessors; the caller holds the mutex.

func (token *Token) credit(holder string, amount *big.Int) {
	balance := token.balance(holder)
	balance.Add(balance, amount)
}

func (token *Token) balance(holder string) *big.Int {
	balance, exist := token.balances[holder]
	if !exist {
		balance = new(big.Int)
		token.balances[holder] = balance
	}
	return balance
}

func (token *Token) allowance(holder string, spender string) *big.Int {
	granted, exist := token.allowances[holder]
	if !exist {
		granted = make(map[string]*big.Int)
		token.allowances[holder] = granted
	}
	allowance, exist := granted[spender]
	if !exist {
		allowance = new(big.Int)
		granted[spender] = allowance
	}
	return allowance
}

type tokenSnapshot struct {
	supply     *big.Int
	balances   map[string]*big.Int
	allowances map[string]map[string]*big.Int
}

func (token *Token) snapshot() *tokenSnapshot {
	token.mutex.Lock()
	defer token.mutex.Unlock()

	saved := &tokenSnapshot{
		supply:     new(big.Int).Set(token.supply),
		balances:   make(map[string]*big.Int, len(token.balances)),
		allowances: make(map[string]map[string]*big.Int, len(token.allowances)),
	}
	for holder, balance := range token.balances {
		saved.balances[holder] = new(big.Int).Set(balance)
	}
	for holder, granted := range token.allowances {
		copied := make(map[string]*big.Int, len(granted))
		for spender, allowance := range granted {
			copied[spender] = new(big.Int).Set(allowance)
		}
		saved.allowances[holder] = copied
	}
	return saved
}

func (token *Token) restore(saved *tokenSnapshot) {
	token.mutex.Lock()
	defer token.mutex.Unlock()

	token.supply = saved.supply
	token.balances = saved.balances
	token.allowances = saved.allowances
}
