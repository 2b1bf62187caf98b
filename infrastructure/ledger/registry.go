package ledger

import (
	"sync"

	"treasury/domain"
)

// Registry holds every token ledger the treasury touches and gives the set
// journal semantics: Begin snapshots all ledgers, Rollback restores them,
// Commit discards the snapshots. Calls run one at a time (the treasury
// serializes them), so a single journal level is enough.
type Registry struct {
	mutex  sync.Mutex
	tokens map[string]*Token
	saved  map[string]*tokenSnapshot
}

func NewRegistry() *Registry {
	return &Registry{
		tokens: make(map[string]*Token),
	}
}

func (registry *Registry) Add(token *Token) {
	registry.mutex.Lock()
	defer registry.mutex.Unlock()
	registry.tokens[token.Address()] = token
}

func (registry *Registry) Get(address string) *Token {
	registry.mutex.Lock()
	defer registry.mutex.Unlock()
	return registry.tokens[address]
}

// Covers reports whether the asset's state lives in one of the registered
// ledgers, keyed by address so that a wrapper around a registered token
// still counts as covered.
func (registry *Registry) Covers(asset domain.Asset) bool {
	registry.mutex.Lock()
	defer registry.mutex.Unlock()
	_, exist := registry.tokens[asset.Address()]
	return exist
}

func (registry *Registry) Begin() {
	registry.mutex.Lock()
	defer registry.mutex.Unlock()

	registry.saved = make(map[string]*tokenSnapshot, len(registry.tokens))
	for address, token := range registry.tokens {
		registry.saved[address] = token.snapshot()
	}
}

func (registry *Registry) Commit() {
	registry.mutex.Lock()
	defer registry.mutex.Unlock()
	registry.saved = nil
}

func (registry *Registry) Rollback() {
	registry.mutex.Lock()
	defer registry.mutex.Unlock()

	for address, saved := range registry.saved {
		registry.tokens[address].restore(saved)
	}
	registry.saved = nil
}
