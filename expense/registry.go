package expense

import "sync"

// Registry keeps one ledger per planning session. Ledgers themselves are
// unsynchronized, so the registry serializes all access — HTTP handlers
// share it across requests.
type Registry struct {
	mu      sync.Mutex
	ledgers map[string]*Ledger
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{ledgers: make(map[string]*Ledger)}
}

func (r *Registry) ledger(sessionID string) *Ledger {
	l, ok := r.ledgers[sessionID]
	if !ok {
		l = NewLedger()
		r.ledgers[sessionID] = l
	}
	return l
}

// Add records an expense on the session's ledger, creating the ledger on
// first use.
func (r *Registry) Add(sessionID string, amount float64, category Category, description, date, currency string) (Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ledger(sessionID).Add(amount, category, description, date, currency)
}

// Entries returns the session's expenses in insertion order.
func (r *Registry) Entries(sessionID string) []Expense {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ledger(sessionID).Entries()
}

// Summary returns the session's rollup.
func (r *Registry) Summary(sessionID string) Summary {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ledger(sessionID).Summary()
}

// BudgetUsedPercent reports the session's spending against a budget.
func (r *Registry) BudgetUsedPercent(sessionID string, budget float64) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ledger(sessionID).BudgetUsedPercent(budget)
}
