package expense

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Category buckets a travel expense. The set is fixed; anything else is
// rejected at entry.
type Category string

const (
	CategoryAccommodation Category = "accommodation"
	CategoryFood          Category = "food"
	CategoryTransport     Category = "transport"
	CategoryActivities    Category = "activities"
	CategoryShopping      Category = "shopping"
	CategoryOther         Category = "other"
)

// Categories lists every valid category in display order.
var Categories = []Category{
	CategoryAccommodation,
	CategoryFood,
	CategoryTransport,
	CategoryActivities,
	CategoryShopping,
	CategoryOther,
}

// Valid reports whether the category is one of the fixed set.
func (c Category) Valid() bool {
	switch c {
	case CategoryAccommodation, CategoryFood, CategoryTransport,
		CategoryActivities, CategoryShopping, CategoryOther:
		return true
	}
	return false
}

// Expense is one user-entered spending record. Once added it is never edited
// or deleted.
type Expense struct {
	ID          string   `json:"id"`
	Amount      float64  `json:"amount"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	Currency    string   `json:"currency"`
}

var (
	ErrInvalidAmount    = errors.New("amount must be a finite, non-negative number")
	ErrEmptyDescription = errors.New("description must not be empty")
	ErrUnknownCategory  = errors.New("unknown expense category")
	ErrNoBudget         = errors.New("budget must be positive")
)

// Ledger is an append-only log of expenses for one trip session. Insertion
// order is the canonical order; display ordering is the caller's concern.
// The ledger itself is not synchronized — one logical session owns it.
type Ledger struct {
	entries []Expense
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Add validates and appends a new expense, returning the stored entry with
// its generated id. A rejected expense leaves the ledger untouched. Date
// defaults to today and currency to USD when omitted.
func (l *Ledger) Add(amount float64, category Category, description, date, currency string) (Expense, error) {
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Expense{}, fmt.Errorf("%w: got %v", ErrInvalidAmount, amount)
	}
	if strings.TrimSpace(description) == "" {
		return Expense{}, ErrEmptyDescription
	}
	if !category.Valid() {
		return Expense{}, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}

	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	if currency == "" {
		currency = "USD"
	}

	e := Expense{
		ID:          uuid.New().String(),
		Amount:      amount,
		Category:    category,
		Description: description,
		Date:        date,
		Currency:    currency,
	}
	l.entries = append(l.entries, e)
	return e, nil
}

// Entries returns a copy of the expenses in insertion order.
func (l *Ledger) Entries() []Expense {
	out := make([]Expense, len(l.entries))
	copy(out, l.entries)
	return out
}

// Count is the number of recorded expenses.
func (l *Ledger) Count() int {
	return len(l.entries)
}

// TotalSpent is the sum of every recorded amount.
func (l *Ledger) TotalSpent() float64 {
	var sum float64
	for _, e := range l.entries {
		sum += e.Amount
	}
	return sum
}

// TotalByCategory sums the amounts recorded under one category; 0 when the
// category has no entries.
func (l *Ledger) TotalByCategory(c Category) float64 {
	var sum float64
	for _, e := range l.entries {
		if e.Category == c {
			sum += e.Amount
		}
	}
	return sum
}

// Summary is the ledger rollup handed to the display layer.
type Summary struct {
	TotalSpent float64              `json:"total_spent"`
	ByCategory map[Category]float64 `json:"by_category"`
	Count      int                  `json:"count"`
}

// Summary reports the total, a bucket for every category (zero-valued when
// unused) and the entry count.
func (l *Ledger) Summary() Summary {
	s := Summary{
		TotalSpent: l.TotalSpent(),
		ByCategory: make(map[Category]float64, len(Categories)),
		Count:      len(l.entries),
	}
	for _, c := range Categories {
		s.ByCategory[c] = l.TotalByCategory(c)
	}
	return s
}

// BudgetUsedPercent reports spending as a percentage of the given budget.
// A zero or negative budget is refused rather than producing Inf or NaN.
func (l *Ledger) BudgetUsedPercent(budget float64) (float64, error) {
	if budget <= 0 {
		return 0, ErrNoBudget
	}
	return l.TotalSpent() / budget * 100, nil
}
