package cashflow

import (
	"maps"
	"slices"
	"strconv"
	"time"
)

// Investment asset classes tracked by the ledger.
const (
	AssetStocks      = "stocks"
	AssetGold        = "gold"
	AssetCrypto      = "crypto"
	AssetMutualFunds = "mutualFunds"
)

// DefaultCycleDay is the day-of-month starting the business profit cycle.
const DefaultCycleDay = 5

// IncomeEntry records money received. The Source field carries the income
// kind (salary, freelance, ...); it is stored under the legacy "type" key.
type IncomeEntry struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Amount Money  `json:"amount"`
	Source string `json:"type,omitempty"`
	Date   Date   `json:"date,omitempty"`
	BankID string `json:"bankId,omitempty"`
}

// ExpenseEntry records money spent.
type ExpenseEntry struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Amount   Money  `json:"amount"`
	Category string `json:"category,omitempty"`
	Date     Date   `json:"date,omitempty"`
	BankID   string `json:"bankId,omitempty"`
}

// Bank is a tracked bank account. Its balance is the running sum of its
// initial balance plus every signed flow routed through it; there is no
// independent reconciliation, and balances may go negative.
type Bank struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Balance Money  `json:"balance"`
}

// Ledger is the root aggregate: the complete financial state of a single
// user. It is owned by exactly one Store; mutations happen on a clone that
// replaces the current state only after a successful persist.
//
// Entry ids are millisecond timestamps taken from the ledger clock, so
// within a list ids decrease from head to tail (entries are prepended).
type Ledger struct {
	income        []IncomeEntry
	expenses      []ExpenseEntry
	emis          []EMI
	banks         []Bank
	investments   map[string]Money
	initialAmount Money
	snapshots     []MonthlySnapshot
	history       []HistoryEntry
	business      BusinessState

	now func() time.Time // injectable clock
}

// NewLedger creates an empty ledger with default settings.
func NewLedger() *Ledger {
	return &Ledger{
		investments: map[string]Money{
			AssetStocks:      M(0),
			AssetGold:        M(0),
			AssetCrypto:      M(0),
			AssetMutualFunds: M(0),
		},
		business: BusinessState{CycleDay: DefaultCycleDay},
		now:      time.Now,
	}
}

// clone returns a deep copy of the ledger sharing nothing mutable with the
// original. The clock is shared.
func (l *Ledger) clone() *Ledger {
	return &Ledger{
		income:        slices.Clone(l.income),
		expenses:      slices.Clone(l.expenses),
		emis:          slices.Clone(l.emis),
		banks:         slices.Clone(l.banks),
		investments:   maps.Clone(l.investments),
		initialAmount: l.initialAmount,
		snapshots:     slices.Clone(l.snapshots),
		history:       slices.Clone(l.history),
		business:      l.business.clone(),
		now:           l.now,
	}
}

// newID returns a millisecond-timestamp id. Uniqueness holds as long as no
// two entries are created within the same millisecond.
func (l *Ledger) newID() string {
	return strconv.FormatInt(l.now().UnixMilli(), 10)
}

// today returns the clock's current calendar date.
func (l *Ledger) today() Date { return DateOf(l.now()) }

// logEvent appends a history record for a money-moving operation and
// returns it. The history list is most-recent-first.
func (l *Ledger) logEvent(h HistoryEntry) HistoryEntry {
	h.ID = l.newID()
	h.Timestamp = l.now()
	h.Date = DateOf(h.Timestamp)
	l.history = append([]HistoryEntry{h}, l.history...)
	return h
}

// Accessors. They return copies: the ledger's own collections are only ever
// modified through mutation operations.

func (l *Ledger) Income() []IncomeEntry        { return slices.Clone(l.income) }
func (l *Ledger) Expenses() []ExpenseEntry     { return slices.Clone(l.expenses) }
func (l *Ledger) EMIs() []EMI                  { return slices.Clone(l.emis) }
func (l *Ledger) Banks() []Bank                { return slices.Clone(l.banks) }
func (l *Ledger) History() []HistoryEntry      { return slices.Clone(l.history) }
func (l *Ledger) Snapshots() []MonthlySnapshot { return slices.Clone(l.snapshots) }
func (l *Ledger) Investments() map[string]Money {
	return maps.Clone(l.investments)
}
func (l *Ledger) InitialAmount() Money { return l.initialAmount }

// Bank returns the bank with the given id, or nil if unknown.
func (l *Ledger) Bank(id string) *Bank {
	for i := range l.banks {
		if l.banks[i].ID == id {
			b := l.banks[i]
			return &b
		}
	}
	return nil
}

// creditBank adds amount to the named bank's balance. An unknown or empty
// bankID is a deliberate no-op: the amount stays untracked cash.
func (l *Ledger) creditBank(bankID string, amount Money) {
	if bankID == "" {
		return
	}
	for i := range l.banks {
		if l.banks[i].ID == bankID {
			l.banks[i].Balance = l.banks[i].Balance.Add(amount)
			return
		}
	}
}

func (l *Ledger) debitBank(bankID string, amount Money) {
	l.creditBank(bankID, amount.Neg())
}

// AddIncome assigns a fresh id to the entry, prepends it to the income list,
// credits the routed bank (if any) and writes a history record.
func (l *Ledger) AddIncome(e IncomeEntry, bankID string) IncomeEntry {
	e.ID = l.newID()
	e.BankID = bankID
	if e.Date.IsZero() {
		e.Date = l.today()
	}
	l.creditBank(bankID, e.Amount)
	l.income = append([]IncomeEntry{e}, l.income...)
	l.logEvent(HistoryEntry{
		Type:     EvIncome,
		Title:    e.Name,
		Amount:   e.Amount,
		Category: e.Source,
		BankID:   bankID,
	})
	return e
}

// AddExpense is the outflow counterpart of AddIncome.
func (l *Ledger) AddExpense(e ExpenseEntry, bankID string) ExpenseEntry {
	e.ID = l.newID()
	e.BankID = bankID
	if e.Date.IsZero() {
		e.Date = l.today()
	}
	l.debitBank(bankID, e.Amount)
	l.expenses = append([]ExpenseEntry{e}, l.expenses...)
	l.logEvent(HistoryEntry{
		Type:     EvExpense,
		Title:    e.Name,
		Amount:   e.Amount,
		Category: e.Category,
		BankID:   bankID,
	})
	return e
}

// EditIncome replaces the entry with the given id, preserving the id itself.
// Bank balances and history are NOT reconciled: editing an amount after the
// fact leaves the original flow in place. See the topic documentation.
func (l *Ledger) EditIncome(id string, patch IncomeEntry) bool {
	for i := range l.income {
		if l.income[i].ID == id {
			patch.ID = id
			l.income[i] = patch
			return true
		}
	}
	return false
}

// DeleteIncome removes the entry with the given id. The bank credit it
// caused and its history record are deliberately left untouched.
func (l *Ledger) DeleteIncome(id string) bool {
	n := len(l.income)
	l.income = slices.DeleteFunc(l.income, func(e IncomeEntry) bool { return e.ID == id })
	return len(l.income) < n
}

func (l *Ledger) EditExpense(id string, patch ExpenseEntry) bool {
	for i := range l.expenses {
		if l.expenses[i].ID == id {
			patch.ID = id
			l.expenses[i] = patch
			return true
		}
	}
	return false
}

func (l *Ledger) DeleteExpense(id string) bool {
	n := len(l.expenses)
	l.expenses = slices.DeleteFunc(l.expenses, func(e ExpenseEntry) bool { return e.ID == id })
	return len(l.expenses) < n
}

// AddBank registers a new bank account with its opening balance.
func (l *Ledger) AddBank(name string, initialBalance Money) Bank {
	b := Bank{ID: l.newID(), Name: name, Balance: initialBalance}
	l.banks = append(l.banks, b)
	return b
}

func (l *Ledger) EditBank(id string, patch Bank) bool {
	for i := range l.banks {
		if l.banks[i].ID == id {
			patch.ID = id
			l.banks[i] = patch
			return true
		}
	}
	return false
}

// DeleteBank removes a bank account. Entries and EMIs referencing it keep
// their dangling bankId and degrade to untracked flows.
func (l *Ledger) DeleteBank(id string) bool {
	n := len(l.banks)
	l.banks = slices.DeleteFunc(l.banks, func(b Bank) bool { return b.ID == id })
	return len(l.banks) < n
}

// UpdateBankBalance is an absolute set of a bank's balance. Unlike the flow
// operations it writes no history record: it is a manual correction, not a
// tracked flow.
func (l *Ledger) UpdateBankBalance(id string, balance Money) bool {
	for i := range l.banks {
		if l.banks[i].ID == id {
			l.banks[i].Balance = balance
			return true
		}
	}
	return false
}

// SetInitialAmount records the cash the user started tracking with.
func (l *Ledger) SetInitialAmount(amount Money) {
	l.initialAmount = amount
}

// UpdateInvestments rebases an asset-class balance to an absolute value.
// The history record keeps the previous balance so the rebase magnitude can
// be reconstructed; its amount is the new balance, not a flow.
func (l *Ledger) UpdateInvestments(class string, amount Money) {
	prev := l.investments[class]
	if l.investments == nil {
		l.investments = make(map[string]Money)
	}
	l.investments[class] = amount
	l.logEvent(HistoryEntry{
		Type:     EvInvestment,
		Title:    "Adjusted " + class,
		Amount:   amount,
		Category: "Portfolio",
		Action:   ActionRebase,
		Previous: prev,
	})
}

// TopUpInvestment adds to an asset-class balance. Unlike UpdateInvestments
// the recorded amount is a true flow.
func (l *Ledger) TopUpInvestment(class string, amount Money) {
	if l.investments == nil {
		l.investments = make(map[string]Money)
	}
	l.investments[class] = l.investments[class].Add(amount)
	l.logEvent(HistoryEntry{
		Type:     EvInvestment,
		Title:    "Topped up " + class,
		Amount:   amount,
		Category: "Portfolio",
		Action:   ActionTopUp,
	})
}
