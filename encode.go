package cashflow

import (
	"encoding/json"
	"fmt"
	"io"
)

// jstate mirrors the persisted ledger document. The ledger itself keeps
// its fields unexported; this struct is the wire shape.
type jstate struct {
	Income        []IncomeEntry     `json:"income"`
	Expenses      []ExpenseEntry    `json:"expenses"`
	EMIs          []EMI             `json:"emis"`
	Banks         []Bank            `json:"banks"`
	Investments   map[string]Money  `json:"investments"`
	InitialAmount Money             `json:"initialAmount"`
	Snapshots     []MonthlySnapshot `json:"historicalStats"`
	History       []HistoryEntry    `json:"history"`
	Business      BusinessState     `json:"business"`
}

func (l *Ledger) wire() jstate {
	return jstate{
		Income:        emptyNotNil(l.income),
		Expenses:      emptyNotNil(l.expenses),
		EMIs:          emptyNotNil(l.emis),
		Banks:         emptyNotNil(l.banks),
		Investments:   l.Investments(),
		InitialAmount: l.initialAmount,
		Snapshots:     emptyNotNil(l.snapshots),
		History:       emptyNotNil(l.history),
		Business: BusinessState{
			Cars:     emptyNotNil(l.business.Cars),
			Drivers:  emptyNotNil(l.business.Drivers),
			Entries:  emptyNotNil(l.business.Entries),
			CycleDay: l.CycleDay(),
		},
	}
}

// emptyNotNil keeps empty collections as [] in the document rather than
// null, so consumers of the raw document never see null arrays.
func emptyNotNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// EncodeState writes the ledger as a single compact JSON document.
func EncodeState(w io.Writer, l *Ledger) error {
	if err := json.NewEncoder(w).Encode(l.wire()); err != nil {
		return fmt.Errorf("cannot encode ledger: %w", err)
	}
	return nil
}

// EncodeStateIndent writes the ledger as an indented JSON document, the
// shape used for backup files.
func EncodeStateIndent(w io.Writer, l *Ledger) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(l.wire()); err != nil {
		return fmt.Errorf("cannot encode ledger: %w", err)
	}
	return nil
}

// DecodeState reads a ledger document. Missing collections come back
// empty, missing investment classes come back zeroed, and a missing cycle
// day falls back to the default: old documents stay loadable.
func DecodeState(r io.Reader) (*Ledger, error) {
	var j jstate
	if err := json.NewDecoder(r).Decode(&j); err != nil {
		return nil, fmt.Errorf("cannot decode ledger: %w", err)
	}
	l := NewLedger()
	l.income = j.Income
	l.expenses = j.Expenses
	l.emis = j.EMIs
	l.banks = j.Banks
	for class, v := range j.Investments {
		l.investments[class] = v
	}
	l.initialAmount = j.InitialAmount
	l.snapshots = j.Snapshots
	l.history = j.History
	l.business = j.Business
	if l.business.CycleDay == 0 {
		l.business.CycleDay = DefaultCycleDay
	}
	return l, nil
}
