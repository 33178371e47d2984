package cashflow

// snapshotCap is how many monthly snapshots are retained.
const snapshotCap = 12

// MonthlySnapshot is a point-in-time aggregate taken on demand, labelled
// with the month it was captured in.
type MonthlySnapshot struct {
	Month       string `json:"month"`
	Income      Money  `json:"income"`
	Expenses    Money  `json:"expenses"`
	Investments Money  `json:"investments"`
}

// TakeMonthlySnapshot captures the current aggregate totals and appends
// them to the snapshot list, keeping only the most recent twelve.
func (l *Ledger) TakeMonthlySnapshot() MonthlySnapshot {
	s := MonthlySnapshot{
		Month:       l.today().ShortMonthLabel(),
		Income:      l.TotalIncome(),
		Expenses:    l.TotalExpenses(),
		Investments: l.TotalInvestments(),
	}
	l.snapshots = append(l.snapshots, s)
	if n := len(l.snapshots); n > snapshotCap {
		l.snapshots = l.snapshots[n-snapshotCap:]
	}
	return s
}
