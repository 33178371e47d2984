package cashflow

// Derived totals. All of them are computed from the current state on every
// call; nothing is cached across mutations.

// TotalIncome sums every income entry.
func (l *Ledger) TotalIncome() Money {
	var total Money
	for _, e := range l.income {
		total = total.Add(e.Amount)
	}
	return total
}

// TotalExpenses sums every expense entry.
func (l *Ledger) TotalExpenses() Money {
	var total Money
	for _, e := range l.expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// TotalEMIs sums the monthly amounts of every EMI not yet closed.
func (l *Ledger) TotalEMIs() Money {
	var total Money
	for _, e := range l.emis {
		total = total.Add(e.MonthlyOutflow())
	}
	return total
}

// TotalEMIOutstanding approximates the remaining principal across active
// debt EMIs: monthly amount times remaining tenure, flat structure assumed.
func (l *Ledger) TotalEMIOutstanding() Money {
	var total Money
	for _, e := range l.emis {
		total = total.Add(e.Outstanding())
	}
	return total
}

// NextMonthNeeded is the minimum recurring outflow to stay current next
// month: the monthly amount of every active EMI, evergreen ones included.
func (l *Ledger) NextMonthNeeded() Money {
	return l.TotalEMIs()
}

// TotalBankBalance sums all bank balances.
func (l *Ledger) TotalBankBalance() Money {
	var total Money
	for _, b := range l.banks {
		total = total.Add(b.Balance)
	}
	return total
}

// TotalInvestments sums all asset-class balances.
func (l *Ledger) TotalInvestments() Money {
	var total Money
	for _, v := range l.investments {
		total = total.Add(v)
	}
	return total
}

// Totals is a point-in-time snapshot of all derived figures.
type Totals struct {
	Income         Money
	Expenses       Money
	EMIs           Money
	EMIOutstanding Money
	NextMonth      Money
	BankBalance    Money
	Investments    Money
}

// Totals computes every derived figure at once.
func (l *Ledger) Totals() Totals {
	return Totals{
		Income:         l.TotalIncome(),
		Expenses:       l.TotalExpenses(),
		EMIs:           l.TotalEMIs(),
		EMIOutstanding: l.TotalEMIOutstanding(),
		NextMonth:      l.NextMonthNeeded(),
		BankBalance:    l.TotalBankBalance(),
		Investments:    l.TotalInvestments(),
	}
}
