package cashflow

import "fmt"

// EMIType classifies a recurring commitment.
//
// Debt and business EMIs amortize: each payment decrements the remaining
// tenure and the EMI closes when it reaches zero. Family and saving EMIs
// are evergreen standing orders: they never amortize and never close on
// their own.
type EMIType string

const (
	EMIDebt     EMIType = "debt"
	EMIFamily   EMIType = "family"
	EMISaving   EMIType = "saving"
	EMIBusiness EMIType = "business"
)

// Status of an EMI or a fleet car loan.
type Status string

const (
	StatusActive Status = "active"
	StatusClosed Status = "closed"
)

// EMI is a recurring monthly commitment: a loan installment, a family
// transfer or a standing saving order.
type EMI struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Amount          Money   `json:"amount"`
	Type            EMIType `json:"type"`
	Tenure          int     `json:"tenure,omitempty"`
	RemainingTenure int     `json:"remainingTenure,omitempty"`
	DueDay          int     `json:"dueDay,omitempty"`
	FullDate        Date    `json:"fullDate,omitempty"`
	Status          Status  `json:"status"`
	StartNextMonth  bool    `json:"startNextMonth,omitempty"`
	LastPaidMonth   string  `json:"lastPaidMonth,omitempty"`
	BankID          string  `json:"bankId,omitempty"`
}

// Evergreen reports whether the EMI is a standing order that never
// amortizes.
func (e EMI) Evergreen() bool {
	return e.Type == EMIFamily || e.Type == EMISaving
}

// MonthlyOutflow is the amount a still-active EMI costs per month.
func (e EMI) MonthlyOutflow() Money {
	if e.Status == StatusClosed {
		return M(0)
	}
	return e.Amount
}

// Outstanding is the remaining principal of an amortizing debt: the
// monthly amount times the remaining tenure. Evergreen and closed EMIs
// have no outstanding principal.
func (e EMI) Outstanding() Money {
	if e.Status == StatusClosed || e.Type != EMIDebt {
		return M(0)
	}
	return e.Amount.MulInt(e.RemainingTenure)
}

// AddEMI assigns a fresh id to the commitment, normalizes its tenure
// fields, prepends it to the EMI list and writes a history record.
//
// An evergreen EMI is pinned at remaining tenure 1 no matter what the
// caller supplied; an amortizing one with no remaining tenure starts at
// its full tenure.
func (l *Ledger) AddEMI(e EMI) EMI {
	e.ID = l.newID()
	e.Status = StatusActive
	if e.Evergreen() {
		e.RemainingTenure = 1
	} else if e.RemainingTenure == 0 {
		e.RemainingTenure = e.Tenure
	}
	if e.StartNextMonth && !e.FullDate.IsZero() {
		e.FullDate = e.FullDate.AddMonth(1)
	}
	l.emis = append([]EMI{e}, l.emis...)
	l.logEvent(HistoryEntry{
		Type:     EvEMICreated,
		Title:    e.Name,
		Amount:   e.Amount,
		Category: string(e.Type),
		EMIID:    e.ID,
		BankID:   e.BankID,
	})
	return e
}

// EditEMI replaces the EMI with the given id, preserving the id. Past
// payments are not reconciled.
func (l *Ledger) EditEMI(id string, patch EMI) bool {
	for i := range l.emis {
		if l.emis[i].ID == id {
			patch.ID = id
			l.emis[i] = patch
			return true
		}
	}
	return false
}

// DeleteEMI removes the EMI with the given id. Its payment history stays.
func (l *Ledger) DeleteEMI(id string) bool {
	n := len(l.emis)
	for i := range l.emis {
		if l.emis[i].ID == id {
			l.emis = append(l.emis[:i], l.emis[i+1:]...)
			break
		}
	}
	return len(l.emis) < n
}

func (l *Ledger) findEMI(id string) (int, error) {
	for i := range l.emis {
		if l.emis[i].ID == id {
			return i, nil
		}
	}
	return -1, fmt.Errorf("unknown emi %q", id)
}

// ConfirmEMIPayment records one monthly payment of an EMI: it debits the
// paying bank, stamps the paid month, and for amortizing EMIs decrements
// the remaining tenure, closing the EMI when it reaches zero. Evergreen
// EMIs stay active at remaining tenure 1 forever.
func (l *Ledger) ConfirmEMIPayment(id, bankID string) (EMI, error) {
	i, err := l.findEMI(id)
	if err != nil {
		return EMI{}, err
	}
	e := l.emis[i]
	l.debitBank(bankID, e.Amount)
	e.LastPaidMonth = l.today().MonthLabel()
	if e.Evergreen() {
		e.RemainingTenure = 1
	} else {
		remaining := e.RemainingTenure
		if remaining == 0 {
			remaining = e.Tenure
		}
		e.RemainingTenure = remaining - 1
		if e.RemainingTenure <= 0 {
			e.RemainingTenure = 0
			e.Status = StatusClosed
		}
	}
	l.emis[i] = e
	l.logEvent(HistoryEntry{
		Type:     EvEMIPayment,
		Title:    e.Name,
		Amount:   e.Amount,
		Category: string(e.Type),
		EMIID:    e.ID,
		BankID:   bankID,
	})
	return e, nil
}

// ForceCloseEMI settles an EMI early. A positive closure amount is debited
// from the paying bank; zero means the debt was written off.
func (l *Ledger) ForceCloseEMI(id string, closure Money, bankID string) (EMI, error) {
	i, err := l.findEMI(id)
	if err != nil {
		return EMI{}, err
	}
	e := l.emis[i]
	if closure.IsPositive() {
		l.debitBank(bankID, closure)
	}
	e.Status = StatusClosed
	e.RemainingTenure = 0
	l.emis[i] = e
	l.logEvent(HistoryEntry{
		Type:     EvEMIForceClose,
		Title:    e.Name,
		Amount:   closure,
		Category: string(e.Type),
		EMIID:    e.ID,
		BankID:   bankID,
	})
	return e, nil
}
