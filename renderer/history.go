package renderer

import (
	"fmt"
	"strings"

	"github.com/rahulkottikasala/cashflow"
)

// HistoryMarkdown renders the audit log, most recent first. A limit of
// zero renders everything.
func HistoryMarkdown(l *cashflow.Ledger, limit int) string {
	var b strings.Builder
	fmt.Fprint(&b, "# History\n\n")
	history := l.History()
	if len(history) == 0 {
		fmt.Fprintln(&b, "No transactions recorded yet.")
		return b.String()
	}
	if limit > 0 && len(history) > limit {
		history = history[:limit]
	}
	fmt.Fprintln(&b, "| Date | Type | Title | Amount | Category |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|:---|")
	for _, h := range history {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			h.Date, h.Type, h.Title, h.Amount, h.Category)
	}
	return b.String()
}

// EMIsMarkdown renders the recurring commitments with their lifecycle
// position.
func EMIsMarkdown(l *cashflow.Ledger) string {
	var b strings.Builder
	fmt.Fprint(&b, "# EMIs\n\n")
	emis := l.EMIs()
	if len(emis) == 0 {
		fmt.Fprintln(&b, "No EMIs registered.")
		return b.String()
	}
	fmt.Fprintln(&b, "| Name | Type | Amount | Remaining | Status | Last Paid |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|:---|:---|")
	for _, e := range emis {
		remaining := fmt.Sprint(e.RemainingTenure)
		if e.Evergreen() {
			remaining = "-"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			e.Name, e.Type, e.Amount, remaining, e.Status, e.LastPaidMonth)
	}
	fmt.Fprintf(&b, "\nOutstanding debt: %s, needed next month: %s\n",
		l.TotalEMIOutstanding(), l.NextMonthNeeded())
	return b.String()
}
