// Package renderer turns ledger state into markdown reports for the CLI.
package renderer

import (
	"fmt"
	"strings"

	"github.com/rahulkottikasala/cashflow"
)

// SummaryMarkdown renders the dashboard: every derived total at a glance.
func SummaryMarkdown(l *cashflow.Ledger) string {
	var b strings.Builder
	t := l.Totals()

	fmt.Fprint(&b, "# Summary\n\n")
	fmt.Fprintln(&b, "| | |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Total Income | %s |\n", t.Income)
	fmt.Fprintf(&b, "| Total Expenses | %s |\n", t.Expenses)
	fmt.Fprintf(&b, "| Monthly EMIs | %s |\n", t.EMIs)
	fmt.Fprintf(&b, "| EMI Outstanding | %s |\n", t.EMIOutstanding)
	fmt.Fprintf(&b, "| Needed Next Month | %s |\n", t.NextMonth)
	fmt.Fprintf(&b, "| Bank Balance | %s |\n", t.BankBalance)
	fmt.Fprintf(&b, "| Investments | %s |\n", t.Investments)
	if !l.InitialAmount().IsZero() {
		fmt.Fprintf(&b, "| Initial Amount | %s |\n", l.InitialAmount())
	}

	if banks := l.Banks(); len(banks) > 0 {
		fmt.Fprint(&b, "\n## Banks\n\n")
		fmt.Fprintln(&b, "| Bank | Balance |")
		fmt.Fprintln(&b, "|:---|---:|")
		for _, bank := range banks {
			fmt.Fprintf(&b, "| %s | %s |\n", bank.Name, bank.Balance)
		}
	}

	if inv := l.Investments(); len(inv) > 0 {
		fmt.Fprint(&b, "\n## Investments\n\n")
		fmt.Fprintln(&b, "| Asset | Balance |")
		fmt.Fprintln(&b, "|:---|---:|")
		for _, class := range []string{
			cashflow.AssetStocks,
			cashflow.AssetGold,
			cashflow.AssetCrypto,
			cashflow.AssetMutualFunds,
		} {
			fmt.Fprintf(&b, "| %s | %s |\n", class, inv[class])
		}
	}
	return b.String()
}

// SnapshotsMarkdown renders the retained monthly snapshots, oldest first.
func SnapshotsMarkdown(l *cashflow.Ledger) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Monthly Snapshots\n\n")
	snaps := l.Snapshots()
	if len(snaps) == 0 {
		fmt.Fprintln(&b, "No snapshots taken yet.")
		return b.String()
	}
	fmt.Fprintln(&b, "| Month | Income | Expenses | Investments |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|")
	for _, s := range snaps {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", s.Month, s.Income, s.Expenses, s.Investments)
	}
	return b.String()
}
