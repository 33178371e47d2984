package renderer

import (
	"fmt"
	"strings"

	"github.com/rahulkottikasala/cashflow"
)

// CycleMarkdown renders the business report for the current profit cycle:
// headline figures, per-car loan status and the entries in the period.
func CycleMarkdown(l *cashflow.Ledger, period cashflow.Period) string {
	var b strings.Builder
	stats := l.CycleStats()

	fmt.Fprintf(&b, "# Business Report (cycle starting %s)\n\n", stats.Start)
	fmt.Fprintln(&b, "| | |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| My Net Profit | %s |\n", stats.MyProfit.SignedString())
	fmt.Fprintf(&b, "| Total Fleet Profit | %s |\n", stats.TotalFleetProfit.SignedString())

	if fleet := l.FleetEMIStatus(); len(fleet) > 0 {
		fmt.Fprint(&b, "\n## Fleet EMIs\n\n")
		fmt.Fprintln(&b, "| Car | EMI | Remaining | This Cycle | Last Paid |")
		fmt.Fprintln(&b, "|:---|---:|---:|:---|:---|")
		for _, s := range fleet {
			mark := "due"
			if s.Paid {
				mark = "paid"
			}
			fmt.Fprintf(&b, "| %s | %s | %d | %s | %s |\n",
				s.Name, s.EMI, s.RemainingTenure, mark, s.LastPaidMonth)
		}
	}

	entries := l.BusinessEntries(period)
	fmt.Fprintf(&b, "\n## Entries (%s)\n\n", period)
	if len(entries) == 0 {
		fmt.Fprintln(&b, "No entries in this period.")
		return b.String()
	}
	fmt.Fprintln(&b, "| Date | Car | Type | Amount | Profit | My Share |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|---:|")
	for _, e := range entries {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			e.Date, e.CarName, e.Type, e.Amount,
			e.Profit.SignedString(), e.MyPortion.SignedString())
	}
	return b.String()
}

// DriversMarkdown renders the driver roster.
func DriversMarkdown(l *cashflow.Ledger) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Drivers\n\n")
	drivers := l.FleetDrivers()
	if len(drivers) == 0 {
		fmt.Fprintln(&b, "No drivers registered.")
		return b.String()
	}
	fmt.Fprintln(&b, "| Id | Name |")
	fmt.Fprintln(&b, "|:---|:---|")
	for _, d := range drivers {
		fmt.Fprintf(&b, "| %s | %s |\n", d.ID, d.Name)
	}
	return b.String()
}
