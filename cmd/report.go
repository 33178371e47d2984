package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rahulkottikasala/cashflow"
	"github.com/rahulkottikasala/cashflow/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the financial dashboard" }
func (*summaryCmd) Usage() string {
	return `nxc summary

  Displays every derived total: income, expenses, EMIs, outstanding
  debt, bank balances and investments.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := openStore()
	printMarkdown(renderer.SummaryMarkdown(s.Ledger()))
	return subcommands.ExitSuccess
}

// historyCmd holds the flags for the 'history' subcommand.
type historyCmd struct {
	limit int
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the audit log" }
func (*historyCmd) Usage() string {
	return `nxc history [-n <limit>]

  Displays the financial audit log, most recent first.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.limit, "n", 20, "Number of entries to show, 0 for all.")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := openStore()
	printMarkdown(renderer.HistoryMarkdown(s.Ledger(), c.limit))
	return subcommands.ExitSuccess
}

// businessReportCmd holds the flags for the 'report' subcommand.
type businessReportCmd struct {
	period string
}

func (*businessReportCmd) Name() string     { return "report" }
func (*businessReportCmd) Synopsis() string { return "display the business cycle report" }
func (*businessReportCmd) Usage() string {
	return `nxc report [-p all|daily|weekly|cycle]

  Displays net profit for the current cycle, per-car loan status and the
  entries in the chosen period.
`
}

func (c *businessReportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "cycle", "Period to list entries for: all, daily, weekly or cycle.")
}

func (c *businessReportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	period, err := cashflow.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	s := openStore()
	printMarkdown(renderer.CycleMarkdown(s.Ledger(), period))
	return subcommands.ExitSuccess
}

// snapshotCmd holds the flags for the 'snapshot' subcommand.
type snapshotCmd struct {
	take bool
}

func (*snapshotCmd) Name() string     { return "snapshot" }
func (*snapshotCmd) Synopsis() string { return "take or list monthly snapshots" }
func (*snapshotCmd) Usage() string {
	return `nxc snapshot [-take]

  Lists the retained monthly snapshots. With -take, first captures the
  current totals as a new snapshot; only the most recent twelve are
  kept.
`
}

func (c *snapshotCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.take, "take", false, "Capture a new snapshot before listing.")
}

func (c *snapshotCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := openStore()
	if c.take {
		if status := commit(s, func(l *cashflow.Ledger) error {
			snap := l.TakeMonthlySnapshot()
			fmt.Printf("Captured snapshot for %s\n", snap.Month)
			return nil
		}); status != subcommands.ExitSuccess {
			return status
		}
	}
	printMarkdown(renderer.SnapshotsMarkdown(s.Ledger()))
	return subcommands.ExitSuccess
}
