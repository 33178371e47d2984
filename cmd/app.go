// Package cmd implements the CLI application to manage a cashflow ledger.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rahulkottikasala/cashflow"
)

// Register the subcommands.
// A main package calls Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&incomeCmd{}, "money")
	c.Register(&expenseCmd{}, "money")
	c.Register(&bankCmd{}, "money")
	c.Register(&bankBalanceCmd{}, "money")
	c.Register(&initialCmd{}, "money")
	c.Register(&investCmd{}, "money")
	c.Register(&topupCmd{}, "money")

	c.Register(&emiCmd{}, "commitments")
	c.Register(&payCmd{}, "commitments")
	c.Register(&closeCmd{}, "commitments")

	c.Register(&carCmd{}, "business")
	c.Register(&driverCmd{}, "business")
	c.Register(&entryCmd{}, "business")
	c.Register(&payCarCmd{}, "business")
	c.Register(&cycleDayCmd{}, "business")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")
	c.Register(&businessReportCmd{}, "reports")
	c.Register(&snapshotCmd{}, "reports")

	c.Register(&editCmd{}, "data")
	c.Register(&rmCmd{}, "data")
	c.Register(&exportCmd{}, "data")
	c.Register(&importCmd{}, "data")
	c.Register(&historyCSVCmd{}, "data")

	c.Register(&topicCmd{}, "")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data", ".cashflow", "Path to the folder holding the ledger document")

// openStore opens the ledger store backed by the app data folder.
func openStore() *cashflow.Store {
	return cashflow.Open(cashflow.NewDirKV(*dataDir))
}

// commit applies one mutation to the store and maps failure to an exit
// status, printing the error for the user.
func commit(s *cashflow.Store, mutate func(l *cashflow.Ledger) error) subcommands.ExitStatus {
	if err := s.Update(mutate); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
