package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rahulkottikasala/cashflow"
)

// incomeCmd holds the flags for the 'income' subcommand.
type incomeCmd struct {
	name   string
	amount float64
	source string
	date   string
	bank   string
}

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "record money received" }
func (*incomeCmd) Usage() string {
	return `nxc income -name <name> -amount <amount> [-source <source>] [-d <date>] [-bank <id>]

  Records an income entry, credits the given bank and logs the flow.
`
}

func (c *incomeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the income entry.")
	f.Float64Var(&c.amount, "amount", 0, "Amount received.")
	f.StringVar(&c.source, "source", "", "Income source (salary, freelance, ...).")
	f.StringVar(&c.date, "d", "", "Date of the income. Defaults to today.")
	f.StringVar(&c.bank, "bank", "", "Id of the bank to credit.")
}

func (c *incomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.amount == 0 {
		fmt.Fprintln(os.Stderr, "Error: -name and -amount are required")
		return subcommands.ExitUsageError
	}
	date, err := parseOptionalDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	s := openStore()
	return commit(s, func(l *cashflow.Ledger) error {
		e := l.AddIncome(cashflow.IncomeEntry{
			Name:   c.name,
			Amount: cashflow.M(c.amount),
			Source: c.source,
			Date:   date,
		}, c.bank)
		fmt.Printf("Recorded income %s of %s\n", e.ID, e.Amount)
		return nil
	})
}

// expenseCmd holds the flags for the 'expense' subcommand.
type expenseCmd struct {
	name     string
	amount   float64
	category string
	date     string
	bank     string
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record money spent" }
func (*expenseCmd) Usage() string {
	return `nxc expense -name <name> -amount <amount> [-category <category>] [-d <date>] [-bank <id>]

  Records an expense entry, debits the given bank and logs the flow.
`
}

func (c *expenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the expense entry.")
	f.Float64Var(&c.amount, "amount", 0, "Amount spent.")
	f.StringVar(&c.category, "category", "", "Expense category (food, rent, ...).")
	f.StringVar(&c.date, "d", "", "Date of the expense. Defaults to today.")
	f.StringVar(&c.bank, "bank", "", "Id of the bank to debit.")
}

func (c *expenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.amount == 0 {
		fmt.Fprintln(os.Stderr, "Error: -name and -amount are required")
		return subcommands.ExitUsageError
	}
	date, err := parseOptionalDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	s := openStore()
	return commit(s, func(l *cashflow.Ledger) error {
		e := l.AddExpense(cashflow.ExpenseEntry{
			Name:     c.name,
			Amount:   cashflow.M(c.amount),
			Category: c.category,
			Date:     date,
		}, c.bank)
		fmt.Printf("Recorded expense %s of %s\n", e.ID, e.Amount)
		return nil
	})
}

// parseOptionalDate parses the -d flag, an empty value meaning "today"
// (resolved by the ledger itself through its zero value).
func parseOptionalDate(str string) (cashflow.Date, error) {
	if str == "" {
		return cashflow.Date{}, nil
	}
	return cashflow.ParseDate(str)
}
