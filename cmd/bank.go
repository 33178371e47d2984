package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rahulkottikasala/cashflow"
)

// bankCmd holds the flags for the 'bank' subcommand.
type bankCmd struct {
	name    string
	balance float64
}

func (*bankCmd) Name() string     { return "bank" }
func (*bankCmd) Synopsis() string { return "register a bank account" }
func (*bankCmd) Usage() string {
	return `nxc bank -name <name> [-balance <amount>]

  Registers a bank account with its opening balance.
`
}

func (c *bankCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the bank account.")
	f.Float64Var(&c.balance, "balance", 0, "Opening balance.")
}

func (c *bankCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required")
		return subcommands.ExitUsageError
	}
	s := openStore()
	return commit(s, func(l *cashflow.Ledger) error {
		b := l.AddBank(c.name, cashflow.M(c.balance))
		fmt.Printf("Registered bank %s (%s) with balance %s\n", b.Name, b.ID, b.Balance)
		return nil
	})
}

// bankBalanceCmd holds the flags for the 'bank-balance' subcommand.
type bankBalanceCmd struct {
	id      string
	balance float64
}

func (*bankBalanceCmd) Name() string     { return "bank-balance" }
func (*bankBalanceCmd) Synopsis() string { return "correct a bank balance" }
func (*bankBalanceCmd) Usage() string {
	return `nxc bank-balance -id <id> -balance <amount>

  Sets a bank balance to an absolute value. This is a manual correction:
  no history entry is written.
`
}

func (c *bankBalanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the bank account.")
	f.Float64Var(&c.balance, "balance", 0, "New balance.")
}

func (c *bankBalanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
	}
	s := openStore()
	return commit(s, func(l *cashflow.Ledger) error {
		if !l.UpdateBankBalance(c.id, cashflow.M(c.balance)) {
			return fmt.Errorf("unknown bank %q", c.id)
		}
		fmt.Printf("Bank %s balance set to %s\n", c.id, cashflow.M(c.balance))
		return nil
	})
}

// initialCmd holds the flags for the 'initial' subcommand.
type initialCmd struct {
	amount float64
}

func (*initialCmd) Name() string     { return "initial" }
func (*initialCmd) Synopsis() string { return "set the starting cash amount" }
func (*initialCmd) Usage() string {
	return `nxc initial -amount <amount>

  Records the cash you started tracking with.
`
}

func (c *initialCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "amount", 0, "Starting amount.")
}

func (c *initialCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := openStore()
	return commit(s, func(l *cashflow.Ledger) error {
		l.SetInitialAmount(cashflow.M(c.amount))
		return nil
	})
}
