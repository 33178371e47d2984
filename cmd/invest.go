package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rahulkottikasala/cashflow"
)

// investCmd holds the flags for the 'invest' subcommand.
type investCmd struct {
	class  string
	amount float64
}

func (*investCmd) Name() string     { return "invest" }
func (*investCmd) Synopsis() string { return "rebase an investment balance" }
func (*investCmd) Usage() string {
	return `nxc invest -class <class> -amount <amount>

  Sets an asset-class balance (stocks, gold, crypto, mutualFunds) to an
  absolute value. Use 'topup' to add to the current balance instead.
`
}

func (c *investCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.class, "class", "", "Asset class.")
	f.Float64Var(&c.amount, "amount", 0, "New absolute balance.")
}

func (c *investCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.class == "" {
		fmt.Fprintln(os.Stderr, "Error: -class is required")
		return subcommands.ExitUsageError
	}
	s := openStore()
	return commit(s, func(l *cashflow.Ledger) error {
		l.UpdateInvestments(c.class, cashflow.M(c.amount))
		fmt.Printf("Rebased %s to %s\n", c.class, cashflow.M(c.amount))
		return nil
	})
}

// topupCmd holds the flags for the 'topup' subcommand.
type topupCmd struct {
	class  string
	amount float64
}

func (*topupCmd) Name() string     { return "topup" }
func (*topupCmd) Synopsis() string { return "add to an investment balance" }
func (*topupCmd) Usage() string {
	return `nxc topup -class <class> -amount <amount>

  Adds the amount to the asset-class balance.
`
}

func (c *topupCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.class, "class", "", "Asset class.")
	f.Float64Var(&c.amount, "amount", 0, "Amount to add.")
}

func (c *topupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.class == "" {
		fmt.Fprintln(os.Stderr, "Error: -class is required")
		return subcommands.ExitUsageError
	}
	s := openStore()
	return commit(s, func(l *cashflow.Ledger) error {
		l.TopUpInvestment(c.class, cashflow.M(c.amount))
		fmt.Printf("Topped up %s by %s\n", c.class, cashflow.M(c.amount))
		return nil
	})
}
