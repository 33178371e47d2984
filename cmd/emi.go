package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rahulkottikasala/cashflow"
)

// emiCmd holds the flags for the 'emi' subcommand.
type emiCmd struct {
	name      string
	amount    float64
	kind      string
	tenure    int
	dueDay    int
	date      string
	nextMonth bool
	bank      string
}

func (*emiCmd) Name() string     { return "emi" }
func (*emiCmd) Synopsis() string { return "register a recurring commitment" }
func (*emiCmd) Usage() string {
	return `nxc emi -name <name> -amount <amount> -type debt|family|saving|business [-tenure <months>] [-due <day>] [-d <date>] [-next-month] [-bank <id>]

  Registers a monthly commitment. Debt and business EMIs run down their
  tenure and close; family and saving EMIs are standing orders that never
  close on their own.
`
}

func (c *emiCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the commitment.")
	f.Float64Var(&c.amount, "amount", 0, "Monthly amount.")
	f.StringVar(&c.kind, "type", string(cashflow.EMIDebt), "Kind of commitment: debt, family, saving or business.")
	f.IntVar(&c.tenure, "tenure", 0, "Total number of monthly payments (debt and business only).")
	f.IntVar(&c.dueDay, "due", 0, "Day of month the payment is due.")
	f.StringVar(&c.date, "d", "", "First due date.")
	f.BoolVar(&c.nextMonth, "next-month", false, "Start the schedule one month out.")
	f.StringVar(&c.bank, "bank", "", "Id of the bank the payment comes from.")
}

func (c *emiCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
		e := l.AddEMI(cashflow.EMI{
			Name:           c.name,
			Amount:         cashflow.M(c.amount),
			Type:           cashflow.EMIType(c.kind),
			Tenure:         c.tenure,
			DueDay:         c.dueDay,
			FullDate:       date,
			StartNextMonth: c.nextMonth,
			BankID:         c.bank,
		})
		fmt.Printf("Registered %s EMI %s (%s) of %s\n", e.Type, e.Name, e.ID, e.Amount)
		return nil
	})
}

// payCmd holds the flags for the 'pay' subcommand.
type payCmd struct {
	bank string
}

func (*payCmd) Name() string     { return "pay" }
func (*payCmd) Synopsis() string { return "confirm one monthly EMI payment" }
func (*payCmd) Usage() string {
	return `nxc pay [-bank <id>] <emi-id>

  Records one monthly payment on the EMI: debits the bank, counts down
  the tenure, and closes the EMI when the tenure is exhausted.
`
}

func (c *payCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.bank, "bank", "", "Id of the bank to debit.")
}

func (c *payCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one EMI id expected")
		return subcommands.ExitUsageError
	}
	s := openStore()
	return commit(s, func(l *cashflow.Ledger) error {
		e, err := l.ConfirmEMIPayment(f.Arg(0), c.bank)
		if err != nil {
			return err
		}
		if e.Status == cashflow.StatusClosed {
			fmt.Printf("Paid %s, commitment complete, EMI closed\n", e.Name)
		} else {
			fmt.Printf("Paid %s, %d payments remaining\n", e.Name, e.RemainingTenure)
		}
		return nil
	})
}

// closeCmd holds the flags for the 'close' subcommand.
type closeCmd struct {
	amount float64
	bank   string
}

func (*closeCmd) Name() string     { return "close" }
func (*closeCmd) Synopsis() string { return "settle an EMI early" }
func (*closeCmd) Usage() string {
	return `nxc close [-amount <closure>] [-bank <id>] <emi-id>

  Terminally settles an EMI in one lump payment, bypassing the monthly
  countdown. A zero closure amount writes the debt off.
`
}

func (c *closeCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "amount", 0, "Lump closure amount to debit.")
	f.StringVar(&c.bank, "bank", "", "Id of the bank to debit.")
}

func (c *closeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one EMI id expected")
		return subcommands.ExitUsageError
	}
	s := openStore()
	return commit(s, func(l *cashflow.Ledger) error {
		e, err := l.ForceCloseEMI(f.Arg(0), cashflow.M(c.amount), c.bank)
		if err != nil {
			return err
		}
		fmt.Printf("Closed %s\n", e.Name)
		return nil
	})
}
