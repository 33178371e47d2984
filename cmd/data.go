package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rahulkottikasala/cashflow"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "save a full backup of the ledger" }
func (*exportCmd) Usage() string {
	return `nxc export [-o <file>]

  Writes the complete ledger as an indented JSON backup. The default
  file name embeds today's date.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Backup file to write. Defaults to a dated name.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := openStore()
	l := s.Ledger()
	name := c.output
	if name == "" {
		name = l.BackupFilename()
	}
	out, err := os.Create(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating backup file: %v\n", err)
		return subcommands.ExitFailure
	}
	defer out.Close()
	if err := cashflow.EncodeStateIndent(out, l); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing backup: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Backup saved to %s\n", name)
	return subcommands.ExitSuccess
}

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the ledger from a backup" }
func (*importCmd) Usage() string {
	return `nxc import <file>

  Validates a JSON backup and replaces the entire ledger with it. A
  backup missing any of the required collections is rejected and the
  current ledger is left untouched.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one backup file expected")
		return subcommands.ExitUsageError
	}
	data, err := os.ReadFile(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading backup: %v\n", err)
		return subcommands.ExitFailure
	}
	l, err := cashflow.ImportState(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	s := openStore()
	if err := s.Replace(l); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Ledger replaced from backup")
	return subcommands.ExitSuccess
}

// historyCSVCmd holds the flags for the 'history-csv' subcommand.
type historyCSVCmd struct {
	output string
}

func (*historyCSVCmd) Name() string     { return "history-csv" }
func (*historyCSVCmd) Synopsis() string { return "export the audit log as CSV" }
func (*historyCSVCmd) Usage() string {
	return `nxc history-csv [-o <file>]

  Writes the audit log as CSV. The default file name embeds today's
  date.
`
}

func (c *historyCSVCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "CSV file to write. Defaults to a dated name.")
}

func (c *historyCSVCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := openStore()
	l := s.Ledger()
	name := c.output
	if name == "" {
		name = l.HistoryCSVFilename()
	}
	out, err := os.Create(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating csv file: %v\n", err)
		return subcommands.ExitFailure
	}
	defer out.Close()
	if err := l.WriteHistoryCSV(out); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing csv: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("History saved to %s\n", name)
	return subcommands.ExitSuccess
}

// rmCmd holds the flags for the 'rm' subcommand.
type rmCmd struct{}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete an entry by id" }
func (*rmCmd) Usage() string {
	return `nxc rm <collection> <id>

  Deletes one entry from income, expense, emi, bank, car, driver or
  entry. Bank balances and the audit log are left as they are: deleting
  an income entry does not undo the credit it caused.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expected a collection and an id")
		return subcommands.ExitUsageError
	}
	collection, id := f.Arg(0), f.Arg(1)
	s := openStore()
	return commit(s, func(l *cashflow.Ledger) error {
		var ok bool
		switch collection {
		case "income":
			ok = l.DeleteIncome(id)
		case "expense":
			ok = l.DeleteExpense(id)
		case "emi":
			ok = l.DeleteEMI(id)
		case "bank":
			ok = l.DeleteBank(id)
		case "car":
			ok = l.DeleteCar(id)
		case "driver":
			ok = l.DeleteDriver(id)
		case "entry":
			ok = l.DeleteBusinessEntry(id)
		default:
			return fmt.Errorf("unknown collection %q", collection)
		}
		if !ok {
			return fmt.Errorf("no %s with id %q", collection, id)
		}
		fmt.Printf("Deleted %s %s\n", collection, id)
		return nil
	})
}

// editCmd holds the flags for the 'edit' subcommand.
type editCmd struct {
	name     string
	amount   float64
	category string
	bank     string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "rewrite an entry in place" }
func (*editCmd) Usage() string {
	return `nxc edit <collection> <id> [-name <name>] [-amount <amount>] [-category <category>] [-bank <id>]

  Rewrites one entry from income, expense, emi, bank, car, driver or
  entry, keeping its id. Flags left out keep the stored value. Bank
  balances and the audit log are left as they are: raising an expense
  amount does not debit the bank again. A business entry has its profit
  split recomputed against the car's current configuration.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "New name.")
	f.Float64Var(&c.amount, "amount", 0, "New amount, or balance for a bank.")
	f.StringVar(&c.category, "category", "", "New category, or source for an income.")
	f.StringVar(&c.bank, "bank", "", "New bank id.")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expected a collection and an id")
		return subcommands.ExitUsageError
	}
	collection, id := f.Arg(0), f.Arg(1)
	s := openStore()
	return commit(s, func(l *cashflow.Ledger) error {
		ok := false
		switch collection {
		case "income":
			for _, e := range l.Income() {
				if e.ID != id {
					continue
				}
				if c.name != "" {
					e.Name = c.name
				}
				if c.amount != 0 {
					e.Amount = cashflow.M(c.amount)
				}
				if c.category != "" {
					e.Source = c.category
				}
				if c.bank != "" {
					e.BankID = c.bank
				}
				ok = l.EditIncome(id, e)
				break
			}
		case "expense":
			for _, e := range l.Expenses() {
				if e.ID != id {
					continue
				}
				if c.name != "" {
					e.Name = c.name
				}
				if c.amount != 0 {
					e.Amount = cashflow.M(c.amount)
				}
				if c.category != "" {
					e.Category = c.category
				}
				if c.bank != "" {
					e.BankID = c.bank
				}
				ok = l.EditExpense(id, e)
				break
			}
		case "emi":
			for _, e := range l.EMIs() {
				if e.ID != id {
					continue
				}
				if c.name != "" {
					e.Name = c.name
				}
				if c.amount != 0 {
					e.Amount = cashflow.M(c.amount)
				}
				if c.bank != "" {
					e.BankID = c.bank
				}
				ok = l.EditEMI(id, e)
				break
			}
		case "bank":
			for _, b := range l.Banks() {
				if b.ID != id {
					continue
				}
				if c.name != "" {
					b.Name = c.name
				}
				if c.amount != 0 {
					b.Balance = cashflow.M(c.amount)
				}
				ok = l.EditBank(id, b)
				break
			}
		case "car":
			for _, ca := range l.Cars() {
				if ca.ID != id {
					continue
				}
				if c.name != "" {
					ca.Name = c.name
				}
				if c.amount != 0 {
					ca.EMI = cashflow.M(c.amount)
				}
				ok = l.UpdateCar(id, ca)
				break
			}
		case "driver":
			for _, d := range l.FleetDrivers() {
				if d.ID != id {
					continue
				}
				name := d.Name
				if c.name != "" {
					name = c.name
				}
				ok = l.UpdateDriver(id, name)
				break
			}
		case "entry":
			for _, e := range l.BusinessEntries(cashflow.AllTime) {
				if e.ID != id {
					continue
				}
				in := cashflow.EntryInput{
					Date:               e.Date,
					Type:               e.Type,
					Amount:             e.Amount,
					CNG:                e.CNG,
					Drivers:            e.Drivers,
					DriverID:           e.DriverID,
					UberCommission:     e.UberCommission,
					UberCommissionType: e.UberCommissionType,
				}
				if c.amount != 0 {
					in.Amount = cashflow.M(c.amount)
				}
				redone, err := l.NewBusinessEntry(e.CarID, in)
				if err != nil {
					return err
				}
				ok = l.EditBusinessEntry(id, redone)
				break
			}
		default:
			return fmt.Errorf("unknown collection %q", collection)
		}
		if !ok {
			return fmt.Errorf("no %s with id %q", collection, id)
		}
		fmt.Printf("Updated %s %s\n", collection, id)
		return nil
	})
}
