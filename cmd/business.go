package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rahulkottikasala/cashflow"
)

// carCmd holds the flags for the 'car' subcommand.
type carCmd struct {
	name         string
	brand        string
	year         string
	emi          float64
	emiDate      string
	tenure       int
	nextMonth    bool
	partner      string
	partnerShare float64
}

func (*carCmd) Name() string     { return "car" }
func (*carCmd) Synopsis() string { return "register a fleet vehicle" }
func (*carCmd) Usage() string {
	return `nxc car -name <name> [-brand <brand>] [-year <year>] [-emi <amount>] [-emi-date <date>] [-tenure <months>] [-next-month] [-partner <name>] [-share <percent>]

  Registers a fleet vehicle with its loan schedule. Giving a partner name
  makes the car co-owned: the partner's share is carved out of every
  profit entry recorded against it.
`
}

func (c *carCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the car.")
	f.StringVar(&c.brand, "brand", "", "Brand.")
	f.StringVar(&c.year, "year", "", "Model year.")
	f.Float64Var(&c.emi, "emi", 0, "Monthly loan installment.")
	f.StringVar(&c.emiDate, "emi-date", "", "First installment due date.")
	f.IntVar(&c.tenure, "tenure", 0, "Total number of installments.")
	f.BoolVar(&c.nextMonth, "next-month", false, "Start the loan schedule one month out.")
	f.StringVar(&c.partner, "partner", "", "Name of the co-owner, if any.")
	f.Float64Var(&c.partnerShare, "share", 50, "Co-owner's percentage share of profit.")
}

func (c *carCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required")
		return subcommands.ExitUsageError
	}
	emiDate, err := parseOptionalDate(c.emiDate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	s := openStore()
	return commit(s, func(l *cashflow.Ledger) error {
		car := l.AddCar(cashflow.Car{
			Name:           c.name,
			Brand:          c.brand,
			Year:           c.year,
			EMI:            cashflow.M(c.emi),
			EMIDate:        emiDate,
			TotalTenure:    c.tenure,
			StartNextMonth: c.nextMonth,
			HasPartner:     c.partner != "",
			PartnerName:    c.partner,
			PartnerShare:   c.partnerShare,
		})
		fmt.Printf("Registered car %s (%s)\n", car.Name, car.ID)
		return nil
	})
}

// driverCmd holds the flags for the 'driver' subcommand.
type driverCmd struct {
	name string
}

func (*driverCmd) Name() string     { return "driver" }
func (*driverCmd) Synopsis() string { return "register a fleet driver" }
func (*driverCmd) Usage() string {
	return `nxc driver -name <name>

  Registers a driver for commission entries.
`
}

func (c *driverCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the driver.")
}

func (c *driverCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required")
		return subcommands.ExitUsageError
	}
	s := openStore()
	return commit(s, func(l *cashflow.Ledger) error {
		d := l.AddDriver(c.name)
		fmt.Printf("Registered driver %s (%s)\n", d.Name, d.ID)
		return nil
	})
}

// entryCmd holds the flags for the 'entry' subcommand.
type entryCmd struct {
	car      string
	kind     string
	amount   float64
	cng      float64
	drivers  int
	driver   string
	date     string
	comm     float64
	commType string
}

func (*entryCmd) Name() string     { return "entry" }
func (*entryCmd) Synopsis() string { return "record a business revenue or cost event" }
func (*entryCmd) Usage() string {
	return `nxc entry -car <id> -type rent|commission|maintenance -amount <amount> [-cng <fuel>] [-drivers <count>] [-driver <id>] [-d <date>] [-comm <value>] [-comm-type percentage|fixed]

  Records an event against a car. The profit split (driver share,
  platform fee, partner share) is computed now and frozen on the entry.
`
}

func (c *entryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.car, "car", "", "Id of the car.")
	f.StringVar(&c.kind, "type", string(cashflow.EntryRent), "Kind of event: rent, commission or maintenance.")
	f.Float64Var(&c.amount, "amount", 0, "Gross amount of the event.")
	f.Float64Var(&c.cng, "cng", 0, "Fuel cost deducted before the commission split.")
	f.IntVar(&c.drivers, "drivers", 1, "Number of drivers on the shift.")
	f.StringVar(&c.driver, "driver", "", "Id of the driver.")
	f.StringVar(&c.date, "d", "", "Date of the event. Defaults to today.")
	f.Float64Var(&c.comm, "comm", 0, "Ride platform's own commission, recorded for reference.")
	f.StringVar(&c.commType, "comm-type", string(cashflow.CommissionPercentage), "How the platform commission is quoted: percentage or fixed.")
}

func (c *entryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.car == "" || c.amount == 0 {
		fmt.Fprintln(os.Stderr, "Error: -car and -amount are required")
		return subcommands.ExitUsageError
	}
	date, err := parseOptionalDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	s := openStore()
	return commit(s, func(l *cashflow.Ledger) error {
		e, err := l.NewBusinessEntry(c.car, cashflow.EntryInput{
			Date:               date,
			Type:               cashflow.EntryType(c.kind),
			Amount:             cashflow.M(c.amount),
			CNG:                cashflow.M(c.cng),
			Drivers:            c.drivers,
			DriverID:           c.driver,
			UberCommission:     c.comm,
			UberCommissionType: cashflow.CommissionType(c.commType),
		})
		if err != nil {
			return err
		}
		e = l.AddBusinessEntry(e)
		fmt.Printf("Recorded %s entry for %s, profit %s, my share %s\n",
			e.Type, e.CarName, e.Profit.SignedString(), e.MyPortion.SignedString())
		return nil
	})
}

// payCarCmd holds the flags for the 'pay-car' subcommand.
type payCarCmd struct {
	bank string
}

func (*payCarCmd) Name() string     { return "pay-car" }
func (*payCarCmd) Synopsis() string { return "pay one installment on a fleet car loan" }
func (*payCarCmd) Usage() string {
	return `nxc pay-car [-bank <id>] <car-id>

  Records one installment on the car's loan and advances the next due
  date by one month.
`
}

func (c *payCarCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.bank, "bank", "", "Id of the bank to debit.")
}

func (c *payCarCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one car id expected")
		return subcommands.ExitUsageError
	}
	s := openStore()
	return commit(s, func(l *cashflow.Ledger) error {
		car, err := l.PayCarEMI(f.Arg(0), c.bank)
		if err != nil {
			return err
		}
		fmt.Printf("Paid %s for %s, %d installments remaining, next due %s\n",
			car.EMI, car.Name, car.RemainingTenure, car.EMIDate)
		return nil
	})
}

// cycleDayCmd holds the flags for the 'cycle-day' subcommand.
type cycleDayCmd struct {
	day int
}

func (*cycleDayCmd) Name() string     { return "cycle-day" }
func (*cycleDayCmd) Synopsis() string { return "change the profit cycle start day" }
func (*cycleDayCmd) Usage() string {
	return `nxc cycle-day -day <day>

  Sets the day of month on which the rolling business profit cycle
  starts.
`
}

func (c *cycleDayCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.day, "day", cashflow.DefaultCycleDay, "Day of month starting the cycle.")
}

func (c *cycleDayCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.day < 1 || c.day > 31 {
		fmt.Fprintln(os.Stderr, "Error: -day must be between 1 and 31")
		return subcommands.ExitUsageError
	}
	s := openStore()
	return commit(s, func(l *cashflow.Ledger) error {
		l.UpdateBusinessCycleDay(c.day)
		fmt.Printf("Profit cycle now starts on day %d\n", c.day)
		return nil
	})
}
