package cashflow

import (
	"fmt"
	"slices"
)

// platformFeePerDriver is the flat per-driver fee the ride platform takes
// on every commission entry.
var platformFeePerDriver = M(100)

// BusinessState is the taxi-fleet sub-ledger: vehicles, drivers, recorded
// revenue/cost entries and the day-of-month starting the profit cycle.
type BusinessState struct {
	Cars     []Car           `json:"cars"`
	Drivers  []Driver        `json:"drivers"`
	Entries  []BusinessEntry `json:"entries"`
	CycleDay int             `json:"cycleDay"`
}

func (b BusinessState) clone() BusinessState {
	return BusinessState{
		Cars:     slices.Clone(b.Cars),
		Drivers:  slices.Clone(b.Drivers),
		Entries:  slices.Clone(b.Entries),
		CycleDay: b.CycleDay,
	}
}

// Car is a fleet vehicle with its own loan schedule, independent of the
// generic EMI list.
type Car struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Brand           string  `json:"brand,omitempty"`
	Year            string  `json:"year,omitempty"`
	EMI             Money   `json:"emi"`
	EMIDate         Date    `json:"emiDate,omitempty"`
	TotalTenure     int     `json:"totalTenure,omitempty"`
	RemainingTenure int     `json:"remainingTenure,omitempty"`
	StartNextMonth  bool    `json:"startNextMonth,omitempty"`
	HasPartner      bool    `json:"hasPartner,omitempty"`
	PartnerName     string  `json:"partnerName,omitempty"`
	PartnerShare    float64 `json:"partnerShare,omitempty"`
	Status          Status  `json:"status"`
	LastPaidMonth   string  `json:"lastPaidMonth,omitempty"`
}

// Driver is a fleet driver.
type Driver struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// EntryType classifies a business entry.
type EntryType string

const (
	EntryRent        EntryType = "rent"
	EntryCommission  EntryType = "commission"
	EntryMaintenance EntryType = "maintenance"
)

// CommissionType says how the ride platform's own commission was quoted on
// a commission entry: a percentage of the gross or a fixed amount. It is
// recorded for display; the profit formula does not use it.
type CommissionType string

const (
	CommissionPercentage CommissionType = "percentage"
	CommissionFixed      CommissionType = "fixed"
)

// BusinessEntry is a revenue or cost event for one car. The derived fields
// (DriverPortion, PlatformFee, Profit, PartnerPortion, MyPortion) are
// computed once at creation and persisted verbatim: each entry is an
// immutable record of the split that applied at the time. Changing a car's
// partner terms later must not alter past entries.
type BusinessEntry struct {
	ID                 string         `json:"id"`
	CarID              string         `json:"carId"`
	CarName            string         `json:"carName"`
	Date               Date           `json:"date"`
	Type               EntryType      `json:"type"`
	Amount             Money          `json:"amount"`
	CNG                Money          `json:"cng,omitempty"`
	Drivers            int            `json:"drivers,omitempty"`
	DriverID           string         `json:"driverId,omitempty"`
	DriverName         string         `json:"driverName,omitempty"`
	DriverPortion      Money          `json:"driverPortion,omitempty"`
	UberCommission     float64        `json:"uberCommission,omitempty"`
	UberCommissionType CommissionType `json:"uberCommissionType,omitempty"`
	PlatformFee        Money          `json:"platformFee,omitempty"`
	Profit             Money          `json:"profit"`
	PartnerPortion     Money          `json:"partnerPortion,omitempty"`
	MyPortion          Money          `json:"myPortion"`
}

// EntryInput is the caller-supplied part of a business entry. The derived
// split fields are filled in by NewBusinessEntry.
type EntryInput struct {
	Date               Date
	Type               EntryType
	Amount             Money
	CNG                Money
	Drivers            int
	DriverID           string
	UberCommission     float64
	UberCommissionType CommissionType
}

// NewBusinessEntry computes the frozen profit split for an entry against
// the named car and returns the completed record, without inserting it.
//
//   - rent: the full amount is profit.
//   - commission: revenue after fuel is split 50/50 with the driver(s),
//     then a flat per-driver platform fee comes out of the owner's side.
//   - maintenance: the full amount is a cost.
//
// If the car has a partner, the partner's percentage share is carved out
// of the profit; the rest is the owner's portion.
func (l *Ledger) NewBusinessEntry(carID string, in EntryInput) (BusinessEntry, error) {
	car := l.Car(carID)
	if car == nil {
		return BusinessEntry{}, fmt.Errorf("unknown car %q", carID)
	}
	drivers := in.Drivers
	if drivers <= 0 {
		drivers = 1
	}
	date := in.Date
	if date.IsZero() {
		date = l.today()
	}

	e := BusinessEntry{
		CarID:              carID,
		CarName:            car.Name,
		Date:               date,
		Type:               in.Type,
		Amount:             in.Amount,
		CNG:                in.CNG,
		Drivers:            drivers,
		DriverID:           in.DriverID,
		UberCommission:     in.UberCommission,
		UberCommissionType: in.UberCommissionType,
	}
	if d := l.Driver(in.DriverID); d != nil {
		e.DriverName = d.Name
	}

	switch in.Type {
	case EntryCommission:
		e.DriverPortion = in.Amount.Sub(in.CNG).DivInt(2)
		e.PlatformFee = platformFeePerDriver.MulInt(drivers)
		e.Profit = e.DriverPortion.MulInt(drivers).Sub(e.PlatformFee)
	case EntryMaintenance:
		e.Profit = in.Amount.Neg()
	default: // rent
		e.Profit = in.Amount
	}

	if car.HasPartner {
		e.PartnerPortion = e.Profit.Percent(car.PartnerShare)
		e.MyPortion = e.Profit.Sub(e.PartnerPortion)
	} else {
		e.MyPortion = e.Profit
	}
	return e, nil
}

// AddBusinessEntry assigns a fresh id and prepends the entry to the
// business entry list.
func (l *Ledger) AddBusinessEntry(e BusinessEntry) BusinessEntry {
	e.ID = l.newID()
	l.business.Entries = append([]BusinessEntry{e}, l.business.Entries...)
	return e
}

// EditBusinessEntry replaces the entry with the given id, preserving the
// id. The replacement's split fields are stored verbatim.
func (l *Ledger) EditBusinessEntry(id string, patch BusinessEntry) bool {
	for i := range l.business.Entries {
		if l.business.Entries[i].ID == id {
			patch.ID = id
			l.business.Entries[i] = patch
			return true
		}
	}
	return false
}

func (l *Ledger) DeleteBusinessEntry(id string) bool {
	n := len(l.business.Entries)
	l.business.Entries = slices.DeleteFunc(l.business.Entries, func(e BusinessEntry) bool { return e.ID == id })
	return len(l.business.Entries) < n
}

// Car returns the fleet car with the given id, or nil if unknown.
func (l *Ledger) Car(id string) *Car {
	for i := range l.business.Cars {
		if l.business.Cars[i].ID == id {
			c := l.business.Cars[i]
			return &c
		}
	}
	return nil
}

// Driver returns the fleet driver with the given id, or nil if unknown.
func (l *Ledger) Driver(id string) *Driver {
	for i := range l.business.Drivers {
		if l.business.Drivers[i].ID == id {
			d := l.business.Drivers[i]
			return &d
		}
	}
	return nil
}

// AddCar registers a fleet vehicle. A car created with StartNextMonth has
// its first due date pushed out one month.
func (l *Ledger) AddCar(c Car) Car {
	c.ID = l.newID()
	c.Status = StatusActive
	if c.RemainingTenure == 0 {
		c.RemainingTenure = c.TotalTenure
	}
	if c.StartNextMonth && !c.EMIDate.IsZero() {
		c.EMIDate = c.EMIDate.AddMonth(1)
	}
	l.business.Cars = append(l.business.Cars, c)
	return c
}

func (l *Ledger) UpdateCar(id string, patch Car) bool {
	for i := range l.business.Cars {
		if l.business.Cars[i].ID == id {
			patch.ID = id
			l.business.Cars[i] = patch
			return true
		}
	}
	return false
}

// DeleteCar removes a fleet vehicle along with all of its recorded
// entries. EMI-payment history stays.
func (l *Ledger) DeleteCar(id string) bool {
	n := len(l.business.Cars)
	l.business.Cars = slices.DeleteFunc(l.business.Cars, func(c Car) bool { return c.ID == id })
	if len(l.business.Cars) == n {
		return false
	}
	l.business.Entries = slices.DeleteFunc(l.business.Entries, func(e BusinessEntry) bool { return e.CarID == id })
	return true
}

// AddDriver registers a fleet driver by name.
func (l *Ledger) AddDriver(name string) Driver {
	d := Driver{ID: l.newID(), Name: name}
	l.business.Drivers = append(l.business.Drivers, d)
	return d
}

func (l *Ledger) UpdateDriver(id, name string) bool {
	for i := range l.business.Drivers {
		if l.business.Drivers[i].ID == id {
			l.business.Drivers[i].Name = name
			return true
		}
	}
	return false
}

// DeleteDriver removes a fleet driver. Entries keep their denormalized
// driver name.
func (l *Ledger) DeleteDriver(id string) bool {
	n := len(l.business.Drivers)
	l.business.Drivers = slices.DeleteFunc(l.business.Drivers, func(d Driver) bool { return d.ID == id })
	return len(l.business.Drivers) < n
}

// UpdateBusinessCycleDay changes the day-of-month starting the profit
// cycle. Days past 28 roll over in short months.
func (l *Ledger) UpdateBusinessCycleDay(day int) {
	l.business.CycleDay = day
}

// CycleDay returns the configured cycle start day, defaulting when unset.
func (l *Ledger) CycleDay() int {
	if l.business.CycleDay == 0 {
		return DefaultCycleDay
	}
	return l.business.CycleDay
}

// CycleStartOn computes the start of the rolling profit cycle containing
// the given day: the cycle day of the current month if it has already
// begun, otherwise the cycle day of the previous month.
func CycleStartOn(today Date, cycleDay int) Date {
	if today.Day() < cycleDay {
		return NewDate(today.Year(), today.Month()-1, cycleDay)
	}
	return NewDate(today.Year(), today.Month(), cycleDay)
}

// CycleStart returns the start of the current profit cycle.
func (l *Ledger) CycleStart() Date {
	return CycleStartOn(l.today(), l.CycleDay())
}

// CycleStats are the profit aggregates for the current cycle. Fleet debt
// service (every EMI payment recorded in the cycle) is subtracted from
// both figures: collected profit pays the loans first.
type CycleStats struct {
	Start            Date
	MyProfit         Money
	TotalFleetProfit Money
}

// CycleStats aggregates business entries and EMI payments of the current
// cycle.
func (l *Ledger) CycleStats() CycleStats {
	start := l.CycleStart()
	var gross, mine Money
	for _, e := range l.business.Entries {
		if e.Date.Before(start) {
			continue
		}
		gross = gross.Add(e.Profit)
		mine = mine.Add(e.MyPortion)
	}
	paid := l.emiPaymentsSince(start)
	return CycleStats{
		Start:            start,
		MyProfit:         mine.Sub(paid),
		TotalFleetProfit: gross.Sub(paid),
	}
}

// emiPaymentsSince sums every emi_payment history amount dated on or after
// start, fleet and personal alike.
func (l *Ledger) emiPaymentsSince(start Date) Money {
	var total Money
	for _, h := range l.history {
		if h.Type == EvEMIPayment && !DateOf(h.Timestamp).Before(start) {
			total = total.Add(h.Amount)
		}
	}
	return total
}

// CarEMIStatus pairs a fleet car with whether its loan installment has
// been paid in the current cycle.
type CarEMIStatus struct {
	Car
	Paid bool
}

// FleetEMIStatus reports, per car, whether an EMI payment tagged with the
// car's id was recorded since the cycle start.
func (l *Ledger) FleetEMIStatus() []CarEMIStatus {
	start := l.CycleStart()
	out := make([]CarEMIStatus, 0, len(l.business.Cars))
	for _, c := range l.business.Cars {
		paid := false
		for _, h := range l.history {
			if h.Type == EvEMIPayment && h.CarID == c.ID && !DateOf(h.Timestamp).Before(start) {
				paid = true
				break
			}
		}
		out = append(out, CarEMIStatus{Car: c, Paid: paid})
	}
	return out
}

// PayCarEMI records one installment on a fleet car's loan: it debits the
// paying bank, decrements the remaining tenure (floored at zero), stamps
// the paid month, advances the next due date one month and writes an
// emi_payment history record tagged with the car's id.
func (l *Ledger) PayCarEMI(carID, bankID string) (Car, error) {
	for i := range l.business.Cars {
		c := l.business.Cars[i]
		if c.ID != carID {
			continue
		}
		l.debitBank(bankID, c.EMI)
		c.RemainingTenure = max(0, c.RemainingTenure-1)
		c.LastPaidMonth = l.today().MonthLabel()
		if !c.EMIDate.IsZero() {
			c.EMIDate = c.EMIDate.AddMonth(1)
		}
		l.business.Cars[i] = c
		l.logEvent(HistoryEntry{
			Type:     EvEMIPayment,
			Title:    c.Name,
			Amount:   c.EMI,
			Category: string(EMIBusiness),
			CarID:    c.ID,
			BankID:   bankID,
		})
		return c, nil
	}
	return Car{}, fmt.Errorf("unknown car %q", carID)
}

// BusinessEntries returns the entries whose date falls within the given
// period, most recent first. AllTime returns everything, Daily today only,
// Weekly the last seven days, Cycle the current profit cycle.
func (l *Ledger) BusinessEntries(p Period) []BusinessEntry {
	var start Date
	switch p {
	case Daily:
		start = l.today()
	case Weekly:
		start = l.today().Add(-7)
	case Cycle:
		start = l.CycleStart()
	default:
		return slices.Clone(l.business.Entries)
	}
	var out []BusinessEntry
	for _, e := range l.business.Entries {
		if !e.Date.Before(start) {
			out = append(out, e)
		}
	}
	return out
}

// Cars returns a copy of the fleet.
func (l *Ledger) Cars() []Car { return slices.Clone(l.business.Cars) }

// FleetDrivers returns a copy of the driver roster.
func (l *Ledger) FleetDrivers() []Driver { return slices.Clone(l.business.Drivers) }
