package cashflow

import (
	"testing"
	"time"
)

func TestNewBusinessEntry_CommissionFormula(t *testing.T) {
	l := newTestLedger()
	car := l.AddCar(Car{Name: "Swift", EMI: M(10000), TotalTenure: 48})

	e, err := l.NewBusinessEntry(car.ID, EntryInput{
		Type:               EntryCommission,
		Amount:             M(1000),
		CNG:                M(200),
		Drivers:            2,
		UberCommission:     25,
		UberCommissionType: CommissionPercentage,
	})
	if err != nil {
		t.Fatal(err)
	}
	// (1000-200)/2 = 400 per side; fee 100 x 2; profit 400*2 - 200.
	if !e.DriverPortion.Equal(M(400)) {
		t.Errorf("driverPortion = %s, want 400", e.DriverPortion)
	}
	if !e.PlatformFee.Equal(M(200)) {
		t.Errorf("platformFee = %s, want 200", e.PlatformFee)
	}
	if !e.Profit.Equal(M(600)) {
		t.Errorf("profit = %s, want 600", e.Profit)
	}
	if !e.MyPortion.Equal(M(600)) {
		t.Errorf("myPortion = %s, want full profit without partner", e.MyPortion)
	}
	// The platform's own commission is recorded for reference, never used
	// in the formula.
	if e.UberCommission != 25 || e.UberCommissionType != CommissionPercentage {
		t.Errorf("uber commission not carried: %v %v", e.UberCommission, e.UberCommissionType)
	}
}

func TestNewBusinessEntry_PartnerSplit(t *testing.T) {
	l := newTestLedger()
	car := l.AddCar(Car{Name: "Swift", HasPartner: true, PartnerName: "Ravi", PartnerShare: 50})

	e, err := l.NewBusinessEntry(car.ID, EntryInput{
		Type:    EntryCommission,
		Amount:  M(1000),
		CNG:     M(200),
		Drivers: 2,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !e.PartnerPortion.Equal(M(300)) {
		t.Errorf("partnerPortion = %s, want 300", e.PartnerPortion)
	}
	if !e.MyPortion.Equal(M(300)) {
		t.Errorf("myPortion = %s, want 300", e.MyPortion)
	}
}

func TestNewBusinessEntry_RentAndMaintenance(t *testing.T) {
	l := newTestLedger()
	car := l.AddCar(Car{Name: "Swift"})

	rent, err := l.NewBusinessEntry(car.ID, EntryInput{Type: EntryRent, Amount: M(500)})
	if err != nil {
		t.Fatal(err)
	}
	if !rent.Profit.Equal(M(500)) {
		t.Errorf("rent profit = %s, want 500", rent.Profit)
	}

	maint, err := l.NewBusinessEntry(car.ID, EntryInput{Type: EntryMaintenance, Amount: M(500)})
	if err != nil {
		t.Fatal(err)
	}
	if !maint.Profit.Equal(M(-500)) {
		t.Errorf("maintenance profit = %s, want -500", maint.Profit)
	}
}

func TestNewBusinessEntry_UnknownCar(t *testing.T) {
	l := newTestLedger()
	if _, err := l.NewBusinessEntry("nope", EntryInput{Type: EntryRent, Amount: M(1)}); err == nil {
		t.Error("expected error for unknown car")
	}
}

func TestNewBusinessEntry_FrozenSplit(t *testing.T) {
	l := newTestLedger()
	car := l.AddCar(Car{Name: "Swift", HasPartner: true, PartnerShare: 50})

	e, err := l.NewBusinessEntry(car.ID, EntryInput{Type: EntryRent, Amount: M(1000)})
	if err != nil {
		t.Fatal(err)
	}
	e = l.AddBusinessEntry(e)

	// Changing the partner terms later must not rewrite past entries.
	car.PartnerShare = 10
	l.UpdateCar(car.ID, car)

	got := l.BusinessEntries(AllTime)[0]
	if got.ID != e.ID || !got.PartnerPortion.Equal(M(500)) {
		t.Errorf("stored partnerPortion = %s, want frozen 500", got.PartnerPortion)
	}
}

func TestCycleStartOn(t *testing.T) {
	testCases := []struct {
		name     string
		today    Date
		cycleDay int
		want     Date
	}{
		{"before cycle day", NewDate(2025, time.June, 3), 5, NewDate(2025, time.May, 5)},
		{"on cycle day", NewDate(2025, time.June, 5), 5, NewDate(2025, time.June, 5)},
		{"after cycle day", NewDate(2025, time.June, 10), 5, NewDate(2025, time.June, 5)},
		{"january rolls into december", NewDate(2025, time.January, 2), 5, NewDate(2024, time.December, 5)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CycleStartOn(tc.today, tc.cycleDay); got != tc.want {
				t.Errorf("CycleStartOn(%s, %d) = %s, want %s", tc.today, tc.cycleDay, got, tc.want)
			}
		})
	}
}

func TestCycleStats_SubtractsEMIPayments(t *testing.T) {
	l := newTestLedger() // clock at June 10th, cycle starts June 5th
	bank := l.AddBank("HDFC", M(100000))
	car := l.AddCar(Car{Name: "Swift", EMI: M(3000), TotalTenure: 48})

	inCycle, err := l.NewBusinessEntry(car.ID, EntryInput{
		Type: EntryRent, Amount: M(5000), Date: NewDate(2025, time.June, 7),
	})
	if err != nil {
		t.Fatal(err)
	}
	l.AddBusinessEntry(inCycle)

	before, err := l.NewBusinessEntry(car.ID, EntryInput{
		Type: EntryRent, Amount: M(9999), Date: NewDate(2025, time.June, 1),
	})
	if err != nil {
		t.Fatal(err)
	}
	l.AddBusinessEntry(before)

	if _, err := l.PayCarEMI(car.ID, bank.ID); err != nil {
		t.Fatal(err)
	}

	stats := l.CycleStats()
	if want := NewDate(2025, time.June, 5); stats.Start != want {
		t.Fatalf("cycle start = %s, want %s", stats.Start, want)
	}
	// Only the in-cycle entry counts, less the 3000 installment.
	if !stats.TotalFleetProfit.Equal(M(2000)) {
		t.Errorf("totalFleetProfit = %s, want 2000", stats.TotalFleetProfit)
	}
	if !stats.MyProfit.Equal(M(2000)) {
		t.Errorf("myProfit = %s, want 2000", stats.MyProfit)
	}
}

func TestFleetEMIStatus(t *testing.T) {
	l := newTestLedger()
	paidCar := l.AddCar(Car{Name: "Swift", EMI: M(3000), TotalTenure: 10})
	dueCar := l.AddCar(Car{Name: "Swift Dzire", EMI: M(4000), TotalTenure: 10})

	if _, err := l.PayCarEMI(paidCar.ID, ""); err != nil {
		t.Fatal(err)
	}

	for _, s := range l.FleetEMIStatus() {
		switch s.ID {
		case paidCar.ID:
			if !s.Paid {
				t.Errorf("%s should be paid this cycle", s.Name)
			}
		case dueCar.ID:
			// "Swift" is a substring of "Swift Dzire": the id join must not
			// confuse the two.
			if s.Paid {
				t.Errorf("%s should still be due", s.Name)
			}
		}
	}
}

func TestPayCarEMI(t *testing.T) {
	l := newTestLedger()
	bank := l.AddBank("HDFC", M(50000))
	car := l.AddCar(Car{Name: "Swift", EMI: M(3000), TotalTenure: 2, EMIDate: NewDate(2025, time.June, 15)})

	got, err := l.PayCarEMI(car.ID, bank.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.RemainingTenure != 1 {
		t.Errorf("remainingTenure = %d, want 1", got.RemainingTenure)
	}
	if want := NewDate(2025, time.July, 15); got.EMIDate != want {
		t.Errorf("next due = %s, want %s", got.EMIDate, want)
	}
	if got.LastPaidMonth != "Jun 2025" {
		t.Errorf("lastPaidMonth = %q, want Jun 2025", got.LastPaidMonth)
	}
	if bal := l.Bank(bank.ID).Balance; !bal.Equal(M(47000)) {
		t.Errorf("balance = %s, want 47000", bal)
	}

	// The countdown floors at zero.
	if _, err := l.PayCarEMI(car.ID, bank.ID); err != nil {
		t.Fatal(err)
	}
	got, err = l.PayCarEMI(car.ID, bank.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.RemainingTenure != 0 {
		t.Errorf("remainingTenure = %d, want floored 0", got.RemainingTenure)
	}

	if _, err := l.PayCarEMI("nope", bank.ID); err == nil {
		t.Error("expected error for unknown car")
	}
}

func TestBusinessEntries_Periods(t *testing.T) {
	l := newTestLedger() // today is June 10th
	car := l.AddCar(Car{Name: "Swift"})

	add := func(on Date) {
		e, err := l.NewBusinessEntry(car.ID, EntryInput{Type: EntryRent, Amount: M(100), Date: on})
		if err != nil {
			t.Fatal(err)
		}
		l.AddBusinessEntry(e)
	}
	add(NewDate(2025, time.June, 10)) // today
	add(NewDate(2025, time.June, 6))  // this week, this cycle
	add(NewDate(2025, time.June, 1))  // last cycle
	add(NewDate(2025, time.April, 1)) // long ago

	testCases := []struct {
		period Period
		want   int
	}{
		{Daily, 1},
		{Weekly, 2},
		{Cycle, 2},
		{AllTime, 4},
	}
	for _, tc := range testCases {
		if got := len(l.BusinessEntries(tc.period)); got != tc.want {
			t.Errorf("BusinessEntries(%s) = %d entries, want %d", tc.period, got, tc.want)
		}
	}
}

func TestDeleteCar_RemovesItsEntries(t *testing.T) {
	l := newTestLedger()
	car := l.AddCar(Car{Name: "Swift"})
	other := l.AddCar(Car{Name: "Alto"})
	for _, id := range []string{car.ID, other.ID, car.ID} {
		e, err := l.NewBusinessEntry(id, EntryInput{Type: EntryRent, Amount: M(100)})
		if err != nil {
			t.Fatal(err)
		}
		l.AddBusinessEntry(e)
	}

	if !l.DeleteCar(car.ID) {
		t.Fatal("DeleteCar returned false for existing id")
	}
	entries := l.BusinessEntries(AllTime)
	if len(entries) != 1 || entries[0].CarID != other.ID {
		t.Errorf("entries after delete = %+v, want only the other car's", entries)
	}
}

func TestDrivers(t *testing.T) {
	l := newTestLedger()
	d := l.AddDriver("Arjun")
	if !l.UpdateDriver(d.ID, "Arjun K") {
		t.Fatal("UpdateDriver returned false")
	}
	if got := l.Driver(d.ID); got == nil || got.Name != "Arjun K" {
		t.Errorf("driver = %+v, want renamed", got)
	}

	car := l.AddCar(Car{Name: "Swift"})
	e, err := l.NewBusinessEntry(car.ID, EntryInput{Type: EntryRent, Amount: M(100), DriverID: d.ID})
	if err != nil {
		t.Fatal(err)
	}
	if e.DriverName != "Arjun K" {
		t.Errorf("driverName = %q, want denormalized name", e.DriverName)
	}

	if !l.DeleteDriver(d.ID) {
		t.Fatal("DeleteDriver returned false")
	}
	if l.Driver(d.ID) != nil {
		t.Error("driver still present after delete")
	}
}

func TestEditBusinessEntry_PreservesIDStoresVerbatim(t *testing.T) {
	l := newTestLedger()
	car := l.AddCar(Car{Name: "Swift"})

	e, err := l.NewBusinessEntry(car.ID, EntryInput{Type: EntryRent, Amount: M(500)})
	if err != nil {
		t.Fatal(err)
	}
	e = l.AddBusinessEntry(e)

	patch := e
	patch.Amount = M(900)
	patch.Profit = M(900)
	patch.MyPortion = M(900)
	if !l.EditBusinessEntry(e.ID, patch) {
		t.Fatal("EditBusinessEntry returned false for existing id")
	}
	got := l.BusinessEntries(AllTime)[0]
	if got.ID != e.ID {
		t.Errorf("id changed on edit: %s -> %s", e.ID, got.ID)
	}
	// The replacement's split fields are stored as given, not recomputed.
	if !got.Amount.Equal(M(900)) || !got.Profit.Equal(M(900)) || !got.MyPortion.Equal(M(900)) {
		t.Errorf("patch not applied: %+v", got)
	}

	if l.EditBusinessEntry("nope", BusinessEntry{}) {
		t.Error("EditBusinessEntry returned true for unknown id")
	}
}
