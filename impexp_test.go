package cashflow

import (
	"bytes"
	"strings"
	"testing"
)

// populatedLedger builds a ledger exercising every collection.
func populatedLedger(t *testing.T) *Ledger {
	t.Helper()
	l := newTestLedger()
	bank := l.AddBank("HDFC", M(10000))
	l.AddIncome(IncomeEntry{Name: "Salary", Amount: M(50000), Source: "salary"}, bank.ID)
	l.AddExpense(ExpenseEntry{Name: "Rent", Amount: M(15000), Category: "housing"}, bank.ID)
	l.AddEMI(EMI{Name: "Loan", Amount: M(2000), Type: EMIDebt, Tenure: 12, BankID: bank.ID})
	l.TopUpInvestment(AssetGold, M(500))
	l.SetInitialAmount(M(777))
	l.TakeMonthlySnapshot()
	car := l.AddCar(Car{Name: "Swift", EMI: M(3000), TotalTenure: 48})
	l.AddDriver("Arjun")
	e, err := l.NewBusinessEntry(car.ID, EntryInput{Type: EntryRent, Amount: M(900)})
	if err != nil {
		t.Fatal(err)
	}
	l.AddBusinessEntry(e)
	l.UpdateBusinessCycleDay(7)
	return l
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	l := populatedLedger(t)

	var buf bytes.Buffer
	if err := EncodeState(&buf, l); err != nil {
		t.Fatal(err)
	}
	got, err := DecodeState(&buf)
	if err != nil {
		t.Fatal(err)
	}

	if len(got.Income()) != 1 || got.Income()[0].Source != "salary" {
		t.Errorf("income after round trip = %+v", got.Income())
	}
	if len(got.Expenses()) != 1 || got.Expenses()[0].Category != "housing" {
		t.Errorf("expenses after round trip = %+v", got.Expenses())
	}
	if !got.TotalBankBalance().Equal(l.TotalBankBalance()) {
		t.Errorf("bank balance = %s, want %s", got.TotalBankBalance(), l.TotalBankBalance())
	}
	if !got.InitialAmount().Equal(M(777)) {
		t.Errorf("initialAmount = %s, want 777", got.InitialAmount())
	}
	if got.CycleDay() != 7 {
		t.Errorf("cycleDay = %d, want 7", got.CycleDay())
	}
	if len(got.History()) != len(l.History()) {
		t.Errorf("history length = %d, want %d", len(got.History()), len(l.History()))
	}
	if len(got.Cars()) != 1 || len(got.FleetDrivers()) != 1 {
		t.Errorf("fleet after round trip: %d cars, %d drivers", len(got.Cars()), len(got.FleetDrivers()))
	}
	if inv := got.Investments(); !inv[AssetGold].Equal(M(500)) {
		t.Errorf("gold = %s, want 500", inv[AssetGold])
	}
}

func TestEncodeState_ZeroDatesSurviveRoundTrip(t *testing.T) {
	l := newTestLedger()
	l.AddEMI(EMI{Name: "Loan", Amount: M(2000), Type: EMIDebt, Tenure: 12})
	l.AddCar(Car{Name: "Swift", EMI: M(3000), TotalTenure: 48})

	var buf bytes.Buffer
	if err := EncodeState(&buf, l); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "-0001") {
		t.Fatalf("document contains a mangled zero date: %s", buf.String())
	}

	got, err := DecodeState(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if d := got.EMIs()[0].FullDate; !d.IsZero() {
		t.Errorf("emi due date round-tripped to %s, want the zero date", d)
	}
	if d := got.Cars()[0].EMIDate; !d.IsZero() {
		t.Errorf("car emi date round-tripped to %s, want the zero date", d)
	}
}

func TestDecodeState_EmptyDocumentDefaults(t *testing.T) {
	got, err := DecodeState(strings.NewReader(`{}`))
	if err != nil {
		t.Fatal(err)
	}
	if got.CycleDay() != DefaultCycleDay {
		t.Errorf("cycleDay = %d, want default %d", got.CycleDay(), DefaultCycleDay)
	}
	inv := got.Investments()
	for _, class := range []string{AssetStocks, AssetGold, AssetCrypto, AssetMutualFunds} {
		if v, ok := inv[class]; !ok || !v.IsZero() {
			t.Errorf("class %s = %s, want zero present", class, v)
		}
	}
}

func TestImportState_RejectsMissingKeys(t *testing.T) {
	testCases := []struct {
		name string
		blob string
	}{
		{"not json", `{not json`},
		{"missing banks", `{"income":[],"expenses":[],"emis":[]}`},
		{"banks not an array", `{"income":[],"expenses":[],"emis":[],"banks":{}}`},
		{"missing income", `{"expenses":[],"emis":[],"banks":[]}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ImportState([]byte(tc.blob)); err == nil {
				t.Error("expected rejection")
			}
		})
	}
}

func TestImportState_AcceptsBackup(t *testing.T) {
	l := populatedLedger(t)
	var buf bytes.Buffer
	if err := EncodeStateIndent(&buf, l); err != nil {
		t.Fatal(err)
	}

	got, err := ImportState(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Income()) != 1 || len(got.EMIs()) != 1 {
		t.Errorf("imported ledger incomplete: %d income, %d emis", len(got.Income()), len(got.EMIs()))
	}
}

func TestBackupFilenames(t *testing.T) {
	l := newTestLedger()
	if got := l.BackupFilename(); got != "nexus_cashflow_backup_2025-06-10.json" {
		t.Errorf("BackupFilename() = %q", got)
	}
	if got := l.HistoryCSVFilename(); got != "nexus_cashflow_history_2025-06-10.csv" {
		t.Errorf("HistoryCSVFilename() = %q", got)
	}
}

func TestWriteHistoryCSV(t *testing.T) {
	l := newTestLedger()
	l.AddIncome(IncomeEntry{Name: "Salary, June", Amount: M(50000), Source: "salary"}, "")

	var buf bytes.Buffer
	if err := l.WriteHistoryCSV(&buf); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[0] != "Date,Type,Title,Amount,Category" {
		t.Errorf("header = %q", lines[0])
	}
	if len(lines) != 2 {
		t.Fatalf("line count = %d, want 2", len(lines))
	}
	// The title is quoted, so its comma does not split the row.
	if want := `2025-06-10,income,"Salary, June",50000,salary`; lines[1] != want {
		t.Errorf("row = %q, want %q", lines[1], want)
	}
}

func TestWriteHistoryCSV_QuotesInTitle(t *testing.T) {
	l := newTestLedger()
	l.AddExpense(ExpenseEntry{Name: `Lunch "special"`, Amount: M(250), Category: "food"}, "")

	var buf bytes.Buffer
	if err := l.WriteHistoryCSV(&buf); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	// Embedded quotes are doubled, CSV style, not backslash-escaped.
	if want := `2025-06-10,expense,"Lunch ""special""",250,food`; lines[1] != want {
		t.Errorf("row = %q, want %q", lines[1], want)
	}
}
