package cashflow

import (
	"encoding/json"
	"testing"
	"time"
)

func TestHistoryEntry_MarshalShape(t *testing.T) {
	h := HistoryEntry{
		ID:        "1749556800000",
		Timestamp: time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC),
		Date:      NewDate(2025, time.June, 10),
		Type:      EvEMIPayment,
		Title:     "Car Loan",
		Amount:    M(2000),
		Category:  "debt",
		EMIID:     "17495",
		BankID:    "17496",
	}
	data, err := json.Marshal(h)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"id":"1749556800000",` +
		`"timestamp":"2025-06-10T12:00:00Z",` +
		`"date":"2025-06-10",` +
		`"type":"emi_payment",` +
		`"title":"Car Loan",` +
		`"amount":2000,` +
		`"category":"debt",` +
		`"bankId":"17496",` +
		`"emiId":"17495"}`
	if string(data) != want {
		t.Errorf("marshal = %s\nwant      %s", data, want)
	}
}

func TestHistoryEntry_OmitsUnsetMetadata(t *testing.T) {
	h := HistoryEntry{
		ID:        "1",
		Timestamp: time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC),
		Date:      NewDate(2025, time.June, 10),
		Type:      EvIncome,
		Title:     "Salary",
		Amount:    M(100),
	}
	data, err := json.Marshal(h)
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"category", "bankId", "emiId", "carId", "action", "previous"} {
		if json.Valid(data) && containsKey(t, data, key) {
			t.Errorf("unset %q should be omitted: %s", key, data)
		}
	}
}

func containsKey(t *testing.T, data []byte, key string) bool {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	_, ok := m[key]
	return ok
}

func TestHistoryEntry_RoundTrip(t *testing.T) {
	in := HistoryEntry{
		ID:        "2",
		Timestamp: time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC),
		Date:      NewDate(2025, time.June, 10),
		Type:      EvInvestment,
		Title:     "Adjusted stocks",
		Amount:    M(5000),
		Category:  "Portfolio",
		Action:    ActionRebase,
		Previous:  M(4200),
	}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	var out HistoryEntry
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if !out.Timestamp.Equal(in.Timestamp) {
		t.Errorf("timestamp = %s, want %s", out.Timestamp, in.Timestamp)
	}
	out.Timestamp = in.Timestamp
	if out.ID != in.ID || out.Action != in.Action || !out.Previous.Equal(in.Previous) {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}
