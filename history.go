package cashflow

import (
	"encoding/json"
	"time"
)

// EventType is a typed string identifying the kind of history record.
type EventType string

// Event types written to the history log.
const (
	EvIncome        EventType = "income"
	EvExpense       EventType = "expense"
	EvEMICreated    EventType = "emi_created"
	EvEMIPayment    EventType = "emi_payment"
	EvEMIForceClose EventType = "emi_force_close"
	EvInvestment    EventType = "investment"
)

// Investment history actions. A "rebase" replaces the asset-class balance so
// its amount is not comparable to flow amounts; a "topup" is a true flow.
const (
	ActionRebase = "rebase"
	ActionTopUp  = "topup"
)

// HistoryEntry is an immutable audit record appended by every operation that
// moves money. Entries are never deleted or rewritten by normal operations;
// deleting the originating income/expense/EMI leaves its history intact.
//
// Payment records carry explicit BankID/EMIID/CarID references so that
// consumers (like the business cycle aggregation) can match records without
// string-matching titles.
type HistoryEntry struct {
	ID        string
	Timestamp time.Time // the instant the operation ran
	Date      Date      // Timestamp's calendar day, kept for display and CSV
	Type      EventType
	Title     string
	Amount    Money
	Category  string

	// Optional metadata, flattened into the stored record.
	BankID   string
	EMIID    string
	CarID    string
	Action   string // rebase or topup, investment records only
	Previous Money  // balance before a rebase, investment records only
}

// MarshalJSON keeps a stable field order and drops unset metadata fields.
func (h HistoryEntry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", h.ID)
	w.Append("timestamp", h.Timestamp.Format(time.RFC3339))
	w.Append("date", h.Date)
	w.Append("type", h.Type)
	w.Append("title", h.Title)
	w.Append("amount", h.Amount)
	w.Optional("category", h.Category)
	w.Optional("bankId", h.BankID)
	w.Optional("emiId", h.EMIID)
	w.Optional("carId", h.CarID)
	w.Optional("action", h.Action)
	if !h.Previous.IsZero() {
		w.Append("previous", h.Previous)
	}
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for HistoryEntry.
func (h *HistoryEntry) UnmarshalJSON(data []byte) error {
	type jhistory struct {
		ID        string    `json:"id"`
		Timestamp time.Time `json:"timestamp"`
		Date      Date      `json:"date"`
		Type      EventType `json:"type"`
		Title     string    `json:"title"`
		Amount    Money     `json:"amount"`
		Category  string    `json:"category"`
		BankID    string    `json:"bankId"`
		EMIID     string    `json:"emiId"`
		CarID     string    `json:"carId"`
		Action    string    `json:"action"`
		Previous  Money     `json:"previous"`
	}
	var j jhistory
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	*h = HistoryEntry{
		ID:        j.ID,
		Timestamp: j.Timestamp,
		Date:      j.Date,
		Type:      j.Type,
		Title:     j.Title,
		Amount:    j.Amount,
		Category:  j.Category,
		BankID:    j.BankID,
		EMIID:     j.EMIID,
		CarID:     j.CarID,
		Action:    j.Action,
		Previous:  j.Previous,
	}
	return nil
}

var _ json.Marshaler = (*HistoryEntry)(nil)
var _ json.Unmarshaler = (*HistoryEntry)(nil)
