package cashflow

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

// requiredStateKeys are the top-level arrays a backup must carry to be
// accepted by ImportState.
var requiredStateKeys = []string{"income", "expenses", "emis", "banks"}

// ImportState parses and validates a full backup document and returns the
// ledger it describes. Validation is all-or-nothing: a document missing
// one of the required arrays, or carrying a non-array where one is
// expected, is rejected without producing a ledger.
func ImportState(data []byte) (*Ledger, error) {
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return nil, fmt.Errorf("invalid backup: %w", err)
	}
	for _, key := range requiredStateKeys {
		jval, err := jsonpath.Get("$."+key, jobj)
		if err != nil {
			return nil, fmt.Errorf("invalid backup: missing %q: %w", key, err)
		}
		if _, ok := jval.([]any); !ok {
			return nil, fmt.Errorf("invalid backup: %q is not an array", key)
		}
	}
	return DecodeState(bytes.NewReader(data))
}

// BackupFilename is the name under which a full backup taken today should
// be saved.
func (l *Ledger) BackupFilename() string {
	return "nexus_cashflow_backup_" + l.today().String() + ".json"
}

// HistoryCSVFilename is the name for a history export taken today.
func (l *Ledger) HistoryCSVFilename() string {
	return "nexus_cashflow_history_" + l.today().String() + ".csv"
}

// WriteHistoryCSV writes the audit log as CSV with a fixed header.
// Amounts are written as plain decimals without currency formatting.
func (l *Ledger) WriteHistoryCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	cw.Write([]string{"Date", "Type", "Title", "Amount", "Category"})
	for _, h := range l.history {
		cw.Write([]string{h.Date.String(), string(h.Type), h.Title, h.Amount.value.String(), h.Category})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("cannot write history csv: %w", err)
	}
	return nil
}
