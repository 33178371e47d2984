package cashflow

import (
	"time"
)

// testInstant is an arbitrary fixed point in time used by the tests:
// 2025-06-10 is the 10th, after the default cycle day.
var testInstant = time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)

// testClock returns a clock that advances one millisecond per reading, so
// every generated id is distinct and strictly increasing.
func testClock(start time.Time) func() time.Time {
	now := start
	return func() time.Time {
		now = now.Add(time.Millisecond)
		return now
	}
}

// newTestLedger returns a ledger driven by a deterministic clock.
func newTestLedger() *Ledger {
	l := NewLedger()
	l.now = testClock(testInstant)
	return l
}

// memKV is an in-memory KV for store tests. A non-nil failSet makes every
// write fail with that error.
type memKV struct {
	values  map[string][]byte
	failSet error
}

func newMemKV() *memKV { return &memKV{values: make(map[string][]byte)} }

func (m *memKV) Get(key string) ([]byte, error) {
	v, ok := m.values[key]
	if !ok {
		return nil, notExistErr(key)
	}
	return v, nil
}

func (m *memKV) Set(key string, value []byte) error {
	if m.failSet != nil {
		return m.failSet
	}
	m.values[key] = value
	return nil
}
