package cashflow

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"
)

func TestOpen_FreshStore(t *testing.T) {
	s := Open(newMemKV())
	l := s.Ledger()
	if len(l.Income()) != 0 || len(l.Banks()) != 0 {
		t.Error("fresh store should start empty")
	}
	if l.CycleDay() != DefaultCycleDay {
		t.Errorf("cycleDay = %d, want default", l.CycleDay())
	}
}

func TestOpen_CorruptDocumentFallsBack(t *testing.T) {
	kv := newMemKV()
	kv.values[StorageKey] = []byte("{corrupt")
	s := Open(kv)
	if s.Ledger() == nil || len(s.Ledger().Income()) != 0 {
		t.Error("corrupt document should fall back to an empty ledger")
	}
}

func TestUpdate_PersistsAndReloads(t *testing.T) {
	kv := newMemKV()
	s := Open(kv)

	err := s.Update(func(l *Ledger) error {
		l.now = testClock(testInstant)
		bank := l.AddBank("HDFC", M(500))
		l.AddIncome(IncomeEntry{Name: "Salary", Amount: M(1000)}, bank.ID)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if !s.Ledger().TotalBankBalance().Equal(M(1500)) {
		t.Errorf("in-memory balance = %s, want 1500", s.Ledger().TotalBankBalance())
	}

	// A second store over the same KV sees the committed state.
	reopened := Open(kv)
	if !reopened.Ledger().TotalBankBalance().Equal(M(1500)) {
		t.Errorf("reloaded balance = %s, want 1500", reopened.Ledger().TotalBankBalance())
	}
}

func TestUpdate_MutationErrorLeavesState(t *testing.T) {
	s := Open(newMemKV())
	boom := errors.New("boom")

	err := s.Update(func(l *Ledger) error {
		l.AddBank("HDFC", M(500))
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if len(s.Ledger().Banks()) != 0 {
		t.Error("failed mutation must not leak into the ledger")
	}
}

func TestUpdate_PersistFailureLeavesState(t *testing.T) {
	kv := newMemKV()
	s := Open(kv)
	kv.failSet = errors.New("disk full")

	err := s.Update(func(l *Ledger) error {
		l.AddBank("HDFC", M(500))
		return nil
	})
	if err == nil {
		t.Fatal("expected persist failure")
	}
	// The commit is all-or-nothing: the in-memory state is untouched.
	if len(s.Ledger().Banks()) != 0 {
		t.Error("failed persist must not swap the ledger")
	}
}

func TestReplace_WholeState(t *testing.T) {
	kv := newMemKV()
	s := Open(kv)

	next := NewLedger()
	next.now = testClock(testInstant)
	next.AddBank("SBI", M(42))
	if err := s.Replace(next); err != nil {
		t.Fatal(err)
	}
	if got := s.Ledger().Banks(); len(got) != 1 || got[0].Name != "SBI" {
		t.Errorf("banks after replace = %+v", got)
	}
}

func TestDirKV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	kv := NewDirKV(dir)

	if _, err := kv.Get(StorageKey); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Get on fresh dir = %v, want fs.ErrNotExist", err)
	}
	if err := kv.Set(StorageKey, []byte(`{"a":1}`)); err != nil {
		t.Fatal(err)
	}
	got, err := kv.Get(StorageKey)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `{"a":1}` {
		t.Errorf("Get = %q", got)
	}
}
