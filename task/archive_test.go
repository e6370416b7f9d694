package task

import (
	"os"
	"testing"
)

func newTestArchive(t *testing.T) *SQLiteArchive {
	t.Helper()
	f, err := os.CreateTemp("", "aioffice-archive-*.db")
	if err != nil {
		t.Fatalf("create temp db: %v", err)
	}
	f.Close()
	t.Cleanup(func() { os.Remove(f.Name()) })

	a, err := NewSQLiteArchive(f.Name())
	if err != nil {
		t.Fatalf("NewSQLiteArchive: %v", err)
	}
	t.Cleanup(func() { a.Close() })
	return a
}

func TestArchive_SaveGet(t *testing.T) {
	a := newTestArchive(t)

	tk := New("Client Brief: Cooking Site", "Build a cooking website", "user", PriorityHigh)
	tk.AssigneeID = "client1"
	tk.Results["client1"] = "=== CLIENT BRIEF ===\n- Scope: website"
	tk.Complete()

	if err := a.Save(tk); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := a.Get(tk.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != StatusCompleted {
		t.Errorf("Status = %q, want completed", got.Status)
	}
	if got.Priority != PriorityHigh {
		t.Errorf("Priority = %v, want high", got.Priority)
	}
	if got.Results["client1"] != tk.Results["client1"] {
		t.Errorf("Results round-trip mismatch: %q", got.Results["client1"])
	}
	if got.CompletedAt == nil {
		t.Error("CompletedAt lost in round-trip")
	}
}

func TestArchive_GetMissing(t *testing.T) {
	a := newTestArchive(t)
	if _, err := a.Get("nope"); err == nil {
		t.Error("expected error for missing archived task")
	}
}

func TestArchive_List(t *testing.T) {
	a := newTestArchive(t)

	for _, p := range []Priority{PriorityLow, PriorityCritical} {
		tk := New("t", "d", "user", p)
		tk.Complete()
		if err := a.Save(tk); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	got, err := a.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("List len = %d, want 2", len(got))
	}
	if got[0].Priority != PriorityCritical {
		t.Errorf("List[0].Priority = %v, want critical first", got[0].Priority)
	}
}
