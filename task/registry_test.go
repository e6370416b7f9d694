package task

import (
	"encoding/json"
	"testing"
)

func TestRegistry_AddGet(t *testing.T) {
	r := NewRegistry()
	tk := New("Build site", "Build a cooking website", "user", PriorityMedium)
	if err := r.Add(tk); err != nil {
		t.Fatalf("Add: %v", err)
	}

	got, ok := r.Get(tk.ID)
	if !ok {
		t.Fatal("Get: task not found")
	}
	if got.Title != "Build site" {
		t.Errorf("Title = %q, want Build site", got.Title)
	}

	if err := r.Add(tk); err == nil {
		t.Error("expected error adding duplicate ID")
	}
}

func TestRegistry_Mutate(t *testing.T) {
	r := NewRegistry()
	tk := New("t", "d", "user", PriorityLow)
	if err := r.Add(tk); err != nil {
		t.Fatalf("Add: %v", err)
	}

	ok := r.Mutate(tk.ID, func(t *Task) {
		t.Results["agent-1"] = "done"
	})
	if !ok {
		t.Fatal("Mutate: task not found")
	}
	got, _ := r.Get(tk.ID)
	if got.Results["agent-1"] != "done" {
		t.Error("Mutate did not apply")
	}

	if r.Mutate("missing", func(*Task) {}) {
		t.Error("Mutate on unknown ID should return false")
	}
}

func TestRegistry_AccessorsReturnCopies(t *testing.T) {
	r := NewRegistry()
	tk := New("Website Skeleton", "Build the website skeleton", "pm1", PriorityHigh)
	if err := r.Add(tk); err != nil {
		t.Fatalf("Add: %v", err)
	}

	got, _ := r.Get(tk.ID)
	got.Status = StatusFailed
	got.Results["web_dev1"] = "tampered"

	fresh, _ := r.Get(tk.ID)
	if fresh.Status != StatusPending {
		t.Errorf("Status = %s, writing to a Get snapshot must not reach the registry", fresh.Status)
	}
	if _, ok := fresh.Results["web_dev1"]; ok {
		t.Error("Results written on a Get snapshot must not reach the registry")
	}

	list := r.List()
	list[0].Results["ux_ui1"] = "tampered"
	fresh, _ = r.Get(tk.ID)
	if len(fresh.Results) != 0 {
		t.Error("Results written on a List snapshot must not reach the registry")
	}
}

func TestRegistry_ListSafeDuringMutation(t *testing.T) {
	r := NewRegistry()
	tk := New("Website Skeleton", "Build the website skeleton", "pm1", PriorityHigh)
	if err := r.Add(tk); err != nil {
		t.Fatalf("Add: %v", err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			r.Mutate(tk.ID, func(cur *Task) {
				cur.Results["web_dev1"] = "=== HTML/CSS/JavaScript CODE ==="
				cur.Status = StatusInProgress
			})
		}
	}()

	// Marshals the snapshots while the writer runs; the race detector
	// flags any shared state between readers and the live task.
	for i := 0; i < 200; i++ {
		if _, err := json.Marshal(r.List()); err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if got, ok := r.Get(tk.ID); ok {
			_ = got.Results["web_dev1"]
		}
	}
	<-done
}

func TestRegistry_ListInsertionOrder(t *testing.T) {
	r := NewRegistry()
	var ids []string
	for range 3 {
		tk := New("t", "d", "user", PriorityMedium)
		if err := r.Add(tk); err != nil {
			t.Fatalf("Add: %v", err)
		}
		ids = append(ids, tk.ID)
	}

	list := r.List()
	if len(list) != 3 {
		t.Fatalf("List len = %d, want 3", len(list))
	}
	for i, tk := range list {
		if tk.ID != ids[i] {
			t.Errorf("List[%d] = %s, want %s", i, tk.ID, ids[i])
		}
	}
}
