package status

import (
	"sync"
	"testing"
)

type recording struct {
	mu    sync.Mutex
	lines []string
}

func (r *recording) add(s string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, s)
}

func (r *recording) Status(text string)           { r.add("status:" + text) }
func (r *recording) Communication(text string)    { r.add("comm:" + text) }
func (r *recording) WorkStarted(agentName string) { r.add("start:" + agentName) }
func (r *recording) WorkStopped(agentName string) { r.add("stop:" + agentName) }

func TestTee(t *testing.T) {
	first := &recording{}
	second := &recording{}
	sink := Tee(first, second)

	sink.Status("office opened")
	sink.Communication("hello")
	sink.WorkStarted("Alex Carter")
	sink.WorkStopped("Alex Carter")

	want := []string{"status:office opened", "comm:hello", "start:Alex Carter", "stop:Alex Carter"}
	for _, r := range []*recording{first, second} {
		if len(r.lines) != len(want) {
			t.Fatalf("got %d lines, want %d", len(r.lines), len(want))
		}
		for i := range want {
			if r.lines[i] != want[i] {
				t.Errorf("line %d = %q, want %q", i, r.lines[i], want[i])
			}
		}
	}
}

func TestNopIsSink(t *testing.T) {
	var _ Sink = Nop{}
	var _ Sink = NewSlog(nil)
}
