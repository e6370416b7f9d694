package task

import (
	"container/heap"
	"sync"
	"time"
)

// queueItem is the composite admission key: priority rank first, then
// arrival time, then task ID as a stable tiebreak.
type queueItem struct {
	rank      int
	createdAt time.Time
	id        string
}

type itemHeap []queueItem

func (h itemHeap) Len() int { return len(h) }

func (h itemHeap) Less(i, j int) bool {
	if h[i].rank != h[j].rank {
		return h[i].rank < h[j].rank
	}
	if !h[i].createdAt.Equal(h[j].createdAt) {
		return h[i].createdAt.Before(h[j].createdAt)
	}
	return h[i].id < h[j].id
}

func (h itemHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *itemHeap) Push(x any) { *h = append(*h, x.(queueItem)) }

func (h *itemHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}

// Queue is the priority-ordered admission structure feeding the generic
// dispatch loop. It holds task IDs only; the registry remains the source
// of truth for content.
type Queue struct {
	mu    sync.Mutex
	items itemHeap
}

// NewQueue creates an empty work queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Enqueue admits a task by its composite key.
func (q *Queue) Enqueue(t *Task) {
	q.mu.Lock()
	defer q.mu.Unlock()
	heap.Push(&q.items, queueItem{
		rank:      t.Priority.Rank(),
		createdAt: t.CreatedAt,
		id:        t.ID,
	})
}

// Dequeue removes and returns the most urgent task ID. The second return
// is false when the queue is empty.
func (q *Queue) Dequeue() (string, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return "", false
	}
	it := heap.Pop(&q.items).(queueItem)
	return it.id, true
}

// IsEmpty reports whether the queue holds no tasks.
func (q *Queue) IsEmpty() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items) == 0
}

// Len returns the number of queued task IDs.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
