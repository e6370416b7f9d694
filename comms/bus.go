package comms

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/aioffice/aioffice/status"
)

// Bus is an asynchronous, single-consumer message relay. Publish appends
// to an unbounded FIFO and never blocks; Run is the single consumer loop
// delivering messages to registered handlers in publish order.
type Bus struct {
	mu       sync.Mutex
	queue    []*Message
	wake     chan struct{}
	handlers map[string]Handler

	resolver Resolver
	sink     status.Sink
	logger   *slog.Logger
	dropped  atomic.Int64
}

// NewBus creates a bus. resolver may be nil (raw IDs are reported); sink
// may be nil (no observation); logger nil uses slog.Default.
func NewBus(resolver Resolver, sink status.Sink, logger *slog.Logger) *Bus {
	if sink == nil {
		sink = status.Nop{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{
		wake:     make(chan struct{}, 1),
		handlers: make(map[string]Handler),
		resolver: resolver,
		sink:     sink,
		logger:   logger,
	}
}

// Register attaches the message handler for an agent ID. The roster is
// fixed for the run, so there is no unregister.
func (b *Bus) Register(agentID string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[agentID] = h
}

// Publish enqueues a message and notifies the observation sink. It never
// blocks beyond enqueue cost and never drops messages.
func (b *Bus) Publish(msg *Message) {
	b.mu.Lock()
	b.queue = append(b.queue, msg)
	b.mu.Unlock()

	select {
	case b.wake <- struct{}{}:
	default:
	}

	b.sink.Communication(fmt.Sprintf("Message from %s to %s: %s",
		b.displayName(msg.From), b.displayName(msg.To), msg.Content))
}

// Run is the single consumer loop. It delivers queued messages one at a
// time in publish order until ctx is cancelled; an in-flight handler is
// allowed to finish before Run returns. Messages still queued at
// cancellation are dropped.
func (b *Bus) Run(ctx context.Context) {
	for {
		msg := b.pop()
		if msg == nil {
			select {
			case <-ctx.Done():
				return
			case <-b.wake:
				continue
			}
		}

		select {
		case <-ctx.Done():
			return
		default:
		}

		b.deliver(ctx, msg)
	}
}

// Dropped returns the number of messages discarded because no handler was
// registered for the recipient.
func (b *Bus) Dropped() int64 { return b.dropped.Load() }

// Pending returns the number of queued, undelivered messages.
func (b *Bus) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.queue)
}

func (b *Bus) pop() *Message {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.queue) == 0 {
		return nil
	}
	msg := b.queue[0]
	b.queue = b.queue[1:]
	return msg
}

func (b *Bus) deliver(ctx context.Context, msg *Message) {
	b.mu.Lock()
	h, ok := b.handlers[msg.To]
	b.mu.Unlock()

	if !ok {
		// Unknown recipient: silently absorbed, counted for observability.
		b.dropped.Add(1)
		b.logger.Debug("message to unknown recipient dropped",
			slog.String("to", msg.To), slog.String("from", msg.From))
		return
	}
	h(ctx, msg)
}

func (b *Bus) displayName(id string) string {
	if b.resolver != nil {
		if name, ok := b.resolver.AgentName(id); ok {
			return name
		}
	}
	return id
}
