// Package comms provides the inter-agent communication bus.
package comms

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Message is a communication unit between agents. It is immutable once
// published: delivered exactly once, then discarded.
type Message struct {
	ID        string    `json:"id"`
	From      string    `json:"from"` // sender agent ID
	To        string    `json:"to"`   // recipient agent ID
	Content   string    `json:"content"`
	TaskID    string    `json:"task_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// NewMessage constructs a message with a fresh ID and timestamp.
func NewMessage(from, to, content, taskID string) *Message {
	return &Message{
		ID:        uuid.NewString(),
		From:      from,
		To:        to,
		Content:   content,
		TaskID:    taskID,
		Timestamp: time.Now().UTC(),
	}
}

// Handler processes a delivered message for an agent.
type Handler func(ctx context.Context, msg *Message)

// Resolver maps agent IDs to display names for observation output.
type Resolver interface {
	AgentName(id string) (string, bool)
}
