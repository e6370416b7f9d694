// Package mock provides scripted generators for testing.
package mock

import (
	"context"
	"sync"
)

const defaultResponse = "Task acknowledged. Working on it."

// Generator implements provider.Generator with scripted responses.
type Generator struct {
	mu        sync.Mutex
	responses []string
	idx       int
}

// New creates a Generator that cycles through the given responses.
func New(responses ...string) *Generator {
	return &Generator{responses: responses}
}

// Name returns the backend identifier.
func (g *Generator) Name() string { return "mock" }

// Generate returns the next scripted response, cycling through the queue.
func (g *Generator) Generate(_ context.Context, _, _ string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.responses) == 0 {
		return defaultResponse, nil
	}
	resp := g.responses[g.idx%len(g.responses)]
	g.idx++
	return resp, nil
}

// Failing is a generator whose every call returns err.
type Failing struct {
	Err error
}

func (f *Failing) Name() string { return "failing" }

func (f *Failing) Generate(context.Context, string, string) (string, error) {
	return "", f.Err
}
