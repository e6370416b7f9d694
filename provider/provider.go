// Package provider defines the content-generation capability that agents
// call to turn a task instruction into produced content.
package provider

import "context"

// Generator is an opaque content-generation backend. Generate may suspend
// (e.g. a network round-trip) and may fail; callers treat failure as a
// fallback trigger, never as fatal.
type Generator interface {
	// Name returns the backend identifier (e.g. "ollama", "mock").
	Name() string

	// Generate produces content for a role-specific instruction.
	// roleContext describes who is asking ("You are Alex Carter, Web
	// Developer. ..."); instruction is the task-derived request.
	Generate(ctx context.Context, roleContext, instruction string) (string, error)
}
