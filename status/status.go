// Package status defines the fire-and-forget observation sink that the
// core reports through. A dashboard, log collector, or test harness can
// implement Sink; the core produces identical task results with Nop.
package status

import "log/slog"

// Sink receives best-effort notifications about simulation activity.
// Implementations must not block and must tolerate concurrent calls.
type Sink interface {
	// Status reports a general state change ("Created task: ...").
	Status(text string)

	// Communication reports an inter-agent message or log line.
	Communication(text string)

	// WorkStarted reports that the named agent began working.
	WorkStarted(agentName string)

	// WorkStopped reports that the named agent finished working.
	WorkStopped(agentName string)
}

// Nop is the null-object sink.
type Nop struct{}

func (Nop) Status(string)        {}
func (Nop) Communication(string) {}
func (Nop) WorkStarted(string)   {}
func (Nop) WorkStopped(string)   {}

// Tee fans notifications out to several sinks in order.
func Tee(sinks ...Sink) Sink { return tee(sinks) }

type tee []Sink

func (t tee) Status(text string) {
	for _, s := range t {
		s.Status(text)
	}
}

func (t tee) Communication(text string) {
	for _, s := range t {
		s.Communication(text)
	}
}

func (t tee) WorkStarted(agentName string) {
	for _, s := range t {
		s.WorkStarted(agentName)
	}
}

func (t tee) WorkStopped(agentName string) {
	for _, s := range t {
		s.WorkStopped(agentName)
	}
}

// Slog forwards notifications to a structured logger.
type Slog struct {
	Logger *slog.Logger
}

// NewSlog creates a sink logging through logger; nil uses slog.Default.
func NewSlog(logger *slog.Logger) *Slog {
	if logger == nil {
		logger = slog.Default()
	}
	return &Slog{Logger: logger}
}

func (s *Slog) Status(text string) {
	s.Logger.Info("status", slog.String("text", text))
}

func (s *Slog) Communication(text string) {
	s.Logger.Info("communication", slog.String("text", text))
}

func (s *Slog) WorkStarted(agentName string) {
	s.Logger.Info("work started", slog.String("agent", agentName))
}

func (s *Slog) WorkStopped(agentName string) {
	s.Logger.Info("work stopped", slog.String("agent", agentName))
}
