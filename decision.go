package overrides

import "sync"

// Phase identifies the pass a decision was made in.
type Phase string

// Resolution phases.
const (
	// PhaseDefaults writes the merged file defaults.
	PhaseDefaults Phase = "defaults"

	// PhaseOverride writes qualified overrides from the environment.
	PhaseOverride Phase = "override"
)

// Outcome is what happened to one value.
type Outcome string

// Decision outcomes.
const (
	OutcomeUnset       Outcome = "unset"
	OutcomeApplied     Outcome = "applied"
	OutcomeCoercedInt  Outcome = "coerced-int"
	OutcomeCoercedBool Outcome = "coerced-bool"
	OutcomeFailed      Outcome = "failed"
)

// Decision records the handling of one value during a resolution pass.
type Decision struct {
	// Pass identifies the resolution pass.
	Pass string

	Phase Phase

	// Key is the target key written to.
	Key string

	// QualifiedName is the name the value was found under: the key itself in
	// the defaults phase, prefix + "." + key in the override phase.
	QualifiedName string

	// Value is the raw value. Empty for unset decisions.
	Value string

	Outcome Outcome

	// Err is the rejection of the string write when Outcome is OutcomeFailed.
	Err error
}

// Written reports whether the decision changed the target.
func (d Decision) Written() bool {
	switch d.Outcome {
	case OutcomeApplied, OutcomeCoercedInt, OutcomeCoercedBool:
		return true
	}
	return false
}

// Observer receives every decision as it is made.
type Observer interface {
	Observe(Decision)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Decision)

// Observe implements Observer.
func (f ObserverFunc) Observe(d Decision) {
	f(d)
}

// DecisionLog is an Observer that keeps every decision in order. It is safe
// for concurrent use.
type DecisionLog struct {
	mu        sync.Mutex
	decisions []Decision
}

// Observe implements Observer.
func (l *DecisionLog) Observe(d Decision) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.decisions = append(l.decisions, d)
}

// Decisions returns a copy of the recorded decisions.
func (l *DecisionLog) Decisions() []Decision {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Decision, len(l.decisions))
	copy(out, l.decisions)
	return out
}

// Filter returns the recorded decisions with the given outcome.
func (l *DecisionLog) Filter(outcome Outcome) []Decision {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []Decision
	for _, d := range l.decisions {
		if d.Outcome == outcome {
			out = append(out, d)
		}
	}
	return out
}

// Reset discards all recorded decisions.
func (l *DecisionLog) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.decisions = nil
}
