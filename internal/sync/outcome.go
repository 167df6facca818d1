package sync

import "context"

// OutcomeKind distinguishes success from failure outcomes
type OutcomeKind string

const (
	OutcomeSuccess OutcomeKind = "success"
	OutcomeError   OutcomeKind = "error"
)

// Outcome is the structured result of a synchronizer operation. Every
// public operation resolves to exactly one outcome; errors are never
// propagated silently past the synchronizer boundary.
type Outcome struct {
	Kind    OutcomeKind `json:"kind"`
	Message string      `json:"message"`
	Code    string      `json:"code,omitempty"`
}

// Succeeded reports whether the operation completed
func (o Outcome) Succeeded() bool {
	return o.Kind == OutcomeSuccess
}

// SuccessOutcome builds a success outcome with the given message
func SuccessOutcome(message string) Outcome {
	return Outcome{Kind: OutcomeSuccess, Message: message}
}

// ErrorOutcome builds an error outcome from a failure
func ErrorOutcome(code, message string) Outcome {
	return Outcome{Kind: OutcomeError, Code: code, Message: message}
}

// Notifier is the fire-and-forget channel outcomes are surfaced on,
// typically rendered as a toast by the presentation layer. Delivery
// failures are ignored; notification must never fail an operation.
type Notifier interface {
	Notify(ctx context.Context, outcome Outcome)
}

// NopNotifier discards all outcomes
type NopNotifier struct{}

// Notify implements Notifier
func (NopNotifier) Notify(context.Context, Outcome) {}
