// Package sync implements the session-scoped entity synchronizer shared
// by the dashboard's management screens. Each synchronizer owns a local,
// read-optimized copy of one vendor-scoped collection, refreshes it from
// the remote gateway, and exposes mutation operations that keep the two
// in step under a uniform stale-after-write policy: every successful
// mutation invalidates the local collection and triggers a full refresh
// rather than patching it optimistically.
package sync

import (
	"context"
	"errors"
	stdsync "sync"

	"github.com/africommerce/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Gateway is the remote data gateway for one entity collection. Every
// call is scoped by the owning vendor; implementations must treat a
// cross-vendor id as not found.
type Gateway[T any] interface {
	List(ctx context.Context, vendorID uuid.UUID) ([]T, error)
	Insert(ctx context.Context, entity *T) error
	Update(ctx context.Context, vendorID uuid.UUID, entity *T) error
	Delete(ctx context.Context, vendorID, id uuid.UUID) error
}

// SessionProvider supplies the current owning-vendor identifier. When no
// session exists the synchronizer makes no gateway calls at all.
type SessionProvider interface {
	VendorID(ctx context.Context) (uuid.UUID, bool)
}

// Status describes the synchronizer's collection state
type Status int

const (
	// StatusIdle means no load has been attempted yet (or no session exists)
	StatusIdle Status = iota
	// StatusLoading means a refresh is in flight
	StatusLoading
	// StatusReady means the collection reflects the last successful refresh
	StatusReady
	// StatusFailed means the last refresh failed; the previous collection
	// is retained untouched
	StatusFailed
)

// String returns the status name
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Synchronizer keeps a local copy of one vendor's entity collection in
// sync with the remote gateway for the duration of a session.
type Synchronizer[T any] struct {
	mu       stdsync.RWMutex
	gateway  Gateway[T]
	session  SessionProvider
	notifier Notifier
	items    []T
	status   Status
	lastErr  error
	closed   bool
}

// NewSynchronizer creates a synchronizer over the given gateway. A nil
// notifier is replaced with a no-op.
func NewSynchronizer[T any](gateway Gateway[T], session SessionProvider, notifier Notifier) *Synchronizer[T] {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Synchronizer[T]{
		gateway:  gateway,
		session:  session,
		notifier: notifier,
		status:   StatusIdle,
	}
}

// Items returns a snapshot copy of the current local collection. The
// copy is safe to iterate while mutations proceed.
func (s *Synchronizer[T]) Items() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Status returns the current collection state
func (s *Synchronizer[T]) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Err returns the error from the last failed operation, if any
func (s *Synchronizer[T]) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// Close detaches the synchronizer from its view. Results of any
// in-flight request observed after Close are discarded rather than
// applied, and further operations no-op.
func (s *Synchronizer[T]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

// Refresh replaces the local collection with the vendor's current
// records, ordered newest-first by the gateway. Calling Refresh twice
// with no intervening mutation yields an identical collection. On
// failure the prior collection is left intact.
func (s *Synchronizer[T]) Refresh(ctx context.Context) Outcome {
	vendorID, ok := s.beginRefresh(ctx)
	if !ok {
		return ErrorOutcome(shared.ErrNoSession.Code, shared.ErrNoSession.Message)
	}

	items, err := s.gateway.List(ctx, vendorID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || ctx.Err() != nil {
		// The view is gone; drop the result instead of applying it.
		return ErrorOutcome("CANCELLED", "Refresh discarded")
	}
	if err != nil {
		s.status = StatusFailed
		s.lastErr = err
		return s.failure(ctx, err)
	}

	s.items = items
	s.status = StatusReady
	s.lastErr = nil
	return SuccessOutcome("Collection refreshed")
}

// Create validates and inserts a new record, then refreshes the local
// collection. The entity must already be constructed (and validated) by
// its domain constructor; a validation failure never reaches the gateway.
func (s *Synchronizer[T]) Create(ctx context.Context, entity *T, message string) Outcome {
	return s.mutate(ctx, message, func(ctx context.Context, vendorID uuid.UUID) error {
		return s.gateway.Insert(ctx, entity)
	})
}

// Update submits a vendor-scoped update for the record and refreshes
// the local collection on success. On failure local state is untouched.
func (s *Synchronizer[T]) Update(ctx context.Context, entity *T, message string) Outcome {
	return s.mutate(ctx, message, func(ctx context.Context, vendorID uuid.UUID) error {
		return s.gateway.Update(ctx, vendorID, entity)
	})
}

// Remove submits a vendor-scoped delete for the record and refreshes
// the local collection on success.
func (s *Synchronizer[T]) Remove(ctx context.Context, id uuid.UUID, message string) Outcome {
	return s.mutate(ctx, message, func(ctx context.Context, vendorID uuid.UUID) error {
		return s.gateway.Delete(ctx, vendorID, id)
	})
}

// Apply runs an arbitrary vendor-scoped gateway operation under the
// same stale-after-write policy. Status transitions and stock
// adjustments go through here.
func (s *Synchronizer[T]) Apply(ctx context.Context, message string, op func(ctx context.Context, vendorID uuid.UUID) error) Outcome {
	return s.mutate(ctx, message, op)
}

func (s *Synchronizer[T]) mutate(ctx context.Context, message string, op func(ctx context.Context, vendorID uuid.UUID) error) Outcome {
	vendorID, ok := s.currentVendor(ctx)
	if !ok {
		return ErrorOutcome(shared.ErrNoSession.Code, shared.ErrNoSession.Message)
	}

	if err := op(ctx, vendorID); err != nil {
		s.mu.Lock()
		s.lastErr = err
		s.mu.Unlock()
		return s.failure(ctx, err)
	}

	// Stale-after-write: the mutation succeeded, so the local collection
	// no longer reflects the gateway. Refresh before reporting success so
	// the caller's next aggregate computation sees fresh data.
	if refresh := s.Refresh(ctx); !refresh.Succeeded() {
		return refresh
	}

	outcome := SuccessOutcome(message)
	s.notifier.Notify(ctx, outcome)
	return outcome
}

func (s *Synchronizer[T]) beginRefresh(ctx context.Context) (uuid.UUID, bool) {
	vendorID, ok := s.currentVendor(ctx)
	if !ok {
		return uuid.Nil, false
	}
	s.mu.Lock()
	s.status = StatusLoading
	s.mu.Unlock()
	return vendorID, true
}

func (s *Synchronizer[T]) currentVendor(ctx context.Context) (uuid.UUID, bool) {
	s.mu.RLock()
	closed := s.closed
	s.mu.RUnlock()
	if closed {
		return uuid.Nil, false
	}
	if s.session == nil {
		return uuid.Nil, false
	}
	vendorID, ok := s.session.VendorID(ctx)
	if !ok || vendorID == uuid.Nil {
		return uuid.Nil, false
	}
	return vendorID, true
}

func (s *Synchronizer[T]) failure(ctx context.Context, err error) Outcome {
	var de *shared.DomainError
	var outcome Outcome
	if errors.As(err, &de) {
		outcome = ErrorOutcome(de.Code, de.Message)
	} else {
		outcome = ErrorOutcome("GATEWAY_ERROR", err.Error())
	}
	s.notifier.Notify(ctx, outcome)
	return outcome
}
