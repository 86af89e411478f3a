package posts

import (
	"context"
	"sync"
)

// Phase is the fetch lifecycle phase.
type Phase int

const (
	// PhaseIdle means no fetch has started yet.
	PhaseIdle Phase = iota
	// PhaseLoading means a fetch is in flight.
	PhaseLoading
	// PhaseLoaded means the last fetch succeeded.
	PhaseLoaded
	// PhaseFailed means the last fetch failed.
	PhaseFailed
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// LoadState is an exclusive variant: exactly one phase holds, Records is only
// meaningful when Loaded and Message only when Failed.
type LoadState struct {
	Phase   Phase
	Records []Record
	Message string
}

// Idle returns the initial state.
func Idle() LoadState { return LoadState{Phase: PhaseIdle} }

// Loading returns the in-flight state.
func Loading() LoadState { return LoadState{Phase: PhaseLoading} }

// Loaded returns the success state holding records.
func Loaded(records []Record) LoadState {
	return LoadState{Phase: PhaseLoaded, Records: records}
}

// Failed returns the failure state holding a user-facing message.
func Failed(message string) LoadState {
	return LoadState{Phase: PhaseFailed, Message: message}
}

// IsLoading reports whether a fetch is in flight.
func (s LoadState) IsLoading() bool { return s.Phase == PhaseLoading }

// IsFailed reports whether the last fetch failed.
func (s LoadState) IsFailed() bool { return s.Phase == PhaseFailed }

// Fetcher performs one fetch. *Client satisfies it through its Fetch method value.
type Fetcher func(ctx context.Context) ([]Record, error)

// Listener is called with every state the Loader enters.
type Listener func(LoadState)

// Loader drives the LoadState machine around a Fetcher.
type Loader struct {
	fetch Fetcher

	mu        sync.RWMutex
	state     LoadState
	listeners []Listener
}

// NewLoader creates an idle Loader.
func NewLoader(fetch Fetcher) *Loader {
	return &Loader{fetch: fetch, state: Idle()}
}

// Subscribe registers fn to receive every subsequent transition.
func (l *Loader) Subscribe(fn Listener) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.listeners = append(l.listeners, fn)
}

// State returns the current state.
func (l *Loader) State() LoadState {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

// Load enters Loading, performs exactly one fetch, and settles into Loaded
// or Failed. The settle step is deferred so the loading phase is always left,
// including when the fetcher panics.
//
//nolint:nonamedreturns // The deferred settle step publishes the named result.
func (l *Loader) Load(ctx context.Context) (result LoadState) {
	l.transition(Loading())

	result = Failed("fetch did not complete")
	defer func() {
		l.transition(result)
	}()

	records, err := l.fetch(ctx)
	if err != nil {
		result = Failed(err.Error())
		return result
	}
	result = Loaded(records)
	return result
}

func (l *Loader) transition(next LoadState) {
	l.mu.Lock()
	l.state = next
	listeners := make([]Listener, len(l.listeners))
	copy(listeners, l.listeners)
	l.mu.Unlock()

	for _, fn := range listeners {
		fn(next)
	}
}
