package tui

import (
	"context"

	"github.com/Kaushik523/Multi-cloud-cost/internal/api"

	tea "github.com/charmbracelet/bubbletea"
)

// resourcePhase is the lifecycle state of one fetched page resource.
type resourcePhase int

const (
	phaseLoading resourcePhase = iota
	phaseError
	phaseReady
)

// resultMsg carries the outcome of one fetch attempt back into Update.
type resultMsg[T any] struct {
	seq     int
	data    T
	err     error
	aborted bool
}

// resource tracks the fetch lifecycle of a single endpoint's payload.
// All three dashboard pages share this state machine: loading, error with
// a retry affordance, or ready with a decoded snapshot. Snapshots are
// replaced wholesale on refetch and never merged.
type resource[T any] struct {
	phase  resourcePhase
	errMsg string
	data   T

	seq    int                // identifies the authoritative request
	cancel context.CancelFunc // cancels the in-flight request, if any
}

// start cancels any in-flight request and begins a new fetch in a Bubble
// Tea command goroutine. The result carries the sequence number it was
// issued under; apply discards it once superseded, so an older request
// can never overwrite state set by a newer one.
func (r *resource[T]) start(fetch func(ctx context.Context) (T, error)) tea.Cmd {
	r.abort()
	r.seq++
	seq := r.seq

	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.phase = phaseLoading
	r.errMsg = ""

	return func() tea.Msg {
		data, err := fetch(ctx)
		if err != nil && (api.Canceled(err) || ctx.Err() != nil) {
			return resultMsg[T]{seq: seq, aborted: true}
		}
		return resultMsg[T]{seq: seq, data: data, err: err}
	}
}

// fail moves straight to the error state without touching the network.
// Used when the base URL is unconfigured.
func (r *resource[T]) fail(msg string) {
	r.abort()
	r.seq++
	r.phase = phaseError
	r.errMsg = msg
}

// apply folds a fetch result into the state machine, reporting whether
// it was accepted. Stale results and aborts apply no transition: an
// aborted page keeps whatever state it had when the request was
// cancelled.
func (r *resource[T]) apply(msg resultMsg[T]) bool {
	if msg.seq != r.seq || msg.aborted {
		return false
	}
	// The fetch is done; release its context.
	r.abort()

	if msg.err != nil {
		r.phase = phaseError
		r.errMsg = api.Message(msg.err)
		return true
	}
	r.phase = phaseReady
	r.data = msg.data
	return true
}

// abort cancels the in-flight request, if any, leaving state as-is.
func (r *resource[T]) abort() {
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
}

// loading reports whether a fetch is outstanding.
func (r *resource[T]) loading() bool {
	return r.phase == phaseLoading
}
