package tui

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/Kaushik523/Multi-cloud-cost/internal/api"
)

func runCmd[T any](t *testing.T, r *resource[T], fetch func(ctx context.Context) (T, error)) resultMsg[T] {
	t.Helper()
	cmd := r.start(fetch)
	msg, ok := cmd().(resultMsg[T])
	if !ok {
		t.Fatal("start command did not return a resultMsg")
	}
	return msg
}

func TestResourceSuccess(t *testing.T) {
	var r resource[int]

	msg := runCmd(t, &r, func(context.Context) (int, error) { return 42, nil })
	r.apply(msg)

	if r.phase != phaseReady {
		t.Fatalf("phase = %d, want ready", r.phase)
	}
	if r.data != 42 {
		t.Fatalf("data = %d, want 42", r.data)
	}
}

func TestResourceErrorMessageContainsStatus(t *testing.T) {
	var r resource[int]

	msg := runCmd(t, &r, func(context.Context) (int, error) {
		return 0, &api.StatusError{Code: 502}
	})
	r.apply(msg)

	if r.phase != phaseError {
		t.Fatalf("phase = %d, want error", r.phase)
	}
	if r.errMsg != "Request failed with status 502." {
		t.Fatalf("errMsg = %q, should name the status code", r.errMsg)
	}
}

func TestResourceUnconfiguredFailsWithoutFetch(t *testing.T) {
	var r resource[int]

	r.fail(api.UnconfiguredMessage)

	if r.phase != phaseError {
		t.Fatalf("phase = %d, want error", r.phase)
	}
	if r.errMsg != "API base URL is not configured." {
		t.Fatalf("errMsg = %q", r.errMsg)
	}
}

func TestResourceAbortAppliesNoTransition(t *testing.T) {
	var r resource[int]

	cmd := r.start(func(ctx context.Context) (int, error) {
		<-ctx.Done()
		return 0, ctx.Err()
	})

	// Simulate teardown while the request is outstanding.
	r.abort()

	msg, ok := cmd().(resultMsg[int])
	if !ok {
		t.Fatal("start command did not return a resultMsg")
	}
	if !msg.aborted {
		t.Fatal("cancelled fetch should report aborted")
	}

	r.apply(msg)
	if r.phase != phaseLoading {
		t.Fatalf("phase = %d, abort must leave state unchanged", r.phase)
	}
	if r.errMsg != "" {
		t.Fatalf("errMsg = %q, abort must not surface an error", r.errMsg)
	}
}

func TestResourceSupersededResultDiscarded(t *testing.T) {
	var r resource[string]

	var calls atomic.Int32
	slow := r.start(func(ctx context.Context) (string, error) {
		calls.Add(1)
		<-ctx.Done()
		return "stale", ctx.Err()
	})
	fast := r.start(func(context.Context) (string, error) {
		calls.Add(1)
		return "fresh", nil
	})

	// The second start cancelled the first; run both commands and apply
	// the stale result after the fresh one.
	fastMsg := fast().(resultMsg[string])
	slowMsg := slow().(resultMsg[string])

	r.apply(fastMsg)
	r.apply(slowMsg)

	if calls.Load() != 2 {
		t.Fatalf("fetches = %d, want 2", calls.Load())
	}
	if r.phase != phaseReady || r.data != "fresh" {
		t.Fatalf("state = (%d, %q), superseded result must not win", r.phase, r.data)
	}
}

func TestResourceApplyReleasesContext(t *testing.T) {
	var r resource[int]

	var fetchCtx context.Context
	msg := runCmd(t, &r, func(ctx context.Context) (int, error) {
		fetchCtx = ctx
		return 1, nil
	})

	if fetchCtx.Err() != nil {
		t.Fatal("context cancelled before the result was applied")
	}

	r.apply(msg)

	if !errors.Is(fetchCtx.Err(), context.Canceled) {
		t.Fatal("applying a completed result must release its context")
	}
	if r.phase != phaseReady || r.data != 1 {
		t.Fatalf("state = (%d, %d), release must not disturb the result", r.phase, r.data)
	}
}

func TestResourceApplyReportsAcceptance(t *testing.T) {
	var r resource[int]

	msg := runCmd(t, &r, func(context.Context) (int, error) { return 3, nil })
	if !r.apply(msg) {
		t.Fatal("a current result must be accepted")
	}

	stale := resultMsg[int]{seq: msg.seq - 1, data: 9}
	if r.apply(stale) {
		t.Fatal("a superseded result must be rejected")
	}
	if r.apply(resultMsg[int]{seq: r.seq, aborted: true}) {
		t.Fatal("an aborted result must be rejected")
	}
}

func TestResourceStaleErrorDiscarded(t *testing.T) {
	var r resource[int]

	stale := resultMsg[int]{seq: 0, err: errors.New("old failure")}

	msg := runCmd(t, &r, func(context.Context) (int, error) { return 7, nil })
	r.apply(msg)
	r.apply(stale)

	if r.phase != phaseReady || r.data != 7 {
		t.Fatalf("state = (%d, %d), stale error must be dropped", r.phase, r.data)
	}
}
