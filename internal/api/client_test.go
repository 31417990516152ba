package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
)

func TestFetchOverviewDecodesPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/summary/overview" {
			t.Errorf("path = %q, want /summary/overview", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"time_window_days": 30,
			"total_cost_per_provider": {"AWS": 120.5, "AZURE": 80.0, "GCP": 0},
			"top_services": [
				{"provider": "AWS", "service": "EC2", "total_cost": 90.25}
			]
		}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 0, 0)
	summary, err := c.FetchOverview(context.Background())
	if err != nil {
		t.Fatalf("FetchOverview: %v", err)
	}
	if summary.TimeWindowDays != 30 {
		t.Fatalf("TimeWindowDays = %d, want 30", summary.TimeWindowDays)
	}
	if summary.TotalCostPerProvider["AWS"] != 120.5 {
		t.Fatalf("AWS cost = %v, want 120.5", summary.TotalCostPerProvider["AWS"])
	}
	if len(summary.TopServices) != 1 || summary.TopServices[0].Service != "EC2" {
		t.Fatalf("TopServices = %+v, want one EC2 entry", summary.TopServices)
	}
}

func TestFetchComparisonNullCPU(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[
			{"provider": "AWS", "total_cost": 50, "avg_cpu_utilization": 42.5, "workload_count": 3},
			{"provider": "GCP", "total_cost": 10, "avg_cpu_utilization": null, "workload_count": 0}
		]`))
	}))
	defer srv.Close()

	rows, err := New(srv.URL, 0, 0).FetchComparison(context.Background())
	if err != nil {
		t.Fatalf("FetchComparison: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].AvgCPUUtilization == nil || *rows[0].AvgCPUUtilization != 42.5 {
		t.Fatalf("AWS cpu = %v, want 42.5", rows[0].AvgCPUUtilization)
	}
	if rows[1].AvgCPUUtilization != nil {
		t.Fatalf("GCP cpu = %v, want nil for JSON null", *rows[1].AvgCPUUtilization)
	}
}

func TestConfiguredWindowSentAsQueryParam(t *testing.T) {
	var gotWindows []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotWindows = append(gotWindows, r.URL.Query().Get("time_window_days"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, 0, 7)
	if _, err := c.FetchComparison(context.Background()); err != nil {
		t.Fatalf("FetchComparison: %v", err)
	}
	if _, err := c.FetchRecommendations(context.Background()); err != nil {
		t.Fatalf("FetchRecommendations: %v", err)
	}

	if len(gotWindows) != 2 {
		t.Fatalf("server saw %d requests, want 2", len(gotWindows))
	}
	for i, got := range gotWindows {
		if got != "7" {
			t.Fatalf("request %d: time_window_days = %q, want 7", i, got)
		}
	}
}

func TestZeroWindowOmitsQueryParam(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery != "" {
			t.Errorf("query = %q, want none for the default window", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	if _, err := New(srv.URL, 0, 0).FetchComparison(context.Background()); err != nil {
		t.Fatalf("FetchComparison: %v", err)
	}
}

func TestStatusErrorCarriesCode(t *testing.T) {
	for _, code := range []int{400, 404, 500, 503} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(code)
		}))

		_, err := New(srv.URL, 0, 0).FetchRecommendations(context.Background())
		srv.Close()

		var se *StatusError
		if !errors.As(err, &se) {
			t.Fatalf("status %d: error = %v, want *StatusError", code, err)
		}
		if se.Code != code {
			t.Fatalf("StatusError.Code = %d, want %d", se.Code, code)
		}
		if !strings.Contains(Message(err), strconv.Itoa(code)) {
			t.Fatalf("Message(%v) = %q, should contain %d", err, Message(err), code)
		}
	}
}

func TestDecodeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"not": "a list"`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, 0, 0).FetchComparison(context.Background())
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("error = %v, want *DecodeError", err)
	}
	if Message(err) != "Could not decode API response." {
		t.Fatalf("Message = %q", Message(err))
	}
}

func TestUnconfiguredClientMakesNoRequest(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	c := New("   ", 0, 0)
	if c != nil {
		t.Fatal("New with blank URL should return nil")
	}

	_, err := c.FetchOverview(context.Background())
	if !errors.Is(err, ErrUnconfigured) {
		t.Fatalf("error = %v, want ErrUnconfigured", err)
	}
	if Message(err) != UnconfiguredMessage {
		t.Fatalf("Message = %q, want %q", Message(err), UnconfiguredMessage)
	}
	if hits.Load() != 0 {
		t.Fatalf("server saw %d requests, want 0", hits.Load())
	}
}

func TestCancelledRequestIsAbortNotFailure(t *testing.T) {
	started := make(chan struct{})
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		close(started)
		<-block
	}))
	defer srv.Close()
	defer close(block)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, err := New(srv.URL, 0, 0).FetchOverview(ctx)
	if err == nil {
		t.Fatal("expected an error from the cancelled fetch")
	}
	if !Canceled(err) {
		t.Fatalf("Canceled(%v) = false, want true", err)
	}
}
