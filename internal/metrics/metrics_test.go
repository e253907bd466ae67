package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestNewCollectorReturnsNonNil(t *testing.T) {
	if NewCollector() == nil {
		t.Fatal("expected non-nil Collector")
	}
}

func TestRecordRequestIncrementsCounter(t *testing.T) {
	c := NewCollector()

	c.RecordRequest(http.MethodGet, "/users", http.StatusOK, 5*time.Millisecond)
	c.RecordRequest(http.MethodGet, "/users", http.StatusOK, 7*time.Millisecond)

	families, err := c.registry.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	found := false
	for _, mf := range families {
		if mf.GetName() == "groupdir_http_requests_total" {
			found = true
			if len(mf.GetMetric()) != 1 {
				t.Fatalf("expected 1 label combination, got %d", len(mf.GetMetric()))
			}
			if val := mf.GetMetric()[0].GetCounter().GetValue(); val != 2 {
				t.Errorf("requests_total = %v, want 2", val)
			}
		}
	}
	if !found {
		t.Fatal("expected groupdir_http_requests_total to be registered")
	}
}

func TestHandlerServesMetrics(t *testing.T) {
	c := NewCollector()
	c.RecordRequest(http.MethodPost, "/groups", http.StatusCreated, time.Millisecond)

	server := httptest.NewServer(c.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL)
	if err != nil {
		t.Fatalf("scrape failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed reading scrape body: %v", err)
	}
	if !strings.Contains(string(body), "groupdir_http_requests_total") {
		t.Fatal("expected scrape output to contain the request counter")
	}
}
