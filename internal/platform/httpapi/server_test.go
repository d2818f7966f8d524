package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/hostcost/internal/logging"
	"github.com/vovakirdan/hostcost/internal/pricing"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := NewServer(":0", pricing.New(), logging.Discard())
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, url string, out any) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s failed: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET %s status = %d", url, resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode %s: %v", url, err)
	}
}

func TestEstimateEndpoint(t *testing.T) {
	ts := newTestServer(t)

	var got EstimateResponse
	getJSON(t, ts.URL+"/v1/estimate?ram=8&players=20&worlds=1&plugins=10&mods=0&servers=1", &got)

	if got.Total.String() != "12.7" {
		t.Errorf("Total = %s, want 12.7", got.Total)
	}
	if got.Formatted != "£12.70" {
		t.Errorf("Formatted = %q", got.Formatted)
	}

	keys := make([]string, len(got.Items))
	quantities := make([]uint64, len(got.Items))
	for i, item := range got.Items {
		keys[i] = item.Key
		quantities[i] = item.Quantity
	}
	if diff := cmp.Diff([]string{"ram", "players", "worlds", "plugins", "mods", "servers"}, keys); diff != "" {
		t.Errorf("item keys mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]uint64{8, 20, 1, 10, 0, 1}, quantities); diff != "" {
		t.Errorf("quantities mismatch (-want +got):\n%s", diff)
	}
}

func TestEstimateEndpointFallbacks(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name  string
		query string
		total string
	}{
		{"no params is flat rate", "", "2"},
		{"non digits read as zero", "?ram=lots&players=abc", "2"},
		{"digits are filtered", "?ram=1a6", "10"},
		{"negative sign dropped", "?servers=-2", "5"},
		{"unknown params ignored", "?cpu=64&servers=1", "3.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got EstimateResponse
			getJSON(t, ts.URL+"/v1/estimate"+tt.query, &got)
			if got.Total.String() != tt.total {
				t.Errorf("Total = %s, want %s", got.Total, tt.total)
			}
		})
	}
}

func TestRatesEndpoint(t *testing.T) {
	ts := newTestServer(t)

	var got RatesResponse
	getJSON(t, ts.URL+"/v1/rates", &got)

	if got.Flat.String() != "2" {
		t.Errorf("Flat = %s, want 2", got.Flat)
	}
	if len(got.Rates) != int(pricing.NumDimensions) {
		t.Fatalf("got %d rates, want %d", len(got.Rates), pricing.NumDimensions)
	}

	rates := make(map[string]string, len(got.Rates))
	for _, r := range got.Rates {
		rates[r.Key] = r.Rate.String()
	}
	want := map[string]string{
		"ram": "0.5", "players": "0.1", "worlds": "0.2", "plugins": "0.3", "mods": "0.4", "servers": "1.5",
	}
	if diff := cmp.Diff(want, rates); diff != "" {
		t.Errorf("rates mismatch (-want +got):\n%s", diff)
	}
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)

	var got map[string]string
	getJSON(t, ts.URL+"/healthz", &got)
	if got["status"] != "ok" {
		t.Errorf("status = %q", got["status"])
	}
}

func TestUnknownRoute(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/v1/nope")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}
