package conditions

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testService(coopsURL, sosURL string) *dataService {
	return &dataService{
		cfg:        Config{TideStation: "9410230", MetStation: "9410230", BuoyStation: "46232"},
		coopsURL:   coopsURL,
		sosURL:     sosURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func TestFetchTide(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if query.Get("station") != "9410230" {
			t.Errorf("station param = %s, want 9410230", query.Get("station"))
		}
		if query.Get("product") != "predictions" {
			t.Error("product param should be 'predictions'")
		}
		if query.Get("date") != "today" {
			t.Error("date param should be 'today'")
		}
		if query.Get("units") != "english" {
			t.Error("units param should be 'english'")
		}
		if query.Get("format") != "json" {
			t.Error("format param should be 'json'")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"predictions":[{"t":"2025-07-12 00:00","v":"1.2"},{"t":"2025-07-12 23:54","v":"0.8"}]}`))
	}))
	defer server.Close()

	svc := testService(server.URL, "")
	resp, err := svc.FetchTide()
	if err != nil {
		t.Fatalf("FetchTide error: %v", err)
	}
	if len(resp.Predictions) != 2 {
		t.Fatalf("predictions = %d, want 2", len(resp.Predictions))
	}
	if resp.Predictions[0].Value != "1.2" {
		t.Errorf("first prediction = %s, want 1.2", resp.Predictions[0].Value)
	}
}

func TestFetchWind(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if query.Get("product") != "wind" {
			t.Error("product param should be 'wind'")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"metadata":{"id":"9410230"},"data":[{"t":"2025-07-12 00:00","s":"5","dr":"NW"}]}`))
	}))
	defer server.Close()

	svc := testService(server.URL, "")
	resp, err := svc.FetchWind()
	if err != nil {
		t.Fatalf("FetchWind error: %v", err)
	}
	if len(resp.Data) != 1 {
		t.Fatalf("data = %d, want 1", len(resp.Data))
	}
	if resp.Data[0].Direction != "NW" {
		t.Errorf("direction = %s, want NW", resp.Data[0].Direction)
	}
}

func TestFetchWave(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if query.Get("request") != "GetObservation" {
			t.Error("request param should be 'GetObservation'")
		}
		if query.Get("offering") != "urn:ioos:station:wmo:46232" {
			t.Errorf("offering param = %s, unexpected value", query.Get("offering"))
		}
		w.Header().Set("Content-Type", "text/xml")
		w.Write([]byte(`<observation><field name="SwellHeight">1.5</field></observation>`))
	}))
	defer server.Close()

	svc := testService("", server.URL)
	root, err := svc.FetchWave()
	if err != nil {
		t.Fatalf("FetchWave error: %v", err)
	}
	rec, err := ExtractWave(root)
	if err != nil {
		t.Fatalf("ExtractWave error: %v", err)
	}
	if _, ok := rec.Get(LabelSwellHeight); !ok {
		t.Error("swell-height missing from fetched document")
	}
}

func TestFetch_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	svc := testService(server.URL, server.URL)
	if _, err := svc.FetchTide(); err == nil {
		t.Error("FetchTide should fail on non-200 status")
	}
	if _, err := svc.FetchWave(); err == nil {
		t.Error("FetchWave should fail on non-200 status")
	}
}
