package openf1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchDecodesArray(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[{"driver_number":44,"name_acronym":"HAM","full_name":"Lewis Hamilton","team_name":"Mercedes"}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 9558)
	drivers := client.Drivers(context.Background(), 44)

	if len(drivers) != 1 {
		t.Fatalf("got %d drivers, want 1", len(drivers))
	}
	if drivers[0].NameAcronym != "HAM" || drivers[0].DriverNumber != 44 {
		t.Errorf("driver = %+v", drivers[0])
	}
	if gotPath != "/drivers" {
		t.Errorf("path = %q, want /drivers", gotPath)
	}
	if gotQuery != "session_key=9558&driver_number=44" {
		t.Errorf("query = %q", gotQuery)
	}
}

func TestFetchFailsToEmpty(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"malformed body", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"not":"an array"`))
		}},
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}},
		{"object instead of array", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"detail":"rate limited"}`))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := NewClient(server.URL, 9558)
			if laps := client.Laps(context.Background(), 44); len(laps) != 0 {
				t.Errorf("got %d laps, want 0", len(laps))
			}
		})
	}
}

func TestFetchUnreachableHostIsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, 9558)
	if stints := client.Stints(context.Background(), 44); len(stints) != 0 {
		t.Errorf("got %d stints, want 0", len(stints))
	}
}

func TestCarDataEscapesDateFilter(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 9558)
	client.CarData(context.Background(), 44, "2024-07-07T15:00:00+00:00")

	want := "session_key=9558&driver_number=44&date>=2024-07-07T15%3A00%3A00%2B00%3A00"
	if gotQuery != want {
		t.Errorf("query = %q, want %q", gotQuery, want)
	}
}
