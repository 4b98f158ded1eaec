package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func jsonServer(t *testing.T, status int, body string, hits *int64) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			atomic.AddInt64(hits, 1)
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGetJSONFirstCandidateWins(t *testing.T) {
	var firstHits, secondHits int64
	first := jsonServer(t, http.StatusOK, `{"items":[{"label":"a"}]}`, &firstHits)
	second := jsonServer(t, http.StatusOK, `{"items":[{"label":"b"}]}`, &secondHits)

	client := New(StaticCandidates{first.URL, second.URL}, "", time.Second)

	var got struct {
		Items []map[string]string `json:"items"`
	}
	if err := client.GetJSON(context.Background(), "/api/menu", &got); err != nil {
		t.Fatalf("GetJSON: %v", err)
	}
	if len(got.Items) != 1 || got.Items[0]["label"] != "a" {
		t.Errorf("unexpected body: %+v", got.Items)
	}
	if firstHits != 1 {
		t.Errorf("first candidate hits: got %d, want 1", firstHits)
	}
	if secondHits != 0 {
		t.Errorf("later candidate contacted %d times after success", secondHits)
	}
}

func TestGetJSONFallsThroughToWorkingCandidate(t *testing.T) {
	var badHits, goodHits int64
	bad := jsonServer(t, http.StatusBadGateway, "upstream down", &badHits)
	good := jsonServer(t, http.StatusOK, `{"items":[{"key":"frontend","label":"Frontend"}]}`, &goodHits)

	// A connection-refused candidate first, then a 502, then the good one.
	refused := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	refused.Close()

	client := New(StaticCandidates{refused.URL, bad.URL, good.URL}, "", time.Second)

	var got struct {
		Items []map[string]string `json:"items"`
	}
	if err := client.GetJSON(context.Background(), "/api/menu", &got); err != nil {
		t.Fatalf("GetJSON: %v", err)
	}
	if badHits != 1 || goodHits != 1 {
		t.Errorf("hits: bad=%d good=%d, want 1 each", badHits, goodHits)
	}
	if len(got.Items) != 1 || got.Items[0]["key"] != "frontend" {
		t.Errorf("unexpected body: %+v", got.Items)
	}
}

func TestGetJSONMalformedBodySkipsCandidate(t *testing.T) {
	notJSON := jsonServer(t, http.StatusOK, "<html>proxy error page</html>", nil)
	good := jsonServer(t, http.StatusOK, `{"items":[]}`, nil)

	client := New(StaticCandidates{notJSON.URL, good.URL}, "", time.Second)

	var got struct {
		Items []map[string]string `json:"items"`
	}
	if err := client.GetJSON(context.Background(), "/api/menu", &got); err != nil {
		t.Fatalf("GetJSON should have recovered via second candidate: %v", err)
	}
}

func TestGetJSONAllCandidatesFail(t *testing.T) {
	var aHits, bHits int64
	a := jsonServer(t, http.StatusInternalServerError, "boom", &aHits)
	b := jsonServer(t, http.StatusNotFound, "missing", &bHits)

	client := New(StaticCandidates{a.URL, b.URL}, "", time.Second)

	var got map[string]any
	err := client.GetJSON(context.Background(), "/api/reviews", &got)
	if err == nil {
		t.Fatal("expected error when every candidate fails")
	}

	var exhausted *ExhaustedError
	if !errors.As(err, &exhausted) {
		t.Fatalf("error type: got %T, want *ExhaustedError", err)
	}
	if exhausted.Attempts != 2 {
		t.Errorf("attempts: got %d, want 2", exhausted.Attempts)
	}
	if exhausted.Path != "/api/reviews" {
		t.Errorf("path: got %q", exhausted.Path)
	}
	if exhausted.Last == nil {
		t.Error("last error not recorded")
	}
	if aHits != 1 || bHits != 1 {
		t.Errorf("hits: a=%d b=%d, want exactly one attempt each", aHits, bHits)
	}
}

func TestGetJSONCandidateOrder(t *testing.T) {
	// Only the candidate at position k answers; exactly k attempts occur.
	var order []string
	mkServer := func(name string, ok bool) *httptest.Server {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			order = append(order, name)
			if ok {
				w.Write([]byte(`{}`))
				return
			}
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		t.Cleanup(srv.Close)
		return srv
	}
	a := mkServer("a", false)
	b := mkServer("b", false)
	c := mkServer("c", true)
	d := mkServer("d", true)

	client := New(StaticCandidates{a.URL, b.URL, c.URL, d.URL}, "", time.Second)

	var got map[string]any
	if err := client.GetJSON(context.Background(), "/api/menu", &got); err != nil {
		t.Fatalf("GetJSON: %v", err)
	}
	want := []string{"a", "b", "c"}
	if len(order) != len(want) {
		t.Fatalf("attempt order %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("attempt order %v, want %v", order, want)
		}
	}
}

func TestGetJSONEmptyCandidateUsesOrigin(t *testing.T) {
	var hits int64
	origin := jsonServer(t, http.StatusOK, `{"items":[]}`, &hits)

	client := New(StaticCandidates{""}, origin.URL, time.Second)

	var got struct {
		Items []map[string]string `json:"items"`
	}
	if err := client.GetJSON(context.Background(), "/api/contact", &got); err != nil {
		t.Fatalf("GetJSON: %v", err)
	}
	if hits != 1 {
		t.Errorf("origin hits: got %d, want 1", hits)
	}
}

func TestGetJSONSecondOfThreeCandidates(t *testing.T) {
	// Candidates [a, b, ""] where only b answers: a is attempted and fails,
	// b succeeds, the relative fallback is never contacted.
	var originHits int64
	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	down.Close()
	b := jsonServer(t, http.StatusOK, `{"items":[{"key":"frontend","label":"Frontend"}]}`, nil)
	origin := jsonServer(t, http.StatusOK, `{"items":[]}`, &originHits)

	client := New(StaticCandidates{down.URL, b.URL, ""}, origin.URL, time.Second)

	var got struct {
		Items []map[string]string `json:"items"`
	}
	if err := client.GetJSON(context.Background(), "/api/menu", &got); err != nil {
		t.Fatalf("GetJSON: %v", err)
	}
	if len(got.Items) != 1 || got.Items[0]["label"] != "Frontend" {
		t.Errorf("unexpected body: %+v", got.Items)
	}
	if originHits != 0 {
		t.Errorf("fallback candidate contacted %d times after earlier success", originHits)
	}
}

func TestCandidateFunc(t *testing.T) {
	srv := jsonServer(t, http.StatusOK, `{"ok":true}`, nil)
	calls := 0
	client := New(CandidateFunc(func() []string {
		calls++
		return []string{srv.URL}
	}), "", time.Second)

	var got map[string]any
	if err := client.GetJSON(context.Background(), "/x", &got); err != nil {
		t.Fatalf("GetJSON: %v", err)
	}
	if calls != 1 {
		t.Errorf("candidate source consulted %d times, want once per call", calls)
	}
}
