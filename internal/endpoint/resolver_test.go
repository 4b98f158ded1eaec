package endpoint

import (
	"reflect"
	"testing"
)

func TestCandidatesOverrideFirst(t *testing.T) {
	got := Candidates("https://api.example.com/", Origin{Scheme: "https", Host: "example.com"})
	if len(got) == 0 {
		t.Fatal("expected at least one candidate")
	}
	if got[0] != "https://api.example.com" {
		t.Errorf("first candidate: got %q, want normalized override", got[0])
	}
}

func TestCandidatesPortSwap(t *testing.T) {
	got := Candidates("", Origin{Scheme: "http", Host: "localhost:3000"})
	want := []string{"http://localhost:8000", ""}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCandidatesHostnameRewrite(t *testing.T) {
	got := Candidates("", Origin{Scheme: "https", Host: "myapp-3000.platform.run"})
	want := []string{
		"https://myapp-8000.platform.run",
		"https://myapp-8000.platform-api.run",
		"",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCandidatesRewriteNeedsRunSuffix(t *testing.T) {
	// "-3000" without a ".run" suffix must not produce the rewrite candidate.
	got := Candidates("", Origin{Scheme: "https", Host: "myapp-3000.example.com"})
	want := []string{"https://myapp-8000.example.com", ""}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCandidatesFallbackAlwaysPresentAndLast(t *testing.T) {
	cases := []struct {
		name     string
		override string
		origin   Origin
	}{
		{"no inputs", "", Origin{}},
		{"override only", "http://backend:9000", Origin{}},
		{"plain origin", "", Origin{Scheme: "https", Host: "example.com"}},
		{"dev origin", "", Origin{Scheme: "http", Host: "127.0.0.1:3000"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Candidates(tc.override, tc.origin)
			if len(got) == 0 {
				t.Fatal("no candidates")
			}
			if got[len(got)-1] != "" {
				t.Errorf("last candidate: got %q, want empty fallback", got[len(got)-1])
			}
		})
	}
}

func TestCandidatesNoDuplicates(t *testing.T) {
	// Override identical to the derived port-swap candidate collapses to one.
	got := Candidates("http://localhost:8000", Origin{Scheme: "http", Host: "localhost:3000"})
	want := []string{"http://localhost:8000", ""}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	seen := make(map[string]bool)
	for _, c := range got {
		if seen[c] {
			t.Errorf("duplicate candidate %q", c)
		}
		seen[c] = true
	}
}

func TestCandidatesWhitespaceOverrideIgnored(t *testing.T) {
	got := Candidates("   ", Origin{Scheme: "https", Host: "example.com"})
	want := []string{""}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
