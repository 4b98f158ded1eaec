// Package endpoint derives candidate base URLs for the portfolio backend.
//
// The client has no build-time knowledge of where the backend lives: it may
// sit behind the same reverse proxy that serves the client, on a sibling
// port during local development, or on a rewritten hostname on managed
// hosting platforms. The resolver turns the configured override plus the
// page origin into an ordered list of guesses for the fetch client to try.
package endpoint

import "strings"

// Origin is the scheme and host the client itself was served from. Callers
// pass it in explicitly so resolution stays deterministic and testable.
type Origin struct {
	Scheme string // "http" or "https"
	Host   string // host[:port], e.g. "localhost:3000"
}

// Candidates returns the ordered, de-duplicated list of base URLs to try,
// highest priority first:
//
//  1. The explicit override, if configured.
//  2. Same origin with port 3000 swapped for 8000 (local dev layout where
//     the client runs on 3000 and the backend on 8000).
//  3. The hostname rewrite used by platforms that expose sibling services
//     via hostname suffixes: "-3000" becomes "-8000" and the trailing
//     ".run" becomes "-api.run". Added only when both substitutions apply.
//  4. "" — relative to the current origin, for deployments where a reverse
//     proxy forwards API paths to the backend.
//
// The empty-string fallback is always present, so the list is never empty.
// Base URLs are normalized with no trailing slash. Candidates never fails:
// a malformed override just yields one more (useless) candidate to scan.
func Candidates(override string, origin Origin) []string {
	var out []string
	seen := make(map[string]bool)

	add := func(c string) {
		c = strings.TrimRight(c, "/")
		if seen[c] {
			return
		}
		seen[c] = true
		out = append(out, c)
	}

	if strings.TrimSpace(override) != "" {
		add(strings.TrimSpace(override))
	}

	if origin.Host != "" && strings.Contains(origin.Host, "3000") {
		add(origin.Scheme + "://" + strings.Replace(origin.Host, "3000", "8000", 1))
	}

	if origin.Host != "" && strings.Contains(origin.Host, "-3000") {
		host := strings.Replace(origin.Host, "-3000", "-8000", 1)
		// The suffix check runs against the already-rewritten host; both
		// substitutions must apply for this candidate to exist.
		if strings.HasSuffix(host, ".run") {
			add(origin.Scheme + "://" + strings.TrimSuffix(host, ".run") + "-api.run")
		}
	}

	add("")
	return out
}
