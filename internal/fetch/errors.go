package fetch

import "fmt"

// ExhaustedError reports that every candidate base URL failed for a single
// logical GET. It carries the last underlying failure, which is usually the
// most descriptive one (the fallback candidate is tried last).
type ExhaustedError struct {
	Path     string
	Attempts int
	Last     error
}

func (e *ExhaustedError) Error() string {
	if e.Last != nil {
		return fmt.Sprintf("all %d backend candidates failed for %s: %v", e.Attempts, e.Path, e.Last)
	}
	return fmt.Sprintf("all %d backend candidates failed for %s", e.Attempts, e.Path)
}

func (e *ExhaustedError) Unwrap() error { return e.Last }
