// Package content exposes the portfolio backend's resource collections
// through the resilient fetch client.
package content

import (
	"context"
	"net/url"
	"sync"

	"github.com/django-nerd/folio/internal/fetch"
)

// Service wraps the fetch client with one accessor per backend endpoint.
type Service struct {
	client *fetch.Client
}

// NewService creates a Service over the given fetch client.
func NewService(client *fetch.Client) *Service {
	return &Service{client: client}
}

// Menu returns the top-level menu entries.
func (s *Service) Menu(ctx context.Context) ([]Item, error) {
	return s.items(ctx, "/api/menu")
}

// Tech returns the front-end technology entries.
func (s *Service) Tech(ctx context.Context) ([]Item, error) {
	return s.items(ctx, "/api/frontend/tech")
}

// DesignFocus returns the UI/UX focus area entries.
func (s *Service) DesignFocus(ctx context.Context) ([]Item, error) {
	return s.items(ctx, "/api/design/focus")
}

// Reviews returns the review entries.
func (s *Service) Reviews(ctx context.Context) ([]Item, error) {
	return s.items(ctx, "/api/reviews")
}

// Contacts returns the contact entries.
func (s *Service) Contacts(ctx context.Context) ([]Item, error) {
	return s.items(ctx, "/api/contact")
}

// Projects returns the projects matching the selected technology.
func (s *Service) Projects(ctx context.Context, tech string) ([]Item, error) {
	var payload projectsPayload
	path := "/api/projects?tech=" + url.QueryEscape(tech)
	if err := s.client.GetJSON(ctx, path, &payload); err != nil {
		return nil, err
	}
	return payload.Projects, nil
}

// Gallery returns the gallery entries matching the selected design focus.
func (s *Service) Gallery(ctx context.Context, focus string) ([]Item, error) {
	return s.items(ctx, "/api/design/gallery?focus="+url.QueryEscape(focus))
}

func (s *Service) items(ctx context.Context, path string) ([]Item, error) {
	var payload itemsPayload
	if err := s.client.GetJSON(ctx, path, &payload); err != nil {
		return nil, err
	}
	return payload.Items, nil
}

// ProgressFunc is called after each bootstrap fetch settles.
type ProgressFunc func(done, total int, name string)

// Bootstrap loads the five session-start collections concurrently and waits
// for all of them to settle. A failed fetch degrades its collection to
// empty and marks the result Degraded; it never fails the bootstrap as a
// whole.
func (s *Service) Bootstrap(ctx context.Context, onProgress ProgressFunc) *Collections {
	cols := &Collections{}

	loads := []struct {
		name string
		dest *[]Item
		load func(context.Context) ([]Item, error)
	}{
		{"menu", &cols.Menu, s.Menu},
		{"tech", &cols.Tech, s.Tech},
		{"focus", &cols.Focus, s.DesignFocus},
		{"reviews", &cols.Reviews, s.Reviews},
		{"contacts", &cols.Contacts, s.Contacts},
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	done := 0
	for _, l := range loads {
		l := l
		wg.Add(1)
		go func() {
			defer wg.Done()
			items, err := l.load(ctx)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				cols.Degraded = true
				if cols.FirstErr == nil {
					cols.FirstErr = err
				}
				items = nil
			}
			if items == nil {
				items = []Item{}
			}
			*l.dest = items
			done++
			if onProgress != nil {
				onProgress(done, len(loads), l.name)
			}
		}()
	}
	wg.Wait()

	return cols
}
