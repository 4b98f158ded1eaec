package browser

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/django-nerd/folio/internal/cache"
	"github.com/django-nerd/folio/internal/content"
	"github.com/django-nerd/folio/internal/fetch"
	"github.com/django-nerd/folio/internal/session"
)

func testService(t *testing.T, up bool) *content.Service {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/menu", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[{"key":"frontend","label":"Frontend"}]}`))
	})
	mux.HandleFunc("/api/frontend/tech", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[{"name":"React"}]}`))
	})
	mux.HandleFunc("/api/design/focus", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[{"name":"Mobile"}]}`))
	})
	mux.HandleFunc("/api/reviews", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[]}`))
	})
	mux.HandleFunc("/api/contact", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[]}`))
	})
	mux.HandleFunc("/api/projects", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("tech") == "React" {
			w.Write([]byte(`{"projects":[{"title":"X"}]}`))
			return
		}
		w.Write([]byte(`{"projects":[]}`))
	})
	srv := httptest.NewServer(mux)
	if !up {
		srv.Close()
	} else {
		t.Cleanup(srv.Close)
	}
	client := fetch.New(fetch.StaticCandidates{srv.URL}, "", time.Second)
	return content.NewService(client)
}

func TestApplyRunsConfirmFetch(t *testing.T) {
	b := New(testService(t, true), nil)
	b.cols = &content.Collections{}
	ctx := context.Background()

	b.apply(ctx, session.Choose{Key: session.ChoiceFrontend})
	b.apply(ctx, session.SelectTech{Name: "React"})
	b.apply(ctx, session.Confirm{})

	if b.state.Stage != session.StageFrontendProjects {
		t.Errorf("stage: got %q, want frontend-projects", b.state.Stage)
	}
	if len(b.projects) != 1 || b.projects[0]["title"] != "X" {
		t.Errorf("projects: %+v", b.projects)
	}
	if b.state.ErrMsg != "" {
		t.Errorf("unexpected error message %q", b.state.ErrMsg)
	}
}

func TestApplyConfirmFailureStaysInStage(t *testing.T) {
	b := New(testService(t, false), nil)
	b.cols = &content.Collections{}
	ctx := context.Background()

	b.apply(ctx, session.Choose{Key: session.ChoiceFrontend})
	b.apply(ctx, session.SelectTech{Name: "React"})
	b.apply(ctx, session.Confirm{})

	if b.state.Stage != session.StageFrontendTech {
		t.Errorf("stage: got %q, want frontend-tech", b.state.Stage)
	}
	if b.state.ErrMsg == "" {
		t.Error("expected a stage-scoped error message")
	}
}

func TestBootstrapSavesAndRestoresSnapshots(t *testing.T) {
	store, err := cache.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer store.Close()
	ctx := context.Background()

	// Healthy backend: bootstrap populates the cache.
	b := New(testService(t, true), store)
	b.bootstrap(ctx)
	if b.cols.Degraded {
		t.Fatalf("unexpected degraded bootstrap: %v", b.cols.FirstErr)
	}
	if items, _, err := store.Load(ctx, "menu"); err != nil || len(items) != 1 {
		t.Fatalf("menu snapshot: items=%v err=%v", items, err)
	}

	// Dead backend: bootstrap falls back to the cached snapshots.
	b2 := New(testService(t, false), store)
	b2.bootstrap(ctx)
	if !b2.cols.Degraded {
		t.Error("expected degraded flag with dead backend")
	}
	if len(b2.cols.Menu) != 1 || b2.cols.Menu[0]["label"] != "Frontend" {
		t.Errorf("menu not restored from cache: %+v", b2.cols.Menu)
	}
}
