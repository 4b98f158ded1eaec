// Package browser drives an interactive browsing session in the terminal:
// it bootstraps the resource collections, then walks the navigation state
// machine with promptui menus until the user quits.
package browser

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/manifoldco/promptui"

	"github.com/django-nerd/folio/internal/cache"
	"github.com/django-nerd/folio/internal/content"
	"github.com/django-nerd/folio/internal/progress"
	"github.com/django-nerd/folio/internal/session"
)

// ErrQuit is returned by Run when the user chose to exit.
var ErrQuit = errors.New("quit")

// Browser holds one interactive session.
type Browser struct {
	svc   *content.Service
	cache *cache.Store // may be nil when caching is disabled

	state    session.State
	cols     *content.Collections
	projects []content.Item // results of the last confirmed tech fetch
	gallery  []content.Item // results of the last confirmed focus fetch
}

// New creates a Browser. cache may be nil.
func New(svc *content.Service, cache *cache.Store) *Browser {
	return &Browser{
		svc:   svc,
		cache: cache,
		state: session.NewState(),
	}
}

// Run performs the bootstrap and then loops over the navigation stages
// until the user quits. Only ErrQuit and prompt failures end the session;
// backend failures degrade or surface per-stage messages.
func (b *Browser) Run(ctx context.Context) error {
	b.bootstrap(ctx)

	for {
		if err := b.step(ctx); err != nil {
			if errors.Is(err, ErrQuit) {
				return nil
			}
			return err
		}
	}
}

// bootstrap loads the five collections, falling back to cached snapshots
// when nothing is reachable.
func (b *Browser) bootstrap(ctx context.Context) {
	reporter := progress.NewReporter()
	reporter.Start(5)
	b.cols = b.svc.Bootstrap(ctx, func(done, total int, name string) {
		reporter.Update(done, name)
	})
	reporter.Finish()

	if b.cols.Degraded {
		fmt.Printf("Note: some content could not be loaded (%v)\n", b.cols.FirstErr)
	}

	if b.cache == nil {
		return
	}
	if b.allEmpty() {
		b.restoreFromCache(ctx)
		return
	}
	b.saveToCache(ctx)
}

func (b *Browser) allEmpty() bool {
	return len(b.cols.Menu) == 0 && len(b.cols.Tech) == 0 && len(b.cols.Focus) == 0 &&
		len(b.cols.Reviews) == 0 && len(b.cols.Contacts) == 0
}

func (b *Browser) saveToCache(ctx context.Context) {
	for name, items := range map[string][]content.Item{
		"menu":     b.cols.Menu,
		"tech":     b.cols.Tech,
		"focus":    b.cols.Focus,
		"reviews":  b.cols.Reviews,
		"contacts": b.cols.Contacts,
	} {
		if len(items) == 0 {
			continue
		}
		if err := b.cache.Save(ctx, name, items); err != nil {
			log.Printf("browser: caching %s: %v", name, err)
		}
	}
}

func (b *Browser) restoreFromCache(ctx context.Context) {
	restored := false
	for name, dest := range map[string]*[]content.Item{
		"menu":     &b.cols.Menu,
		"tech":     &b.cols.Tech,
		"focus":    &b.cols.Focus,
		"reviews":  &b.cols.Reviews,
		"contacts": &b.cols.Contacts,
	} {
		items, fetchedAt, err := b.cache.Load(ctx, name)
		if err != nil {
			if !errors.Is(err, cache.ErrNoSnapshot) {
				log.Printf("browser: restoring %s: %v", name, err)
			}
			continue
		}
		*dest = items
		if !restored {
			fmt.Printf("Backend unreachable; showing cached content from %s\n",
				fetchedAt.Local().Format("2006-01-02 15:04"))
			restored = true
		}
	}
}

// apply routes an action through the state machine and executes any effect.
func (b *Browser) apply(ctx context.Context, a session.Action) {
	next, effect := session.Apply(b.state, a)
	b.state = next

	switch eff := effect.(type) {
	case session.FetchProjects:
		items, err := b.svc.Projects(ctx, eff.Tech)
		if err != nil {
			b.state, _ = session.Apply(b.state, session.FetchFailed{From: session.StageFrontendTech, Err: err})
			return
		}
		b.projects = items
		b.state, _ = session.Apply(b.state, session.FetchSucceeded{From: session.StageFrontendTech})
	case session.FetchGallery:
		items, err := b.svc.Gallery(ctx, eff.Focus)
		if err != nil {
			b.state, _ = session.Apply(b.state, session.FetchFailed{From: session.StageFocus, Err: err})
			return
		}
		b.gallery = items
		b.state, _ = session.Apply(b.state, session.FetchSucceeded{From: session.StageFocus})
	}
}

// choose shows a promptui menu of labels plus navigation entries and
// returns what the user picked.
func choose(label string, options []string) (string, error) {
	prompt := promptui.Select{
		Label: label,
		Items: options,
		Size:  12,
	}
	_, picked, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return "", ErrQuit
		}
		return "", fmt.Errorf("prompt: %w", err)
	}
	return picked, nil
}
