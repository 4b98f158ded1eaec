package browser

import (
	"context"
	"fmt"

	"github.com/django-nerd/folio/internal/content"
	"github.com/django-nerd/folio/internal/session"
)

const (
	navBack = "< Back"
	navMenu = "Menu"
	navQuit = "Quit"
)

// defaultMenu stands in when the backend's menu collection is unavailable,
// so the session always has somewhere to go.
var defaultMenu = []content.Item{
	{"key": session.ChoiceFrontend, "label": "Frontend"},
	{"key": session.ChoiceUIUX, "label": "UI/UX"},
	{"key": session.ChoiceReviews, "label": "Reviews"},
	{"key": session.ChoiceContact, "label": "About / Contact"},
}

// step renders the current stage, prompts once, and applies the resulting
// action.
func (b *Browser) step(ctx context.Context) error {
	switch b.state.Stage {
	case session.StageMenu:
		return b.stepMenu(ctx)
	case session.StageFrontendTech:
		return b.stepSelect(ctx, "Pick a technology", b.cols.Tech,
			func(name string) session.Action { return session.SelectTech{Name: name} })
	case session.StageFrontendProjects:
		return b.stepList(ctx, "Projects", b.projects)
	case session.StageFocus:
		return b.stepSelect(ctx, "Pick a design focus", b.cols.Focus,
			func(name string) session.Action { return session.SelectFocus{Name: name} })
	case session.StageGallery:
		return b.stepList(ctx, "Gallery", b.gallery)
	case session.StageReviews:
		return b.stepList(ctx, "Reviews", b.cols.Reviews)
	case session.StageContact:
		return b.stepList(ctx, "Contact", b.cols.Contacts)
	}
	return fmt.Errorf("unknown stage %q", b.state.Stage)
}

func (b *Browser) stepMenu(ctx context.Context) error {
	menu := b.cols.Menu
	if len(menu) == 0 {
		menu = defaultMenu
	}

	options := make([]string, 0, len(menu)+1)
	byLabel := make(map[string]string, len(menu))
	for _, item := range menu {
		label := item.Label()
		if label == "" {
			label = item["key"]
		}
		options = append(options, label)
		byLabel[label] = item["key"]
	}
	options = append(options, navQuit)

	picked, err := choose("Portfolio", options)
	if err != nil {
		return err
	}
	if picked == navQuit {
		return ErrQuit
	}
	b.apply(ctx, session.Choose{Key: byLabel[picked]})
	return nil
}

// stepSelect handles the two selection stages: picking an entry records the
// selection and immediately confirms it; the stage only advances if the
// filtered fetch succeeds.
func (b *Browser) stepSelect(ctx context.Context, label string, items []content.Item, record func(string) session.Action) error {
	if b.state.ErrMsg != "" {
		fmt.Printf("Error: %s (pick again to retry)\n", b.state.ErrMsg)
	}

	options := make([]string, 0, len(items)+2)
	for _, item := range items {
		if name := item.Label(); name != "" {
			options = append(options, name)
		}
	}
	options = append(options, navBack, navQuit)

	picked, err := choose(label, options)
	if err != nil {
		return err
	}
	switch picked {
	case navBack:
		b.apply(ctx, session.Back{})
	case navQuit:
		return ErrQuit
	default:
		b.apply(ctx, record(picked))
		b.apply(ctx, session.Confirm{})
	}
	return nil
}

// stepList prints a read-only collection and waits for a navigation choice.
func (b *Browser) stepList(ctx context.Context, title string, items []content.Item) error {
	fmt.Printf("\n%s\n", title)
	if len(items) == 0 {
		fmt.Println("  (nothing here)")
	}
	for _, item := range items {
		printItem(item)
	}
	fmt.Println()

	picked, err := choose(title, []string{navBack, navMenu, navQuit})
	if err != nil {
		return err
	}
	switch picked {
	case navBack:
		b.apply(ctx, session.Back{})
	case navMenu:
		b.apply(ctx, session.GoMenu{})
	case navQuit:
		return ErrQuit
	}
	return nil
}

func printItem(item content.Item) {
	label := item.Label()
	if label != "" {
		fmt.Printf("  - %s\n", label)
	} else {
		fmt.Println("  -")
	}
	for _, k := range []string{"author", "text", "summary", "description", "url", "value"} {
		if v := item[k]; v != "" && v != label {
			fmt.Printf("      %s\n", v)
		}
	}
}
