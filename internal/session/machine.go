package session

// Action is a user gesture or a completed fetch outcome fed back into the
// machine.
type Action interface{ isAction() }

// Choose picks a top-level menu entry; valid only in the menu stage.
type Choose struct{ Key string }

// SelectTech records the chosen technology; valid only in frontend-tech.
type SelectTech struct{ Name string }

// SelectFocus records the chosen design focus; valid only in uiux-focus.
type SelectFocus struct{ Name string }

// Confirm commits the current selection and asks for its filtered fetch.
type Confirm struct{}

// Back steps one level up: projects to tech, gallery to focus, everything
// else to the menu.
type Back struct{}

// GoMenu jumps straight back to the menu from anywhere.
type GoMenu struct{}

// FetchSucceeded reports that the confirm fetch issued from stage From
// completed; the driver has the results in hand.
type FetchSucceeded struct{ From Stage }

// FetchFailed reports that the confirm fetch issued from stage From failed.
type FetchFailed struct {
	From Stage
	Err  error
}

func (Choose) isAction()         {}
func (SelectTech) isAction()     {}
func (SelectFocus) isAction()    {}
func (Confirm) isAction()        {}
func (Back) isAction()           {}
func (GoMenu) isAction()         {}
func (FetchSucceeded) isAction() {}
func (FetchFailed) isAction()    {}

// Effect is work the driver must perform after a transition. At most one
// effect is emitted per action.
type Effect interface{ isEffect() }

// FetchProjects asks the driver to load projects filtered by Tech, then
// feed FetchSucceeded or FetchFailed back in.
type FetchProjects struct{ Tech string }

// FetchGallery asks the driver to load gallery entries filtered by Focus.
type FetchGallery struct{ Focus string }

func (FetchProjects) isEffect() {}
func (FetchGallery) isEffect()  {}

// Apply computes the transition for one action. Unrecognized or guarded-out
// actions leave the state unchanged; confirm fetches only change the stage
// once their outcome arrives as a FetchSucceeded action.
func Apply(s State, a Action) (State, Effect) {
	switch a := a.(type) {
	case Choose:
		if s.Stage != StageMenu {
			return s, nil
		}
		switch a.Key {
		case ChoiceFrontend:
			return leave(s, StageFrontendTech), nil
		case ChoiceUIUX:
			return leave(s, StageFocus), nil
		case ChoiceReviews:
			return leave(s, StageReviews), nil
		case ChoiceContact:
			return leave(s, StageContact), nil
		}
		return s, nil

	case SelectTech:
		if s.Stage != StageFrontendTech {
			return s, nil
		}
		s.Tech = a.Name
		return s, nil

	case SelectFocus:
		if s.Stage != StageFocus {
			return s, nil
		}
		s.Focus = a.Name
		return s, nil

	case Confirm:
		if s.Pending != "" {
			// A confirm fetch is already in flight; ignore the repeat.
			return s, nil
		}
		switch s.Stage {
		case StageFrontendTech:
			if s.Tech == "" {
				return s, nil
			}
			s.Pending = StageFrontendTech
			return s, FetchProjects{Tech: s.Tech}
		case StageFocus:
			if s.Focus == "" {
				return s, nil
			}
			s.Pending = StageFocus
			return s, FetchGallery{Focus: s.Focus}
		}
		return s, nil

	case FetchSucceeded:
		if s.Pending != a.From {
			return s, nil
		}
		s.Pending = ""
		if s.Stage != a.From {
			// The user navigated away while the fetch was in flight; the
			// result must not be applied to a stale stage.
			return s, nil
		}
		s.ErrMsg = ""
		switch a.From {
		case StageFrontendTech:
			s.Stage = StageFrontendProjects
		case StageFocus:
			s.Stage = StageGallery
		}
		return s, nil

	case FetchFailed:
		if s.Pending != a.From {
			return s, nil
		}
		s.Pending = ""
		if s.Stage == a.From && a.Err != nil {
			s.ErrMsg = a.Err.Error()
		}
		return s, nil

	case Back:
		switch s.Stage {
		case StageFrontendProjects:
			return leave(s, StageFrontendTech), nil
		case StageGallery:
			return leave(s, StageFocus), nil
		case StageFrontendTech, StageFocus, StageReviews, StageContact:
			return leave(s, StageMenu), nil
		}
		return s, nil

	case GoMenu:
		if s.Stage == StageMenu {
			return s, nil
		}
		return leave(s, StageMenu), nil
	}

	return s, nil
}

// leave moves to a new stage, abandoning any in-flight fetch and the old
// stage's error message.
func leave(s State, to Stage) State {
	s.Stage = to
	s.Pending = ""
	s.ErrMsg = ""
	return s
}
