// Package session holds the navigation state machine for a browsing
// session: which stage is on screen, which selections are pending, and how
// user actions move between stages.
//
// Transitions are pure: Apply takes the old state and an action and returns
// the new state plus at most one effect for the driver to execute. Fetch
// outcomes come back in as actions, so the machine itself never touches the
// network and any front end can drive it.
package session

// Stage identifies the logical screen currently displayed. Exactly one
// stage is current at any time; StageMenu is initial and always reachable.
type Stage string

const (
	StageMenu             Stage = "menu"
	StageFrontendTech     Stage = "frontend-tech"
	StageFrontendProjects Stage = "frontend-projects"
	StageFocus            Stage = "uiux-focus"
	StageGallery          Stage = "uiux-gallery"
	StageReviews          Stage = "reviews"
	StageContact          Stage = "contact"
)

// Menu entry keys understood by the Choose action.
const (
	ChoiceFrontend = "frontend"
	ChoiceUIUX     = "uiux"
	ChoiceReviews  = "reviews"
	ChoiceContact  = "contact"
)

// State is the session-scoped navigation state. Selections persist across
// stage changes within the session; they only drive fetches from their own
// stage family.
type State struct {
	Stage Stage
	Tech  string // selected technology, set in frontend-tech
	Focus string // selected design focus, set in uiux-focus

	// Pending names the stage whose confirm fetch is in flight. While set,
	// further confirms are ignored and results for other stages discarded.
	Pending Stage

	// ErrMsg is the stage-scoped error from the last failed confirm fetch,
	// cleared on retry success or when leaving the stage.
	ErrMsg string
}

// NewState returns the initial session state.
func NewState() State {
	return State{Stage: StageMenu}
}
