package content

// Item is one entry of a resource collection. The backend controls the
// shape; the client treats every field as an opaque string and only picks
// out the keys it happens to display.
type Item map[string]string

// Label returns the friendliest display string an item offers.
func (i Item) Label() string {
	for _, k := range []string{"label", "title", "name"} {
		if v := i[k]; v != "" {
			return v
		}
	}
	return ""
}

// Collections holds everything loaded during bootstrap. Collections that
// failed to load are empty, never nil checks required by callers.
type Collections struct {
	Menu     []Item
	Tech     []Item
	Focus    []Item
	Reviews  []Item
	Contacts []Item

	// Degraded is set when any of the five bootstrap fetches failed. The
	// session surfaces a single notice; individual collections stay usable.
	Degraded bool
	// FirstErr is the first failure observed, for the notice text.
	FirstErr error
}

// itemsPayload matches the common `{"items": [...]}` response envelope.
type itemsPayload struct {
	Items []Item `json:"items"`
}

// projectsPayload matches the `{"projects": [...]}` envelope of the
// filtered projects endpoint.
type projectsPayload struct {
	Projects []Item `json:"projects"`
}
