package models

// ThemeLight and ThemeDark are the two persisted theme values.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// State holds everything the browse view needs to render. Exactly one State
// value exists per session; it is owned by the application model and handed
// to the filter engine and the renderer per call. No component keeps a
// reference across renders.
type State struct {
	Projects []Project // Full loaded collection, set once, never mutated
	Filter   string    // Active category, or AllCategories
	Query    string    // Current (debounce-settled) search query
	MenuOpen bool      // Navigation menu overlay
	Theme    string    // ThemeLight or ThemeDark
}

// NewState returns the initial state for a session.
func NewState(theme string) State {
	return State{Filter: AllCategories, Theme: theme}
}

// Filtered applies the filter engine to the current state.
func (s State) Filtered() []Project {
	return FilterProjects(s.Projects, s.Filter, s.Query)
}

// Event is a user or system input handled by Reduce.
type Event interface{ isEvent() }

// SetFilter selects a category tag as the single active filter.
type SetFilter struct{ Tag string }

// SetQuery applies a settled search query. Debouncing happens upstream: of N
// rapid inputs inside the delay window, only the last becomes a SetQuery.
type SetQuery struct{ Text string }

// ClearFilters resets the category to AllCategories and the query to empty.
type ClearFilters struct{}

// ToggleMenu flips the navigation menu overlay.
type ToggleMenu struct{}

// CloseMenu dismisses the navigation menu (Escape, or input outside of it).
type CloseMenu struct{}

// Navigate activates a navigation link to an in-page section.
type Navigate struct{ Section string }

// ToggleTheme switches between the light and dark themes.
type ToggleTheme struct{}

// ProjectsLoaded delivers the one-shot load result.
type ProjectsLoaded struct{ Projects []Project }

func (SetFilter) isEvent()      {}
func (SetQuery) isEvent()       {}
func (ClearFilters) isEvent()   {}
func (ToggleMenu) isEvent()     {}
func (CloseMenu) isEvent()      {}
func (Navigate) isEvent()       {}
func (ToggleTheme) isEvent()    {}
func (ProjectsLoaded) isEvent() {}

// Effect is a side effect requested by Reduce and executed by the caller.
// The reducer itself never blocks and never touches the terminal, the
// network, or the config file.
type Effect interface{ isEffect() }

// Rerender asks the view to rebuild the project cards from the new state.
type Rerender struct{}

// ScrollTo asks the view to scroll the page to a section anchor, minus the
// fixed header offset.
type ScrollTo struct{ Section string }

// ResetSearchInput asks the view to clear the search box display.
type ResetSearchInput struct{}

// PersistTheme asks for the theme preference to be written out. Fire and
// forget: a failed write is logged, never surfaced.
type PersistTheme struct{ Theme string }

func (Rerender) isEffect()         {}
func (ScrollTo) isEffect()         {}
func (ResetSearchInput) isEffect() {}
func (PersistTheme) isEffect()     {}

// Reduce is the interaction controller: a pure transition function from
// (state, event) to (state, effects). Every state change that affects the
// visible card list carries a Rerender effect, so the rendered list always
// equals FilterProjects(state.Projects, state.Filter, state.Query).
func Reduce(s State, e Event) (State, []Effect) {
	switch e := e.(type) {
	case SetFilter:
		s.Filter = e.Tag
		return s, []Effect{Rerender{}}

	case SetQuery:
		s.Query = e.Text
		return s, []Effect{Rerender{}}

	case ClearFilters:
		s.Filter = AllCategories
		s.Query = ""
		return s, []Effect{ResetSearchInput{}, Rerender{}}

	case ToggleMenu:
		s.MenuOpen = !s.MenuOpen
		return s, nil

	case CloseMenu:
		s.MenuOpen = false
		return s, nil

	case Navigate:
		// Activating a link always dismisses the menu before scrolling.
		s.MenuOpen = false
		return s, []Effect{ScrollTo{Section: e.Section}}

	case ToggleTheme:
		if s.Theme == ThemeDark {
			s.Theme = ThemeLight
		} else {
			s.Theme = ThemeDark
		}
		return s, []Effect{PersistTheme{Theme: s.Theme}, Rerender{}}

	case ProjectsLoaded:
		s.Projects = e.Projects
		return s, []Effect{Rerender{}}
	}

	return s, nil
}
