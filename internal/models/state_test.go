package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetFilterRerenders(t *testing.T) {
	s := NewState(ThemeDark)
	next, effects := Reduce(s, SetFilter{Tag: "Go"})

	assert.Equal(t, "Go", next.Filter)
	require.Len(t, effects, 1)
	assert.IsType(t, Rerender{}, effects[0])
}

func TestSetQueryRerenders(t *testing.T) {
	s := NewState(ThemeDark)
	next, effects := Reduce(s, SetQuery{Text: "chat"})

	assert.Equal(t, "chat", next.Query)
	require.Len(t, effects, 1)
	assert.IsType(t, Rerender{}, effects[0])
}

func TestClearFiltersResetsEverythingRegardlessOfPriorState(t *testing.T) {
	s := State{
		Projects: sampleProjects(),
		Filter:   "Rust",
		Query:    "terminal",
		MenuOpen: true,
		Theme:    ThemeLight,
	}

	next, effects := Reduce(s, ClearFilters{})

	assert.Equal(t, AllCategories, next.Filter)
	assert.Empty(t, next.Query)
	// Clearing touches only the filter state, not the menu or theme.
	assert.True(t, next.MenuOpen)
	assert.Equal(t, ThemeLight, next.Theme)

	require.Len(t, effects, 2)
	assert.IsType(t, ResetSearchInput{}, effects[0])
	assert.IsType(t, Rerender{}, effects[1])
}

func TestMenuToggleAndClose(t *testing.T) {
	s := NewState(ThemeDark)

	s, _ = Reduce(s, ToggleMenu{})
	assert.True(t, s.MenuOpen)

	s, _ = Reduce(s, ToggleMenu{})
	assert.False(t, s.MenuOpen)

	s, _ = Reduce(s, ToggleMenu{})
	s, _ = Reduce(s, CloseMenu{})
	assert.False(t, s.MenuOpen)

	// Closing an already-closed menu is a no-op, not a toggle.
	s, _ = Reduce(s, CloseMenu{})
	assert.False(t, s.MenuOpen)
}

func TestNavigateClosesMenuAndScrolls(t *testing.T) {
	s := NewState(ThemeDark)
	s.MenuOpen = true

	next, effects := Reduce(s, Navigate{Section: "contact"})

	assert.False(t, next.MenuOpen)
	require.Len(t, effects, 1)
	scroll, ok := effects[0].(ScrollTo)
	require.True(t, ok)
	assert.Equal(t, "contact", scroll.Section)
}

func TestToggleThemeFlipsAndPersists(t *testing.T) {
	s := NewState(ThemeDark)

	next, effects := Reduce(s, ToggleTheme{})
	assert.Equal(t, ThemeLight, next.Theme)
	require.Len(t, effects, 2)
	persist, ok := effects[0].(PersistTheme)
	require.True(t, ok)
	assert.Equal(t, ThemeLight, persist.Theme)
	assert.IsType(t, Rerender{}, effects[1])

	back, _ := Reduce(next, ToggleTheme{})
	assert.Equal(t, ThemeDark, back.Theme)
}

func TestProjectsLoadedPopulatesCollection(t *testing.T) {
	s := NewState(ThemeDark)
	projects := sampleProjects()

	next, effects := Reduce(s, ProjectsLoaded{Projects: projects})

	assert.Equal(t, projects, next.Projects)
	require.Len(t, effects, 1)
	assert.IsType(t, Rerender{}, effects[0])
}

func TestFilteredAlwaysReflectsCurrentState(t *testing.T) {
	s := NewState(ThemeDark)
	s, _ = Reduce(s, ProjectsLoaded{Projects: sampleProjects()})
	s, _ = Reduce(s, SetFilter{Tag: "react"})
	s, _ = Reduce(s, SetQuery{Text: "habit"})

	got := s.Filtered()
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	s, _ = Reduce(s, ClearFilters{})
	assert.Equal(t, s.Projects, s.Filtered())
}
