package components

import (
	"testing"

	"folio/internal/models"
	"folio/internal/ui/styles"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewEscapesUntrustedFields(t *testing.T) {
	m := NewProjectListModel(styles.DarkTheme(), 80)
	m.SetProjects([]models.Project{
		{ID: "1", Title: "Evil\x1b[2Jtitle", Short: "desc", Stack: []string{"Go"}},
	})
	m.RevealNext()

	view := m.View()
	assert.NotContains(t, view, "\x1b[2J")
	assert.Contains(t, view, "Eviltitle")
}

func TestViewShowsNoResultsWhenEmpty(t *testing.T) {
	m := NewProjectListModel(styles.DarkTheme(), 80)
	m.SetProjects(nil)
	assert.Contains(t, m.View(), "No projects match")
}

func TestRevealNextAdvancesInOrder(t *testing.T) {
	m := NewProjectListModel(styles.DarkTheme(), 80)
	m.SetProjects([]models.Project{
		{ID: "1", Title: "First", Stack: []string{"Go"}},
		{ID: "2", Title: "Second", Stack: []string{"Rust"}},
	})
	require.Equal(t, 0, m.Visible)

	assert.True(t, m.RevealNext())
	assert.Equal(t, 1, m.Visible)
	assert.False(t, m.RevealNext())
	assert.Equal(t, 2, m.Visible)

	// Fully revealed: further ticks are no-ops.
	assert.False(t, m.RevealNext())
	assert.Equal(t, 2, m.Visible)
}

func TestSetProjectsRestartsReveal(t *testing.T) {
	m := NewProjectListModel(styles.DarkTheme(), 80)
	m.SetProjects([]models.Project{{ID: "1", Title: "First", Stack: []string{"Go"}}})
	m.RevealNext()
	require.Equal(t, 1, m.Visible)

	// A re-render (filter change) restarts the stagger from zero.
	m.SetProjects([]models.Project{{ID: "2", Title: "Second", Stack: []string{"Rust"}}})
	assert.Equal(t, 0, m.Visible)
}
