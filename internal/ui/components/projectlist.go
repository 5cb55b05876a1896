package components

import (
	"fmt"
	"strings"

	"folio/internal/models"
	"folio/internal/ui/styles"
	"folio/internal/util"

	"github.com/charmbracelet/lipgloss"
)

// ProjectListModel renders the filtered project collection as a column of
// cards. Cards past the Visible count render as dimmed placeholders so the
// staggered reveal can fade them in one by one.
type ProjectListModel struct {
	Projects []models.Project
	Visible  int
	Width    int
	Theme    styles.Theme
}

// NewProjectListModel creates a new project list model
func NewProjectListModel(theme styles.Theme, width int) ProjectListModel {
	return ProjectListModel{Theme: theme, Width: width}
}

// SetProjects replaces the rendered projects and restarts the reveal
// sequence (no card visible yet).
func (m *ProjectListModel) SetProjects(projects []models.Project) {
	m.Projects = projects
	m.Visible = 0
}

// RevealNext marks one more card visible, in sequence order. It reports
// whether any card is still hidden afterwards.
func (m *ProjectListModel) RevealNext() bool {
	if m.Visible < len(m.Projects) {
		m.Visible++
	}
	return m.Visible < len(m.Projects)
}

// View renders the cards, or the no-results indicator when the filtered
// collection is empty.
func (m ProjectListModel) View() string {
	if len(m.Projects) == 0 {
		return m.Theme.NoResults.Render("No projects match your filters. Press c to clear them.")
	}

	cards := make([]string, 0, len(m.Projects))
	for i, p := range m.Projects {
		if i < m.Visible {
			cards = append(cards, m.renderCard(p))
		} else {
			cards = append(cards, m.renderPlaceholder(p))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// renderCard draws one project. Every field is sanitized first: the data
// file is external input and must not be able to emit escape sequences.
func (m ProjectListModel) renderCard(p models.Project) string {
	width := m.cardWidth()

	var b strings.Builder
	b.WriteString(m.Theme.CardTitle.Render(util.Sanitize(p.Title)))
	b.WriteString("\n")
	b.WriteString(m.Theme.CardDesc.Render(util.Truncate(util.Sanitize(p.Short), width*2)))
	b.WriteString("\n")
	b.WriteString(m.Theme.Tag.Render(util.JoinTags(p.Stack)))

	var links []string
	if p.Demo != "" {
		links = append(links, fmt.Sprintf("demo: %s", util.Sanitize(p.Demo)))
	}
	if p.Repo != "" {
		links = append(links, fmt.Sprintf("repo: %s", util.Sanitize(p.Repo)))
	}
	if p.Metrics != "" {
		links = append(links, util.Sanitize(p.Metrics))
	}
	if len(links) > 0 {
		b.WriteString("\n")
		b.WriteString(m.Theme.CardMeta.Render(strings.Join(links, "  ")))
	}

	return m.Theme.Card.Width(width).Render(b.String())
}

func (m ProjectListModel) renderPlaceholder(p models.Project) string {
	width := m.cardWidth()
	return m.Theme.Card.Width(width).Render(
		m.Theme.Pending.Render(util.Sanitize(p.Title)))
}

func (m ProjectListModel) cardWidth() int {
	width := m.Width - 4
	if width < 20 {
		width = 20
	}
	return width
}
