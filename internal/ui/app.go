package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"folio/internal/api"
	"folio/internal/config"
	"folio/internal/models"
	"folio/internal/ui/components"
	"folio/internal/ui/styles"
	"folio/internal/util"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

const (
	// Only the last search input inside this window takes effect.
	searchDebounce = 300 * time.Millisecond

	// Per-card delay of the staggered reveal after a re-render.
	revealStagger = 100 * time.Millisecond

	// Rows kept above an anchored section when jumping to it, so the
	// section heading clears the fixed header.
	headerOffset = 2

	chromeHeight = 6
)

// Page sections, in display order. Navigation links target these.
var sections = []string{"about", "projects", "contact"}

// Model represents the UI model
type Model struct {
	Viewport viewport.Model
	Spinner  spinner.Model
	Search   textinput.Model
	Cards    components.ProjectListModel

	State  models.State
	Reveal *models.RevealScheduler
	Theme  styles.Theme
	Config *config.Config
	Loader *api.Loader
	Logger *zap.Logger

	StatusMessage string
	IsLoading     bool
	Width         int
	Height        int
	Ready         bool

	searchSeq   int
	revealGen   int
	menuCursor  int
	sectionTops map[string]int
}

// NewModel creates a new UI model
func NewModel(cfg *config.Config, loader *api.Loader, logger *zap.Logger) Model {
	theme := styles.ThemeFor(cfg.ResolveInitialTheme())

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	search := textinput.New()
	search.Placeholder = "Search projects..."
	search.Prompt = "/ "
	search.CharLimit = 80

	if logger == nil {
		logger = zap.NewNop()
	}

	return Model{
		Spinner:       s,
		Search:        search,
		Cards:         components.NewProjectListModel(theme, 80),
		State:         models.NewState(theme.Name),
		Reveal:        models.NewRevealScheduler(models.DefaultRevealThreshold),
		Theme:         theme,
		Config:        cfg,
		Loader:        loader,
		Logger:        logger,
		StatusMessage: "Loading projects...",
		IsLoading:     true,
		sectionTops:   make(map[string]int),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Spinner.Tick, textinput.Blink, loadProjects(m.Loader))
}

// Update handles UI updates
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

		if !m.Ready {
			// First time initializing
			m.Viewport = viewport.New(msg.Width, msg.Height-chromeHeight)
			m.Ready = true
		} else {
			m.Viewport.Width = msg.Width
			m.Viewport.Height = msg.Height - chromeHeight
		}
		m.Cards.Width = msg.Width
		m.setContent()
		return m, nil

	case spinner.TickMsg:
		var spinnerCmd tea.Cmd
		m.Spinner, spinnerCmd = m.Spinner.Update(msg)
		cmds = append(cmds, spinnerCmd)

	case projectsLoadedMsg:
		m.IsLoading = false
		m.StatusMessage = fmt.Sprintf("Loaded %d projects", len(msg))
		return m.dispatch(models.ProjectsLoaded{Projects: msg})

	case searchDebouncedMsg:
		// A stale sequence number means a newer keystroke superseded
		// this timer; only the most recent input applies.
		if msg.seq != m.searchSeq {
			return m, nil
		}
		return m.dispatch(models.SetQuery{Text: m.Search.Value()})

	case revealTickMsg:
		if msg.gen != m.revealGen {
			return m, nil
		}
		more := m.Cards.RevealNext()
		m.setContent()
		if more {
			return m, m.revealCmd()
		}
		return m, nil
	}

	if m.Ready {
		var viewportCmd tea.Cmd
		m.Viewport, viewportCmd = m.Viewport.Update(msg)
		cmds = append(cmds, viewportCmd)
		m.checkReveals()
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.State.MenuOpen {
		return m.handleMenuKey(msg)
	}

	if m.Search.Focused() {
		return m.handleSearchKey(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "/":
		m.Search.Focus()
		return m, textinput.Blink
	case "t":
		return m.dispatch(models.ToggleTheme{})
	case "c":
		return m.dispatch(models.ClearFilters{})
	case "m":
		return m.dispatch(models.ToggleMenu{})
	case "tab":
		return m.dispatch(models.SetFilter{Tag: m.cycleCategory(1)})
	case "shift+tab":
		return m.dispatch(models.SetFilter{Tag: m.cycleCategory(-1)})
	}

	// Remaining keys scroll the page.
	var cmd tea.Cmd
	if m.Ready {
		m.Viewport, cmd = m.Viewport.Update(msg)
		m.checkReveals()
	}
	return m, cmd
}

func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.menuCursor > 0 {
			m.menuCursor--
		}
		return m, nil
	case "down", "j":
		if m.menuCursor < len(sections)-1 {
			m.menuCursor++
		}
		return m, nil
	case "enter":
		return m.dispatch(models.Navigate{Section: sections[m.menuCursor]})
	default:
		// Escape, the menu key itself, or anything outside the menu's
		// keyspace dismisses the overlay.
		return m.dispatch(models.CloseMenu{})
	}
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.Search.Blur()
		return m, nil
	}

	before := m.Search.Value()
	var cmd tea.Cmd
	m.Search, cmd = m.Search.Update(msg)
	if m.Search.Value() == before {
		return m, cmd
	}

	// Restart the debounce window: bump the sequence so timers from
	// earlier keystrokes are ignored when they fire.
	m.searchSeq++
	seq := m.searchSeq
	debounce := tea.Tick(searchDebounce, func(time.Time) tea.Msg {
		return searchDebouncedMsg{seq: seq}
	})
	return m, tea.Batch(cmd, debounce)
}

// dispatch runs the reducer and executes the effects it requests.
func (m Model) dispatch(e models.Event) (tea.Model, tea.Cmd) {
	next, effects := models.Reduce(m.State, e)
	m.State = next

	var cmds []tea.Cmd
	for _, eff := range effects {
		switch eff := eff.(type) {
		case models.Rerender:
			m.refresh()
			cmds = append(cmds, m.revealCmd())
		case models.ScrollTo:
			m.scrollTo(eff.Section)
		case models.ResetSearchInput:
			m.Search.Reset()
		case models.PersistTheme:
			m.Theme = styles.ThemeFor(eff.Theme)
			cmds = append(cmds, persistTheme(m.Config, eff.Theme, m.Logger))
		}
	}
	return m, tea.Batch(cmds...)
}

// refresh rebuilds the card list from the current state and restarts the
// staggered reveal. The filtered collection is recomputed on every state
// change, never cached across renders.
func (m *Model) refresh() {
	m.Cards.Theme = m.Theme
	m.Cards.Width = m.Width
	m.Cards.SetProjects(m.State.Filtered())
	m.revealGen++
	m.setContent()
}

func (m *Model) revealCmd() tea.Cmd {
	if len(m.Cards.Projects) == 0 {
		return nil
	}
	gen := m.revealGen
	return tea.Tick(revealStagger, func(time.Time) tea.Msg {
		return revealTickMsg{gen: gen}
	})
}

func (m *Model) scrollTo(section string) {
	top, ok := m.sectionTops[section]
	if !ok {
		return
	}
	offset := top - headerOffset
	if offset < 0 {
		offset = 0
	}
	m.Viewport.SetYOffset(offset)
	m.checkReveals()
}

// checkReveals feeds the current scroll window to the reveal scheduler and
// redraws when anything newly crossed the visibility threshold.
func (m *Model) checkReveals() {
	if !m.Ready {
		return
	}
	if newly := m.Reveal.Visible(m.Viewport.YOffset, m.Viewport.Height); len(newly) > 0 {
		m.setContent()
	}
}

// setContent rebuilds the page: about, projects, and contact sections
// stacked in a single scrollable viewport. Section line offsets feed both
// navigation jumps and the reveal scheduler.
func (m *Model) setContent() {
	if !m.Ready {
		return
	}

	var blocks []string
	line := 0
	for _, id := range sections {
		block := m.renderSection(id)
		height := lipgloss.Height(block)
		m.sectionTops[id] = line
		m.Reveal.Observe(id, line, height)
		line += height + 1
		blocks = append(blocks, block)
	}

	m.Viewport.SetContent(strings.Join(blocks, "\n"))
	m.checkReveals()
}

func (m *Model) renderSection(id string) string {
	heading := m.Theme.Section.Render("# " + titleCase(id))

	var body string
	switch id {
	case "about":
		body = m.Theme.Body.Render(
			"Software engineer. These are the projects I keep coming back to.\n" +
				"Filter with tab, search with /, t flips the theme.")
	case "projects":
		body = m.Cards.View()
	case "contact":
		body = m.Theme.Body.Render("hello@folio.dev  ·  github.com/folio  ·  @folio")
	}

	if !m.Reveal.Revealed(id) && id != "projects" {
		// Pending sections render dimmed until they scroll into view.
		body = m.Theme.Pending.Render(stripStyles(body))
	}

	return heading + "\n" + body
}

// stripStyles drops prior styling so the pending style applies cleanly,
// keeping line breaks so section heights stay stable across the transition.
func stripStyles(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = util.Sanitize(line)
	}
	return strings.Join(lines, "\n")
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// cycleCategory returns the category tag adjacent to the active one, in the
// order the tags first appear in the collection.
func (m Model) cycleCategory(step int) string {
	cats := models.Categories(m.State.Projects)
	idx := 0
	for i, c := range cats {
		if strings.EqualFold(c, m.State.Filter) {
			idx = i
			break
		}
	}
	idx = (idx + step + len(cats)) % len(cats)
	return cats[idx]
}

// View renders the UI
func (m Model) View() string {
	if !m.Ready {
		return "Initializing..."
	}

	titleBar := m.Theme.Title.Render("folio — terminal portfolio")
	searchBar := m.Search.View()
	categoryBar := m.renderCategoryBar()

	var status string
	if m.IsLoading {
		status = fmt.Sprintf("%s %s", m.Spinner.View(), m.StatusMessage)
	} else {
		status = m.StatusMessage
	}
	statusBar := m.Theme.Status.Render(status)

	main := m.Viewport.View()
	if m.State.MenuOpen {
		main = m.renderMenu()
	}

	help := m.Theme.Help.Render("/ search · tab filter · c clear · m menu · t theme · q quit")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleBar,
		searchBar,
		categoryBar,
		main,
		statusBar,
		help,
	)
}

// renderCategoryBar draws the tag controls with the single active selection
// highlighted.
func (m Model) renderCategoryBar() string {
	cats := models.Categories(m.State.Projects)
	parts := make([]string, 0, len(cats))
	for _, c := range cats {
		label := util.Sanitize(c)
		if strings.EqualFold(c, m.State.Filter) {
			parts = append(parts, m.Theme.TagActive.Render("["+label+"]"))
		} else {
			parts = append(parts, m.Theme.Tag.Render(label))
		}
	}
	return " " + strings.Join(parts, "  ")
}

func (m Model) renderMenu() string {
	var b strings.Builder
	b.WriteString(m.Theme.Section.Render("Navigate"))
	b.WriteString("\n\n")
	for i, id := range sections {
		cursor := "  "
		style := m.Theme.MenuItem
		if i == m.menuCursor {
			cursor = "> "
			style = m.Theme.MenuCur
		}
		b.WriteString(cursor + style.Render(titleCase(id)) + "\n")
	}

	menu := m.Theme.Menu.Render(b.String())
	return lipgloss.Place(m.Width, m.Viewport.Height, lipgloss.Center, lipgloss.Center, menu)
}

// Messages
type projectsLoadedMsg []models.Project
type searchDebouncedMsg struct{ seq int }
type revealTickMsg struct{ gen int }

// Commands
func loadProjects(loader *api.Loader) tea.Cmd {
	return func() tea.Msg {
		return projectsLoadedMsg(loader.Load(context.Background()))
	}
}

// persistTheme writes the preference in the background. Failure is logged
// and otherwise ignored; the session keeps the new theme either way.
func persistTheme(cfg *config.Config, theme string, logger *zap.Logger) tea.Cmd {
	return func() tea.Msg {
		cfg.Theme = theme
		path, err := config.Path()
		if err == nil {
			err = cfg.Save(path)
		}
		if err != nil {
			logger.Warn("theme preference not saved", zap.Error(err))
		}
		return nil
	}
}
