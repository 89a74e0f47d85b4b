// Package tui is the terminal surface over the gallery and workspace
// stores. It owns no domain state: every read goes through store views and
// every write through store operations.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ewilde/lumen/internal/domain"
	"github.com/ewilde/lumen/internal/gallery"
	"github.com/ewilde/lumen/internal/search"
	"github.com/ewilde/lumen/internal/tui/components"
	"github.com/ewilde/lumen/internal/tui/styles"
	"github.com/ewilde/lumen/internal/workspace"
)

// viewState identifies what the main area is showing
type viewState int

const (
	viewBrowsing viewState = iota
	viewWorkspace
	viewFiltering
)

const (
	sidebarWidth      = 22
	searchResultLimit = 10
)

// Model is the main Bubble Tea model for the application
type Model struct {
	gallery   *gallery.Store
	workspace *workspace.Store
	keys      KeyMap

	sidebar      *components.NavSidebar
	grid         *components.CollectionGrid
	panel        *components.WorkspacePanel
	filter       textinput.Model
	index        *search.Index
	globalSearch components.GlobalSearch
	state        viewState
	lastError    string

	// Cursor into the open collection's photo list (workspace photos tab)
	photoCursor int
	openID      string // ID of the collection open in the workspace

	width  int
	height int
	ready  bool
}

// NewModel wires the TUI to its stores
func NewModel(galleryStore *gallery.Store, workspaceStore *workspace.Store, gridColumns int) Model {
	filter := textinput.New()
	filter.Placeholder = "Filter collections"
	filter.CharLimit = 64

	return Model{
		gallery:      galleryStore,
		workspace:    workspaceStore,
		keys:         DefaultKeyMap(),
		sidebar:      components.NewNavSidebar(),
		grid:         components.NewCollectionGrid(gridColumns),
		panel:        components.NewWorkspacePanel(workspaceStore),
		filter:       filter,
		index:        search.NewIndex(nil),
		globalSearch: components.NewGlobalSearch(),
	}
}

// Init kicks off the initial fetches
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		FetchCollectionsCmd(m.gallery),
		FetchPhotosCmd(m.gallery),
	)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.globalSearch.SetSize(msg.Width, msg.Height)
		m.layout()
		return m, nil

	case PhotosFetchedMsg, CollectionsFetchedMsg:
		m.lastError = m.gallery.Err()
		m.grid.SetCollections(m.gallery.Collections())
		m.index.Rebuild(m.gallery.Collections(), m.gallery.Photos())
		return m, nil

	case StarToggledMsg, CollectionDeletedMsg, CollectionCreatedMsg:
		m.grid.SetCollections(m.gallery.Collections())
		m.index.Rebuild(m.gallery.Collections(), m.gallery.Photos())
		return m, nil

	case ErrMsg:
		m.lastError = msg.Error()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.globalSearch.IsVisible() {
		return m.handleGlobalSearchKey(msg)
	}
	if m.state == viewFiltering {
		return m.handleFilterKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Filter):
		if m.state == viewBrowsing {
			m.state = viewFiltering
			m.filter.Focus()
			return m, textinput.Blink
		}

	case key.Matches(msg, m.keys.GlobalSearch):
		if m.state != viewWorkspace {
			m.globalSearch.Show()
			m.globalSearch.SetSize(m.width, m.height)
			return m, m.globalSearch.Init()
		}

	case key.Matches(msg, m.keys.Refresh):
		return m, tea.Batch(
			FetchCollectionsCmd(m.gallery),
			FetchPhotosCmd(m.gallery),
		)

	case key.Matches(msg, m.keys.ToggleSidebar):
		if m.state == viewBrowsing {
			m.sidebar.Toggle()
			m.layout()
		}
	}

	if m.state == viewWorkspace {
		return m.handleWorkspaceKey(msg)
	}
	return m.handleBrowseKey(msg)
}

func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.state = viewBrowsing
		m.filter.Blur()
		m.filter.SetValue("")
		m.grid.SetFilter("")
		return m, nil
	case key.Matches(msg, m.keys.Enter):
		m.state = viewBrowsing
		m.filter.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.grid.SetFilter(m.filter.Value())
	return m, cmd
}

func (m Model) handleGlobalSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var selected bool
	m.globalSearch, cmd, selected = m.globalSearch.Update(msg)

	if m.globalSearch.QueryChanged() {
		m.globalSearch.SetResults(m.index.Query(m.globalSearch.Query(), searchResultLimit))
	}

	if selected {
		if result := m.globalSearch.Selected(); result != nil {
			m.globalSearch.Hide()
			m.jumpToResult(*result)
		}
	}
	return m, cmd
}

// jumpToResult navigates to a ranked search hit: collections open in the
// workspace, photos open their owning collection's workspace with the
// cursor on the photo. An unassigned photo has nowhere to jump to.
func (m *Model) jumpToResult(r search.Result) {
	switch r.Kind {
	case search.KindCollection:
		if c, ok := m.gallery.CollectionByID(r.ID); ok {
			m.openWorkspace(c)
		}
	case search.KindPhoto:
		photo, ok := m.gallery.PhotoByID(r.ID)
		if !ok || photo.CollectionID == "" {
			return
		}
		c, ok := m.gallery.CollectionByID(photo.CollectionID)
		if !ok {
			return
		}
		m.openWorkspace(c)
		for i, p := range m.gallery.PhotosByCollection(c.ID) {
			if p.ID == r.ID {
				m.photoCursor = i
				break
			}
		}
	}
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.grid.MoveUp()
	case key.Matches(msg, m.keys.Down):
		m.grid.MoveDown()
	case key.Matches(msg, m.keys.Left):
		m.grid.MoveLeft()
	case key.Matches(msg, m.keys.Right):
		m.grid.MoveRight()

	case key.Matches(msg, m.keys.Star):
		if c, ok := m.grid.Current(); ok {
			return m, ToggleCollectionStarCmd(m.gallery, c.ID)
		}

	case key.Matches(msg, m.keys.Delete):
		if c, ok := m.grid.Current(); ok {
			return m, DeleteCollectionCmd(m.gallery, c.ID)
		}

	case key.Matches(msg, m.keys.Enter):
		if c, ok := m.grid.Current(); ok {
			m.openWorkspace(c)
		}
	}
	return m, nil
}

// openWorkspace enters the collection workspace: load the collection's
// sections, then run the coordination handshake that collapses the main
// sidebar.
func (m *Model) openWorkspace(c domain.Collection) {
	m.workspace.LoadSectionsForCollection(c.ID)
	m.workspace.InitCoordination(m.sidebar)
	m.panel.SetCollection(c)
	m.openID = c.ID
	m.photoCursor = 0
	m.state = viewWorkspace
	m.layout()
}

// closeWorkspace leaves the workspace and restores the main sidebar to its
// saved state.
func (m *Model) closeWorkspace() {
	m.workspace.RestoreMainSidebar(m.sidebar)
	m.state = viewBrowsing
	m.openID = ""
	m.layout()
}

func (m Model) handleWorkspaceKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	photos := m.gallery.PhotosByCollection(m.openID)

	switch {
	case key.Matches(msg, m.keys.Back):
		m.closeWorkspace()

	case key.Matches(msg, m.keys.NextTab):
		m.workspace.SetTab(nextTab(m.workspace.ActiveTab()))

	case key.Matches(msg, m.keys.Up):
		if m.photoCursor > 0 {
			m.photoCursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.photoCursor < len(photos)-1 {
			m.photoCursor++
		}

	case key.Matches(msg, m.keys.Select):
		if m.photoCursor < len(photos) {
			m.gallery.TogglePhotoSelection(photos[m.photoCursor].ID)
		}

	case key.Matches(msg, m.keys.SelectAll):
		m.gallery.SelectAll()

	case key.Matches(msg, m.keys.ClearSelection):
		m.gallery.ClearSelection()

	case key.Matches(msg, m.keys.Star):
		if m.photoCursor < len(photos) {
			return m, TogglePhotoStarCmd(m.gallery, photos[m.photoCursor].ID)
		}
	}
	return m, nil
}

func nextTab(current domain.WorkspaceTab) domain.WorkspaceTab {
	tabs := domain.Tabs()
	for i, tab := range tabs {
		if tab == current {
			return tabs[(i+1)%len(tabs)]
		}
	}
	return tabs[0]
}

func (m *Model) layout() {
	contentHeight := m.height - 4 // Header + footer chrome
	if contentHeight < 4 {
		contentHeight = 4
	}

	mainWidth := m.width
	if m.sidebar.IsOpen() {
		mainWidth -= sidebarWidth
	}
	if m.state == viewWorkspace && m.workspace.IsOpen() {
		mainWidth = m.width / 2
		m.panel.SetSize(m.width-mainWidth-2, contentHeight)
	}

	m.sidebar.SetSize(sidebarWidth-2, contentHeight)
	m.grid.SetSize(mainWidth-2, contentHeight)
}

// View renders the application
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.globalSearch.IsVisible() {
		return m.globalSearch.View()
	}

	header := m.headerView()
	footer := m.footerView()

	var main string
	switch m.state {
	case viewWorkspace:
		main = lipgloss.JoinHorizontal(lipgloss.Top, m.photoListView(), m.panel.View())
	default:
		main = m.grid.View()
	}

	columns := []string{}
	if m.sidebar.IsOpen() {
		columns = append(columns, m.sidebar.View())
	}
	columns = append(columns, main)

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.JoinHorizontal(lipgloss.Top, columns...),
		footer,
	)
}

func (m Model) headerView() string {
	stats := m.gallery.Stats()
	line := fmt.Sprintf("%d collections · %d photos · %d starred · %s",
		stats.TotalCollections, stats.TotalPhotos, stats.StarredPhotos,
		domain.FormatStorage(stats.StorageUsed))

	header := styles.SubtitleStyle.Render(line)
	if m.state == viewFiltering {
		header = header + "  " + m.filter.View()
	}
	if m.lastError != "" {
		header = header + "  " + styles.ErrorStyle.Render(m.lastError)
	}
	return header
}

func (m Model) footerView() string {
	var hints []string
	switch m.state {
	case viewWorkspace:
		hints = []string{"tab: switch tab", "space: select", "a: select all", "c: clear", "s: star", "esc: back"}
	case viewFiltering:
		hints = []string{"enter: apply", "esc: cancel"}
	default:
		hints = []string{"enter: open", "/: filter", "f: search", "s: star", "d: delete", "r: refresh", "b: sidebar", "q: quit"}
	}
	if n := m.gallery.SelectionCount(); n > 0 {
		hints = append(hints, fmt.Sprintf("%d selected", n))
	}
	return styles.DimStyle.Render(strings.Join(hints, "  ·  "))
}

func (m Model) photoListView() string {
	photos := m.gallery.PhotosByCollection(m.openID)
	if len(photos) == 0 {
		return styles.DimStyle.Render("No photos in this collection")
	}

	var b strings.Builder
	for i, p := range photos {
		line := p.Title
		if p.Starred {
			line += " " + styles.StarIndicator
		}
		if m.gallery.IsSelected(p.ID) {
			line = styles.SelectedIndicator + " " + line
		} else {
			line = "  " + line
		}
		line += styles.DimStyle.Render("  " + p.FormattedSize())

		if i == m.photoCursor {
			b.WriteString(styles.SelectedStyle.Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	return b.String()
}
