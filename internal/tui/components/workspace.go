package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ewilde/lumen/internal/domain"
	"github.com/ewilde/lumen/internal/tui/styles"
	"github.com/ewilde/lumen/internal/workspace"
)

// WorkspacePanel renders the collection workspace side panel from the
// workspace store's state: the tab strip, the active section, and on the
// photos tab the section list.
type WorkspacePanel struct {
	store      *workspace.Store
	collection domain.Collection
	width      int
	height     int
}

// NewWorkspacePanel creates a panel bound to the workspace store
func NewWorkspacePanel(store *workspace.Store) *WorkspacePanel {
	return &WorkspacePanel{store: store}
}

// SetCollection sets the collection the panel is scoped to
func (w *WorkspacePanel) SetCollection(c domain.Collection) {
	w.collection = c
}

// SetSize updates the rendered dimensions
func (w *WorkspacePanel) SetSize(width, height int) {
	w.width = width
	w.height = height
}

// View renders the panel, or "" when the store says it is closed
func (w *WorkspacePanel) View() string {
	if !w.store.IsOpen() {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(w.collection.Title))
	b.WriteString("\n")
	b.WriteString(styles.DimStyle.Render(w.collection.Status.Label() + " · " + w.collection.Category.Label()))
	b.WriteString("\n\n")

	b.WriteString(w.tabStrip())
	b.WriteString("\n\n")

	switch w.store.ActiveTab() {
	case domain.TabPhotos:
		b.WriteString(w.sectionList())
	default:
		section := w.store.ActiveSection()
		if section == "" {
			section = "overview"
		}
		b.WriteString(styles.SubtitleStyle.Render("Section: " + section))
	}

	panel := styles.ActiveBorder.
		Width(w.width).
		Height(w.height)
	return panel.Render(lipgloss.NewStyle().MaxHeight(w.height).Render(b.String()))
}

func (w *WorkspacePanel) tabStrip() string {
	active := w.store.ActiveTab()
	var tabs []string
	for _, tab := range domain.Tabs() {
		if tab == active {
			tabs = append(tabs, styles.TabActiveStyle.Render(tab.Label()))
		} else {
			tabs = append(tabs, styles.TabInactiveStyle.Render(tab.Label()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (w *WorkspacePanel) sectionList() string {
	var b strings.Builder
	activeID := w.store.ActivePhotoSection()

	for _, section := range w.store.AllSections() {
		marker := "  "
		if section.ID == activeID {
			marker = styles.AccentStyle.Render("▸ ")
		}
		b.WriteString(marker)
		b.WriteString(section.Name)
		if section.Description != "" {
			b.WriteString(styles.DimStyle.Render(fmt.Sprintf(" · %s", section.Description)))
		}
		b.WriteString("\n")
	}
	return b.String()
}
