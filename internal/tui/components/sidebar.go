package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ewilde/lumen/internal/domain"
	"github.com/ewilde/lumen/internal/tui/styles"
)

// NavItem is a primary navigation destination
type NavItem struct {
	ID    string
	Label string
}

// DefaultNavItems returns the primary navigation entries
func DefaultNavItems() []NavItem {
	return []NavItem{
		{ID: "dashboard", Label: "Dashboard"},
		{ID: "collections", Label: "Collections"},
		{ID: "photos", Label: "Photos"},
		{ID: "starred", Label: "Starred"},
		{ID: "settings", Label: "Settings"},
	}
}

// NavSidebar is the primary navigation sidebar. It owns the open flag the
// collection workspace saves and restores, so it implements
// domain.MainSidebar.
type NavSidebar struct {
	items  []NavItem
	cursor int
	open   bool
	width  int
	height int
}

var _ domain.MainSidebar = (*NavSidebar)(nil)

// NewNavSidebar creates the primary sidebar, open by default
func NewNavSidebar() *NavSidebar {
	return &NavSidebar{
		items: DefaultNavItems(),
		open:  true,
	}
}

// IsOpen reports whether the sidebar is visible
func (s *NavSidebar) IsOpen() bool { return s.open }

// SetOpen shows or hides the sidebar
func (s *NavSidebar) SetOpen(open bool) { s.open = open }

// Toggle flips the sidebar's visibility
func (s *NavSidebar) Toggle() { s.open = !s.open }

// SetSize updates the rendered dimensions
func (s *NavSidebar) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// MoveUp moves the cursor up one entry
func (s *NavSidebar) MoveUp() {
	if s.cursor > 0 {
		s.cursor--
	}
}

// MoveDown moves the cursor down one entry
func (s *NavSidebar) MoveDown() {
	if s.cursor < len(s.items)-1 {
		s.cursor++
	}
}

// Current returns the highlighted nav item
func (s *NavSidebar) Current() NavItem {
	return s.items[s.cursor]
}

// View renders the sidebar, or "" when hidden
func (s *NavSidebar) View() string {
	if !s.open {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.AccentStyle.Bold(true).Render("Lumen"))
	b.WriteString("\n\n")

	for i, item := range s.items {
		if i == s.cursor {
			b.WriteString(styles.SelectedStyle.Render(item.Label))
		} else {
			b.WriteString(styles.SubtitleStyle.Padding(0, 1).Render(item.Label))
		}
		b.WriteString("\n")
	}

	panel := styles.InactiveBorder.
		Width(s.width).
		Height(s.height)
	return panel.Render(lipgloss.NewStyle().MaxHeight(s.height).Render(b.String()))
}
