package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ewilde/lumen/internal/domain"
	"github.com/ewilde/lumen/internal/search"
	"github.com/ewilde/lumen/internal/tui/styles"
)

// CollectionGrid renders the collection list as a navigable grid with a
// quick fuzzy filter.
type CollectionGrid struct {
	collections []domain.Collection
	visible     []int // Indexes into collections after filtering
	cursor      int
	filter      string
	columns     int
	width       int
	height      int
}

// NewCollectionGrid creates an empty grid
func NewCollectionGrid(columns int) *CollectionGrid {
	if columns <= 0 {
		columns = 3
	}
	return &CollectionGrid{columns: columns}
}

// SetCollections replaces the grid contents
func (g *CollectionGrid) SetCollections(collections []domain.Collection) {
	g.collections = collections
	g.applyFilter()
}

// SetFilter sets the fuzzy quick-filter query
func (g *CollectionGrid) SetFilter(query string) {
	g.filter = query
	g.applyFilter()
}

// SetSize updates the rendered dimensions
func (g *CollectionGrid) SetSize(width, height int) {
	g.width = width
	g.height = height
}

func (g *CollectionGrid) applyFilter() {
	g.visible = g.visible[:0]
	for i, c := range g.collections {
		if search.MatchesFold(g.filter, c.Title) {
			g.visible = append(g.visible, i)
		}
	}
	if g.cursor >= len(g.visible) {
		g.cursor = 0
	}
}

// MoveUp moves the cursor up one row
func (g *CollectionGrid) MoveUp() {
	if g.cursor-g.columns >= 0 {
		g.cursor -= g.columns
	}
}

// MoveDown moves the cursor down one row
func (g *CollectionGrid) MoveDown() {
	if g.cursor+g.columns < len(g.visible) {
		g.cursor += g.columns
	}
}

// MoveLeft moves the cursor left one cell
func (g *CollectionGrid) MoveLeft() {
	if g.cursor > 0 {
		g.cursor--
	}
}

// MoveRight moves the cursor right one cell
func (g *CollectionGrid) MoveRight() {
	if g.cursor < len(g.visible)-1 {
		g.cursor++
	}
}

// Current returns the collection under the cursor; ok is false when the
// filtered grid is empty.
func (g *CollectionGrid) Current() (domain.Collection, bool) {
	if len(g.visible) == 0 {
		return domain.Collection{}, false
	}
	return g.collections[g.visible[g.cursor]], true
}

// View renders the grid
func (g *CollectionGrid) View() string {
	if len(g.visible) == 0 {
		return styles.DimStyle.Render("No collections match")
	}

	cellWidth := g.width/g.columns - 2
	if cellWidth < 10 {
		cellWidth = 10
	}

	var rows []string
	for rowStart := 0; rowStart < len(g.visible); rowStart += g.columns {
		var cells []string
		for i := rowStart; i < rowStart+g.columns && i < len(g.visible); i++ {
			cells = append(cells, g.renderCell(i, cellWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

func (g *CollectionGrid) renderCell(visibleIdx, cellWidth int) string {
	c := g.collections[g.visible[visibleIdx]]

	var badges []string
	if c.Starred {
		badges = append(badges, styles.AccentStyle.Render(styles.StarIndicator))
	}
	if c.Protected() {
		badges = append(badges, styles.LockIndicator)
	}

	title := c.Title
	if len(badges) > 0 {
		title = title + " " + strings.Join(badges, " ")
	}
	meta := fmt.Sprintf("%s · %d photos", c.Status.Label(), c.PhotoCount)

	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Render(title),
		styles.DimStyle.Render(meta),
	)

	cell := styles.InactiveBorder
	if visibleIdx == g.cursor {
		cell = styles.ActiveBorder
	}
	return cell.Width(cellWidth).Render(body)
}
