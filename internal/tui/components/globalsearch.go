package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ewilde/lumen/internal/search"
	"github.com/ewilde/lumen/internal/tui/styles"
)

const maxSearchResults = 10

// globalSearchKeys are the bindings active while the modal is open
var globalSearchKeys = struct {
	Escape key.Binding
	Enter  key.Binding
	Up     key.Binding
	Down   key.Binding
}{
	Escape: key.NewBinding(key.WithKeys("esc")),
	Enter:  key.NewBinding(key.WithKeys("enter")),
	Up:     key.NewBinding(key.WithKeys("up", "ctrl+p")),
	Down:   key.NewBinding(key.WithKeys("down", "ctrl+n")),
}

// GlobalSearch is the ranked-search modal: a query input over the fuzzy
// index with a navigable result list.
type GlobalSearch struct {
	input     textinput.Model
	results   []search.Result
	cursor    int
	visible   bool
	width     int
	height    int
	prevQuery string
}

// NewGlobalSearch creates the search modal, hidden
func NewGlobalSearch() GlobalSearch {
	ti := textinput.New()
	ti.Placeholder = "Search collections and photos..."
	ti.CharLimit = 100
	ti.Width = 40
	ti.Prompt = "/ "
	ti.PromptStyle = styles.AccentStyle
	ti.PlaceholderStyle = styles.DimStyle

	return GlobalSearch{input: ti}
}

// Show opens the modal with a cleared query and focuses the input
func (o *GlobalSearch) Show() {
	o.visible = true
	o.input.Focus()
	o.input.SetValue("")
	o.results = nil
	o.cursor = 0
	o.prevQuery = ""
}

// Hide closes the modal
func (o *GlobalSearch) Hide() {
	o.visible = false
	o.input.Blur()
}

// IsVisible reports whether the modal is open
func (o GlobalSearch) IsVisible() bool {
	return o.visible
}

// SetResults replaces the result list and resets the cursor
func (o *GlobalSearch) SetResults(results []search.Result) {
	o.results = results
	o.cursor = 0
}

// SetSize updates the rendered dimensions
func (o *GlobalSearch) SetSize(width, height int) {
	o.width = width
	o.height = height
	if width > 10 {
		o.input.Width = width - 10
	}
}

// Query returns the current query text
func (o GlobalSearch) Query() string {
	return o.input.Value()
}

// QueryChanged reports whether the query changed since the last check
func (o *GlobalSearch) QueryChanged() bool {
	current := o.input.Value()
	if current != o.prevQuery {
		o.prevQuery = current
		return true
	}
	return false
}

// Selected returns the result under the cursor, or nil when the list is
// empty
func (o GlobalSearch) Selected() *search.Result {
	if len(o.results) == 0 || o.cursor >= len(o.results) {
		return nil
	}
	return &o.results[o.cursor]
}

// ResultCount returns the number of results
func (o GlobalSearch) ResultCount() int {
	return len(o.results)
}

// Init starts the input cursor blink
func (o GlobalSearch) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages while the modal is open. The returned bool is
// true when the user confirmed the highlighted result.
func (o GlobalSearch) Update(msg tea.Msg) (GlobalSearch, tea.Cmd, bool) {
	if !o.visible {
		return o, nil, false
	}

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, globalSearchKeys.Escape):
			o.Hide()
			return o, nil, false

		case key.Matches(msg, globalSearchKeys.Enter):
			return o, nil, len(o.results) > 0

		case key.Matches(msg, globalSearchKeys.Down):
			if o.cursor < len(o.results)-1 {
				o.cursor++
			}
			return o, nil, false

		case key.Matches(msg, globalSearchKeys.Up):
			if o.cursor > 0 {
				o.cursor--
			}
			return o, nil, false
		}
	}

	o.input, cmd = o.input.Update(msg)
	return o, cmd, false
}

// View renders the modal centered over the full window
func (o GlobalSearch) View() string {
	if !o.visible {
		return ""
	}

	modalWidth := o.width * 2 / 3
	if modalWidth < 40 {
		modalWidth = 40
	}
	if modalWidth > 80 {
		modalWidth = 80
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Search"))
	b.WriteString("\n\n")
	b.WriteString(o.input.View())
	b.WriteString("\n\n")
	o.renderResults(&b)

	content := lipgloss.NewStyle().
		Width(modalWidth - 4).
		Render(b.String())

	modal := styles.ModalStyle.
		Width(modalWidth).
		Render(content)

	return lipgloss.Place(o.width, o.height, lipgloss.Center, lipgloss.Center, modal)
}

func (o GlobalSearch) renderResults(b *strings.Builder) {
	if len(o.results) == 0 {
		if o.input.Value() != "" {
			b.WriteString(styles.DimStyle.Render("No matches"))
		}
		return
	}

	count := len(o.results)
	if count > maxSearchResults {
		count = maxSearchResults
	}

	for i := 0; i < count; i++ {
		r := o.results[i]
		line := kindLabel(r.Kind) + "  " + highlightMatches(r.Title, r.MatchedIndexes)
		if i == o.cursor {
			b.WriteString(styles.SelectedStyle.Render(line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	if len(o.results) > count {
		b.WriteString(styles.DimStyle.Render("..."))
		b.WriteString("\n")
	}
}

func kindLabel(kind search.Kind) string {
	switch kind {
	case search.KindCollection:
		return styles.DimStyle.Render("collection")
	case search.KindPhoto:
		return styles.DimStyle.Render("photo     ")
	default:
		return styles.DimStyle.Render("          ")
	}
}

// highlightMatches renders the title with matched characters accented.
// Consecutive runes with the same match state are batched into one styled
// segment.
func highlightMatches(title string, matchedIndexes []int) string {
	if len(matchedIndexes) == 0 {
		return title
	}

	matchSet := make(map[int]bool, len(matchedIndexes))
	for _, idx := range matchedIndexes {
		matchSet[idx] = true
	}

	var out strings.Builder
	runes := []rune(title)
	i := 0
	for i < len(runes) {
		isMatch := matchSet[i]
		var batch strings.Builder
		for i < len(runes) && matchSet[i] == isMatch {
			batch.WriteRune(runes[i])
			i++
		}
		if isMatch {
			out.WriteString(styles.AccentStyle.Bold(true).Render(batch.String()))
		} else {
			out.WriteString(batch.String())
		}
	}
	return out.String()
}
