// Package search maintains a local fuzzy index over collection and photo
// titles for the omnibar-style quick filter.
package search

import (
	"log/slog"
	"sort"
	"strings"
	"sync"

	lfuzzy "github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/sahilm/fuzzy"

	"github.com/ewilde/lumen/internal/domain"
)

// Kind distinguishes indexed entry types
type Kind int

const (
	KindCollection Kind = iota
	KindPhoto
)

// Entry is a single indexed item
type Entry struct {
	Kind  Kind   // Collection or photo
	ID    string // Entity ID
	Title string // Searchable display title
}

// Result is a ranked match with highlight positions
type Result struct {
	Entry
	Score          int   // Match score (higher is better, per sahilm/fuzzy)
	MatchedIndexes []int // Character positions that matched
}

// entrySource implements sahilm/fuzzy.Source over pre-lowered titles
type entrySource struct {
	entries     []Entry
	lowerTitles []string
}

func (s *entrySource) String(i int) string { return s.lowerTitles[i] }
func (s *entrySource) Len() int            { return len(s.entries) }

// Index is a rebuildable fuzzy index over gallery entities
type Index struct {
	logger *slog.Logger

	mu     sync.RWMutex
	source *entrySource
}

// NewIndex creates an empty index
func NewIndex(logger *slog.Logger) *Index {
	if logger == nil {
		logger = slog.Default()
	}
	return &Index{logger: logger, source: &entrySource{}}
}

// Rebuild replaces the index contents from the current gallery lists
func (idx *Index) Rebuild(collections []domain.Collection, photos []domain.Photo) {
	source := &entrySource{
		entries:     make([]Entry, 0, len(collections)+len(photos)),
		lowerTitles: make([]string, 0, len(collections)+len(photos)),
	}
	for _, c := range collections {
		source.entries = append(source.entries, Entry{Kind: KindCollection, ID: c.ID, Title: c.Title})
		source.lowerTitles = append(source.lowerTitles, strings.ToLower(c.Title))
	}
	for _, p := range photos {
		source.entries = append(source.entries, Entry{Kind: KindPhoto, ID: p.ID, Title: p.Title})
		source.lowerTitles = append(source.lowerTitles, strings.ToLower(p.Title))
	}

	idx.mu.Lock()
	idx.source = source
	idx.mu.Unlock()

	idx.logger.Debug("search index rebuilt", "entries", len(source.entries))
}

// Query returns ranked matches for the query, best first, capped at limit
// (0 = unlimited)
func (idx *Index) Query(query string, limit int) []Result {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return nil
	}

	idx.mu.RLock()
	source := idx.source
	idx.mu.RUnlock()

	matches := fuzzy.FindFrom(query, source)
	results := make([]Result, 0, len(matches))
	for _, m := range matches {
		results = append(results, Result{
			Entry:          source.entries[m.Index],
			Score:          m.Score,
			MatchedIndexes: m.MatchedIndexes,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

// MatchesFold reports whether the title fuzzily matches the query,
// case-insensitively. Used for cheap list filtering where ranking is
// unnecessary.
func MatchesFold(query, title string) bool {
	if strings.TrimSpace(query) == "" {
		return true
	}
	return lfuzzy.MatchNormalizedFold(query, title)
}
