// Package workspace manages the collection workspace side panel: its tab
// and section navigation, the per-collection photo-section list, and the
// coordination handshake that temporarily displaces the primary navigation
// sidebar and restores it on exit.
package workspace

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ewilde/lumen/internal/domain"
)

// Store holds the workspace panel state.
//
// Coordination lifecycle: Uncoordinated -> InitCoordination (snapshot held,
// main sidebar forced closed) -> RestoreMainSidebar (snapshot consumed) ->
// Uncoordinated. InitCoordination while already coordinating overwrites the
// snapshot, so callers must pair one init with one restore per mount.
type Store struct {
	sections domain.SectionSource
	logger   *slog.Logger

	mu             sync.RWMutex
	open           bool
	activeTab      domain.WorkspaceTab
	activeSection  string
	photoSections  []domain.PhotoSection
	activePhotoSec string // "" means show all

	// Saved open flag of the displaced main sidebar; nil = no snapshot held
	prevSidebarOpen *bool
}

// NewStore creates a workspace store. sections may be nil, in which case
// every collection has only the synthesized highlights section.
func NewStore(sections domain.SectionSource, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		sections:       sections,
		logger:         logger,
		open:           true,
		activeTab:      domain.TabPhotos,
		activePhotoSec: domain.SectionHighlights,
	}
}

// InitCoordination saves the main sidebar's open flag, forces it closed,
// and resets the panel to its deterministic starting view: open, photos
// tab, empty section, first photo section active.
func (s *Store) InitCoordination(main domain.MainSidebar) {
	s.mu.Lock()
	defer s.mu.Unlock()

	was := main.IsOpen()
	s.prevSidebarOpen = &was
	main.SetOpen(false)

	s.open = true
	s.activeTab = domain.TabPhotos
	s.activeSection = ""
	s.activePhotoSec = s.firstSectionIDLocked()

	s.logger.Debug("workspace coordination started", "mainSidebarWasOpen", was)
}

// RestoreMainSidebar puts the main sidebar back to its pre-coordination
// state and clears the snapshot. Safe no-op when no snapshot is held.
func (s *Store) RestoreMainSidebar(main domain.MainSidebar) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.prevSidebarOpen == nil {
		return
	}
	main.SetOpen(*s.prevSidebarOpen)
	s.prevSidebarOpen = nil

	s.logger.Debug("workspace coordination ended")
}

// Coordinating reports whether a main-sidebar snapshot is currently held
func (s *Store) Coordinating() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prevSidebarOpen != nil
}

// SetTab switches the active tab and recomputes its default section.
// Switching never remembers a per-tab last section; the default table
// always applies. The photos tab additionally resets the active photo
// section to the first entry of the section list.
func (s *Store) SetTab(tab domain.WorkspaceTab) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.activeTab = tab
	switch tab {
	case domain.TabPhotos:
		s.activePhotoSec = s.firstSectionIDLocked()
		s.activeSection = ""
	case domain.TabDesign:
		s.activeSection = "cover"
	case domain.TabSettings:
		s.activeSection = "general"
	case domain.TabActivity:
		s.activeSection = "downloads"
	default:
		s.activeSection = ""
	}
}

// SetSection sets the active section with no side effects
func (s *Store) SetSection(section string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeSection = section
}

// SetActivePhotoSection sets the active photo section; "" means show all
func (s *Store) SetActivePhotoSection(sectionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activePhotoSec = sectionID
}

// LoadSectionsForCollection replaces the custom section list with the
// collection's preset (empty if none is defined) and resets the active
// photo section to the new list's first entry.
func (s *Store) LoadSectionsForCollection(collectionID string) {
	var preset []domain.PhotoSection
	if s.sections != nil {
		preset = s.sections.SectionsForCollection(collectionID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.photoSections = preset
	s.activePhotoSec = s.firstSectionIDLocked()
}

// AddSection appends a custom section with a fresh ID and trimmed
// name/description. The active selection does not change.
func (s *Store) AddSection(name, description string) domain.PhotoSection {
	section := domain.PhotoSection{
		ID:          "section-" + uuid.NewString(),
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		CreatedAt:   time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.photoSections = append(s.photoSections, section)
	return section
}

// AllSections returns the section list with the synthesized highlights
// section always first. The highlights entry is created on read and never
// persisted.
func (s *Store) AllSections() []domain.PhotoSection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.PhotoSection{domain.HighlightsSection()}, s.photoSections...)
}

// CustomSections returns only the stored sections, without the
// synthesized highlights entry
func (s *Store) CustomSections() []domain.PhotoSection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.PhotoSection(nil), s.photoSections...)
}

// Open shows the workspace panel
func (s *Store) Open() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = true
}

// Close hides the workspace panel
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = false
}

// Toggle flips the workspace panel's visibility
func (s *Store) Toggle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = !s.open
}

// IsOpen reports whether the workspace panel is visible
func (s *Store) IsOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.open
}

// ActiveTab returns the current tab
func (s *Store) ActiveTab() domain.WorkspaceTab {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeTab
}

// ActiveSection returns the current section within the active tab
func (s *Store) ActiveSection() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeSection
}

// ActivePhotoSection returns the active photo section ID; "" means
// show all
func (s *Store) ActivePhotoSection() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activePhotoSec
}

// firstSectionIDLocked returns the ID of the first entry of the enumerated
// section list. The synthesized highlights section is always first.
func (s *Store) firstSectionIDLocked() string {
	return domain.SectionHighlights
}
