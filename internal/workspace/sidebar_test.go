package workspace

import (
	"testing"
	"time"

	"github.com/ewilde/lumen/internal/domain"
	applog "github.com/ewilde/lumen/internal/log"
)

// fakeMainSidebar records the open flag like the navigation sidebar does
type fakeMainSidebar struct {
	open bool
}

func (f *fakeMainSidebar) IsOpen() bool      { return f.open }
func (f *fakeMainSidebar) SetOpen(open bool) { f.open = open }

// fakeSections serves fixed presets keyed by collection ID
type fakeSections struct {
	presets map[string][]domain.PhotoSection
}

func (f *fakeSections) SectionsForCollection(collectionID string) []domain.PhotoSection {
	return f.presets[collectionID]
}

func newTestSections() *fakeSections {
	now := time.Now()
	return &fakeSections{presets: map[string][]domain.PhotoSection{
		"collection-1": {
			{ID: "section-ceremony", Name: "Ceremony", CreatedAt: now},
			{ID: "section-reception", Name: "Reception", CreatedAt: now},
		},
	}}
}

func TestNewStoreDefaults(t *testing.T) {
	store := NewStore(nil, applog.NullLogger())

	if !store.IsOpen() {
		t.Error("IsOpen() = false, want open by default")
	}
	if got := store.ActiveTab(); got != domain.TabPhotos {
		t.Errorf("ActiveTab() = %q, want %q", got, domain.TabPhotos)
	}
	if got := store.ActiveSection(); got != "" {
		t.Errorf("ActiveSection() = %q, want empty", got)
	}
	if got := store.ActivePhotoSection(); got != domain.SectionHighlights {
		t.Errorf("ActivePhotoSection() = %q, want %q", got, domain.SectionHighlights)
	}
}

func TestInitCoordination(t *testing.T) {
	tests := []struct {
		name    string
		mainWas bool
	}{
		{"main sidebar open", true},
		{"main sidebar closed", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore(nil, applog.NullLogger())
			main := &fakeMainSidebar{open: tt.mainWas}

			// Dirty the panel state first so the reset is observable.
			store.Close()
			store.SetTab(domain.TabDesign)
			store.SetActivePhotoSection("section-other")

			store.InitCoordination(main)

			if main.IsOpen() {
				t.Error("main sidebar still open during coordination")
			}
			if !store.Coordinating() {
				t.Error("Coordinating() = false after init")
			}
			if !store.IsOpen() {
				t.Error("panel closed after init, want open")
			}
			if got := store.ActiveTab(); got != domain.TabPhotos {
				t.Errorf("ActiveTab() = %q, want %q", got, domain.TabPhotos)
			}
			if got := store.ActiveSection(); got != "" {
				t.Errorf("ActiveSection() = %q, want empty", got)
			}
			if got := store.ActivePhotoSection(); got != domain.SectionHighlights {
				t.Errorf("ActivePhotoSection() = %q, want %q", got, domain.SectionHighlights)
			}

			store.RestoreMainSidebar(main)

			if main.IsOpen() != tt.mainWas {
				t.Errorf("main sidebar open = %v after restore, want %v", main.IsOpen(), tt.mainWas)
			}
			if store.Coordinating() {
				t.Error("Coordinating() = true after restore")
			}
		})
	}
}

func TestRestoreMainSidebar_SecondRestoreIsNoop(t *testing.T) {
	store := NewStore(nil, applog.NullLogger())
	main := &fakeMainSidebar{open: true}

	store.InitCoordination(main)
	store.RestoreMainSidebar(main)

	// The user closes the sidebar after coordination ended; a stray second
	// restore must not reopen it.
	main.SetOpen(false)
	store.RestoreMainSidebar(main)

	if main.IsOpen() {
		t.Error("stale snapshot re-applied by second restore")
	}
}

func TestRestoreMainSidebar_WithoutInitIsNoop(t *testing.T) {
	store := NewStore(nil, applog.NullLogger())
	main := &fakeMainSidebar{open: false}

	store.RestoreMainSidebar(main)

	if main.IsOpen() {
		t.Error("restore without snapshot changed the main sidebar")
	}
}

func TestSetTab(t *testing.T) {
	tests := []struct {
		tab         domain.WorkspaceTab
		wantSection string
	}{
		{domain.TabPhotos, ""},
		{domain.TabDesign, "cover"},
		{domain.TabSettings, "general"},
		{domain.TabActivity, "downloads"},
	}

	for _, tt := range tests {
		t.Run(string(tt.tab), func(t *testing.T) {
			store := NewStore(nil, applog.NullLogger())
			store.SetTab(tt.tab)

			if got := store.ActiveTab(); got != tt.tab {
				t.Errorf("ActiveTab() = %q, want %q", got, tt.tab)
			}
			if got := store.ActiveSection(); got != tt.wantSection {
				t.Errorf("ActiveSection() = %q, want %q", got, tt.wantSection)
			}
		})
	}
}

func TestSetTab_AlwaysAppliesDefault(t *testing.T) {
	store := NewStore(nil, applog.NullLogger())

	store.SetTab(domain.TabSettings)
	store.SetSection("privacy")
	store.SetTab(domain.TabDesign)
	store.SetTab(domain.TabSettings)

	// No per-tab memory: settings comes back at its default section.
	if got := store.ActiveSection(); got != "general" {
		t.Errorf("ActiveSection() = %q, want %q", got, "general")
	}
}

func TestSetTab_PhotosResetsPhotoSection(t *testing.T) {
	store := NewStore(newTestSections(), applog.NullLogger())
	store.LoadSectionsForCollection("collection-1")
	store.SetActivePhotoSection("section-reception")

	store.SetTab(domain.TabDesign)
	store.SetTab(domain.TabPhotos)

	if got := store.ActivePhotoSection(); got != domain.SectionHighlights {
		t.Errorf("ActivePhotoSection() = %q, want %q", got, domain.SectionHighlights)
	}
}

func TestLoadSectionsForCollection(t *testing.T) {
	store := NewStore(newTestSections(), applog.NullLogger())

	store.LoadSectionsForCollection("collection-1")

	custom := store.CustomSections()
	if len(custom) != 2 || custom[0].ID != "section-ceremony" {
		t.Fatalf("CustomSections() = %v, want ceremony then reception", custom)
	}

	all := store.AllSections()
	if len(all) != 3 {
		t.Fatalf("AllSections() returned %d entries, want 3", len(all))
	}
	if all[0].ID != domain.SectionHighlights || all[0].Name != "General" {
		t.Errorf("AllSections()[0] = %+v, want the synthesized highlights entry", all[0])
	}

	// Switching to a collection without a preset clears the list and
	// resets the active photo section.
	store.SetActivePhotoSection("section-reception")
	store.LoadSectionsForCollection("collection-404")

	if got := len(store.CustomSections()); got != 0 {
		t.Errorf("CustomSections() after switch returned %d entries, want 0", got)
	}
	if got := store.ActivePhotoSection(); got != domain.SectionHighlights {
		t.Errorf("ActivePhotoSection() = %q, want %q", got, domain.SectionHighlights)
	}
}

func TestAddSection(t *testing.T) {
	store := NewStore(nil, applog.NullLogger())
	store.SetActivePhotoSection("section-elsewhere")

	created := store.AddSection("  First Dance  ", " Slow songs ")

	if created.Name != "First Dance" {
		t.Errorf("Name = %q, want trimmed %q", created.Name, "First Dance")
	}
	if created.Description != "Slow songs" {
		t.Errorf("Description = %q, want trimmed %q", created.Description, "Slow songs")
	}
	if created.ID == "" || created.ID == domain.SectionHighlights {
		t.Errorf("ID = %q, want a fresh generated ID", created.ID)
	}

	custom := store.CustomSections()
	if len(custom) != 1 || custom[0].ID != created.ID {
		t.Errorf("CustomSections() = %v, want the new section appended", custom)
	}
	if got := store.ActivePhotoSection(); got != "section-elsewhere" {
		t.Errorf("AddSection changed the active photo section to %q", got)
	}
}

func TestAddSection_IDsDoNotCollide(t *testing.T) {
	store := NewStore(nil, applog.NullLogger())

	a := store.AddSection("A", "")
	b := store.AddSection("A", "")
	if a.ID == b.ID {
		t.Errorf("two sections share ID %q", a.ID)
	}
}

func TestPanelVisibility(t *testing.T) {
	store := NewStore(nil, applog.NullLogger())

	store.Close()
	if store.IsOpen() {
		t.Error("IsOpen() = true after Close")
	}
	store.Toggle()
	if !store.IsOpen() {
		t.Error("IsOpen() = false after Toggle")
	}
	store.Open()
	if !store.IsOpen() {
		t.Error("IsOpen() = false after Open")
	}
}
