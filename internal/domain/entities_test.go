package domain

import "testing"

func TestCollectionStatus(t *testing.T) {
	tests := []struct {
		status    CollectionStatus
		wantLabel string
		wantValid bool
	}{
		{StatusPublished, "Published", true},
		{StatusHidden, "Hidden", true},
		{StatusDraft, "Draft", true},
		{CollectionStatus("archived"), "Unknown", false},
	}
	for _, tt := range tests {
		if got := tt.status.Label(); got != tt.wantLabel {
			t.Errorf("Label(%q) = %q, want %q", tt.status, got, tt.wantLabel)
		}
		if got := tt.status.Valid(); got != tt.wantValid {
			t.Errorf("Valid(%q) = %v, want %v", tt.status, got, tt.wantValid)
		}
	}
}

func TestCategoryLabel(t *testing.T) {
	if got := CategoryWedding.Label(); got != "Wedding" {
		t.Errorf("Label() = %q, want Wedding", got)
	}
	if got := CollectionCategory("food").Label(); got != "Unknown" {
		t.Errorf("Label() on unknown category = %q, want Unknown", got)
	}
}

func TestOptionTables(t *testing.T) {
	if got := len(StatusOptions()); got != 3 {
		t.Errorf("StatusOptions() has %d entries, want 3", got)
	}
	if got := len(CategoryOptions()); got != 5 {
		t.Errorf("CategoryOptions() has %d entries, want 5", got)
	}
	if StatusOptions()[0] != StatusDraft {
		t.Error("StatusOptions() should offer draft first")
	}
}

func TestCollectionProtected(t *testing.T) {
	if (Collection{}).Protected() {
		t.Error("Protected() = true without a password")
	}
	if !(Collection{Password: "secret"}).Protected() {
		t.Error("Protected() = false with a password")
	}
}

func TestHighlightsSection(t *testing.T) {
	section := HighlightsSection()
	if section.ID != SectionHighlights {
		t.Errorf("ID = %q, want %q", section.ID, SectionHighlights)
	}
	if section.Name != "General" {
		t.Errorf("Name = %q, want General", section.Name)
	}
}

func TestTabs(t *testing.T) {
	tabs := Tabs()
	if len(tabs) != 4 || tabs[0] != TabPhotos || tabs[3] != TabActivity {
		t.Errorf("Tabs() = %v", tabs)
	}
	if got := TabDesign.Label(); got != "Design" {
		t.Errorf("Label() = %q, want Design", got)
	}
}
