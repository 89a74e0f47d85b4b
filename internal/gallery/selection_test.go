package gallery

import (
	"context"
	"reflect"
	"testing"
)

func TestSelectionReplay(t *testing.T) {
	store, _ := newTestStore(t)

	// Replay a mixed op sequence against a reference set and compare.
	type op struct {
		kind string
		id   string
	}
	ops := []op{
		{"select", "photo-1"},
		{"select", "photo-2"},
		{"select", "photo-1"}, // duplicate select
		{"toggle", "photo-3"},
		{"deselect", "photo-2"},
		{"deselect", "photo-2"}, // absent deselect
		{"toggle", "photo-3"},
		{"toggle", "photo-3"},
		{"select", "photo-ghost"}, // ID with no matching photo
	}

	want := make(map[string]bool)
	for _, o := range ops {
		switch o.kind {
		case "select":
			store.SelectPhoto(o.id)
			want[o.id] = true
		case "deselect":
			store.DeselectPhoto(o.id)
			delete(want, o.id)
		case "toggle":
			store.TogglePhotoSelection(o.id)
			if want[o.id] {
				delete(want, o.id)
			} else {
				want[o.id] = true
			}
		}
	}

	if store.SelectionCount() != len(want) {
		t.Errorf("SelectionCount() = %d, want %d", store.SelectionCount(), len(want))
	}
	for id := range want {
		if !store.IsSelected(id) {
			t.Errorf("IsSelected(%q) = false, want true", id)
		}
	}
	for _, id := range []string{"photo-2"} {
		if store.IsSelected(id) {
			t.Errorf("IsSelected(%q) = true, want false", id)
		}
	}
}

func TestSelectAllAndClear(t *testing.T) {
	store, _ := newTestStore(t)

	store.SelectAll()
	if got := store.SelectionCount(); got != 3 {
		t.Errorf("SelectionCount() after SelectAll = %d, want 3", got)
	}

	store.ClearSelection()
	if got := store.SelectionCount(); got != 0 {
		t.Errorf("SelectionCount() after ClearSelection = %d, want 0", got)
	}
}

func TestSelectedIDs_PhotoListOrder(t *testing.T) {
	store, _ := newTestStore(t)

	// Select in reverse of list order; output follows the list.
	store.SelectPhoto("photo-3")
	store.SelectPhoto("photo-1")

	got := store.SelectedIDs()
	want := []string{"photo-1", "photo-3"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SelectedIDs() = %v, want %v", got, want)
	}
}

func TestSelectedIDs_UnknownIDsComeLast(t *testing.T) {
	store, _ := newTestStore(t)

	store.SelectPhoto("photo-ghost")
	store.SelectPhoto("photo-2")

	got := store.SelectedIDs()
	if len(got) != 2 || got[0] != "photo-2" || got[1] != "photo-ghost" {
		t.Errorf("SelectedIDs() = %v, want [photo-2 photo-ghost]", got)
	}
}

func TestSelectionSurvivesFetch(t *testing.T) {
	store, client := newTestStore(t)

	store.SelectPhoto("photo-1")
	store.SelectPhoto("photo-2")

	// Replace the list with one that drops photo-2; the selection set is
	// never pruned implicitly.
	client.photos = testPhotos()[:1]
	store.FetchPhotos(context.Background())

	if got := store.SelectionCount(); got != 2 {
		t.Errorf("SelectionCount() after fetch = %d, want 2", got)
	}
	if !store.IsSelected("photo-2") {
		t.Error("photo-2 dropped from selection by fetch")
	}
	if got := len(store.SelectedPhotos()); got != 1 {
		t.Errorf("SelectedPhotos() after fetch returned %d photos, want 1", got)
	}
}
