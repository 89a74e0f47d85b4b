package cache

import (
	"testing"
	"time"

	"github.com/ewilde/lumen/internal/domain"
)

func testSnapshot() ([]domain.Photo, []domain.Collection) {
	created := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	photos := []domain.Photo{
		{ID: "photo-1", Title: "Photo 1", Size: 1000, Starred: true, CreatedAt: created},
		{ID: "photo-2", Title: "Photo 2", Size: 2000, CollectionID: "collection-1", CreatedAt: created},
	}
	collections := []domain.Collection{
		{ID: "collection-1", Title: "Summer Wedding", Status: domain.StatusPublished, Category: domain.CategoryWedding, PhotoCount: 2, CreatedAt: created},
	}
	return photos, collections
}

func TestRoundTrip(t *testing.T) {
	cache, err := Open(t.TempDir(), "https://gallery.example.com")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer cache.Close()

	photos, collections := testSnapshot()
	if err := cache.SavePhotos(photos); err != nil {
		t.Fatalf("SavePhotos() error = %v", err)
	}
	if err := cache.SaveCollections(collections); err != nil {
		t.Fatalf("SaveCollections() error = %v", err)
	}

	gotPhotos, ok := cache.GetPhotos()
	if !ok {
		t.Fatal("GetPhotos() ok = false after save")
	}
	if len(gotPhotos) != 2 || gotPhotos[0].ID != "photo-1" || !gotPhotos[0].Starred {
		t.Errorf("GetPhotos() = %+v", gotPhotos)
	}
	if !gotPhotos[0].CreatedAt.Equal(photos[0].CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", gotPhotos[0].CreatedAt, photos[0].CreatedAt)
	}

	gotCollections, ok := cache.GetCollections()
	if !ok {
		t.Fatal("GetCollections() ok = false after save")
	}
	if len(gotCollections) != 1 || gotCollections[0].Status != domain.StatusPublished {
		t.Errorf("GetCollections() = %+v", gotCollections)
	}
}

func TestSnapshotSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	serverURL := "https://gallery.example.com"

	cache, err := Open(dir, serverURL)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	photos, _ := testSnapshot()
	if err := cache.SavePhotos(photos); err != nil {
		t.Fatalf("SavePhotos() error = %v", err)
	}
	if err := cache.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reopened, err := Open(dir, serverURL)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer reopened.Close()

	got, ok := reopened.GetPhotos()
	if !ok || len(got) != 2 {
		t.Errorf("GetPhotos() after reopen = %v, %v", got, ok)
	}
}

func TestMissingSnapshot(t *testing.T) {
	cache, err := Open(t.TempDir(), "https://gallery.example.com")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer cache.Close()

	if _, ok := cache.GetPhotos(); ok {
		t.Error("GetPhotos() ok = true on empty cache")
	}
	if _, ok := cache.GetCollections(); ok {
		t.Error("GetCollections() ok = true on empty cache")
	}
}

func TestMemoryOnlyMode(t *testing.T) {
	cache, err := Open("", "")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer cache.Close()

	photos, _ := testSnapshot()
	if err := cache.SavePhotos(photos); err != nil {
		t.Fatalf("SavePhotos() error = %v", err)
	}
	got, ok := cache.GetPhotos()
	if !ok || len(got) != 2 {
		t.Errorf("GetPhotos() = %v, %v", got, ok)
	}
}

func TestInvalidate(t *testing.T) {
	cache, err := Open(t.TempDir(), "https://gallery.example.com")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer cache.Close()

	photos, collections := testSnapshot()
	cache.SavePhotos(photos)
	cache.SaveCollections(collections)

	if err := cache.Invalidate(); err != nil {
		t.Fatalf("Invalidate() error = %v", err)
	}
	if _, ok := cache.GetPhotos(); ok {
		t.Error("GetPhotos() ok = true after Invalidate")
	}
	if _, ok := cache.GetCollections(); ok {
		t.Error("GetCollections() ok = true after Invalidate")
	}
}

func TestServerScoping(t *testing.T) {
	dir := t.TempDir()

	a, err := Open(dir, "https://one.example.com")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	photos, _ := testSnapshot()
	a.SavePhotos(photos)
	a.Close()

	// A different server URL gets its own db file and sees nothing.
	b, err := Open(dir, "https://two.example.com")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer b.Close()

	if _, ok := b.GetPhotos(); ok {
		t.Error("snapshot leaked across server URLs")
	}
}

func TestHashServerURLNormalizes(t *testing.T) {
	if hashServerURL("https://Example.com/") != hashServerURL("https://example.com") {
		t.Error("case and trailing slash should not change the hash")
	}
	if hashServerURL("https://one.example.com") == hashServerURL("https://two.example.com") {
		t.Error("distinct servers hashed to the same value")
	}
}
