package gallery

import (
	"sort"
	"strings"

	"github.com/ewilde/lumen/internal/domain"
)

// Derived views. Each is recomputed from the canonical lists on every call
// and is consistent within a single read; none is cached or independently
// mutated.

const (
	recentPhotoLimit      = 12
	recentCollectionLimit = 4
)

// Photos returns a copy of the photo list in fetch/insertion order
func (s *Store) Photos() []domain.Photo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Photo(nil), s.photos...)
}

// Collections returns a copy of the collection list in fetch/insertion order
func (s *Store) Collections() []domain.Collection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Collection(nil), s.collections...)
}

// Stats summarizes the gallery for dashboard display
func (s *Store) Stats() domain.GalleryStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := domain.GalleryStats{
		TotalPhotos:      len(s.photos),
		TotalCollections: len(s.collections),
	}
	for i := range s.photos {
		if s.photos[i].Starred {
			stats.StarredPhotos++
		}
		stats.StorageUsed += s.photos[i].Size
	}
	return stats
}

// StarredPhotos returns the starred photos in list order
func (s *Store) StarredPhotos() []domain.Photo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var starred []domain.Photo
	for i := range s.photos {
		if s.photos[i].Starred {
			starred = append(starred, s.photos[i])
		}
	}
	return starred
}

// StarredCollections returns the starred collections in list order
func (s *Store) StarredCollections() []domain.Collection {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var starred []domain.Collection
	for i := range s.collections {
		if s.collections[i].Starred {
			starred = append(starred, s.collections[i])
		}
	}
	return starred
}

// RecentPhotos returns up to the 12 most recently created photos,
// newest first
func (s *Store) RecentPhotos() []domain.Photo {
	s.mu.RLock()
	recent := append([]domain.Photo(nil), s.photos...)
	s.mu.RUnlock()

	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > recentPhotoLimit {
		recent = recent[:recentPhotoLimit]
	}
	return recent
}

// RecentCollections returns up to the 4 most recently created collections,
// newest first
func (s *Store) RecentCollections() []domain.Collection {
	s.mu.RLock()
	recent := append([]domain.Collection(nil), s.collections...)
	s.mu.RUnlock()

	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > recentCollectionLimit {
		recent = recent[:recentCollectionLimit]
	}
	return recent
}

// SelectedPhotos returns the selected photos in photo-list order, not
// selection order
func (s *Store) SelectedPhotos() []domain.Photo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var selected []domain.Photo
	for i := range s.photos {
		if _, ok := s.selected[s.photos[i].ID]; ok {
			selected = append(selected, s.photos[i])
		}
	}
	return selected
}

// FilterCollections returns the collections matching every axis of the
// filter. Empty status/category slices match all on that axis; search is a
// case-insensitive substring test against title or description. Source
// order is preserved.
func (s *Store) FilterCollections(filters domain.CollectionFilters) []domain.Collection {
	s.mu.RLock()
	defer s.mu.RUnlock()

	search := strings.ToLower(filters.Search)

	matched := make([]domain.Collection, 0, len(s.collections))
	for i := range s.collections {
		c := s.collections[i]
		if len(filters.Status) > 0 && !containsStatus(filters.Status, c.Status) {
			continue
		}
		if len(filters.Category) > 0 && !containsCategory(filters.Category, c.Category) {
			continue
		}
		if search != "" {
			matchesTitle := strings.Contains(strings.ToLower(c.Title), search)
			matchesDescription := c.Description != "" &&
				strings.Contains(strings.ToLower(c.Description), search)
			if !matchesTitle && !matchesDescription {
				continue
			}
		}
		matched = append(matched, c)
	}
	return matched
}

// CollectionByID looks up a collection; ok is false when absent
func (s *Store) CollectionByID(id string) (domain.Collection, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if idx := indexOfCollection(s.collections, id); idx >= 0 {
		return s.collections[idx], true
	}
	return domain.Collection{}, false
}

// PhotoByID looks up a photo; ok is false when absent
func (s *Store) PhotoByID(id string) (domain.Photo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if idx := indexOfPhoto(s.photos, id); idx >= 0 {
		return s.photos[idx], true
	}
	return domain.Photo{}, false
}

// PhotosByCollection returns the photos assigned to the collection, in
// list order; unknown collections yield an empty list.
func (s *Store) PhotosByCollection(collectionID string) []domain.Photo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var photos []domain.Photo
	for i := range s.photos {
		if s.photos[i].CollectionID == collectionID {
			photos = append(photos, s.photos[i])
		}
	}
	return photos
}

func containsStatus(haystack []domain.CollectionStatus, needle domain.CollectionStatus) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

func containsCategory(haystack []domain.CollectionCategory, needle domain.CollectionCategory) bool {
	for _, c := range haystack {
		if c == needle {
			return true
		}
	}
	return false
}
