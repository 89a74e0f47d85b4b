// Package gallery owns the client-side state for photos and collections:
// the canonical lists, the selection set, loading flags, and every derived
// view the UI reads. All mutation goes through Store methods; no other
// component touches the lists directly.
package gallery

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ewilde/lumen/internal/domain"
)

// Store is the single source of truth for gallery state.
//
// Fetch errors are absorbed into Err() so the UI can degrade to a banner;
// mutation errors propagate to the caller for retry prompts. Overlapping
// fetches are not deduplicated: the last one to return replaces the list.
type Store struct {
	client domain.GalleryClient
	cache  domain.SnapshotStore // optional, best-effort persistence
	logger *slog.Logger

	mu                 sync.RWMutex
	photos             []domain.Photo
	collections        []domain.Collection
	selected           map[string]struct{}
	loadingPhotos      bool
	loadingCollections bool
	lastErr            string
}

// NewStore creates a gallery store backed by the given transport client.
// cache may be nil to disable local snapshots.
func NewStore(client domain.GalleryClient, cache domain.SnapshotStore, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		client:   client,
		cache:    cache,
		logger:   logger,
		selected: make(map[string]struct{}),
	}
}

// WarmStart seeds the lists from the local snapshot cache, if one exists.
// It never replaces data already fetched this session.
func (s *Store) WarmStart() {
	if s.cache == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.photos) == 0 {
		if photos, ok := s.cache.GetPhotos(); ok {
			s.photos = photos
			s.logger.Debug("warm-started photos from cache", "count", len(photos))
		}
	}
	if len(s.collections) == 0 {
		if collections, ok := s.cache.GetCollections(); ok {
			s.collections = collections
			s.logger.Debug("warm-started collections from cache", "count", len(collections))
		}
	}
}

// FetchPhotos replaces the photo list with the server's current view.
// Transport failures are recorded in Err() and do not propagate.
func (s *Store) FetchPhotos(ctx context.Context) {
	s.mu.Lock()
	s.loadingPhotos = true
	s.lastErr = ""
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.loadingPhotos = false
		s.mu.Unlock()
	}()

	photos, err := s.client.ListPhotos(ctx)
	if err != nil {
		s.logger.Error("failed to fetch photos", "error", err)
		s.mu.Lock()
		s.lastErr = err.Error()
		s.mu.Unlock()
		return
	}

	s.mu.Lock()
	s.photos = photos
	s.mu.Unlock()

	s.logger.Debug("fetched photos", "count", len(photos))
	s.persistPhotos(photos)
}

// FetchCollections replaces the collection list with the server's current
// view. Transport failures are recorded in Err() and do not propagate.
func (s *Store) FetchCollections(ctx context.Context) {
	s.mu.Lock()
	s.loadingCollections = true
	s.lastErr = ""
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.loadingCollections = false
		s.mu.Unlock()
	}()

	collections, err := s.client.ListCollections(ctx)
	if err != nil {
		s.logger.Error("failed to fetch collections", "error", err)
		s.mu.Lock()
		s.lastErr = err.Error()
		s.mu.Unlock()
		return
	}

	s.mu.Lock()
	s.collections = collections
	s.mu.Unlock()

	s.logger.Debug("fetched collections", "count", len(collections))
	s.persistCollections(collections)
}

// TogglePhotoStar flips the starred flag on a photo. Unknown IDs are a
// silent no-op. The flag flips only after the transport round-trip
// confirms, so a rejected request leaves local state untouched.
func (s *Store) TogglePhotoStar(ctx context.Context, photoID string) error {
	s.mu.RLock()
	idx := indexOfPhoto(s.photos, photoID)
	if idx < 0 {
		s.mu.RUnlock()
		return nil
	}
	next := !s.photos[idx].Starred
	s.mu.RUnlock()

	if err := s.client.StarPhoto(ctx, photoID, next); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Re-resolve: the list may have been replaced mid-flight.
	if idx := indexOfPhoto(s.photos, photoID); idx >= 0 {
		s.photos[idx].Starred = next
		s.photos[idx].UpdatedAt = time.Now()
	}
	return nil
}

// ToggleCollectionStar flips the starred flag on a collection. Unknown IDs
// are a silent no-op; transport errors propagate.
func (s *Store) ToggleCollectionStar(ctx context.Context, collectionID string) error {
	s.mu.RLock()
	idx := indexOfCollection(s.collections, collectionID)
	if idx < 0 {
		s.mu.RUnlock()
		return nil
	}
	next := !s.collections[idx].Starred
	s.mu.RUnlock()

	if err := s.client.StarCollection(ctx, collectionID, next); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := indexOfCollection(s.collections, collectionID); idx >= 0 {
		s.collections[idx].Starred = next
		s.collections[idx].UpdatedAt = time.Now()
	}
	return nil
}

// CreateCollection creates a collection from the supplied fields and
// prepends it to the list. PhotoCount always starts at 0 and the ID is
// freshly generated. Transport errors propagate and leave the list
// unchanged.
func (s *Store) CreateCollection(ctx context.Context, data domain.CreateCollectionData) (domain.Collection, error) {
	now := time.Now()
	c := domain.Collection{
		ID:          "collection-" + uuid.NewString(),
		Title:       data.Title,
		Description: data.Description,
		Status:      data.Status,
		Category:    data.Category,
		PhotoCount:  0,
		Starred:     false,
		Password:    data.Password,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.client.CreateCollection(ctx, c); err != nil {
		return domain.Collection{}, err
	}

	s.mu.Lock()
	s.collections = append([]domain.Collection{c}, s.collections...)
	s.mu.Unlock()

	s.logger.Info("created collection", "id", c.ID, "title", c.Title)
	return c, nil
}

// UpdateCollection applies a partial patch to an existing collection.
// Only non-nil fields change; UpdatedAt always refreshes. Returns
// domain.ErrCollectionNotFound when the ID has no match.
func (s *Store) UpdateCollection(ctx context.Context, data domain.UpdateCollectionData) error {
	s.mu.RLock()
	idx := indexOfCollection(s.collections, data.ID)
	if idx < 0 {
		s.mu.RUnlock()
		return domain.ErrCollectionNotFound
	}
	patched := s.collections[idx]
	s.mu.RUnlock()

	if data.Title != nil {
		patched.Title = *data.Title
	}
	if data.Description != nil {
		patched.Description = *data.Description
	}
	if data.Status != nil {
		patched.Status = *data.Status
	}
	if data.Category != nil {
		patched.Category = *data.Category
	}
	if data.Password != nil {
		patched.Password = *data.Password
	}
	patched.UpdatedAt = time.Now()

	if err := s.client.UpdateCollection(ctx, patched); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := indexOfCollection(s.collections, data.ID); idx >= 0 {
		s.collections[idx] = patched
	}
	return nil
}

// DeleteCollection removes the collection if present; an unknown ID
// succeeds silently. Photos referencing the collection keep their
// CollectionID: deletion does not cascade.
func (s *Store) DeleteCollection(ctx context.Context, collectionID string) error {
	if err := s.client.DeleteCollection(ctx, collectionID); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := indexOfCollection(s.collections, collectionID); idx >= 0 {
		s.collections = append(s.collections[:idx], s.collections[idx+1:]...)
		s.logger.Info("deleted collection", "id", collectionID)
	}
	return nil
}

// IsLoadingPhotos reports whether a photo fetch is in flight
func (s *Store) IsLoadingPhotos() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadingPhotos
}

// IsLoadingCollections reports whether a collection fetch is in flight
func (s *Store) IsLoadingCollections() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadingCollections
}

// Err returns the last fetch error message, or "" if the last fetch
// succeeded
func (s *Store) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

func (s *Store) persistPhotos(photos []domain.Photo) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SavePhotos(photos); err != nil {
		s.logger.Error("failed to persist photo snapshot", "error", err)
	}
}

func (s *Store) persistCollections(collections []domain.Collection) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SaveCollections(collections); err != nil {
		s.logger.Error("failed to persist collection snapshot", "error", err)
	}
}

func indexOfPhoto(photos []domain.Photo, id string) int {
	for i := range photos {
		if photos[i].ID == id {
			return i
		}
	}
	return -1
}

func indexOfCollection(collections []domain.Collection, id string) int {
	for i := range collections {
		if collections[i].ID == id {
			return i
		}
	}
	return -1
}
