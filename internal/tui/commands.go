package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ewilde/lumen/internal/domain"
	"github.com/ewilde/lumen/internal/gallery"
)

// Command factories for async store operations

const fetchTimeout = 30 * time.Second

// FetchPhotosCmd refreshes the photo list. Fetch errors are absorbed into
// the store's error banner, so this never returns ErrMsg.
func FetchPhotosCmd(store *gallery.Store) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		store.FetchPhotos(ctx)
		return PhotosFetchedMsg{}
	}
}

// FetchCollectionsCmd refreshes the collection list
func FetchCollectionsCmd(store *gallery.Store) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		store.FetchCollections(ctx)
		return CollectionsFetchedMsg{}
	}
}

// TogglePhotoStarCmd flips a photo's star
func TogglePhotoStarCmd(store *gallery.Store, photoID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		if err := store.TogglePhotoStar(ctx, photoID); err != nil {
			return ErrMsg{Err: err, Context: "starring photo"}
		}
		return StarToggledMsg{ID: photoID}
	}
}

// ToggleCollectionStarCmd flips a collection's star
func ToggleCollectionStarCmd(store *gallery.Store, collectionID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		if err := store.ToggleCollectionStar(ctx, collectionID); err != nil {
			return ErrMsg{Err: err, Context: "starring collection"}
		}
		return StarToggledMsg{ID: collectionID}
	}
}

// CreateCollectionCmd creates a new collection
func CreateCollectionCmd(store *gallery.Store, data domain.CreateCollectionData) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		c, err := store.CreateCollection(ctx, data)
		if err != nil {
			return ErrMsg{Err: err, Context: "creating collection"}
		}
		return CollectionCreatedMsg{Collection: c}
	}
}

// DeleteCollectionCmd deletes a collection
func DeleteCollectionCmd(store *gallery.Store, collectionID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		if err := store.DeleteCollection(ctx, collectionID); err != nil {
			return ErrMsg{Err: err, Context: "deleting collection"}
		}
		return CollectionDeletedMsg{ID: collectionID}
	}
}
