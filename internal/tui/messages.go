package tui

import "github.com/ewilde/lumen/internal/domain"

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// PhotosFetchedMsg signals that a photo fetch finished; the store already
// holds the result (or the error banner text).
type PhotosFetchedMsg struct{}

// CollectionsFetchedMsg signals that a collection fetch finished
type CollectionsFetchedMsg struct{}

// StarToggledMsg signals a completed star flip
type StarToggledMsg struct {
	ID string
}

// CollectionCreatedMsg signals that a collection was created
type CollectionCreatedMsg struct {
	Collection domain.Collection
}

// CollectionDeletedMsg signals that a collection was deleted
type CollectionDeletedMsg struct {
	ID string
}
