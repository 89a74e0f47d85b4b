package domain

import (
	"fmt"
	"time"
)

// CollectionStatus controls where a collection is visible
type CollectionStatus string

const (
	StatusPublished CollectionStatus = "published"
	StatusHidden    CollectionStatus = "hidden"
	StatusDraft     CollectionStatus = "draft"
)

// Label returns the display label for the status
func (s CollectionStatus) Label() string {
	switch s {
	case StatusPublished:
		return "Published"
	case StatusHidden:
		return "Hidden"
	case StatusDraft:
		return "Draft"
	default:
		return "Unknown"
	}
}

// Valid reports whether the status is one of the known values
func (s CollectionStatus) Valid() bool {
	switch s {
	case StatusPublished, StatusHidden, StatusDraft:
		return true
	}
	return false
}

// CollectionCategory classifies a collection for filtering
type CollectionCategory string

const (
	CategoryWedding  CollectionCategory = "wedding"
	CategoryPortrait CollectionCategory = "portrait"
	CategoryEvent    CollectionCategory = "event"
	CategoryNature   CollectionCategory = "nature"
	CategoryOther    CollectionCategory = "other"
)

// Label returns the display label for the category
func (c CollectionCategory) Label() string {
	switch c {
	case CategoryWedding:
		return "Wedding"
	case CategoryPortrait:
		return "Portrait"
	case CategoryEvent:
		return "Event"
	case CategoryNature:
		return "Nature"
	case CategoryOther:
		return "Other"
	default:
		return "Unknown"
	}
}

// StatusOptions lists the statuses offered in collection forms
func StatusOptions() []CollectionStatus {
	return []CollectionStatus{StatusDraft, StatusPublished, StatusHidden}
}

// CategoryOptions lists the categories offered in collection forms
func CategoryOptions() []CollectionCategory {
	return []CollectionCategory{CategoryWedding, CategoryPortrait, CategoryEvent, CategoryNature, CategoryOther}
}

// Photo represents a single image in the gallery
type Photo struct {
	ID           string    // Unique, stable identifier
	URL          string    // Full-resolution display URL
	ThumbnailURL string    // Thumbnail URL
	Title        string    // Display title
	Width        int       // Pixel width
	Height       int       // Pixel height
	Size         int64     // File size in bytes
	Starred      bool      // Whether the user starred this photo
	CollectionID string    // Owning collection ID, empty if unassigned
	CreatedAt    time.Time // When the photo was uploaded
	UpdatedAt    time.Time // When the photo was last changed
}

// FormattedSize returns the photo's file size in a human-readable format
func (p Photo) FormattedSize() string {
	return FormatStorage(p.Size)
}

// Resolution returns a human-readable resolution string based on photo height
func (p Photo) Resolution() string {
	switch {
	case p.Height >= 2160:
		return "4K"
	case p.Height >= 1080:
		return "1080p"
	case p.Height >= 720:
		return "720p"
	case p.Height > 0:
		return fmt.Sprintf("%dp", p.Height)
	default:
		return ""
	}
}

// Dimensions returns "WxH" for display, or "" when unknown
func (p Photo) Dimensions() string {
	if p.Width <= 0 || p.Height <= 0 {
		return ""
	}
	return fmt.Sprintf("%dx%d", p.Width, p.Height)
}

// Collection represents a group of photos shared with a client
type Collection struct {
	ID          string             // Unique identifier
	Title       string             // Display title
	Description string             // Optional description, empty if none
	CoverURL    string             // Optional cover image URL
	Status      CollectionStatus   // Publication status
	Category    CollectionCategory // Category for filtering
	PhotoCount  int                // Denormalized photo counter; not recomputed from membership
	Starred     bool               // Whether the user starred this collection
	Password    string             // Optional access password, empty if unprotected
	CreatedAt   time.Time          // When the collection was created
	UpdatedAt   time.Time          // When the collection was last changed
}

// Protected reports whether the collection requires a password
func (c Collection) Protected() bool {
	return c.Password != ""
}

// PhotoSection groups photos inside a single collection.
// The highlights section (SectionHighlights) is synthesized when sections
// are enumerated and never stored as a literal record.
type PhotoSection struct {
	ID          string    // Unique identifier within the collection
	Name        string    // Display name
	Description string    // Optional description
	CreatedAt   time.Time // When the section was created
}

// SectionHighlights is the well-known ID of the implicit first section of
// every collection.
const SectionHighlights = "section-highlights"

// HighlightsSection returns the synthesized default section
func HighlightsSection() PhotoSection {
	return PhotoSection{
		ID:        SectionHighlights,
		Name:      "General",
		CreatedAt: time.Now(),
	}
}

// GalleryStats summarizes the gallery for dashboard display
type GalleryStats struct {
	TotalPhotos      int   // Number of photos
	TotalCollections int   // Number of collections
	StarredPhotos    int   // Number of starred photos
	StorageUsed      int64 // Sum of photo sizes in bytes
}

// User represents the signed-in account
type User struct {
	ID        string    // Account identifier
	Name      string    // Display name
	Email     string    // Sign-in email
	CreatedAt time.Time // When the account was created
	UpdatedAt time.Time // When the account was last changed
}
