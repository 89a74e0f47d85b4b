package demo

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/ewilde/lumen/internal/domain"
)

const day = 24 * time.Hour

// Sample image helpers: 1-15 for collection covers, 16-30 for photos
func collectionImage(index int) string {
	n := ((index - 1) % 15) + 1
	return fmt.Sprintf("/images/samples/photo-%d.jpg", n)
}

func photoImage(index int) string {
	n := ((index - 1) % 15) + 16
	return fmt.Sprintf("/images/samples/photo-%d.jpg", n)
}

// samplePhotos generates the demo photo set: 18 photos, the first three
// starred, the first eight split across two collections.
func samplePhotos(now time.Time, rng *rand.Rand) []domain.Photo {
	photos := make([]domain.Photo, 0, 18)
	for i := 1; i <= 18; i++ {
		var collectionID string
		switch {
		case i <= 4:
			collectionID = "collection-1"
		case i <= 8:
			collectionID = "collection-2"
		}

		created := now.Add(-time.Duration(i) * day)
		img := photoImage(i)
		photos = append(photos, domain.Photo{
			ID:           fmt.Sprintf("photo-%d", i),
			URL:          img,
			ThumbnailURL: img,
			Title:        fmt.Sprintf("Photo %d", i),
			Width:        800 + rng.Intn(400),
			Height:       600 + rng.Intn(300),
			Size:         int64(rng.Intn(5_000_000)) + 500_000, // 500KB to 5.5MB
			Starred:      i <= 3,
			CollectionID: collectionID,
			CreatedAt:    created,
			UpdatedAt:    created,
		})
	}
	return photos
}

// sampleCollections generates the demo collection set
func sampleCollections(now time.Time) []domain.Collection {
	return []domain.Collection{
		{
			ID:          "collection-1",
			Title:       "Summer Wedding 2024",
			Description: "Beautiful outdoor wedding ceremony",
			CoverURL:    collectionImage(1),
			Status:      domain.StatusPublished,
			Category:    domain.CategoryWedding,
			PhotoCount:  45,
			Starred:     true,
			CreatedAt:   now.Add(-5 * day),
			UpdatedAt:   now.Add(-2 * day),
		},
		{
			ID:          "collection-2",
			Title:       "Corporate Event",
			Description: "Annual company celebration",
			CoverURL:    collectionImage(2),
			Status:      domain.StatusPublished,
			Category:    domain.CategoryEvent,
			PhotoCount:  28,
			CreatedAt:   now.Add(-10 * day),
			UpdatedAt:   now.Add(-3 * day),
		},
		{
			ID:          "collection-3",
			Title:       "Family Portrait Session",
			Description: "Studio portraits for the Johnson family",
			CoverURL:    collectionImage(3),
			Status:      domain.StatusHidden,
			Category:    domain.CategoryPortrait,
			PhotoCount:  15,
			Starred:     true,
			Password:    "family123",
			CreatedAt:   now.Add(-15 * day),
			UpdatedAt:   now.Add(-7 * day),
		},
		{
			ID:          "collection-4",
			Title:       "Nature Walk",
			Description: "Autumn landscapes and wildlife",
			CoverURL:    collectionImage(4),
			Status:      domain.StatusHidden,
			Category:    domain.CategoryNature,
			PhotoCount:  32,
			CreatedAt:   now.Add(-20 * day),
			UpdatedAt:   now.Add(-10 * day),
		},
		{
			ID:          "collection-5",
			Title:       "Beach Wedding",
			Description: "Sunset ceremony by the ocean",
			CoverURL:    collectionImage(5),
			Status:      domain.StatusDraft,
			Category:    domain.CategoryWedding,
			CreatedAt:   now.Add(-2 * day),
			UpdatedAt:   now.Add(-1 * day),
		},
		{
			ID:          "collection-6",
			Title:       "Untitled Collection",
			Description: "--",
			Status:      domain.StatusDraft,
			Category:    domain.CategoryOther,
			CreatedAt:   now.Add(-1 * day),
			UpdatedAt:   now.Add(-1 * day),
		},
		{
			ID:          "collection-7",
			Title:       "Graduation Ceremony",
			Description: "Class of 2024 graduation photos",
			CoverURL:    collectionImage(7),
			Status:      domain.StatusPublished,
			Category:    domain.CategoryEvent,
			PhotoCount:  52,
			CreatedAt:   now.Add(-25 * day),
			UpdatedAt:   now.Add(-12 * day),
		},
		{
			ID:          "collection-8",
			Title:       "Product Shoot",
			Description: "E-commerce product photography",
			CoverURL:    collectionImage(8),
			Status:      domain.StatusHidden,
			Category:    domain.CategoryOther,
			PhotoCount:  24,
			Starred:     true,
			CreatedAt:   now.Add(-30 * day),
			UpdatedAt:   now.Add(-14 * day),
		},
		{
			ID:          "collection-9",
			Title:       "Engagement Session",
			Description: "Pre-wedding couple photoshoot",
			CoverURL:    collectionImage(9),
			Status:      domain.StatusPublished,
			Category:    domain.CategoryWedding,
			PhotoCount:  38,
			CreatedAt:   now.Add(-35 * day),
			UpdatedAt:   now.Add(-18 * day),
		},
		{
			ID:          "collection-10",
			Title:       "Birthday Party",
			Description: "Kids birthday celebration",
			CoverURL:    collectionImage(10),
			Status:      domain.StatusDraft,
			Category:    domain.CategoryEvent,
			PhotoCount:  19,
			CreatedAt:   now.Add(-40 * day),
			UpdatedAt:   now.Add(-20 * day),
		},
	}
}

// sectionPresets returns the per-collection custom sections. Collections
// absent from the map have no custom sections, only the synthesized
// highlights entry.
func sectionPresets(now time.Time) map[string][]domain.PhotoSection {
	return map[string][]domain.PhotoSection{
		// Summer Wedding
		"collection-1": {
			{ID: "section-1", Name: "Getting Ready", Description: "Bridal prep and morning moments", CreatedAt: now.Add(-5 * day)},
			{ID: "section-2", Name: "Ceremony", Description: "Vows and ring exchange", CreatedAt: now.Add(-3 * day)},
			{ID: "section-3", Name: "Reception", Description: "Party, speeches, first dance", CreatedAt: now.Add(-1 * day)},
		},
		// Corporate Event
		"collection-2": {
			{ID: "section-4", Name: "Keynote", Description: "Main stage presentations", CreatedAt: now.Add(-10 * day)},
			{ID: "section-5", Name: "Networking", Description: "Cocktails and mingling", CreatedAt: now.Add(-9 * day)},
		},
		// Graduation Ceremony
		"collection-7": {
			{ID: "section-6", Name: "Processional", Description: "Cap and gown walk", CreatedAt: now.Add(-25 * day)},
			{ID: "section-7", Name: "Speeches", Description: "Valedictorian and guest speakers", CreatedAt: now.Add(-24 * day)},
			{ID: "section-8", Name: "Portraits", Description: "Individual and group portraits", CreatedAt: now.Add(-23 * day)},
		},
		// Engagement Session
		"collection-9": {
			{ID: "section-9", Name: "Golden Hour", Description: "Sunset shots at the park", CreatedAt: now.Add(-35 * day)},
			{ID: "section-10", Name: "Candid Moments", Description: "Natural, unposed captures", CreatedAt: now.Add(-34 * day)},
		},
	}
}
