package api

import (
	"time"

	"github.com/ewilde/lumen/internal/domain"
)

// Wire DTOs. Field names follow the server's JSON contract; mapping to
// domain types happens at the client boundary so nothing above it sees
// wire shapes.

type photoDTO struct {
	ID           string    `json:"id"`
	URL          string    `json:"url"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	Title        string    `json:"title"`
	Width        int       `json:"width"`
	Height       int       `json:"height"`
	Size         int64     `json:"size"`
	Starred      bool      `json:"starred"`
	CollectionID string    `json:"collectionId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type collectionDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	CoverURL    string    `json:"coverUrl,omitempty"`
	Status      string    `json:"status"`
	Category    string    `json:"category"`
	PhotoCount  int       `json:"photoCount"`
	Starred     bool      `json:"starred"`
	Password    string    `json:"password,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type userDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type photosResponse struct {
	Photos  []photoDTO `json:"photos"`
	Total   int        `json:"total"`
	Page    int        `json:"page"`
	PerPage int        `json:"perPage"`
}

type collectionsResponse struct {
	Collections []collectionDTO `json:"collections"`
	Total       int             `json:"total"`
}

type sessionResponse struct {
	Token string  `json:"token"`
	User  userDTO `json:"user"`
}

type errorResponse struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

type starRequest struct {
	Starred bool `json:"starred"`
}

func mapPhoto(dto photoDTO) domain.Photo {
	return domain.Photo{
		ID:           dto.ID,
		URL:          dto.URL,
		ThumbnailURL: dto.ThumbnailURL,
		Title:        dto.Title,
		Width:        dto.Width,
		Height:       dto.Height,
		Size:         dto.Size,
		Starred:      dto.Starred,
		CollectionID: dto.CollectionID,
		CreatedAt:    dto.CreatedAt,
		UpdatedAt:    dto.UpdatedAt,
	}
}

func mapPhotos(dtos []photoDTO) []domain.Photo {
	photos := make([]domain.Photo, 0, len(dtos))
	for _, dto := range dtos {
		photos = append(photos, mapPhoto(dto))
	}
	return photos
}

func mapCollection(dto collectionDTO) domain.Collection {
	return domain.Collection{
		ID:          dto.ID,
		Title:       dto.Title,
		Description: dto.Description,
		CoverURL:    dto.CoverURL,
		Status:      domain.CollectionStatus(dto.Status),
		Category:    domain.CollectionCategory(dto.Category),
		PhotoCount:  dto.PhotoCount,
		Starred:     dto.Starred,
		Password:    dto.Password,
		CreatedAt:   dto.CreatedAt,
		UpdatedAt:   dto.UpdatedAt,
	}
}

func mapCollections(dtos []collectionDTO) []domain.Collection {
	collections := make([]domain.Collection, 0, len(dtos))
	for _, dto := range dtos {
		collections = append(collections, mapCollection(dto))
	}
	return collections
}

func collectionToDTO(c domain.Collection) collectionDTO {
	return collectionDTO{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		CoverURL:    c.CoverURL,
		Status:      string(c.Status),
		Category:    string(c.Category),
		PhotoCount:  c.PhotoCount,
		Starred:     c.Starred,
		Password:    c.Password,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func mapUser(dto userDTO) domain.User {
	return domain.User{
		ID:        dto.ID,
		Name:      dto.Name,
		Email:     dto.Email,
		CreatedAt: dto.CreatedAt,
		UpdatedAt: dto.UpdatedAt,
	}
}
