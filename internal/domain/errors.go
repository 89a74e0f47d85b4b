package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrCollectionNotFound indicates the referenced collection does not exist
	ErrCollectionNotFound = errors.New("collection not found")

	// ErrPhotoNotFound indicates the referenced photo does not exist
	ErrPhotoNotFound = errors.New("photo not found")

	// ErrServerOffline indicates the gallery server is unreachable
	ErrServerOffline = errors.New("gallery server is unreachable")

	// ErrAuthFailed indicates the auth token is missing or invalid
	ErrAuthFailed = errors.New("authentication token is invalid")
)
