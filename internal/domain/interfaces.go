package domain

import "context"

// GalleryClient is the transport collaborator the gallery store delegates
// data movement to. Implementations: the HTTP API client and the demo client
// (which substitutes simulated latency for real network I/O). Both must
// preserve the same state-transition contract.
type GalleryClient interface {
	// ListPhotos returns every photo visible to the account
	ListPhotos(ctx context.Context) ([]Photo, error)

	// ListCollections returns every collection owned by the account
	ListCollections(ctx context.Context) ([]Collection, error)

	// StarPhoto persists a star flip for the photo
	StarPhoto(ctx context.Context, photoID string, starred bool) error

	// StarCollection persists a star flip for the collection
	StarCollection(ctx context.Context, collectionID string, starred bool) error

	// CreateCollection persists a new collection
	CreateCollection(ctx context.Context, c Collection) error

	// UpdateCollection persists changes to an existing collection
	UpdateCollection(ctx context.Context, c Collection) error

	// DeleteCollection removes the collection server-side
	DeleteCollection(ctx context.Context, collectionID string) error
}

// AuthClient handles credential exchange for the auth store
type AuthClient interface {
	// SignIn exchanges credentials for a bearer token and the account
	SignIn(ctx context.Context, email, password string) (string, User, error)

	// SignUp registers a new account and returns its bearer token
	SignUp(ctx context.Context, name, email, password string) (string, User, error)

	// ForgotPassword requests a reset email; always a cheap round-trip
	ForgotPassword(ctx context.Context, email string) error

	// SignOut invalidates the current token server-side
	SignOut(ctx context.Context) error

	// CurrentUser resolves the account behind the current token
	CurrentUser(ctx context.Context) (User, error)
}

// SectionSource looks up the photo sections defined for a collection.
// Unknown collections yield an empty list, never an error.
type SectionSource interface {
	SectionsForCollection(collectionID string) []PhotoSection
}

// MainSidebar is the capability the workspace store receives to displace
// and later restore the primary navigation sidebar. The workspace store
// only ever touches the open flag through these two calls.
type MainSidebar interface {
	IsOpen() bool
	SetOpen(open bool)
}

// SnapshotStore persists the last fetched gallery lists so the app can
// start warm while a fresh fetch is in flight.
type SnapshotStore interface {
	SavePhotos(photos []Photo) error
	SaveCollections(collections []Collection) error
	GetPhotos() ([]Photo, bool)
	GetCollections() ([]Collection, bool)
}
