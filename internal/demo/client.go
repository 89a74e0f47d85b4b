// Package demo is the offline stand-in for the gallery API: it serves the
// sample dataset through the same transport contract, substituting a
// simulated latency delay for real network I/O. The state transitions the
// gallery store performs are identical against either client.
package demo

import (
	"context"
	"math/rand"
	"time"

	"github.com/ewilde/lumen/internal/api"
	"github.com/ewilde/lumen/internal/domain"
)

const (
	defaultLatency = 300 * time.Millisecond
	starLatency    = 100 * time.Millisecond
)

// Demo credentials accepted by SignIn
const (
	DemoEmail    = "user@example.com"
	DemoPassword = "password"
)

// Client implements domain.GalleryClient, domain.AuthClient, and
// domain.SectionSource over in-process sample data.
type Client struct {
	latency time.Duration
	now     time.Time
	rng     *rand.Rand

	photos      []domain.Photo
	collections []domain.Collection
	sections    map[string][]domain.PhotoSection
	user        domain.User
}

// Option configures a demo client
type Option func(*Client)

// WithLatency overrides the simulated request latency. Zero makes every
// call resolve immediately, which tests rely on.
func WithLatency(d time.Duration) Option {
	return func(c *Client) { c.latency = d }
}

// WithSeed fixes the RNG seed used for photo dimensions and sizes
func WithSeed(seed int64) Option {
	return func(c *Client) { c.rng = rand.New(rand.NewSource(seed)) }
}

// NewClient creates a demo client populated with the sample dataset
func NewClient(opts ...Option) *Client {
	c := &Client{
		latency: defaultLatency,
		now:     time.Now(),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.photos = samplePhotos(c.now, c.rng)
	c.collections = sampleCollections(c.now)
	c.sections = sectionPresets(c.now)
	c.user = domain.User{
		ID:        "1",
		Name:      "John Doe",
		Email:     DemoEmail,
		CreatedAt: c.now,
		UpdatedAt: c.now,
	}
	return c
}

// delay blocks for the given duration or until the context is cancelled
func (c *Client) delay(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ListPhotos returns the sample photo set
func (c *Client) ListPhotos(ctx context.Context) ([]domain.Photo, error) {
	if err := c.delay(ctx, c.latency); err != nil {
		return nil, err
	}
	return append([]domain.Photo(nil), c.photos...), nil
}

// ListCollections returns the sample collection set
func (c *Client) ListCollections(ctx context.Context) ([]domain.Collection, error) {
	if err := c.delay(ctx, c.latency); err != nil {
		return nil, err
	}
	return append([]domain.Collection(nil), c.collections...), nil
}

// StarPhoto simulates persisting a star flip. Unknown IDs fail the way a
// real server would.
func (c *Client) StarPhoto(ctx context.Context, photoID string, starred bool) error {
	if err := c.delay(ctx, minDuration(starLatency, c.latency)); err != nil {
		return err
	}
	for i := range c.photos {
		if c.photos[i].ID == photoID {
			return nil
		}
	}
	return domain.ErrPhotoNotFound
}

// StarCollection simulates persisting a star flip
func (c *Client) StarCollection(ctx context.Context, collectionID string, starred bool) error {
	if err := c.delay(ctx, minDuration(starLatency, c.latency)); err != nil {
		return err
	}
	for i := range c.collections {
		if c.collections[i].ID == collectionID {
			return nil
		}
	}
	return domain.ErrCollectionNotFound
}

// CreateCollection simulates persisting a new collection
func (c *Client) CreateCollection(ctx context.Context, collection domain.Collection) error {
	return c.delay(ctx, c.latency)
}

// UpdateCollection simulates persisting collection changes
func (c *Client) UpdateCollection(ctx context.Context, collection domain.Collection) error {
	return c.delay(ctx, c.latency)
}

// DeleteCollection simulates a server-side delete
func (c *Client) DeleteCollection(ctx context.Context, collectionID string) error {
	return c.delay(ctx, c.latency)
}

// SectionsForCollection returns the preset custom sections for a
// collection; unknown collections yield nil.
func (c *Client) SectionsForCollection(collectionID string) []domain.PhotoSection {
	return append([]domain.PhotoSection(nil), c.sections[collectionID]...)
}

// SignIn validates the demo credentials and returns a fake token
func (c *Client) SignIn(ctx context.Context, email, password string) (string, domain.User, error) {
	if err := c.delay(ctx, c.latency); err != nil {
		return "", domain.User{}, err
	}
	if email != DemoEmail || password != DemoPassword {
		return "", domain.User{}, &api.Error{
			StatusCode: 401,
			Message:    "Invalid credentials. Please try again.",
		}
	}
	user := c.user
	user.Email = email
	return "demo-jwt-token", user, nil
}

// SignUp registers a demo account; "taken@example.com" is always rejected
// with a field-level validation error.
func (c *Client) SignUp(ctx context.Context, name, email, password string) (string, domain.User, error) {
	if err := c.delay(ctx, c.latency); err != nil {
		return "", domain.User{}, err
	}
	if email == "taken@example.com" {
		return "", domain.User{}, &api.Error{
			StatusCode: 422,
			Message:    "Email already registered",
			Fields: map[string][]string{
				"email": {"This email is already registered."},
			},
		}
	}
	user := c.user
	user.Name = name
	user.Email = email
	return "demo-jwt-token", user, nil
}

// ForgotPassword always succeeds in demo mode
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	return c.delay(ctx, c.latency)
}

// SignOut simulates invalidating the session
func (c *Client) SignOut(ctx context.Context) error {
	return c.delay(ctx, minDuration(200*time.Millisecond, c.latency))
}

// CurrentUser returns the demo account
func (c *Client) CurrentUser(ctx context.Context) (domain.User, error) {
	if err := c.delay(ctx, c.latency); err != nil {
		return domain.User{}, err
	}
	return c.user, nil
}

func minDuration(a, b time.Duration) time.Duration {
	if a < b {
		return a
	}
	return b
}
