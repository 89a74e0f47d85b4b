// Package api implements the HTTP transport collaborator for the gallery
// service: JSON request/response exchange with bearer-token auth and
// status-coded errors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/ewilde/lumen/internal/domain"
)

const (
	defaultTimeout = 30 * time.Second
	userAgent      = "Lumen/1.0"
)

// Client implements domain.GalleryClient and domain.AuthClient against the
// gallery HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger

	// Guards token: SetToken runs from the auth flow while fetches are
	// in flight on other goroutines.
	mu    sync.RWMutex
	token string
}

// NewClient creates a gallery API client. token may be empty until the
// user signs in.
func NewClient(baseURL, token string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
}

// SetToken replaces the bearer token used on subsequent requests
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *Client) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// doRequest performs an authenticated JSON request and returns the raw body
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, payload any) ([]byte, error) {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL = fmt.Sprintf("%s?%s", reqURL, query.Encode())
	}

	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.currentToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.logger.Debug("api request", "method", method, "url", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("api request failed", "error", err)
		return nil, domain.ErrServerOffline
	}
	defer resp.Body.Close()

	respBody, err := readBody(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, domain.ErrAuthFailed
	case resp.StatusCode >= 400:
		return nil, parseError(resp.StatusCode, respBody)
	}

	return respBody, nil
}

func readBody(resp *http.Response) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// parseError converts an error response body into an *Error, keeping any
// field-level validation detail intact
func parseError(status int, body []byte) error {
	apiErr := &Error{StatusCode: status}
	var parsed errorResponse
	if err := json.Unmarshal(body, &parsed); err == nil {
		apiErr.Message = parsed.Message
		apiErr.Fields = parsed.Errors
	}
	return apiErr
}

// ListPhotos returns every photo visible to the account
func (c *Client) ListPhotos(ctx context.Context) ([]domain.Photo, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/photos", nil, nil)
	if err != nil {
		return nil, err
	}

	var resp photosResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse photos response: %w", err)
	}
	return mapPhotos(resp.Photos), nil
}

// ListCollections returns every collection owned by the account
func (c *Client) ListCollections(ctx context.Context) ([]domain.Collection, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/collections", nil, nil)
	if err != nil {
		return nil, err
	}

	var resp collectionsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse collections response: %w", err)
	}
	return mapCollections(resp.Collections), nil
}

// StarPhoto persists a star flip for the photo
func (c *Client) StarPhoto(ctx context.Context, photoID string, starred bool) error {
	path := fmt.Sprintf("/photos/%s/star", url.PathEscape(photoID))
	_, err := c.doRequest(ctx, http.MethodPut, path, nil, starRequest{Starred: starred})
	return err
}

// StarCollection persists a star flip for the collection
func (c *Client) StarCollection(ctx context.Context, collectionID string, starred bool) error {
	path := fmt.Sprintf("/collections/%s/star", url.PathEscape(collectionID))
	_, err := c.doRequest(ctx, http.MethodPut, path, nil, starRequest{Starred: starred})
	return err
}

// CreateCollection persists a new collection
func (c *Client) CreateCollection(ctx context.Context, collection domain.Collection) error {
	_, err := c.doRequest(ctx, http.MethodPost, "/collections", nil, collectionToDTO(collection))
	return err
}

// UpdateCollection persists changes to an existing collection
func (c *Client) UpdateCollection(ctx context.Context, collection domain.Collection) error {
	path := "/collections/" + url.PathEscape(collection.ID)
	_, err := c.doRequest(ctx, http.MethodPatch, path, nil, collectionToDTO(collection))
	return err
}

// DeleteCollection removes the collection server-side
func (c *Client) DeleteCollection(ctx context.Context, collectionID string) error {
	path := "/collections/" + url.PathEscape(collectionID)
	_, err := c.doRequest(ctx, http.MethodDelete, path, nil, nil)
	return err
}

// SignIn exchanges credentials for a bearer token and the account
func (c *Client) SignIn(ctx context.Context, email, password string) (string, domain.User, error) {
	payload := map[string]string{"email": email, "password": password}
	body, err := c.doRequest(ctx, http.MethodPost, "/auth/signin", nil, payload)
	if err != nil {
		return "", domain.User{}, err
	}

	var resp sessionResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", domain.User{}, fmt.Errorf("failed to parse session response: %w", err)
	}
	return resp.Token, mapUser(resp.User), nil
}

// SignUp registers a new account and returns its bearer token
func (c *Client) SignUp(ctx context.Context, name, email, password string) (string, domain.User, error) {
	payload := map[string]string{"name": name, "email": email, "password": password}
	body, err := c.doRequest(ctx, http.MethodPost, "/auth/signup", nil, payload)
	if err != nil {
		return "", domain.User{}, err
	}

	var resp sessionResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", domain.User{}, fmt.Errorf("failed to parse session response: %w", err)
	}
	return resp.Token, mapUser(resp.User), nil
}

// ForgotPassword requests a password-reset email
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	payload := map[string]string{"email": email}
	_, err := c.doRequest(ctx, http.MethodPost, "/auth/forgot-password", nil, payload)
	return err
}

// SignOut invalidates the current token server-side
func (c *Client) SignOut(ctx context.Context) error {
	_, err := c.doRequest(ctx, http.MethodPost, "/auth/signout", nil, nil)
	return err
}

// CurrentUser resolves the account behind the current token
func (c *Client) CurrentUser(ctx context.Context) (domain.User, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/auth/me", nil, nil)
	if err != nil {
		return domain.User{}, err
	}

	var dto userDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return domain.User{}, fmt.Errorf("failed to parse user response: %w", err)
	}
	return mapUser(dto), nil
}
