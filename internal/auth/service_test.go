package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/ewilde/lumen/internal/domain"
	applog "github.com/ewilde/lumen/internal/log"
)

// fakeAuthClient answers with canned responses and records credentials
type fakeAuthClient struct {
	signInErr  error
	signOutErr error
	userErr    error

	gotEmail    string
	gotPassword string
}

func (f *fakeAuthClient) SignIn(ctx context.Context, email, password string) (string, domain.User, error) {
	f.gotEmail, f.gotPassword = email, password
	if f.signInErr != nil {
		return "", domain.User{}, f.signInErr
	}
	return "token-1", domain.User{ID: "user-1", Email: email}, nil
}

func (f *fakeAuthClient) SignUp(ctx context.Context, name, email, password string) (string, domain.User, error) {
	return "token-2", domain.User{ID: "user-2", Name: name, Email: email}, nil
}

func (f *fakeAuthClient) ForgotPassword(ctx context.Context, email string) error {
	f.gotEmail = email
	return nil
}

func (f *fakeAuthClient) SignOut(ctx context.Context) error {
	return f.signOutErr
}

func (f *fakeAuthClient) CurrentUser(ctx context.Context) (domain.User, error) {
	if f.userErr != nil {
		return domain.User{}, f.userErr
	}
	return domain.User{ID: "user-1", Email: "user@example.com"}, nil
}

// recordingSink captures every token handed to the transport
type recordingSink struct {
	tokens []string
}

func (r *recordingSink) SetToken(token string) {
	r.tokens = append(r.tokens, token)
}

func TestSignIn(t *testing.T) {
	client := &fakeAuthClient{}
	sink := &recordingSink{}
	service := NewService(client, sink, applog.NullLogger())

	if service.IsAuthenticated() {
		t.Fatal("authenticated before sign-in")
	}

	if err := service.SignIn(context.Background(), "user@example.com", "password"); err != nil {
		t.Fatalf("SignIn() error = %v", err)
	}

	if !service.IsAuthenticated() {
		t.Error("IsAuthenticated() = false after sign-in")
	}
	if service.Token() != "token-1" {
		t.Errorf("Token() = %q, want token-1", service.Token())
	}
	user, ok := service.User()
	if !ok || user.ID != "user-1" {
		t.Errorf("User() = %+v, %v", user, ok)
	}
	if len(sink.tokens) != 1 || sink.tokens[0] != "token-1" {
		t.Errorf("sink received %v, want [token-1]", sink.tokens)
	}
}

func TestSignIn_ErrorLeavesSignedOut(t *testing.T) {
	client := &fakeAuthClient{signInErr: errors.New("bad credentials")}
	service := NewService(client, nil, applog.NullLogger())

	if err := service.SignIn(context.Background(), "user@example.com", "wrong"); err == nil {
		t.Fatal("SignIn() error = nil, want failure")
	}
	if service.IsAuthenticated() {
		t.Error("authenticated after failed sign-in")
	}
	if service.Token() != "" {
		t.Errorf("Token() = %q, want empty", service.Token())
	}
}

func TestSignOut_ClearsLocalStateEvenOnServerError(t *testing.T) {
	client := &fakeAuthClient{signOutErr: errors.New("server unavailable")}
	sink := &recordingSink{}
	service := NewService(client, sink, applog.NullLogger())

	if err := service.SignIn(context.Background(), "user@example.com", "password"); err != nil {
		t.Fatalf("SignIn() error = %v", err)
	}

	err := service.SignOut(context.Background())
	if err == nil {
		t.Error("SignOut() error = nil, want the server error")
	}
	if service.IsAuthenticated() {
		t.Error("still authenticated after sign-out")
	}
	if last := sink.tokens[len(sink.tokens)-1]; last != "" {
		t.Errorf("sink last token = %q, want cleared", last)
	}
}

func TestFetchUser(t *testing.T) {
	client := &fakeAuthClient{}
	service := NewService(client, nil, applog.NullLogger())

	// Without a token the call is a silent no-op.
	if err := service.FetchUser(context.Background()); err != nil {
		t.Fatalf("FetchUser() without token error = %v", err)
	}
	if _, ok := service.User(); ok {
		t.Error("User() ok = true without a session")
	}

	service.RestoreToken("persisted-token")
	if err := service.FetchUser(context.Background()); err != nil {
		t.Fatalf("FetchUser() error = %v", err)
	}
	if !service.IsAuthenticated() {
		t.Error("IsAuthenticated() = false after token restore and fetch")
	}
}

func TestRestoreToken_FeedsSink(t *testing.T) {
	sink := &recordingSink{}
	service := NewService(&fakeAuthClient{}, sink, applog.NullLogger())

	service.RestoreToken("persisted-token")

	if service.Token() != "persisted-token" {
		t.Errorf("Token() = %q, want persisted-token", service.Token())
	}
	if len(sink.tokens) != 1 || sink.tokens[0] != "persisted-token" {
		t.Errorf("sink received %v, want [persisted-token]", sink.tokens)
	}
}

func TestSignUp(t *testing.T) {
	service := NewService(&fakeAuthClient{}, nil, applog.NullLogger())

	if err := service.SignUp(context.Background(), "New User", "new@example.com", "password"); err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}
	user, ok := service.User()
	if !ok || user.Name != "New User" {
		t.Errorf("User() = %+v, %v", user, ok)
	}
}
