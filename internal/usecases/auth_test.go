package usecases_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"blogreader/internal/domain"
	"blogreader/internal/usecases"
)

type fakeAuthAPI struct {
	token string
	err   error
}

func (f *fakeAuthAPI) Login(ctx context.Context, email, password string) (string, error) {
	return f.token, f.err
}

type fakeSessionStore struct {
	tokens  map[string]string
	saveErr error
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{tokens: make(map[string]string)}
}

func (f *fakeSessionStore) Token(ctx context.Context, sessionID string) (string, error) {
	return f.tokens[sessionID], nil
}

func (f *fakeSessionStore) Save(ctx context.Context, sessionID, token string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.tokens[sessionID] = token
	return nil
}

func (f *fakeSessionStore) Clear(ctx context.Context, sessionID string) error {
	delete(f.tokens, sessionID)
	return nil
}

func TestLogin_BindsTokenToSession(t *testing.T) {
	// Arrange
	sessions := newFakeSessionStore()
	uc := usecases.NewLoginUseCase(&fakeAuthAPI{token: "jwt-abc"}, sessions)

	// Act
	err := uc.Execute(context.Background(), "sess-1", "reader@example.org", "hunter2")

	// Assert
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := sessions.tokens["sess-1"]; got != "jwt-abc" {
		t.Errorf("stored token: got %q, want %q", got, "jwt-abc")
	}
}

func TestLogin_RejectionLeavesSessionAnonymous(t *testing.T) {
	// Arrange
	sessions := newFakeSessionStore()
	loginErr := fmt.Errorf("%w: invalid email or password", domain.ErrLoginFailed)
	uc := usecases.NewLoginUseCase(&fakeAuthAPI{err: loginErr}, sessions)

	// Act
	err := uc.Execute(context.Background(), "sess-1", "reader@example.org", "wrong")

	// Assert
	if !errors.Is(err, domain.ErrLoginFailed) {
		t.Fatalf("error: got %v, want ErrLoginFailed", err)
	}
	if _, ok := sessions.tokens["sess-1"]; ok {
		t.Error("a rejected login stored a token")
	}
}

func TestLogout_ClearsToken(t *testing.T) {
	// Arrange
	sessions := newFakeSessionStore()
	sessions.tokens["sess-1"] = "jwt-abc"
	uc := usecases.NewLogoutUseCase(sessions)

	// Act
	err := uc.Execute(context.Background(), "sess-1")

	// Assert
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if _, ok := sessions.tokens["sess-1"]; ok {
		t.Error("token survived logout")
	}
}

func TestLogout_AnonymousSessionIsNoOp(t *testing.T) {
	// Arrange
	uc := usecases.NewLogoutUseCase(newFakeSessionStore())

	// Act
	err := uc.Execute(context.Background(), "never-seen")

	// Assert
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
}
