package web_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"blogreader/internal/adapters/api"
	"blogreader/internal/adapters/web"
	"blogreader/internal/domain"
	"blogreader/test/fixtures"
)

func TestSessionMiddleware_MintsCookieForNewVisitors(t *testing.T) {
	// Arrange
	app, _ := newTestApp(t, &fakeBackend{}, &fakeSessions{})

	// Act
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/home", nil))

	// Assert
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == "reader_session" {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatal("no session cookie minted")
	}
	if cookie.Value == "" {
		t.Error("session cookie has no id")
	}
	if !cookie.HttpOnly {
		t.Error("session cookie is not HttpOnly")
	}
}

func TestSessionMiddleware_KeepsExistingCookie(t *testing.T) {
	// Arrange
	app, _ := newTestApp(t, &fakeBackend{}, &fakeSessions{})
	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	req.AddCookie(&http.Cookie{Name: "reader_session", Value: "sess-1"})

	// Act
	resp, err := app.Test(req)

	// Assert
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	for _, c := range resp.Cookies() {
		if c.Name == "reader_session" {
			t.Errorf("known session re-minted a cookie: %q", c.Value)
		}
	}
}

func TestRateLimiter_ThrottlesMutationBursts(t *testing.T) {
	// Arrange: one request allowed, no refill worth speaking of
	limiter := web.NewRateLimiter(0.001, 1)
	app := fiber.New()
	app.Post("/hit", limiter.Middleware(), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	// Act
	first, err := app.Test(httptest.NewRequest(http.MethodPost, "/hit", nil))
	if err != nil {
		t.Fatalf("first request: %v", err)
	}
	second, err := app.Test(httptest.NewRequest(http.MethodPost, "/hit", nil))

	// Assert
	if err != nil {
		t.Fatalf("second request: %v", err)
	}
	if first.StatusCode != http.StatusOK {
		t.Errorf("first status: got %d, want 200", first.StatusCode)
	}
	if second.StatusCode != http.StatusTooManyRequests {
		t.Errorf("second status: got %d, want 429", second.StatusCode)
	}
}

func TestFail_BackendReasonIsEchoedVerbatim(t *testing.T) {
	// Arrange
	backend := &fakeBackend{
		articles: []domain.Article{fixtures.Article("a1", 0, 0)},
		postErr:  &api.ServerError{Status: 422, Message: "comments are closed for this article"},
	}
	sessions := &fakeSessions{tokens: map[string]string{"sess-1": "jwt-abc"}}
	app, st := newTestApp(t, backend, sessions)
	st.Load(backend.articles)

	// Act
	resp, err := app.Test(signedInRequest(http.MethodPost, "/articles/a1/comments",
		strings.NewReader(`{"content":"hello"}`)))

	// Assert
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("status: got %d, want 502", resp.StatusCode)
	}
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Message != "comments are closed for this article" {
		t.Errorf("message: got %q, want the backend's own words", payload.Message)
	}
}
