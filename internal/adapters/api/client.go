// Package api is the HTTP client for the CMS backend. It attaches the
// session's bearer credential to every request and maps backend rejections
// onto domain errors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"blogreader/internal/domain"
)

// ServerError carries a backend rejection. Message is the backend's
// human-readable reason, echoed verbatim to the user.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend returned status %d", e.Status)
}

// Client talks to the CMS backend.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the backend at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// NewWithHTTPClient creates a client with a custom http.Client.
// Useful for testing.
func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	return &Client{baseURL: baseURL, http: hc}
}

type tokenKey struct{}

// WithToken returns a context carrying the bearer credential for outgoing
// requests. An empty token leaves requests anonymous.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func tokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// ListArticles fetches the article feed.
func (c *Client) ListArticles(ctx context.Context) ([]domain.Article, error) {
	var payload struct {
		Articles []articleDTO `json:"articles"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/articles", nil, &payload); err != nil {
		return nil, err
	}

	out := make([]domain.Article, 0, len(payload.Articles))
	for _, dto := range payload.Articles {
		out = append(out, dto.toDomain())
	}
	return out, nil
}

// GetArticle fetches a single article with its embedded body.
func (c *Client) GetArticle(ctx context.Context, id string) (domain.Article, error) {
	var dto articleDTO
	err := c.do(ctx, http.MethodGet, "/api/site/articles/"+id, nil, &dto)
	if err != nil {
		var srvErr *ServerError
		if errors.As(err, &srvErr) && srvErr.Status == http.StatusNotFound {
			return domain.Article{}, domain.ErrArticleNotFound
		}
		return domain.Article{}, err
	}
	if dto.ID == "" {
		return domain.Article{}, domain.ErrArticleNotFound
	}
	return dto.toDomain(), nil
}

// LikeArticle toggles the reader's like and returns the confirmed counters.
func (c *Client) LikeArticle(ctx context.Context, articleID string) (domain.LikeUpdate, error) {
	body := map[string]string{"articleId": articleID}
	var result domain.LikeUpdate
	if err := c.do(ctx, http.MethodPost, "/api/site/articles/like", body, &result); err != nil {
		return domain.LikeUpdate{}, err
	}
	return result, nil
}

// ListComments fetches the full ordered comment sequence for an article.
func (c *Client) ListComments(ctx context.Context, articleID string) ([]domain.Comment, error) {
	var dtos []commentDTO
	if err := c.do(ctx, http.MethodGet, "/api/site/comments/"+articleID, nil, &dtos); err != nil {
		return nil, err
	}

	out := make([]domain.Comment, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, dto.toDomain(articleID))
	}
	return out, nil
}

// CommentCount fetches the lightweight summary counter for an article.
func (c *Client) CommentCount(ctx context.Context, articleID string) (int, error) {
	var payload struct {
		Count int `json:"count"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/site/comments/count/"+articleID, nil, &payload); err != nil {
		return 0, err
	}
	return payload.Count, nil
}

// PostComment submits a comment. The caller is responsible for the follow-up
// authoritative count fetch; the post response is not trusted for counters.
func (c *Client) PostComment(ctx context.Context, articleID, content string) error {
	body := map[string]string{"articleId": articleID, "content": content}
	return c.do(ctx, http.MethodPost, "/api/site/comments", body, nil)
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}
	var payload struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &payload); err != nil {
		var srvErr *ServerError
		if errors.As(err, &srvErr) {
			return "", fmt.Errorf("%w: %s", domain.ErrLoginFailed, srvErr.Message)
		}
		return "", err
	}
	if payload.Token == "" {
		return "", domain.ErrLoginFailed
	}
	return payload.Token, nil
}

// MainMenu fetches the navigation entries.
func (c *Client) MainMenu(ctx context.Context) ([]domain.MenuItem, error) {
	var dtos []menuItemDTO
	if err := c.do(ctx, http.MethodGet, "/api/site/main-menu/getMainMenuItems", nil, &dtos); err != nil {
		return nil, err
	}
	items := make([]domain.MenuItem, 0, len(dtos))
	for _, dto := range dtos {
		items = append(items, dto.toDomain())
	}
	return items, nil
}

// do runs one request. The bearer credential from the context is attached
// when present; a 403 response means the credential itself is no longer
// accepted and maps to domain.ErrSessionExpired.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := tokenFrom(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden {
		return domain.ErrSessionExpired
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &ServerError{Status: resp.StatusCode, Message: decodeMessage(resp.Body)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// decodeMessage pulls the backend's failure reason out of an error envelope.
func decodeMessage(r io.Reader) string {
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r).Decode(&envelope); err != nil {
		return ""
	}
	return envelope.Message
}
