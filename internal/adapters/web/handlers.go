package web

import (
	"errors"

	"blogreader/internal/adapters/api"
	"blogreader/internal/adapters/session"
	"blogreader/internal/domain"
	"blogreader/internal/render"
	"blogreader/internal/store"
	"blogreader/internal/usecases"
	"blogreader/pkg/log"

	"github.com/gofiber/fiber/v2"
)

// Handlers contains the HTTP handlers for the reading gateway.
type Handlers struct {
	store    *store.Store
	renderer *render.Renderer

	loadFeed    *usecases.LoadFeedUseCase
	viewArticle *usecases.ViewArticleUseCase
	like        *usecases.LikeArticleUseCase
	comment     *usecases.PostCommentUseCase
	login       *usecases.LoginUseCase
	logout      *usecases.LogoutUseCase
	menu        *usecases.LoadMenuUseCase

	sessions session.Store
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(
	st *store.Store,
	renderer *render.Renderer,
	loadFeed *usecases.LoadFeedUseCase,
	viewArticle *usecases.ViewArticleUseCase,
	like *usecases.LikeArticleUseCase,
	comment *usecases.PostCommentUseCase,
	login *usecases.LoginUseCase,
	logout *usecases.LogoutUseCase,
	menu *usecases.LoadMenuUseCase,
	sessions session.Store,
) *Handlers {
	return &Handlers{
		store:       st,
		renderer:    renderer,
		loadFeed:    loadFeed,
		viewArticle: viewArticle,
		like:        like,
		comment:     comment,
		login:       login,
		logout:      logout,
		menu:        menu,
		sessions:    sessions,
	}
}

// Home renders the feed projection from the engagement store snapshot,
// reloading the collection from the backend first.
func (h *Handlers) Home(c *fiber.Ctx) error {
	sess := CurrentSession(c)
	ctx := api.WithToken(c.UserContext(), sess.BearerToken())

	if err := h.loadFeed.Execute(ctx); err != nil {
		return h.fail(c, err)
	}

	snapshot := h.store.Snapshot()
	summaries := make([]ArticleSummary, 0, len(snapshot.Articles))
	for _, a := range snapshot.Articles {
		summaries = append(summaries, summarize(a, h.excerpt(a)))
	}
	return c.JSON(FeedView{Articles: summaries, Version: snapshot.Version})
}

// excerpt renders a plain-text preview when the feed payload includes a
// body. Articles without one simply have no excerpt.
func (h *Handlers) excerpt(a domain.Article) string {
	html, err := h.renderer.Render(a.Body)
	if err != nil {
		return ""
	}
	return render.Excerpt(html, excerptLength)
}

// Article renders the detail projection: title, sanitized body (or the
// empty-article placeholder), counters and the full comment list.
func (h *Handlers) Article(c *fiber.Ctx) error {
	articleID := c.Params("articleId")
	sess := CurrentSession(c)
	ctx := api.WithToken(c.UserContext(), sess.BearerToken())

	view, err := h.viewArticle.Execute(ctx, articleID)
	if err != nil {
		return h.fail(c, err)
	}

	// The feed and detail views share counters through the store; fall back
	// to the fetched payload when the article was reached directly.
	stored, ok := h.store.Get(articleID)
	if !ok {
		stored = view.Article
	}
	return c.JSON(detail(view, stored))
}

// Like toggles the reader's like on an article.
func (h *Handlers) Like(c *fiber.Ctx) error {
	articleID := c.Params("articleId")
	sess := CurrentSession(c)
	ctx := api.WithToken(c.UserContext(), sess.BearerToken())

	if err := h.like.Execute(ctx, sess, articleID); err != nil {
		return h.fail(c, err)
	}

	article, _ := h.store.Get(articleID)
	return c.JSON(fiber.Map{"id": articleID, "noOfLikes": article.NoOfLikes})
}

// ToggleComposer opens or closes the comment box for one article.
func (h *Handlers) ToggleComposer(c *fiber.Ctx) error {
	articleID := c.Params("articleId")
	sess := CurrentSession(c)

	if err := h.comment.ToggleComposer(sess, articleID); err != nil {
		return h.fail(c, err)
	}

	article, _ := h.store.Get(articleID)
	return c.JSON(fiber.Map{"id": articleID, "isCommentOpen": article.IsCommentOpen})
}

// PostComment submits a comment and reports the refreshed counter.
func (h *Handlers) PostComment(c *fiber.Ctx) error {
	articleID := c.Params("articleId")
	sess := CurrentSession(c)
	ctx := api.WithToken(c.UserContext(), sess.BearerToken())

	var body struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&body); err != nil {
		return h.fail(c, domain.ErrEmptyComment)
	}

	if err := h.comment.Execute(ctx, sess, articleID, body.Content); err != nil {
		return h.fail(c, err)
	}

	article, _ := h.store.Get(articleID)
	return c.JSON(fiber.Map{
		"id":           articleID,
		"message":      "Comment added successfully",
		"noOfComments": article.NoOfComments,
	})
}

// Login exchanges credentials for a session-bound token.
func (h *Handlers) Login(c *fiber.Ctx) error {
	sess := CurrentSession(c)

	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&body); err != nil {
		return h.fail(c, domain.ErrLoginFailed)
	}

	if err := h.login.Execute(c.UserContext(), sess.ID, body.Email, body.Password); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Signed in"})
}

// Logout clears the session credential.
func (h *Handlers) Logout(c *fiber.Ctx) error {
	sess := CurrentSession(c)
	if err := h.logout.Execute(c.UserContext(), sess.ID); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Signed out"})
}

// Menu returns the navigation entries.
func (h *Handlers) Menu(c *fiber.Ctx) error {
	sess := CurrentSession(c)
	ctx := api.WithToken(c.UserContext(), sess.BearerToken())

	items, err := h.menu.Execute(ctx)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(items)
}

// fail maps domain errors onto responses. Unauthenticated actions redirect
// to the login boundary instead of surfacing an error; an expired session
// additionally clears the stored credential first.
func (h *Handlers) fail(c *fiber.Ctx, err error) error {
	sess := CurrentSession(c)

	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		return c.Redirect("/login", fiber.StatusSeeOther)
	case errors.Is(err, domain.ErrSessionExpired):
		if clearErr := h.sessions.Clear(c.UserContext(), sess.ID); clearErr != nil {
			log.ErrorCtx(c.UserContext(), "session clear failed", "error", clearErr)
		}
		return c.Redirect("/login", fiber.StatusSeeOther)
	case errors.Is(err, domain.ErrArticleNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": friendlyError(err)})
	case errors.Is(err, domain.ErrEmptyComment), errors.Is(err, domain.ErrCommentInFlight):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": friendlyError(err)})
	case errors.Is(err, domain.ErrLoginFailed):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": friendlyError(err)})
	}

	var srvErr *api.ServerError
	if errors.As(err, &srvErr) && srvErr.Message != "" {
		// The backend's reason is echoed verbatim.
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": srvErr.Message})
	}

	return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": friendlyError(err)})
}

// friendlyError returns a neutral, non-blaming user message.
func friendlyError(err error) string {
	switch {
	case errors.Is(err, domain.ErrArticleNotFound):
		return "Article not found"
	case errors.Is(err, domain.ErrEmptyComment):
		return "Write something before posting your comment."
	case errors.Is(err, domain.ErrCommentInFlight):
		return "Your comment is still being posted. Hang on a moment."
	case errors.Is(err, domain.ErrLoginFailed):
		return "Login failed. Check your email and password."
	default:
		return "Something went wrong talking to the blog. Please try again."
	}
}
