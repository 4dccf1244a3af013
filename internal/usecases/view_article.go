package usecases

import (
	"context"
	"errors"

	"blogreader/internal/domain"
	"blogreader/pkg/log"
)

// ArticleView is everything the detail page needs: the article, its rendered
// body and the full comment list. BodyHTML is "" and Empty is true when the
// body has no renderable content.
type ArticleView struct {
	Article  domain.Article
	BodyHTML string
	Empty    bool
	Comments []domain.Comment
}

// ViewArticleUseCase assembles the detail view. The article fetch is the
// gate: if it fails, neither the body render nor the comment fetch runs.
type ViewArticleUseCase struct {
	articles ArticleAPI
	comments CommentAPI
	renderer DocumentRenderer
}

// NewViewArticleUseCase creates a new ViewArticleUseCase.
func NewViewArticleUseCase(articles ArticleAPI, comments CommentAPI, renderer DocumentRenderer) *ViewArticleUseCase {
	return &ViewArticleUseCase{articles: articles, comments: comments, renderer: renderer}
}

// Execute loads one article, renders its body and fetches its comments.
// The request-scoped ctx drops late responses for a view the reader already
// left. A failed comment fetch degrades to an empty list; the article itself
// still displays.
func (uc *ViewArticleUseCase) Execute(ctx context.Context, articleID string) (ArticleView, error) {
	article, err := uc.articles.GetArticle(ctx, articleID)
	if err != nil {
		if errors.Is(err, domain.ErrArticleNotFound) {
			log.WarnCtx(ctx, "article not found", "article_id", articleID)
			return ArticleView{}, domain.ErrArticleNotFound
		}
		log.ErrorCtx(ctx, "article load failed", "article_id", articleID, "error", err)
		return ArticleView{}, err
	}

	view := ArticleView{Article: article}

	bodyHTML, err := uc.renderer.Render(article.Body)
	switch {
	case err == nil:
		view.BodyHTML = bodyHTML
	case errors.Is(err, domain.ErrEmptyDocument):
		view.Empty = true
	default:
		// Renderer contract degrades everything else to the empty
		// placeholder; treat a stray error the same way.
		log.WarnCtx(ctx, "body render failed", "article_id", articleID, "error", err)
		view.Empty = true
	}

	comments, err := uc.comments.ListComments(ctx, articleID)
	if err != nil {
		log.WarnCtx(ctx, "comment list load failed", "article_id", articleID, "error", err)
	} else {
		view.Comments = comments
	}

	return view, nil
}

// LoadCommentsUseCase fetches the full ordered comment sequence on its own.
// It is deliberately independent of the summary counter path; the detail
// view reconciles both after a post.
type LoadCommentsUseCase struct {
	api CommentAPI
}

// NewLoadCommentsUseCase creates a new LoadCommentsUseCase.
func NewLoadCommentsUseCase(api CommentAPI) *LoadCommentsUseCase {
	return &LoadCommentsUseCase{api: api}
}

// Execute returns the comment sequence for an article.
func (uc *LoadCommentsUseCase) Execute(ctx context.Context, articleID string) ([]domain.Comment, error) {
	comments, err := uc.api.ListComments(ctx, articleID)
	if err != nil {
		log.ErrorCtx(ctx, "comment list load failed", "article_id", articleID, "error", err)
		return nil, err
	}
	return comments, nil
}
