package api

import (
	"strings"
	"time"

	"blogreader/internal/domain"
)

// articleDTO matches the backend article shape: Mongo-style ids, populated
// category objects, and a nullable structured body whose entity map may be
// absent on the wire.
type articleDTO struct {
	ID           string           `json:"_id"`
	Title        string           `json:"title"`
	Body         *domain.Document `json:"body"`
	CategoryIDs  []categoryDTO    `json:"categoryIds"`
	DatePosted   *time.Time       `json:"datePosted"`
	Likes        []string         `json:"likes"`
	NoOfLikes    int              `json:"noOfLikes"`
	NoOfComments int              `json:"noOfComments"`
}

type categoryDTO struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

func (d articleDTO) toDomain() domain.Article {
	categories := make([]string, 0, len(d.CategoryIDs))
	for _, c := range d.CategoryIDs {
		if c.Name != "" {
			categories = append(categories, c.Name)
		}
	}

	body := d.Body
	if body != nil {
		body.Normalize()
	}

	return domain.Article{
		ID:           d.ID,
		Title:        d.Title,
		Body:         body,
		Categories:   categories,
		DatePosted:   d.DatePosted,
		Likes:        d.Likes,
		NoOfLikes:    d.NoOfLikes,
		NoOfComments: d.NoOfComments,
	}
}

// commentDTO matches the backend comment shape with its populated author.
type commentDTO struct {
	ID         string    `json:"_id"`
	Content    string    `json:"content"`
	DatePosted time.Time `json:"datePosted"`
	UserID     userDTO   `json:"userId"`
}

type userDTO struct {
	FirstName string `json:"fname"`
	LastName  string `json:"lname"`
}

// menuItemDTO matches the backend navigation entry shape; typeArticle is the
// populated article a top-level entry links to, when any.
type menuItemDTO struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	TypeArticle *struct {
		ID string `json:"_id"`
	} `json:"typeArticle"`
}

func (d menuItemDTO) toDomain() domain.MenuItem {
	item := domain.MenuItem{ID: d.ID, Name: d.Name}
	if d.TypeArticle != nil {
		item.ArticleID = d.TypeArticle.ID
	}
	return item
}

func (d commentDTO) toDomain(articleID string) domain.Comment {
	return domain.Comment{
		ID:         d.ID,
		ArticleID:  articleID,
		Content:    d.Content,
		AuthorName: strings.TrimSpace(d.UserID.FirstName + " " + d.UserID.LastName),
		DatePosted: d.DatePosted,
	}
}
