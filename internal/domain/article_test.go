package domain_test

import (
	"testing"

	"blogreader/internal/domain"
)

func TestArticle_Liked(t *testing.T) {
	// Arrange
	liked := domain.Article{Likes: []string{"u1"}}
	notLiked := domain.Article{Likes: nil}

	// Assert
	if !liked.Liked() {
		t.Error("article with a membership entry should read as liked")
	}
	if notLiked.Liked() {
		t.Error("article without membership entries should not read as liked")
	}
}

func TestArticle_CloneIsDeep(t *testing.T) {
	// Arrange
	original := domain.Article{
		ID:         "a1",
		Categories: []string{"Tech"},
		Likes:      []string{"u1"},
		Body: &domain.Document{
			Blocks:    []domain.Block{{Key: "k1", Text: "hi", Type: "unstyled"}},
			EntityMap: map[string]domain.Entity{},
		},
	}

	// Act
	clone := original.Clone()
	clone.Categories[0] = "mutated"
	clone.Likes[0] = "mutated"
	clone.Body.Blocks[0].Text = "mutated"

	// Assert
	if original.Categories[0] != "Tech" {
		t.Error("clone shares the categories slice")
	}
	if original.Likes[0] != "u1" {
		t.Error("clone shares the likes slice")
	}
	if original.Body.Blocks[0].Text != "hi" {
		t.Error("clone shares the body blocks")
	}
}

func TestDocument_Normalize(t *testing.T) {
	// Arrange
	doc := &domain.Document{Blocks: []domain.Block{{Key: "k1", Text: "hi"}}}

	// Act
	doc.Normalize()

	// Assert
	if doc.EntityMap == nil {
		t.Fatal("EntityMap still nil after Normalize")
	}
	if len(doc.EntityMap) != 0 {
		t.Errorf("EntityMap: got %d entries, want 0", len(doc.EntityMap))
	}
}

func TestDocument_HasText(t *testing.T) {
	// Arrange
	withText := &domain.Document{Blocks: []domain.Block{{Text: ""}, {Text: "hi"}}}
	textless := &domain.Document{Blocks: []domain.Block{{Text: ""}, {Text: ""}}}

	// Assert
	if !withText.HasText() {
		t.Error("document with a non-empty block should have text")
	}
	if textless.HasText() {
		t.Error("document of empty blocks should not have text")
	}
}
