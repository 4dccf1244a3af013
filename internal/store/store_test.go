package store_test

import (
	"testing"

	"blogreader/internal/domain"
	"blogreader/internal/store"
	"blogreader/test/fixtures"
)

func loaded(t *testing.T, articles ...domain.Article) *store.Store {
	t.Helper()
	s := store.New(nil)
	s.Load(articles)
	return s
}

func TestLoad_ResetsCommentBoxFlag(t *testing.T) {
	// Arrange
	open := fixtures.Article("a1", 0, 0)
	open.IsCommentOpen = true

	// Act
	s := loaded(t, open)

	// Assert
	got, ok := s.Get("a1")
	if !ok {
		t.Fatal("article a1 missing after load")
	}
	if got.IsCommentOpen {
		t.Error("IsCommentOpen survived a load; the flag is never persisted")
	}
}

func TestApplyLikeUpdate_SetsCounterAndNothingElse(t *testing.T) {
	// Arrange
	s := loaded(t, fixtures.Article("a1", 3, 7), fixtures.Article("a2", 1, 2))

	// Act
	s.ApplyLikeUpdate("a1", 4)

	// Assert
	a1, _ := s.Get("a1")
	if a1.NoOfLikes != 4 {
		t.Errorf("NoOfLikes: got %d, want 4", a1.NoOfLikes)
	}
	if a1.NoOfComments != 7 {
		t.Errorf("NoOfComments changed: got %d, want 7", a1.NoOfComments)
	}
	if a1.IsCommentOpen {
		t.Error("IsCommentOpen changed by a like update")
	}
	a2, _ := s.Get("a2")
	if a2.NoOfLikes != 1 || a2.NoOfComments != 2 {
		t.Errorf("unrelated article changed: %+v", a2)
	}
}

func TestApplyLikeUpdate_UnknownID_IsNoOp(t *testing.T) {
	// Arrange
	s := loaded(t, fixtures.Article("a1", 3, 0))
	before := s.Version()

	// Act
	s.ApplyLikeUpdate("gone", 9)

	// Assert
	if s.Version() != before {
		t.Error("version bumped for an update to an unknown id")
	}
	a1, _ := s.Get("a1")
	if a1.NoOfLikes != 3 {
		t.Errorf("NoOfLikes: got %d, want 3", a1.NoOfLikes)
	}
}

func TestApplyLikeUpdate_NegativeClampsToZero(t *testing.T) {
	// Arrange
	s := loaded(t, fixtures.Article("a1", 3, 0))

	// Act
	s.ApplyLikeUpdate("a1", -2)

	// Assert
	a1, _ := s.Get("a1")
	if a1.NoOfLikes != 0 {
		t.Errorf("NoOfLikes: got %d, want 0", a1.NoOfLikes)
	}
}

func TestApplyCommentCountUpdate_SetsCountAndClosesComposer(t *testing.T) {
	// Arrange
	s := loaded(t, fixtures.Article("a1", 3, 0))
	s.ToggleCommentBox("a1")

	// Act
	s.ApplyCommentCountUpdate("a1", 1)

	// Assert
	a1, _ := s.Get("a1")
	if a1.NoOfComments != 1 {
		t.Errorf("NoOfComments: got %d, want 1", a1.NoOfComments)
	}
	if a1.IsCommentOpen {
		t.Error("composer still open after a confirmed comment count update")
	}
}

func TestToggleCommentBox_IsItsOwnInverse(t *testing.T) {
	// Arrange
	s := loaded(t, fixtures.Article("a1", 0, 0), fixtures.Article("a2", 0, 0))

	// Act
	s.ToggleCommentBox("a1")
	opened, _ := s.Get("a1")
	s.ToggleCommentBox("a1")
	closed, _ := s.Get("a1")

	// Assert
	if !opened.IsCommentOpen {
		t.Error("first toggle did not open the composer")
	}
	if closed.IsCommentOpen {
		t.Error("second toggle did not close the composer")
	}
	other, _ := s.Get("a2")
	if other.IsCommentOpen {
		t.Error("toggle leaked onto a different article")
	}
}

func TestSnapshot_PreservesOrderAndIsolation(t *testing.T) {
	// Arrange
	s := loaded(t, fixtures.Article("a1", 1, 0), fixtures.Article("a2", 2, 0), fixtures.Article("a3", 3, 0))

	// Act
	snap := s.Snapshot()
	snap.Articles[0].NoOfLikes = 99
	snap.Articles[0].Categories[0] = "mutated"

	// Assert
	if got := len(snap.Articles); got != 3 {
		t.Fatalf("snapshot size: got %d, want 3", got)
	}
	for i, want := range []string{"a1", "a2", "a3"} {
		if snap.Articles[i].ID != want {
			t.Errorf("order[%d]: got %s, want %s", i, snap.Articles[i].ID, want)
		}
	}
	a1, _ := s.Get("a1")
	if a1.NoOfLikes != 1 || a1.Categories[0] != "Tech" {
		t.Error("mutating a snapshot leaked into the store")
	}
}

func TestMutations_BumpVersion(t *testing.T) {
	// Arrange
	s := loaded(t, fixtures.Article("a1", 0, 0))
	v0 := s.Version()

	// Act
	s.ApplyLikeUpdate("a1", 1)
	v1 := s.Version()
	s.ToggleCommentBox("a1")
	v2 := s.Version()

	// Assert
	if !(v0 < v1 && v1 < v2) {
		t.Errorf("versions did not strictly increase: %d, %d, %d", v0, v1, v2)
	}
}

func TestLoad_ReplacesCollection(t *testing.T) {
	// Arrange
	s := loaded(t, fixtures.Article("a1", 1, 0))

	// Act
	s.Load([]domain.Article{fixtures.Article("b1", 0, 0)})

	// Assert
	if _, ok := s.Get("a1"); ok {
		t.Error("article from previous load still present")
	}
	if _, ok := s.Get("b1"); !ok {
		t.Error("article from new load missing")
	}
	if got := s.Len(); got != 1 {
		t.Errorf("Len: got %d, want 1", got)
	}
}
