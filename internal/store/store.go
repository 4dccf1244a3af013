// Package store holds the in-memory engagement state for the article
// collection currently on display: ordered articles, their like/comment
// counters and the transient comment-composer flags.
package store

import (
	"sync"

	"blogreader/internal/domain"
	"blogreader/pkg/log"
)

// Store owns the mutable article collection. All reads return copies and
// every mutation bumps a version counter, so a view holding an old snapshot
// can detect that state moved on. Operations are total: applying an update
// for an id that is no longer present (stale view after a reload) is a
// logged no-op, never an error.
type Store struct {
	mu       sync.RWMutex
	order    []string
	articles map[string]domain.Article
	version  uint64
	logger   *log.Logger
}

// Snapshot is an immutable view of the collection at one version.
type Snapshot struct {
	Articles []domain.Article
	Version  uint64
}

// New creates an empty store.
func New(logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	return &Store{
		articles: make(map[string]domain.Article),
		logger:   logger,
	}
}

// Load replaces the collection. Incoming transient state is discarded: every
// article starts with the comment composer closed. Duplicate ids keep the
// first occurrence.
func (s *Store) Load(articles []domain.Article) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.order = s.order[:0]
	s.articles = make(map[string]domain.Article, len(articles))
	for _, a := range articles {
		if _, dup := s.articles[a.ID]; dup {
			s.logger.Warn("duplicate article id in load, keeping first", "article_id", a.ID)
			continue
		}
		clone := a.Clone()
		clone.IsCommentOpen = false
		s.order = append(s.order, a.ID)
		s.articles[a.ID] = clone
	}
	s.version++
}

// ApplyLikeUpdate sets the authoritative like counter for one article.
// Negative values clamp to zero. No other field is touched.
func (s *Store) ApplyLikeUpdate(id string, noOfLikes int) {
	if noOfLikes < 0 {
		noOfLikes = 0
	}
	s.mutate(id, "like update", func(a *domain.Article) {
		a.NoOfLikes = noOfLikes
	})
}

// ApplyCommentCountUpdate sets the authoritative comment counter and closes
// the composer (a confirmed post always ends the editing session).
func (s *Store) ApplyCommentCountUpdate(id string, count int) {
	if count < 0 {
		count = 0
	}
	s.mutate(id, "comment count update", func(a *domain.Article) {
		a.NoOfComments = count
		a.IsCommentOpen = false
	})
}

// ToggleCommentBox flips the composer flag for exactly one article.
func (s *Store) ToggleCommentBox(id string) {
	s.mutate(id, "comment box toggle", func(a *domain.Article) {
		a.IsCommentOpen = !a.IsCommentOpen
	})
}

func (s *Store) mutate(id, op string, fn func(*domain.Article)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.articles[id]
	if !ok {
		s.logger.Debug("dropping "+op+" for unknown article", "article_id", id)
		return
	}
	fn(&a)
	s.articles[id] = a
	s.version++
}

// Snapshot returns a deep copy of the collection in load order.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Article, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.articles[id].Clone())
	}
	return Snapshot{Articles: out, Version: s.version}
}

// Get returns a copy of one article.
func (s *Store) Get(id string) (domain.Article, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.articles[id]
	if !ok {
		return domain.Article{}, false
	}
	return a.Clone(), true
}

// Version returns the current change counter.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Len returns the number of articles held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
