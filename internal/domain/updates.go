package domain

// LikeUpdate is the confirmed counter payload of a like mutation. It feeds
// the engagement store; nothing is applied before the server confirms.
type LikeUpdate struct {
	NoOfLikes int      `json:"noOfLikes"`
	Likes     []string `json:"likes"`
}

// MenuItem is one navigation entry. Only the data is modeled here; how a
// menu tree is rendered is out of scope.
type MenuItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ArticleID string `json:"articleId,omitempty"`
}
