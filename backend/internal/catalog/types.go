package catalog

// Post is a single mental model loaded from the feed
type Post struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Link        string `json:"link"`
	Published   string `json:"published"` // Display string; raw feed value when unparseable
	Description string `json:"description"`
}

// Edge is a directed cross-link between two models. Endpoints are
// slugs and are not checked against loaded posts, so an edge may
// dangle.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Reason string `json:"reason,omitempty"`
}

// Direction tells which way a connection points relative to the
// queried model
type Direction string

const (
	DirectionOutgoing Direction = "outgoing"
	DirectionIncoming Direction = "incoming"
)

// Connection is one resolved cross-link from a model's point of view.
// Reason is the raw stored value; consumers apply their own fallback
// wording.
type Connection struct {
	Post      Post      `json:"post"`
	Reason    string    `json:"reason,omitempty"`
	Direction Direction `json:"direction"`
}

// CategoryGroup is one category with its models in load order
type CategoryGroup struct {
	Category string `json:"category"`
	Posts    []Post `json:"posts"`
}

// SearchResult is a scored match
type SearchResult struct {
	Post  Post `json:"post"`
	Score int  `json:"score"`
}
