package catalog

import (
	"html"
	"os"

	"go.uber.org/zap"

	"latticework/backend/internal/feed"
	"latticework/backend/pkg/logger"
)

// PostFromItem converts one feed entry into a catalog record. Missing
// fields become empty strings; the description is entity-decoded and
// capped at descLimit characters.
func PostFromItem(item feed.Item, descLimit int) Post {
	name, category := SplitTitle(item.Title)
	published, _ := FormatDate(item.Published)

	description := html.UnescapeString(item.Description)
	description = truncate(description, descLimit)

	return Post{
		ID:          Slugify(name),
		Title:       name,
		Category:    category,
		Link:        item.Link,
		Published:   published,
		Description: description,
	}
}

// PostsFromItems converts already-fetched feed entries in order
func PostsFromItems(items []feed.Item, descLimit int) []Post {
	posts := make([]Post, 0, len(items))
	for _, item := range items {
		posts = append(posts, PostFromItem(item, descLimit))
	}
	return posts
}

// LoadPosts reads the feed document at path and converts every entry.
// A missing or unreadable feed is not an error here: the catalog
// simply starts empty and the tools say so. Callers that must fail on
// a missing feed, like the graph generator, check the path themselves.
func LoadPosts(path string, descLimit int) []Post {
	if _, err := os.Stat(path); err != nil {
		logger.Get().Warn("feed document not found, starting empty",
			zap.String("path", path),
		)
		return []Post{}
	}

	parsed, err := feed.NewParser().ParseFile(path)
	if err != nil {
		logger.Get().Warn("feed document unreadable, starting empty",
			zap.String("path", path),
			zap.Error(err),
		)
		return []Post{}
	}

	return PostsFromItems(parsed.Items, descLimit)
}

// truncate caps s at limit characters, ellipsis included. Counts
// runes, not bytes.
func truncate(s string, limit int) string {
	if limit <= 3 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}
