package feed

import (
	"context"
	"io"
	"os"

	"github.com/mmcdole/gofeed"
	apperrors "latticework/backend/pkg/errors"
)

// Item is a single feed entry. Published stays raw here; display
// formatting happens downstream in the catalog.
type Item struct {
	Title       string
	Link        string
	Published   string
	Description string
}

// Feed is a parsed feed document
type Feed struct {
	Title string
	Items []Item
}

// Parser wraps gofeed behind typed records
type Parser struct {
	parser *gofeed.Parser
}

// NewParser creates a feed parser. Parsers are cheap; create one per
// goroutine when fetching concurrently.
func NewParser() *Parser {
	return &Parser{parser: gofeed.NewParser()}
}

// Parse reads one feed document from r
func (p *Parser) Parse(r io.Reader) (*Feed, error) {
	parsed, err := p.parser.Parse(r)
	if err != nil {
		return nil, err
	}
	return convert(parsed), nil
}

// ParseFile reads the feed document at path
func (p *Parser) ParseFile(path string) (*Feed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	parsed, err := p.Parse(f)
	if err != nil {
		return nil, apperrors.NewFeedParseFailed(path, err)
	}
	return parsed, nil
}

// ParseURL fetches and parses a remote feed
func (p *Parser) ParseURL(ctx context.Context, url string) (*Feed, error) {
	parsed, err := p.parser.ParseURLWithContext(url, ctx)
	if err != nil {
		return nil, apperrors.NewFeedSourceUnavailable(url, err)
	}
	return convert(parsed), nil
}

func convert(parsed *gofeed.Feed) *Feed {
	out := &Feed{
		Title: parsed.Title,
		Items: make([]Item, 0, len(parsed.Items)),
	}
	for _, item := range parsed.Items {
		if item == nil {
			continue
		}
		out.Items = append(out.Items, Item{
			Title:       item.Title,
			Link:        item.Link,
			Published:   item.Published,
			Description: item.Description,
		})
	}
	return out
}
