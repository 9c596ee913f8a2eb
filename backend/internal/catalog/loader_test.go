package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"latticework/backend/internal/constants"
)

func writeFeed(t *testing.T, items string) string {
	t.Helper()
	content := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><title>Latticework of Mental Models</title>` +
		items + `</channel></rss>`

	path := filepath.Join(t.TempDir(), "feed.xml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write feed: %v", err)
	}
	return path
}

func TestLoadPosts_FullItem(t *testing.T) {
	path := writeFeed(t, `<item>
<title>Compounding - Economics</title>
<link>https://example.com/compounding</link>
<pubDate>Mon, 09 Dec 2024 18:25:23 GMT</pubDate>
<description>Growth builds on growth.</description>
</item>`)

	posts := LoadPosts(path, constants.DescLimitDisplay)
	if len(posts) != 1 {
		t.Fatalf("Expected 1 post, got %d", len(posts))
	}

	p := posts[0]
	if p.ID != "compounding" {
		t.Errorf("Expected ID 'compounding', got %q", p.ID)
	}
	if p.Title != "Compounding" {
		t.Errorf("Expected title 'Compounding', got %q", p.Title)
	}
	if p.Category != "Economics" {
		t.Errorf("Expected category 'Economics', got %q", p.Category)
	}
	if p.Link != "https://example.com/compounding" {
		t.Errorf("Unexpected link %q", p.Link)
	}
	if p.Published != "Dec 09, 2024" {
		t.Errorf("Expected published 'Dec 09, 2024', got %q", p.Published)
	}
	if p.Description != "Growth builds on growth." {
		t.Errorf("Unexpected description %q", p.Description)
	}
}

func TestLoadPosts_MissingFieldsBecomeEmpty(t *testing.T) {
	path := writeFeed(t, `<item><title>Solo</title></item>`)

	posts := LoadPosts(path, constants.DescLimitDisplay)
	if len(posts) != 1 {
		t.Fatalf("Expected 1 post, got %d", len(posts))
	}

	p := posts[0]
	if p.ID != "solo" || p.Title != "Solo" {
		t.Errorf("Unexpected identity: ID %q title %q", p.ID, p.Title)
	}
	if p.Category != "Misc" {
		t.Errorf("Expected fallback category 'Misc', got %q", p.Category)
	}
	if p.Link != "" || p.Published != "" || p.Description != "" {
		t.Errorf("Expected empty optional fields, got link %q published %q description %q",
			p.Link, p.Published, p.Description)
	}
}

func TestLoadPosts_UnparseableDateStaysRaw(t *testing.T) {
	path := writeFeed(t, `<item>
<title>Inversion - Logic</title>
<pubDate>sometime in winter</pubDate>
</item>`)

	posts := LoadPosts(path, constants.DescLimitDisplay)
	if len(posts) != 1 {
		t.Fatalf("Expected 1 post, got %d", len(posts))
	}
	if posts[0].Published != "sometime in winter" {
		t.Errorf("Expected raw date to survive, got %q", posts[0].Published)
	}
}

func TestLoadPosts_DecodesEntities(t *testing.T) {
	path := writeFeed(t, `<item>
<title>Systems Thinking - Logic</title>
<description>Thinking in systems &amp;amp; feedback loops</description>
</item>`)

	posts := LoadPosts(path, constants.DescLimitDisplay)
	if len(posts) != 1 {
		t.Fatalf("Expected 1 post, got %d", len(posts))
	}
	want := "Thinking in systems & feedback loops"
	if posts[0].Description != want {
		t.Errorf("Expected description %q, got %q", want, posts[0].Description)
	}
}

func TestLoadPosts_DescriptionCaps(t *testing.T) {
	long := strings.Repeat("a", 600)
	path := writeFeed(t, `<item>
<title>Margin of Safety - Economics</title>
<description>`+long+`</description>
</item>`)

	display := LoadPosts(path, constants.DescLimitDisplay)
	if len(display) != 1 {
		t.Fatalf("Expected 1 post, got %d", len(display))
	}
	desc := display[0].Description
	if len([]rune(desc)) != constants.DescLimitDisplay {
		t.Errorf("Expected %d chars at the display cap, got %d", constants.DescLimitDisplay, len([]rune(desc)))
	}
	if !strings.HasSuffix(desc, "...") {
		t.Errorf("Expected ellipsis suffix, got tail %q", desc[len(desc)-10:])
	}
	if !strings.HasPrefix(desc, strings.Repeat("a", constants.DescLimitDisplay-3)) {
		t.Error("Expected the first 497 characters to survive the display cap")
	}

	tooltip := LoadPosts(path, constants.DescLimitTooltip)
	if len(tooltip) != 1 {
		t.Fatalf("Expected 1 post, got %d", len(tooltip))
	}
	desc = tooltip[0].Description
	if len([]rune(desc)) != constants.DescLimitTooltip {
		t.Errorf("Expected %d chars at the tooltip cap, got %d", constants.DescLimitTooltip, len([]rune(desc)))
	}
	if !strings.HasSuffix(desc, "...") {
		t.Error("Expected ellipsis suffix at the tooltip cap")
	}
}

func TestLoadPosts_DescriptionAtCapUntouched(t *testing.T) {
	exact := strings.Repeat("b", constants.DescLimitDisplay)
	path := writeFeed(t, `<item>
<title>Exact - Misc</title>
<description>`+exact+`</description>
</item>`)

	posts := LoadPosts(path, constants.DescLimitDisplay)
	if len(posts) != 1 {
		t.Fatalf("Expected 1 post, got %d", len(posts))
	}
	if posts[0].Description != exact {
		t.Error("A description exactly at the cap should not be truncated")
	}
}

func TestLoadPosts_TruncationCountsRunes(t *testing.T) {
	long := strings.Repeat("é", 200)
	path := writeFeed(t, `<item>
<title>Unicode - Misc</title>
<description>`+long+`</description>
</item>`)

	posts := LoadPosts(path, constants.DescLimitTooltip)
	if len(posts) != 1 {
		t.Fatalf("Expected 1 post, got %d", len(posts))
	}
	runes := []rune(posts[0].Description)
	if len(runes) != constants.DescLimitTooltip {
		t.Errorf("Expected %d runes, got %d", constants.DescLimitTooltip, len(runes))
	}
	if string(runes[:constants.DescLimitTooltip-3]) != strings.Repeat("é", constants.DescLimitTooltip-3) {
		t.Error("Truncation split the description at the wrong character")
	}
}

func TestLoadPosts_EmptyFeed(t *testing.T) {
	path := writeFeed(t, ``)

	posts := LoadPosts(path, constants.DescLimitDisplay)
	if len(posts) != 0 {
		t.Fatalf("Expected no posts from an empty feed, got %d", len(posts))
	}

	c := New(posts, nil)
	if !c.Empty() {
		t.Error("Expected an empty catalog")
	}
	if len(c.Categories()) != 0 {
		t.Errorf("Expected zero categories, got %v", c.Categories())
	}
}

func TestLoadPosts_MissingFileStartsEmpty(t *testing.T) {
	posts := LoadPosts(filepath.Join(t.TempDir(), "nope.xml"), constants.DescLimitDisplay)
	if len(posts) != 0 {
		t.Fatalf("Expected no posts for a missing feed, got %d", len(posts))
	}
}

func TestLoadPosts_MalformedFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.xml")
	if err := os.WriteFile(path, []byte("this is not a feed"), 0o644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	posts := LoadPosts(path, constants.DescLimitDisplay)
	if len(posts) != 0 {
		t.Fatalf("Expected no posts for a malformed feed, got %d", len(posts))
	}
}
