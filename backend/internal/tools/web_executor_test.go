package tools

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestExecuteReadArticle(t *testing.T) {
	page := `<html><head><title>Compounding - Latticework</title>
<script>var tracker = "noise";</script></head>
<body><nav>Home About Archive</nav>
<article><h1>Compounding</h1>
<p>Money    grows
on itself.</p></article>
<footer>Subscribe</footer></body></html>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(page))
	}))
	defer server.Close()

	e := NewExecutor(testCatalog())
	result := e.executeReadArticle(context.Background(), map[string]interface{}{"url": server.URL})
	if !result.Success {
		t.Fatalf("Expected success, got error %q", result.Error)
	}

	data, ok := result.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("Expected map data, got %T", result.Data)
	}
	if data["title"] != "Compounding - Latticework" {
		t.Errorf("Expected page title, got %q", data["title"])
	}
	if data["url"] != server.URL {
		t.Errorf("Expected url %q, got %q", server.URL, data["url"])
	}

	text, _ := data["text"].(string)
	if text != "Compounding Money grows on itself." {
		t.Errorf("Expected article text with collapsed whitespace, got %q", text)
	}
	if strings.Contains(text, "tracker") || strings.Contains(text, "Archive") || strings.Contains(text, "Subscribe") {
		t.Errorf("Expected script/nav/footer to be stripped, got %q", text)
	}
}

func TestExecuteReadArticleBodyFallback(t *testing.T) {
	page := `<html><head><title>Plain Page</title></head>
<body><p>No article tag here.</p></body></html>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(page))
	}))
	defer server.Close()

	e := NewExecutor(testCatalog())
	result := e.executeReadArticle(context.Background(), map[string]interface{}{"url": server.URL})
	if !result.Success {
		t.Fatalf("Expected success, got error %q", result.Error)
	}
	data := result.Data.(map[string]interface{})
	if data["text"] != "No article tag here." {
		t.Errorf("Expected body text fallback, got %q", data["text"])
	}
}

func TestExecuteReadArticleTruncates(t *testing.T) {
	long := strings.Repeat("lattice ", 1000)
	page := "<html><head><title>Long</title></head><body><article>" + long + "</article></body></html>"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(page))
	}))
	defer server.Close()

	e := NewExecutor(testCatalog())
	result := e.executeReadArticle(context.Background(), map[string]interface{}{"url": server.URL})
	if !result.Success {
		t.Fatalf("Expected success, got error %q", result.Error)
	}
	data := result.Data.(map[string]interface{})
	text, _ := data["text"].(string)
	if got := len([]rune(text)); got != articleTextLimit {
		t.Errorf("Expected text capped at %d runes, got %d", articleTextLimit, got)
	}
	if !strings.HasSuffix(text, "...") {
		t.Error("Expected truncated text to end with ellipsis")
	}
}

func TestExecuteReadArticleHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	e := NewExecutor(testCatalog())
	result := e.executeReadArticle(context.Background(), map[string]interface{}{"url": server.URL})
	if result.Success {
		t.Fatal("Expected failure for 404 response")
	}
	if result.Error != "Article returned status 404" {
		t.Errorf("Expected status error, got %q", result.Error)
	}
}

func TestExecuteReadArticleUnreachable(t *testing.T) {
	e := NewExecutor(testCatalog())

	result := e.executeReadArticle(context.Background(), map[string]interface{}{"url": "http://127.0.0.1:1/nope"})
	if result.Success {
		t.Fatal("Expected failure for unreachable host")
	}
	if !strings.Contains(result.Error, "Failed to fetch article") {
		t.Errorf("Expected fetch error, got %q", result.Error)
	}
}
