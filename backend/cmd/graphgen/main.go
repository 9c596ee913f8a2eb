package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jessevdk/go-flags"

	"latticework/backend/internal/catalog"
	"latticework/backend/internal/constants"
	"latticework/backend/internal/graph"
	"latticework/backend/pkg/config"
	"latticework/backend/pkg/logger"
)

// Options are the command line flags. The defaults match the files the
// published site is generated from, so a bare run rebuilds the lattice
// in place.
type Options struct {
	RSS            string `long:"rss" default:"latticeworkofmodels.substack.com_feed.xml" description:"Path to RSS feed XML file"`
	Crosslinks     string `long:"crosslinks" default:"crosslinks.json" description:"Path to JSON file with manual cross-links"`
	Output         string `long:"output" default:"lattice-graph.html" description:"Output HTML file path"`
	JSON           string `long:"json" description:"Also write the graph payload as JSON to this path"`
	AutoCrosslinks bool   `long:"auto-crosslinks" description:"Generate automatic cross-links if no cross-links file exists"`
	Publish        bool   `long:"publish" description:"Publish the graph to Neo4j (NEO4J_URI, NEO4J_USER, NEO4J_PASSWORD)"`
	Wipe           bool   `long:"wipe" description:"Remove previously published graph data before publishing"`
}

func main() {
	opts := parseOptions()
	if opts == nil {
		// Help was shown or parsing failed, exit gracefully
		return
	}

	if err := logger.Init(os.Getenv("ENV")); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	if _, err := os.Stat(opts.RSS); err != nil {
		fmt.Printf("Error: RSS file not found: %s\n", opts.RSS)
		fmt.Println("\nTo download your Substack RSS feed:")
		fmt.Println("  curl -o feed.xml https://YOUR-SUBSTACK.substack.com/feed")
		os.Exit(1)
	}

	fmt.Printf("Parsing RSS feed: %s\n", opts.RSS)
	posts := catalog.LoadPosts(opts.RSS, constants.DescLimitTooltip)
	fmt.Printf("   Found %d posts across %d categories\n", len(posts), countCategories(posts))

	edges := loadEdges(opts, posts)

	fmt.Println("Generating visualization...")
	payload := graph.Build(posts, edges)

	if err := writeHTML(opts.Output, payload); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", opts.Output)

	if opts.JSON != "" {
		if err := writeJSON(opts.JSON, payload); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", opts.JSON)
	}

	if opts.Publish {
		if err := publish(opts, payload); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if abs, err := filepath.Abs(opts.Output); err == nil {
		fmt.Printf("\nOpen in browser: file://%s\n", abs)
	}
}

// parseOptions reads the command line. A nil return means help was
// requested or parsing failed; go-flags has already printed the
// message either way.
func parseOptions() *Options {
	var opts Options

	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return nil
		}
		os.Exit(1)
	}
	return &opts
}

// loadEdges resolves the cross-link set for this run. Manual links win
// over generated ones; a malformed document stops the run rather than
// producing a silently unlinked graph.
func loadEdges(opts *Options, posts []catalog.Post) []catalog.Edge {
	edges, err := catalog.LoadEdges(opts.Crosslinks)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	switch {
	case len(edges) > 0:
		fmt.Printf("Loaded %d manual cross-links from %s\n", len(edges), opts.Crosslinks)
	case opts.AutoCrosslinks:
		edges = graph.AutoLink(posts)
		fmt.Printf("Generated %d automatic cross-links\n", len(edges))
	default:
		fmt.Printf("No cross-links file found. Use --auto-crosslinks or create %s\n", opts.Crosslinks)
	}
	return edges
}

func countCategories(posts []catalog.Post) int {
	seen := make(map[string]struct{})
	for _, p := range posts {
		seen[p.Category] = struct{}{}
	}
	return len(seen)
}

func writeHTML(path string, payload graph.Payload) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := graph.WriteHTML(f, payload); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeJSON(path string, payload graph.Payload) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := graph.WriteJSON(f, payload); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// publish mirrors the freshly built payload into Neo4j. Connection
// settings come from the environment rather than flags so the same
// configuration serves the API server and this tool.
func publish(opts *Options, payload graph.Payload) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	fmt.Printf("Publishing graph to %s\n", cfg.Neo4jURI)
	driver, err := graph.Connect(ctx, cfg.Neo4jURI, cfg.Neo4jUser, cfg.Neo4jPassword)
	if err != nil {
		return err
	}
	publisher := graph.NewPublisher(driver)
	defer publisher.Close()

	if opts.Wipe {
		if err := publisher.Wipe(ctx); err != nil {
			return err
		}
		fmt.Println("Wiped previously published graph data")
	}

	if err := publisher.Publish(ctx, payload); err != nil {
		return err
	}

	total, err := publisher.CountModels(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Neo4j now holds %d models\n", total)
	return nil
}
