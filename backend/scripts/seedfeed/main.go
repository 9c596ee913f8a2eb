package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"latticework/backend/internal/catalog"
	"latticework/backend/pkg/logger"
)

// Writes a small sample feed and cross-link document so the server,
// chat and graphgen can run without a real Substack export. The items
// cover the four bridged categories, one description is long enough to
// trip the display cap and one carries HTML entities.
func main() {
	feedPath := flag.String("feed", "latticeworkofmodels.substack.com_feed.xml", "Feed file to write")
	crosslinksPath := flag.String("crosslinks", "crosslinks.json", "Cross-links file to write")
	force := flag.Bool("force", false, "Overwrite existing files")
	flag.Parse()

	// Initialize logger
	if err := logger.Init("development"); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()
	log.Info("Starting sample data seeding...")

	if !*force {
		for _, path := range []string{*feedPath, *crosslinksPath} {
			if _, err := os.Stat(path); err == nil {
				log.Info("Sample data already exists, skipping (use -force to overwrite)",
					zap.String("path", path),
				)
				os.Exit(0)
			}
		}
	}

	samplePosts := []struct {
		title       string
		link        string
		pubDate     string
		description string
	}{
		{
			title:       "Inversion - Logic",
			link:        "https://latticeworkofmodels.substack.com/p/inversion",
			pubDate:     "Tue, 18 Feb 2025 12:00:00 GMT",
			description: "Instead of asking how to succeed, ask how to fail and avoid that. Carl Jacobi said it first: invert, always invert.",
		},
		{
			title:       "Occam's Razor - Logic",
			link:        "https://latticeworkofmodels.substack.com/p/occams-razor",
			pubDate:     "Tue, 04 Feb 2025 12:00:00 GMT",
			description: "When two explanations fit the facts, prefer the one with fewer moving parts. Simplicity is not a guarantee, it is a tiebreaker.",
		},
		{
			title:       "Regression to the Mean - Mathematics",
			link:        "https://latticeworkofmodels.substack.com/p/regression-to-the-mean",
			pubDate:     "Tue, 21 Jan 2025 12:00:00 GMT",
			description: "Extreme results are usually part luck, so the next measurement drifts back toward the average. Praise and punishment both get false credit for it.",
		},
		{
			title:   "Bayes' Theorem - Mathematics",
			link:    "https://latticeworkofmodels.substack.com/p/bayes-theorem",
			pubDate: "Tue, 07 Jan 2025 12:00:00 GMT",
			description: "Bayes' theorem tells you how to update a belief when new evidence arrives: weigh the evidence by how surprising it would be under each hypothesis, then renormalize. " +
				"The machinery sounds abstract until you watch it catch a mistake. A medical test that is 99 percent accurate sounds conclusive, but when the condition is rare, " +
				"most positive results are still false positives, because the base rate dominates the likelihood. Thinking in priors and posteriors keeps you honest about how much " +
				"any single observation should move you, and it compounds with every other model in the lattice that touches probability. Strong opinions, weakly held, is this " +
				"theorem wearing street clothes.",
		},
		{
			title:       "Confirmation Bias - Psychology",
			link:        "https://latticeworkofmodels.substack.com/p/confirmation-bias",
			pubDate:     "Tue, 17 Dec 2024 12:00:00 GMT",
			description: "We hunt for evidence that agrees with us and discount evidence that does not. The fix is structural, not willpower: seek the strongest case against your own view.",
		},
		{
			title:       "Loss Aversion - Psychology",
			link:        "https://latticeworkofmodels.substack.com/p/loss-aversion",
			pubDate:     "Tue, 03 Dec 2024 12:00:00 GMT",
			description: "Kahneman &amp; Tversky showed that a loss doesn&#8217;t feel equal to a same-sized gain. It feels about twice as heavy, which quietly warps every trade-off you make.",
		},
		{
			title:       "Opportunity Cost - Economics",
			link:        "https://latticeworkofmodels.substack.com/p/opportunity-cost",
			pubDate:     "Tue, 19 Nov 2024 12:00:00 GMT",
			description: "The real price of anything is the best alternative you gave up to get it. Money spent is visible, options foreclosed are not.",
		},
		{
			title:       "Compounding - Economics",
			link:        "https://latticeworkofmodels.substack.com/p/compounding",
			pubDate:     "Tue, 05 Nov 2024 12:00:00 GMT",
			description: "Growth that feeds on its own growth. The curve looks flat for a long time and then it does not, which is why patience is a position.",
		},
	}

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Latticework of Mental Models</title>
    <link>https://latticeworkofmodels.substack.com</link>
    <description>A web of mental models, one post at a time</description>
`)
	for _, post := range samplePosts {
		fmt.Fprintf(&b, `    <item>
      <title>%s</title>
      <link>%s</link>
      <pubDate>%s</pubDate>
      <description><![CDATA[%s]]></description>
    </item>
`, post.title, post.link, post.pubDate, post.description)
	}
	b.WriteString(`  </channel>
</rss>
`)

	if err := os.WriteFile(*feedPath, []byte(b.String()), 0644); err != nil {
		log.Fatal("Failed to write sample feed", zap.Error(err))
	}
	log.Info("Wrote sample feed",
		zap.String("path", *feedPath),
		zap.Int("items", len(samplePosts)),
	)

	// The last link points at a post that does not exist, so the
	// dangling-reference handling stays exercised in local data.
	doc := struct {
		Crosslinks []catalog.Edge `json:"crosslinks"`
	}{
		Crosslinks: []catalog.Edge{
			{Source: "compounding", Target: "regression-to-the-mean", Reason: "growth curves get misread without a baseline"},
			{Source: "loss-aversion", Target: "opportunity-cost", Reason: "what you give up hurts twice"},
			{Source: "bayes-theorem", Target: "confirmation-bias", Reason: "updating beliefs versus protecting them"},
			{Source: "inversion", Target: "second-order-thinking", Reason: "avoid failure, then look two steps ahead"},
		},
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		log.Fatal("Failed to encode cross-links", zap.Error(err))
	}
	if err := os.WriteFile(*crosslinksPath, append(data, '\n'), 0644); err != nil {
		log.Fatal("Failed to write cross-links", zap.Error(err))
	}
	log.Info("Wrote cross-links",
		zap.String("path", *crosslinksPath),
		zap.Int("links", len(doc.Crosslinks)),
	)

	log.Info("Seed completed. The sample lattice is ready to use!")
}
