package feed

import (
	"context"
	"os"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	apperrors "latticework/backend/pkg/errors"
	"latticework/backend/pkg/logger"
)

// Source is one registered feed location. Path wins over URL when both
// are set.
type Source struct {
	Name string `yaml:"name"`
	Path string `yaml:"path,omitempty"`
	URL  string `yaml:"url,omitempty"`
}

// Registry is the on-disk source list
type Registry struct {
	Sources []Source `yaml:"sources"`
}

// LoadRegistry reads a YAML source registry. A missing file returns an
// empty registry so single-feed setups need no extra configuration.
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Registry{}, nil
		}
		return nil, err
	}

	var reg Registry
	if err := yaml.Unmarshal(data, &reg); err != nil {
		return nil, err
	}
	return &reg, nil
}

// FetchAll loads every registered source and returns the items merged
// in registry order, regardless of which fetch finishes first. Sources
// are fetched concurrently; one that fails is retried once when the
// failure looks transient, then logged and skipped.
func FetchAll(ctx context.Context, sources []Source, concurrency int) []Item {
	if concurrency < 1 {
		concurrency = 1
	}
	log := logger.Named("feed")

	results := make([]*Feed, len(sources))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, src := range sources {
		i, src := i, src // capture per-iteration under go <1.22 loop semantics
		g.Go(func() error {
			parsed, err := fetchOne(ctx, src)
			if err != nil && apperrors.IsRetryable(err) {
				log.Warn("retrying feed source",
					zap.String("source", src.Name),
					zap.Error(err),
				)
				parsed, err = fetchOne(ctx, src)
			}
			if err != nil {
				log.Warn("feed source skipped",
					zap.String("source", src.Name),
					zap.Error(err),
				)
				return nil
			}
			results[i] = parsed
			return nil
		})
	}
	// Fetch errors degrade to skipped sources, so Wait only gates completion
	_ = g.Wait()

	var items []Item
	for _, parsed := range results {
		if parsed == nil {
			continue
		}
		items = append(items, parsed.Items...)
	}
	return items
}

func fetchOne(ctx context.Context, src Source) (*Feed, error) {
	p := NewParser()
	if src.Path != "" {
		return p.ParseFile(src.Path)
	}
	if src.URL != "" {
		return p.ParseURL(ctx, src.URL)
	}
	return nil, apperrors.NewFeedSourceUnavailable(src.Name, nil)
}
