package graph

import (
	"context"
	"strings"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	apperrors "latticework/backend/pkg/errors"
	"latticework/backend/pkg/logger"
)

// Publisher mirrors the lattice into Neo4j so the graph can be
// explored with Cypher alongside the HTML export.
type Publisher struct {
	driver neo4j.DriverWithContext
	logger *zap.Logger
}

// Connect builds a Neo4j driver and verifies the server is reachable.
func Connect(ctx context.Context, uri, username, password string) (neo4j.DriverWithContext, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, apperrors.NewGraphConnectionFailed(uri, err)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		return nil, apperrors.NewGraphConnectionFailed(uri, err)
	}
	return driver, nil
}

// NewPublisher creates a publisher on an established driver
func NewPublisher(driver neo4j.DriverWithContext) *Publisher {
	return &Publisher{
		driver: driver,
		logger: logger.Get(),
	}
}

// Close closes the Neo4j driver connection
func (p *Publisher) Close() error {
	return p.driver.Close(context.Background())
}

// Publish upserts the payload into the database. Category hubs become
// Category nodes, posts become Model nodes, hub-links become
// BELONGS_TO relationships and cross-links become LINKS_TO
// relationships. Re-publishing the same payload is a no-op thanks to
// MERGE semantics.
func (p *Publisher) Publish(ctx context.Context, payload Payload) error {
	session := p.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	categories := make([]interface{}, 0, len(payload.Categories))
	for _, c := range payload.Categories {
		categories = append(categories, c)
	}

	models := make([]interface{}, 0, len(payload.Nodes))
	for _, n := range payload.Nodes {
		if n.Type != NodeTypePost {
			continue
		}
		models = append(models, map[string]interface{}{
			"id":          n.ID,
			"title":       n.Label,
			"category":    n.Category,
			"link":        n.Link,
			"published":   n.Published,
			"description": n.Description,
		})
	}

	var belongs, crosses []interface{}
	for _, l := range payload.Links {
		switch l.Type {
		case LinkTypeHub:
			belongs = append(belongs, map[string]interface{}{
				"category": strings.TrimPrefix(l.Source, "hub-"),
				"model":    l.Target,
			})
		case LinkTypeCross:
			crosses = append(crosses, map[string]interface{}{
				"source": l.Source,
				"target": l.Target,
			})
		}
	}

	steps := []struct {
		query  string
		params map[string]interface{}
	}{
		{
			query: `
				UNWIND $categories AS name
				MERGE (c:Category {name: name})
			`,
			params: map[string]interface{}{"categories": categories},
		},
		{
			query: `
				UNWIND $models AS model
				MERGE (m:Model {id: model.id})
				SET m.title = model.title,
					m.category = model.category,
					m.link = model.link,
					m.published = model.published,
					m.description = model.description
			`,
			params: map[string]interface{}{"models": models},
		},
		{
			query: `
				UNWIND $belongs AS rel
				MATCH (m:Model {id: rel.model})
				MATCH (c:Category {name: rel.category})
				MERGE (m)-[:BELONGS_TO]->(c)
			`,
			params: map[string]interface{}{"belongs": belongs},
		},
		{
			query: `
				UNWIND $crosses AS rel
				MATCH (a:Model {id: rel.source})
				MATCH (b:Model {id: rel.target})
				MERGE (a)-[:LINKS_TO]->(b)
			`,
			params: map[string]interface{}{"crosses": crosses},
		},
	}

	for _, step := range steps {
		result, err := session.Run(ctx, step.query, step.params)
		if err != nil {
			return apperrors.NewGraphPublishFailed(step.query, err)
		}
		if _, err := result.Consume(ctx); err != nil {
			return apperrors.NewGraphPublishFailed(step.query, err)
		}
	}

	p.logger.Info("published lattice",
		zap.Int("categories", len(categories)),
		zap.Int("models", len(models)),
		zap.Int("hub_links", len(belongs)),
		zap.Int("cross_links", len(crosses)))

	return nil
}

// Wipe removes every lattice node and relationship. Only Model and
// Category nodes are touched, so other data in the same database
// survives.
func (p *Publisher) Wipe(ctx context.Context) error {
	session := p.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	query := `
		MATCH (n)
		WHERE n:Model OR n:Category
		DETACH DELETE n
	`

	result, err := session.Run(ctx, query, map[string]interface{}{})
	if err != nil {
		return apperrors.NewGraphPublishFailed(query, err)
	}
	if _, err := result.Consume(ctx); err != nil {
		return apperrors.NewGraphPublishFailed(query, err)
	}

	p.logger.Info("wiped lattice")
	return nil
}

// CountModels returns the number of Model nodes currently stored.
func (p *Publisher) CountModels(ctx context.Context) (int64, error) {
	session := p.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	result, err := session.Run(ctx, `MATCH (m:Model) RETURN count(m) AS total`, map[string]interface{}{})
	if err != nil {
		return 0, apperrors.NewGraphPublishFailed("count models", err)
	}
	record, err := result.Single(ctx)
	if err != nil {
		return 0, apperrors.NewGraphPublishFailed("count models", err)
	}
	total, _ := record.Get("total")
	count, ok := total.(int64)
	if !ok {
		return 0, nil
	}
	return count, nil
}
