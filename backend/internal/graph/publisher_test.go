package graph

import (
	"context"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	apperrors "latticework/backend/pkg/errors"
)

func TestConnectInvalidURI(t *testing.T) {
	_, err := Connect(context.Background(), "ftp://localhost:7687", "neo4j", "password")
	if err == nil {
		t.Fatal("Expected error for unsupported URI scheme")
	}
	if !apperrors.IsErrorType(err, apperrors.ErrorTypeGraph) {
		t.Errorf("Expected graph error type, got %v", err)
	}
}

// TestPublisher_PublishAndWipe requires a running Neo4j instance
func TestPublisher_PublishAndWipe(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	ctx := context.Background()
	driver, err := createTestDriver()
	if err != nil {
		t.Fatalf("Failed to create driver: %v", err)
	}
	defer driver.Close(ctx)

	pub := NewPublisher(driver)

	// Clean up
	defer func() {
		_ = pub.Wipe(ctx)
	}()

	payload := Build(fixturePosts(), fixtureEdges())
	if err := pub.Publish(ctx, payload); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	count, err := pub.CountModels(ctx)
	if err != nil {
		t.Fatalf("CountModels failed: %v", err)
	}
	if count != 5 {
		t.Errorf("Expected 5 models, got %d", count)
	}

	// MERGE keeps a second publish from duplicating anything.
	if err := pub.Publish(ctx, payload); err != nil {
		t.Fatalf("Second publish failed: %v", err)
	}
	count, err = pub.CountModels(ctx)
	if err != nil {
		t.Fatalf("CountModels failed: %v", err)
	}
	if count != 5 {
		t.Errorf("Expected 5 models after republish, got %d", count)
	}

	if err := pub.Wipe(ctx); err != nil {
		t.Fatalf("Wipe failed: %v", err)
	}
	count, err = pub.CountModels(ctx)
	if err != nil {
		t.Fatalf("CountModels failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected empty lattice after wipe, got %d models", count)
	}
}

func createTestDriver() (neo4j.DriverWithContext, error) {
	uri := "bolt://localhost:7687"
	user := "neo4j"
	password := "password"

	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(user, password, ""))
	if err != nil {
		return nil, err
	}

	// Verify connection
	ctx := context.Background()
	if err := driver.VerifyConnectivity(ctx); err != nil {
		driver.Close(ctx)
		return nil, err
	}

	return driver, nil
}
