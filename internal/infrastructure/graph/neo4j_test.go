package graph

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"

	"github.com/johnquangdev/insight-stream/pkg/config"
)

func offlineClient(dials *int) *Client {
	c := NewClient(&config.GraphConfig{URI: "bolt://127.0.0.1:1", ConnectTimeout: 50 * time.Millisecond}, nil)
	c.dial = func(ctx context.Context) (neo4j.DriverWithContext, error) {
		*dials++
		return nil, errors.New("connection refused")
	}
	return c
}

func TestClient_OfflineIsReportedNotPanicked(t *testing.T) {
	var dials int
	c := offlineClient(&dials)
	ctx := context.Background()

	if c.Available(ctx) {
		t.Fatal("expected offline")
	}
	if _, err := c.Query(ctx, "MATCH (n) RETURN n", nil); !errors.Is(err, ErrOffline) {
		t.Fatalf("expected ErrOffline, got %v", err)
	}
	if err := c.Write(ctx, "CREATE (n)", nil); !errors.Is(err, ErrOffline) {
		t.Fatalf("expected ErrOffline, got %v", err)
	}
	// every call retries the connection
	if dials != 3 {
		t.Fatalf("expected 3 dial attempts, got %d", dials)
	}
	if err := c.Close(ctx); err != nil {
		t.Fatalf("close on unopened client: %v", err)
	}
}

func TestPlainValue_Node(t *testing.T) {
	node := dbtype.Node{Labels: []string{"Person"}, Props: map[string]any{"name": "David Kim"}}
	got, ok := plainValue(node).(map[string]any)
	if !ok {
		t.Fatalf("expected map, got %T", plainValue(node))
	}
	if got["name"] != "David Kim" {
		t.Fatalf("unexpected props %v", got)
	}
	if labels, _ := got["labels"].([]string); len(labels) != 1 || labels[0] != "Person" {
		t.Fatalf("unexpected labels %v", got["labels"])
	}
	if plainValue(int64(3)) != int64(3) {
		t.Fatal("scalars pass through")
	}
}
