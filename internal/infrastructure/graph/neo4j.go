package graph

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
	"go.uber.org/zap"

	"github.com/johnquangdev/insight-stream/pkg/config"
)

// ErrOffline is returned when the graph database cannot be reached
var ErrOffline = errors.New("graph database offline")

type dialFunc func(ctx context.Context) (neo4j.DriverWithContext, error)

// Client is a lazily connected Neo4j client. A failed connection is retried
// on the next call, so the graph can come online after startup.
type Client struct {
	cfg    *config.GraphConfig
	dial   dialFunc
	logger *zap.Logger

	mu     sync.Mutex
	driver neo4j.DriverWithContext
}

// NewClient creates a client. No connection is attempted until first use.
func NewClient(cfg *config.GraphConfig, logger *zap.Logger) *Client {
	c := &Client{cfg: cfg, logger: logger}
	c.dial = c.dialNeo4j
	return c
}

func (c *Client) dialNeo4j(ctx context.Context) (neo4j.DriverWithContext, error) {
	driver, err := neo4j.NewDriverWithContext(c.cfg.URI, neo4j.BasicAuth(c.cfg.User, c.cfg.Password, ""))
	if err != nil {
		return nil, err
	}

	verifyCtx, cancel := context.WithTimeout(ctx, c.cfg.ConnectTimeout)
	defer cancel()
	if err := driver.VerifyConnectivity(verifyCtx); err != nil {
		_ = driver.Close(context.WithoutCancel(ctx))
		return nil, err
	}
	return driver, nil
}

func (c *Client) connect(ctx context.Context) (neo4j.DriverWithContext, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.driver != nil {
		return c.driver, nil
	}

	driver, err := c.dial(ctx)
	if err != nil {
		if c.logger != nil {
			c.logger.Warn("⚠️ Neo4j unreachable, graph features disabled", zap.String("uri", c.cfg.URI), zap.Error(err))
		}
		return nil, fmt.Errorf("%w: %v", ErrOffline, err)
	}

	if c.logger != nil {
		c.logger.Info("✅ Connected to Neo4j", zap.String("uri", c.cfg.URI))
	}
	c.driver = driver
	return driver, nil
}

// Available reports whether the graph database is reachable
func (c *Client) Available(ctx context.Context) bool {
	_, err := c.connect(ctx)
	return err == nil
}

// Query runs cypher in a read-access transaction and returns each record as
// a map. The server rejects writes in read transactions.
func (c *Client) Query(ctx context.Context, cypher string, params map[string]any) ([]map[string]any, error) {
	driver, err := c.connect(ctx)
	if err != nil {
		return nil, err
	}

	session := driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	out, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, cypher, params)
		if err != nil {
			return nil, err
		}
		records, err := result.Collect(ctx)
		if err != nil {
			return nil, err
		}

		rows := make([]map[string]any, 0, len(records))
		for _, record := range records {
			row := record.AsMap()
			for k, v := range row {
				row[k] = plainValue(v)
			}
			rows = append(rows, row)
		}
		return rows, nil
	})
	if err != nil {
		return nil, err
	}
	return out.([]map[string]any), nil
}

// Write runs a write query and discards the records
func (c *Client) Write(ctx context.Context, cypher string, params map[string]any) error {
	driver, err := c.connect(ctx)
	if err != nil {
		return err
	}

	_, err = neo4j.ExecuteQuery(ctx, driver, cypher, params,
		neo4j.EagerResultTransformer,
		neo4j.ExecuteQueryWithWritersRouting(),
	)
	return err
}

// Close releases the driver if one was opened
func (c *Client) Close(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.driver == nil {
		return nil
	}
	err := c.driver.Close(ctx)
	c.driver = nil
	return err
}

// plainValue turns graph types into JSON-friendly values
func plainValue(v any) any {
	switch t := v.(type) {
	case dbtype.Node:
		out := make(map[string]any, len(t.Props)+1)
		for k, p := range t.Props {
			out[k] = plainValue(p)
		}
		out["labels"] = t.Labels
		return out
	case dbtype.Relationship:
		out := make(map[string]any, len(t.Props)+1)
		for k, p := range t.Props {
			out[k] = plainValue(p)
		}
		out["type"] = t.Type
		return out
	case []any:
		for i := range t {
			t[i] = plainValue(t[i])
		}
		return t
	default:
		return v
	}
}
