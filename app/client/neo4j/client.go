package neo4j

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"medigraph/app/config"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/samber/do"
)

const queryTimeout = 15 * time.Second

var _ do.Shutdownable = (*Client)(nil)

// Row maps a result variable to an entity property or a collected list,
// keyed by the RETURN alias.
type Row map[string]any

type Client struct {
	cfg    *config.Config
	driver neo4j.DriverWithContext
}

func NewClient(di *do.Injector) (*Client, error) {
	cfg := do.MustInvoke[*config.Config](di)

	driver, err := neo4j.NewDriverWithContext(cfg.Neo4j.URI,
		neo4j.BasicAuth(cfg.Neo4j.User, cfg.Neo4j.Pass, ""))
	if err != nil {
		return nil, fmt.Errorf("failed to create neo4j driver: %w", err)
	}

	slog.Info("Connected to neo4j", "uri", cfg.Neo4j.URI, "user", cfg.Neo4j.User)

	return &Client{
		cfg:    cfg,
		driver: driver,
	}, nil
}

// Run executes a read-only query and drains the result cursor.
// Sessions are cheap, the underlying connection pool is shared.
func (c *Client) Run(ctx context.Context, query string, params map[string]any) ([]Row, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	session := c.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeRead,
		DatabaseName: c.cfg.Neo4j.Database,
	})
	defer session.Close(ctx)

	result, err := session.Run(ctx, query, params)
	if err != nil {
		return nil, fmt.Errorf("failed to run query: %w", err)
	}

	var rows []Row
	for result.Next(ctx) {
		rows = append(rows, result.Record().AsMap())
	}

	if err = result.Err(); err != nil {
		return nil, fmt.Errorf("failed to read query results: %w", err)
	}

	return rows, nil
}

func (c *Client) Shutdown() error {
	return c.driver.Close(context.Background())
}
