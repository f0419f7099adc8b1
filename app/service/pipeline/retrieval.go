package pipeline

import (
	"context"
	"fmt"

	"medigraph/app/client/neo4j"
)

// Store is the read surface of the graph database the executor needs.
type Store interface {
	Run(ctx context.Context, query string, params map[string]any) ([]neo4j.Row, error)
}

// Executor runs a validated query and splits the outcome three ways:
// rows, ErrNoMatch, or a store-level failure. No-match is frequent
// (misspelled or unknown terms) and must never look like an error.
type Executor struct {
	store Store
}

func NewExecutor(store Store) *Executor {
	return &Executor{
		store: store,
	}
}

func (e *Executor) Execute(ctx context.Context, query Query) ([]neo4j.Row, error) {
	rows, err := e.store.Run(ctx, query.Text, query.Params)
	if err != nil {
		return nil, fmt.Errorf("graph query failed: %w", err)
	}

	if !hasContent(rows) {
		return nil, ErrNoMatch
	}

	return rows, nil
}

// hasContent reports whether any row carries actual data. OPTIONAL MATCH
// queries can return rows whose collected lists are all empty; those count
// as no-match too.
func hasContent(rows []neo4j.Row) bool {
	for _, row := range rows {
		for _, value := range row {
			switch v := value.(type) {
			case nil:
			case string:
				if v != "" {
					return true
				}
			case []any:
				if len(v) > 0 {
					return true
				}
			default:
				return true
			}
		}
	}

	return false
}
