package pipeline

import (
	"context"
	"errors"
	"sync"
	"testing"

	"medigraph/app/client/neo4j"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The catalog warmup runs two store queries concurrently, so the stub
// guards its call log. Tests read the log only after all calls finished.
type stubStore struct {
	rows []neo4j.Row
	err  error

	mu      sync.Mutex
	queries []string
	params  []map[string]any
}

func (s *stubStore) Run(_ context.Context, query string, params map[string]any) ([]neo4j.Row, error) {
	s.mu.Lock()
	s.queries = append(s.queries, query)
	s.params = append(s.params, params)
	s.mu.Unlock()

	if s.err != nil {
		return nil, s.err
	}

	return s.rows, nil
}

func TestExecuteReturnsRows(t *testing.T) {
	store := &stubStore{
		rows: []neo4j.Row{
			{"Disease": "Pneumonia", "Symptoms": []any{"Fever", "Chills"}},
		},
	}
	executor := NewExecutor(store)

	rows, err := executor.Execute(context.Background(), Query{Text: "MATCH (d:Disease) RETURN d.name"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Pneumonia", rows[0]["Disease"])
}

func TestExecuteNoRowsIsNoMatch(t *testing.T) {
	executor := NewExecutor(&stubStore{})

	_, err := executor.Execute(context.Background(), Query{Text: "MATCH (d:Disease) RETURN d.name"})
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestExecuteEmptyCollectionsIsNoMatch(t *testing.T) {
	store := &stubStore{
		rows: []neo4j.Row{
			{"Disease": "", "Symptoms": []any{}, "Precautions": nil},
		},
	}
	executor := NewExecutor(store)

	_, err := executor.Execute(context.Background(), Query{Text: "MATCH (d:Disease) RETURN d.name"})
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestExecuteStoreFailureIsNotNoMatch(t *testing.T) {
	store := &stubStore{err: errors.New("connection refused")}
	executor := NewExecutor(store)

	_, err := executor.Execute(context.Background(), Query{Text: "MATCH (d:Disease) RETURN d.name"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoMatch)
}
