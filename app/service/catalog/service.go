package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"medigraph/app/client/neo4j"

	"github.com/elliotchance/pie/v2"
	"github.com/samber/do"
	"golang.org/x/sync/errgroup"
)

// Store is the read surface of the graph database the catalog needs.
type Store interface {
	Run(ctx context.Context, query string, params map[string]any) ([]neo4j.Row, error)
}

// Service caches the Disease and Symptom name lists so keyword matching
// and no-match suggestions do not hit the store on every request.
type Service struct {
	store Store

	mu       sync.RWMutex
	diseases []string
	symptoms []string
}

func New(di *do.Injector) (*Service, error) {
	return NewService(do.MustInvoke[*neo4j.Client](di)), nil
}

func NewService(store Store) *Service {
	return &Service{
		store: store,
	}
}

// Warm loads the entity name lists. Called once at startup; a failure is
// not fatal, matching just degrades to last-word extraction.
func (s *Service) Warm(ctx context.Context) error {
	var diseases, symptoms []string

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		names, err := s.loadNames(ctx, "MATCH (d:Disease) RETURN d.name AS name")
		if err != nil {
			return fmt.Errorf("failed to load disease names: %w", err)
		}
		diseases = names
		return nil
	})

	g.Go(func() error {
		names, err := s.loadNames(ctx, "MATCH (s:Symptom) RETURN s.name AS name")
		if err != nil {
			return fmt.Errorf("failed to load symptom names: %w", err)
		}
		symptoms = names
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	s.mu.Lock()
	s.diseases = diseases
	s.symptoms = symptoms
	s.mu.Unlock()

	slog.Info("Catalog loaded",
		"diseases", len(diseases),
		"symptoms", len(symptoms))

	return nil
}

func (s *Service) loadNames(ctx context.Context, query string) ([]string, error) {
	rows, err := s.store.Run(ctx, query, nil)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, row := range rows {
		if name, ok := row["name"].(string); ok && name != "" {
			names = append(names, name)
		}
	}

	return names, nil
}

// MatchDiseases returns cached disease names contained in the text or
// containing it, case-insensitive. Falls back to the last word of the
// question when nothing matches, so an unknown term still produces a
// valid query that resolves to NoMatch downstream.
func (s *Service) MatchDiseases(text string) []string {
	textLower := strings.ToLower(strings.TrimSpace(text))
	if textLower == "" {
		return nil
	}

	s.mu.RLock()
	diseases := s.diseases
	s.mu.RUnlock()

	matched := pie.Filter(diseases, func(name string) bool {
		nameLower := strings.ToLower(name)
		return strings.Contains(textLower, nameLower) || strings.Contains(nameLower, textLower)
	})
	matched = pie.Unique(matched)

	if len(matched) > 0 {
		return matched
	}

	words := strings.Fields(strings.Trim(textLower, ".,!?"))
	if len(words) == 0 {
		return nil
	}

	return []string{strings.Trim(words[len(words)-1], ".,!?")}
}

// Suggestions returns up to n disease names to offer when a query matched
// nothing. Prefers the cache, falls back to a direct store query.
func (s *Service) Suggestions(ctx context.Context, n int) []string {
	s.mu.RLock()
	diseases := s.diseases
	s.mu.RUnlock()

	if len(diseases) == 0 {
		names, err := s.loadNames(ctx, "MATCH (d:Disease) RETURN d.name AS name LIMIT 10")
		if err != nil {
			slog.Warn("Failed to load disease suggestions", "error", err)
			return nil
		}
		diseases = names
	}

	if len(diseases) > n {
		diseases = diseases[:n]
	}

	return diseases
}
