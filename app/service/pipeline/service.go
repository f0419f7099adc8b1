package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"medigraph/app/client/llm"
	"medigraph/app/client/neo4j"
	"medigraph/app/config"
	"medigraph/app/service/catalog"

	"github.com/samber/do"
)

const suggestionCount = 5

// Service runs a question through translate -> execute -> summarize and
// folds every failure into the Answer shape. Stateless across requests.
type Service struct {
	catalogSvc *catalog.Service

	translator *Translator
	executor   *Executor
	summarizer *Summarizer
}

func New(di *do.Injector) (*Service, error) {
	cfg := do.MustInvoke[*config.Config](di)
	store := do.MustInvoke[*neo4j.Client](di)
	catalogSvc := do.MustInvoke[*catalog.Service](di)

	s := &Service{
		catalogSvc: catalogSvc,
		translator: NewTranslator(llm.NewClient(cfg.OpenAI.Translator), catalogSvc),
		executor:   NewExecutor(store),
		summarizer: NewSummarizer(llm.NewClient(cfg.OpenAI.Summarizer)),
	}

	return s, nil
}

func NewService(translator *Translator, executor *Executor, summarizer *Summarizer, catalogSvc *catalog.Service) *Service {
	return &Service{
		catalogSvc: catalogSvc,
		translator: translator,
		executor:   executor,
		summarizer: summarizer,
	}
}

func (s *Service) Ask(ctx context.Context, question string) Answer {
	question = strings.TrimSpace(question)
	if question == "" {
		return Answer{Error: "Please enter a query."}
	}

	start := time.Now()

	query, err := s.translator.Translate(ctx, question)
	if err != nil {
		slog.Error("Translation failed",
			"question", question,
			"error", err)
		return Answer{Error: "Sorry, I couldn't turn that question into a lookup. Try rephrasing it."}
	}

	slog.Debug("Translated question", "cypher", query.Text)

	rows, err := s.executor.Execute(ctx, query)
	if errors.Is(err, ErrNoMatch) {
		return Answer{Warning: s.noMatchWarning(ctx, question)}
	}
	if err != nil {
		slog.Error("Retrieval failed",
			"question", question,
			"error", err)
		return Answer{Error: "The medical knowledge base is unavailable right now. Please try again later."}
	}

	answer, err := s.summarizer.Summarize(ctx, question, rows)
	if err != nil {
		slog.Error("Summarization failed",
			"question", question,
			"error", err)
		return Answer{Error: "Sorry, I couldn't generate a response. Please try again."}
	}

	slog.Info("Answered question",
		"question", question,
		"rows", len(rows),
		"duration", time.Since(start))

	return Answer{Response: answer}
}

func (s *Service) noMatchWarning(ctx context.Context, question string) string {
	names := s.catalogSvc.Suggestions(ctx, suggestionCount)
	if len(names) == 0 {
		return fmt.Sprintf("No information found for %q. Try rephrasing your question, or consult a medical professional.", question)
	}

	return fmt.Sprintf("No information found for %q. Known conditions include: %s. If symptoms persist, consult a medical professional.",
		question, strings.Join(names, ", "))
}
