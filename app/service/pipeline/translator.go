package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"medigraph/app/client/llm"
	"medigraph/app/service/catalog"

	_ "embed"
)

//go:embed translate_prompt.txt
var translatePromptTemplate string

const translateSystemPrompt = "You are a Cypher expert. Always use toLower() and CONTAINS " +
	"for flexible matching. Never match a name exactly unless the user quoted one."

const schemaDescription = `Node labels: Disease, Symptom, Precaution
Relationships:
  (Symptom)-[:HAS_SYMPTOM]->(Disease)
  (Disease)-[:HAS_PRECAUTION]->(Precaution)
Properties: name (string)`

// Translator turns a free-text question into a validated read-only Cypher
// query. The model does the translation, the validator decides whether to
// trust it.
type Translator struct {
	client     llm.Completer
	catalogSvc *catalog.Service
}

func NewTranslator(client llm.Completer, catalogSvc *catalog.Service) *Translator {
	return &Translator{
		client:     client,
		catalogSvc: catalogSvc,
	}
}

func (t *Translator) Translate(ctx context.Context, question string) (Query, error) {
	templateValues := map[string]any{
		"schema":   schemaDescription,
		"question": question,
	}

	prompt := translatePromptTemplate
	for key, value := range templateValues {
		prompt = strings.ReplaceAll(prompt, "{"+key+"}", fmt.Sprint(value))
	}

	raw, err := t.client.Complete(ctx, llm.Request{
		System:    translateSystemPrompt,
		User:      prompt,
		MaxTokens: 500,
	})
	if err != nil {
		slog.Warn("Cypher generation failed, using fallback", "error", err)
		return t.fallback(question)
	}

	query := cleanModelQuery(raw)

	// A write clause in the output is a hard stop, not a fallback case:
	// the store must never see it and the request fails as a whole.
	if clause, found := disallowedClause(query); found {
		return Query{}, &TranslationError{
			Reason: fmt.Sprintf("generated query contains disallowed clause %s", clause),
		}
	}

	if err = validateShape(query); err != nil {
		slog.Warn("Generated query rejected, using fallback",
			"query", query,
			"error", err)
		return t.fallback(question)
	}

	return Query{Text: query}, nil
}

func (t *Translator) fallback(question string) (Query, error) {
	keywords := t.catalogSvc.MatchDiseases(question)
	if len(keywords) == 0 {
		return Query{}, &TranslationError{Reason: "no usable keyword in question"}
	}

	query := buildFallbackQuery(catalog.DetectIntent(question), keywords[0])

	if clause, found := disallowedClause(query.Text); found {
		return Query{}, &TranslationError{
			Reason: fmt.Sprintf("fallback query contains disallowed clause %s", clause),
		}
	}
	if err := validateShape(query.Text); err != nil {
		return Query{}, &TranslationError{Reason: err.Error()}
	}

	return query, nil
}

// cleanModelQuery strips the markdown fences and language tags models tend
// to wrap code in despite instructions.
func cleanModelQuery(raw string) string {
	result := strings.TrimSpace(raw)
	result = strings.Trim(result, "`")
	result = strings.TrimSpace(result)
	if len(result) >= 6 && strings.EqualFold(result[:6], "cypher") {
		result = result[6:]
	}
	result = strings.TrimSpace(result)

	return result
}
