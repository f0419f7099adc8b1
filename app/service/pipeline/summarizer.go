package pipeline

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"medigraph/app/client/llm"
	"medigraph/app/client/neo4j"

	_ "embed"
)

//go:embed answer_prompt.txt
var answerPromptTemplate string

const answerSystemPrompt = "You are a helpful medical assistant. Be accurate and safe."

const disclaimer = "This is for educational purposes only. Consult a doctor for medical advice."

// Summarizer turns retrieved rows into a natural-language answer. It only
// ever sees the rows and the question, never the query or the rest of the
// graph, which keeps the answer grounded in what was actually retrieved.
type Summarizer struct {
	client llm.Completer
}

func NewSummarizer(client llm.Completer) *Summarizer {
	return &Summarizer{
		client: client,
	}
}

func (s *Summarizer) Summarize(ctx context.Context, question string, rows []neo4j.Row) (string, error) {
	templateValues := map[string]any{
		"data":       formatRows(rows),
		"question":   question,
		"disclaimer": disclaimer,
	}

	prompt := answerPromptTemplate
	for key, value := range templateValues {
		prompt = strings.ReplaceAll(prompt, "{"+key+"}", fmt.Sprint(value))
	}

	answer, err := s.client.Complete(ctx, llm.Request{
		System:      answerSystemPrompt,
		User:        prompt,
		MaxTokens:   600,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("failed to summarize results: %w", err)
	}

	return answer, nil
}

// formatRows renders rows with sorted keys so the same result set always
// produces the same prompt.
func formatRows(rows []neo4j.Row) string {
	var builder strings.Builder

	for _, row := range rows {
		keys := make([]string, 0, len(row))
		for key := range row {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for i, key := range keys {
			if i > 0 {
				builder.WriteString("; ")
			}
			fmt.Fprintf(&builder, "%s: %v", key, row[key])
		}
		builder.WriteString("\n")
	}

	return builder.String()
}
