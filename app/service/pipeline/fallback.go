package pipeline

import (
	"strings"

	"medigraph/app/service/catalog"
)

const fallbackSymptomsQuery = `MATCH (s:Symptom)-[:HAS_SYMPTOM]->(d:Disease)
WHERE toLower(d.name) CONTAINS $keyword
RETURN d.name AS Disease, COLLECT(DISTINCT s.name) AS Symptoms
LIMIT 5`

const fallbackPrecautionsQuery = `MATCH (d:Disease)-[:HAS_PRECAUTION]->(p:Precaution)
WHERE toLower(d.name) CONTAINS $keyword
RETURN d.name AS Disease, COLLECT(DISTINCT p.name) AS Precautions
LIMIT 5`

const fallbackGeneralQuery = `MATCH (d:Disease)
WHERE toLower(d.name) CONTAINS $keyword
OPTIONAL MATCH (d)-[:HAS_PRECAUTION]->(p:Precaution)
OPTIONAL MATCH (s:Symptom)-[:HAS_SYMPTOM]->(d)
RETURN d.name AS Disease,
       COLLECT(DISTINCT p.name) AS Precautions,
       COLLECT(DISTINCT s.name) AS Symptoms
LIMIT 5`

// buildFallbackQuery produces a deterministic parameterized query from a
// detected intent and an extracted keyword. Used when the model output is
// unusable; the result always passes the same read-only validation.
func buildFallbackQuery(intent catalog.Intent, keyword string) Query {
	keyword = normalizeKeyword(keyword)

	var text string
	switch intent {
	case catalog.IntentSymptoms:
		text = fallbackSymptomsQuery
	case catalog.IntentPrecautions:
		text = fallbackPrecautionsQuery
	default:
		text = fallbackGeneralQuery
	}

	return Query{
		Text:   text,
		Params: map[string]any{"keyword": keyword},
	}
}

func normalizeKeyword(keyword string) string {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	keyword = strings.ReplaceAll(keyword, "infections", "infection")

	return keyword
}
