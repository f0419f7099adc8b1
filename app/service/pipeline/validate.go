package pipeline

import (
	"fmt"
	"strings"
	"unicode"
)

// Clauses that mutate the graph or escape the read-only subset. CALL and
// LOAD are banned wholesale: procedures and CSV import have no place in a
// retrieval query.
var disallowedClauses = map[string]bool{
	"CREATE":  true,
	"MERGE":   true,
	"DELETE":  true,
	"DETACH":  true,
	"SET":     true,
	"REMOVE":  true,
	"DROP":    true,
	"FOREACH": true,
	"CALL":    true,
	"LOAD":    true,
}

// disallowedClause scans the query for write/DDL keywords. String
// literals are blanked first so a disease name like 'sunset fever' cannot
// false-positive on SET.
func disallowedClause(query string) (string, bool) {
	tokens := strings.FieldsFunc(strings.ToUpper(stripStringLiterals(query)), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})

	for _, token := range tokens {
		if disallowedClauses[token] {
			return token, true
		}
	}

	return "", false
}

// validateShape checks that the query looks like a retrieval: starts with
// MATCH and returns something.
func validateShape(query string) error {
	upper := strings.ToUpper(stripStringLiterals(query))

	if !strings.HasPrefix(strings.TrimSpace(upper), "MATCH") {
		return fmt.Errorf("query does not start with MATCH")
	}

	if !containsToken(upper, "RETURN") {
		return fmt.Errorf("query has no RETURN clause")
	}

	return nil
}

func containsToken(upper, want string) bool {
	tokens := strings.FieldsFunc(upper, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})

	for _, token := range tokens {
		if token == want {
			return true
		}
	}

	return false
}

// stripStringLiterals replaces quoted literal contents with spaces,
// keeping offsets stable. Handles both quote styles and backslash
// escapes.
func stripStringLiterals(query string) string {
	out := []rune(query)

	var quote rune
	escaped := false

	for i, r := range out {
		if escaped {
			escaped = false
			if quote != 0 {
				out[i] = ' '
			}
			continue
		}

		switch {
		case quote == 0 && (r == '\'' || r == '"'):
			quote = r
		case quote != 0 && r == '\\':
			escaped = true
			out[i] = ' '
		case quote != 0 && r == quote:
			quote = 0
		case quote != 0:
			out[i] = ' '
		}
	}

	return string(out)
}
