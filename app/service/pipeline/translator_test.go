package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanModelQuery(t *testing.T) {
	const query = "MATCH (d:Disease) RETURN d.name"

	tests := []struct {
		name string
		raw  string
	}{
		{"bare query", query},
		{"surrounding whitespace", "  \n" + query + "\n  "},
		{"plain fences", "```\n" + query + "\n```"},
		{"lowercase tag", "```cypher\n" + query + "\n```"},
		{"capitalized tag", "```Cypher\n" + query + "\n```"},
		{"uppercase tag", "```CYPHER\n" + query + "\n```"},
		{"tag without fences", "cypher\n" + query},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, query, cleanModelQuery(tt.raw))
		})
	}
}
