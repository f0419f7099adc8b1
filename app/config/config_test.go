package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfig = `
neo4j:
  uri: neo4j+s://example.databases.neo4j.io
  pass: secret
openai:
  translator:
    base_url: https://openrouter.ai/api/v1
    token: sk-or-v1-test
    model: x-ai/grok-4.1-fast
  summarizer:
    base_url: https://openrouter.ai/api/v1
    token: sk-or-v1-test
    model: x-ai/grok-4.1-fast
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	return path
}

func TestLoadFileDefaults(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "data/sessions.json", cfg.Sessions.File)
	assert.Equal(t, "neo4j", cfg.Neo4j.User)
	assert.Equal(t, "secret", cfg.Neo4j.Pass)
}

func TestLoadFileMissingModel(t *testing.T) {
	content := `
neo4j:
  uri: neo4j+s://example.databases.neo4j.io
  pass: secret
openai:
  translator:
    base_url: https://openrouter.ai/api/v1
    token: sk-or-v1-test
    model: x-ai/grok-4.1-fast
  summarizer:
    base_url: https://openrouter.ai/api/v1
    token: sk-or-v1-test
`

	_, err := LoadFile(writeConfig(t, content))
	assert.Error(t, err)
}

func TestLoadFileMissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFileBadYAML(t *testing.T) {
	_, err := LoadFile(writeConfig(t, "nope: [unclosed"))
	assert.Error(t, err)
}
