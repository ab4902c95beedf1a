// Package testutil provides shared test helpers for creating config files and corpus fixtures.
package testutil

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/clozequiz/internal/corpus"
)

// ConfigOption configures optional fields when creating a config file fixture.
type ConfigOption func(*testConfig)

type testConfig struct {
	backendURL string
	accountID  int64
}

// WithBackendURL points the backend client at url, usually an httptest server.
func WithBackendURL(url string) ConfigOption {
	return func(cfg *testConfig) {
		cfg.backendURL = url
	}
}

// WithAccountID sets the account the backend client acts for.
func WithAccountID(accountID int64) ConfigOption {
	return func(cfg *testConfig) {
		cfg.accountID = accountID
	}
}

// SetupTestConfig creates a config file using a SQLite database under tmpDir.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string, opts ...ConfigOption) string {
	t.Helper()

	cfg := testConfig{
		backendURL: "http://localhost:8080",
		accountID:  1,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	configContent := fmt.Sprintf(`database:
  driver: sqlite
  path: %s
quiz:
  draw_limit: 20
corpus:
  batch_size: 100
backend:
  base_url: %s
  account_id: %d
  timeout_seconds: 5
  max_retry_attempts: 1
  queue_size: 16
`,
		filepath.Join(tmpDir, "clozequiz.db"),
		cfg.backendURL,
		cfg.accountID,
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// CreateLanguageFile writes a YAML map of ISO 639-3 codes to names and returns its path.
func CreateLanguageFile(t *testing.T, dir string, languages map[string]string) string {
	t.Helper()

	content, err := yaml.Marshal(languages)
	require.NoError(t, err)
	path := filepath.Join(dir, "languages.yml")
	require.NoError(t, os.WriteFile(path, content, 0644))
	return path
}

// CreateCardFile writes records as JSON Lines and returns the file path.
func CreateCardFile(t *testing.T, dir string, records []corpus.CardRecord) string {
	t.Helper()

	var content []byte
	for _, record := range records {
		line, err := json.Marshal(record)
		require.NoError(t, err)
		content = append(content, line...)
		content = append(content, '\n')
	}
	path := filepath.Join(dir, "cards.jsonl")
	require.NoError(t, os.WriteFile(path, content, 0644))
	return path
}

// GermanCards returns a small eng→deu corpus with one blank per card.
func GermanCards() []corpus.CardRecord {
	return []corpus.CardRecord{
		{
			FromLang:     "eng",
			ToLang:       "deu",
			FromID:       1,
			ToID:         2,
			FromText:     "I am tired.",
			OriginalText: "Ich bin müde.",
			Tokens:       []string{"{{c1::Ich}}", " ", "bin", " ", "müde."},
		},
		{
			FromLang:     "eng",
			ToLang:       "deu",
			FromID:       3,
			ToID:         4,
			FromText:     "The dog sleeps.",
			OriginalText: "Der Hund schläft.",
			Tokens:       []string{"Der", " ", "{{c1:animal:Hund}}", " ", "schläft."},
		},
	}
}
