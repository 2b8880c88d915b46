package i18n_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/contactbook/internal/config"
)

// TestI18nIntegrity ensures that every translation key defined in config
// exists in each locale file, and that no locale carries orphan keys.
func TestI18nIntegrity(t *testing.T) {
	definedKeys := make(map[string]bool)
	for _, k := range config.TranslationKeys {
		definedKeys[k] = true
	}

	for _, lang := range config.SupportedLanguages {
		t.Run(lang, func(t *testing.T) {
			path := filepath.Join("locales", "active."+lang+".json")
			content, err := os.ReadFile(path)
			require.NoError(t, err, "Must load %s", path)

			var jsonMap map[string]string
			require.NoError(t, json.Unmarshal(content, &jsonMap), "JSON must be valid")

			for key := range definedKeys {
				assert.Containsf(t, jsonMap, key, "Key '%s' is missing in %s", key, path)
				assert.NotEmptyf(t, jsonMap[key], "Key '%s' is empty in %s", key, path)
			}
			for jsonKey := range jsonMap {
				assert.Truef(t, definedKeys[jsonKey], "Key '%s' exists in %s but not in config", jsonKey, path)
			}
		})
	}
}
