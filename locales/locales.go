// Package locales provides the embedded user interface translations.
package locales

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

//go:embed en/translations.json
//go:embed cs/translations.json
//go:embed de/translations.json
var translationsFS embed.FS

var (
	mu           sync.RWMutex
	translations map[string]string
	current      string
)

// LoadTranslations loads the translation file for the specified language.
// The previous translations stay active if the file cannot be loaded or parsed.
func LoadTranslations(lang string) error {
	data, err := translationsFS.ReadFile(lang + "/translations.json")
	if err != nil {
		return fmt.Errorf("failed to load translation file for %q: %w", lang, err)
	}

	var loaded map[string]string
	if err := json.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to parse translation file for %q: %w", lang, err)
	}

	mu.Lock()
	translations = loaded
	current = lang
	mu.Unlock()
	return nil
}

// Current returns the code of the loaded language, or "" before any load.
func Current() string {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Translate returns the translated string for the given key.
// If the translation is not found, returns the key itself.
func Translate(key string) string {
	mu.RLock()
	defer mu.RUnlock()
	if translation, ok := translations[key]; ok {
		return translation
	}
	return key
}

// Has reports whether the loaded language translates key.
func Has(key string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := translations[key]
	return ok
}

// GetAvailableLanguages returns the sorted codes of all embedded languages.
// Returns ["en"] as fallback on error.
func GetAvailableLanguages() []string {
	entries, err := translationsFS.ReadDir(".")
	if err != nil {
		return []string{"en"}
	}
	var langs []string
	for _, entry := range entries {
		if entry.IsDir() {
			langs = append(langs, entry.Name())
		}
	}
	sort.Strings(langs)
	return langs
}
