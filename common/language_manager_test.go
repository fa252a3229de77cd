package common

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TadsPlayer/locales"
)

func TestNormalizeLanguage(t *testing.T) {
	assert.Equal(t, "cs", normalizeLanguage("cs-CZ"))
	assert.Equal(t, "de", normalizeLanguage(" DE_de.UTF-8"))
	assert.Equal(t, "e", normalizeLanguage("e"))
	assert.Equal(t, "", normalizeLanguage(""))
}

func TestMatchLanguage(t *testing.T) {
	lang, ok := matchLanguage("CS", []string{"cs", "de", "en"})
	assert.True(t, ok)
	assert.Equal(t, "cs", lang)

	_, ok = matchLanguage("fr", []string{"cs", "de", "en"})
	assert.False(t, ok)
}

func TestDetectAndSetLanguageUsesConfiguredLanguage(t *testing.T) {
	mgr, err := NewConfigManager(filepath.Join(t.TempDir(), FileNameSettings))
	require.NoError(t, err)
	require.NoError(t, mgr.SaveGlobalConfig(GlobalConfig{Language: "DE", UseSmoothScaling: true}))

	lang := DetectAndSetLanguage(mgr, newTestLogger(t))

	assert.Equal(t, "de", lang)
	assert.Equal(t, "de", locales.Current())
	assert.Equal(t, "Spielinformationen", locales.Translate("gameinfo.title"))
}

func TestGetAvailableLanguages(t *testing.T) {
	require.NoError(t, locales.LoadTranslations("en"))

	items := GetAvailableLanguages()
	require.Len(t, items, 3)
	assert.Equal(t, LanguageItem{Code: "cs", Name: "Czech"}, items[0])
	assert.Equal(t, LanguageItem{Code: "de", Name: "German"}, items[1])
	assert.Equal(t, LanguageItem{Code: "en", Name: "English"}, items[2])
}
