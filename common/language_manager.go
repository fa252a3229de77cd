// common/language_manager.go

package common

import (
	"strings"

	"TadsPlayer/locales"
)

// LanguageItem pairs a language code with its display name
type LanguageItem struct {
	Code string
	Name string
}

// DetectAndSetLanguage loads translations using the first supported language of:
// the configured one, the system one, English. A detected language is saved to the configuration.
func DetectAndSetLanguage(configMgr *ConfigManager, logger *Logger) string {
	globalConfig := configMgr.GetGlobalConfig()
	configLang := strings.ToLower(globalConfig.Language)
	supportedLangs := locales.GetAvailableLanguages()

	logger.Info("Supported languages: %v", supportedLangs)
	logger.Info("Current configuration language: %s", configLang)

	if configLang != "" {
		if lang, ok := matchLanguage(configLang, supportedLangs); ok {
			if err := locales.LoadTranslations(lang); err != nil {
				logger.Error("Failed to load translations for %s: %v", lang, err)
			} else {
				logger.Info("Loaded configured language: %s", lang)
				return lang
			}
		}
	}

	systemLang := normalizeLanguage(getSystemLanguage())
	logger.Info("Detected system language: %s", systemLang)

	if lang, ok := matchLanguage(systemLang, supportedLangs); ok {
		if err := locales.LoadTranslations(lang); err != nil {
			logger.Error("Failed to load system language translations: %v", err)
		} else {
			logger.Info("Using system language: %s", lang)
			saveLanguage(configMgr, globalConfig, lang, logger)
			return lang
		}
	}

	logger.Info("Using fallback language: en")
	if err := locales.LoadTranslations("en"); err != nil {
		logger.Error("Failed to load fallback translations: %v", err)
	}
	saveLanguage(configMgr, globalConfig, "en", logger)
	return "en"
}

// GetAvailableLanguages returns the embedded languages with their localized names
func GetAvailableLanguages() []LanguageItem {
	var items []LanguageItem
	for _, code := range locales.GetAvailableLanguages() {
		name := locales.Translate("settings.lang." + code)
		if strings.HasPrefix(name, "settings.lang.") {
			name = code
		}
		items = append(items, LanguageItem{Code: code, Name: name})
	}
	return items
}

// normalizeLanguage reduces locale names like "cs-CZ" or "de_DE.UTF-8" to their two letter code
func normalizeLanguage(locale string) string {
	locale = strings.ToLower(strings.TrimSpace(locale))
	if len(locale) >= 2 {
		return locale[:2]
	}
	return locale
}

func matchLanguage(code string, supported []string) (string, bool) {
	for _, lang := range supported {
		if strings.EqualFold(code, lang) {
			return lang, true
		}
	}
	return "", false
}

func saveLanguage(configMgr *ConfigManager, globalConfig GlobalConfig, lang string, logger *Logger) {
	globalConfig.Language = lang
	if err := configMgr.SaveGlobalConfig(globalConfig); err != nil {
		logger.Error("Failed to save language config: %v", err)
	}
}
