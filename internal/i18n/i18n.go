// Package i18n provides internationalization support.
package i18n

import "sync"

// Language represents a UI language.
type Language string

const (
	RU Language = "ru"
	EN Language = "en"
)

var (
	mu      sync.RWMutex
	current = RU // Default language
)

// Translations for all supported languages.
var translations = map[Language]map[string]string{
	RU: {
		// App
		"app_name": "dvertkey",

		// Notifications
		"notify_script_done":    "Скрипт создан",
		"notify_exe_done":       "Исполняемый файл собран",
		"notify_error":          "Ошибка",
		"notify_packaging":      "Сборка исполняемого файла...",
		"notify_packaging_hint": "Запущен Ahk2Exe",

		// Dialogs
		"dialog_pick_mapping": "Выберите файл соответствий",
		"dialog_filter_csv":   "Таблица CSV",
		"dialog_filter_yaml":  "YAML",
		"dialog_error_title":  "dvertkey - ошибка",

		// Errors
		"error_layout_unknown": "Не удалось определить раскладку. Укажите --layoutid",
	},
	EN: {
		// App
		"app_name": "dvertkey",

		// Notifications
		"notify_script_done":    "Script generated",
		"notify_exe_done":       "Executable built",
		"notify_error":          "Error",
		"notify_packaging":      "Building executable...",
		"notify_packaging_hint": "Ahk2Exe is running",

		// Dialogs
		"dialog_pick_mapping": "Select mapping file",
		"dialog_filter_csv":   "CSV table",
		"dialog_filter_yaml":  "YAML",
		"dialog_error_title":  "dvertkey - error",

		// Errors
		"error_layout_unknown": "Could not detect the keyboard layout. Pass --layoutid",
	},
}

// T returns the translation for the given key.
func T(key string) string {
	mu.RLock()
	defer mu.RUnlock()

	if strings, ok := translations[current]; ok {
		if s, ok := strings[key]; ok {
			return s
		}
	}
	// Fallback to key itself
	return key
}

// SetLanguage sets the current UI language. Unknown languages are ignored.
func SetLanguage(lang Language) bool {
	mu.Lock()
	defer mu.Unlock()

	if _, ok := translations[lang]; !ok {
		return false
	}
	current = lang
	return true
}

// GetLanguage returns the current UI language.
func GetLanguage() Language {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// AvailableLanguages returns list of supported languages.
func AvailableLanguages() []Language {
	return []Language{RU, EN}
}
