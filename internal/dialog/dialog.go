// Package dialog предоставляет GUI диалоги для интерактивного запуска.
package dialog

import (
	"errors"
	"path/filepath"

	"github.com/ncruces/zenity"

	"dvertkey/internal/i18n"
)

// ErrCanceled возвращается, если пользователь закрыл диалог.
var ErrCanceled = zenity.ErrCanceled

// SelectMapping открывает диалог выбора файла соответствий.
// current - путь по умолчанию, диалог открывается в его директории.
func SelectMapping(current string) (string, error) {
	opts := []zenity.Option{
		zenity.Title(i18n.T("dialog_pick_mapping")),
		zenity.FileFilters{
			{Name: i18n.T("dialog_filter_csv"), Patterns: []string{"*.csv"}},
			{Name: i18n.T("dialog_filter_yaml"), Patterns: []string{"*.yaml", "*.yml"}},
		},
	}
	if current != "" {
		opts = append(opts, zenity.Filename(filepath.Dir(current)+string(filepath.Separator)))
	}

	path, err := zenity.SelectFile(opts...)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", ErrCanceled
		}
		return "", err
	}
	return path, nil
}

// ShowError показывает сообщение об ошибке.
func ShowError(message string) {
	zenity.Error(message, zenity.Title(i18n.T("dialog_error_title")))
}
