// Package embedded содержит встроенные ресурсы приложения.
package embedded

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
)

// IconName - имя файла иконки при извлечении на диск.
const IconName = "letter_d.ico"

// Icon - иконка собранного исполняемого файла (буква D).
//
//go:embed letter_d.ico
var Icon []byte

// WriteIcon сохраняет иконку в dir и возвращает путь к ней.
// Компилятор принимает иконку только как файл.
func WriteIcon(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("не удалось создать директорию %s: %w", dir, err)
	}

	path := filepath.Join(dir, IconName)
	if err := os.WriteFile(path, Icon, 0644); err != nil {
		return "", fmt.Errorf("не удалось записать иконку %s: %w", path, err)
	}
	return path, nil
}
