// Package script генерирует AutoHotkey-скрипт из таблицы соответствий.
//
// Пока активна целевая раскладка, сочетания Ctrl/Alt/Win с клавишей
// раскладки отправляют исходную клавишу QWERTY, поэтому привычные
// сочетания (Ctrl+C, Alt+F, Win+E) остаются на своих местах.
package script

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/template"

	"dvertkey/internal/layout"
	"dvertkey/internal/mapping"
)

// ErrOutputWrite - не удалось создать директорию или записать файл.
var ErrOutputWrite = errors.New("не удалось записать скрипт")

// prelude определяет get_layout(): раскладку потока активного окна.
const prelude = `
#NoEnv
#UseHook
SendMode Input

get_layout() {
  SetFormat, Integer, H
  WinGet, WinID,, A
  threadID := DllCall("GetWindowThreadProcessId", "UInt", WinID, "UInt", 0)
  localeID := DllCall("GetKeyboardLayout", "UInt", threadID, "UInt")
  return localeID
}

`

// scriptTemplate: преамбула, константа раскладки, условие #If и
// по блоку из трёх строк на каждое правило.
const scriptTemplate = `{{.Prelude}}
dvorak := {{.LayoutID}}

#If get_layout() = dvorak

{{range $rule := .Rules}}{{range $i, $m := $.Modifiers}}{{if $i}}
{{end}}*{{$m.Prefix}}{{$rule.Destination}}::{{end}}Send {Blind}{{$rule.Source}}

{{end}}`

var tmpl = template.Must(template.New("ahk").Parse(scriptTemplate))

type scriptData struct {
	Prelude   string
	LayoutID  layout.ID
	Modifiers []Modifier
	Rules     []mapping.Entry
}

// Rules возвращает соответствия, для которых нужен блок правил.
// Тождественные соответствия пропускаются: они бы отправляли ту же клавишу.
func Rules(table *mapping.Table) []mapping.Entry {
	if table == nil {
		return nil
	}

	entries := table.Entries()
	rules := make([]mapping.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Identity() {
			continue
		}
		rules = append(rules, e)
	}
	return rules
}

// Generate пишет скрипт для раскладки id в w.
func Generate(w io.Writer, table *mapping.Table, id layout.ID) error {
	return tmpl.Execute(w, scriptData{
		Prelude:   prelude,
		LayoutID:  id,
		Modifiers: RuleModifiers(),
		Rules:     Rules(table),
	})
}

// Render возвращает текст скрипта.
func Render(table *mapping.Table, id layout.ID) ([]byte, error) {
	var buf bytes.Buffer
	if err := Generate(&buf, table, id); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile создаёт родительские директории и перезаписывает path.
func WriteFile(path string, table *mapping.Table, id layout.ID) error {
	data, err := Render(table, id)
	if err != nil {
		return fmt.Errorf("ошибка шаблона: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}

	return nil
}
