package mapping

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInputNotFound - файл соответствий отсутствует или не читается.
	ErrInputNotFound = errors.New("файл соответствий недоступен")
	// ErrMalformedInput - нет нужных колонок или строка неполная.
	ErrMalformedInput = errors.New("некорректный файл соответствий")
)

// Columns задаёт имена колонок заголовка.
type Columns struct {
	Source      string
	Destination string
}

// DefaultColumns - колонки QWERTY (US) -> Dvorak (DV).
var DefaultColumns = Columns{Source: "US", Destination: "DV"}

// LoadFile загружает таблицу из CSV или YAML (по расширению).
func LoadFile(path string, cols Columns) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInputNotFound, path, err)
	}
	defer f.Close()

	var table *Table
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := io.ReadAll(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInputNotFound, path, err)
		}
		table, err = ParseYAML(data, cols)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	default:
		table, err = ReadCSV(f, cols)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	return table, nil
}

// ReadCSV читает таблицу с заголовком. Лишние колонки игнорируются,
// UTF-8 BOM (выгрузка из Excel) отбрасывается.
func ReadCSV(r io.Reader, cols Columns) (*Table, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	reader := csv.NewReader(decoded)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: нет строки заголовка", ErrMalformedInput)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	srcIdx, dstIdx, err := columnIndexes(header, cols)
	if err != nil {
		return nil, err
	}

	table := NewTable()
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}

		line, _ := reader.FieldPos(0)
		if len(record) <= srcIdx || len(record) <= dstIdx {
			return nil, fmt.Errorf("%w: строка %d: ожидалось не менее %d колонок", ErrMalformedInput, line, max(srcIdx, dstIdx)+1)
		}

		if err := set(table, record[srcIdx], record[dstIdx], fmt.Sprintf("строка %d", line)); err != nil {
			return nil, err
		}
	}

	return table, nil
}

// yamlFile - формат YAML: список словарей с теми же именами колонок.
type yamlFile struct {
	Mappings *[]map[string]string `yaml:"mappings"`
}

// ParseYAML разбирает таблицу из YAML.
func ParseYAML(data []byte, cols Columns) (*Table, error) {
	var yf yamlFile

	if err := yaml.Unmarshal(data, &yf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	if yf.Mappings == nil {
		return nil, fmt.Errorf("%w: отсутствует список mappings", ErrMalformedInput)
	}

	table := NewTable()
	for i, row := range *yf.Mappings {
		src, okSrc := row[cols.Source]
		dst, okDst := row[cols.Destination]
		if !okSrc || !okDst {
			return nil, fmt.Errorf("%w: запись %d: нужны ключи %q и %q", ErrMalformedInput, i+1, cols.Source, cols.Destination)
		}

		if err := set(table, src, dst, fmt.Sprintf("запись %d", i+1)); err != nil {
			return nil, err
		}
	}

	return table, nil
}

func columnIndexes(header []string, cols Columns) (int, int, error) {
	srcIdx, dstIdx := -1, -1
	for i, name := range header {
		switch name {
		case cols.Source:
			if srcIdx < 0 {
				srcIdx = i
			}
		case cols.Destination:
			if dstIdx < 0 {
				dstIdx = i
			}
		}
	}

	var missing []string
	if srcIdx < 0 {
		missing = append(missing, cols.Source)
	}
	if dstIdx < 0 {
		missing = append(missing, cols.Destination)
	}
	if len(missing) > 0 {
		return 0, 0, fmt.Errorf("%w: в заголовке нет колонок %s", ErrMalformedInput, strings.Join(missing, ", "))
	}

	return srcIdx, dstIdx, nil
}

func set(table *Table, src, dst, where string) error {
	if src == "" || dst == "" {
		return fmt.Errorf("%w: %s: пустое значение", ErrMalformedInput, where)
	}

	if prev, ok := table.Lookup(src); ok && prev != dst {
		log.Printf("Повтор клавиши %q (%s): %q заменено на %q", src, where, prev, dst)
	}
	table.Set(src, dst)
	return nil
}
