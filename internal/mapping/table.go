// Package mapping загружает таблицу соответствия клавиш двух раскладок.
package mapping

// Entry - одно соответствие: Source печатается при нажатии Destination.
type Entry struct {
	Source      string
	Destination string
}

// Identity возвращает true, если клавиша отображается сама в себя.
func (e Entry) Identity() bool {
	return e.Source == e.Destination
}

// Table хранит соответствия в порядке первого появления ключа Source.
type Table struct {
	entries []Entry
	index   map[string]int
}

// NewTable создаёт пустую таблицу.
func NewTable() *Table {
	return &Table{index: make(map[string]int)}
}

// Set добавляет соответствие. Повторный Source заменяет Destination,
// сохраняя исходную позицию. Возвращает true при замене.
func (t *Table) Set(source, destination string) bool {
	if i, ok := t.index[source]; ok {
		t.entries[i].Destination = destination
		return true
	}

	t.index[source] = len(t.entries)
	t.entries = append(t.entries, Entry{Source: source, Destination: destination})
	return false
}

// Lookup возвращает Destination для Source.
func (t *Table) Lookup(source string) (string, bool) {
	i, ok := t.index[source]
	if !ok {
		return "", false
	}
	return t.entries[i].Destination, true
}

// Entries возвращает копию соответствий в порядке таблицы.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len возвращает количество соответствий.
func (t *Table) Len() int {
	return len(t.entries)
}
