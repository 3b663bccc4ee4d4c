package script

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dvertkey/internal/layout"
	"dvertkey/internal/mapping"
)

const testID layout.ID = "0xF0020409"

func tableOf(pairs ...string) *mapping.Table {
	table := mapping.NewTable()
	for i := 0; i+1 < len(pairs); i += 2 {
		table.Set(pairs[i], pairs[i+1])
	}
	return table
}

func render(t *testing.T, table *mapping.Table) string {
	t.Helper()
	out, err := Render(table, testID)
	require.NoError(t, err)
	return string(out)
}

func TestGenerateExactOutput(t *testing.T) {
	out := render(t, tableOf("q", "'", "w", ","))

	want := prelude + "\n" +
		"dvorak := 0xF0020409\n\n" +
		"#If get_layout() = dvorak\n\n" +
		"*^'::\n*!'::\n*#'::Send {Blind}q\n\n" +
		"*^,::\n*!,::\n*#,::Send {Blind}w\n\n"

	assert.Equal(t, want, out)
}

func TestPreambleComesFirst(t *testing.T) {
	out := render(t, tableOf("q", "'"))

	assert.True(t, strings.HasPrefix(out, "\n#NoEnv\n#UseHook\nSendMode Input\n"))
	assert.Less(t, strings.Index(out, "get_layout() {"), strings.Index(out, "dvorak :="))
	assert.Less(t, strings.Index(out, "dvorak :="), strings.Index(out, "#If get_layout() = dvorak"))
	assert.Less(t, strings.Index(out, "#If get_layout() = dvorak"), strings.Index(out, "*^'::"))
}

func TestRuleBlockCount(t *testing.T) {
	tests := []struct {
		name   string
		pairs  []string
		blocks int
	}{
		{"empty", nil, 0},
		{"single identity", []string{"a", "a"}, 0},
		{"mixed", []string{"a", "a", "q", "'", "w", ",", "e", "."}, 3},
		{"same destination twice", []string{"a", "q", "s", "q"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := render(t, tableOf(tt.pairs...))

			assert.Equal(t, tt.blocks, strings.Count(out, "::Send {Blind}"))
			for _, m := range RuleModifiers() {
				assert.Equal(t, tt.blocks, strings.Count(out, "\n*"+m.Prefix()))
			}
		})
	}
}

func TestEmptyTableKeepsGuard(t *testing.T) {
	out := render(t, mapping.NewTable())

	assert.Equal(t, prelude+"\ndvorak := 0xF0020409\n\n#If get_layout() = dvorak\n\n", out)
}

func TestNilTable(t *testing.T) {
	out := render(t, nil)
	assert.True(t, strings.HasSuffix(out, "#If get_layout() = dvorak\n\n"))
}

func TestLayoutIDAppearsOnce(t *testing.T) {
	out := render(t, tableOf("q", "'", "w", ","))

	assert.Equal(t, 1, strings.Count(out, string(testID)))
	assert.Contains(t, out, "dvorak := "+string(testID)+"\n")
}

func TestGenerateIsDeterministic(t *testing.T) {
	table := tableOf("q", "'", "w", ",", "e", ".", "r", "p")

	first := render(t, table)
	second := render(t, table)
	assert.Equal(t, first, second)
}

func TestRulesSkipIdentity(t *testing.T) {
	rules := Rules(tableOf("a", "a", "s", "o"))
	assert.Equal(t, []mapping.Entry{{Source: "s", Destination: "o"}}, rules)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "ahk", "dvertkey_F0020409.ahk")
	table := tableOf("q", "'")

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("old content that is longer than nothing"), 0644))

	require.NoError(t, WriteFile(path, table, testID))

	got, err := os.ReadFile(path)
	require.NoError(t, err)

	want, err := Render(table, testID)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestWriteFileCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "c", "script.ahk")

	require.NoError(t, WriteFile(path, tableOf("q", "'"), testID))
	assert.FileExists(t, path)
}

func TestWriteFileFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	err := WriteFile(filepath.Join(blocker, "script.ahk"), tableOf("q", "'"), testID)
	assert.ErrorIs(t, err, ErrOutputWrite)
}

func TestBundledDvorakMapping(t *testing.T) {
	table, err := mapping.LoadFile(filepath.Join("..", "..", "mapping.csv"), mapping.DefaultColumns)
	require.NoError(t, err)
	require.Equal(t, 35, table.Len())

	out := render(t, table)

	// a и m совпадают в QWERTY и Dvorak
	assert.Equal(t, 33, strings.Count(out, "::Send {Blind}"))
	assert.Contains(t, out, "*^j::\n*!j::\n*#j::Send {Blind}c\n")
	assert.Contains(t, out, "*^w::\n*!w::\n*#w::Send {Blind},\n")
	assert.NotContains(t, out, "Send {Blind}a\n")
}
